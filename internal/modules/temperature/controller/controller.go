package controller

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"tempmanager/internal/console"
	"tempmanager/internal/input"
	"tempmanager/internal/menu"
	"tempmanager/internal/modules/temperature/repository"
	"tempmanager/internal/modules/temperature/stats"
	"tempmanager/internal/modules/temperature/types"
	"tempmanager/internal/modules/temperature/views"
)

const (
	entryPrompt        = "Temperature: "
	msgInvalidValue    = "Invalid input. Please enter a numeric value or " + input.SentinelKeyword + " to stop."
	msgValueOutOfRange = "Value out of range. Please enter a valid temperature."
)

type TemperatureController interface {
	RegisterEntries(m *menu.Menu)
}

type temperatureControllerImpl struct {
	repository repository.TemperatureRepository
	views      *views.Renderer
	logger     *slog.Logger
}

func NewTemperatureController(repo repository.TemperatureRepository, renderer *views.Renderer, logger *slog.Logger) TemperatureController {
	if logger == nil {
		logger = slog.Default()
	}
	return &temperatureControllerImpl{repository: repo, views: renderer, logger: logger}
}

func (c *temperatureControllerImpl) RegisterEntries(m *menu.Menu) {
	m.Handle(1, "Enter temperature values manually", c.handleEnter)
	m.Handle(2, "Display all data", c.handleDisplay)
	m.Handle(3, "Analyze data", c.handleAnalyze)
	m.Handle(4, "Display data sorted (Low to High)", c.handleSorted(types.Ascending))
	m.Handle(5, "Display data sorted (High to Low)", c.handleSorted(types.Descending))
}

// handleEnter collects readings until the stop keyword. End of input stops
// collection the same way.
func (c *temperatureControllerImpl) handleEnter(ctx context.Context, con *console.Console) error {
	if err := con.Printf("\nEnter temperature values (type %s to stop):\n", input.SentinelKeyword); err != nil {
		return err
	}

	accepted := 0
	prompt := entryPrompt
collect:
	for {
		line, err := con.Prompt(ctx, prompt)
		if errors.Is(err, io.EOF) {
			c.logger.Debug("input closed during entry", "accepted", accepted)
			break
		}
		if err != nil {
			return err
		}
		// Blank lines are skipped without a new prompt, like whitespace
		// between values.
		if strings.TrimSpace(line) == "" {
			prompt = ""
			continue
		}
		prompt = entryPrompt

		tok := input.ParseTemperature(line)
		switch tok.Kind {
		case input.KindSentinel:
			break collect
		case input.KindValue:
			if err := c.repository.Append(ctx, tok.Value); err != nil {
				return fmt.Errorf("store reading: %w", err)
			}
			accepted++
		case input.KindOutOfRange:
			c.logger.Debug("rejected reading", "input", line, "error", tok.Err())
			if err := con.Println(msgValueOutOfRange); err != nil {
				return err
			}
		default:
			c.logger.Debug("rejected reading", "input", line, "error", tok.Err())
			if err := con.Println(msgInvalidValue); err != nil {
				return err
			}
		}
	}

	total, err := c.repository.Count(ctx)
	if err != nil {
		return fmt.Errorf("count readings: %w", err)
	}
	c.logger.Info("data entry complete", "accepted", accepted, "total", total)
	return con.Printf("Data entry complete. %d values recorded.\n", total)
}

func (c *temperatureControllerImpl) handleDisplay(ctx context.Context, con *console.Console) error {
	readings, err := c.repository.All(ctx)
	if err != nil {
		return fmt.Errorf("load readings: %w", err)
	}
	return c.views.RenderReadings(con.Writer(), views.TitleStored, readings)
}

func (c *temperatureControllerImpl) handleAnalyze(ctx context.Context, con *console.Console) error {
	readings, err := c.repository.All(ctx)
	if err != nil {
		return fmt.Errorf("load readings: %w", err)
	}
	summary, err := stats.Analyze(readings)
	if errors.Is(err, stats.ErrEmptyDataset) {
		return c.views.RenderNoAnalysis(con.Writer())
	}
	if err != nil {
		return err
	}
	return c.views.RenderAnalysis(con.Writer(), summary)
}

func (c *temperatureControllerImpl) handleSorted(order types.Order) menu.HandlerFunc {
	return func(ctx context.Context, con *console.Console) error {
		readings, err := c.repository.All(ctx)
		if err != nil {
			return fmt.Errorf("load readings: %w", err)
		}
		return c.views.RenderReadings(con.Writer(), views.SortedTitle(order), stats.SortedView(readings, order))
	}
}
