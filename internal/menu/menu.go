// Package menu runs a numbered console menu as a small state machine.
//
// A Menu waits for a choice (StateAwaitingChoice), runs the registered
// handler (StateDispatching) and returns to waiting, until an exit entry is
// chosen (StateTerminated). Invalid choices never change the state: the
// corrective message is printed and the choice prompt reissued.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"tempmanager/internal/console"
	"tempmanager/internal/input"
)

// ErrInputClosed is returned by Run when input ends before an exit entry is chosen.
var ErrInputClosed = errors.New("input closed before exit was chosen")

const choicePrompt = "Enter your choice: "

type State int

const (
	StateAwaitingChoice State = iota
	StateDispatching
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateAwaitingChoice:
		return "awaiting_choice"
	case StateDispatching:
		return "dispatching"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// HandlerFunc runs one menu entry. Returned errors end the session; user
// mistakes must be handled inside the handler.
type HandlerFunc func(ctx context.Context, c *console.Console) error

type Entry struct {
	Label    string
	Handler  HandlerFunc
	Exit     bool
	Farewell string
}

type Menu struct {
	title   string
	entries map[int]Entry
	state   State
	logger  *slog.Logger
}

func New(title string, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}
	return &Menu{
		title:   title,
		entries: make(map[int]Entry),
		state:   StateAwaitingChoice,
		logger:  logger,
	}
}

// Handle registers h under choice. Registering the same choice twice panics.
func (m *Menu) Handle(choice int, label string, h HandlerFunc) {
	m.register(choice, Entry{Label: label, Handler: dispatchLogger(m.logger, choice, label, h)})
}

// HandleExit registers the entry that ends the session after printing farewell.
func (m *Menu) HandleExit(choice int, label string, farewell string) {
	m.register(choice, Entry{Label: label, Exit: true, Farewell: farewell})
}

func (m *Menu) register(choice int, e Entry) {
	if _, dup := m.entries[choice]; dup {
		panic(fmt.Sprintf("menu: choice %d registered twice", choice))
	}
	m.entries[choice] = e
}

func (m *Menu) State() State {
	return m.state
}

// Run shows the menu and dispatches choices until an exit entry is chosen,
// input ends, ctx is canceled or a handler fails.
func (m *Menu) Run(ctx context.Context, c *console.Console) error {
	choices := m.choices()
	if len(choices) == 0 {
		return errors.New("menu: no entries registered")
	}

	for m.state != StateTerminated {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Printf("%s", m.render(choices)); err != nil {
			return fmt.Errorf("write menu: %w", err)
		}

		choice, err := m.readChoice(ctx, c, choices)
		if err != nil {
			if errors.Is(err, io.EOF) {
				m.state = StateTerminated
				return ErrInputClosed
			}
			return err
		}
		// A choice typed after an interrupt is not acted on.
		if err := ctx.Err(); err != nil {
			m.state = StateTerminated
			return err
		}

		entry := m.entries[choice]
		if entry.Exit {
			m.state = StateTerminated
			m.logger.Debug("menu exit chosen", "choice", choice)
			if entry.Farewell != "" {
				if err := c.Println(entry.Farewell); err != nil {
					return fmt.Errorf("write farewell: %w", err)
				}
			}
			return nil
		}

		m.state = StateDispatching
		if err := entry.Handler(ctx, c); err != nil {
			m.state = StateTerminated
			return fmt.Errorf("menu choice %d (%s): %w", choice, entry.Label, err)
		}
		m.state = StateAwaitingChoice
	}
	return nil
}

// readChoice keeps asking until a registered choice is entered. The menu text
// already ends with the prompt, so the first read writes nothing.
func (m *Menu) readChoice(ctx context.Context, c *console.Console, choices []int) (int, error) {
	lo, hi := choices[0], choices[len(choices)-1]
	prompt := ""
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		line, err := c.Prompt(ctx, prompt)
		if err != nil {
			return 0, err
		}
		choice, err := input.ParseMenuChoice(line, lo, hi)
		if err == nil {
			if _, ok := m.entries[choice]; ok {
				return choice, nil
			}
		}
		m.logger.Debug("invalid menu choice", "input", line)
		if err := c.Printf("Invalid input. Please enter a number between %d and %d.\n", lo, hi); err != nil {
			return 0, err
		}
		prompt = choicePrompt
	}
}

func (m *Menu) render(choices []int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n--- %s ---\n", m.title)
	for _, n := range choices {
		fmt.Fprintf(&b, "%d. %s\n", n, m.entries[n].Label)
	}
	b.WriteString(choicePrompt)
	return b.String()
}

func (m *Menu) choices() []int {
	out := make([]int, 0, len(m.entries))
	for n := range m.entries {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}
