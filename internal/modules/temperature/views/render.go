package views

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"slices"
	"text/template"

	"tempmanager/internal/modules/temperature/types"
)

// ValuesPerRow is how many readings are printed on one line.
const ValuesPerRow = 5

const (
	TitleStored     = "Stored Temperature Data"
	TitleAscending  = "Temperature Data (Low to High)"
	TitleDescending = "Temperature Data (High to Low)"
)

var funcs = template.FuncMap{
	"celsius": celsius,
}

// Renderer writes the console views. Build one with LoadTemplates.
type Renderer struct {
	tmpl *template.Template
}

// loadTemplatesFromFS loads the templates from the given fs and dir.
// Used by LoadTemplates and by tests to simulate failure scenarios.
func loadTemplatesFromFS(fsys fs.FS, dir string) (*Renderer, error) {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		return nil, err
	}
	tmpl, err := template.New("views").Funcs(funcs).ParseFS(sub, "*.tmpl")
	if err != nil {
		return nil, err
	}
	return &Renderer{tmpl: tmpl}, nil
}

// LoadTemplates parses the embedded templates. Call during startup; if it
// returns an error the session cannot render anything.
func LoadTemplates() (*Renderer, error) {
	return loadTemplatesFromFS(viewsFS, "templates")
}

// ReadingsData is the view model for a list of readings.
type ReadingsData struct {
	Title string
	Rows  [][]types.Reading
	Total int
}

// NewReadingsData groups readings into rows of ValuesPerRow.
func NewReadingsData(title string, readings []types.Reading) ReadingsData {
	return ReadingsData{
		Title: title,
		Rows:  slices.Collect(slices.Chunk(readings, ValuesPerRow)),
		Total: len(readings),
	}
}

// SortedTitle returns the header used for a sorted listing.
func SortedTitle(order types.Order) string {
	if order == types.Descending {
		return TitleDescending
	}
	return TitleAscending
}

// RenderReadings writes the titled list, or the no-data notice when empty.
func (r *Renderer) RenderReadings(w io.Writer, title string, readings []types.Reading) error {
	if err := r.ready(); err != nil {
		return err
	}
	if len(readings) == 0 {
		return r.tmpl.ExecuteTemplate(w, "no-readings", nil)
	}
	return r.tmpl.ExecuteTemplate(w, "readings", NewReadingsData(title, readings))
}

// RenderAnalysis writes the statistics block for s.
func (r *Renderer) RenderAnalysis(w io.Writer, s types.Summary) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "analysis", s)
}

// RenderNoAnalysis writes the notice shown when there is nothing to analyze.
func (r *Renderer) RenderNoAnalysis(w io.Writer) error {
	if err := r.ready(); err != nil {
		return err
	}
	return r.tmpl.ExecuteTemplate(w, "no-analysis", nil)
}

func (r *Renderer) ready() error {
	if r == nil || r.tmpl == nil {
		return errors.New("view templates not loaded: call views.LoadTemplates during startup")
	}
	return nil
}

func celsius(v any) string {
	return fmt.Sprintf("%.2f °C", v)
}
