package views

import (
	"bytes"
	"strings"
	"testing"
	"testing/fstest"

	"tempmanager/internal/modules/temperature/types"
)

func mustLoad(t *testing.T) *Renderer {
	t.Helper()
	r, err := LoadTemplates()
	if err != nil {
		t.Fatalf("LoadTemplates() = %v; want nil", err)
	}
	return r
}

func TestLoadTemplates_success(t *testing.T) {
	r := mustLoad(t)
	for _, name := range []string{"readings", "no-readings", "analysis", "no-analysis"} {
		if r.tmpl.Lookup(name) == nil {
			t.Errorf("template %q not defined", name)
		}
	}
}

func TestLoadTemplates_failure_sub(t *testing.T) {
	// Empty FS has no "templates" directory; ParseFS finds no files.
	emptyFS := fstest.MapFS{}
	if _, err := loadTemplatesFromFS(emptyFS, "templates"); err == nil {
		t.Fatal("loadTemplatesFromFS(emptyFS, \"templates\") = nil; want error")
	}
}

func TestLoadTemplates_failure_parse(t *testing.T) {
	badFS := fstest.MapFS{
		"templates/readings.tmpl": {Data: []byte("{{ .")},
	}
	if _, err := loadTemplatesFromFS(badFS, "templates"); err == nil {
		t.Fatal("loadTemplatesFromFS(badFS, \"templates\") = nil; want error")
	}
}

func TestRender_notLoaded(t *testing.T) {
	var r *Renderer
	var buf bytes.Buffer

	err := r.RenderReadings(&buf, TitleStored, []types.Reading{1})
	if err == nil || !strings.Contains(err.Error(), "not loaded") {
		t.Errorf("RenderReadings() err = %v; want message containing \"not loaded\"", err)
	}
	if err := (&Renderer{}).RenderAnalysis(&buf, types.Summary{}); err == nil {
		t.Error("RenderAnalysis() = nil; want error when templates not loaded")
	}
	if err := r.RenderNoAnalysis(&buf); err == nil {
		t.Error("RenderNoAnalysis() = nil; want error when templates not loaded")
	}
}

func TestRenderReadings(t *testing.T) {
	r := mustLoad(t)

	tests := []struct {
		name     string
		title    string
		readings []types.Reading
		want     string
	}{
		{
			name:     "empty",
			title:    TitleStored,
			readings: nil,
			want:     "No temperature data available.\n",
		},
		{
			name:     "three values",
			title:    TitleStored,
			readings: []types.Reading{70, 72.5, 68},
			want: "\n--- Stored Temperature Data ---\n" +
				"70.00 °C  72.50 °C  68.00 °C\n" +
				"Total: 3 values\n",
		},
		{
			name:     "exactly one row",
			title:    TitleAscending,
			readings: []types.Reading{1, 2, 3, 4, 5},
			want: "\n--- Temperature Data (Low to High) ---\n" +
				"1.00 °C  2.00 °C  3.00 °C  4.00 °C  5.00 °C\n" +
				"Total: 5 values\n",
		},
		{
			name:     "wraps after five",
			title:    TitleDescending,
			readings: []types.Reading{7, 6, 5, 4, 3, 2, 1},
			want: "\n--- Temperature Data (High to Low) ---\n" +
				"7.00 °C  6.00 °C  5.00 °C  4.00 °C  3.00 °C\n" +
				"2.00 °C  1.00 °C\n" +
				"Total: 7 values\n",
		},
		{
			name:     "rounds to two decimals",
			title:    TitleStored,
			readings: []types.Reading{-0.004, 98.606, 1e3},
			want: "\n--- Stored Temperature Data ---\n" +
				"-0.00 °C  98.61 °C  1000.00 °C\n" +
				"Total: 3 values\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := r.RenderReadings(&buf, tt.title, tt.readings); err != nil {
				t.Fatalf("RenderReadings() = %v", err)
			}
			if got := buf.String(); got != tt.want {
				t.Errorf("RenderReadings() =\n%q\nwant\n%q", got, tt.want)
			}
		})
	}
}

func TestRenderReadings_idempotent(t *testing.T) {
	r := mustLoad(t)
	readings := []types.Reading{3, 1, 2}

	var first, second bytes.Buffer
	if err := r.RenderReadings(&first, TitleStored, readings); err != nil {
		t.Fatalf("first render: %v", err)
	}
	if err := r.RenderReadings(&second, TitleStored, readings); err != nil {
		t.Fatalf("second render: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("renders differ:\n%q\n%q", first.String(), second.String())
	}
}

func TestRenderAnalysis(t *testing.T) {
	r := mustLoad(t)
	var buf bytes.Buffer
	s := types.Summary{Count: 3, Average: 70.16666666666667, Min: 68, Max: 72.5}
	if err := r.RenderAnalysis(&buf, s); err != nil {
		t.Fatalf("RenderAnalysis() = %v", err)
	}
	want := "\n--- Temperature Analysis ---\n" +
		"Number of records: 3\n" +
		"Average temperature: 70.17 °C\n" +
		"Minimum temperature: 68.00 °C\n" +
		"Maximum temperature: 72.50 °C\n"
	if got := buf.String(); got != want {
		t.Errorf("RenderAnalysis() =\n%q\nwant\n%q", got, want)
	}
}

func TestRenderNoAnalysis(t *testing.T) {
	r := mustLoad(t)
	var buf bytes.Buffer
	if err := r.RenderNoAnalysis(&buf); err != nil {
		t.Fatalf("RenderNoAnalysis() = %v", err)
	}
	if got := buf.String(); got != "No data to analyze.\n" {
		t.Errorf("RenderNoAnalysis() = %q", got)
	}
}

func TestNewReadingsData(t *testing.T) {
	d := NewReadingsData(TitleStored, []types.Reading{1, 2, 3, 4, 5, 6})
	if d.Total != 6 {
		t.Errorf("Total = %d; want 6", d.Total)
	}
	if len(d.Rows) != 2 || len(d.Rows[0]) != 5 || len(d.Rows[1]) != 1 {
		t.Errorf("Rows = %v; want [[1 2 3 4 5] [6]]", d.Rows)
	}
}

func TestSortedTitle(t *testing.T) {
	if got := SortedTitle(types.Ascending); got != TitleAscending {
		t.Errorf("SortedTitle(Ascending) = %q", got)
	}
	if got := SortedTitle(types.Descending); got != TitleDescending {
		t.Errorf("SortedTitle(Descending) = %q", got)
	}
}
