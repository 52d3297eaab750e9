package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/dcarber/spinesel/internal/model"
	"github.com/dcarber/spinesel/internal/registry"
)

// TableSpec names the registered cuts and variables that populate one output
// table, and the representation the table iterates over.
type TableSpec struct {
	Name      string   `yaml:"name"`
	On        string   `yaml:"on"` // "truth" or "reco"
	Cuts      []string `yaml:"cuts"`
	Variables []string `yaml:"variables"`
}

// SelectionSpec is the parsed table-selection file.
type SelectionSpec struct {
	Tables []TableSpec `yaml:"tables"`
}

// LoadSelection parses a YAML selection file.
func LoadSelection(path string) (*SelectionSpec, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read selection: %w", err)
	}
	var spec SelectionSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parse selection: %w", err)
	}
	if len(spec.Tables) == 0 {
		return nil, fmt.Errorf("selection %s defines no tables", path)
	}
	return &spec, nil
}

// BoundTable is a TableSpec with every name resolved through the registry
// and every scope checked against the table's representation.
type BoundTable struct {
	Name     string
	On       string
	cutNames []string
	cuts     []registry.CutFunc
	varNames []string
	vars     []registry.VarFunc
}

// BindTable resolves the spec against the registry set. Unknown names and
// scope mismatches (a truth-only cut on a reco table, or vice versa) are
// configuration errors.
func BindTable(set *registry.Set, spec TableSpec) (*BoundTable, error) {
	if spec.On != "truth" && spec.On != "reco" {
		return nil, fmt.Errorf("table %q: representation must be \"truth\" or \"reco\", got %q", spec.Name, spec.On)
	}
	if len(spec.Variables) == 0 {
		return nil, fmt.Errorf("table %q: no variables", spec.Name)
	}

	t := &BoundTable{Name: spec.Name, On: spec.On}
	for _, name := range spec.Cuts {
		fn, scope, err := set.Cuts.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", spec.Name, err)
		}
		if err := checkScope(spec.On, scope); err != nil {
			return nil, fmt.Errorf("table %q: cut %q: %w", spec.Name, name, err)
		}
		t.cutNames = append(t.cutNames, name)
		t.cuts = append(t.cuts, fn)
	}
	for _, name := range spec.Variables {
		fn, scope, err := set.Vars.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("table %q: %w", spec.Name, err)
		}
		if err := checkScope(spec.On, scope); err != nil {
			return nil, fmt.Errorf("table %q: variable %q: %w", spec.Name, name, err)
		}
		t.varNames = append(t.varNames, name)
		t.vars = append(t.vars, fn)
	}
	return t, nil
}

func checkScope(on string, scope registry.Scope) error {
	switch scope {
	case registry.Both:
		return nil
	case registry.TruthOnly:
		if on == "truth" {
			return nil
		}
	case registry.RecoOnly:
		if on == "reco" {
			return nil
		}
	}
	return fmt.Errorf("scope %s not valid for %s tables", scope, on)
}

// Header returns the variable names forming the CSV header.
func (t *BoundTable) Header() []string {
	return append([]string(nil), t.varNames...)
}

// Row evaluates the table's variables on the interaction when every cut
// passes; ok is false when a cut rejects it.
func (t *BoundTable) Row(obj model.Interaction) (row []float64, ok bool) {
	for _, cut := range t.cuts {
		if !cut(obj) {
			return nil, false
		}
	}
	row = make([]float64, len(t.vars))
	for i, v := range t.vars {
		row[i] = v(obj)
	}
	return row, true
}

// WriteCSV streams the table over every interaction in the event file,
// writing one CSV row per interaction passing all cuts. Returns the number
// of rows written.
func (t *BoundTable) WriteCSV(ctx context.Context, eventsPath string, out io.Writer) (int, error) {
	f, err := os.Open(eventsPath)
	if err != nil {
		return 0, fmt.Errorf("open events: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(out)
	if err := w.Write(t.Header()); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	rows := 0
	var writeErr error
	_, err = DecodeEvents(ctx, f, func(ev *model.Event) {
		if writeErr != nil {
			return
		}
		each := func(obj model.Interaction) {
			row, ok := t.Row(obj)
			if !ok {
				return
			}
			record := make([]string, len(row))
			for i, v := range row {
				record[i] = strconv.FormatFloat(v, 'g', -1, 64)
			}
			if err := w.Write(record); err != nil {
				writeErr = err
				return
			}
			rows++
		}
		if t.On == "truth" {
			for i := range ev.Truth {
				each(&ev.Truth[i])
			}
		} else {
			for i := range ev.Reco {
				each(&ev.Reco[i])
			}
		}
	})
	if err != nil {
		return rows, err
	}
	if writeErr != nil {
		return rows, fmt.Errorf("write row: %w", writeErr)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return rows, fmt.Errorf("flush table: %w", err)
	}
	return rows, nil
}
