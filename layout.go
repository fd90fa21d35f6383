package gridmap

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// AxisLayout describes one axis of a grid layout document.
type AxisLayout struct {
	// Count is the number of physical indexes on the axis.
	Count int `yaml:"count"`
	// Order optionally replaces the identity walk order. When present it
	// must hold each physical index at most once.
	Order []int `yaml:"order,omitempty"`
	// Skipped lists physical indexes excluded from the visual sequence.
	Skipped []int `yaml:"skipped,omitempty"`
}

// Layout is a file-borne description of a grid's two axes, used to build a
// RecordTranslator without host code.
type Layout struct {
	Rows    AxisLayout `yaml:"rows"`
	Columns AxisLayout `yaml:"columns"`
}

// LoadLayout parses and validates a YAML layout document.
func LoadLayout(r io.Reader) (*Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// LoadLayoutFile reads a layout document from a file path.
func LoadLayoutFile(path string) (*Layout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open layout file %q: %w", path, err)
	}
	defer f.Close()
	return LoadLayout(f)
}

// Validate checks both axes for negative counts and out-of-range entries.
func (l *Layout) Validate() error {
	if err := l.Rows.validate(); err != nil {
		return fmt.Errorf("rows: %w", err)
	}
	if err := l.Columns.validate(); err != nil {
		return fmt.Errorf("columns: %w", err)
	}
	return nil
}

func (a *AxisLayout) validate() error {
	if a.Count < 0 {
		return fmt.Errorf("negative count %d", a.Count)
	}
	if len(a.Order) > 0 && len(a.Order) != a.Count {
		return fmt.Errorf("order holds %d entries, want %d", len(a.Order), a.Count)
	}
	for _, physical := range a.Order {
		if physical < 0 || physical >= a.Count {
			return fmt.Errorf("order entry %d out of range [0, %d)", physical, a.Count)
		}
	}
	for _, physical := range a.Skipped {
		if physical < 0 || physical >= a.Count {
			return fmt.Errorf("skipped entry %d out of range [0, %d)", physical, a.Count)
		}
	}
	return nil
}

// Translator builds a RecordTranslator reflecting the layout. host may be
// nil.
func (l *Layout) Translator(host HookRunner) (*RecordTranslator, error) {
	t := NewRecordTranslator(host, l.Rows.Count, l.Columns.Count)
	if err := l.Rows.apply(t.Rows()); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	if err := l.Columns.apply(t.Cols()); err != nil {
		return nil, fmt.Errorf("columns: %w", err)
	}
	return t, nil
}

func (a *AxisLayout) apply(m *IndexMapper) error {
	if len(a.Order) > 0 {
		if err := m.SetIndexOrder(a.Order); err != nil {
			return err
		}
	}
	m.SetSkippedIndexes(a.Skipped)
	return nil
}
