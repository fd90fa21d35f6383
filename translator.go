package gridmap

import "fmt"

// Coords is a (row, column) coordinate pair. Both components live in the
// same space: physical or visual, depending on which translation produced
// or consumes them.
type Coords struct {
	Row int
	Col int
}

// String formats the coordinates as "(row, col)".
func (c Coords) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

// RecordTranslator composes one IndexMapper per axis into 2D coordinate
// translation. Every translated index is passed through the host's hook of
// the matching name before being returned, so plugins can adjust the result
// without the mapping engine knowing about them.
type RecordTranslator struct {
	host HookRunner
	rows *IndexMapper
	cols *IndexMapper
}

// NewRecordTranslator creates a translator over rowCount×colCount physical
// indexes. host may be nil, in which case hooks are the identity.
func NewRecordTranslator(host HookRunner, rowCount, colCount int) *RecordTranslator {
	return &RecordTranslator{
		host: host,
		rows: NewIndexMapper(rowCount),
		cols: NewIndexMapper(colCount),
	}
}

// Rows returns the row-axis mapper.
func (t *RecordTranslator) Rows() *IndexMapper { return t.rows }

// Cols returns the column-axis mapper.
func (t *RecordTranslator) Cols() *IndexMapper { return t.cols }

// runHook applies the named host hook, or returns the index unchanged when
// no host is attached.
func (t *RecordTranslator) runHook(name string, index int) int {
	if t.host == nil {
		return index
	}
	return t.host.RunHook(name, index)
}

// ToVisualRow translates a physical row to its visual index and pipes the
// result through the unmodifyRow hook.
func (t *RecordTranslator) ToVisualRow(physicalRow int) int {
	return t.runHook(HookUnmodifyRow, t.rows.GetVisualIndex(physicalRow))
}

// ToVisualColumn translates a physical column to its visual index and pipes
// the result through the unmodifyCol hook.
func (t *RecordTranslator) ToVisualColumn(physicalCol int) int {
	return t.runHook(HookUnmodifyCol, t.cols.GetVisualIndex(physicalCol))
}

// ToPhysicalRow translates a visual row to its physical index and pipes the
// result through the modifyRow hook.
func (t *RecordTranslator) ToPhysicalRow(visualRow int) int {
	return t.runHook(HookModifyRow, t.rows.GetPhysicalIndex(visualRow))
}

// ToPhysicalColumn translates a visual column to its physical index and
// pipes the result through the modifyCol hook.
func (t *RecordTranslator) ToPhysicalColumn(visualCol int) int {
	return t.runHook(HookModifyCol, t.cols.GetPhysicalIndex(visualCol))
}

// ToVisual translates a physical coordinate pair given as two scalars.
func (t *RecordTranslator) ToVisual(physicalRow, physicalCol int) (visualRow, visualCol int) {
	return t.ToVisualRow(physicalRow), t.ToVisualColumn(physicalCol)
}

// ToVisualCoords translates a physical coordinate pair given as Coords.
// Semantics are identical to ToVisual; only the container shape differs.
func (t *RecordTranslator) ToVisualCoords(physical Coords) Coords {
	row, col := t.ToVisual(physical.Row, physical.Col)
	return Coords{Row: row, Col: col}
}

// ToPhysical translates a visual coordinate pair given as two scalars.
func (t *RecordTranslator) ToPhysical(visualRow, visualCol int) (physicalRow, physicalCol int) {
	return t.ToPhysicalRow(visualRow), t.ToPhysicalColumn(visualCol)
}

// ToPhysicalCoords translates a visual coordinate pair given as Coords.
func (t *RecordTranslator) ToPhysicalCoords(visual Coords) Coords {
	row, col := t.ToPhysical(visual.Row, visual.Col)
	return Coords{Row: row, Col: col}
}

// GetSkippedRows returns the currently skipped physical rows.
func (t *RecordTranslator) GetSkippedRows() []int { return t.rows.GetSkippedIndexes() }

// GetSkippedColumns returns the currently skipped physical columns.
func (t *RecordTranslator) GetSkippedColumns() []int { return t.cols.GetSkippedIndexes() }

// IsSkippedRow reports whether the physical row is skipped.
func (t *RecordTranslator) IsSkippedRow(physicalRow int) bool { return t.rows.IsSkipped(physicalRow) }

// IsSkippedColumn reports whether the physical column is skipped.
func (t *RecordTranslator) IsSkippedColumn(physicalCol int) bool {
	return t.cols.IsSkipped(physicalCol)
}

// SetSkippedRows replaces the skipped row set.
func (t *RecordTranslator) SetSkippedRows(list []int) { t.rows.SetSkippedIndexes(list) }

// SetSkippedColumns replaces the skipped column set.
func (t *RecordTranslator) SetSkippedColumns(list []int) { t.cols.SetSkippedIndexes(list) }
