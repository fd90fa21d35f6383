package gridmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTranslator_NoHostIsIdentity(t *testing.T) {
	tr := NewRecordTranslator(nil, 4, 4)
	assert.Equal(t, 2, tr.ToVisualRow(2))
	assert.Equal(t, 2, tr.ToPhysicalRow(2))
	assert.Equal(t, 3, tr.ToVisualColumn(3))
	assert.Equal(t, 3, tr.ToPhysicalColumn(3))
}

func TestRecordTranslator_ModifyRowHookObservable(t *testing.T) {
	hooks := NewHookChain()
	hooks.On(HookModifyRow, func(index int) int { return index + 10 })

	tr := NewRecordTranslator(hooks, 5, 5)
	row, col := tr.ToPhysical(2, 1)
	assert.Equal(t, 12, row)
	assert.Equal(t, 1, col)
}

func TestRecordTranslator_UnmodifyHooksFireOnToVisual(t *testing.T) {
	hooks := NewHookChain()
	hooks.On(HookUnmodifyRow, func(index int) int { return index + 100 })
	hooks.On(HookUnmodifyCol, func(index int) int { return index + 200 })

	tr := NewRecordTranslator(hooks, 5, 5)
	row, col := tr.ToVisual(1, 2)
	assert.Equal(t, 101, row)
	assert.Equal(t, 202, col)
}

func TestRecordTranslator_CoordinateShapeEquivalence(t *testing.T) {
	tr := NewRecordTranslator(nil, 10, 10)
	tr.SetSkippedRows([]int{0, 2})
	tr.SetSkippedColumns([]int{1})

	row, col := tr.ToVisual(5, 3)
	coords := tr.ToVisualCoords(Coords{Row: 5, Col: 3})
	assert.Equal(t, row, coords.Row)
	assert.Equal(t, col, coords.Col)

	row, col = tr.ToPhysical(4, 2)
	coords = tr.ToPhysicalCoords(Coords{Row: 4, Col: 2})
	assert.Equal(t, row, coords.Row)
	assert.Equal(t, col, coords.Col)
}

func TestRecordTranslator_SkipsShiftTranslation(t *testing.T) {
	tr := NewRecordTranslator(nil, 5, 5)
	tr.SetSkippedRows([]int{1})

	assert.Equal(t, Unmapped, tr.ToVisualRow(1))
	assert.Equal(t, 2, tr.ToVisualRow(3))
	assert.Equal(t, 3, tr.ToPhysicalRow(2))
}

func TestRecordTranslator_SkipPassThroughs(t *testing.T) {
	tr := NewRecordTranslator(nil, 5, 5)
	tr.SetSkippedRows([]int{1, 3})
	tr.SetSkippedColumns([]int{0})

	assert.Equal(t, []int{1, 3}, tr.GetSkippedRows())
	assert.Equal(t, []int{0}, tr.GetSkippedColumns())
	assert.True(t, tr.IsSkippedRow(1))
	assert.False(t, tr.IsSkippedRow(2))
	assert.True(t, tr.IsSkippedColumn(0))
	assert.False(t, tr.IsSkippedColumn(4))
}

func TestRecordTranslator_UnmappedFlowsThroughHooks(t *testing.T) {
	var sawUnmapped bool
	hooks := NewHookChain()
	hooks.On(HookUnmodifyRow, func(index int) int {
		if index == Unmapped {
			sawUnmapped = true
		}
		return index
	})

	tr := NewRecordTranslator(hooks, 3, 3)
	tr.SetSkippedRows([]int{0})

	require.Equal(t, Unmapped, tr.ToVisualRow(0))
	assert.True(t, sawUnmapped, "hook should see the unmapped sentinel and decide how to handle it")
}

func TestCoords_String(t *testing.T) {
	assert.Equal(t, "(2, 7)", Coords{Row: 2, Col: 7}.String())
}
