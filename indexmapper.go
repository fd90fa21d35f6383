package gridmap

import (
	"fmt"
	"sort"
)

// Unmapped is returned by index translations that have no counterpart:
// the physical index is skipped or unknown, or the visual rank is out of
// range. It is a normal, checkable result, not an error.
const Unmapped = -1

// IndexMapper maintains the skip-aware mapping between physical and visual
// index spaces for a single axis (rows or columns).
//
// Physical indexes are positions in the stable underlying storage order.
// Visual indexes are positions in the rendered order: indexOrder walked in
// sequence with skipped indexes removed. Slot i of that filtered walk is
// visual index i.
type IndexMapper struct {
	indexOrder []int
	skipped    map[int]struct{}

	// Derived lookup tables, rebuilt together on the first read after any
	// mutation. dirty guards against serving a stale translation.
	visualOrder []int
	physToVis   map[int]int
	dirty       bool
}

// NewIndexMapper creates a mapper over count physical indexes in identity
// order, with nothing skipped.
func NewIndexMapper(count int) *IndexMapper {
	order := make([]int, count)
	for i := range order {
		order[i] = i
	}
	return &IndexMapper{
		indexOrder: order,
		skipped:    make(map[int]struct{}),
		dirty:      true,
	}
}

// Len returns the total number of physical indexes on this axis.
func (m *IndexMapper) Len() int {
	return len(m.indexOrder)
}

// VisibleLen returns the number of non-skipped indexes on this axis.
func (m *IndexMapper) VisibleLen() int {
	m.rebuild()
	return len(m.visualOrder)
}

// GetVisualIndex returns the visual index of a physical index, or Unmapped
// if the index is skipped or unknown to this mapper.
func (m *IndexMapper) GetVisualIndex(physical int) int {
	m.rebuild()
	if vis, ok := m.physToVis[physical]; ok {
		return vis
	}
	return Unmapped
}

// GetPhysicalIndex returns the physical index holding the given visual
// rank, or Unmapped if the rank is outside the current visual sequence.
func (m *IndexMapper) GetPhysicalIndex(visual int) int {
	m.rebuild()
	if visual < 0 || visual >= len(m.visualOrder) {
		return Unmapped
	}
	return m.visualOrder[visual]
}

// IsSkipped reports whether the physical index is currently excluded from
// the visual sequence.
func (m *IndexMapper) IsSkipped(physical int) bool {
	_, ok := m.skipped[physical]
	return ok
}

// GetSkippedIndexes returns a snapshot of the skipped physical indexes in
// indexOrder order.
func (m *IndexMapper) GetSkippedIndexes() []int {
	out := make([]int, 0, len(m.skipped))
	for _, physical := range m.indexOrder {
		if _, ok := m.skipped[physical]; ok {
			out = append(out, physical)
		}
	}
	return out
}

// SetSkippedIndexes replaces the entire skipped set. Entries unknown to
// indexOrder are dropped, keeping the skipped set a subset of the known
// indexes. Translations reflect the new set immediately.
func (m *IndexMapper) SetSkippedIndexes(list []int) {
	known := make(map[int]struct{}, len(m.indexOrder))
	for _, physical := range m.indexOrder {
		known[physical] = struct{}{}
	}
	m.skipped = make(map[int]struct{}, len(list))
	for _, physical := range list {
		if _, ok := known[physical]; ok {
			m.skipped[physical] = struct{}{}
		}
	}
	m.dirty = true
}

// SetIndexOrder replaces the physical walk order wholesale. Every physical
// index must appear at most once; duplicates are rejected. Skip markings
// for indexes no longer present are discarded.
func (m *IndexMapper) SetIndexOrder(order []int) error {
	seen := make(map[int]struct{}, len(order))
	for _, physical := range order {
		if _, dup := seen[physical]; dup {
			return fmt.Errorf("duplicate physical index %d in index order", physical)
		}
		seen[physical] = struct{}{}
	}
	m.indexOrder = append([]int(nil), order...)
	for physical := range m.skipped {
		if _, ok := seen[physical]; !ok {
			delete(m.skipped, physical)
		}
	}
	m.dirty = true
	return nil
}

// InsertIndexes grows the axis by amount new physical indexes starting at
// the given physical index. Existing indexes at or above it are renumbered
// up, skip markings follow the renumbering, and the new indexes take their
// natural slots in the walk order, unskipped.
func (m *IndexMapper) InsertIndexes(at, amount int) {
	if amount <= 0 {
		return
	}
	shifted := make([]int, 0, len(m.indexOrder)+amount)
	inserted := false
	for _, physical := range m.indexOrder {
		if physical == at {
			// New indexes slot in ahead of the index they displaced.
			for i := 0; i < amount; i++ {
				shifted = append(shifted, at+i)
			}
			inserted = true
		}
		if physical >= at {
			physical += amount
		}
		shifted = append(shifted, physical)
	}
	if !inserted {
		for i := 0; i < amount; i++ {
			shifted = append(shifted, at+i)
		}
	}
	m.indexOrder = shifted
	m.skipped = renumberSet(m.skipped, func(physical int) (int, bool) {
		if physical >= at {
			return physical + amount, true
		}
		return physical, true
	})
	m.dirty = true
}

// RemoveIndexes shrinks the axis by removing the listed physical indexes.
// Surviving indexes are renumbered down to close the gaps and skip
// markings follow the renumbering.
func (m *IndexMapper) RemoveIndexes(list []int) {
	if len(list) == 0 {
		return
	}
	removed := make(map[int]struct{}, len(list))
	for _, physical := range list {
		removed[physical] = struct{}{}
	}
	sorted := make([]int, 0, len(removed))
	for physical := range removed {
		sorted = append(sorted, physical)
	}
	sort.Ints(sorted)

	// Downward shift for a surviving index = removed indexes below it.
	shift := func(physical int) (int, bool) {
		if _, gone := removed[physical]; gone {
			return 0, false
		}
		n := sort.SearchInts(sorted, physical)
		return physical - n, true
	}

	kept := make([]int, 0, len(m.indexOrder))
	for _, physical := range m.indexOrder {
		if renumbered, ok := shift(physical); ok {
			kept = append(kept, renumbered)
		}
	}
	m.indexOrder = kept
	m.skipped = renumberSet(m.skipped, shift)
	m.dirty = true
}

// MoveIndex moves a physical index to the given slot of the walk order,
// implementing manual reordering. The slot addresses the full walk order,
// skipped entries included.
func (m *IndexMapper) MoveIndex(physical, slot int) error {
	from := -1
	for i, p := range m.indexOrder {
		if p == physical {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("unknown physical index %d", physical)
	}
	if slot < 0 || slot >= len(m.indexOrder) {
		return fmt.Errorf("slot %d out of range [0, %d)", slot, len(m.indexOrder))
	}
	order := append([]int(nil), m.indexOrder[:from]...)
	order = append(order, m.indexOrder[from+1:]...)
	order = append(order[:slot], append([]int{physical}, order[slot:]...)...)
	m.indexOrder = order
	m.dirty = true
	return nil
}

// rebuild recomputes both derived lookup tables if a mutation has occurred
// since the last read.
func (m *IndexMapper) rebuild() {
	if !m.dirty {
		return
	}
	m.visualOrder = m.visualOrder[:0]
	m.physToVis = make(map[int]int, len(m.indexOrder))
	for _, physical := range m.indexOrder {
		if _, skip := m.skipped[physical]; skip {
			continue
		}
		m.physToVis[physical] = len(m.visualOrder)
		m.visualOrder = append(m.visualOrder, physical)
	}
	m.dirty = false
}

// renumberSet rebuilds a physical-index set through a renumbering function.
// Entries for which the function reports false are dropped.
func renumberSet(set map[int]struct{}, renumber func(int) (int, bool)) map[int]struct{} {
	out := make(map[int]struct{}, len(set))
	for physical := range set {
		if renumbered, ok := renumber(physical); ok {
			out[renumbered] = struct{}{}
		}
	}
	return out
}
