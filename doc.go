// Package gridmap translates grid coordinates between physical space (the
// stable storage order of records) and visual space (the order currently
// rendered, which may reorder indexes or skip them entirely, e.g. hidden
// rows).
//
// An IndexMapper owns the skip-aware mapping for one axis; a
// RecordTranslator composes a row and a column mapper into 2D translation
// and pipes every result through host-supplied hooks so grid features can
// adjust indexes without touching the mapping engine. A Registry associates
// one translator with each host identity.
package gridmap
