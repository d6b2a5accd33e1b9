// Package scripts loads the compiled per-category script tables and the
// canonical move table of a fighter.
//
// A Script only promises a textual rendering. ACMD tables delegate it to a
// Decoder; RawDecoder prints command words, named from an optional event
// dictionary.
package scripts

//go:generate mockgen -destination=mock/mock_table.go -package=scriptsmock github.com/KirkDiggler/fitd/internal/scripts Table,Script

// Category names one of the four script tables of a fighter
type Category string

// Script categories
const (
	CategoryGame       Category = "game"
	CategoryEffect     Category = "effect"
	CategorySound      Category = "sound"
	CategoryExpression Category = "expression"
)

// Categories returns every category in table enumeration order. Unlisted
// moves are appended to the move order in this order.
func Categories() []Category {
	return []Category{CategoryEffect, CategoryExpression, CategoryGame, CategorySound}
}

// FileName returns the table file name for the category
func (c Category) FileName() string {
	return string(c) + ".bin"
}

// Script is one compiled script.
type Script interface {
	// Deserialize renders the script as text, one command per line.
	Deserialize() string
}

// Table maps move checksums to scripts.
type Table interface {
	// Keys returns the checksums in table order.
	Keys() []uint32
	// Script returns the script stored for sum.
	Script(sum uint32) (Script, bool)
}

// Text is a Script that is already text.
type Text string

// Deserialize returns the text
func (t Text) Deserialize() string {
	return string(t)
}

// MemoryTable is a Table built in memory.
type MemoryTable struct {
	keys    []uint32
	scripts map[uint32]Script
}

// NewMemoryTable creates an empty in-memory table
func NewMemoryTable() *MemoryTable {
	return &MemoryTable{scripts: make(map[uint32]Script)}
}

// Add stores s under sum. The first script added for a checksum is kept.
func (t *MemoryTable) Add(sum uint32, s Script) *MemoryTable {
	if _, ok := t.scripts[sum]; ok {
		return t
	}
	t.keys = append(t.keys, sum)
	t.scripts[sum] = s
	return t
}

// Keys returns the checksums in insertion order
func (t *MemoryTable) Keys() []uint32 {
	out := make([]uint32, len(t.keys))
	copy(out, t.keys)
	return out
}

// Script returns the script stored for sum
func (t *MemoryTable) Script(sum uint32) (Script, bool) {
	s, ok := t.scripts[sum]
	return s, ok
}

var _ Table = (*MemoryTable)(nil)
