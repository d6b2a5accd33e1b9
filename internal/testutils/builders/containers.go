// Package builders provides fluent builders for the binary fixtures used in
// tests: motion containers, script tables and move tables.
package builders

import (
	"encoding/binary"
)

// ArchiveBuilder builds a packed motion archive (.pac)
type ArchiveBuilder struct {
	entries []archiveEntry
}

type archiveEntry struct {
	name      string
	rawOffset *uint32
}

// NewArchiveBuilder creates an empty archive builder
func NewArchiveBuilder() *ArchiveBuilder {
	return &ArchiveBuilder{}
}

// WithEntry adds an embedded file name
func (b *ArchiveBuilder) WithEntry(name string) *ArchiveBuilder {
	b.entries = append(b.entries, archiveEntry{name: name})
	return b
}

// WithBrokenEntry adds an entry whose offset points at off instead of a name
func (b *ArchiveBuilder) WithBrokenEntry(off uint32) *ArchiveBuilder {
	b.entries = append(b.entries, archiveEntry{rawOffset: &off})
	return b
}

// Build lays out the header, the offset table and the length-prefixed names
func (b *ArchiveBuilder) Build() []byte {
	tableEnd := 0x10 + 4*len(b.entries)
	out := make([]byte, tableEnd)
	copy(out, "PACK")
	binary.BigEndian.PutUint32(out[0x08:], uint32(len(b.entries)))

	for i, e := range b.entries {
		slot := 0x10 + 4*i
		if e.rawOffset != nil {
			binary.BigEndian.PutUint32(out[slot:], *e.rawOffset)
			continue
		}
		binary.BigEndian.PutUint32(out[slot:], uint32(len(out)))
		out = binary.BigEndian.AppendUint32(out, uint32(len(e.name)))
		out = append(out, e.name...)
	}
	return out
}

// CompiledBuilder builds a compiled bundle (.bch) with a name table
type CompiledBuilder struct {
	names        []string
	noTerminator bool
	tableOffset  *int32
}

// NewCompiledBuilder creates an empty compiled bundle builder
func NewCompiledBuilder() *CompiledBuilder {
	return &CompiledBuilder{}
}

// WithName adds a resource name to the string table
func (b *CompiledBuilder) WithName(name string) *CompiledBuilder {
	b.names = append(b.names, name)
	return b
}

// WithoutTerminator drops the empty string (and the last NUL) that ends the table
func (b *CompiledBuilder) WithoutTerminator() *CompiledBuilder {
	b.noTerminator = true
	return b
}

// WithTableOffset overrides the string table offset written in the header
func (b *CompiledBuilder) WithTableOffset(off int32) *CompiledBuilder {
	b.tableOffset = &off
	return b
}

// Build lays out the header followed by the string table
func (b *CompiledBuilder) Build() []byte {
	out := make([]byte, 0x10)
	copy(out, "BCH\x00")
	off := int32(0x10)
	if b.tableOffset != nil {
		off = *b.tableOffset
	}
	binary.LittleEndian.PutUint32(out[0x0C:], uint32(off))

	for _, n := range b.names {
		out = append(out, n...)
		out = append(out, 0)
	}
	if b.noTerminator {
		if len(out) > 0x10 {
			out = out[:len(out)-1]
		}
		return out
	}
	return append(out, 0)
}
