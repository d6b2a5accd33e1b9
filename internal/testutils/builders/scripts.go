package builders

import (
	"encoding/binary"
)

type byteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// ACMDBuilder builds a compiled script table (game.bin and friends)
type ACMDBuilder struct {
	order   byteOrder
	version uint32
	scripts []acmdScript
}

type acmdScript struct {
	sum   uint32
	words []uint32
}

// NewACMDBuilder creates a big endian table builder
func NewACMDBuilder() *ACMDBuilder {
	return &ACMDBuilder{order: binary.BigEndian, version: 2}
}

// LittleEndian switches the table to little endian layout
func (b *ACMDBuilder) LittleEndian() *ACMDBuilder {
	b.order = binary.LittleEndian
	return b
}

// WithScript adds a script body for sum
func (b *ACMDBuilder) WithScript(sum uint32, words ...uint32) *ACMDBuilder {
	b.scripts = append(b.scripts, acmdScript{sum: sum, words: words})
	return b
}

// Build lays out the header, the index and the script bodies in order
func (b *ACMDBuilder) Build() []byte {
	out := make([]byte, 0x10+8*len(b.scripts))
	if b.order == binary.LittleEndian {
		copy(out, "DMCA")
	} else {
		copy(out, "ACMD")
	}
	b.order.PutUint32(out[4:], b.version)
	b.order.PutUint32(out[8:], uint32(len(b.scripts)))

	commands := 0
	for _, s := range b.scripts {
		commands += len(s.words)
	}
	b.order.PutUint32(out[12:], uint32(commands))

	for i, s := range b.scripts {
		slot := 0x10 + 8*i
		b.order.PutUint32(out[slot:], s.sum)
		b.order.PutUint32(out[slot+4:], uint32(len(out)))
		for _, w := range s.words {
			out = b.order.AppendUint32(out, w)
		}
	}
	return out
}

// BuildMoveTable encodes checksums as a .mtable in the given byte order
func BuildMoveTable(order binary.AppendByteOrder, sums ...uint32) []byte {
	out := make([]byte, 0, 4*len(sums))
	for _, s := range sums {
		out = order.AppendUint32(out, s)
	}
	return out
}
