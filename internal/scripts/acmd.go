package scripts

import (
	"encoding/binary"
	"os"
	"sort"

	"github.com/KirkDiggler/fitd/internal/errors"
)

const (
	acmdHeaderSize = 0x10
	acmdEntrySize  = 8
)

var (
	acmdMagicBig    = [4]byte{'A', 'C', 'M', 'D'}
	acmdMagicLittle = [4]byte{'D', 'M', 'C', 'A'}
)

// ACMDScript is the body of one animation command script.
type ACMDScript struct {
	Checksum uint32
	Words    []uint32
	decoder  Decoder
}

// Deserialize renders the script through the table's decoder
func (s *ACMDScript) Deserialize() string {
	return s.decoder.Decode(s.Words)
}

// ACMDTable is a compiled animation command table (game.bin, effect.bin,
// sound.bin, expression.bin).
type ACMDTable struct {
	Order   binary.ByteOrder
	Version uint32
	keys    []uint32
	scripts map[uint32]*ACMDScript
}

// Keys returns the checksums in file index order
func (t *ACMDTable) Keys() []uint32 {
	out := make([]uint32, len(t.keys))
	copy(out, t.keys)
	return out
}

// Script returns the script stored for sum
func (t *ACMDTable) Script(sum uint32) (Script, bool) {
	s, ok := t.scripts[sum]
	if !ok {
		return nil, false
	}
	return s, true
}

var _ Table = (*ACMDTable)(nil)

// LoadACMD reads and parses an ACMD table file
func LoadACMD(path string, decoder Decoder) (*ACMDTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("script table %s not found", path).WithPath(path)
		}
		return nil, errors.Wrapf(err, "failed to read script table %s", path).WithPath(path)
	}

	t, err := ParseACMD(data, decoder)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse script table %s", path).WithPath(path)
	}
	return t, nil
}

// ParseACMD parses an ACMD table. The header is the magic (which also fixes
// the byte order), version, script count and command count, followed by one
// (checksum, offset) pair per script. A script body runs from its offset to
// the next larger offset or the end of the file.
func ParseACMD(data []byte, decoder Decoder) (*ACMDTable, error) {
	if decoder == nil {
		decoder = &RawDecoder{}
	}
	if len(data) < acmdHeaderSize {
		return nil, errors.DataLossf("script table header truncated: %d bytes", len(data))
	}

	var order binary.ByteOrder
	switch [4]byte(data[:4]) {
	case acmdMagicBig:
		order = binary.BigEndian
	case acmdMagicLittle:
		order = binary.LittleEndian
	default:
		return nil, errors.DataLossf("bad script table magic % X", data[:4])
	}

	version := order.Uint32(data[4:])
	count := int64(order.Uint32(data[8:]))
	indexEnd := acmdHeaderSize + count*acmdEntrySize
	if indexEnd > int64(len(data)) {
		return nil, errors.DataLossf("script index of %d entries overruns table", count).
			WithOffset(acmdHeaderSize)
	}

	type entry struct {
		sum uint32
		off int64
	}
	entries := make([]entry, 0, count)
	bounds := make([]int64, 0, count+1)
	for i := int64(0); i < count; i++ {
		pos := acmdHeaderSize + i*acmdEntrySize
		e := entry{
			sum: order.Uint32(data[pos:]),
			off: int64(order.Uint32(data[pos+4:])),
		}
		if e.off < indexEnd || e.off > int64(len(data)) {
			return nil, errors.DataLossf("script %d offset out of range", i).WithOffset(int(pos + 4))
		}
		entries = append(entries, e)
		bounds = append(bounds, e.off)
	}
	bounds = append(bounds, int64(len(data)))
	sort.Slice(bounds, func(i, j int) bool { return bounds[i] < bounds[j] })

	t := &ACMDTable{
		Order:   order,
		Version: version,
		scripts: make(map[uint32]*ACMDScript, len(entries)),
	}
	for _, e := range entries {
		if _, dup := t.scripts[e.sum]; dup {
			continue
		}
		end := nextBound(bounds, e.off)
		body := data[e.off:end]
		words := make([]uint32, len(body)/4)
		for i := range words {
			words[i] = order.Uint32(body[i*4:])
		}
		t.keys = append(t.keys, e.sum)
		t.scripts[e.sum] = &ACMDScript{Checksum: e.sum, Words: words, decoder: decoder}
	}
	return t, nil
}

// nextBound returns the smallest bound strictly greater than off, or off when
// there is none.
func nextBound(bounds []int64, off int64) int64 {
	i := sort.Search(len(bounds), func(i int) bool { return bounds[i] > off })
	if i == len(bounds) {
		return off
	}
	return bounds[i]
}
