package scripts

import (
	"encoding/binary"
	"os"

	"github.com/KirkDiggler/fitd/internal/errors"
)

// MoveTable is the ordered list of move checksums a fighter declares.
type MoveTable []uint32

// Set returns the checksums as a set
func (m MoveTable) Set() map[uint32]struct{} {
	set := make(map[uint32]struct{}, len(m))
	for _, sum := range m {
		set[sum] = struct{}{}
	}
	return set
}

// LoadMoveTable reads a .mtable file in the given byte order
func LoadMoveTable(path string, order binary.ByteOrder) (MoveTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("move table %s not found", path).WithPath(path)
		}
		return nil, errors.Wrapf(err, "failed to read move table %s", path).WithPath(path)
	}
	return ParseMoveTable(data, order)
}

// ParseMoveTable reads consecutive 32-bit checksums. A trailing partial word
// is a DataLoss error.
func ParseMoveTable(data []byte, order binary.ByteOrder) (MoveTable, error) {
	if order == nil {
		order = binary.BigEndian
	}
	if len(data)%4 != 0 {
		return nil, errors.DataLossf("move table length %d is not a multiple of 4", len(data)).
			WithOffset(len(data) - len(data)%4)
	}

	table := make(MoveTable, len(data)/4)
	for i := range table {
		table[i] = order.Uint32(data[i*4:])
	}
	return table, nil
}
