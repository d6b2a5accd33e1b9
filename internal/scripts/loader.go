package scripts

import (
	"encoding/binary"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/KirkDiggler/fitd/internal/errors"
)

// CategoryTables holds the tables found for a fighter. Missing categories
// have no entry.
type CategoryTables struct {
	Tables map[Category]Table
	// Order is the byte order of the last table loaded; the move table is
	// written in the same order. Big endian when no table loaded.
	Order binary.ByteOrder
}

// Table returns the table for c, or nil
func (c *CategoryTables) Table(cat Category) Table {
	if c == nil {
		return nil
	}
	return c.Tables[cat]
}

// LoadCategoryTables loads <dir>/<category>.bin for every category. A table
// that is missing or fails to parse is logged and left out; this never
// fails.
func LoadCategoryTables(dir string, decoder Decoder, log *zap.Logger) *CategoryTables {
	if log == nil {
		log = zap.NewNop()
	}

	out := &CategoryTables{
		Tables: make(map[Category]Table),
		Order:  binary.BigEndian,
	}
	for _, cat := range Categories() {
		path := filepath.Join(dir, cat.FileName())
		t, err := LoadACMD(path, decoder)
		if err != nil {
			if errors.IsNotFound(err) {
				log.Info("script table absent", zap.String("category", string(cat)), zap.String("path", path))
			} else {
				log.Warn("script table unreadable, category left empty",
					zap.String("category", string(cat)),
					zap.String("path", path),
					zap.Error(err),
				)
			}
			continue
		}

		out.Tables[cat] = t
		out.Order = t.Order
		log.Debug("script table loaded",
			zap.String("category", string(cat)),
			zap.Int("scripts", len(t.keys)),
		)
	}
	return out
}
