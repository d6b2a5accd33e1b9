// Package names builds the reverse lookup from engine checksums to the
// animation names they were computed from.
package names

import (
	"github.com/KirkDiggler/fitd/internal/checksum"
)

// InsertResult reports what Insert did with a name.
type InsertResult int

const (
	// Inserted means the name is now in the index.
	Inserted InsertResult = iota
	// RejectedDuplicateName means the exact name was already present.
	RejectedDuplicateName
	// RejectedDuplicateChecksum means another name already owns the checksum.
	// The new name is dropped; a genuine collision loses it for the run.
	RejectedDuplicateChecksum
)

// String returns the result name
func (r InsertResult) String() string {
	switch r {
	case Inserted:
		return "inserted"
	case RejectedDuplicateName:
		return "duplicate_name"
	case RejectedDuplicateChecksum:
		return "duplicate_checksum"
	default:
		return "unknown"
	}
}

// Entry is one checksum/name pair.
type Entry struct {
	Checksum uint32 `json:"checksum"`
	Name     string `json:"name"`
}

// Index maps checksums to names. The first name written for a checksum wins.
// An Index is not safe for concurrent writes; build it from one goroutine and
// share it read-only afterwards.
type Index struct {
	byChecksum map[uint32]string
	byName     map[string]uint32
	order      []uint32
}

// NewIndex creates an empty index
func NewIndex() *Index {
	return &Index{
		byChecksum: make(map[uint32]string),
		byName:     make(map[string]uint32),
	}
}

// Insert adds name under checksum.Name(name) unless the name or the checksum
// is already present.
func (x *Index) Insert(name string) InsertResult {
	if _, ok := x.byName[name]; ok {
		return RejectedDuplicateName
	}

	sum := checksum.Name(name)
	if _, ok := x.byChecksum[sum]; ok {
		return RejectedDuplicateChecksum
	}

	x.byChecksum[sum] = name
	x.byName[name] = sum
	x.order = append(x.order, sum)
	return Inserted
}

// InsertAll inserts names in order and returns how many were added.
func (x *Index) InsertAll(names []string) int {
	added := 0
	for _, n := range names {
		if x.Insert(n) == Inserted {
			added++
		}
	}
	return added
}

// Lookup returns the name stored for sum
func (x *Index) Lookup(sum uint32) (string, bool) {
	if x == nil {
		return "", false
	}
	name, ok := x.byChecksum[sum]
	return name, ok
}

// Resolve returns the name for sum, or its 0xXXXXXXXX rendering.
func (x *Index) Resolve(sum uint32) string {
	if name, ok := x.Lookup(sum); ok {
		return name
	}
	return checksum.Format(sum)
}

// Len returns the number of entries
func (x *Index) Len() int {
	if x == nil {
		return 0
	}
	return len(x.order)
}

// Entries returns the entries in insertion order.
func (x *Index) Entries() []Entry {
	if x == nil {
		return nil
	}
	out := make([]Entry, len(x.order))
	for i, sum := range x.order {
		out[i] = Entry{Checksum: sum, Name: x.byChecksum[sum]}
	}
	return out
}

// Names returns the names in insertion order.
func (x *Index) Names() []string {
	if x == nil {
		return nil
	}
	out := make([]string, len(x.order))
	for i, sum := range x.order {
		out[i] = x.byChecksum[sum]
	}
	return out
}
