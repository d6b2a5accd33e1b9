// Package containers finds animation base names inside the two motion
// container formats a fighter ships with.
package containers

import (
	"path/filepath"
	"strings"
)

// Kind identifies a container format.
type Kind int

const (
	// KindUnknown is any file the extractor does not scan.
	KindUnknown Kind = iota
	// KindArchive is a packed motion archive (.pac) listing embedded
	// animation files by name.
	KindArchive
	// KindCompiled is a compiled model/animation bundle (.bch) carrying a
	// table of NUL-terminated resource names.
	KindCompiled
)

var kindByExtension = map[string]Kind{
	".pac": KindArchive,
	".bch": KindCompiled,
}

// KindOf selects the container kind from the file extension, ignoring case.
func KindOf(path string) (Kind, bool) {
	k, ok := kindByExtension[strings.ToLower(filepath.Ext(path))]
	return k, ok
}

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindArchive:
		return "archive"
	case KindCompiled:
		return "compiled"
	default:
		return "unknown"
	}
}
