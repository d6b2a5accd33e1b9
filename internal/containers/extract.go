package containers

import (
	"bytes"
	"encoding/binary"
	"regexp"

	"github.com/KirkDiggler/fitd/internal/errors"
)

const (
	// archive: BE entry count, then BE offsets to length-prefixed names
	archiveCountOffset  = 0x08
	archiveOffsetsStart = 0x10

	// compiled: LE offset of the string table
	compiledTableOffset = 0x0C
	compiledHeaderSize  = 0x10
)

var (
	// <prefix><letter><two digits><base>.omo
	archiveNamePattern = regexp.MustCompile(`(.*)([A-Z])([0-9][0-9])(.*)\.omo`)
	// same shape, compiled resource names carry no extension
	compiledNamePattern = regexp.MustCompile(`(.*)([A-Z])([0-9][0-9])(.*)`)
)

// Yield receives one candidate base name.
type Yield func(base string)

// Skip receives a per-entry problem that did not stop the walk.
type Skip func(err error)

// Extract walks data as a container of the given kind and yields every base
// name it finds, in entry order. Entries that do not look like animation
// names are ignored. A damaged entry is reported to skip (which may be nil)
// and the walk continues; damage that makes the rest of the container
// unreadable is returned as a DataLoss error after everything readable has
// been yielded.
func Extract(kind Kind, data []byte, yield Yield, skip Skip) error {
	if skip == nil {
		skip = func(error) {}
	}

	switch kind {
	case KindArchive:
		return extractArchive(data, yield, skip)
	case KindCompiled:
		return extractCompiled(data, yield)
	default:
		return errors.InvalidArgumentf("unsupported container kind %s", kind)
	}
}

// MatchBase applies the animation name pattern of kind to name and returns
// the base name capture.
func MatchBase(kind Kind, name string) (string, bool) {
	pattern := compiledNamePattern
	if kind == KindArchive {
		pattern = archiveNamePattern
	}

	m := pattern.FindStringSubmatch(name)
	if len(m) < 5 || m[4] == "" {
		return "", false
	}
	return m[4], true
}

func extractArchive(data []byte, yield Yield, skip Skip) error {
	if len(data) < archiveOffsetsStart {
		return errors.DataLossf("archive header truncated: %d bytes", len(data)).
			WithOffset(len(data))
	}

	count := int64(binary.BigEndian.Uint32(data[archiveCountOffset:]))
	for i := int64(0); i < count; i++ {
		slot := archiveOffsetsStart + i*4
		if slot+4 > int64(len(data)) {
			return errors.DataLossf("archive offset table truncated at entry %d of %d", i, count).
				WithOffset(int(slot))
		}

		off := int64(binary.BigEndian.Uint32(data[slot:]))
		name, err := readPrefixedString(data, off)
		if err != nil {
			skip(errors.Wrapf(err, "archive entry %d skipped", i))
			continue
		}

		if base, ok := MatchBase(KindArchive, name); ok {
			yield(base)
		}
	}
	return nil
}

func readPrefixedString(data []byte, off int64) (string, error) {
	size := int64(len(data))
	if off < 0 || off+4 > size {
		return "", errors.DataLossf("name offset out of range (container is %d bytes)", size).
			WithOffset(int(off))
	}

	n := int64(binary.BigEndian.Uint32(data[off:]))
	start := off + 4
	if start+n > size {
		return "", errors.DataLossf("name of %d bytes overruns container", n).
			WithOffset(int(off))
	}
	return string(data[start : start+n]), nil
}

func extractCompiled(data []byte, yield Yield) error {
	if len(data) < compiledHeaderSize {
		return errors.DataLossf("compiled header truncated: %d bytes", len(data)).
			WithOffset(len(data))
	}

	pos := int64(int32(binary.LittleEndian.Uint32(data[compiledTableOffset:])))
	if pos < 0 || pos >= int64(len(data)) {
		return errors.DataLossf("string table offset out of range (container is %d bytes)", len(data)).
			WithOffset(int(pos))
	}

	for {
		if pos >= int64(len(data)) {
			return errors.DataLoss("string table has no terminating empty string").
				WithOffset(int(pos))
		}

		end := bytes.IndexByte(data[pos:], 0)
		if end < 0 {
			return errors.DataLoss("string without terminator in string table").
				WithOffset(int(pos))
		}
		if end == 0 {
			return nil
		}

		name := string(data[pos : pos+int64(end)])
		pos += int64(end) + 1

		if base, ok := MatchBase(KindCompiled, name); ok {
			yield(base)
		}
	}
}
