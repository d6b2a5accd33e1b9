package scripts

import (
	"strconv"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/KirkDiggler/fitd/internal/errors"
)

// Event describes one script command: its display name and how many 32-bit
// parameter words follow the command word.
type Event struct {
	Name   string
	Params int
}

// Events maps command checksums to their descriptions.
type Events map[uint32]Event

// LoadEvents reads an event dictionary. Each section is named after a
// command checksum and carries the command name and parameter count:
//
//	[0x5766F889]
//	name = End
//	params = 0
func LoadEvents(source any) (Events, error) {
	options := ini.LoadOptions{
		Insensitive:             false,
		IgnoreInlineComment:     false,
		SkipUnrecognizableLines: true,
		AllowShadows:            false,
	}

	f, err := ini.LoadSources(options, source)
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to read event dictionary")
	}

	events := make(Events)
	for _, section := range f.Sections() {
		if section.Name() == ini.DefaultSection {
			continue
		}

		sum, err := parseChecksum(section.Name())
		if err != nil {
			return nil, errors.InvalidArgumentf("event section %q is not a checksum", section.Name())
		}

		name := strings.TrimSpace(section.Key("name").String())
		if name == "" {
			return nil, errors.InvalidArgumentf("event %s has no name", section.Name())
		}

		params, err := section.Key("params").Int()
		if err != nil || params < 0 {
			params = 0
		}

		events[sum] = Event{Name: name, Params: params}
	}
	return events, nil
}

func parseChecksum(s string) (uint32, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	v, err := strconv.ParseUint(s, 16, 32)
	return uint32(v), err
}
