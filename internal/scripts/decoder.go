package scripts

import (
	"fmt"
	"strings"
)

// Decoder renders the command words of a script as text.
type Decoder interface {
	Decode(words []uint32) string
}

// RawDecoder renders one command per line. Words that name a known event
// are printed as Name(param, ...) and consume the event's parameters; all
// other words are printed as hex.
type RawDecoder struct {
	Events Events
}

// Decode renders words
func (d *RawDecoder) Decode(words []uint32) string {
	lines := make([]string, 0, len(words))
	for i := 0; i < len(words); i++ {
		ev, ok := d.Events[words[i]]
		if !ok {
			lines = append(lines, fmt.Sprintf("0x%08X", words[i]))
			continue
		}

		end := i + 1 + ev.Params
		if end > len(words) {
			end = len(words)
		}
		params := make([]string, 0, ev.Params)
		for _, p := range words[i+1 : end] {
			params = append(params, fmt.Sprintf("0x%X", p))
		}
		lines = append(lines, fmt.Sprintf("%s(%s)", ev.Name, strings.Join(params, ", ")))
		i = end - 1
	}
	return strings.Join(lines, "\n")
}
