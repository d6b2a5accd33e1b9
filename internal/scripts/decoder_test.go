package scripts_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/fitd/internal/scripts"
)

func TestRawDecoder(t *testing.T) {
	events := scripts.Events{
		0xAAAA: {Name: "Wait", Params: 1},
		0xBBBB: {Name: "End"},
	}

	testCases := []struct {
		name  string
		words []uint32
		want  string
	}{
		{name: "empty", words: nil, want: ""},
		{name: "unknown words", words: []uint32{1, 0xFFFFFFFF}, want: "0x00000001\n0xFFFFFFFF"},
		{name: "event with params", words: []uint32{0xAAAA, 5, 0xBBBB}, want: "Wait(0x5)\nEnd()"},
		{name: "truncated params", words: []uint32{0xAAAA}, want: "Wait()"},
	}

	decoder := &scripts.RawDecoder{Events: events}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decoder.Decode(tc.words))
		})
	}
}

func TestRawDecoder_NoEvents(t *testing.T) {
	decoder := &scripts.RawDecoder{}
	assert.Equal(t, "0x0000AAAA", decoder.Decode([]uint32{0xAAAA}))
}
