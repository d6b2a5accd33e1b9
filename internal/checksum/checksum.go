// Package checksum implements the 32-bit identifier hash the engine uses for
// animation, script and event names.
package checksum

import (
	"fmt"
	"hash/crc32"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Hash returns the CRC-32 (IEEE, reflected 0xEDB88320, init and final xor
// 0xFFFFFFFF) of b.
func Hash(b []byte) uint32 {
	return crc32.ChecksumIEEE(b)
}

// String hashes the bytes of s as they are.
func String(s string) uint32 {
	return Hash([]byte(s))
}

// Name hashes the lowercase form of name. This is the key names are stored
// under in the game's compiled data.
func Name(name string) uint32 {
	return String(Lower(name))
}

// Lower returns the engine's en-US lowercase form of s. A Caser is not safe
// for concurrent use, so one is built per call.
func Lower(s string) string {
	return cases.Lower(language.AmericanEnglish).String(s)
}

// Format renders a checksum the way unresolved names are displayed.
func Format(sum uint32) string {
	return fmt.Sprintf("0x%08X", sum)
}
