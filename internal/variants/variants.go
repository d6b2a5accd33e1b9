// Package variants expands an animation base name into every name the engine
// may request for it.
package variants

import (
	"bufio"
	_ "embed"
	"strings"
)

//go:embed builtin_names.txt
var builtinNamesTxt string

var builtinNames = parseNameList(builtinNamesTxt)

// Builtins returns a copy of the engine-reserved names that are added to every
// name index regardless of what the containers hold.
func Builtins() []string {
	out := make([]string, len(builtinNames))
	copy(out, builtinNames)
	return out
}

// Costume and mirror suffixes the engine appends to a base animation name.
var (
	costumeSuffixes = []string{"_C2", "_C3"}
	mirrorSuffixes  = []string{"L", "R"}
	pluralSuffixes  = []string{"s4s", "s3s"}
)

// Generator produces name variants. It is immutable after construction and
// safe for concurrent use.
type Generator struct {
	builtins []string
}

// NewGenerator returns a generator that emits builtins alongside every base
// name. The slice is copied.
func NewGenerator(builtins []string) *Generator {
	b := make([]string, len(builtins))
	copy(b, builtins)
	return &Generator{builtins: b}
}

// Generate returns, in order: base, the costume variants, the mirror
// variants, every builtin name, and for names ending in s4s/s3s (any case)
// the singular form without the trailing character.
func (g *Generator) Generate(base string) []string {
	out := make([]string, 0, 1+len(costumeSuffixes)+len(mirrorSuffixes)+len(g.builtins)+1)
	out = append(out, base)
	for _, s := range costumeSuffixes {
		out = append(out, base+s)
	}
	for _, s := range mirrorSuffixes {
		out = append(out, base+s)
	}
	out = append(out, g.builtins...)

	if singular, ok := singularForm(base); ok {
		out = append(out, singular)
	}
	return out
}

func singularForm(base string) (string, bool) {
	lowered := strings.ToLower(base)
	for _, suffix := range pluralSuffixes {
		if strings.HasSuffix(lowered, suffix) {
			return base[:len(base)-1], true
		}
	}
	return "", false
}

func parseNameList(data string) []string {
	var names []string
	sc := bufio.NewScanner(strings.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names
}
