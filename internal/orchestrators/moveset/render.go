package moveset

import (
	"strings"
	"unicode"

	"github.com/KirkDiggler/fitd/internal/scripts"
)

// MoveDefinition is one move ready to render. Nil scripts render as empty
// sections.
type MoveDefinition struct {
	Name       string
	Unlisted   bool
	Main       scripts.Script
	Effect     scripts.Script
	Sound      scripts.Script
	Expression scripts.Script
}

// Render produces the .acm document:
//
//	MoveDef Attack11
//	{
//		Main()
//		{
//			<game script lines>
//		}
//
//		Effect()
//		...
//	}
func (d *MoveDefinition) Render() string {
	var b strings.Builder
	b.WriteString("MoveDef ")
	b.WriteString(d.Name)
	if d.Unlisted {
		b.WriteString(" : Unlisted")
	}
	b.WriteString("\n{\n")

	writeSection(&b, "Main", d.Main)
	writeSection(&b, "Effect", d.Effect)
	writeSection(&b, "Sound", d.Sound)
	writeSection(&b, "Expression", d.Expression)

	b.WriteString("}\n")
	return b.String()
}

func writeSection(b *strings.Builder, label string, s scripts.Script) {
	b.WriteString("\t")
	b.WriteString(label)
	b.WriteString("()\n\t{\n")
	if s != nil {
		for _, line := range strings.Split(s.Deserialize(), "\n") {
			b.WriteString("\t\t")
			b.WriteString(strings.TrimRightFunc(line, unicode.IsSpace))
			b.WriteString("\n")
		}
	}
	b.WriteString("\t}\n\n")
}

// set stores s in the section for cat
func (d *MoveDefinition) set(cat scripts.Category, s scripts.Script) {
	switch cat {
	case scripts.CategoryGame:
		d.Main = s
	case scripts.CategoryEffect:
		d.Effect = s
	case scripts.CategorySound:
		d.Sound = s
	case scripts.CategoryExpression:
		d.Expression = s
	}
}
