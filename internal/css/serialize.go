package css

import "strings"

// emptyRulePlaceholder keeps the text view from showing a bare {},
// which reads as broken mid-edit.
const emptyRulePlaceholder = "/* no properties defined yet */"

// Serialize renders a selector and its declarations as one CSS rule:
//
//	#clock {
//	  color: #ffffff !important;
//	}
//
// An empty declaration list renders the placeholder comment instead of
// an empty block. Values are emitted verbatim; nothing is escaped, so a
// value containing braces or semicolons produces invalid CSS rather
// than being silently rewritten.
func Serialize(selector string, decls []Declaration) string {
	var b strings.Builder
	b.WriteString(selector)
	b.WriteString(" {\n")
	if len(decls) == 0 {
		b.WriteString("  ")
		b.WriteString(emptyRulePlaceholder)
		b.WriteString("\n")
	}
	for _, d := range decls {
		b.WriteString("  ")
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value)
		if d.Important {
			b.WriteString(" !important")
		}
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
