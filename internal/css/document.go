package css

import "strings"

// Document is the parsed shape of a whole stylesheet: top-level
// at-directives (GTK's @define-color, @import) kept verbatim, and one
// Style per top-level rule. The scan is tolerant in the same way the
// rule parser is; at-rules with bodies and top-level comments do not
// survive a rewrite.
type Document struct {
	Directives []string
	Styles     []Style
}

// ParseDocument splits stylesheet text into top-level chunks with a
// brace-depth scan and parses each rule body with ParseDeclarations.
// Chunks that are neither a rule nor an @-directive are dropped.
func ParseDocument(text string) Document {
	var doc Document
	depth := 0
	start := 0
	for i, r := range text {
		switch r {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
			if depth == 0 {
				doc.addRule(text[start : i+1])
				start = i + 1
			}
		case ';':
			if depth == 0 {
				doc.addDirective(text[start : i+1])
				start = i + 1
			}
		}
	}
	return doc
}

// Serialize renders the document back to stylesheet text: directives
// first, then one rule per selector separated by blank lines.
func (d Document) Serialize() string {
	var b strings.Builder
	for _, dir := range d.Directives {
		b.WriteString(dir)
		b.WriteString("\n")
	}
	if len(d.Directives) > 0 && len(d.Styles) > 0 {
		b.WriteString("\n")
	}
	for i, s := range d.Styles {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Serialize(s.Selector, s.Declarations))
		b.WriteString("\n")
	}
	return b.String()
}

// Index returns the position of the first style with the given
// selector, or -1.
func (d Document) Index(selector string) int {
	for i, s := range d.Styles {
		if s.Selector == selector {
			return i
		}
	}
	return -1
}

// Selectors lists selectors in document order.
func (d Document) Selectors() []string {
	out := make([]string, len(d.Styles))
	for i, s := range d.Styles {
		out[i] = s.Selector
	}
	return out
}

// SetStyle replaces the style with the same selector in place, or
// appends s when the selector is new.
func (d *Document) SetStyle(s Style) {
	if i := d.Index(s.Selector); i != -1 {
		d.Styles[i] = s
		return
	}
	d.Styles = append(d.Styles, s)
}

// RemoveStyle deletes the first style with the given selector and
// reports whether one was found.
func (d *Document) RemoveStyle(selector string) bool {
	i := d.Index(selector)
	if i == -1 {
		return false
	}
	d.Styles = append(d.Styles[:i], d.Styles[i+1:]...)
	return true
}

func (d *Document) addRule(chunk string) {
	open := strings.Index(chunk, "{")
	if open == -1 {
		return
	}
	selector := strings.TrimSpace(stripBlockComments(chunk[:open]))
	if selector == "" || strings.HasPrefix(selector, "@") {
		// Bodied at-rules (@media, @keyframes) are not representable
		// as a flat selector + declarations pair.
		return
	}
	d.Styles = append(d.Styles, Style{
		Selector:     selector,
		Declarations: ParseDeclarations(chunk),
	})
}

func (d *Document) addDirective(chunk string) {
	dir := strings.TrimSpace(stripBlockComments(chunk))
	if !strings.HasPrefix(dir, "@") {
		return
	}
	d.Directives = append(d.Directives, dir)
}

func stripBlockComments(s string) string {
	for {
		open := strings.Index(s, "/*")
		if open == -1 {
			return s
		}
		rest := strings.Index(s[open+2:], "*/")
		if rest == -1 {
			return s[:open]
		}
		s = s[:open] + s[open+2+rest+2:]
	}
}
