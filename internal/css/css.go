// Package css implements the declaration model behind the style editor:
// an ordered list of property declarations scoped to one selector, a
// serializer that renders it as a CSS rule, and a tolerant parser for
// the reverse direction. The property grid and the raw-text editor are
// both thin adapters over this package; neither keeps its own buffer of
// the truth.
package css

// Declaration is a single CSS property assignment. Value carries the
// raw value text with any !important suffix already stripped; the
// suffix is tracked separately in Important.
type Declaration struct {
	Property  string `json:"property"`
	Value     string `json:"value"`
	Important bool   `json:"important,omitempty"`
}

// Style is an ordered list of declarations for one selector. The
// selector is opaque to this package: it is never parsed, only echoed
// back out by Serialize.
type Style struct {
	Selector     string        `json:"selector"`
	Declarations []Declaration `json:"declarations"`
}

// Get returns the value of the first declaration matching property, or
// "" if there is none. An absent property and an explicit empty value
// are indistinguishable here; Set never produces empty values, so the
// ambiguity only exists for hand-written text.
func (s Style) Get(property string) string {
	d, ok := s.Lookup(property)
	if !ok {
		return ""
	}
	return d.Value
}

// Lookup returns the first declaration matching property.
func (s Style) Lookup(property string) (Declaration, bool) {
	for _, d := range s.Declarations {
		if d.Property == property {
			return d, true
		}
	}
	return Declaration{}, false
}

// Set returns a copy of s with property updated. An existing
// declaration is replaced in place, keeping its position; otherwise a
// new one is appended. An empty value deletes the first matching
// declaration instead of storing it. Only the first match is touched:
// duplicates that came in through the text path stay where they are.
func (s Style) Set(property, value string, important bool) Style {
	out := Style{
		Selector:     s.Selector,
		Declarations: make([]Declaration, 0, len(s.Declarations)+1),
	}

	if value == "" {
		removed := false
		for _, d := range s.Declarations {
			if !removed && d.Property == property {
				removed = true
				continue
			}
			out.Declarations = append(out.Declarations, d)
		}
		return out
	}

	replaced := false
	for _, d := range s.Declarations {
		if !replaced && d.Property == property {
			d = Declaration{Property: property, Value: value, Important: important}
			replaced = true
		}
		out.Declarations = append(out.Declarations, d)
	}
	if !replaced {
		out.Declarations = append(out.Declarations, Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		})
	}
	return out
}
