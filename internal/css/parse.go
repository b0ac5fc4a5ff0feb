package css

import "strings"

const importantToken = "!important"

// ParseDeclarations extracts declarations from the body of a single CSS
// rule. It runs on every keystroke of the live text editor, so it is
// deliberately tolerant: malformed input degrades to fewer declarations
// and never to an error. Round-trip fidelity is only guaranteed for
// text produced by Serialize; nested blocks, at-rules and multi-rule
// input are outside this function's contract.
func ParseDeclarations(ruleText string) []Declaration {
	start := strings.Index(ruleText, "{")
	end := strings.LastIndex(ruleText, "}")
	if start == -1 || end == -1 || end < start {
		return nil
	}

	var decls []Declaration
	for _, segment := range strings.Split(ruleText[start+1:end], ";") {
		segment = strings.TrimSpace(segment)
		// A comment is only ignorable when it occupies a whole segment
		// by itself; one embedded mid-value stays in the value text.
		if segment == "" || strings.HasPrefix(segment, "/*") {
			continue
		}

		colon := strings.Index(segment, ":")
		if colon == -1 {
			continue
		}

		property := strings.TrimSpace(segment[:colon])
		value := strings.TrimSpace(segment[colon+1:])

		important := strings.Contains(value, importantToken)
		if important && strings.HasSuffix(value, importantToken) {
			value = strings.TrimSpace(strings.TrimSuffix(value, importantToken))
		}

		decls = append(decls, Declaration{
			Property:  property,
			Value:     value,
			Important: important,
		})
	}
	return decls
}
