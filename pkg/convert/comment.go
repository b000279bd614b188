package convert

import "strings"

// convertComments rewrites (* ... *) block comments to # line comments.
// Comment nesting is tracked: a (* inside a comment increments depth and
// only the matching *) at depth zero closes it. Multi-line bodies are
// re-emitted as one line comment per source line so the line count of
// the document is preserved. A (* inside a string literal does not open
// a comment.
func convertComments(text string) (string, error) {
	return walkComments(text, commentLines)
}

// stripComments removes (* ... *) block comments entirely, keeping the
// body's newlines so line numbers in later errors stay meaningful.
func stripComments(text string) (string, error) {
	return walkComments(text, func(body string) string {
		return strings.Repeat("\n", strings.Count(body, "\n"))
	})
}

func walkComments(text string, emit func(body string) string) (string, error) {
	var out strings.Builder
	out.Grow(len(text))
	n := len(text)
	i := 0
	for i < n {
		c := text[i]

		// Copy string literals verbatim; comment markers inside them
		// are plain text.
		if c == '"' || c == '\'' {
			j := i + 1
			for j < n {
				if text[j] == '\\' && j+1 < n {
					j += 2
					continue
				}
				if text[j] == c {
					j++
					break
				}
				j++
			}
			out.WriteString(text[i:j])
			i = j
			continue
		}

		if c == '(' && i+1 < n && text[i+1] == '*' {
			start := i
			depth := 1
			j := i + 2
			for j < n && depth > 0 {
				if text[j] == '(' && j+1 < n && text[j+1] == '*' {
					depth++
					j += 2
					continue
				}
				if text[j] == '*' && j+1 < n && text[j+1] == ')' {
					depth--
					j += 2
					continue
				}
				j++
			}
			if depth > 0 {
				return "", newError(UnterminatedComment, PositionAt(text, start), "unterminated block comment")
			}
			out.WriteString(emit(text[start+2 : j-2]))
			i = j
			continue
		}

		out.WriteByte(c)
		i++
	}
	return out.String(), nil
}

// commentLines prefixes each body line with #, one output line per input
// line.
func commentLines(body string) string {
	lines := strings.Split(body, "\n")
	parts := make([]string, len(lines))
	for k, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			parts[k] = "#"
		} else {
			parts[k] = "# " + trimmed
		}
	}
	return strings.Join(parts, "\n")
}
