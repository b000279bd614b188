package convert

import (
	"sort"
	"strings"

	"github.com/wikikg-labs/mconv/pkg/token"
)

// edit is one pending replacement of text[start:end] with repl. A
// zero-length range is an insertion.
type edit struct {
	start, end int
	repl       string
}

// applyEdits materializes a set of non-overlapping edits into a new
// buffer. Edits are applied in ascending offset order; offsets refer to
// the input text, so length changes never shift later edits.
func applyEdits(text string, edits []edit) string {
	if len(edits) == 0 {
		return text
	}
	sort.Slice(edits, func(i, j int) bool {
		if edits[i].start != edits[j].start {
			return edits[i].start < edits[j].start
		}
		return edits[i].end < edits[j].end
	})
	var b strings.Builder
	b.Grow(len(text))
	prev := 0
	for _, e := range edits {
		b.WriteString(text[prev:e.start])
		b.WriteString(e.repl)
		prev = e.end
	}
	b.WriteString(text[prev:])
	return b.String()
}

// byDepthDesc orders groups innermost-first, so nested groups are
// rewritten before the group that encloses them.
func byDepthDesc(groups []*token.Group) []*token.Group {
	sorted := make([]*token.Group, len(groups))
	copy(sorted, groups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Depth > sorted[j].Depth
	})
	return sorted
}

// rewriteCallBrackets converts every call-style bracket group
// ident[...] into parenthesized call syntax ident(...). Bare bracket
// groups with no preceding identifier are left untouched.
func rewriteCallBrackets(text string) (string, error) {
	res, err := Scan(text)
	if err != nil {
		return "", err
	}
	var edits []edit
	for _, g := range byDepthDesc(res.Groups) {
		if g.Kind != token.CallBracket {
			continue
		}
		edits = append(edits,
			edit{g.Open, g.Open + 1, "("},
			edit{g.Close, g.Close + 1, ")"},
		)
	}
	return applyEdits(text, edits), nil
}

// convertAssociations converts every association literal <|...|> into a
// mapping literal {...}, innermost-first.
func convertAssociations(text string) (string, error) {
	res, err := Scan(text)
	if err != nil {
		return "", err
	}
	var edits []edit
	for _, g := range byDepthDesc(res.Groups) {
		if g.Kind != token.AssociationBracket {
			continue
		}
		edits = append(edits,
			edit{g.Open, g.Open + 2, "{"},
			edit{g.Close, g.Close + 2, "}"},
		)
	}
	return applyEdits(text, edits), nil
}
