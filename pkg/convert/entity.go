package convert

import (
	"github.com/wikikg-labs/mconv/pkg/token"
)

// addEntityFunc is the one call shape the detector knows about: the
// entity-creation call of the destination fact API.
const addEntityFunc = "AddEntity"

// detectEntityAssignments rewrites AddEntity(Name, rest...) calls whose
// first argument is a bare capitalized identifier into the assignment
// form Name = AddEntity("Name", rest...). Calls whose first argument is
// already a string literal are left unchanged, which makes the rewrite
// idempotent. Runs after bracket rewriting, so entity-creation calls are
// paren groups by now.
func detectEntityAssignments(text string) (string, error) {
	res, err := Scan(text)
	if err != nil {
		return "", err
	}
	var edits []edit
	for _, g := range res.Groups {
		if g.Kind != token.Paren || g.Ident != addEntityFunc {
			continue
		}
		start, end := g.Inner()
		a := start
		for a < end && (text[a] == ' ' || text[a] == '\t' || text[a] == '\n') {
			a++
		}
		if a >= end {
			continue
		}
		// Idempotence guard: first argument already a string literal.
		if text[a] == '"' || text[a] == '\'' {
			continue
		}
		if text[a] < 'A' || text[a] > 'Z' {
			continue
		}
		b := a
		for b < end && isIdentByte(text[b]) {
			b++
		}
		name := text[a:b]
		// The name must be followed by the property argument.
		c := b
		for c < end && (text[c] == ' ' || text[c] == '\t' || text[c] == '\n') {
			c++
		}
		if c >= end || text[c] != ',' {
			continue
		}
		edits = append(edits,
			edit{g.IdentStart, g.IdentStart, name + " = "},
			edit{a, b, `"` + name + `"`},
		)
	}
	return applyEdits(text, edits), nil
}
