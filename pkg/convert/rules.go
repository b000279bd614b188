package convert

import (
	"github.com/wikikg-labs/mconv/pkg/token"
)

// convertRuleArrows converts key -> value arrows to key: value, scoped
// strictly to association bodies. Only arrows whose immediate enclosing
// group is the association itself are converted; arrows inside nested
// groups in value position belong to those groups (and for call
// arguments are anonymous-function arrows, never rules). Arrows outside
// any association are left untouched. This stage must run while the
// <| |> delimiters still identify associations.
func convertRuleArrows(text string) (string, error) {
	res, err := Scan(text)
	if err != nil {
		return "", err
	}
	var edits []edit
	for _, g := range res.Groups {
		if g.Kind != token.AssociationBracket {
			continue
		}
		edits = append(edits, arrowEdits(text, res, g)...)
	}
	return applyEdits(text, edits), nil
}

// arrowEdits walks the direct interior of an association group, jumping
// over child groups and non-code spans, and collapses each arrow plus
// its surrounding whitespace into ": ".
func arrowEdits(text string, res *ScanResult, g *token.Group) []edit {
	var edits []edit
	start, end := g.Inner()
	child := 0
	i := start
	for i < end-1 {
		// Jump over nested groups: their arrows are not ours.
		if child < len(g.Children) && i >= g.Children[child].Open {
			c := g.Children[child]
			i = c.Close + c.CloseWidth()
			child++
			continue
		}
		// Jump over string and comment spans.
		if s := res.SpanAt(i); s.Kind != token.Code {
			i = s.End
			continue
		}
		if text[i] == '-' && text[i+1] == '>' {
			ws := i
			for ws > start && (text[ws-1] == ' ' || text[ws-1] == '\t') {
				ws--
			}
			after := i + 2
			for after < end && (text[after] == ' ' || text[after] == '\t') {
				after++
			}
			edits = append(edits, edit{ws, after, ": "})
			i = after
			continue
		}
		i++
	}
	return edits
}
