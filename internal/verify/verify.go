// Package verify replays converted output against the fact-API call
// shapes and reports what downstream consumers would reject: unknown
// relation names, re-created entities, unquoted names, values that do
// not parse. It never executes anything; extraction is scanner-driven
// over the converted text.
package verify

import (
	"fmt"
	"os"
	"strings"

	"github.com/wikikg-labs/mconv/pkg/convert"
	"github.com/wikikg-labs/mconv/pkg/fact"
	"github.com/wikikg-labs/mconv/pkg/token"
)

// Problem is one finding in a converted file.
type Problem struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

// Report summarizes one converted file.
type Report struct {
	Path             string    `json:"path,omitempty"`
	Entities         int       `json:"entities"`
	Properties       int       `json:"properties"`
	Relations        int       `json:"relations"`
	UnknownRelations []string  `json:"unknown_relations,omitempty"`
	Problems         []Problem `json:"problems,omitempty"`
}

// OK reports whether the file verified clean.
func (r *Report) OK() bool {
	return len(r.Problems) == 0
}

func (r *Report) problemAt(text string, offset int, format string, args ...any) {
	pos := convert.PositionAt(text, offset)
	r.Problems = append(r.Problems, Problem{Line: pos.Line, Message: fmt.Sprintf(format, args...)})
}

// VerifyFile reads and verifies one converted file.
func VerifyFile(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	rep := Verify(string(data))
	rep.Path = path
	return rep, nil
}

// Verify checks one converted document. The returned report always
// carries whatever was extractable; scan failures become problems, not
// errors.
func Verify(text string) *Report {
	rep := &Report{}
	res, err := convert.Scan(text)
	if err != nil {
		rep.Problems = append(rep.Problems, Problem{Message: fmt.Sprintf("output does not scan: %v", err)})
		return rep
	}

	reg := fact.NewRegistry()
	for _, g := range res.Groups {
		if g.Kind != token.Paren || g.Ident == "" {
			continue
		}
		switch g.Ident {
		case "AddEntity":
			checkAddEntity(text, res, g, reg, rep)
		case "SetPropertyCited", "SetProperty":
			checkSetProperty(text, res, g, reg, rep)
		case "AssertCited":
			checkAssert(text, res, g, reg, rep)
		}
	}
	rep.Entities = reg.Len()
	return rep
}

func checkAddEntity(text string, res *convert.ScanResult, g *token.Group, reg *fact.Registry, rep *Report) {
	args := splitArgs(text, res, g)
	if len(args) == 0 {
		rep.problemAt(text, g.Open, "AddEntity call has no arguments")
		return
	}
	name, ok := stringArg(text, args[0])
	if !ok {
		rep.problemAt(text, args[0].start, "AddEntity name is not a string literal: %s", argText(text, args[0]))
		return
	}
	if _, exists := reg.Get(name); exists {
		rep.problemAt(text, g.Open, "entity %q created more than once", name)
	}
	e := reg.GetOrCreate(name)
	if len(args) > 1 {
		props, err := fact.ParseValue(argText(text, args[1]))
		if err != nil {
			rep.problemAt(text, args[1].start, "entity %q properties do not parse: %v", name, err)
			return
		}
		if props.Kind != fact.Mapping {
			rep.problemAt(text, args[1].start, "entity %q properties are %s, expected mapping", name, props.Kind)
			return
		}
		for _, k := range props.Keys {
			e.Props[k] = props.Map[k]
		}
	}
}

func checkSetProperty(text string, res *convert.ScanResult, g *token.Group, reg *fact.Registry, rep *Report) {
	args := splitArgs(text, res, g)
	if len(args) < 3 {
		rep.problemAt(text, g.Open, "%s call needs entity, property and value", g.Ident)
		return
	}
	entity := argText(text, args[0])
	if !isSymbol(entity) {
		rep.problemAt(text, args[0].start, "%s target %q is not an entity reference", g.Ident, entity)
		return
	}
	propName, ok := stringArg(text, args[1])
	if !ok {
		rep.problemAt(text, args[1].start, "property name is not a string literal: %s", argText(text, args[1]))
		return
	}
	value, err := fact.ParseValue(argText(text, args[2]))
	if err != nil {
		rep.problemAt(text, args[2].start, "property %q value does not parse: %v", propName, err)
		return
	}
	reg.GetOrCreate(entity).Props[propName] = value
	rep.Properties++
}

func checkAssert(text string, res *convert.ScanResult, g *token.Group, reg *fact.Registry, rep *Report) {
	args := splitArgs(text, res, g)
	if len(args) == 0 {
		rep.problemAt(text, g.Open, "AssertCited call has no arguments")
		return
	}
	// First argument must be a relation call REL(subject, object).
	var rel *token.Group
	for _, c := range g.Children {
		if c.Open >= args[0].start && c.Open < args[0].end && c.Kind == token.Paren && c.Ident != "" {
			rel = c
			break
		}
	}
	if rel == nil {
		rep.problemAt(text, args[0].start, "AssertCited first argument is not a relation call: %s", argText(text, args[0]))
		return
	}
	if !fact.IsKnownRelation(rel.Ident) {
		rep.problemAt(text, rel.IdentStart, "unknown relation %q", rel.Ident)
		rep.UnknownRelations = append(rep.UnknownRelations, rel.Ident)
	}
	relArgs := splitArgs(text, res, rel)
	if len(relArgs) != 2 {
		rep.problemAt(text, rel.Open, "relation %s takes a subject and an object, got %d arguments", rel.Ident, len(relArgs))
		return
	}
	for _, a := range relArgs {
		ent := argText(text, a)
		if isSymbol(ent) {
			reg.GetOrCreate(ent)
		}
	}
	rep.Relations++
}

// argSpan is one argument's extent within a call group.
type argSpan struct {
	start, end int
}

// splitArgs splits a call group's interior on top-level commas, jumping
// over nested groups and string literals.
func splitArgs(text string, res *convert.ScanResult, g *token.Group) []argSpan {
	start, end := g.Inner()
	var args []argSpan
	argStart := start
	i := start
	child := 0
	for i < end {
		if child < len(g.Children) && i >= g.Children[child].Open {
			c := g.Children[child]
			i = c.Close + c.CloseWidth()
			child++
			continue
		}
		if s := res.SpanAt(i); s.Kind != token.Code {
			i = s.End
			continue
		}
		if text[i] == ',' {
			args = append(args, argSpan{argStart, i})
			argStart = i + 1
		}
		i++
	}
	if strings.TrimSpace(text[argStart:end]) != "" || len(args) > 0 {
		args = append(args, argSpan{argStart, end})
	}
	return args
}

func argText(text string, a argSpan) string {
	return strings.TrimSpace(text[a.start:a.end])
}

// stringArg parses an argument expected to be a quoted string literal.
func stringArg(text string, a argSpan) (string, bool) {
	v, err := fact.ParseValue(argText(text, a))
	if err != nil || v.Kind != fact.String {
		return "", false
	}
	return v.Str, true
}

func isSymbol(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' || c == '$' ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(i > 0 && c >= '0' && c <= '9') {
			continue
		}
		return false
	}
	return true
}
