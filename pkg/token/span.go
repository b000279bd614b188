// Package token defines the positional and structural types produced by
// the lexical scanner: source positions, tagged lexical spans, and the
// balanced bracket-group tree that drives every rewrite stage.
package token

// SpanKind tags a contiguous region of source text.
type SpanKind int

// Span kinds. Spans of these kinds partition a document completely and
// in order; rewrite stages only ever touch Code spans.
const (
	Code        SpanKind = iota // ordinary source text
	StringLit                   // quoted string literal, delimiters included
	CommentBody                 // comment text, delimiters included
)

func (k SpanKind) String() string {
	switch k {
	case Code:
		return "code"
	case StringLit:
		return "string"
	case CommentBody:
		return "comment"
	default:
		return "unknown"
	}
}

// LexicalSpan is one tagged region of the scanned document.
type LexicalSpan struct {
	Kind  SpanKind
	Start int // byte offset, inclusive
	End   int // byte offset, exclusive
}

// GroupKind identifies the delimiter family of a bracket group.
type GroupKind int

// Group kinds. Only CallBracket and AssociationBracket are rewritten;
// Paren, Brace and BareBracket groups are tracked so arrow scoping can
// determine the immediate enclosing group of any offset.
const (
	CallBracket        GroupKind = iota // ident[...]
	BareBracket                         // [...] with no preceding identifier
	AssociationBracket                  // <|...|>
	Paren                               // (...)
	Brace                               // {...}
)

func (k GroupKind) String() string {
	switch k {
	case CallBracket:
		return "call"
	case BareBracket:
		return "bare"
	case AssociationBracket:
		return "association"
	case Paren:
		return "paren"
	case Brace:
		return "brace"
	default:
		return "unknown"
	}
}

// Group is one matched delimiter pair found in a Code span. Groups form
// a tree by nesting; a group's children are ordered by offset and never
// cross string or comment boundaries.
type Group struct {
	Kind  GroupKind
	Open  int // offset of the first byte of the opening delimiter
	Close int // offset of the first byte of the closing delimiter
	Depth int // nesting depth, 0 for top-level groups

	// Ident is the identifier token immediately preceding the opening
	// delimiter, when there is one. Set for CallBracket and for Paren
	// groups in call position.
	Ident      string
	IdentStart int

	Parent   *Group
	Children []*Group
}

// OpenWidth returns the byte width of the opening delimiter.
func (g *Group) OpenWidth() int {
	if g.Kind == AssociationBracket {
		return 2
	}
	return 1
}

// CloseWidth returns the byte width of the closing delimiter.
func (g *Group) CloseWidth() int {
	if g.Kind == AssociationBracket {
		return 2
	}
	return 1
}

// Inner returns the offsets of the group's interior, delimiters excluded.
func (g *Group) Inner() (start, end int) {
	return g.Open + g.OpenWidth(), g.Close
}

// Contains reports whether offset falls strictly inside the group's
// interior.
func (g *Group) Contains(offset int) bool {
	start, end := g.Inner()
	return offset >= start && offset < end
}
