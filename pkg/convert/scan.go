package convert

import (
	"github.com/wikikg-labs/mconv/pkg/token"
)

// ScanResult holds one left-to-right pass over a document: the ordered
// span partition and the bracket-group tree. Offsets are relative to the
// exact text that was scanned; any rewrite invalidates them, so every
// rewriting stage re-scans its own input.
type ScanResult struct {
	Spans  []token.LexicalSpan
	Groups []*token.Group // document order by opening offset
}

// Scan tokenizes the document into {Code, StringLit, CommentBody} spans
// and builds the balanced bracket-group tree. Scanner state is either
// Code or InString(quote); inside a string a backslash consumes the next
// byte unconditionally and bracket counting is suspended.
func Scan(text string) (*ScanResult, error) {
	res := &ScanResult{}
	var stack []*token.Group
	n := len(text)
	spanStart := 0

	flushCode := func(end int) {
		if end > spanStart {
			res.Spans = append(res.Spans, token.LexicalSpan{Kind: token.Code, Start: spanStart, End: end})
		}
	}

	open := func(kind token.GroupKind, off int, ident string, identStart int) {
		g := &token.Group{
			Kind:       kind,
			Open:       off,
			Close:      -1,
			Depth:      len(stack),
			Ident:      ident,
			IdentStart: identStart,
		}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			g.Parent = parent
			parent.Children = append(parent.Children, g)
		}
		res.Groups = append(res.Groups, g)
		stack = append(stack, g)
	}

	// close pops the innermost group, checking that the closing
	// delimiter at off matches its kind.
	closeGroup := func(off int, match func(token.GroupKind) bool, what string) error {
		if len(stack) == 0 {
			return newError(UnbalancedBrackets, PositionAt(text, off), "unexpected closing "+what)
		}
		g := stack[len(stack)-1]
		if !match(g.Kind) {
			return newError(UnbalancedBrackets, PositionAt(text, off),
				"closing "+what+" does not match open "+g.Kind.String()+" group")
		}
		g.Close = off
		stack = stack[:len(stack)-1]
		return nil
	}

	i := 0
	for i < n {
		switch c := text[i]; c {
		case '"', '\'':
			flushCode(i)
			start := i
			j := i + 1
			closed := false
			for j < n {
				if text[j] == '\\' && j+1 < n {
					j += 2
					continue
				}
				if text[j] == c {
					j++
					closed = true
					break
				}
				j++
			}
			if !closed {
				return nil, newError(UnterminatedString, PositionAt(text, start), "unterminated string literal")
			}
			res.Spans = append(res.Spans, token.LexicalSpan{Kind: token.StringLit, Start: start, End: j})
			spanStart = j
			i = j

		case '#':
			flushCode(i)
			j := i
			for j < n && text[j] != '\n' {
				j++
			}
			res.Spans = append(res.Spans, token.LexicalSpan{Kind: token.CommentBody, Start: i, End: j})
			spanStart = j
			i = j

		case '<':
			if i+1 < n && text[i+1] == '|' {
				open(token.AssociationBracket, i, "", 0)
				i += 2
			} else {
				i++
			}

		case '|':
			if i+1 < n && text[i+1] == '>' {
				if err := closeGroup(i, func(k token.GroupKind) bool { return k == token.AssociationBracket }, "|>"); err != nil {
					return nil, err
				}
				i += 2
			} else {
				i++
			}

		case '[':
			ident, identStart := identBefore(text, i)
			kind := token.BareBracket
			if ident != "" {
				kind = token.CallBracket
			}
			open(kind, i, ident, identStart)
			i++

		case ']':
			err := closeGroup(i, func(k token.GroupKind) bool {
				return k == token.CallBracket || k == token.BareBracket
			}, "]")
			if err != nil {
				return nil, err
			}
			i++

		case '(':
			ident, identStart := identBefore(text, i)
			open(token.Paren, i, ident, identStart)
			i++

		case ')':
			if err := closeGroup(i, func(k token.GroupKind) bool { return k == token.Paren }, ")"); err != nil {
				return nil, err
			}
			i++

		case '{':
			open(token.Brace, i, "", 0)
			i++

		case '}':
			if err := closeGroup(i, func(k token.GroupKind) bool { return k == token.Brace }, "}"); err != nil {
				return nil, err
			}
			i++

		default:
			i++
		}
	}

	if len(stack) > 0 {
		g := stack[len(stack)-1]
		return nil, newError(UnbalancedBrackets, PositionAt(text, g.Open),
			"unclosed "+g.Kind.String()+" group")
	}
	flushCode(n)
	return res, nil
}

// SpanAt returns the lexical span covering offset. The spans partition
// the document, so this always finds one for valid offsets.
func (r *ScanResult) SpanAt(offset int) token.LexicalSpan {
	for _, s := range r.Spans {
		if offset >= s.Start && offset < s.End {
			return s
		}
	}
	return token.LexicalSpan{Kind: token.Code, Start: offset, End: offset + 1}
}

// identBefore walks backwards from the opening delimiter at off and
// returns the identifier token immediately preceding it, if any.
func identBefore(text string, off int) (string, int) {
	j := off
	for j > 0 && (text[j-1] == ' ' || text[j-1] == '\t') {
		j--
	}
	end := j
	for j > 0 && isIdentByte(text[j-1]) {
		j--
	}
	if j == end {
		return "", 0
	}
	// Identifiers do not start with a digit.
	if text[j] >= '0' && text[j] <= '9' {
		return "", 0
	}
	return text[j:end], j
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// PositionAt recomputes line/column for an offset. Positions are only
// needed on the error path, so a fresh walk beats carrying line counters
// through every stage.
func PositionAt(text string, offset int) token.Position {
	line, col := 1, 1
	for i := 0; i < offset && i < len(text); i++ {
		if text[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return token.Position{Line: line, Column: col, Offset: offset}
}
