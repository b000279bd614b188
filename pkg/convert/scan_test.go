package convert_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wikikg-labs/mconv/pkg/convert"
	"github.com/wikikg-labs/mconv/pkg/token"
)

func TestScanCallVersusBareBrackets(t *testing.T) {
	res, err := convert.Scan(`f[x] + [y]`)
	require.NoError(t, err)
	require.Len(t, res.Groups, 2)

	assert.Equal(t, token.CallBracket, res.Groups[0].Kind)
	assert.Equal(t, "f", res.Groups[0].Ident)
	assert.Equal(t, token.BareBracket, res.Groups[1].Kind)
	assert.Equal(t, "", res.Groups[1].Ident)
}

func TestScanIdentWithWhitespaceBeforeBracket(t *testing.T) {
	res, err := convert.Scan(`AddEntity [Wing]`)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, token.CallBracket, res.Groups[0].Kind)
	assert.Equal(t, "AddEntity", res.Groups[0].Ident)
	assert.Equal(t, 0, res.Groups[0].IdentStart)
}

func TestScanDigitsAreNotAnIdent(t *testing.T) {
	res, err := convert.Scan(`42[x]`)
	require.NoError(t, err)
	require.Len(t, res.Groups, 1)
	assert.Equal(t, token.BareBracket, res.Groups[0].Kind)
}

func TestScanAssociationNesting(t *testing.T) {
	res, err := convert.Scan(`<|"a" -> f[<|"b" -> 1|>]|>`)
	require.NoError(t, err)
	require.Len(t, res.Groups, 3)

	outer := res.Groups[0]
	assert.Equal(t, token.AssociationBracket, outer.Kind)
	assert.Equal(t, 0, outer.Depth)
	require.Len(t, outer.Children, 1)

	call := outer.Children[0]
	assert.Equal(t, token.CallBracket, call.Kind)
	assert.Equal(t, outer, call.Parent)
	require.Len(t, call.Children, 1)
	assert.Equal(t, token.AssociationBracket, call.Children[0].Kind)
	assert.Equal(t, 2, call.Children[0].Depth)
}

func TestScanBracketsInsideStringIgnored(t *testing.T) {
	res, err := convert.Scan(`s = "a [ b <| c"`)
	require.NoError(t, err)
	assert.Empty(t, res.Groups)

	var kinds []token.SpanKind
	for _, s := range res.Spans {
		kinds = append(kinds, s.Kind)
	}
	assert.Equal(t, []token.SpanKind{token.Code, token.StringLit}, kinds)
}

func TestScanEscapedQuote(t *testing.T) {
	res, err := convert.Scan(`s = "a \" b"`)
	require.NoError(t, err)
	require.Len(t, res.Spans, 2)
	assert.Equal(t, token.StringLit, res.Spans[1].Kind)
	assert.Equal(t, len(`s = "a \" b"`), res.Spans[1].End)
}

func TestScanLineComment(t *testing.T) {
	res, err := convert.Scan("x = 1 # not code [\ny = 2")
	require.NoError(t, err)
	assert.Empty(t, res.Groups)

	found := false
	for _, s := range res.Spans {
		if s.Kind == token.CommentBody {
			found = true
			assert.Equal(t, 6, s.Start)
		}
	}
	assert.True(t, found)
}

func TestScanOrphanCloserPosition(t *testing.T) {
	_, err := convert.Scan("x = 1]\n")
	require.Error(t, err)

	var cerr *convert.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, convert.UnbalancedBrackets, cerr.Kind)
	assert.Equal(t, 5, cerr.Pos.Offset)
}

func TestScanMismatchedCloserKind(t *testing.T) {
	_, err := convert.Scan("f[x)")
	require.Error(t, err)

	var cerr *convert.Error
	require.True(t, errors.As(err, &cerr))
	assert.Equal(t, convert.UnbalancedBrackets, cerr.Kind)
}

func TestScanSpansPartitionDocument(t *testing.T) {
	text := `f["a"] # tail`
	res, err := convert.Scan(text)
	require.NoError(t, err)

	offset := 0
	for _, s := range res.Spans {
		assert.Equal(t, offset, s.Start)
		offset = s.End
	}
	assert.Equal(t, len(text), offset)
}

func TestPositionAt(t *testing.T) {
	text := "ab\ncd\nef"
	pos := convert.PositionAt(text, 4)
	assert.Equal(t, 2, pos.Line)
	assert.Equal(t, 2, pos.Column)
	assert.Equal(t, 4, pos.Offset)

	pos = convert.PositionAt(text, 0)
	assert.Equal(t, 1, pos.Line)
	assert.Equal(t, 1, pos.Column)
}
