package token_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wikikg-labs/mconv/pkg/token"
)

func TestPositionIsValid(t *testing.T) {
	assert.False(t, token.Position{}.IsValid())
	assert.True(t, token.Position{Line: 1, Column: 1}.IsValid())
}

func TestSpanContains(t *testing.T) {
	s := token.Span{
		Start: token.Position{Line: 1, Column: 3, Offset: 2},
		End:   token.Position{Line: 1, Column: 8, Offset: 7},
	}

	assert.True(t, s.Contains(2))
	assert.True(t, s.Contains(6))
	assert.False(t, s.Contains(7))
	assert.False(t, s.Contains(1))
	assert.Equal(t, 5, s.Len())
}

func TestGroupDelimiterWidths(t *testing.T) {
	assoc := &token.Group{Kind: token.AssociationBracket, Open: 4, Close: 20}
	assert.Equal(t, 2, assoc.OpenWidth())
	assert.Equal(t, 2, assoc.CloseWidth())

	start, end := assoc.Inner()
	assert.Equal(t, 6, start)
	assert.Equal(t, 20, end)

	call := &token.Group{Kind: token.CallBracket, Open: 4, Close: 20}
	assert.Equal(t, 1, call.OpenWidth())
	start, _ = call.Inner()
	assert.Equal(t, 5, start)
}

func TestGroupContains(t *testing.T) {
	g := &token.Group{Kind: token.CallBracket, Open: 0, Close: 10}
	assert.False(t, g.Contains(0))
	assert.True(t, g.Contains(1))
	assert.True(t, g.Contains(9))
	assert.False(t, g.Contains(10))
}

func TestKindStrings(t *testing.T) {
	assert.Equal(t, "association", token.AssociationBracket.String())
	assert.Equal(t, "call", token.CallBracket.String())
	assert.Equal(t, "string", token.StringLit.String())
	assert.Equal(t, "comment", token.CommentBody.String())
}
