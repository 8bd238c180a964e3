package cssparser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafleo/CSSTidy/internal/cssparser"
)

func TestParseSimpleRuleset(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`a { color: red; margin: 1px; }`))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	b := blocks[0]
	assert.False(t, b.IsAtRule)
	assert.Equal(t, "a", b.Selector)
	assert.Equal(t, []string{"color", "margin"}, b.Names())

	decl, ok := b.Get("color")
	require.True(t, ok)
	assert.Equal(t, "red", decl.Value)
}

func TestParseLowercasesPropertyNames(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`a { COLOR: red; }`))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].Has("color"))
}

func TestParseImportantDeclaration(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`a { color: red !important; }`))
	require.NoError(t, err)
	decl, ok := blocks[0].Get("color")
	require.True(t, ok)
	assert.True(t, decl.Important)
	assert.Equal(t, "red", decl.Value)
}

func TestParseAtRuleWithBody(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`@media screen { a { color: red; } }`))
	require.NoError(t, err)
	require.Len(t, blocks, 1)

	at := blocks[0]
	assert.True(t, at.IsAtRule)
	assert.False(t, at.Simple)
	require.Len(t, at.Children, 1)
	assert.Equal(t, "a", at.Children[0].Selector)
}

func TestParseSimpleAtRule(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`@import url(foo.css);`))
	require.NoError(t, err)
	require.Len(t, blocks, 1)
	assert.True(t, blocks[0].IsAtRule)
	assert.True(t, blocks[0].Simple)
}

func TestParseCustomProperty(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`a { --brand-color: #ff0000; }`))
	require.NoError(t, err)
	decl, ok := blocks[0].Get("--brand-color")
	require.True(t, ok)
	assert.Equal(t, "#ff0000", decl.Value)
}

func TestParseMultipleRulesets(t *testing.T) {
	blocks, err := cssparser.New(nil).Parse([]byte(`a { color: red; } b { color: blue; }`))
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "a", blocks[0].Selector)
	assert.Equal(t, "b", blocks[1].Selector)
}
