package cssoptimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafleo/CSSTidy/internal/cssast"
	"github.com/rafleo/CSSTidy/internal/config"
)

func block(pairs ...string) *cssast.Block {
	b := cssast.NewStyleBlock("x")
	for i := 0; i < len(pairs); i += 2 {
		b.Set(pairs[i], cssast.NewDeclaration(pairs[i+1]))
	}
	return b
}

func TestDissolveFourValueOneValueAppliesToAll(t *testing.T) {
	b := block("margin", "1px")
	o := New(config.Config{OptimiseShorthands: config.LevelCommon})
	o.dissolveShorthands(b)

	for _, name := range []string{"margin-top", "margin-right", "margin-bottom", "margin-left"} {
		decl, ok := b.Get(name)
		require.True(t, ok, name)
		assert.Equal(t, "1px", decl.Value)
	}
}

func TestDissolveFourValueThreeValuesRepeatsRight(t *testing.T) {
	b := block("padding", "1px 2px 3px")
	o := New(config.Config{OptimiseShorthands: config.LevelCommon})
	o.dissolveShorthands(b)

	top, _ := b.Get("padding-top")
	right, _ := b.Get("padding-right")
	bottom, _ := b.Get("padding-bottom")
	left, _ := b.Get("padding-left")
	assert.Equal(t, "1px", top.Value)
	assert.Equal(t, "2px", right.Value)
	assert.Equal(t, "3px", bottom.Value)
	assert.Equal(t, "2px", left.Value)
}

func TestDissolveFontAmbiguousWeightReinterpretedAsSize(t *testing.T) {
	// With no other numeric token, a bare number in the font shorthand's
	// first segment is the size, not a weight, even though it also looks
	// like a weight keyword ("400").
	b := block("font", "400 Arial")
	o := New(config.Config{OptimiseShorthands: config.LevelFont})
	o.dissolveShorthands(b)

	size, ok := b.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, "400", size.Value)
	weight, _ := b.Get("font-weight")
	assert.Equal(t, "normal", weight.Value, "the cleared weight is refilled from its default")
}

func TestDissolveFontKeepsExplicitWeightAndSize(t *testing.T) {
	b := block("font", "bold 12px Arial")
	o := New(config.Config{OptimiseShorthands: config.LevelFont})
	o.dissolveShorthands(b)

	weight, ok := b.Get("font-weight")
	require.True(t, ok)
	assert.Equal(t, "bold", weight.Value)
	size, ok := b.Get("font-size")
	require.True(t, ok)
	assert.Equal(t, "12px", size.Value)
}

func TestDissolveBackgroundRefusesGradient(t *testing.T) {
	b := block("background", "linear-gradient(red, blue)")
	o := New(config.Config{OptimiseShorthands: config.LevelBackground})
	o.dissolveShorthands(b)

	decl, ok := b.Get("background")
	require.True(t, ok, "gradient background must be left intact")
	assert.Equal(t, "linear-gradient(red, blue)", decl.Value)
}

func TestDissolveBackgroundClassifiesTokens(t *testing.T) {
	b := block("background", "url(a.png) no-repeat fixed center red")
	o := New(config.Config{OptimiseShorthands: config.LevelBackground})
	o.dissolveShorthands(b)

	img, _ := b.Get("background-image")
	repeat, _ := b.Get("background-repeat")
	attach, _ := b.Get("background-attachment")
	pos, _ := b.Get("background-position")
	color, _ := b.Get("background-color")

	assert.Equal(t, "url(a.png)", img.Value)
	assert.Equal(t, "no-repeat", repeat.Value)
	assert.Equal(t, "fixed", attach.Value)
	assert.Equal(t, "center", pos.Value)
	assert.Equal(t, "red", color.Value)
}

func TestDissolveAtLevelNoneDoesNothing(t *testing.T) {
	b := block("margin", "1px")
	o := New(config.Config{OptimiseShorthands: config.LevelNone})
	o.dissolveShorthands(b)

	assert.True(t, b.Has("margin"))
	assert.False(t, b.Has("margin-top"))
}
