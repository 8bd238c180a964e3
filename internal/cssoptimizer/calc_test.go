package cssoptimizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRewriteCalcRemovesSpacesInsideParens(t *testing.T) {
	assert.Equal(t, "calc(100%-10px)", rewriteCalc("calc(100% - 10px)"))
}

func TestRewriteCalcPreservesCommaSeparatedArgs(t *testing.T) {
	assert.Equal(t, "min(10px,5%)", rewriteCalc("min(10px, 5%)"))
}

func TestRewriteCalcIsCaseInsensitiveOnHead(t *testing.T) {
	assert.Equal(t, "CALC(1+2)", rewriteCalc("CALC(1 + 2)"))
}

func TestRewriteCalcLeavesNonCalcValuesAlone(t *testing.T) {
	assert.Equal(t, "10px", rewriteCalc("10px"))
}

func TestRewriteCalcLeavesUnclosedParenAlone(t *testing.T) {
	assert.Equal(t, "calc(1 + 2", rewriteCalc("calc(1 + 2"))
}
