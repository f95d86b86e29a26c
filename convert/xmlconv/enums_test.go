package xmlconv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
)

func TestAlignmentDivideEncodesAsDistributeSpaceToken(t *testing.T) {
	// Divide alignment round-trips as the DISTRIBUTE_SPACE token.
	token := alignmentToXML(ir.AlignDivide)
	assert.Equal(t, "DISTRIBUTE_SPACE", token)

	warnings := &warn.Channel{}
	got := alignmentFromXML(token, warnings)
	assert.Equal(t, ir.AlignDivide, got)
	assert.Equal(t, 0, warnings.Len())
}

func TestNumberFormatGanjiFallsBackToDigitOnXMLEmit(t *testing.T) {
	// Ganji has no HWPX counterpart and folds to Digit on emit.
	warnings := &warn.Channel{}
	token := numberFormatToXML(ir.NumberGanji, warnings)
	assert.Equal(t, numberFormatToXML(ir.NumberDigit, &warn.Channel{}), token)
	assert.Equal(t, 1, warnings.Len())
	assert.Equal(t, warn.CategoryFallbackApplied, warnings.Warnings()[0].Category)
}

func TestUnrecognizedTokenFallsBackToZeroValueWithWarning(t *testing.T) {
	warnings := &warn.Channel{}
	got := alignmentFromXML("NOT_A_REAL_TOKEN", warnings)
	assert.Equal(t, ir.AlignLeft, got)
	assert.Equal(t, 1, warnings.Len())
}
