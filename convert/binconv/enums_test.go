package binconv

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
)

func TestAlignmentDivideRoundTripsThroughBIN(t *testing.T) {
	warnings := &warn.Channel{}
	packed := alignmentToBIN(ir.AlignDivide, warnings)
	assert.Equal(t, uint8(5), packed)
	assert.Equal(t, 0, warnings.Len())

	got := alignmentFromBIN(packed, warnings)
	assert.Equal(t, ir.AlignDivide, got)
	assert.Equal(t, 0, warnings.Len())
}

func TestShadowBottomRightContinuousSurvivesOnlyItsAxis(t *testing.T) {
	// A BottomRightContinuous shadow round-trips through the binary
	// format where only the continuous/discrete axis survives.
	packed := shadowTypeToBIN(ir.ShadowBottomRightContinuous)
	assert.Equal(t, uint8(1), packed)

	warnings := &warn.Channel{}
	got := shadowTypeFromBIN(packed, warnings)
	assert.Equal(t, ir.ShadowBottomRightContinuous, got)
	assert.Equal(t, 0, warnings.Len())
}

func TestShadowDirectionalVariantsCollapseToDiscreteOrContinuous(t *testing.T) {
	// Any directional discrete variant collapses to the generic
	// discrete wire value; the binary format has no directional axis.
	packed := shadowTypeToBIN(ir.ShadowTopLeftDiscrete)
	assert.Equal(t, uint8(2), packed)
}

func TestClampShadowOffsetBoundsToSignedPercentRange(t *testing.T) {
	assert.Equal(t, int8(100), clampShadowOffset(127))
	assert.Equal(t, int8(-100), clampShadowOffset(-127))
	assert.Equal(t, int8(50), clampShadowOffset(50))
}

func TestNumberFormatGanjiSurvivesBINRoundTrip(t *testing.T) {
	// Unlike the XML emit direction, the binary format supports the
	// full range including Ganji.
	warnings := &warn.Channel{}
	packed := numberFormatToBIN(ir.NumberGanji, warnings)
	assert.Equal(t, 0, warnings.Len())
	got := numberFormatFromBIN(packed, warnings)
	assert.Equal(t, ir.NumberGanji, got)
	assert.Equal(t, 0, warnings.Len())
}

func TestEnumOutOfRangeValueFallsBackWithWarning(t *testing.T) {
	warnings := &warn.Channel{}
	got := alignmentFromBIN(200, warnings)
	assert.Equal(t, ir.AlignLeft, got)
	assert.Equal(t, 1, warnings.Len())
	assert.Equal(t, warn.CategoryFallbackApplied, warnings.Warnings()[0].Category)
}
