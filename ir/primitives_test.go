package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/ir"
)

func TestLengthUnitConversions(t *testing.T) {
	one := ir.FromMillimeters(25.4)
	assert.InDelta(t, 7200, float64(one), 1)
	assert.InDelta(t, 25.4, one.Millimeters(), 0.01)

	pt := ir.FromPoints(72)
	assert.InDelta(t, 7200, float64(pt), 1)
	assert.InDelta(t, 72, pt.Points(), 0.01)

	var zero ir.LengthUnit
	assert.Equal(t, 0.0, zero.Millimeters())
}

func TestColorBINPackingRoundTrips(t *testing.T) {
	c := ir.Color{R: 0x11, G: 0x22, B: 0x33, A: 0xFF}
	packed := c.ToBINPacked()
	assert.Equal(t, uint32(0x00332211), packed)
	back := ir.FromBINPacked(packed)
	assert.Equal(t, c, back)
}

func TestColorHexRoundTrips(t *testing.T) {
	c := ir.Color{R: 0xAB, G: 0xCD, B: 0xEF, A: 0xFF}
	hex := c.Hex()
	assert.Equal(t, "#ABCDEF", hex)
	back, err := ir.ParseHex(hex)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestParseHexRejectsMalformed(t *testing.T) {
	_, err := ir.ParseHex("not-a-color")
	require.Error(t, err)
	_, err = ir.ParseHex("#GGGGGG")
	require.Error(t, err)
}

func TestNewPercentRangeChecks(t *testing.T) {
	p, err := ir.NewPercent(1005, 0, 200)
	require.NoError(t, err)
	assert.Equal(t, int32(100), p.Whole())

	_, err = ir.NewPercent(3000, 0, 200)
	require.Error(t, err)
}
