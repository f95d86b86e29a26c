package bin_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/hwpconv/bin"
)

func TestParaShapeProps1BitLayout(t *testing.T) {
	packed := bin.NewParaShapeProps1().
		SetAlignment(5).
		SetSnapToGrid(true).
		SetWidowOrphan(true).
		SetKeepWithNext(true).
		SetKeepLines(true).
		SetPageBreakBefore(true).
		SetAutoLineHeight(true).
		SetBorderConnect(true).
		SetIgnoreMargin(true).
		Uint32()

	got := bin.ParaShapeProps1FromUint32(packed)
	assert.Equal(t, uint8(5), got.Alignment())
	assert.True(t, got.SnapToGrid())
	assert.True(t, got.WidowOrphan())
	assert.True(t, got.KeepWithNext())
	assert.True(t, got.KeepLines())
	assert.True(t, got.PageBreakBefore())
	assert.True(t, got.AutoLineHeight())
	assert.True(t, got.BorderConnect())
	assert.True(t, got.IgnoreMargin())
}

func TestParaShapeProps1ZeroValueIsAllClear(t *testing.T) {
	got := bin.ParaShapeProps1FromUint32(0)
	assert.Equal(t, uint8(0), got.Alignment())
	assert.False(t, got.SnapToGrid())
	assert.False(t, got.WidowOrphan())
}

func TestCharShapePropsBitLayout(t *testing.T) {
	packed := bin.NewCharShapeProps().
		SetItalic(true).
		SetBold(true).
		SetUnderlineShape(3).
		SetOutline(2).
		SetShadow(6).
		SetEmboss(true).
		SetSuperscript(true).
		SetStrikethrough(4).
		SetEmphasis(1).
		SetKerning(true).
		Uint32()

	got := bin.CharShapePropsFromUint32(packed)
	assert.True(t, got.Italic())
	assert.True(t, got.Bold())
	assert.Equal(t, uint8(3), got.UnderlineShape())
	assert.Equal(t, uint8(2), got.Outline())
	assert.Equal(t, uint8(6), got.Shadow())
	assert.True(t, got.Emboss())
	assert.True(t, got.Superscript())
	assert.Equal(t, uint8(4), got.Strikethrough())
	assert.Equal(t, uint8(1), got.Emphasis())
	assert.True(t, got.Kerning())
	assert.False(t, got.Engrave())
	assert.False(t, got.Subscript())
}

func TestObjectCommonPropsBitLayout(t *testing.T) {
	packed := bin.NewObjectCommonProps().
		SetTreatAsChar(true).
		SetVerticalRel(2).
		SetHorizontalRel(1).
		SetAllowOverlap(true).
		SetWrapType(5).
		Uint32()

	got := bin.ObjectCommonPropsFromUint32(packed)
	assert.True(t, got.TreatAsChar())
	assert.Equal(t, uint8(2), got.VerticalRel())
	assert.Equal(t, uint8(1), got.HorizontalRel())
	assert.True(t, got.AllowOverlap())
	assert.Equal(t, uint8(5), got.WrapType())
}

func TestPropsBuilderFieldIsolatesBits(t *testing.T) {
	b := bin.NewPropsBuilder(32)
	b.SetField(2, 3, 0b111)
	b.SetBit(0, true)
	assert.Equal(t, uint32(0b111), b.Field(2, 3))
	assert.True(t, b.Bit(0))
	assert.False(t, b.Bit(1))
}
