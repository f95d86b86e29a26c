package bin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/warn"
)

func TestFontListRoundTrips(t *testing.T) {
	fonts := []FontRecord{
		{Name: "Batang", FamilyTag: 1, Substitute: "Gungsuh", Embedded: false},
		{Name: "Gulim", FamilyTag: 2, Embedded: true, BinDataRef: 3},
	}
	payload := encodeFontList(fonts)
	got, err := decodeFontList(payload)
	require.NoError(t, err)
	assert.Equal(t, fonts, got)
}

func TestCharShapeListRoundTrips(t *testing.T) {
	shapes := []CharShapeRecord{{
		Size:            1000,
		Properties:      0x12345,
		Foreground:      0x00112233,
		Shade:           0x00445566,
		BorderFillIndex: -1,
	}}
	payload := encodeCharShapeList(shapes)
	got, err := decodeCharShapeList(payload)
	require.NoError(t, err)
	assert.Equal(t, shapes, got)
}

func TestParaShapeListRoundTrips(t *testing.T) {
	shapes := []ParaShapeRecord{{
		Properties1:     5,
		MarginLeft:      100,
		MarginRight:     200,
		HasBorder:       true,
		BorderFillIndex: 2,
		HasNumbering:    true,
		NumberingIndex:  1,
		BulletIndex:     -1,
		HasTabDef:       false,
		TabDefIndex:     -1,
	}}
	payload := encodeParaShapeList(shapes)
	got, err := decodeParaShapeList(payload)
	require.NoError(t, err)
	assert.Equal(t, shapes, got)
}

func TestBorderFillListRoundTrips(t *testing.T) {
	fills := []BorderFillRecord{{
		Left:       BorderEdgeRecord{Line: 1, Width: 10, Color: 0xFF0000},
		Right:      BorderEdgeRecord{Line: 1, Width: 10, Color: 0xFF0000},
		Top:        BorderEdgeRecord{Line: 1, Width: 10, Color: 0xFF0000},
		Bottom:     BorderEdgeRecord{Line: 1, Width: 10, Color: 0xFF0000},
		FillKind:   1,
		FillColor1: 0x00FF00,
	}}
	payload := encodeBorderFillList(fills)
	got, err := decodeBorderFillList(payload)
	require.NoError(t, err)
	assert.Equal(t, fills, got)
}

func TestDocInfoRoundTrips(t *testing.T) {
	info := DocInfo{
		Fonts:       []FontRecord{{Name: "Batang"}},
		CharShapes:  []CharShapeRecord{{Size: 1000, BorderFillIndex: -1}},
		ParaShapes:  []ParaShapeRecord{{BorderFillIndex: -1, NumberingIndex: -1, BulletIndex: -1, TabDefIndex: -1}},
		Styles:      []StyleRecord{{NameKorean: "Normal"}},
		BorderFills: nil,
		BinDataInfo: []BinDataInfoRecord{{Alias: "BIN0001", Format: 1}},
	}
	roots := encodeDocInfo(info)
	warnings := &warn.Channel{}
	got, err := decodeDocInfo(roots, warnings)
	require.NoError(t, err)
	assert.Equal(t, info.Fonts, got.Fonts)
	assert.Equal(t, info.CharShapes, got.CharShapes)
	assert.Equal(t, info.ParaShapes, got.ParaShapes)
	assert.Equal(t, info.Styles, got.Styles)
	assert.Equal(t, info.BinDataInfo, got.BinDataInfo)
	assert.Equal(t, 0, warnings.Len())
}
