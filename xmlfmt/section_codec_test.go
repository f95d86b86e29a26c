package xmlfmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/warn"
)

func TestParagraphRunTextRoundTrips(t *testing.T) {
	p := ParagraphXML{
		ParaShapeIDRef: "0",
		StyleIDRef:     "0",
		Runs: []RunXML{
			{CharShapeIDRef: "1", Contents: []RunContentXML{{Text: "hello"}}},
		},
	}
	encoded := encodeParagraphXML(p)

	warnings := &warn.Channel{}
	decoded, err := decodeParagraphXML(encoded, warnings)
	require.NoError(t, err)
	require.Equal(t, 0, warnings.Len())

	require.Len(t, decoded.Runs, 1)
	assert.Equal(t, "1", decoded.Runs[0].CharShapeIDRef)
	require.Len(t, decoded.Runs[0].Contents, 1)
	assert.Equal(t, "hello", decoded.Runs[0].Contents[0].Text)
}

// A hyperlink fieldBegin/fieldEnd pair folds into the element tree and
// back without losing its parameter or display text.
func TestHyperlinkFieldPairRoundTrips(t *testing.T) {
	p := ParagraphXML{
		Runs: []RunXML{
			{Contents: []RunContentXML{
				{Field: &FieldXML{Kind: "HYPERLINK", ID: 3, Param: "https://example.com", Display: "link"}},
				{Field: &FieldXML{Kind: "end", ID: 3}},
			}},
		},
	}
	encoded := encodeParagraphXML(p)
	warnings := &warn.Channel{}
	decoded, err := decodeParagraphXML(encoded, warnings)
	require.NoError(t, err)

	require.Len(t, decoded.Runs[0].Contents, 2)
	begin := decoded.Runs[0].Contents[0].Field
	require.NotNil(t, begin)
	assert.Equal(t, "HYPERLINK", begin.Kind)
	assert.Equal(t, int32(3), begin.ID)
	assert.Equal(t, "https://example.com", begin.Param)
	assert.Equal(t, "link", begin.Display)

	end := decoded.Runs[0].Contents[1].Field
	require.NotNil(t, end)
	assert.Equal(t, "end", end.Kind)
	assert.Equal(t, int32(3), end.ID)
}

// A 2x2 table with one cell spanning two columns keeps its zone and
// span geometry across a round trip.
func TestTableWithMergedCellRoundTrips(t *testing.T) {
	tbl := TableXML{
		Common:  ObjectCommonXML{Width: 100, Height: 100},
		Rows:    2,
		Columns: 2,
		Zones: []ZoneXML{
			{StartRow: 0, StartCol: 0, EndRow: 0, EndCol: 1},
		},
		Cells: []CellXML{
			{Row: 0, Column: 0, RowSpan: 1, ColSpan: 2},
			{Row: 1, Column: 0, RowSpan: 1, ColSpan: 1},
			{Row: 1, Column: 1, RowSpan: 1, ColSpan: 1},
		},
	}
	encoded := encodeTableXML(tbl)
	warnings := &warn.Channel{}
	decoded, err := decodeTableXML(encoded, warnings)
	require.NoError(t, err)

	assert.Equal(t, int32(2), decoded.Rows)
	assert.Equal(t, int32(2), decoded.Columns)
	require.Len(t, decoded.Zones, 1)
	assert.Equal(t, int32(1), decoded.Zones[0].EndCol)
	require.Len(t, decoded.Cells, 3)
	assert.Equal(t, int32(2), decoded.Cells[0].ColSpan)
	assert.Equal(t, int32(1), decoded.Cells[1].ColSpan)
}

func TestRangeMarkHighlightRoundTrips(t *testing.T) {
	p := ParagraphXML{
		Runs: []RunXML{
			{Contents: []RunContentXML{
				{Range: &RangeMarkXML{Kind: "markpenBegin", Color: "#FFFF00"}},
				{Text: "highlighted"},
				{Range: &RangeMarkXML{Kind: "markpenEnd"}},
			}},
		},
	}
	encoded := encodeParagraphXML(p)
	warnings := &warn.Channel{}
	decoded, err := decodeParagraphXML(encoded, warnings)
	require.NoError(t, err)

	require.Len(t, decoded.Runs[0].Contents, 3)
	assert.Equal(t, "markpenBegin", decoded.Runs[0].Contents[0].Range.Kind)
	assert.Equal(t, "#FFFF00", decoded.Runs[0].Contents[0].Range.Color)
	assert.Equal(t, "markpenEnd", decoded.Runs[0].Contents[2].Range.Kind)
}

func TestUnknownRunChildProducesWarningNotError(t *testing.T) {
	run := NewElement(NSSection, "run")
	run.AddChild(NewElement(NSSection, "someFutureElement"))

	warnings := &warn.Channel{}
	decoded, err := decodeRunXML(run, warnings)
	require.NoError(t, err)
	assert.Empty(t, decoded.Contents)
	assert.Equal(t, 1, warnings.Len())
	assert.Equal(t, warn.CategoryUnknownElement, warnings.Warnings()[0].Category)
}

// The section marker rides inside the paragraph's first run and is
// promoted back to the paragraph on decode without run-content noise.
func TestSecPrEmbeddedInFirstRunRoundTrips(t *testing.T) {
	p := ParagraphXML{
		SecPr: &SecPrXML{PageWidth: 59544, PageHeight: 84168},
	}
	encoded := encodeParagraphXML(p)

	warnings := &warn.Channel{}
	decoded, err := decodeParagraphXML(encoded, warnings)
	require.NoError(t, err)
	assert.Equal(t, 0, warnings.Len())
	require.NotNil(t, decoded.SecPr)
	assert.Equal(t, int32(59544), decoded.SecPr.PageWidth)
	assert.Equal(t, int32(84168), decoded.SecPr.PageHeight)
	require.Len(t, decoded.Runs, 1)
	assert.Empty(t, decoded.Runs[0].Contents)
}

// A paragraph that already has a text run gains the marker in that same
// run rather than in a synthetic leading one.
func TestSecPrSharesTheFirstExistingRun(t *testing.T) {
	p := ParagraphXML{
		SecPr: &SecPrXML{PageWidth: 100, PageHeight: 200},
		Runs: []RunXML{
			{Contents: []RunContentXML{{Text: "body"}}},
		},
	}
	encoded := encodeParagraphXML(p)
	runs := encoded.ChildrenOf(NSSection, "run")
	require.Len(t, runs, 1)
	require.NotEmpty(t, runs[0].Children)
	assert.Equal(t, "secPr", runs[0].Children[0].Local)

	warnings := &warn.Channel{}
	decoded, err := decodeParagraphXML(encoded, warnings)
	require.NoError(t, err)
	require.NotNil(t, decoded.SecPr)
	require.Len(t, decoded.Runs, 1)
	require.Len(t, decoded.Runs[0].Contents, 1)
	assert.Equal(t, "body", decoded.Runs[0].Contents[0].Text)
}
