package hwpconv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv"
	"github.com/tinywasm/hwpconv/bin"
	"github.com/tinywasm/hwpconv/container/memcontainer"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
	"github.com/tinywasm/hwpconv/xmlfmt"
)

// minimalDocument builds the smallest useful fixture: one A4 section,
// one paragraph with one empty run, justified alignment.
func minimalDocument() *ir.Document {
	doc := ir.NewDocument()
	doc.Metadata = ir.Metadata{Title: "T", Author: "A"}

	doc.Styles.AddFont(ir.Font{Name: "Batang"})
	cs := doc.Styles.AddCharShape(ir.CharShape{Size: ir.FromPoints(10)})
	ps := doc.Styles.AddParaShape(ir.ParaShape{Alignment: ir.AlignJustify})
	doc.Styles.AddStyle(ir.Style{NameKorean: "Normal", ParaShape: ps, CharShape: cs})

	para := ir.Paragraph{
		ParaShape:     ps,
		CharShapeRefs: []ir.CharShapeRef{{Position: 0, CharShape: cs}},
		Runs:          []ir.Run{{CharShape: &cs}},
	}
	doc.Sections = append(doc.Sections, ir.Section{
		Page: ir.PageDef{
			Width:  59544,
			Height: 84168,
		},
		Paragraphs: []ir.Paragraph{para},
	})
	return doc
}

func TestWriteBINThenReadBINRoundTripsMinimalDocument(t *testing.T) {
	doc := minimalDocument()
	require.NoError(t, doc.Validate())

	cw := memcontainer.NewMemContainer()
	result, err := hwpconv.WriteBIN(doc, cw, bin.WriterConfig{})
	require.NoError(t, err)
	assert.Empty(t, result.Warnings)

	cr, err := memcontainer.Decode(result.Value)
	require.NoError(t, err)

	readResult, err := hwpconv.ReadBIN(cr, bin.ReaderConfig{})
	require.NoError(t, err)

	got := readResult.Value
	require.Len(t, got.Sections, 1)
	assert.Equal(t, ir.LengthUnit(59544), got.Sections[0].Page.Width)
	assert.Equal(t, ir.LengthUnit(84168), got.Sections[0].Page.Height)
	require.Len(t, got.Sections[0].Paragraphs, 1)
	assert.Equal(t, ir.AlignJustify, got.Styles.ParaShapes[got.Sections[0].Paragraphs[0].ParaShape].Alignment)
	assert.Equal(t, "T", got.Metadata.Title)
	assert.Equal(t, "A", got.Metadata.Author)
}

func TestWriteXMLThenReadXMLRoundTripsMinimalDocument(t *testing.T) {
	doc := minimalDocument()
	require.NoError(t, doc.Validate())

	zw := memcontainer.NewMemZip()
	result, err := hwpconv.WriteXML(doc, zw, xmlfmt.WriterConfig{})
	require.NoError(t, err)

	zr, err := memcontainer.DecodeZip(result.Value)
	require.NoError(t, err)

	readResult, err := hwpconv.ReadXML(zr, xmlfmt.ReaderConfig{})
	require.NoError(t, err)

	got := readResult.Value
	require.Len(t, got.Sections, 1)
	assert.Equal(t, ir.LengthUnit(59544), got.Sections[0].Page.Width)
	assert.Equal(t, ir.LengthUnit(84168), got.Sections[0].Page.Height)
	require.Len(t, got.Sections[0].Paragraphs, 1)
	assert.Equal(t, ir.AlignJustify, got.Styles.ParaShapes[got.Sections[0].Paragraphs[0].ParaShape].Alignment)
	assert.Equal(t, "T", got.Metadata.Title)
	assert.Equal(t, "A", got.Metadata.Author)
}

func TestWriteBINFailsHardOnDanglingReference(t *testing.T) {
	doc := minimalDocument()
	bogus := ir.CharShapeId(99)
	doc.Sections[0].Paragraphs[0].Runs[0].CharShape = &bogus

	cw := memcontainer.NewMemContainer()
	_, err := hwpconv.WriteBIN(doc, cw, bin.WriterConfig{})
	require.Error(t, err)
}

// Master pages exist only on the XML side; emitting a document that
// carries them as binary bytes drops them with a single data-loss
// warning, and the bytes round-trip without them.
func TestWriteBINDropsMasterPagesWithWarning(t *testing.T) {
	doc := minimalDocument()
	doc.Extensions.XML = &ir.XMLExtensions{MasterPages: []ir.MasterPage{{Name: "mp"}}}

	cw := memcontainer.NewMemContainer()
	result, err := hwpconv.WriteBIN(doc, cw, bin.WriterConfig{})
	require.NoError(t, err)
	require.Len(t, result.Warnings, 1)
	assert.Equal(t, warn.CategoryDataLoss, result.Warnings[0].Category)
	assert.Equal(t, "master pages", result.Warnings[0].Feature)

	cr, err := memcontainer.Decode(result.Value)
	require.NoError(t, err)
	readResult, err := hwpconv.ReadBIN(cr, bin.ReaderConfig{})
	require.NoError(t, err)
	assert.Nil(t, readResult.Value.Extensions.XML)
}

// Cross-format conversion: a hyperlink control emitted as XML becomes a
// field span and folds back into the same control on read.
func TestHyperlinkControlSurvivesXMLRoundTrip(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	ctl := ir.Control{Kind: ir.ControlHyperlink, Hyperlink: &ir.Hyperlink{Target: "https://example", Display: "click"}}
	p.Runs[0].Content = append(p.Runs[0].Content, ir.RunContent{Kind: ir.ContentControl, Control: &ctl})
	require.NoError(t, doc.Validate())

	zw := memcontainer.NewMemZip()
	result, err := hwpconv.WriteXML(doc, zw, xmlfmt.WriterConfig{})
	require.NoError(t, err)

	zr, err := memcontainer.DecodeZip(result.Value)
	require.NoError(t, err)
	readResult, err := hwpconv.ReadXML(zr, xmlfmt.ReaderConfig{})
	require.NoError(t, err)

	var found *ir.Hyperlink
	for _, r := range readResult.Value.Sections[0].Paragraphs[0].Runs {
		for _, c := range r.Content {
			if c.Kind == ir.ContentControl && c.Control != nil && c.Control.Kind == ir.ControlHyperlink {
				found = c.Control.Hyperlink
			}
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, "https://example", found.Target)
	assert.Equal(t, "click", found.Display)
}

// A highlighted range re-expands into markpen markers that split the
// text, then folds back into the same range tag with its color.
func TestHighlightRangeTagSurvivesXMLRoundTrip(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	p.Runs[0].Content = []ir.RunContent{{Kind: ir.ContentText, Text: "abcdef"}}
	color := "#FFFF00"
	p.RangeTags = []ir.RangeTag{{Start: 1, End: 4, Kind: ir.RangeHighlight, Data: &color}}
	require.NoError(t, doc.Validate())

	zw := memcontainer.NewMemZip()
	result, err := hwpconv.WriteXML(doc, zw, xmlfmt.WriterConfig{})
	require.NoError(t, err)

	zr, err := memcontainer.DecodeZip(result.Value)
	require.NoError(t, err)
	readResult, err := hwpconv.ReadXML(zr, xmlfmt.ReaderConfig{})
	require.NoError(t, err)

	para := readResult.Value.Sections[0].Paragraphs[0]
	assert.Equal(t, "abcdef", paragraphText(para))
	require.Len(t, para.RangeTags, 1)
	tag := para.RangeTags[0]
	assert.Equal(t, uint32(1), tag.Start)
	assert.Equal(t, uint32(4), tag.End)
	assert.Equal(t, ir.RangeHighlight, tag.Kind)
	require.NotNil(t, tag.Data)
	assert.Equal(t, "#FFFF00", *tag.Data)
}

func paragraphText(p ir.Paragraph) string {
	out := ""
	for _, r := range p.Runs {
		for _, c := range r.Content {
			if c.Kind == ir.ContentText {
				out += c.Text
			}
		}
	}
	return out
}
