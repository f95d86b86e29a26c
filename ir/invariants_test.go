package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/ir"
)

func minimalDocument() *ir.Document {
	doc := ir.NewDocument()
	doc.Styles.AddFont(ir.Font{Name: "Batang"})
	cs := doc.Styles.AddCharShape(ir.CharShape{Size: ir.FromPoints(10)})
	ps := doc.Styles.AddParaShape(ir.ParaShape{Alignment: ir.AlignJustify})
	doc.Styles.AddStyle(ir.Style{NameKorean: "Normal", ParaShape: ps, CharShape: cs})

	para := ir.Paragraph{
		ParaShape:     ps,
		CharShapeRefs: []ir.CharShapeRef{{Position: 0, CharShape: cs}},
		Runs: []ir.Run{{
			CharShape: &cs,
			Content:   []ir.RunContent{{Kind: ir.ContentText, Text: "hello"}},
		}},
	}
	doc.Sections = append(doc.Sections, ir.Section{Paragraphs: []ir.Paragraph{para}})
	return doc
}

func TestValidateAcceptsMinimalDocument(t *testing.T) {
	doc := minimalDocument()
	assert.NoError(t, doc.Validate())
}

func TestValidateRejectsDanglingCharShapeReference(t *testing.T) {
	doc := minimalDocument()
	bogus := ir.CharShapeId(99)
	doc.Sections[0].Paragraphs[0].Runs[0].CharShape = &bogus
	err := doc.Validate()
	require.Error(t, err)
}

func TestValidateRejectsMissingPositionZeroRef(t *testing.T) {
	doc := minimalDocument()
	doc.Sections[0].Paragraphs[0].CharShapeRefs = []ir.CharShapeRef{{Position: 1, CharShape: 0}}
	require.Error(t, doc.Validate())
}

func TestValidateRejectsNonMonotoneCharShapeRefs(t *testing.T) {
	doc := minimalDocument()
	doc.Sections[0].Paragraphs[0].CharShapeRefs = []ir.CharShapeRef{
		{Position: 0, CharShape: 0},
		{Position: 0, CharShape: 0},
	}
	require.Error(t, doc.Validate())
}

func TestValidateRejectsUnmatchedFieldStart(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	p.Runs[0].Content = append(p.Runs[0].Content, ir.RunContent{
		Kind:       ir.ContentFieldStart,
		FieldStart: &ir.FieldStart{ID: 1, Kind: ir.FieldHyperlink},
	})
	require.Error(t, doc.Validate())
}

func TestValidateAcceptsMatchedFieldPair(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	p.Runs[0].Content = append(p.Runs[0].Content,
		ir.RunContent{Kind: ir.ContentFieldStart, FieldStart: &ir.FieldStart{ID: 1, Kind: ir.FieldHyperlink}},
		ir.RunContent{Kind: ir.ContentFieldEnd, FieldEnd: &ir.FieldEnd{ID: 1}},
	)
	assert.NoError(t, doc.Validate())
}

func TestValidateRejectsPartiallyOverlappingRangeTagsOfSameKind(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	p.RangeTags = []ir.RangeTag{
		{Start: 0, End: 3, Kind: ir.RangeHighlight},
		{Start: 2, End: 5, Kind: ir.RangeHighlight},
	}
	require.Error(t, doc.Validate())
}

func TestValidateAcceptsNestedRangeTagsOfSameKind(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	p.RangeTags = []ir.RangeTag{
		{Start: 0, End: 5, Kind: ir.RangeHighlight},
		{Start: 1, End: 3, Kind: ir.RangeHighlight},
	}
	assert.NoError(t, doc.Validate())
}

func TestValidateRejectsTableCellExceedingGrid(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	tbl := &ir.Table{
		Rows: 1, Columns: 1,
		Cells: []ir.TableCell{{Row: 0, Column: 0, RowSpan: 1, ColSpan: 2}},
	}
	p.Runs[0].Content = append(p.Runs[0].Content, ir.RunContent{
		Kind:    ir.ContentControl,
		Control: &ir.Control{Kind: ir.ControlTable, Table: tbl},
	})
	require.Error(t, doc.Validate())
}

func TestValidateAcceptsSingleCellTable(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	tbl := &ir.Table{
		Rows: 1, Columns: 1,
		Cells: []ir.TableCell{{Row: 0, Column: 0, RowSpan: 1, ColSpan: 1}},
	}
	p.Runs[0].Content = append(p.Runs[0].Content, ir.RunContent{
		Kind:    ir.ContentControl,
		Control: &ir.Control{Kind: ir.ControlTable, Table: tbl},
	})
	assert.NoError(t, doc.Validate())
}

func TestDeclaredCharCountIsUTF16LengthPlusOne(t *testing.T) {
	doc := minimalDocument()
	p := &doc.Sections[0].Paragraphs[0]
	assert.Equal(t, len("hello"), p.UTF16Length())
	assert.Equal(t, len("hello")+1, p.DeclaredCharCount())
}
