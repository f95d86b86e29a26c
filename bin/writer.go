package bin

import (
	"github.com/tinywasm/hwpconv/container"
)

// WriterConfig mirrors ReaderConfig's stream-naming knobs for the
// inverse direction.
type WriterConfig struct {
	SectionStreamPrefix string
}

func (c WriterConfig) prefix() string {
	if c.SectionStreamPrefix == "" {
		return "BodyText/Section"
	}
	return c.SectionStreamPrefix
}

// Write emits a full document to a compound container, producing
// byte-identical output across repeated calls on an unchanged Document.
func Write(cw container.ContainerWriter, doc *Document, cfg WriterConfig) ([]byte, error) {
	infoStream, err := cw.CreateStream(docInfoStream)
	if err != nil {
		return nil, err
	}
	if err := WriteTree(infoStream, encodeDocInfo(doc.DocInfo)); err != nil {
		return nil, err
	}

	for i, sec := range doc.Sections {
		streamName := cfg.prefix() + itoa(i)
		stream, err := cw.CreateStream(streamName)
		if err != nil {
			return nil, err
		}
		if err := WriteTree(stream, encodeSection(sec)); err != nil {
			return nil, err
		}
	}

	// BinDataInfo order governs emission order, keeping the container
	// deterministic for identical documents.
	for _, b := range doc.DocInfo.BinDataInfo {
		data, ok := doc.BinaryData[b.Alias]
		if !ok {
			continue
		}
		stream, err := cw.CreateStream(binDataPrefix + b.Alias)
		if err != nil {
			return nil, err
		}
		if _, err := stream.Write(data); err != nil {
			return nil, err
		}
	}

	if len(doc.Extensions.DistributionDocument) > 0 {
		stream, err := cw.CreateStream(distributionStream)
		if err != nil {
			return nil, err
		}
		if _, err := stream.Write(doc.Extensions.DistributionDocument); err != nil {
			return nil, err
		}
	}
	if len(doc.Extensions.EmbeddedScripts) > 0 {
		stream, err := cw.CreateStream(scriptsStream)
		if err != nil {
			return nil, err
		}
		if _, err := stream.Write(doc.Extensions.EmbeddedScripts); err != nil {
			return nil, err
		}
	}
	return cw.Close()
}

func mkNode(tag uint16, level uint16, payload []byte) *Node {
	return &Node{Record: Record{TagID: tag, Level: level, Payload: payload}}
}

func encodeSection(sec Section) []*Node {
	roots := []*Node{
		mkNode(TagSectionDef, 0, encodeSectionDef(sec.Def)),
		mkNode(TagPageDef, 0, encodePageDef(sec.Page)),
		mkNode(TagFootnoteShape, 0, encodeFootnoteShape(sec.FootnoteShape, sec.EndnoteShape)),
		mkNode(TagPageBorderFill, 0, encodePageBorderFill(sec.PageBorderFill)),
		mkNode(TagColumnDef, 0, encodeColumnDef(sec.Column)),
	}
	for _, para := range sec.Paragraphs {
		roots = append(roots, encodeParagraphGroup(para, 0))
	}
	return roots
}

// encodeParagraphGroup is the inverse of decodeParagraphGroup: a
// TagParaHeader node at level carrying its text, char-shape-refs,
// range-tags and controls as level+1 children, in fixed emission order.
func encodeParagraphGroup(para ParagraphRecord, level uint16) *Node {
	node := mkNode(TagParaHeader, level, encodeParaHeader(para.Header))
	childLevel := level + 1
	node.Children = append(node.Children, mkNode(TagParaText, childLevel, encodeParaText(para.Text)))
	if len(para.CharShapeRefs) > 0 {
		node.Children = append(node.Children, mkNode(TagParaCharShapeRef, childLevel, encodeCharShapeRefs(para.CharShapeRefs)))
	}
	if len(para.RangeTags) > 0 {
		node.Children = append(node.Children, mkNode(TagParaRangeTag, childLevel, encodeRangeTags(para.RangeTags)))
	}
	for _, ctl := range para.Controls {
		node.Children = append(node.Children, encodeControl(ctl, childLevel))
	}
	return node
}

func encodeControl(ctl ParagraphGroupControl, level uint16) *Node {
	payload := append([]byte{}, ctl.Header.ID[:]...)
	var rest []byte
	switch {
	case ctl.Table != nil:
		rest = encodeTablePayload(*ctl.Table)
	case ctl.Picture != nil:
		rest = encodePicturePayload(*ctl.Picture)
	case ctl.Hyperlink != nil:
		rest = encodeHyperlinkPayload(*ctl.Hyperlink)
	case ctl.AutoNumber != nil:
		rest = encodeAutoNumberPayload(*ctl.AutoNumber)
	case ctl.NewNumber != nil:
		rest = encodeNewNumberPayload(*ctl.NewNumber)
	case ctl.PageNumber != nil:
		rest = encodePageNumberPayload(*ctl.PageNumber)
	case ctl.Field != nil:
		copy(payload, ctl.Field.Tag[:])
		rest = encodeFieldPayload(*ctl.Field)
	default:
		rest = ctl.Header.Payload
	}
	payload = append(payload, rest...)
	node := mkNode(TagControlHeader, level, payload)

	childLevel := level + 1
	switch {
	case ctl.Table != nil:
		for _, cell := range ctl.Table.Cells {
			node.Children = append(node.Children, encodeTableCell(cell, childLevel))
		}
	case len(ctl.Paragraphs) > 0:
		node.Children = append(node.Children, encodeListHeader(ctl.Paragraphs, childLevel))
	}
	return node
}

func encodeTableCell(cell TableCellRecord, level uint16) *Node {
	node := mkNode(TagTableCell, level, encodeTableCellHeader(cell))
	if len(cell.Paragraphs) > 0 {
		node.Children = append(node.Children, encodeListHeader(cell.Paragraphs, level+1))
	}
	return node
}

// encodeListHeader wraps nested paragraphs (table cells, headers and
// footers, footnotes and endnotes, text boxes, hidden comments) in a
// TagListHeader envelope, the inverse of decodeNestedParagraphs.
func encodeListHeader(paragraphs []ParagraphRecord, level uint16) *Node {
	node := mkNode(TagListHeader, level, nil)
	for _, para := range paragraphs {
		node.Children = append(node.Children, encodeParagraphGroup(para, level+1))
	}
	return node
}
