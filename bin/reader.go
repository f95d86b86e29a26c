package bin

import (
	"io"

	"github.com/tinywasm/hwpconv/container"
	"github.com/tinywasm/hwpconv/warn"
)

// Stream names inside the compound container.
const (
	docInfoStream      = "DocInfo"
	binDataPrefix      = "BinData/"
	distributionStream = "DocOptions/DistributeDoc"
	scriptsStream      = "Scripts/DefaultJScript"
)

// ReaderConfig carries reader strictness knobs with documented
// zero-value defaults.
type ReaderConfig struct {
	// SectionStreamPrefix names the per-section streams, defaulting to
	// "BodyText/Section" (stream name becomes "BodyText/Section0", ...).
	SectionStreamPrefix string
	// MaxSections bounds how many numbered section streams are probed
	// before stopping; zero falls back to 64.
	MaxSections int
}

func (c ReaderConfig) prefix() string {
	if c.SectionStreamPrefix == "" {
		return "BodyText/Section"
	}
	return c.SectionStreamPrefix
}

func (c ReaderConfig) maxSections() int {
	if c.MaxSections == 0 {
		return 64
	}
	return c.MaxSections
}

// sectionStreamName renders the i-th section stream name.
func sectionStreamName(cfg ReaderConfig, i int) string {
	return cfg.prefix() + itoa(i)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	n := i
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// Read decodes a full document out of a compound container, returning
// the structural model and the accumulated warning channel. The mapping
// to the canonical model happens in convert/binconv, one layer up.
func Read(cr container.ContainerReader, cfg ReaderConfig) (*Document, *warn.Channel, error) {
	warnings := &warn.Channel{}
	doc := &Document{}

	infoStream, err := cr.OpenStream(docInfoStream)
	if err != nil {
		return nil, warnings, err
	}
	infoRoots, err := ReadTree(infoStream)
	if err != nil {
		return nil, warnings, err
	}
	info, err := decodeDocInfo(infoRoots, warnings)
	if err != nil {
		return nil, warnings, err
	}
	doc.DocInfo = info

	for i := 0; i < cfg.maxSections(); i++ {
		streamName := sectionStreamName(cfg, i)
		stream, err := cr.OpenStream(streamName)
		if err != nil {
			break
		}
		section, err := readSection(stream, warnings)
		if err != nil {
			return nil, warnings, err
		}
		doc.Sections = append(doc.Sections, section)
	}
	if len(doc.Sections) == 0 {
		return nil, warnings, warn.MalformedInput("no section streams found")
	}

	if len(info.BinDataInfo) > 0 {
		doc.BinaryData = make(map[string][]byte, len(info.BinDataInfo))
		for _, b := range info.BinDataInfo {
			stream, err := cr.OpenStream(binDataPrefix + b.Alias)
			if err != nil {
				warnings.FallbackApplied("binary data stream missing for " + b.Alias)
				continue
			}
			data, err := io.ReadAll(stream)
			if err != nil {
				return nil, warnings, err
			}
			doc.BinaryData[b.Alias] = data
		}
	}

	// Family-private streams round-trip opaquely when present.
	if stream, err := cr.OpenStream(distributionStream); err == nil {
		if data, err := io.ReadAll(stream); err == nil {
			doc.Extensions.DistributionDocument = data
		}
	}
	if stream, err := cr.OpenStream(scriptsStream); err == nil {
		if data, err := io.ReadAll(stream); err == nil {
			doc.Extensions.EmbeddedScripts = data
		}
	}
	return doc, warnings, nil
}

func readSection(r io.Reader, warnings *warn.Channel) (Section, error) {
	roots, err := ReadTree(r)
	if err != nil {
		return Section{}, err
	}
	var sec Section
	for _, node := range roots {
		switch node.Record.TagID {
		case TagSectionDef:
			sec.Def, err = decodeSectionDef(node.Record.Payload)
		case TagPageDef:
			sec.Page, err = decodePageDef(node.Record.Payload)
		case TagFootnoteShape:
			sec.FootnoteShape, sec.EndnoteShape, err = decodeFootnoteShape(node.Record.Payload)
		case TagPageBorderFill:
			sec.PageBorderFill, err = decodePageBorderFill(node.Record.Payload)
		case TagColumnDef:
			sec.Column, err = decodeColumnDef(node.Record.Payload)
		case TagParaHeader:
			var para ParagraphRecord
			para, err = decodeParagraphGroup(node, warnings)
			if err == nil {
				sec.Paragraphs = append(sec.Paragraphs, para)
			}
		default:
			warnings.UnknownTag(uint32(node.Record.TagID))
			continue
		}
		if err != nil {
			return sec, err
		}
	}
	return sec, nil
}

// decodeParagraphGroup assembles one paragraph-header node and its
// children into a ParagraphRecord: text, char-shape refs, range tags,
// then controls, in wire order.
func decodeParagraphGroup(node *Node, warnings *warn.Channel) (ParagraphRecord, error) {
	header, err := decodeParaHeader(node.Record.Payload)
	if err != nil {
		return ParagraphRecord{}, err
	}
	para := ParagraphRecord{Header: header}
	for _, child := range node.Children {
		switch child.Record.TagID {
		case TagParaText:
			para.Text, err = decodeParaText(child.Record.Payload)
		case TagParaCharShapeRef:
			para.CharShapeRefs, err = decodeCharShapeRefs(child.Record.Payload)
		case TagParaRangeTag:
			tags, e := decodeRangeTags(child.Record.Payload)
			para.RangeTags = append(para.RangeTags, tags...)
			err = e
		case TagControlHeader:
			var ctl ParagraphGroupControl
			ctl, err = decodeControl(child, warnings)
			if err == nil {
				para.Controls = append(para.Controls, ctl)
			}
		default:
			warnings.UnknownTag(uint32(child.Record.TagID))
			continue
		}
		if err != nil {
			return para, err
		}
	}
	return para, nil
}

func decodeControl(node *Node, warnings *warn.Channel) (ParagraphGroupControl, error) {
	payload := node.Record.Payload
	if len(payload) < 4 {
		return ParagraphGroupControl{}, warn.MalformedInput("control header too short")
	}
	var id ControlID
	copy(id[:], payload[:4])
	rest := payload[4:]
	ctl := ParagraphGroupControl{Header: ControlHeaderRecord{ID: id, Payload: rest}}

	if id[0] == '%' {
		var tag FieldTag
		copy(tag[:], id[:])
		field, err := decodeFieldPayload(tag, rest)
		if err != nil {
			return ctl, err
		}
		ctl.Field = &field
		return ctl, nil
	}

	var err error
	switch id {
	case CtrlTable:
		table, e := decodeTablePayload(rest)
		err = e
		if err == nil {
			table.Cells, err = decodeTableCells(node, warnings)
			ctl.Table = &table
		}
	case CtrlShape:
		pic, e := decodePicturePayload(rest)
		err = e
		ctl.Picture = &pic
	case CtrlHyperlink:
		hl, e := decodeHyperlinkPayload(rest)
		err = e
		ctl.Hyperlink = &hl
	case CtrlAutoNumber:
		an, e := decodeAutoNumberPayload(rest)
		err = e
		ctl.AutoNumber = &an
	case CtrlNewNumber:
		nn, e := decodeNewNumberPayload(rest)
		err = e
		ctl.NewNumber = &nn
	case CtrlPageNumber:
		pn, e := decodePageNumberPayload(rest)
		err = e
		ctl.PageNumber = &pn
	case CtrlBookmark:
		// Name payload stays verbatim on the envelope; the converter's
		// bookmark-marker handling consumes it.
	case CtrlHeader, CtrlFooter, CtrlFootnote, CtrlEndnote, CtrlTextBox, CtrlHiddenCmt:
		ctl.Paragraphs, err = decodeNestedParagraphs(node, warnings)
	default:
		// Any control identifier outside this catalog: preserved as raw
		// bytes, same recovery path as an unknown record tag.
		warnings.UnknownTag(uint32(node.Record.TagID))
	}
	return ctl, err
}

func decodeTableCells(node *Node, warnings *warn.Channel) ([]TableCellRecord, error) {
	var cells []TableCellRecord
	for _, child := range node.Children {
		if child.Record.TagID != TagTableCell {
			continue
		}
		cell, err := decodeTableCellHeader(child.Record.Payload)
		if err != nil {
			return nil, err
		}
		cell.Paragraphs, err = decodeNestedParagraphs(child, warnings)
		if err != nil {
			return nil, err
		}
		cells = append(cells, cell)
	}
	return cells, nil
}

func decodeNestedParagraphs(node *Node, warnings *warn.Channel) ([]ParagraphRecord, error) {
	var paras []ParagraphRecord
	for _, child := range node.Children {
		if child.Record.TagID != TagListHeader {
			continue
		}
		for _, grandchild := range child.Children {
			if grandchild.Record.TagID != TagParaHeader {
				continue
			}
			para, err := decodeParagraphGroup(grandchild, warnings)
			if err != nil {
				return nil, err
			}
			paras = append(paras, para)
		}
	}
	return paras, nil
}
