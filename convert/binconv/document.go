package binconv

import (
	"sort"
	"strconv"

	"github.com/tinywasm/hwpconv/bin"
	"github.com/tinywasm/hwpconv/container"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
)

// textItem pairs one decoded RunContent with the logical UTF-16
// position (RunContent.UTF16Len semantics, not raw wire offset) it
// starts at.
type textItem struct {
	pos     uint32
	content ir.RunContent
}

// DocumentFromBIN converts a fully-decoded binary document into the
// canonical model.
func DocumentFromBIN(doc *bin.Document, warnings *warn.Channel) (*ir.Document, error) {
	out := ir.NewDocument()
	out.Styles = stylesFromBIN(doc.DocInfo, warnings)
	out.Metadata = ir.Metadata{
		Title:    doc.DocInfo.Props.Title,
		Author:   doc.DocInfo.Props.Author,
		Subject:  doc.DocInfo.Props.Subject,
		Keywords: append([]string(nil), doc.DocInfo.Props.Keywords...),
		Version: ir.VersionQuad{
			Major: doc.DocInfo.Props.Major,
			Minor: doc.DocInfo.Props.Minor,
			Micro: doc.DocInfo.Props.Micro,
			Build: doc.DocInfo.Props.Build,
		},
	}
	if len(doc.Extensions.DistributionDocument) > 0 || len(doc.Extensions.EmbeddedScripts) > 0 {
		out.Extensions.BIN = &ir.BINExtensions{
			DistributionDocument: doc.Extensions.DistributionDocument,
			EmbeddedScripts:      doc.Extensions.EmbeddedScripts,
		}
	}

	for alias, data := range doc.BinaryData {
		id, ok := ir.ParseBINBinaryDataId(alias)
		if !ok {
			warnings.FallbackApplied("unparseable binary-data alias " + alias)
			continue
		}
		var format uint8
		for _, b := range doc.DocInfo.BinDataInfo {
			if b.Alias == alias {
				format = b.Format
				break
			}
		}
		out.BinaryData[id] = ir.BinaryData{Format: binaryFormatFromBIN(format, warnings), Bytes: data}
	}

	for _, sec := range doc.Sections {
		s, err := sectionFromBIN(sec, warnings)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, s)
	}
	if len(out.Sections) > 0 {
		out.Settings.LanguageLCID = out.Sections[0].LanguageLCID
	}
	return out, nil
}

// DocumentToBIN is the inverse of DocumentFromBIN. Callers invoke
// doc.Validate() first; conversion assumes a structurally valid
// document.
func DocumentToBIN(doc *ir.Document, warnings *warn.Channel) (*bin.Document, error) {
	out := &bin.Document{DocInfo: stylesToBIN(doc.Styles, warnings)}
	out.DocInfo.Props = bin.DocPropsRecord{
		Title:    doc.Metadata.Title,
		Author:   doc.Metadata.Author,
		Subject:  doc.Metadata.Subject,
		Keywords: append([]string(nil), doc.Metadata.Keywords...),
		Major:    doc.Metadata.Version.Major,
		Minor:    doc.Metadata.Version.Minor,
		Micro:    doc.Metadata.Version.Micro,
		Build:    doc.Metadata.Version.Build,
	}

	ids := make([]ir.BinaryDataId, 0, len(doc.BinaryData))
	for id := range doc.BinaryData {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	out.BinaryData = make(map[string][]byte, len(doc.BinaryData))
	for _, id := range ids {
		data := doc.BinaryData[id]
		alias := id.BINAlias()
		out.DocInfo.BinDataInfo = append(out.DocInfo.BinDataInfo, bin.BinDataInfoRecord{
			Alias:  alias,
			Format: binaryFormatToBIN(data.Format),
		})
		out.BinaryData[alias] = data.Bytes
	}

	if doc.Extensions.BIN != nil {
		out.Extensions = bin.Extensions{
			DistributionDocument: doc.Extensions.BIN.DistributionDocument,
			EmbeddedScripts:      doc.Extensions.BIN.EmbeddedScripts,
		}
	}
	if ext := doc.Extensions.XML; ext != nil {
		if len(ext.MasterPages) > 0 {
			warnings.DataLoss("master pages")
		}
		if len(ext.ForbiddenWords) > 0 {
			warnings.DataLoss("forbidden words")
		}
		if ext.TrackChangeConfig.Enabled || len(ext.TrackChangeConfig.AuthorColors) > 0 {
			warnings.DataLoss("track-change configuration")
		}
		if ext.LayoutCompatFlags != 0 {
			warnings.DataLoss("layout-compatibility flags")
		}
		if ext.DocumentOptionLink != "" {
			warnings.DataLoss("document-option link path")
		}
	}

	for _, sec := range doc.Sections {
		s, err := sectionToBIN(sec, warnings)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, s)
	}
	return out, nil
}

// ReadDocument opens a compound container and converts its content
// straight to the canonical model, composing the codec and converter
// layers.
func ReadDocument(cr container.ContainerReader, cfg bin.ReaderConfig) (*ir.Document, *warn.Channel, error) {
	wireDoc, warnings, err := bin.Read(cr, cfg)
	if err != nil {
		return nil, warnings, err
	}
	doc, err := DocumentFromBIN(wireDoc, warnings)
	if err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// WriteDocument validates doc and writes it to a compound container.
func WriteDocument(cw container.ContainerWriter, doc *ir.Document, cfg bin.WriterConfig) ([]byte, *warn.Channel, error) {
	warnings := &warn.Channel{}
	if err := doc.Validate(); err != nil {
		return nil, warnings, err
	}
	wireDoc, err := DocumentToBIN(doc, warnings)
	if err != nil {
		return nil, warnings, err
	}
	out, err := bin.Write(cw, wireDoc, cfg)
	return out, warnings, err
}

func sectionFromBIN(sec bin.Section, warnings *warn.Channel) (ir.Section, error) {
	props := bin.SectionDefPropsFromUint32(sec.Def.Properties)
	vis := props.VisibilityFlags()

	s := ir.Section{
		Page: ir.PageDef{
			Width: ir.LengthUnit(sec.Page.Width), Height: ir.LengthUnit(sec.Page.Height),
			MarginLeft: ir.LengthUnit(sec.Page.MarginLeft), MarginRight: ir.LengthUnit(sec.Page.MarginRight),
			MarginTop: ir.LengthUnit(sec.Page.MarginTop), MarginBottom: ir.LengthUnit(sec.Page.MarginBottom),
			MarginHeader: ir.LengthUnit(sec.Page.MarginHeader), MarginFooter: ir.LengthUnit(sec.Page.MarginFooter),
			MarginGutter: ir.LengthUnit(sec.Page.MarginGutter),
			Orientation:  orientationFromBIN(sec.Page.Orientation, warnings),
			Gutter:       gutterFromBIN(sec.Page.Gutter, warnings),
		},
		PageBorderArea:  pageBorderFillAreaFromBIN(sec.PageBorderFill.FillArea, warnings),
		PageBorderPages: pageBorderPageTypeFromBIN(sec.PageBorderFill.PageType, warnings),
		FootnoteShape: ir.NoteShape{
			NumberFormat:  numberFormatFromBIN(sec.FootnoteShape.NumberFormat, warnings),
			StartNumber:   sec.FootnoteShape.StartNumber,
			Numbering:     noteNumberingFromBIN(sec.FootnoteShape.Numbering, warnings),
			DividerLength: ir.LengthUnit(sec.FootnoteShape.DividerLength),
		},
		EndnoteShape: ir.NoteShape{
			NumberFormat:  numberFormatFromBIN(sec.EndnoteShape.NumberFormat, warnings),
			StartNumber:   sec.EndnoteShape.StartNumber,
			Numbering:     noteNumberingFromBIN(sec.EndnoteShape.Numbering, warnings),
			DividerLength: ir.LengthUnit(sec.EndnoteShape.DividerLength),
		},
		FootnotePlace:  footnotePlacementFromBIN(props.FootnotePlacement(), warnings),
		EndnotePlace:   endnotePlacementFromBIN(props.EndnotePlacement()),
		StartsOn:       pageStartsOnFromBIN(props.StartsOn(), warnings),
		HideHeader:     vis&0x01 != 0,
		HideFooter:     vis&0x02 != 0,
		HideMasterPage: vis&0x04 != 0,
		HideBorderFill: vis&0x08 != 0,
		HideFill:       vis&0x10 != 0,
		HidePageNumber: vis&0x20 != 0,
		Grid: ir.GridSettings{
			Visible:  props.GridVisible(),
			Unit:     ir.LengthUnit(sec.Def.GridUnit),
			ViewLine: props.GridViewLine(),
		},
		LanguageLCID: sec.Def.Language,
		Columns: ir.ColumnDef{
			Count:     bin.ColumnDefProps1FromUint32(sec.Column.Properties1).Count(),
			Direction: columnDirectionFromBIN(bin.ColumnDefProps1FromUint32(sec.Column.Properties1).Direction(), warnings),
			SameWidth: bin.ColumnDefProps1FromUint32(sec.Column.Properties1).SameWidth(),
			Spacing:   ir.LengthUnit(sec.Column.Spacing),
			Separator: columnSeparatorFromBIN(sec.Column.Separator, warnings),
		},
	}
	if sec.PageBorderFill.BorderFillIndex >= 0 {
		id := ir.BorderFillId(sec.PageBorderFill.BorderFillIndex)
		s.PageBorderFill = &id
	}
	if bin.PageBorderFillPropsFromUint32(sec.PageBorderFill.Properties).Position() {
		s.PageBorderWhere = ir.PageBorderTextArea
	} else {
		s.PageBorderWhere = ir.PageBorderWholePage
	}
	for _, w := range sec.Column.Widths {
		s.Columns.Widths = append(s.Columns.Widths, ir.LengthUnit(w))
	}
	for _, p := range sec.Paragraphs {
		para, err := paragraphFromBIN(p, warnings)
		if err != nil {
			return s, err
		}
		s.Paragraphs = append(s.Paragraphs, para)
	}
	return s, nil
}

func sectionToBIN(s ir.Section, warnings *warn.Channel) (bin.Section, error) {
	var vis uint8
	if s.HideHeader {
		vis |= 0x01
	}
	if s.HideFooter {
		vis |= 0x02
	}
	if s.HideMasterPage {
		vis |= 0x04
	}
	if s.HideBorderFill {
		vis |= 0x08
	}
	if s.HideFill {
		vis |= 0x10
	}
	if s.HidePageNumber {
		vis |= 0x20
	}
	props := bin.NewSectionDefProps().
		SetVisibilityFlags(vis).
		SetGridVisible(s.Grid.Visible).
		SetGridViewLine(s.Grid.ViewLine).
		SetStartsOn(pageStartsOnToBIN(s.StartsOn, warnings)).
		SetFootnotePlacement(footnotePlacementToBIN(s.FootnotePlace, warnings)).
		SetEndnotePlacement(endnotePlacementToBIN(s.EndnotePlace))

	sec := bin.Section{
		Def: bin.SectionDefRecord{Properties: props.Uint32(), GridUnit: int32(s.Grid.Unit), Language: s.LanguageLCID},
		Page: bin.PageDefRecord{
			Width: int32(s.Page.Width), Height: int32(s.Page.Height),
			MarginLeft: int32(s.Page.MarginLeft), MarginRight: int32(s.Page.MarginRight),
			MarginTop: int32(s.Page.MarginTop), MarginBottom: int32(s.Page.MarginBottom),
			MarginHeader: int32(s.Page.MarginHeader), MarginFooter: int32(s.Page.MarginFooter),
			MarginGutter: int32(s.Page.MarginGutter),
			Orientation:  orientationToBIN(s.Page.Orientation, warnings),
			Gutter:       gutterToBIN(s.Page.Gutter, warnings),
		},
		FootnoteShape: bin.NoteShapeRecord{
			NumberFormat:  numberFormatToBIN(s.FootnoteShape.NumberFormat, warnings),
			StartNumber:   s.FootnoteShape.StartNumber,
			Numbering:     noteNumberingToBIN(s.FootnoteShape.Numbering, warnings),
			DividerLength: int32(s.FootnoteShape.DividerLength),
		},
		EndnoteShape: bin.NoteShapeRecord{
			NumberFormat:  numberFormatToBIN(s.EndnoteShape.NumberFormat, warnings),
			StartNumber:   s.EndnoteShape.StartNumber,
			Numbering:     noteNumberingToBIN(s.EndnoteShape.Numbering, warnings),
			DividerLength: int32(s.EndnoteShape.DividerLength),
		},
		PageBorderFill: bin.PageBorderFillRecord{
			Properties:      bin.NewPageBorderFillProps().SetPosition(s.PageBorderWhere == ir.PageBorderTextArea).Uint32(),
			BorderFillIndex: borderFillIdToBIN(s.PageBorderFill),
			PageType:        pageBorderPageTypeToBIN(s.PageBorderPages, warnings),
			FillArea:        pageBorderFillAreaToBIN(s.PageBorderArea, warnings),
		},
		Column: bin.ColumnDefRecord{
			Properties1: bin.NewColumnDefProps1().
				SetCount(s.Columns.Count).
				SetDirection(columnDirectionToBIN(s.Columns.Direction, warnings)).
				SetSameWidth(s.Columns.SameWidth).Uint32(),
			Spacing:   int32(s.Columns.Spacing),
			Separator: columnSeparatorToBIN(s.Columns.Separator, warnings),
		},
	}
	if !s.Columns.SameWidth {
		for _, w := range s.Columns.Widths {
			sec.Column.Widths = append(sec.Column.Widths, int32(w))
		}
	}
	if s.LineNumbers != nil {
		warnings.DataLoss("section line-number shape")
	}
	for _, p := range s.Paragraphs {
		rec, err := paragraphToBIN(p, warnings)
		if err != nil {
			return sec, err
		}
		sec.Paragraphs = append(sec.Paragraphs, rec)
	}
	return sec, nil
}

// paragraphsFromBIN converts a nested-paragraph list (table cells,
// header/footer bodies, footnote/endnote bodies, text boxes, hidden
// comments) in document order.
func paragraphsFromBIN(prs []bin.ParagraphRecord, warnings *warn.Channel) ([]ir.Paragraph, error) {
	out := make([]ir.Paragraph, 0, len(prs))
	for _, pr := range prs {
		p, err := paragraphFromBIN(pr, warnings)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func paragraphsToBIN(ps []ir.Paragraph, warnings *warn.Channel) ([]bin.ParagraphRecord, error) {
	out := make([]bin.ParagraphRecord, 0, len(ps))
	for _, p := range ps {
		rec, err := paragraphToBIN(p, warnings)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func paragraphFromBIN(pr bin.ParagraphRecord, warnings *warn.Channel) (ir.Paragraph, error) {
	p := ir.Paragraph{
		ParaShape:  ir.ParaShapeId(pr.Header.ParaShapeIndex),
		Style:      ir.StyleId(pr.Header.StyleIndex),
		InstanceID: pr.Header.InstanceID,
		Break:      breakTypeFromBIN(pr.Header.BreakType, warnings),
	}
	for _, ref := range pr.CharShapeRefs {
		p.CharShapeRefs = append(p.CharShapeRefs, ir.CharShapeRef{Position: ref.Position, CharShape: ir.CharShapeId(ref.CharShapeIndex)})
	}
	for _, rt := range pr.RangeTags {
		p.RangeTags = append(p.RangeTags, rangeTagFromBIN(rt, warnings))
	}

	items, err := decodeParagraphItems(pr, warnings)
	if err != nil {
		return p, err
	}
	p.Runs = groupRunsByCharShape(items, p.CharShapeRefs)
	if uint32(p.DeclaredCharCount()) != pr.Header.CharCount {
		warnings.FallbackApplied("paragraph declared char count does not match decoded content")
	}
	return p, nil
}

// groupRunsByCharShape assigns each logical item to a Run, starting a
// new Run whenever the char shape in effect (per the paragraph's
// CharShapeRefs) changes, so a round-trip reproduces the original run
// boundaries.
func groupRunsByCharShape(items []textItem, refs []ir.CharShapeRef) []ir.Run {
	if len(items) == 0 {
		return nil
	}
	effectiveAt := func(pos uint32) *ir.CharShapeId {
		var cur *ir.CharShapeId
		for i := range refs {
			if refs[i].Position > pos {
				break
			}
			id := refs[i].CharShape
			cur = &id
		}
		return cur
	}

	var runs []ir.Run
	var curShape *ir.CharShapeId
	for _, it := range items {
		shape := effectiveAt(it.pos)
		if len(runs) == 0 || !sameCharShape(curShape, shape) {
			runs = append(runs, ir.Run{CharShape: shape})
			curShape = shape
		}
		last := &runs[len(runs)-1]
		last.Content = append(last.Content, it.content)
	}
	return runs
}

func sameCharShape(a, b *ir.CharShapeId) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// synthesizeCharShapeRefs rebuilds the (position, char_shape_id) array
// the wire needs from a paragraph's Runs, merging adjacent runs that
// carry the same effective char shape into a single ref, including
// across control boundaries where the content itself has no char shape
// of its own. A ref at position 0 is always present; when the first
// run carries no shape, an id-0 ref is inserted.
func synthesizeCharShapeRefs(runs []ir.Run) []bin.CharShapeRefRecord {
	var refs []bin.CharShapeRefRecord
	var pos uint32
	var lastShape ir.CharShapeId
	have := false
	for _, r := range runs {
		if r.CharShape != nil && (!have || *r.CharShape != lastShape) {
			refs = append(refs, bin.CharShapeRefRecord{Position: pos, CharShapeIndex: uint32(*r.CharShape)})
			lastShape = *r.CharShape
			have = true
		}
		for _, c := range r.Content {
			pos += uint32(c.UTF16Len())
		}
	}
	if len(refs) == 0 || refs[0].Position != 0 {
		refs = append([]bin.CharShapeRefRecord{{Position: 0, CharShapeIndex: 0}}, refs...)
	}
	return refs
}

func paragraphToBIN(p ir.Paragraph, warnings *warn.Channel) (bin.ParagraphRecord, error) {
	rec := bin.ParagraphRecord{
		Header: bin.ParaHeaderRecord{
			CharCount:      uint32(p.DeclaredCharCount()),
			ParaShapeIndex: uint16(p.ParaShape),
			StyleIndex:     uint16(p.Style),
			BreakType:      breakTypeToBIN(p.Break, warnings),
			InstanceID:     p.InstanceID,
		},
	}
	if len(p.CharShapeRefs) > 0 {
		for _, ref := range p.CharShapeRefs {
			rec.CharShapeRefs = append(rec.CharShapeRefs, bin.CharShapeRefRecord{Position: ref.Position, CharShapeIndex: uint32(ref.CharShape)})
		}
	} else {
		rec.CharShapeRefs = synthesizeCharShapeRefs(p.Runs)
	}
	for _, rt := range p.RangeTags {
		rec.RangeTags = append(rec.RangeTags, rangeTagToBIN(rt, warnings))
	}

	units, controls, err := encodeParagraphItems(p.Runs, warnings)
	if err != nil {
		return rec, err
	}
	rec.Text = units
	rec.Controls = controls
	return rec, nil
}

// decodeParagraphItems walks a paragraph's flat UTF-16 code-unit text
// stream, consuming one ParagraphGroupControl per charControl/
// charFieldStart/charBookmarkStart marker encountered, in order.
func decodeParagraphItems(pr bin.ParagraphRecord, warnings *warn.Channel) ([]textItem, error) {
	var items []textItem
	var pos uint32
	ctlIdx := 0
	var fieldStack []uint32
	var nextFieldID uint32
	text := pr.Text
	i := 0
	for i < len(text) {
		u := text[i]
		switch u {
		case charControl:
			if ctlIdx >= len(pr.Controls) {
				return nil, warn.MalformedInput("control marker with no matching control record")
			}
			ctl := pr.Controls[ctlIdx]
			ctlIdx++
			irCtl, err := controlFromBIN(ctl, warnings)
			if err != nil {
				return nil, err
			}
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentControl, Control: &irCtl}})
			pos++
			i++
		case charFieldStart:
			if ctlIdx >= len(pr.Controls) {
				return nil, warn.MalformedInput("field-start marker with no matching control record")
			}
			ctl := pr.Controls[ctlIdx]
			ctlIdx++
			id := nextFieldID
			nextFieldID++
			fieldStack = append(fieldStack, id)
			kind := ir.FieldUnknown
			param := ""
			switch {
			case ctl.Field != nil:
				kind = fieldKindFromBIN(ctl.Field.Tag)
				param = ctl.Field.Param
			case ctl.Hyperlink != nil:
				kind = ir.FieldHyperlink
				param = ctl.Hyperlink.Target
			default:
				warnings.FallbackApplied("field-start marker paired with non-field control")
			}
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFieldStart, FieldStart: &ir.FieldStart{ID: id, Kind: kind, Param: param}}})
			pos++
			i++
		case charFieldEnd:
			var id uint32
			if n := len(fieldStack); n > 0 {
				id = fieldStack[n-1]
				fieldStack = fieldStack[:n-1]
			} else {
				warnings.FallbackApplied("field-end marker without matching field-start")
			}
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFieldEnd, FieldEnd: &ir.FieldEnd{ID: id}}})
			pos++
			i++
		case charBookmarkStart:
			name := ""
			if ctlIdx < len(pr.Controls) {
				bc := pr.Controls[ctlIdx]
				ctlIdx++
				if s, err := bin.DecodeUTF16String(bc.Header.Payload); err == nil {
					name = s
				} else {
					warnings.FallbackApplied("bookmark name not decodable")
				}
			} else {
				warnings.FallbackApplied("bookmark-start marker with no matching control record")
			}
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentBookmarkStart, BookmarkName: name}})
			pos++
			i++
		case charBookmarkEnd:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentBookmarkEnd}})
			pos++
			i++
		case charTab:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentTab}})
			pos++
			i++
		case charLineBreak:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentLineBreak}})
			pos++
			i++
		case charHyphen:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentHyphen}})
			pos++
			i++
		case charNonBreakingSpace:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentNonBreakingSpace}})
			pos++
			i++
		case charFixedWidthSpace:
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFixedWidthSpace}})
			pos++
			i++
		case charComposeStart:
			i++
			var letters []rune
			for i < len(text) && text[i] != charComposeEnd {
				r, n := decodeRuneAt(text, i)
				letters = append(letters, r)
				i += n
			}
			if i < len(text) {
				i++
			}
			content := ir.RunContent{Kind: ir.ContentCompose, Compose: &ir.ComposeContent{Letters: letters}}
			items = append(items, textItem{pos, content})
			pos += uint32(content.UTF16Len())
		case charDutmalStart:
			i++
			start := i
			for i < len(text) && text[i] != charDutmalEnd {
				i++
			}
			main := utf16DecodeUnits(text[start:i])
			if i < len(text) {
				i++
			}
			warnings.FallbackApplied("dutmal sub annotation not separated from main in BIN text stream")
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentDutmal, Dutmal: &ir.DutmalContent{Main: main}}})
			pos += uint32(utf16CodeUnitLen(main))
		default:
			start := i
			for i < len(text) && !isMarker(text[i]) {
				i++
			}
			s := utf16DecodeUnits(text[start:i])
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentText, Text: s}})
			pos += uint32(utf16CodeUnitLen(s))
		}
	}
	return items, nil
}

// encodeParagraphItems is the inverse of decodeParagraphItems: it
// flattens a paragraph's Runs back into a BIN code-unit stream plus the
// parallel ParagraphGroupControl list the stream's markers reference.
func encodeParagraphItems(runs []ir.Run, warnings *warn.Channel) ([]uint16, []bin.ParagraphGroupControl, error) {
	var units []uint16
	var controls []bin.ParagraphGroupControl
	for _, r := range runs {
		for _, c := range r.Content {
			switch c.Kind {
			case ir.ContentText:
				units = append(units, utf16Encode(c.Text)...)
			case ir.ContentTab:
				units = append(units, charTab)
			case ir.ContentLineBreak:
				units = append(units, charLineBreak)
			case ir.ContentHyphen:
				units = append(units, charHyphen)
			case ir.ContentNonBreakingSpace:
				units = append(units, charNonBreakingSpace)
			case ir.ContentFixedWidthSpace:
				units = append(units, charFixedWidthSpace)
			case ir.ContentControl:
				if c.Control == nil {
					continue
				}
				ctl, err := controlToBIN(*c.Control, warnings)
				if err != nil {
					return nil, nil, err
				}
				if ctl == nil {
					continue
				}
				units = append(units, charControl)
				controls = append(controls, *ctl)
			case ir.ContentFieldStart:
				units = append(units, charFieldStart)
				if c.FieldStart == nil {
					controls = append(controls, bin.ParagraphGroupControl{Field: &bin.FieldRecord{Tag: bin.FieldUnknown}})
					continue
				}
				if c.FieldStart.Kind == ir.FieldHyperlink {
					hl := bin.HyperlinkRecord{Target: c.FieldStart.Param}
					controls = append(controls, bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlHyperlink}, Hyperlink: &hl})
					continue
				}
				tag := fieldKindToBIN(c.FieldStart.Kind)
				controls = append(controls, bin.ParagraphGroupControl{
					Field: &bin.FieldRecord{Tag: tag, Param: c.FieldStart.Param},
				})
			case ir.ContentFieldEnd:
				units = append(units, charFieldEnd)
			case ir.ContentBookmarkStart:
				units = append(units, charBookmarkStart)
				controls = append(controls, bin.ParagraphGroupControl{
					Header: bin.ControlHeaderRecord{ID: bin.CtrlBookmark, Payload: bin.EncodeUTF16String(c.BookmarkName)},
				})
			case ir.ContentBookmarkEnd:
				units = append(units, charBookmarkEnd)
			case ir.ContentCompose:
				units = append(units, charComposeStart)
				if c.Compose != nil {
					for _, r := range c.Compose.Letters {
						units = append(units, utf16Encode(string(r))...)
					}
				}
				units = append(units, charComposeEnd)
			case ir.ContentDutmal:
				units = append(units, charDutmalStart)
				if c.Dutmal != nil {
					if c.Dutmal.Sub != "" {
						warnings.DataLoss("dutmal sub annotation (BIN text stream carries only one annotation string)")
					}
					units = append(units, utf16Encode(c.Dutmal.Main)...)
				}
				units = append(units, charDutmalEnd)
			}
		}
	}
	return units, controls, nil
}

// rangeTagFromBIN unpacks a range tag's kind/data from its wire-packed
// Tag field: the high byte encodes the kind, the low three bytes carry
// either a packed highlight color, a track-change id, or an opaque
// numeric value.
func rangeTagFromBIN(rt bin.RangeTagRecord, warnings *warn.Channel) ir.RangeTag {
	highByte := byte(rt.Tag >> 24)
	low := rt.Tag & 0x00FFFFFF
	tag := ir.RangeTag{Start: rt.Start, End: rt.End}
	switch highByte {
	case byte(ir.RangeBookmark):
		tag.Kind = ir.RangeBookmark
	case byte(ir.RangeHyperlink):
		tag.Kind = ir.RangeHyperlink
	case byte(ir.RangeTrackChangeInsert):
		tag.Kind = ir.RangeTrackChangeInsert
		tag.TrackChange = &ir.TrackChangeInfo{}
		warnings.FallbackApplied("track-change author/timestamp not recoverable from a range tag")
	case byte(ir.RangeTrackChangeDelete):
		tag.Kind = ir.RangeTrackChangeDelete
		tag.TrackChange = &ir.TrackChangeInfo{}
		warnings.FallbackApplied("track-change author/timestamp not recoverable from a range tag")
	case byte(ir.RangeHighlight):
		tag.Kind = ir.RangeHighlight
		// The low three bytes pack the highlight color as RGB.
		c := ir.Color{R: uint8(low >> 16), G: uint8(low >> 8), B: uint8(low), A: 0xFF}
		s := c.Hex()
		tag.Data = &s
		return tag
	default:
		tag.Kind = ir.RangeOther
		tag.OtherTag = highByte
	}
	if low != 0 && tag.Data == nil && tag.Kind != ir.RangeBookmark {
		s := strconv.FormatUint(uint64(low), 10)
		tag.Data = &s
	}
	return tag
}

// rangeTagToBIN is the inverse of rangeTagFromBIN. Highlight colors
// pack into the low three bytes as RGB; other data survives only when
// it is a 24-bit numeric id.
func rangeTagToBIN(t ir.RangeTag, warnings *warn.Channel) bin.RangeTagRecord {
	var highByte byte
	switch t.Kind {
	case ir.RangeOther:
		highByte = t.OtherTag
	default:
		highByte = byte(t.Kind)
	}
	var low uint32
	if t.Data != nil {
		if t.Kind == ir.RangeHighlight {
			if c, err := ir.ParseHex(*t.Data); err == nil {
				low = uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
			} else {
				warnings.DataLoss("highlight color (not a parseable #RRGGBB value)")
			}
		} else if v, err := strconv.ParseUint(*t.Data, 10, 24); err == nil {
			low = uint32(v)
		} else {
			warnings.DataLoss("range tag opaque data (not a packable numeric id)")
		}
	}
	return bin.RangeTagRecord{Start: t.Start, End: t.End, Tag: uint32(highByte)<<24 | low}
}

// controlFromBIN maps a decoded control payload to its canonical
// variant. A payload this module does not decode structurally falls
// back to ControlUnknown, preserving the raw bytes for lossless
// passthrough.
func controlFromBIN(ctl bin.ParagraphGroupControl, warnings *warn.Channel) (ir.Control, error) {
	switch {
	case ctl.Table != nil:
		return tableControlFromBIN(*ctl.Table, warnings)
	case ctl.Picture != nil:
		return pictureControlFromBIN(*ctl.Picture, warnings), nil
	case ctl.Hyperlink != nil:
		return ir.Control{Kind: ir.ControlHyperlink, Hyperlink: &ir.Hyperlink{Target: ctl.Hyperlink.Target, Display: ctl.Hyperlink.Display}}, nil
	case ctl.AutoNumber != nil:
		return ir.Control{Kind: ir.ControlAutoNumber, AutoNumber: &ir.AutoNumber{
			Kind:   autoNumberKindFromBIN(ctl.AutoNumber.Kind, warnings),
			Format: numberFormatFromBIN(ctl.AutoNumber.Format, warnings),
		}}, nil
	case ctl.NewNumber != nil:
		return ir.Control{Kind: ir.ControlNewNumber, NewNumber: &ir.NewNumber{
			Kind:  autoNumberKindFromBIN(ctl.NewNumber.Kind, warnings),
			Value: ctl.NewNumber.Value,
		}}, nil
	case ctl.PageNumber != nil:
		pos := captionPositionFromBIN(ctl.PageNumber.Position, warnings)
		return ir.Control{Kind: ir.ControlAutoNumber, AutoNumber: &ir.AutoNumber{
			Kind:     ir.AutoNumberPage,
			Format:   numberFormatFromBIN(ctl.PageNumber.Format, warnings),
			Position: &pos,
		}}, nil
	case len(ctl.Paragraphs) > 0:
		paras, err := paragraphsFromBIN(ctl.Paragraphs, warnings)
		if err != nil {
			return ir.Control{}, err
		}
		switch ctl.Header.ID {
		case bin.CtrlHeader:
			return ir.Control{Kind: ir.ControlHeader, HeaderFooter: &ir.HeaderFooter{Paragraphs: paras}}, nil
		case bin.CtrlFooter:
			return ir.Control{Kind: ir.ControlFooter, HeaderFooter: &ir.HeaderFooter{Paragraphs: paras}}, nil
		case bin.CtrlFootnote:
			return ir.Control{Kind: ir.ControlFootnote, Note: &ir.Note{Paragraphs: paras}}, nil
		case bin.CtrlEndnote:
			return ir.Control{Kind: ir.ControlEndnote, Note: &ir.Note{Paragraphs: paras}}, nil
		case bin.CtrlTextBox:
			return ir.Control{Kind: ir.ControlTextBox, TextBox: &ir.TextBox{Paragraphs: paras}}, nil
		case bin.CtrlHiddenCmt:
			return ir.Control{Kind: ir.ControlHiddenComment, HiddenComment: &ir.HiddenComment{Paragraphs: paras}}, nil
		}
	}
	warnings.UnknownTag(controlIDToUint32(ctl.Header.ID))
	return ir.Control{Kind: ir.ControlUnknown, Unknown: &ir.Unknown{TagID: controlIDToUint32(ctl.Header.ID), Raw: ctl.Header.Payload}}, nil
}

// controlToBIN is the inverse of controlFromBIN. A nil
// *ParagraphGroupControl return means "drop this control and its
// text-stream marker entirely": the canonical model carries control
// kinds this wire has no representation for.
func controlToBIN(c ir.Control, warnings *warn.Channel) (*bin.ParagraphGroupControl, error) {
	switch c.Kind {
	case ir.ControlTable:
		rec, cells, err := tableControlToBIN(*c.Table, warnings)
		if err != nil {
			return nil, err
		}
		rec.Cells = cells
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlTable}, Table: &rec}, nil
	case ir.ControlPicture:
		rec := pictureControlToBIN(*c.Picture, warnings)
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlShape}, Picture: &rec}, nil
	case ir.ControlHyperlink:
		rec := bin.HyperlinkRecord{Target: c.Hyperlink.Target, Display: c.Hyperlink.Display}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlHyperlink}, Hyperlink: &rec}, nil
	case ir.ControlHeader, ir.ControlFooter:
		paras, err := paragraphsToBIN(c.HeaderFooter.Paragraphs, warnings)
		if err != nil {
			return nil, err
		}
		id := bin.CtrlHeader
		if c.Kind == ir.ControlFooter {
			id = bin.CtrlFooter
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: id}, Paragraphs: paras}, nil
	case ir.ControlFootnote, ir.ControlEndnote:
		paras, err := paragraphsToBIN(c.Note.Paragraphs, warnings)
		if err != nil {
			return nil, err
		}
		id := bin.CtrlFootnote
		if c.Kind == ir.ControlEndnote {
			id = bin.CtrlEndnote
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: id}, Paragraphs: paras}, nil
	case ir.ControlTextBox:
		paras, err := paragraphsToBIN(c.TextBox.Paragraphs, warnings)
		if err != nil {
			return nil, err
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlTextBox}, Paragraphs: paras}, nil
	case ir.ControlHiddenComment:
		paras, err := paragraphsToBIN(c.HiddenComment.Paragraphs, warnings)
		if err != nil {
			return nil, err
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlHiddenCmt}, Paragraphs: paras}, nil
	case ir.ControlUnknown:
		if c.Unknown == nil {
			return nil, nil
		}
		id := uint32ToControlID(c.Unknown.TagID)
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: id, Payload: c.Unknown.Raw}}, nil
	case ir.ControlEquation:
		warnings.DataLoss("equation control (no binary payload codec in this module)")
	case ir.ControlShape:
		warnings.DataLoss("freeform shape control (no binary payload codec in this module)")
	case ir.ControlBookmark:
		warnings.DataLoss("structural bookmark control (represented via range tags/markers on this side)")
	case ir.ControlAutoNumber:
		if c.AutoNumber.Position != nil && c.AutoNumber.Kind == ir.AutoNumberPage {
			rec := bin.PageNumberRecord{
				Position: captionPositionToBIN(*c.AutoNumber.Position, warnings),
				Format:   numberFormatToBIN(c.AutoNumber.Format, warnings),
			}
			return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlPageNumber}, PageNumber: &rec}, nil
		}
		rec := bin.AutoNumberRecord{
			Kind:   autoNumberKindToBIN(c.AutoNumber.Kind, warnings),
			Format: numberFormatToBIN(c.AutoNumber.Format, warnings),
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlAutoNumber}, AutoNumber: &rec}, nil
	case ir.ControlNewNumber:
		rec := bin.NewNumberRecord{
			Kind:  autoNumberKindToBIN(c.NewNumber.Kind, warnings),
			Value: c.NewNumber.Value,
		}
		return &bin.ParagraphGroupControl{Header: bin.ControlHeaderRecord{ID: bin.CtrlNewNumber}, NewNumber: &rec}, nil
	case ir.ControlVideo:
		warnings.DataLoss("video control (no binary payload codec in this module)")
	case ir.ControlOle:
		warnings.DataLoss("OLE object control (no binary payload codec in this module)")
	case ir.ControlChart:
		warnings.DataLoss("chart control (no binary payload codec in this module)")
	case ir.ControlFormObject:
		warnings.DataLoss("form object control (no binary payload codec in this module)")
	case ir.ControlTextArt:
		warnings.DataLoss("text-art control (no binary payload codec in this module)")
	case ir.ControlMemo:
		warnings.DataLoss("memo control (no binary payload codec in this module)")
	case ir.ControlIndexMark:
		warnings.DataLoss("index-mark control (no binary payload codec in this module)")
	default:
		warnings.DataLoss("unrecognized control kind")
	}
	return nil, nil
}

func tableControlFromBIN(t bin.TableRecord, warnings *warn.Channel) (ir.Control, error) {
	tbl := ir.Table{
		Common:     objectCommonFromBIN(t.Common, warnings),
		Rows:       t.Rows,
		Columns:    t.Columns,
		BorderFill: ir.BorderFillId(t.BorderFillIndex),
	}
	for _, h := range t.RowHeights {
		tbl.RowHeights = append(tbl.RowHeights, ir.LengthUnit(h))
	}
	for i := range t.ZoneStartRow {
		tbl.Zones = append(tbl.Zones, ir.TableZone{
			StartRow: t.ZoneStartRow[i], StartCol: t.ZoneStartCol[i],
			EndRow: t.ZoneEndRow[i], EndCol: t.ZoneEndCol[i],
			BorderFill: ir.BorderFillId(t.ZoneBorderFillIndex[i]),
		})
	}
	for _, c := range t.Cells {
		paras, err := paragraphsFromBIN(c.Paragraphs, warnings)
		if err != nil {
			return ir.Control{}, err
		}
		tbl.Cells = append(tbl.Cells, ir.TableCell{
			Row: c.Row, Column: c.Column, RowSpan: c.RowSpan, ColSpan: c.ColSpan,
			BorderFill: ir.BorderFillId(c.BorderFillIndex),
			Width:      ir.LengthUnit(c.Width), Height: ir.LengthUnit(c.Height),
			Paragraphs: paras,
		})
	}
	return ir.Control{Kind: ir.ControlTable, Table: &tbl}, nil
}

func tableControlToBIN(t ir.Table, warnings *warn.Channel) (bin.TableRecord, []bin.TableCellRecord, error) {
	rec := bin.TableRecord{
		Common:          objectCommonToBIN(t.Common, warnings),
		Rows:            t.Rows,
		Columns:         t.Columns,
		BorderFillIndex: int32(t.BorderFill),
	}
	for _, h := range t.RowHeights {
		rec.RowHeights = append(rec.RowHeights, int32(h))
	}
	for _, z := range t.Zones {
		rec.ZoneStartRow = append(rec.ZoneStartRow, z.StartRow)
		rec.ZoneStartCol = append(rec.ZoneStartCol, z.StartCol)
		rec.ZoneEndRow = append(rec.ZoneEndRow, z.EndRow)
		rec.ZoneEndCol = append(rec.ZoneEndCol, z.EndCol)
		rec.ZoneBorderFillIndex = append(rec.ZoneBorderFillIndex, int32(z.BorderFill))
	}
	var cells []bin.TableCellRecord
	for _, c := range t.Cells {
		paras, err := paragraphsToBIN(c.Paragraphs, warnings)
		if err != nil {
			return rec, nil, err
		}
		cells = append(cells, bin.TableCellRecord{
			Row: c.Row, Column: c.Column, RowSpan: c.RowSpan, ColSpan: c.ColSpan,
			BorderFillIndex: int32(c.BorderFill),
			Width:           int32(c.Width), Height: int32(c.Height),
			Paragraphs: paras,
		})
	}
	return rec, cells, nil
}

func pictureControlFromBIN(p bin.PictureRecord, warnings *warn.Channel) ir.Control {
	return ir.Control{Kind: ir.ControlPicture, Picture: &ir.Picture{
		Common:   objectCommonFromBIN(p.Common, warnings),
		Image:    ir.BinaryDataId(p.BinDataRef),
		Effect:   imageEffectFromBIN(p.Effect, warnings),
		Fill:     imageFillModeFromBIN(p.Fill, warnings),
		CropLeft: ir.LengthUnit(p.CropLeft), CropRight: ir.LengthUnit(p.CropRight),
		CropTop: ir.LengthUnit(p.CropTop), CropBottom: ir.LengthUnit(p.CropBottom),
	}}
}

func pictureControlToBIN(p ir.Picture, warnings *warn.Channel) bin.PictureRecord {
	return bin.PictureRecord{
		Common:     objectCommonToBIN(p.Common, warnings),
		BinDataRef: uint16(p.Image),
		Effect:     imageEffectToBIN(p.Effect, warnings),
		Fill:       imageFillModeToBIN(p.Fill, warnings),
		CropLeft:   int32(p.CropLeft), CropRight: int32(p.CropRight),
		CropTop: int32(p.CropTop), CropBottom: int32(p.CropBottom),
	}
}

func fieldKindFromBIN(tag bin.FieldTag) ir.FieldKind {
	switch tag {
	case bin.FieldHyperlink:
		return ir.FieldHyperlink
	case bin.FieldDate:
		return ir.FieldDate
	case bin.FieldTime:
		return ir.FieldTime
	case bin.FieldFile:
		return ir.FieldFile
	case bin.FieldTitle:
		return ir.FieldTitle
	case bin.FieldAuthor:
		return ir.FieldAuthor
	case bin.FieldPage:
		return ir.FieldPageNumber
	case bin.FieldSummary:
		return ir.FieldSummary
	case bin.FieldCrossRef:
		return ir.FieldCrossRef
	case bin.FieldMemo:
		return ir.FieldMemo
	case bin.FieldFormula:
		return ir.FieldFormula
	case bin.FieldClickHere:
		return ir.FieldClickHere
	case bin.FieldUserInfo:
		return ir.FieldUserInfo
	case bin.FieldRevSummary:
		return ir.FieldRevisionSummary
	case bin.FieldMailMerge, bin.FieldMailMergeRange:
		return ir.FieldMailMerge
	case bin.FieldTOC:
		return ir.FieldTOC
	default:
		return ir.FieldUnknown
	}
}

func fieldKindToBIN(k ir.FieldKind) bin.FieldTag {
	switch k {
	case ir.FieldHyperlink:
		return bin.FieldHyperlink
	case ir.FieldDate:
		return bin.FieldDate
	case ir.FieldTime:
		return bin.FieldTime
	case ir.FieldFile:
		return bin.FieldFile
	case ir.FieldTitle:
		return bin.FieldTitle
	case ir.FieldAuthor:
		return bin.FieldAuthor
	case ir.FieldPageNumber:
		return bin.FieldPage
	case ir.FieldSummary:
		return bin.FieldSummary
	case ir.FieldCrossRef:
		return bin.FieldCrossRef
	case ir.FieldMemo:
		return bin.FieldMemo
	case ir.FieldFormula:
		return bin.FieldFormula
	case ir.FieldClickHere:
		return bin.FieldClickHere
	case ir.FieldUserInfo:
		return bin.FieldUserInfo
	case ir.FieldRevisionSummary:
		return bin.FieldRevSummary
	case ir.FieldMailMerge:
		return bin.FieldMailMerge
	case ir.FieldTOC:
		return bin.FieldTOC
	default:
		return bin.FieldUnknown
	}
}

func controlIDToUint32(id bin.ControlID) uint32 {
	return uint32(id[0]) | uint32(id[1])<<8 | uint32(id[2])<<16 | uint32(id[3])<<24
}

func uint32ToControlID(v uint32) bin.ControlID {
	return bin.ControlID{byte(v), byte(v >> 8), byte(v >> 16), byte(v >> 24)}
}

func isMarker(u uint16) bool {
	switch u {
	case charControl, charFieldStart, charFieldEnd, charBookmarkStart, charBookmarkEnd,
		charComposeStart, charComposeEnd, charTab, charLineBreak, charDutmalStart, charDutmalEnd,
		charHyphen, charNonBreakingSpace, charFixedWidthSpace:
		return true
	default:
		return false
	}
}

func decodeRuneAt(units []uint16, i int) (rune, int) {
	u := units[i]
	if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
		lo := units[i+1]
		if lo >= 0xDC00 && lo <= 0xDFFF {
			return (rune(u-0xD800)<<10 | rune(lo-0xDC00)) + 0x10000, 2
		}
	}
	return rune(u), 1
}

func utf16DecodeUnits(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); {
		r, n := decodeRuneAt(units, i)
		runes = append(runes, r)
		i += n
	}
	return string(runes)
}

func utf16Encode(s string) []uint16 {
	var units []uint16
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
		} else {
			units = append(units, uint16(r))
		}
	}
	return units
}

func utf16CodeUnitLen(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}
