package xmlconv

import (
	"bytes"
	"strconv"

	"github.com/tinywasm/hwpconv/container"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
	"github.com/tinywasm/hwpconv/xmlfmt"
)

// wireItem pairs one flattened run-content item with the run it came
// from, so a field or range-marker span can be collapsed by scanning
// forward across run boundaries without losing the char-shape each
// item was tagged with (the wire tags char shape per run, not per
// position the way the binary side's synthesized ref array does).
type wireItem struct {
	shape *ir.CharShapeId
	rc    xmlfmt.RunContentXML
}

// DocumentFromXML converts a fully-decoded package into the canonical
// model.
func DocumentFromXML(doc *xmlfmt.Document, warnings *warn.Channel) (*ir.Document, error) {
	out := ir.NewDocument()
	out.Styles = stylesFromXML(doc.Head, warnings)
	out.Extensions.XML = xmlExtensionsFromXML(doc.Head, warnings)
	out.Metadata.Version = versionFromXML(doc.Version, warnings)
	if s := doc.Head.Summary; s != nil {
		out.Metadata.Title = s.Title
		out.Metadata.Author = s.Author
		out.Metadata.Subject = s.Subject
		out.Metadata.Keywords = append([]string(nil), s.Keywords...)
		out.Settings.LanguageLCID = uint16(s.Language)
	}

	for ref, data := range doc.BinaryData {
		id := binItemRefToID(ref, warnings)
		out.BinaryData[id] = ir.BinaryData{Format: sniffBinaryFormat(data), Bytes: data}
	}

	for _, sec := range doc.Sections {
		s, err := sectionFromXML(sec, warnings)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, s)
	}
	if out.Settings.LanguageLCID == 0 && len(out.Sections) > 0 {
		out.Settings.LanguageLCID = out.Sections[0].LanguageLCID
	}
	return out, nil
}

// DocumentToXML is the inverse of DocumentFromXML. Callers invoke
// doc.Validate() first; conversion assumes a structurally valid
// document.
func DocumentToXML(doc *ir.Document, warnings *warn.Channel) (*xmlfmt.Document, error) {
	out := &xmlfmt.Document{
		Version: versionToXML(doc.Metadata.Version),
		Head:    stylesToXML(doc.Styles, warnings),
	}
	out.Head.Summary = &xmlfmt.DocSummaryXML{
		Title:    doc.Metadata.Title,
		Author:   doc.Metadata.Author,
		Subject:  doc.Metadata.Subject,
		Keywords: append([]string(nil), doc.Metadata.Keywords...),
		Language: int32(doc.Settings.LanguageLCID),
	}
	xmlExtensionsToXML(doc.Extensions.XML, &out.Head, warnings)
	if doc.Extensions.BIN != nil {
		warnings.DataLoss("distribution document and embedded scripts")
	}

	out.BinaryData = make(map[string][]byte, len(doc.BinaryData))
	for id, data := range doc.BinaryData {
		out.BinaryData[binItemRefFromID(id)] = data.Bytes
	}

	for _, sec := range doc.Sections {
		s, err := sectionToXML(sec, sectionDefaultAlign(doc, sec), warnings)
		if err != nil {
			return nil, err
		}
		out.Sections = append(out.Sections, s)
	}
	return out, nil
}

// sectionDefaultAlign surfaces the section's leading paragraph
// alignment on the section marker, so viewers that only read the
// marker still render the dominant alignment.
func sectionDefaultAlign(doc *ir.Document, sec ir.Section) string {
	if len(sec.Paragraphs) == 0 {
		return alignmentToXML(ir.AlignJustify)
	}
	ps := sec.Paragraphs[0].ParaShape
	if int(ps) < 0 || int(ps) >= len(doc.Styles.ParaShapes) {
		return alignmentToXML(ir.AlignJustify)
	}
	return alignmentToXML(doc.Styles.ParaShapes[ps].Alignment)
}

func versionFromXML(v xmlfmt.VersionInfo, warnings *warn.Channel) ir.VersionQuad {
	parse := func(s, name string) uint16 {
		if s == "" {
			return 0
		}
		n, err := strconv.ParseUint(s, 10, 16)
		if err != nil {
			warnings.FallbackApplied("version " + name + " not numeric, using 0")
			return 0
		}
		return uint16(n)
	}
	return ir.VersionQuad{
		Major: parse(v.Major, "major"),
		Minor: parse(v.Minor, "minor"),
		Micro: parse(v.Micro, "micro"),
		Build: parse(v.BuildNumber, "build"),
	}
}

func versionToXML(v ir.VersionQuad) xmlfmt.VersionInfo {
	return xmlfmt.VersionInfo{
		TargetApplication: "WORDPROCESSOR",
		Major:             strconv.Itoa(int(v.Major)),
		Minor:             strconv.Itoa(int(v.Minor)),
		Micro:             strconv.Itoa(int(v.Micro)),
		BuildNumber:       strconv.Itoa(int(v.Build)),
	}
}

// ReadDocument opens a ZIP package and converts its content straight to
// the canonical model, composing the codec and converter layers.
func ReadDocument(zr container.ZipReader, cfg xmlfmt.ReaderConfig) (*ir.Document, *warn.Channel, error) {
	wireDoc, warnings, err := xmlfmt.Read(zr, cfg)
	if err != nil {
		return nil, warnings, err
	}
	doc, err := DocumentFromXML(wireDoc, warnings)
	if err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// WriteDocument validates doc and writes it to a ZIP package.
func WriteDocument(zw container.ZipWriter, doc *ir.Document, cfg xmlfmt.WriterConfig) ([]byte, *warn.Channel, error) {
	warnings := &warn.Channel{}
	if err := doc.Validate(); err != nil {
		return nil, warnings, err
	}
	wireDoc, err := DocumentToXML(doc, warnings)
	if err != nil {
		return nil, warnings, err
	}
	out, err := xmlfmt.Write(zw, wireDoc, cfg)
	return out, warnings, err
}

func sectionFromXML(sec xmlfmt.SectionXML, warnings *warn.Channel) (ir.Section, error) {
	var s ir.Section
	var sawSecPr bool
	for _, p := range sec.Paragraphs {
		if p.SecPr != nil && !sawSecPr {
			sawSecPr = true
			applySecPrXML(&s, *p.SecPr, warnings)
			if p.ColPr != nil {
				applyColPrXML(&s, *p.ColPr, warnings)
			}
		}
		para, err := paragraphFromXML(p, warnings)
		if err != nil {
			return s, err
		}
		s.Paragraphs = append(s.Paragraphs, para)
	}
	if !sawSecPr {
		warnings.FallbackApplied("section has no secPr marker, using zero-valued page definition")
	}
	if sec.LineNumberShape != nil {
		s.LineNumbers = &ir.LineNumberShape{
			Restart: lineNumberRestartFromXML(sec.LineNumberShape.RestartType, warnings),
			StartAt: uint32(sec.LineNumberShape.StartNumber),
		}
	}
	return s, nil
}

func applySecPrXML(s *ir.Section, sp xmlfmt.SecPrXML, warnings *warn.Channel) {
	s.Page = ir.PageDef{
		Width: ir.LengthUnit(sp.PageWidth), Height: ir.LengthUnit(sp.PageHeight),
		MarginLeft: ir.LengthUnit(sp.MarginLeft), MarginRight: ir.LengthUnit(sp.MarginRight),
		MarginTop: ir.LengthUnit(sp.MarginTop), MarginBottom: ir.LengthUnit(sp.MarginBottom),
		MarginHeader: ir.LengthUnit(sp.MarginHeader), MarginFooter: ir.LengthUnit(sp.MarginFooter),
		MarginGutter: ir.LengthUnit(sp.MarginGutter),
		Gutter:       gutterFromXML(sp.GutterPosition, warnings),
	}
	if sp.Landscape {
		s.Page.Orientation = ir.PageWide
	} else {
		s.Page.Orientation = ir.PageNarrow
	}
	s.StartsOn = pageStartsOnFromXML(sp.StartsOn, warnings)
	s.LanguageLCID = uint16(sp.Language)
	if sp.FootnoteShape != nil {
		s.FootnoteShape = noteShapeFromXML(*sp.FootnoteShape, warnings)
		s.FootnotePlace = footnotePlacementFromXML(sp.FootnoteShape.Placement, warnings)
	}
	if sp.EndnoteShape != nil {
		s.EndnoteShape = noteShapeFromXML(*sp.EndnoteShape, warnings)
		s.EndnotePlace = endnotePlacementFromXML(sp.EndnoteShape.Placement, warnings)
	}
	s.PageBorderFill = optionalBorderFillRefFromXML(sp.PageBorderFillIDRef, warnings)
	if sp.PageBorderFillIDRef != "" {
		s.PageBorderArea = pageBorderFillAreaFromXML(sp.PageBorderArea, warnings)
		s.PageBorderWhere = pageBorderPositionFromXML(sp.PageBorderWhere, warnings)
		s.PageBorderPages = pageBorderPageTypeFromXML(sp.PageBorderPages, warnings)
	}
	s.Grid = ir.GridSettings{Visible: sp.GridVisible, Unit: ir.LengthUnit(sp.GridUnit), ViewLine: sp.GridViewLine}
	s.HideHeader = sp.HideHeader
	s.HideFooter = sp.HideFooter
	s.HideMasterPage = sp.HideMasterPage
	s.HideBorderFill = sp.HideBorderFill
	s.HideFill = sp.HideFill
	s.HidePageNumber = sp.HidePageNumber
}

func noteShapeFromXML(ns xmlfmt.NoteShapeXML, warnings *warn.Channel) ir.NoteShape {
	return ir.NoteShape{
		NumberFormat:  numberFormatFromXML(ns.NumberFormat, warnings),
		StartNumber:   uint32(ns.StartNumber),
		Numbering:     noteNumberingFromXML(ns.Numbering, warnings),
		DividerLength: ir.LengthUnit(ns.DividerLength),
	}
}

func noteShapeToXML(ns ir.NoteShape, placement string, warnings *warn.Channel) xmlfmt.NoteShapeXML {
	return xmlfmt.NoteShapeXML{
		NumberFormat:  numberFormatToXML(ns.NumberFormat, warnings),
		StartNumber:   int32(ns.StartNumber),
		Numbering:     noteNumberingToXML(ns.Numbering),
		Placement:     placement,
		DividerLength: int32(ns.DividerLength),
	}
}

func applyColPrXML(s *ir.Section, cp xmlfmt.ColPrXML, warnings *warn.Channel) {
	s.Columns = ir.ColumnDef{
		Count:     uint16(cp.Count),
		Direction: columnDirectionFromXML(cp.Direction, warnings),
		SameWidth: cp.SameWidth,
		Spacing:   ir.LengthUnit(cp.Spacing),
		Separator: columnSeparatorFromXML(cp.Separator, warnings),
	}
	for _, w := range cp.Widths {
		s.Columns.Widths = append(s.Columns.Widths, ir.LengthUnit(w))
	}
}

// sectionToXML renders a section, attaching the section and column
// markers to the first paragraph (created empty when the section has
// none) so the wire keeps them inside the section's opening run.
func sectionToXML(s ir.Section, defaultAlign string, warnings *warn.Channel) (xmlfmt.SectionXML, error) {
	var out xmlfmt.SectionXML
	sp := xmlfmt.SecPrXML{
		PageWidth: int32(s.Page.Width), PageHeight: int32(s.Page.Height),
		MarginLeft: int32(s.Page.MarginLeft), MarginRight: int32(s.Page.MarginRight),
		MarginTop: int32(s.Page.MarginTop), MarginBottom: int32(s.Page.MarginBottom),
		MarginHeader: int32(s.Page.MarginHeader), MarginFooter: int32(s.Page.MarginFooter),
		MarginGutter:   int32(s.Page.MarginGutter),
		Landscape:      s.Page.Orientation == ir.PageWide,
		GutterPosition: gutterToXML(s.Page.Gutter),
		StartsOn:       pageStartsOnToXML(s.StartsOn),
		Language:       int32(s.LanguageLCID),
		Align:          defaultAlign,
		GridVisible:    s.Grid.Visible,
		GridUnit:       int32(s.Grid.Unit),
		GridViewLine:   s.Grid.ViewLine,
		HideHeader:     s.HideHeader,
		HideFooter:     s.HideFooter,
		HideMasterPage: s.HideMasterPage,
		HideBorderFill: s.HideBorderFill,
		HideFill:       s.HideFill,
		HidePageNumber: s.HidePageNumber,
	}
	fn := noteShapeToXML(s.FootnoteShape, footnotePlacementToXML(s.FootnotePlace), warnings)
	sp.FootnoteShape = &fn
	en := noteShapeToXML(s.EndnoteShape, endnotePlacementToXML(s.EndnotePlace), warnings)
	sp.EndnoteShape = &en
	if s.PageBorderFill != nil {
		sp.PageBorderFillIDRef = idRefToXML(*s.PageBorderFill)
		sp.PageBorderArea = pageBorderFillAreaToXML(s.PageBorderArea)
		sp.PageBorderWhere = pageBorderPositionToXML(s.PageBorderWhere)
		sp.PageBorderPages = pageBorderPageTypeToXML(s.PageBorderPages)
	}
	cp := xmlfmt.ColPrXML{
		Count: int32(s.Columns.Count), SameWidth: s.Columns.SameWidth,
		Spacing: int32(s.Columns.Spacing), Direction: columnDirectionToXML(s.Columns.Direction),
		Separator: columnSeparatorToXML(s.Columns.Separator),
	}
	for _, w := range s.Columns.Widths {
		cp.Widths = append(cp.Widths, int32(w))
	}

	for _, p := range s.Paragraphs {
		para, err := paragraphToXML(p, warnings)
		if err != nil {
			return out, err
		}
		out.Paragraphs = append(out.Paragraphs, para)
	}
	if len(out.Paragraphs) == 0 {
		out.Paragraphs = append(out.Paragraphs, xmlfmt.ParagraphXML{})
	}
	out.Paragraphs[0].SecPr = &sp
	out.Paragraphs[0].ColPr = &cp

	if s.LineNumbers != nil {
		out.LineNumberShape = &xmlfmt.LineNumberShapeXML{
			RestartType: lineNumberRestartToXML(s.LineNumbers.Restart),
			StartNumber: int32(s.LineNumbers.StartAt),
		}
	}
	return out, nil
}

func paragraphFromXML(p xmlfmt.ParagraphXML, warnings *warn.Channel) (ir.Paragraph, error) {
	out := ir.Paragraph{
		ParaShape:  ir.ParaShapeId(idRefFromXML(p.ParaShapeIDRef, warnings, "ParaShape")),
		Style:      ir.StyleId(idRefFromXML(p.StyleIDRef, warnings, "Style")),
		InstanceID: uint32(idRefFromXML(p.InstanceID, warnings, "paragraph instance id")),
		Break:      breakFromXMLFlags(p.PageBreakBefore, p.ColumnBreakBefore, warnings),
	}

	wire, err := flattenRunContents(p.Runs, warnings)
	if err != nil {
		return out, err
	}
	runs, rangeTags, err := decodeWireItems(wire, warnings)
	if err != nil {
		return out, err
	}
	out.Runs = runs
	out.RangeTags = rangeTags
	out.CharShapeRefs = synthesizeCharShapeRefs(runs)
	return out, nil
}

// synthesizeCharShapeRefs rebuilds the (position, char_shape_id) array
// from run boundaries, merging adjacent runs with the same effective
// shape. A ref at position 0 is always present; when the first run
// carries no shape, an id-0 ref is inserted.
func synthesizeCharShapeRefs(runs []ir.Run) []ir.CharShapeRef {
	var refs []ir.CharShapeRef
	var pos uint32
	var last ir.CharShapeId
	have := false
	for _, r := range runs {
		if r.CharShape != nil && (!have || *r.CharShape != last) {
			refs = append(refs, ir.CharShapeRef{Position: pos, CharShape: *r.CharShape})
			last = *r.CharShape
			have = true
		}
		for _, c := range r.Content {
			pos += uint32(c.UTF16Len())
		}
	}
	if len(refs) == 0 || refs[0].Position != 0 {
		refs = append([]ir.CharShapeRef{{Position: 0, CharShape: 0}}, refs...)
	}
	return refs
}

func paragraphToXML(p ir.Paragraph, warnings *warn.Channel) (xmlfmt.ParagraphXML, error) {
	out := xmlfmt.ParagraphXML{
		ParaShapeIDRef: idRefToXML(p.ParaShape),
		StyleIDRef:     idRefToXML(p.Style),
		InstanceID:     strconv.Itoa(int(p.InstanceID)),
	}
	out.PageBreakBefore, out.ColumnBreakBefore = breakTypeToXMLFlags(p.Break, warnings)

	runs, err := encodeWireItems(p.Runs, p.RangeTags, warnings)
	if err != nil {
		return out, err
	}
	out.Runs = runs
	return out, nil
}

// breakFromXMLFlags is the inverse of breakTypeToXMLFlags, consistent
// with ir.BreakType's declaration order. The wire has no dedicated
// section-break flag (a new section part boundary already carries that
// meaning), so a page+column combination never appears on a well-formed
// document; seeing one is reported rather than silently resolved.
func breakFromXMLFlags(page, column bool, warnings *warn.Channel) ir.BreakType {
	switch {
	case page && column:
		warnings.FallbackApplied("paragraph marked both page- and column-break, keeping page-break")
		return ir.BreakPage
	case page:
		return ir.BreakPage
	case column:
		return ir.BreakColumn
	default:
		return ir.BreakNone
	}
}

// flattenRunContents collapses a paragraph's <run> elements into a flat
// wire-order item list so field and range-marker spans, which may cross
// a run (and therefore char-shape) boundary, can be matched by a simple
// forward scan instead of per-run bookkeeping.
func flattenRunContents(runs []xmlfmt.RunXML, warnings *warn.Channel) ([]wireItem, error) {
	var out []wireItem
	for _, r := range runs {
		shape := optionalCharShapeRefFromXML(r.CharShapeIDRef, warnings)
		for _, rc := range r.Contents {
			out = append(out, wireItem{shape: shape, rc: rc})
		}
	}
	return out, nil
}

// decodeWireItems walks a flattened item list, collapsing field and
// range-marker spans and grouping the remainder into Runs by char-shape
// boundary, mirroring the manual-cursor style binconv uses for its own
// flat code-unit stream.
func decodeWireItems(wire []wireItem, warnings *warn.Channel) ([]ir.Run, []ir.RangeTag, error) {
	var items []textItem
	var rangeTags []ir.RangeTag
	var highlightStack []struct {
		pos   uint32
		color string
	}
	var bookmarkStack []struct {
		pos  uint32
		name string
	}
	var pos uint32
	var shapes []ir.CharShapeRef
	var lastShape *ir.CharShapeId

	recordShape := func(shape *ir.CharShapeId) {
		if sameCharShape(lastShape, shape) {
			return
		}
		if shape != nil {
			shapes = append(shapes, ir.CharShapeRef{Position: pos, CharShape: *shape})
		}
		lastShape = shape
	}

	i := 0
	for i < len(wire) {
		w := wire[i]
		rc := w.rc
		switch {
		case rc.Range != nil:
			switch rc.Range.Kind {
			case "markpenBegin":
				highlightStack = append(highlightStack, struct {
					pos   uint32
					color string
				}{pos, rc.Range.Color})
			case "markpenEnd":
				if n := len(highlightStack); n > 0 {
					h := highlightStack[n-1]
					highlightStack = highlightStack[:n-1]
					tag := ir.RangeTag{Start: h.pos, End: pos, Kind: ir.RangeHighlight}
					if h.color != "" {
						color := h.color
						tag.Data = &color
					}
					rangeTags = append(rangeTags, tag)
				} else {
					warnings.FallbackApplied("highlight end marker without matching start")
				}
			case "bookmarkBegin":
				bookmarkStack = append(bookmarkStack, struct {
					pos  uint32
					name string
				}{pos, rc.Range.Name})
			case "bookmarkEnd":
				if n := len(bookmarkStack); n > 0 {
					b := bookmarkStack[n-1]
					bookmarkStack = bookmarkStack[:n-1]
					name := b.name
					rangeTags = append(rangeTags, ir.RangeTag{Start: b.pos, End: pos, Kind: ir.RangeBookmark, Data: &name})
				} else {
					warnings.FallbackApplied("bookmark end marker without matching start")
				}
			}
			i++
			continue
		case rc.Field != nil && rc.Field.Kind != "end":
			if rc.Field.Kind == fieldKindToXML(ir.FieldHyperlink) {
				end := findFieldEnd(wire, i+1, rc.Field.ID)
				if end < 0 {
					warnings.FallbackApplied("hyperlink field-begin with no matching field-end, keeping as field span")
				} else {
					recordShape(w.shape)
					ctl := ir.Control{Kind: ir.ControlHyperlink, Hyperlink: &ir.Hyperlink{Target: rc.Field.Param, Display: rc.Field.Display}}
					items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentControl, Control: &ctl}})
					pos++
					i = end + 1
					continue
				}
			}
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFieldStart, FieldStart: &ir.FieldStart{
				ID: uint32(rc.Field.ID), Kind: fieldKindFromXML(rc.Field.Kind, warnings), Param: rc.Field.Param,
			}}})
			pos++
			if rc.Field.Display != "" {
				items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentText, Text: rc.Field.Display}})
				pos += uint32(utf16LenOf(rc.Field.Display))
			}
			i++
		case rc.Field != nil:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFieldEnd, FieldEnd: &ir.FieldEnd{ID: uint32(rc.Field.ID)}}})
			pos++
			i++
		case rc.Control != nil:
			recordShape(w.shape)
			ctl, err := controlFromXML(*rc.Control, warnings)
			if err != nil {
				return nil, nil, err
			}
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentControl, Control: &ctl}})
			pos++
			i++
		case rc.Tab:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentTab}})
			pos++
			i++
		case rc.LineBreak:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentLineBreak}})
			pos++
			i++
		case rc.Hyphen:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentHyphen}})
			pos++
			i++
		case rc.NonBreakSpace:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentNonBreakingSpace}})
			pos++
			i++
		case rc.FixedWidthSpace:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentFixedWidthSpace}})
			pos++
			i++
		default:
			recordShape(w.shape)
			items = append(items, textItem{pos, ir.RunContent{Kind: ir.ContentText, Text: rc.Text}})
			pos += uint32(utf16LenOf(rc.Text))
			i++
		}
	}
	for range highlightStack {
		warnings.FallbackApplied("highlight start marker without matching end")
	}
	for range bookmarkStack {
		warnings.FallbackApplied("bookmark start marker without matching end")
	}
	return groupRunItems(items, shapes), rangeTags, nil
}

// findFieldEnd locates the first fieldEnd with a matching id at or
// after from; the wire guarantees at most one such match since field
// spans don't nest under the same id.
func findFieldEnd(wire []wireItem, from int, id int32) int {
	for i := from; i < len(wire); i++ {
		if wire[i].rc.Field != nil && wire[i].rc.Field.Kind == "end" && wire[i].rc.Field.ID == id {
			return i
		}
	}
	return -1
}

// groupRunItems assigns each logical item to a Run, starting a new Run
// whenever the char shape recorded at that position changes, the
// XML-side counterpart to binconv's run grouping (which instead
// synthesizes the ref array from run boundaries).
func groupRunItems(items []textItem, refs []ir.CharShapeRef) []ir.Run {
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

// textItem mirrors binconv's: a decoded RunContent tagged with the
// logical UTF-16 position it starts at.
type textItem struct {
	pos     uint32
	content ir.RunContent
}

func utf16LenOf(s string) int {
	return ir.RunContent{Kind: ir.ContentText, Text: s}.UTF16Len()
}

// splitAtCodeUnit splits s after n UTF-16 code units. A split point
// landing inside a surrogate pair moves back to the pair's start so
// neither half carries a broken rune.
func splitAtCodeUnit(s string, n int) (string, string) {
	units := 0
	for i, r := range s {
		if units >= n {
			return s[:i], s[i:]
		}
		if r > 0xFFFF {
			units += 2
		} else {
			units++
		}
	}
	return s, ""
}

// rangeMarker is one begin/end marker pending emission at a known
// UTF-16 position during paragraph encoding.
type rangeMarker struct {
	pos   uint32
	kind  string
	name  string
	color string
}

// encodeWireItems is the inverse of decodeWireItems: it walks a
// paragraph's Runs, re-expanding range tags into begin/end markers at
// the right positions — splitting text items where a marker lands
// inside one — and folding a field's trailing display text back into
// its fieldBegin element.
func encodeWireItems(runs []ir.Run, rangeTags []ir.RangeTag, warnings *warn.Channel) ([]xmlfmt.RunXML, error) {
	type flatItem struct {
		shape *ir.CharShapeId
		c     ir.RunContent
		pos   uint32
	}
	var flat []flatItem
	var pos uint32
	for _, r := range runs {
		for _, c := range r.Content {
			flat = append(flat, flatItem{r.CharShape, c, pos})
			pos += uint32(c.UTF16Len())
		}
	}
	total := pos

	var begins, ends []rangeMarker
	for _, rt := range rangeTags {
		switch rt.Kind {
		case ir.RangeHighlight:
			color := ""
			if rt.Data != nil {
				color = *rt.Data
			}
			begins = append(begins, rangeMarker{pos: rt.Start, kind: "markpenBegin", color: color})
			ends = append(ends, rangeMarker{pos: rt.End, kind: "markpenEnd"})
		case ir.RangeBookmark:
			name := ""
			if rt.Data != nil {
				name = *rt.Data
			}
			begins = append(begins, rangeMarker{pos: rt.Start, kind: "bookmarkBegin", name: name})
			ends = append(ends, rangeMarker{pos: rt.End, kind: "bookmarkEnd", name: name})
		case ir.RangeTrackChangeInsert, ir.RangeTrackChangeDelete:
			warnings.DataLoss("track-change range tag (no inline markup codec in this module)")
		case ir.RangeOther:
			warnings.DataLoss("opaque range tag")
		}
	}
	boundary := map[uint32]bool{}
	for _, m := range begins {
		boundary[m.pos] = true
	}
	for _, m := range ends {
		boundary[m.pos] = true
	}

	var out []xmlfmt.RunXML
	emitted := map[uint32]bool{}
	emitAt := func(p uint32) {
		if emitted[p] {
			return
		}
		emitted[p] = true
		for _, m := range ends {
			if m.pos == p {
				appendRunContent(&out, nil, xmlfmt.RunContentXML{Range: &xmlfmt.RangeMarkXML{Kind: m.kind, Name: m.name}})
			}
		}
		for _, m := range begins {
			if m.pos == p {
				appendRunContent(&out, nil, xmlfmt.RunContentXML{Range: &xmlfmt.RangeMarkXML{Kind: m.kind, Name: m.name, Color: m.color}})
			}
		}
	}

	// Hyperlink controls collapse into synthetic field spans; their ids
	// live far above any id a real field span in the paragraph uses.
	nextHyperlinkID := int32(0x7F000000)

	i := 0
	for i < len(flat) {
		f := flat[i]
		emitAt(f.pos)
		switch f.c.Kind {
		case ir.ContentFieldStart:
			if f.c.FieldStart == nil {
				i++
				continue
			}
			display := ""
			j := i + 1
			if j < len(flat) && flat[j].c.Kind == ir.ContentText {
				display = flat[j].c.Text
				j++
			}
			if f.c.FieldStart.Kind == ir.FieldHyperlink {
				fb := xmlfmt.FieldXML{Kind: fieldKindToXML(ir.FieldHyperlink), ID: int32(f.c.FieldStart.ID), Param: f.c.FieldStart.Param, Display: display}
				appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Field: &fb})
				for j < len(flat) && flat[j].c.Kind != ir.ContentFieldEnd {
					j++
				}
				if j < len(flat) {
					j++
				}
				i = j
				continue
			}
			fb := xmlfmt.FieldXML{Kind: fieldKindToXML(f.c.FieldStart.Kind), ID: int32(f.c.FieldStart.ID), Param: f.c.FieldStart.Param, Display: display}
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Field: &fb})
			i = j
		case ir.ContentFieldEnd:
			id := int32(0)
			if f.c.FieldEnd != nil {
				id = int32(f.c.FieldEnd.ID)
			}
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Field: &xmlfmt.FieldXML{Kind: "end", ID: id}})
			i++
		case ir.ContentText:
			// A marker landing inside this text splits it so the marker
			// element sits between the halves.
			text := f.c.Text
			segStart := f.pos
			segEnd := f.pos + uint32(utf16LenOf(text))
			for b := segStart + 1; b < segEnd; b++ {
				if !boundary[b] || emitted[b] {
					continue
				}
				head, tail := splitAtCodeUnit(text, int(b-segStart))
				appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Text: head})
				emitAt(b)
				text = tail
				segStart = b
			}
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Text: text})
			i++
		case ir.ContentTab:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Tab: true})
			i++
		case ir.ContentLineBreak:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{LineBreak: true})
			i++
		case ir.ContentHyphen:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Hyphen: true})
			i++
		case ir.ContentNonBreakingSpace:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{NonBreakSpace: true})
			i++
		case ir.ContentFixedWidthSpace:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{FixedWidthSpace: true})
			i++
		case ir.ContentControl:
			if f.c.Control == nil {
				i++
				continue
			}
			if f.c.Control.Kind == ir.ControlHyperlink && f.c.Control.Hyperlink != nil {
				id := nextHyperlinkID
				nextHyperlinkID++
				fb := xmlfmt.FieldXML{
					Kind:    fieldKindToXML(ir.FieldHyperlink),
					ID:      id,
					Param:   f.c.Control.Hyperlink.Target,
					Display: f.c.Control.Hyperlink.Display,
				}
				appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Field: &fb})
				appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Field: &xmlfmt.FieldXML{Kind: "end", ID: id}})
				i++
				continue
			}
			cx, err := controlToXML(*f.c.Control, warnings)
			if err != nil {
				return nil, err
			}
			if cx != nil {
				appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Control: cx})
			}
			i++
		case ir.ContentBookmarkStart:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Range: &xmlfmt.RangeMarkXML{Kind: "bookmarkBegin", Name: f.c.BookmarkName}})
			i++
		case ir.ContentBookmarkEnd:
			appendRunContent(&out, f.shape, xmlfmt.RunContentXML{Range: &xmlfmt.RangeMarkXML{Kind: "bookmarkEnd"}})
			i++
		case ir.ContentCompose:
			warnings.DataLoss("letter-compose content (no XML element codec in this module)")
			i++
		case ir.ContentDutmal:
			warnings.DataLoss("dutmal annotation (no XML element codec in this module)")
			i++
		default:
			i++
		}
	}
	emitAt(total)
	return out, nil
}

// appendRunContent appends rc to the last RunXML if its char shape
// matches shape, starting a new RunXML otherwise; nil shape only
// starts a fresh run when no run exists yet, so range markers (which
// carry no shape of their own) attach to the run already in progress.
func appendRunContent(out *[]xmlfmt.RunXML, shape *ir.CharShapeId, rc xmlfmt.RunContentXML) {
	if n := len(*out); n > 0 && (shape == nil || sameShapeRef((*out)[n-1].CharShapeIDRef, shape)) {
		(*out)[n-1].Contents = append((*out)[n-1].Contents, rc)
		return
	}
	ref := optionalIdRefToXML(shape)
	*out = append(*out, xmlfmt.RunXML{CharShapeIDRef: ref, Contents: []xmlfmt.RunContentXML{rc}})
}

func sameShapeRef(ref string, shape *ir.CharShapeId) bool {
	if shape == nil {
		return ref == ""
	}
	return ref == idRefToXML(*shape)
}

// sniffBinaryFormat derives a binary blob's format from its own magic
// bytes, since the package carries no format tag alongside a BinData
// part. Unrecognized content is left BinaryUnknown rather than guessed.
func sniffBinaryFormat(data []byte) ir.BinaryFormat {
	switch {
	case bytes.HasPrefix(data, []byte("\x89PNG\r\n\x1a\n")):
		return ir.BinaryPNG
	case bytes.HasPrefix(data, []byte("\xff\xd8\xff")):
		return ir.BinaryJPG
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return ir.BinaryGIF
	case bytes.HasPrefix(data, []byte("BM")):
		return ir.BinaryBMP
	case bytes.HasPrefix(data, []byte("II*\x00")), bytes.HasPrefix(data, []byte("MM\x00*")):
		return ir.BinaryTIFF
	case bytes.HasPrefix(data, []byte{0xD7, 0xCD, 0xC6, 0x9A}):
		return ir.BinaryWMF
	case bytes.HasPrefix(data, []byte{0x01, 0x00, 0x00, 0x00}) && len(data) > 44:
		return ir.BinaryEMF
	default:
		return ir.BinaryUnknown
	}
}

// xmlExtensionsFromXML lifts the header part's family-private fields
// (master pages, forbidden words, track-change author colors, layout
// compatibility, the document-option link) into ir.XMLExtensions.
func xmlExtensionsFromXML(head xmlfmt.HeadXML, warnings *warn.Channel) *ir.XMLExtensions {
	ext := &ir.XMLExtensions{
		ForbiddenWords:     append([]string(nil), head.ForbiddenWords...),
		DocumentOptionLink: head.DocumentOptionLinkPath,
	}
	for _, mp := range head.MasterPages {
		ext.MasterPages = append(ext.MasterPages, ir.MasterPage{Name: mp.Name})
	}
	for _, f := range head.LayoutCompatFlags {
		v, err := strconv.ParseUint(f, 10, 32)
		if err != nil {
			warnings.FallbackApplied("layout-compat flag not numeric, dropping")
			continue
		}
		ext.LayoutCompatFlags |= uint32(v)
	}
	sawChangeType := false
	for _, a := range head.TrackChangeAuthors {
		if a.ChangeType != "" {
			sawChangeType = true
		}
		ext.TrackChangeConfig.AuthorColors = append(ext.TrackChangeConfig.AuthorColors, ir.TrackChangeAuthorColor{
			Author: a.Author,
			Color:  mustParseColor(a.Color, warnings),
		})
	}
	ext.TrackChangeConfig.Enabled = len(head.TrackChangeAuthors) > 0
	if sawChangeType {
		warnings.DataLoss("per-author track-change-type distinction (author color table only)")
	}
	return ext
}

// xmlExtensionsToXML is the inverse of xmlExtensionsFromXML, merging
// its fields into the HeadXML stylesToXML already produced.
func xmlExtensionsToXML(ext *ir.XMLExtensions, head *xmlfmt.HeadXML, warnings *warn.Channel) {
	if ext == nil {
		return
	}
	head.ForbiddenWords = append([]string(nil), ext.ForbiddenWords...)
	head.DocumentOptionLinkPath = ext.DocumentOptionLink
	for i, mp := range ext.MasterPages {
		if len(mp.Data) > 0 {
			warnings.DataLoss("master-page binary content (the master-page element carries no data payload)")
		}
		head.MasterPages = append(head.MasterPages, xmlfmt.MasterPageXML{
			ID:   strconv.Itoa(i),
			Name: mp.Name,
			Type: "BOTH",
		})
	}
	if ext.LayoutCompatFlags != 0 {
		head.LayoutCompatFlags = append(head.LayoutCompatFlags, strconv.FormatUint(uint64(ext.LayoutCompatFlags), 10))
	}
	for _, a := range ext.TrackChangeConfig.AuthorColors {
		head.TrackChangeAuthors = append(head.TrackChangeAuthors, xmlfmt.TrackChangeAuthorColorXML{
			Author: a.Author,
			Color:  a.Color.Hex(),
		})
	}
}

func mustParseColor(hex string, warnings *warn.Channel) ir.Color {
	c, err := ir.ParseHex(hex)
	if err != nil {
		warnings.FallbackApplied("track-change author color not parseable, using black")
		return ir.Color{}
	}
	return c
}
