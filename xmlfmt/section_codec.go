package xmlfmt

import "github.com/tinywasm/hwpconv/warn"

// This file binds Contents/section{N}.xml's paragraph/run tree, the
// XML counterpart to bin/section_codec.go.

func decodeObjectCommonXML(e *Element) (ObjectCommonXML, error) {
	var c ObjectCommonXML
	var err error
	if c.TreatAsChar, err = attrBool(e, "treatAsChar"); err != nil {
		return c, err
	}
	if c.OffsetX, err = attrInt(e, "offsetX"); err != nil {
		return c, err
	}
	if c.OffsetY, err = attrInt(e, "offsetY"); err != nil {
		return c, err
	}
	if c.Width, err = requireAttrInt(e, "width"); err != nil {
		return c, err
	}
	if c.Height, err = requireAttrInt(e, "height"); err != nil {
		return c, err
	}
	if c.ZOrder, err = attrInt(e, "zOrder"); err != nil {
		return c, err
	}
	c.HorizontalRelativeTo = attrStr(e, "horzRelTo")
	c.VerticalRelativeTo = attrStr(e, "vertRelTo")
	c.WrapType = attrStr(e, "wrap")
	c.WrapSide = attrStr(e, "wrapSide")
	if c.AllowOverlap, err = attrBool(e, "allowOverlap"); err != nil {
		return c, err
	}
	if c.MarginLeft, err = attrInt(e, "marginLeft"); err != nil {
		return c, err
	}
	if c.MarginRight, err = attrInt(e, "marginRight"); err != nil {
		return c, err
	}
	if c.MarginTop, err = attrInt(e, "marginTop"); err != nil {
		return c, err
	}
	if c.MarginBottom, err = attrInt(e, "marginBottom"); err != nil {
		return c, err
	}
	if cap, ok := e.Child(NSSection, "caption"); ok {
		c.CaptionText = cap.Text
		c.CaptionPosition = attrStr(cap, "position")
	}
	return c, nil
}

func encodeObjectCommonXML(local string, c ObjectCommonXML) *Element {
	e := NewElement(NSSection, local)
	setBoolAttr(e, "treatAsChar", c.TreatAsChar)
	setIntAttr(e, "offsetX", c.OffsetX)
	setIntAttr(e, "offsetY", c.OffsetY)
	setIntAttr(e, "width", c.Width)
	setIntAttr(e, "height", c.Height)
	setIntAttr(e, "zOrder", c.ZOrder)
	e.SetAttr("horzRelTo", c.HorizontalRelativeTo)
	e.SetAttr("vertRelTo", c.VerticalRelativeTo)
	e.SetAttr("wrap", c.WrapType)
	e.SetAttr("wrapSide", c.WrapSide)
	setBoolAttr(e, "allowOverlap", c.AllowOverlap)
	setIntAttr(e, "marginLeft", c.MarginLeft)
	setIntAttr(e, "marginRight", c.MarginRight)
	setIntAttr(e, "marginTop", c.MarginTop)
	setIntAttr(e, "marginBottom", c.MarginBottom)
	if c.CaptionText != "" {
		cap := NewElement(NSSection, "caption")
		cap.SetAttr("position", c.CaptionPosition)
		cap.Text = c.CaptionText
		e.AddChild(cap)
	}
	return e
}

func decodeTableXML(e *Element, warnings *warn.Channel) (TableXML, error) {
	common, err := decodeObjectCommonXML(e)
	if err != nil {
		return TableXML{}, err
	}
	var t TableXML
	t.Common = common
	if t.Rows, err = requireAttrInt(e, "rowCnt"); err != nil {
		return t, err
	}
	if t.Columns, err = requireAttrInt(e, "colCnt"); err != nil {
		return t, err
	}
	t.BorderFillIDRef = attrStr(e, "borderFillIDRef")
	if rows, ok := e.Child(NSSection, "rowHeights"); ok {
		for _, rh := range rows.ChildrenOf(NSSection, "h") {
			v, err := requireAttrInt(rh, "v")
			if err != nil {
				return t, err
			}
			t.RowHeights = append(t.RowHeights, v)
		}
	}
	for _, zc := range e.ChildrenOf(NSSection, "cellZone") {
		sr, err := requireAttrInt(zc, "startRow")
		if err != nil {
			return t, err
		}
		sc, err := requireAttrInt(zc, "startCol")
		if err != nil {
			return t, err
		}
		er, err := requireAttrInt(zc, "endRow")
		if err != nil {
			return t, err
		}
		ec, err := requireAttrInt(zc, "endCol")
		if err != nil {
			return t, err
		}
		t.Zones = append(t.Zones, ZoneXML{StartRow: sr, StartCol: sc, EndRow: er, EndCol: ec, BorderFillIDRef: attrStr(zc, "borderFillIDRef")})
	}
	for _, cc := range e.ChildrenOf(NSSection, "tc") {
		cell, err := decodeCellXML(cc, warnings)
		if err != nil {
			return t, err
		}
		t.Cells = append(t.Cells, cell)
	}
	return t, nil
}

func encodeTableXML(t TableXML) *Element {
	e := encodeObjectCommonXML("tbl", t.Common)
	setIntAttr(e, "rowCnt", t.Rows)
	setIntAttr(e, "colCnt", t.Columns)
	if t.BorderFillIDRef != "" {
		e.SetAttr("borderFillIDRef", t.BorderFillIDRef)
	}
	if len(t.RowHeights) > 0 {
		rows := NewElement(NSSection, "rowHeights")
		for _, h := range t.RowHeights {
			hc := NewElement(NSSection, "h")
			setIntAttr(hc, "v", h)
			rows.AddChild(hc)
		}
		e.AddChild(rows)
	}
	for _, z := range t.Zones {
		zc := NewElement(NSSection, "cellZone")
		setIntAttr(zc, "startRow", z.StartRow)
		setIntAttr(zc, "startCol", z.StartCol)
		setIntAttr(zc, "endRow", z.EndRow)
		setIntAttr(zc, "endCol", z.EndCol)
		if z.BorderFillIDRef != "" {
			zc.SetAttr("borderFillIDRef", z.BorderFillIDRef)
		}
		e.AddChild(zc)
	}
	for _, c := range t.Cells {
		e.AddChild(encodeCellXML(c))
	}
	return e
}

func decodeCellXML(e *Element, warnings *warn.Channel) (CellXML, error) {
	var c CellXML
	var err error
	if c.Row, err = requireAttrInt(e, "row"); err != nil {
		return c, err
	}
	if c.Column, err = requireAttrInt(e, "col"); err != nil {
		return c, err
	}
	if c.RowSpan, err = attrInt(e, "rowSpan"); err != nil {
		return c, err
	}
	if c.RowSpan == 0 {
		c.RowSpan = 1
	}
	if c.ColSpan, err = attrInt(e, "colSpan"); err != nil {
		return c, err
	}
	if c.ColSpan == 0 {
		c.ColSpan = 1
	}
	c.BorderFillIDRef = attrStr(e, "borderFillIDRef")
	if c.Width, err = attrInt(e, "width"); err != nil {
		return c, err
	}
	if c.Height, err = attrInt(e, "height"); err != nil {
		return c, err
	}
	for _, pc := range e.ChildrenOf(NSSection, "p") {
		para, err := decodeParagraphXML(pc, warnings)
		if err != nil {
			return c, err
		}
		c.Paragraphs = append(c.Paragraphs, para)
	}
	return c, nil
}

func encodeCellXML(c CellXML) *Element {
	e := NewElement(NSSection, "tc")
	setIntAttr(e, "row", c.Row)
	setIntAttr(e, "col", c.Column)
	setIntAttr(e, "rowSpan", c.RowSpan)
	setIntAttr(e, "colSpan", c.ColSpan)
	if c.BorderFillIDRef != "" {
		e.SetAttr("borderFillIDRef", c.BorderFillIDRef)
	}
	setIntAttr(e, "width", c.Width)
	setIntAttr(e, "height", c.Height)
	for _, p := range c.Paragraphs {
		e.AddChild(encodeParagraphXML(p))
	}
	return e
}

func decodePictureXML(e *Element) (PictureXML, error) {
	common, err := decodeObjectCommonXML(e)
	if err != nil {
		return PictureXML{}, err
	}
	p := PictureXML{Common: common, BinItemRef: attrStr(e, "binItemRef"), Effect: attrStr(e, "effect"), FillMode: attrStr(e, "fillMode")}
	if p.CropLeft, err = attrInt(e, "cropLeft"); err != nil {
		return p, err
	}
	if p.CropRight, err = attrInt(e, "cropRight"); err != nil {
		return p, err
	}
	if p.CropTop, err = attrInt(e, "cropTop"); err != nil {
		return p, err
	}
	if p.CropBottom, err = attrInt(e, "cropBottom"); err != nil {
		return p, err
	}
	return p, nil
}

func encodePictureXML(p PictureXML) *Element {
	e := encodeObjectCommonXML("pic", p.Common)
	if p.BinItemRef != "" {
		e.SetAttr("binItemRef", p.BinItemRef)
	}
	if p.Effect != "" {
		e.SetAttr("effect", p.Effect)
	}
	if p.FillMode != "" {
		e.SetAttr("fillMode", p.FillMode)
	}
	setIntAttr(e, "cropLeft", p.CropLeft)
	setIntAttr(e, "cropRight", p.CropRight)
	setIntAttr(e, "cropTop", p.CropTop)
	setIntAttr(e, "cropBottom", p.CropBottom)
	return e
}

func decodeRunXML(e *Element, warnings *warn.Channel) (RunXML, error) {
	var r RunXML
	r.CharShapeIDRef = attrStr(e, "charPrIDRef")
	for _, child := range e.Children {
		var rc RunContentXML
		switch child.Local {
		case "secPr", "colPr":
			// Section and column markers are bound by the paragraph
			// decoder, not as run content.
			continue
		case "t":
			rc.Text = child.Text
		case "tab":
			rc.Tab = true
		case "lineBreak":
			rc.LineBreak = true
		case "hyphen":
			rc.Hyphen = true
		case "nbSpace":
			rc.NonBreakSpace = true
		case "fwSpace":
			rc.FixedWidthSpace = true
		case "markpenBegin":
			rc.Range = &RangeMarkXML{Kind: "markpenBegin", Color: attrStr(child, "color")}
		case "markpenEnd":
			rc.Range = &RangeMarkXML{Kind: "markpenEnd"}
		case "bookmarkBegin":
			rc.Range = &RangeMarkXML{Kind: "bookmarkBegin", Name: attrStr(child, "name")}
		case "bookmarkEnd":
			rc.Range = &RangeMarkXML{Kind: "bookmarkEnd", Name: attrStr(child, "name")}
		case "fieldBegin":
			id, err := attrInt(child, "id")
			if err != nil {
				return r, err
			}
			rc.Field = &FieldXML{Kind: attrStr(child, "type"), ID: id, Param: attrStr(child, "param"), Display: child.Text}
		case "fieldEnd":
			id, err := attrInt(child, "id")
			if err != nil {
				return r, err
			}
			rc.Field = &FieldXML{Kind: "end", ID: id}
		case "tbl":
			t, err := decodeTableXML(child, warnings)
			if err != nil {
				return r, err
			}
			rc.Control = &ControlXML{Kind: "table", Table: &t}
		case "pic":
			p, err := decodePictureXML(child)
			if err != nil {
				return r, err
			}
			rc.Control = &ControlXML{Kind: "picture", Picture: &p}
		case "memo":
			rc.Control = &ControlXML{Kind: "memo", Memo: &MemoXML{Author: attrStr(child, "author"), CreatedAt: attrStr(child, "createdAt"), Text: child.Text}}
		case "ctrl":
			g, err := decodeGenericControlXML(child, warnings)
			if err != nil {
				return r, err
			}
			rc.Control = &ControlXML{Kind: g.Kind, Generic: &g}
		default:
			warnings.UnknownElement(child.Local)
			continue
		}
		r.Contents = append(r.Contents, rc)
	}
	return r, nil
}

func encodeRunXML(r RunXML) *Element {
	e := NewElement(NSSection, "run")
	if r.CharShapeIDRef != "" {
		e.SetAttr("charPrIDRef", r.CharShapeIDRef)
	}
	for _, rc := range r.Contents {
		switch {
		case rc.Text != "" || (rc.Range == nil && rc.Field == nil && rc.Control == nil && !rc.Tab && !rc.LineBreak && !rc.Hyphen && !rc.NonBreakSpace && !rc.FixedWidthSpace):
			tc := NewElement(NSSection, "t")
			tc.Text = rc.Text
			e.AddChild(tc)
		case rc.Tab:
			e.AddChild(NewElement(NSSection, "tab"))
		case rc.LineBreak:
			e.AddChild(NewElement(NSSection, "lineBreak"))
		case rc.Hyphen:
			e.AddChild(NewElement(NSSection, "hyphen"))
		case rc.NonBreakSpace:
			e.AddChild(NewElement(NSSection, "nbSpace"))
		case rc.FixedWidthSpace:
			e.AddChild(NewElement(NSSection, "fwSpace"))
		case rc.Range != nil:
			mc := NewElement(NSSection, rc.Range.Kind)
			if rc.Range.Color != "" {
				mc.SetAttr("color", rc.Range.Color)
			}
			if rc.Range.Name != "" {
				mc.SetAttr("name", rc.Range.Name)
			}
			e.AddChild(mc)
		case rc.Field != nil:
			if rc.Field.Kind == "end" {
				fc := NewElement(NSSection, "fieldEnd")
				setIntAttr(fc, "id", rc.Field.ID)
				e.AddChild(fc)
			} else {
				fc := NewElement(NSSection, "fieldBegin")
				fc.SetAttr("type", rc.Field.Kind)
				setIntAttr(fc, "id", rc.Field.ID)
				if rc.Field.Param != "" {
					fc.SetAttr("param", rc.Field.Param)
				}
				if rc.Field.Display != "" {
					fc.Text = rc.Field.Display
				}
				e.AddChild(fc)
			}
		case rc.Control != nil:
			switch rc.Control.Kind {
			case "table":
				e.AddChild(encodeTableXML(*rc.Control.Table))
			case "picture":
				e.AddChild(encodePictureXML(*rc.Control.Picture))
			case "memo":
				mc := NewElement(NSSection, "memo")
				mc.SetAttr("author", rc.Control.Memo.Author)
				mc.SetAttr("createdAt", rc.Control.Memo.CreatedAt)
				mc.Text = rc.Control.Memo.Text
				e.AddChild(mc)
			default:
				if rc.Control.Generic != nil {
					e.AddChild(encodeGenericControlXML(*rc.Control.Generic))
				}
			}
		}
	}
	return e
}

// decodeGenericControlXML binds the <ctrl kind="..."> fallback envelope
// (GenericControlXML) used for every inline construct the element
// vocabulary doesn't model individually.
func decodeGenericControlXML(e *Element, warnings *warn.Channel) (GenericControlXML, error) {
	g := GenericControlXML{Kind: attrStr(e, "kind")}
	for _, a := range e.Attrs {
		if a.Name.Local == "kind" {
			continue
		}
		g.Attrs = append(g.Attrs, AttrKV{Key: a.Name.Local, Value: a.Value})
	}
	g.Text = e.Text
	for _, pc := range e.ChildrenOf(NSSection, "p") {
		p, err := decodeParagraphXML(pc, warnings)
		if err != nil {
			return g, err
		}
		g.Paragraphs = append(g.Paragraphs, p)
	}
	return g, nil
}

func encodeGenericControlXML(g GenericControlXML) *Element {
	e := NewElement(NSSection, "ctrl")
	e.SetAttr("kind", g.Kind)
	for _, kv := range g.Attrs {
		e.SetAttr(kv.Key, kv.Value)
	}
	e.Text = g.Text
	for _, p := range g.Paragraphs {
		e.AddChild(encodeParagraphXML(p))
	}
	return e
}

func decodeSecPrXML(e *Element) (SecPrXML, error) {
	var s SecPrXML
	var err error
	if s.PageWidth, err = requireAttrInt(e, "width"); err != nil {
		return s, err
	}
	if s.PageHeight, err = requireAttrInt(e, "height"); err != nil {
		return s, err
	}
	if s.MarginLeft, err = attrInt(e, "marginLeft"); err != nil {
		return s, err
	}
	if s.MarginRight, err = attrInt(e, "marginRight"); err != nil {
		return s, err
	}
	if s.MarginTop, err = attrInt(e, "marginTop"); err != nil {
		return s, err
	}
	if s.MarginBottom, err = attrInt(e, "marginBottom"); err != nil {
		return s, err
	}
	if s.MarginHeader, err = attrInt(e, "marginHeader"); err != nil {
		return s, err
	}
	if s.MarginFooter, err = attrInt(e, "marginFooter"); err != nil {
		return s, err
	}
	if s.MarginGutter, err = attrInt(e, "marginGutter"); err != nil {
		return s, err
	}
	if s.Landscape, err = attrBool(e, "landscape"); err != nil {
		return s, err
	}
	s.GutterPosition = attrStr(e, "gutterPos")
	s.StartsOn = attrStr(e, "startsOn")
	if s.Language, err = attrInt(e, "lang"); err != nil {
		return s, err
	}
	if a, ok := e.Child(NSSection, "align"); ok {
		s.Align = attrStr(a, "horizontal")
	}
	if fn, ok := e.Child(NSSection, "footNotePr"); ok {
		ns, err := decodeNoteShapeXML(fn)
		if err != nil {
			return s, err
		}
		s.FootnoteShape = &ns
	}
	if en, ok := e.Child(NSSection, "endNotePr"); ok {
		ns, err := decodeNoteShapeXML(en)
		if err != nil {
			return s, err
		}
		s.EndnoteShape = &ns
	}
	if pb, ok := e.Child(NSSection, "pageBorderFill"); ok {
		s.PageBorderFillIDRef = attrStr(pb, "borderFillIDRef")
		s.PageBorderArea = attrStr(pb, "area")
		s.PageBorderWhere = attrStr(pb, "where")
		s.PageBorderPages = attrStr(pb, "pages")
	}
	if g, ok := e.Child(NSSection, "grid"); ok {
		if s.GridVisible, err = attrBool(g, "visible"); err != nil {
			return s, err
		}
		if s.GridUnit, err = attrInt(g, "unit"); err != nil {
			return s, err
		}
		if s.GridViewLine, err = attrBool(g, "viewLine"); err != nil {
			return s, err
		}
	}
	if h, ok := e.Child(NSSection, "visibility"); ok {
		if s.HideHeader, err = attrBool(h, "hideHeader"); err != nil {
			return s, err
		}
		if s.HideFooter, err = attrBool(h, "hideFooter"); err != nil {
			return s, err
		}
		if s.HideMasterPage, err = attrBool(h, "hideMasterPage"); err != nil {
			return s, err
		}
		if s.HideBorderFill, err = attrBool(h, "hideBorderFill"); err != nil {
			return s, err
		}
		if s.HideFill, err = attrBool(h, "hideFill"); err != nil {
			return s, err
		}
		if s.HidePageNumber, err = attrBool(h, "hidePageNumber"); err != nil {
			return s, err
		}
	}
	return s, nil
}

func decodeNoteShapeXML(e *Element) (NoteShapeXML, error) {
	var ns NoteShapeXML
	var err error
	ns.NumberFormat = attrStr(e, "numberFormat")
	if ns.StartNumber, err = attrInt(e, "startNumber"); err != nil {
		return ns, err
	}
	ns.Numbering = attrStr(e, "numbering")
	ns.Placement = attrStr(e, "placement")
	if ns.DividerLength, err = attrInt(e, "dividerLength"); err != nil {
		return ns, err
	}
	return ns, nil
}

func encodeNoteShapeXML(local string, ns NoteShapeXML) *Element {
	e := NewElement(NSSection, local)
	e.SetAttr("numberFormat", ns.NumberFormat)
	setIntAttr(e, "startNumber", ns.StartNumber)
	e.SetAttr("numbering", ns.Numbering)
	e.SetAttr("placement", ns.Placement)
	setIntAttr(e, "dividerLength", ns.DividerLength)
	return e
}

func encodeSecPrXML(s SecPrXML) *Element {
	e := NewElement(NSSection, "secPr")
	setIntAttr(e, "width", s.PageWidth)
	setIntAttr(e, "height", s.PageHeight)
	setIntAttr(e, "marginLeft", s.MarginLeft)
	setIntAttr(e, "marginRight", s.MarginRight)
	setIntAttr(e, "marginTop", s.MarginTop)
	setIntAttr(e, "marginBottom", s.MarginBottom)
	setIntAttr(e, "marginHeader", s.MarginHeader)
	setIntAttr(e, "marginFooter", s.MarginFooter)
	setIntAttr(e, "marginGutter", s.MarginGutter)
	setBoolAttr(e, "landscape", s.Landscape)
	e.SetAttr("gutterPos", s.GutterPosition)
	e.SetAttr("startsOn", s.StartsOn)
	setIntAttr(e, "lang", s.Language)
	if s.Align != "" {
		a := NewElement(NSSection, "align")
		a.SetAttr("horizontal", s.Align)
		e.AddChild(a)
	}
	if s.FootnoteShape != nil {
		e.AddChild(encodeNoteShapeXML("footNotePr", *s.FootnoteShape))
	}
	if s.EndnoteShape != nil {
		e.AddChild(encodeNoteShapeXML("endNotePr", *s.EndnoteShape))
	}
	if s.PageBorderFillIDRef != "" {
		pb := NewElement(NSSection, "pageBorderFill")
		pb.SetAttr("borderFillIDRef", s.PageBorderFillIDRef)
		pb.SetAttr("area", s.PageBorderArea)
		pb.SetAttr("where", s.PageBorderWhere)
		pb.SetAttr("pages", s.PageBorderPages)
		e.AddChild(pb)
	}
	g := NewElement(NSSection, "grid")
	setBoolAttr(g, "visible", s.GridVisible)
	setIntAttr(g, "unit", s.GridUnit)
	setBoolAttr(g, "viewLine", s.GridViewLine)
	e.AddChild(g)
	h := NewElement(NSSection, "visibility")
	setBoolAttr(h, "hideHeader", s.HideHeader)
	setBoolAttr(h, "hideFooter", s.HideFooter)
	setBoolAttr(h, "hideMasterPage", s.HideMasterPage)
	setBoolAttr(h, "hideBorderFill", s.HideBorderFill)
	setBoolAttr(h, "hideFill", s.HideFill)
	setBoolAttr(h, "hidePageNumber", s.HidePageNumber)
	e.AddChild(h)
	return e
}

func decodeColPrXML(e *Element) (ColPrXML, error) {
	var c ColPrXML
	var err error
	if c.Count, err = requireAttrInt(e, "count"); err != nil {
		return c, err
	}
	if c.SameWidth, err = attrBool(e, "sameWidth"); err != nil {
		return c, err
	}
	if c.Spacing, err = attrInt(e, "spacing"); err != nil {
		return c, err
	}
	c.Direction = attrStr(e, "direction")
	c.Separator = attrStr(e, "separator")
	for _, wc := range e.ChildrenOf(NSSection, "w") {
		v, err := requireAttrInt(wc, "v")
		if err != nil {
			return c, err
		}
		c.Widths = append(c.Widths, v)
	}
	return c, nil
}

func encodeColPrXML(c ColPrXML) *Element {
	e := NewElement(NSSection, "colPr")
	setIntAttr(e, "count", c.Count)
	setBoolAttr(e, "sameWidth", c.SameWidth)
	setIntAttr(e, "spacing", c.Spacing)
	e.SetAttr("direction", c.Direction)
	e.SetAttr("separator", c.Separator)
	for _, w := range c.Widths {
		wc := NewElement(NSSection, "w")
		setIntAttr(wc, "v", w)
		e.AddChild(wc)
	}
	return e
}

func decodeParagraphXML(e *Element, warnings *warn.Channel) (ParagraphXML, error) {
	var p ParagraphXML
	var err error
	p.ParaShapeIDRef = attrStr(e, "paraPrIDRef")
	p.StyleIDRef = attrStr(e, "styleIDRef")
	p.InstanceID = attrStr(e, "id")
	if p.PageBreakBefore, err = attrBool(e, "pageBreak"); err != nil {
		return p, err
	}
	if p.ColumnBreakBefore, err = attrBool(e, "columnBreak"); err != nil {
		return p, err
	}
	for _, rc := range e.ChildrenOf(NSSection, "run") {
		if sp, ok := rc.Child(NSSection, "secPr"); ok {
			sec, err := decodeSecPrXML(sp)
			if err != nil {
				return p, err
			}
			p.SecPr = &sec
			if cp, ok := sp.Child(NSSection, "colPr"); ok {
				col, err := decodeColPrXML(cp)
				if err != nil {
					return p, err
				}
				p.ColPr = &col
			}
		}
		run, err := decodeRunXML(rc, warnings)
		if err != nil {
			return p, err
		}
		p.Runs = append(p.Runs, run)
	}
	return p, nil
}

func encodeParagraphXML(p ParagraphXML) *Element {
	e := NewElement(NSSection, "p")
	if p.ParaShapeIDRef != "" {
		e.SetAttr("paraPrIDRef", p.ParaShapeIDRef)
	}
	if p.StyleIDRef != "" {
		e.SetAttr("styleIDRef", p.StyleIDRef)
	}
	if p.InstanceID != "" {
		e.SetAttr("id", p.InstanceID)
	}
	setBoolAttr(e, "pageBreak", p.PageBreakBefore)
	setBoolAttr(e, "columnBreak", p.ColumnBreakBefore)

	runEls := make([]*Element, 0, len(p.Runs))
	for _, r := range p.Runs {
		runEls = append(runEls, encodeRunXML(r))
	}
	// The section marker rides inside the first run, created on demand
	// when the paragraph has none.
	if p.SecPr != nil {
		secEl := encodeSecPrXML(*p.SecPr)
		if p.ColPr != nil {
			secEl.AddChild(encodeColPrXML(*p.ColPr))
		}
		if len(runEls) == 0 {
			runEls = append(runEls, NewElement(NSSection, "run"))
		}
		first := runEls[0]
		first.Children = append([]*Element{secEl}, first.Children...)
	}
	for _, re := range runEls {
		e.AddChild(re)
	}
	return e
}

func decodeSection(root *Element, warnings *warn.Channel) (SectionXML, error) {
	var s SectionXML
	for _, pc := range root.ChildrenOf(NSSection, "p") {
		p, err := decodeParagraphXML(pc, warnings)
		if err != nil {
			return s, err
		}
		s.Paragraphs = append(s.Paragraphs, p)
	}
	if ln, ok := root.Child(NSSection, "lineNumberShape"); ok {
		start, err := attrInt(ln, "startNumber")
		if err != nil {
			return s, err
		}
		s.LineNumberShape = &LineNumberShapeXML{RestartType: attrStr(ln, "restartType"), StartNumber: start}
	}
	return s, nil
}

func encodeSection(s SectionXML) *Element {
	root := NewElement(NSSection, "sec")
	if s.LineNumberShape != nil {
		ln := NewElement(NSSection, "lineNumberShape")
		ln.SetAttr("restartType", s.LineNumberShape.RestartType)
		setIntAttr(ln, "startNumber", s.LineNumberShape.StartNumber)
		root.AddChild(ln)
	}
	for _, p := range s.Paragraphs {
		root.AddChild(encodeParagraphXML(p))
	}
	return root
}
