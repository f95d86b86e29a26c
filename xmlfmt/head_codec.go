package xmlfmt

import (
	"encoding/hex"

	"github.com/tinywasm/hwpconv/warn"
)

// This file binds Contents/header.xml's <head> tree: one typed
// decode/encode pair per list, mirroring bin/docinfo_codec.go's
// per-category split but over Element trees instead of byte cursors.

func decodeFontXML(e *Element) (FontXML, error) {
	var f FontXML
	var err error
	if f.ID, err = requireAttrInt(e, "id"); err != nil {
		return f, err
	}
	if f.Name, err = requireAttr(e, "name"); err != nil {
		return f, err
	}
	f.FamilyTag = attrStr(e, "familyTag")
	f.Substitute = attrStr(e, "substitute")
	if f.Embedded, err = attrBool(e, "embedded"); err != nil {
		return f, err
	}
	f.BinItemRef = attrStr(e, "binItemRef")
	if p, ok := e.Attr("panose"); ok {
		raw, derr := hex.DecodeString(p)
		if derr == nil && len(raw) == 10 {
			copy(f.Panose[:], raw)
		}
	}
	return f, nil
}

func encodeFontXML(f FontXML) *Element {
	e := NewElement(NSHead, "font")
	setIntAttr(e, "id", f.ID)
	e.SetAttr("name", f.Name)
	e.SetAttr("familyTag", f.FamilyTag)
	if f.Substitute != "" {
		e.SetAttr("substitute", f.Substitute)
	}
	setBoolAttr(e, "embedded", f.Embedded)
	if f.BinItemRef != "" {
		e.SetAttr("binItemRef", f.BinItemRef)
	}
	e.SetAttr("panose", hex.EncodeToString(f.Panose[:]))
	return e
}

func decodeFontSlotXML(e *Element) (FontSlotXML, error) {
	var s FontSlotXML
	var err error
	s.Lang = attrStr(e, "lang")
	if s.FontRef, err = requireAttrInt(e, "ref"); err != nil {
		return s, err
	}
	if s.WidthRatio, err = attrInt(e, "widthRatio"); err != nil {
		return s, err
	}
	if s.Spacing, err = attrInt(e, "spacing"); err != nil {
		return s, err
	}
	if s.Offset, err = attrInt(e, "offset"); err != nil {
		return s, err
	}
	if s.RelativeSize, err = attrInt(e, "relSize"); err != nil {
		return s, err
	}
	return s, nil
}

func encodeFontSlotXML(s FontSlotXML) *Element {
	e := NewElement(NSHead, "fontRef")
	e.SetAttr("lang", s.Lang)
	setIntAttr(e, "ref", s.FontRef)
	setIntAttr(e, "widthRatio", s.WidthRatio)
	setIntAttr(e, "spacing", s.Spacing)
	setIntAttr(e, "offset", s.Offset)
	setIntAttr(e, "relSize", s.RelativeSize)
	return e
}

func decodeCharShapeXML(e *Element) (CharShapeXML, error) {
	var c CharShapeXML
	var err error
	if c.ID, err = requireAttrInt(e, "id"); err != nil {
		return c, err
	}
	if c.Height, err = requireAttrInt(e, "height"); err != nil {
		return c, err
	}
	c.TextColor = attrStr(e, "textColor")
	c.ShadeColor = attrStr(e, "shadeColor")
	if c.Bold, err = attrBool(e, "bold"); err != nil {
		return c, err
	}
	if c.Italic, err = attrBool(e, "italic"); err != nil {
		return c, err
	}
	c.Underline = attrStr(e, "underlineType")
	c.UnderlineColor = attrStr(e, "underlineColor")
	c.Strikeout = attrStr(e, "strikeoutType")
	c.Outline = attrStr(e, "outlineType")
	c.Shadow = attrStr(e, "shadowType")
	c.Emphasis = attrStr(e, "emphasisType")
	if c.Emboss, err = attrBool(e, "emboss"); err != nil {
		return c, err
	}
	if c.Engrave, err = attrBool(e, "engrave"); err != nil {
		return c, err
	}
	if c.Superscript, err = attrBool(e, "superscript"); err != nil {
		return c, err
	}
	if c.Subscript, err = attrBool(e, "subscript"); err != nil {
		return c, err
	}
	c.BorderFillIDRef = attrStr(e, "borderFillIDRef")
	for _, fc := range e.ChildrenOf(NSHead, "fontRef") {
		slot, err := decodeFontSlotXML(fc)
		if err != nil {
			return c, err
		}
		c.Fonts = append(c.Fonts, slot)
	}
	return c, nil
}

func encodeCharShapeXML(c CharShapeXML) *Element {
	e := NewElement(NSHead, "charPr")
	setIntAttr(e, "id", c.ID)
	setIntAttr(e, "height", c.Height)
	e.SetAttr("textColor", c.TextColor)
	e.SetAttr("shadeColor", c.ShadeColor)
	setBoolAttr(e, "bold", c.Bold)
	setBoolAttr(e, "italic", c.Italic)
	e.SetAttr("underlineType", c.Underline)
	e.SetAttr("underlineColor", c.UnderlineColor)
	e.SetAttr("strikeoutType", c.Strikeout)
	e.SetAttr("outlineType", c.Outline)
	e.SetAttr("shadowType", c.Shadow)
	e.SetAttr("emphasisType", c.Emphasis)
	setBoolAttr(e, "emboss", c.Emboss)
	setBoolAttr(e, "engrave", c.Engrave)
	setBoolAttr(e, "superscript", c.Superscript)
	setBoolAttr(e, "subscript", c.Subscript)
	if c.BorderFillIDRef != "" {
		e.SetAttr("borderFillIDRef", c.BorderFillIDRef)
	}
	for _, s := range c.Fonts {
		e.AddChild(encodeFontSlotXML(s))
	}
	return e
}

func decodeParaShapeXML(e *Element) (ParaShapeXML, error) {
	var p ParaShapeXML
	var err error
	if p.ID, err = requireAttrInt(e, "id"); err != nil {
		return p, err
	}
	if p.Align, err = requireAttr(e, "align"); err != nil {
		return p, err
	}
	if p.MarginLeft, err = attrInt(e, "marginLeft"); err != nil {
		return p, err
	}
	if p.MarginRight, err = attrInt(e, "marginRight"); err != nil {
		return p, err
	}
	if p.IndentFirstLine, err = attrInt(e, "indent"); err != nil {
		return p, err
	}
	if p.SpacingBefore, err = attrInt(e, "spacingBefore"); err != nil {
		return p, err
	}
	if p.SpacingAfter, err = attrInt(e, "spacingAfter"); err != nil {
		return p, err
	}
	p.LineSpacingType = attrStr(e, "lineSpacingType")
	if p.LineSpacingValue, err = attrInt(e, "lineSpacingValue"); err != nil {
		return p, err
	}
	if p.HasBorder, err = attrBool(e, "hasBorder"); err != nil {
		return p, err
	}
	p.BorderFillIDRef = attrStr(e, "borderFillIDRef")
	p.HeadingType = attrStr(e, "headingType")
	if p.HeadingLevel, err = attrInt(e, "headingLevel"); err != nil {
		return p, err
	}
	p.NumberingIDRef = attrStr(e, "numberingIDRef")
	p.BulletIDRef = attrStr(e, "bulletIDRef")
	p.TabDefIDRef = attrStr(e, "tabDefIDRef")
	if p.SnapToGrid, err = attrBool(e, "snapToGrid"); err != nil {
		return p, err
	}
	if p.BreakBefore, err = attrBool(e, "breakBefore"); err != nil {
		return p, err
	}
	return p, nil
}

func encodeParaShapeXML(p ParaShapeXML) *Element {
	e := NewElement(NSHead, "paraPr")
	setIntAttr(e, "id", p.ID)
	e.SetAttr("align", p.Align)
	setIntAttr(e, "marginLeft", p.MarginLeft)
	setIntAttr(e, "marginRight", p.MarginRight)
	setIntAttr(e, "indent", p.IndentFirstLine)
	setIntAttr(e, "spacingBefore", p.SpacingBefore)
	setIntAttr(e, "spacingAfter", p.SpacingAfter)
	e.SetAttr("lineSpacingType", p.LineSpacingType)
	setIntAttr(e, "lineSpacingValue", p.LineSpacingValue)
	setBoolAttr(e, "hasBorder", p.HasBorder)
	if p.BorderFillIDRef != "" {
		e.SetAttr("borderFillIDRef", p.BorderFillIDRef)
	}
	if p.HeadingType != "" {
		e.SetAttr("headingType", p.HeadingType)
		setIntAttr(e, "headingLevel", p.HeadingLevel)
	}
	if p.NumberingIDRef != "" {
		e.SetAttr("numberingIDRef", p.NumberingIDRef)
	}
	if p.BulletIDRef != "" {
		e.SetAttr("bulletIDRef", p.BulletIDRef)
	}
	if p.TabDefIDRef != "" {
		e.SetAttr("tabDefIDRef", p.TabDefIDRef)
	}
	setBoolAttr(e, "snapToGrid", p.SnapToGrid)
	setBoolAttr(e, "breakBefore", p.BreakBefore)
	return e
}

func decodeStyleXML(e *Element) (StyleXML, error) {
	var s StyleXML
	var err error
	if s.ID, err = requireAttrInt(e, "id"); err != nil {
		return s, err
	}
	if s.NameKorean, err = requireAttr(e, "name"); err != nil {
		return s, err
	}
	s.NameEnglish = attrStr(e, "engName")
	if s.Kind, err = requireAttr(e, "type"); err != nil {
		return s, err
	}
	s.ParaShapeIDRef = attrStr(e, "paraPrIDRef")
	s.CharShapeIDRef = attrStr(e, "charPrIDRef")
	s.NextStyleIDRef = attrStr(e, "nextStyleIDRef")
	return s, nil
}

func encodeStyleXML(s StyleXML) *Element {
	e := NewElement(NSHead, "style")
	setIntAttr(e, "id", s.ID)
	e.SetAttr("name", s.NameKorean)
	e.SetAttr("engName", s.NameEnglish)
	e.SetAttr("type", s.Kind)
	e.SetAttr("paraPrIDRef", s.ParaShapeIDRef)
	e.SetAttr("charPrIDRef", s.CharShapeIDRef)
	if s.NextStyleIDRef != "" {
		e.SetAttr("nextStyleIDRef", s.NextStyleIDRef)
	}
	return e
}

func decodeBorderEdgeXML(e *Element) BorderEdgeXML {
	return BorderEdgeXML{Type: attrStr(e, "type"), Width: mustAttrInt(e, "width"), Color: attrStr(e, "color")}
}

func mustAttrInt(e *Element, local string) int32 {
	v, _ := attrInt(e, local)
	return v
}

func encodeBorderEdgeXML(local string, b BorderEdgeXML) *Element {
	e := NewElement(NSHead, local)
	e.SetAttr("type", b.Type)
	setIntAttr(e, "width", b.Width)
	e.SetAttr("color", b.Color)
	return e
}

func decodeBorderFillXML(e *Element) (BorderFillXML, error) {
	var b BorderFillXML
	var err error
	if b.ID, err = requireAttrInt(e, "id"); err != nil {
		return b, err
	}
	if left, ok := e.Child(NSHead, "leftBorder"); ok {
		b.Left = decodeBorderEdgeXML(left)
	}
	if right, ok := e.Child(NSHead, "rightBorder"); ok {
		b.Right = decodeBorderEdgeXML(right)
	}
	if top, ok := e.Child(NSHead, "topBorder"); ok {
		b.Top = decodeBorderEdgeXML(top)
	}
	if bottom, ok := e.Child(NSHead, "bottomBorder"); ok {
		b.Bottom = decodeBorderEdgeXML(bottom)
	}
	if dd, ok := e.Child(NSHead, "diagonalDown"); ok {
		edge := decodeBorderEdgeXML(dd)
		b.DiagonalDown = &edge
	}
	if du, ok := e.Child(NSHead, "diagonalUp"); ok {
		edge := decodeBorderEdgeXML(du)
		b.DiagonalUp = &edge
	}
	if fill, ok := e.Child(NSHead, "fill"); ok {
		b.FillKind = attrStr(fill, "kind")
		b.FillColor1 = attrStr(fill, "color1")
		b.FillColor2 = attrStr(fill, "color2")
		b.FillPattern = attrStr(fill, "pattern")
		b.FillImageRef = attrStr(fill, "imageRef")
	}
	if b.ThreeD, err = attrBool(e, "threeD"); err != nil {
		return b, err
	}
	if b.Shadow, err = attrBool(e, "shadow"); err != nil {
		return b, err
	}
	return b, nil
}

func encodeBorderFillXML(b BorderFillXML) *Element {
	e := NewElement(NSHead, "borderFill")
	setIntAttr(e, "id", b.ID)
	e.AddChild(encodeBorderEdgeXML("leftBorder", b.Left))
	e.AddChild(encodeBorderEdgeXML("rightBorder", b.Right))
	e.AddChild(encodeBorderEdgeXML("topBorder", b.Top))
	e.AddChild(encodeBorderEdgeXML("bottomBorder", b.Bottom))
	if b.DiagonalDown != nil {
		e.AddChild(encodeBorderEdgeXML("diagonalDown", *b.DiagonalDown))
	}
	if b.DiagonalUp != nil {
		e.AddChild(encodeBorderEdgeXML("diagonalUp", *b.DiagonalUp))
	}
	fill := NewElement(NSHead, "fill")
	fill.SetAttr("kind", b.FillKind)
	if b.FillColor1 != "" {
		fill.SetAttr("color1", b.FillColor1)
	}
	if b.FillColor2 != "" {
		fill.SetAttr("color2", b.FillColor2)
	}
	if b.FillPattern != "" {
		fill.SetAttr("pattern", b.FillPattern)
	}
	if b.FillImageRef != "" {
		fill.SetAttr("imageRef", b.FillImageRef)
	}
	e.AddChild(fill)
	setBoolAttr(e, "threeD", b.ThreeD)
	setBoolAttr(e, "shadow", b.Shadow)
	return e
}

func decodeTabDefXML(e *Element) (TabDefXML, error) {
	var t TabDefXML
	var err error
	if t.ID, err = requireAttrInt(e, "id"); err != nil {
		return t, err
	}
	if t.AutoTabInterval, err = attrInt(e, "autoTabInterval"); err != nil {
		return t, err
	}
	for _, stop := range e.ChildrenOf(NSHead, "tabStop") {
		pos, err := requireAttrInt(stop, "pos")
		if err != nil {
			return t, err
		}
		t.Stops = append(t.Stops, TabStopXML{Position: pos, Type: attrStr(stop, "type"), Leader: attrStr(stop, "leader")})
	}
	return t, nil
}

func encodeTabDefXML(t TabDefXML) *Element {
	e := NewElement(NSHead, "tabPr")
	setIntAttr(e, "id", t.ID)
	setIntAttr(e, "autoTabInterval", t.AutoTabInterval)
	for _, s := range t.Stops {
		stop := NewElement(NSHead, "tabStop")
		setIntAttr(stop, "pos", s.Position)
		stop.SetAttr("type", s.Type)
		stop.SetAttr("leader", s.Leader)
		e.AddChild(stop)
	}
	return e
}

func decodeNumberingXML(e *Element) (NumberingXML, error) {
	var n NumberingXML
	var err error
	if n.ID, err = requireAttrInt(e, "id"); err != nil {
		return n, err
	}
	if n.StartNumber, err = attrInt(e, "start"); err != nil {
		return n, err
	}
	for _, lvl := range e.ChildrenOf(NSHead, "paraHead") {
		level, err := requireAttrInt(lvl, "level")
		if err != nil {
			return n, err
		}
		start, err := attrInt(lvl, "start")
		if err != nil {
			return n, err
		}
		textOffset, err := attrInt(lvl, "textOffset")
		if err != nil {
			return n, err
		}
		numberWidth, err := attrInt(lvl, "numberWidth")
		if err != nil {
			return n, err
		}
		n.Levels = append(n.Levels, NumberingLevelXML{
			Level: level, Template: attrStr(lvl, "template"), Start: start,
			Align: attrStr(lvl, "align"), CharShapeIDRef: attrStr(lvl, "charPrIDRef"),
			TextOffset: textOffset, NumberWidth: numberWidth, Format: attrStr(lvl, "numFormat"),
		})
	}
	return n, nil
}

func encodeNumberingXML(n NumberingXML) *Element {
	e := NewElement(NSHead, "numbering")
	setIntAttr(e, "id", n.ID)
	setIntAttr(e, "start", n.StartNumber)
	for _, lvl := range n.Levels {
		le := NewElement(NSHead, "paraHead")
		setIntAttr(le, "level", lvl.Level)
		le.SetAttr("template", lvl.Template)
		setIntAttr(le, "start", lvl.Start)
		le.SetAttr("align", lvl.Align)
		le.SetAttr("charPrIDRef", lvl.CharShapeIDRef)
		setIntAttr(le, "textOffset", lvl.TextOffset)
		setIntAttr(le, "numberWidth", lvl.NumberWidth)
		le.SetAttr("numFormat", lvl.Format)
		e.AddChild(le)
	}
	return e
}

func decodeBulletXML(e *Element) (BulletXML, error) {
	var b BulletXML
	var err error
	if b.ID, err = requireAttrInt(e, "id"); err != nil {
		return b, err
	}
	if b.Char, err = requireAttr(e, "char"); err != nil {
		return b, err
	}
	b.CharShapeIDRef = attrStr(e, "charPrIDRef")
	if b.Checkbox, err = attrBool(e, "checkbox"); err != nil {
		return b, err
	}
	return b, nil
}

func encodeBulletXML(b BulletXML) *Element {
	e := NewElement(NSHead, "bullet")
	setIntAttr(e, "id", b.ID)
	e.SetAttr("char", b.Char)
	if b.CharShapeIDRef != "" {
		e.SetAttr("charPrIDRef", b.CharShapeIDRef)
	}
	setBoolAttr(e, "checkbox", b.Checkbox)
	return e
}

// decodeHead binds the whole <head> tree, tolerating unknown child
// elements with CategoryUnknownElement warnings.
func decodeHead(root *Element, warnings *warn.Channel) (HeadXML, error) {
	var h HeadXML
	for _, list := range root.Children {
		switch list.Local {
		case "docSummary":
			s := DocSummaryXML{
				Title:   attrStr(list, "title"),
				Author:  attrStr(list, "author"),
				Subject: attrStr(list, "subject"),
			}
			lang, err := attrInt(list, "lang")
			if err != nil {
				return h, err
			}
			s.Language = lang
			for _, kc := range list.ChildrenOf(NSHead, "keyword") {
				s.Keywords = append(s.Keywords, kc.Text)
			}
			h.Summary = &s
		case "fontfaces":
			for _, fc := range list.ChildrenOf(NSHead, "font") {
				f, err := decodeFontXML(fc)
				if err != nil {
					return h, err
				}
				h.Fonts = append(h.Fonts, f)
			}
		case "charProperties":
			for _, cc := range list.ChildrenOf(NSHead, "charPr") {
				c, err := decodeCharShapeXML(cc)
				if err != nil {
					return h, err
				}
				h.CharShapes = append(h.CharShapes, c)
			}
		case "paraProperties":
			for _, pc := range list.ChildrenOf(NSHead, "paraPr") {
				p, err := decodeParaShapeXML(pc)
				if err != nil {
					return h, err
				}
				h.ParaShapes = append(h.ParaShapes, p)
			}
		case "styles":
			for _, sc := range list.ChildrenOf(NSHead, "style") {
				s, err := decodeStyleXML(sc)
				if err != nil {
					return h, err
				}
				h.Styles = append(h.Styles, s)
			}
		case "borderFills":
			for _, bc := range list.ChildrenOf(NSHead, "borderFill") {
				b, err := decodeBorderFillXML(bc)
				if err != nil {
					return h, err
				}
				h.BorderFills = append(h.BorderFills, b)
			}
		case "tabProperties":
			for _, tc := range list.ChildrenOf(NSHead, "tabPr") {
				t, err := decodeTabDefXML(tc)
				if err != nil {
					return h, err
				}
				h.TabDefs = append(h.TabDefs, t)
			}
		case "numberings":
			for _, nc := range list.ChildrenOf(NSHead, "numbering") {
				n, err := decodeNumberingXML(nc)
				if err != nil {
					return h, err
				}
				h.Numberings = append(h.Numberings, n)
			}
		case "bullets":
			for _, bc := range list.ChildrenOf(NSHead, "bullet") {
				b, err := decodeBulletXML(bc)
				if err != nil {
					return h, err
				}
				h.Bullets = append(h.Bullets, b)
			}
		case "forbiddenWordList":
			for _, wc := range list.ChildrenOf(NSHead, "forbiddenWord") {
				h.ForbiddenWords = append(h.ForbiddenWords, wc.Text)
			}
		case "masterPages":
			for _, mc := range list.ChildrenOf(NSHead, "masterPage") {
				h.MasterPages = append(h.MasterPages, MasterPageXML{ID: attrStr(mc, "id"), Name: attrStr(mc, "name"), Type: attrStr(mc, "type")})
			}
		case "trackchangeConfig":
			for _, tc := range list.ChildrenOf(NSHead, "trackChangeAuthor") {
				h.TrackChangeAuthors = append(h.TrackChangeAuthors, TrackChangeAuthorColorXML{
					Author: attrStr(tc, "author"), Color: attrStr(tc, "color"), ChangeType: attrStr(tc, "changeType"),
				})
			}
		case "layoutCompatibility":
			for _, fc := range list.ChildrenOf(NSHead, "flag") {
				h.LayoutCompatFlags = append(h.LayoutCompatFlags, attrStr(fc, "v"))
			}
		case "docOption":
			h.DocumentOptionLinkPath = attrStr(list, "linkPath")
		default:
			warnings.UnknownElement(list.Local)
		}
	}
	return h, nil
}

func encodeHead(h HeadXML) *Element {
	root := NewElement(NSHead, "head")

	if h.Summary != nil {
		s := NewElement(NSHead, "docSummary")
		s.SetAttr("title", h.Summary.Title)
		s.SetAttr("author", h.Summary.Author)
		s.SetAttr("subject", h.Summary.Subject)
		setIntAttr(s, "lang", h.Summary.Language)
		for _, kw := range h.Summary.Keywords {
			kc := NewElement(NSHead, "keyword")
			kc.Text = kw
			s.AddChild(kc)
		}
		root.AddChild(s)
	}

	fontfaces := NewElement(NSHead, "fontfaces")
	for _, f := range h.Fonts {
		fontfaces.AddChild(encodeFontXML(f))
	}
	root.AddChild(fontfaces)

	charProps := NewElement(NSHead, "charProperties")
	for _, c := range h.CharShapes {
		charProps.AddChild(encodeCharShapeXML(c))
	}
	root.AddChild(charProps)

	paraProps := NewElement(NSHead, "paraProperties")
	for _, p := range h.ParaShapes {
		paraProps.AddChild(encodeParaShapeXML(p))
	}
	root.AddChild(paraProps)

	styles := NewElement(NSHead, "styles")
	for _, s := range h.Styles {
		styles.AddChild(encodeStyleXML(s))
	}
	root.AddChild(styles)

	borderFills := NewElement(NSHead, "borderFills")
	for _, b := range h.BorderFills {
		borderFills.AddChild(encodeBorderFillXML(b))
	}
	root.AddChild(borderFills)

	tabProps := NewElement(NSHead, "tabProperties")
	for _, t := range h.TabDefs {
		tabProps.AddChild(encodeTabDefXML(t))
	}
	root.AddChild(tabProps)

	numberings := NewElement(NSHead, "numberings")
	for _, n := range h.Numberings {
		numberings.AddChild(encodeNumberingXML(n))
	}
	root.AddChild(numberings)

	bullets := NewElement(NSHead, "bullets")
	for _, b := range h.Bullets {
		bullets.AddChild(encodeBulletXML(b))
	}
	root.AddChild(bullets)

	if len(h.ForbiddenWords) > 0 {
		fw := NewElement(NSHead, "forbiddenWordList")
		for _, w := range h.ForbiddenWords {
			wc := NewElement(NSHead, "forbiddenWord")
			wc.Text = w
			fw.AddChild(wc)
		}
		root.AddChild(fw)
	}
	if len(h.MasterPages) > 0 {
		mp := NewElement(NSHead, "masterPages")
		for _, m := range h.MasterPages {
			mc := NewElement(NSHead, "masterPage")
			mc.SetAttr("id", m.ID)
			mc.SetAttr("name", m.Name)
			mc.SetAttr("type", m.Type)
			mp.AddChild(mc)
		}
		root.AddChild(mp)
	}
	if len(h.TrackChangeAuthors) > 0 {
		tc := NewElement(NSHead, "trackchangeConfig")
		for _, a := range h.TrackChangeAuthors {
			ac := NewElement(NSHead, "trackChangeAuthor")
			ac.SetAttr("author", a.Author)
			ac.SetAttr("color", a.Color)
			ac.SetAttr("changeType", a.ChangeType)
			tc.AddChild(ac)
		}
		root.AddChild(tc)
	}
	if len(h.LayoutCompatFlags) > 0 {
		lc := NewElement(NSHead, "layoutCompatibility")
		for _, f := range h.LayoutCompatFlags {
			fc := NewElement(NSHead, "flag")
			fc.SetAttr("v", f)
			lc.AddChild(fc)
		}
		root.AddChild(lc)
	}
	if h.DocumentOptionLinkPath != "" {
		opt := NewElement(NSHead, "docOption")
		opt.SetAttr("linkPath", h.DocumentOptionLinkPath)
		root.AddChild(opt)
	}
	return root
}
