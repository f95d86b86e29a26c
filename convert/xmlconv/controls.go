package xmlconv

import (
	"encoding/hex"
	"strconv"

	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
	"github.com/tinywasm/hwpconv/xmlfmt"
)

// This file maps inline controls between the wire's element vocabulary
// and the canonical Control union. Tables, pictures and memos have
// dedicated elements; every other kind travels in the generic
// <ctrl kind="..."> envelope with its scalars as attributes.

func kvGet(attrs []xmlfmt.AttrKV, key string) string {
	for _, kv := range attrs {
		if kv.Key == key {
			return kv.Value
		}
	}
	return ""
}

func kvInt(attrs []xmlfmt.AttrKV, key string, warnings *warn.Channel) int32 {
	v := kvGet(attrs, key)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		warnings.FallbackApplied("control attribute " + key + " not numeric, using 0")
		return 0
	}
	return int32(n)
}

func kvBool(attrs []xmlfmt.AttrKV, key string) bool {
	v := kvGet(attrs, key)
	return v == "1" || v == "true"
}

func kvSet(attrs []xmlfmt.AttrKV, key, value string) []xmlfmt.AttrKV {
	return append(attrs, xmlfmt.AttrKV{Key: key, Value: value})
}

func kvSetInt(attrs []xmlfmt.AttrKV, key string, v int32) []xmlfmt.AttrKV {
	return kvSet(attrs, key, strconv.FormatInt(int64(v), 10))
}

func kvSetBool(attrs []xmlfmt.AttrKV, key string, v bool) []xmlfmt.AttrKV {
	if v {
		return kvSet(attrs, key, "1")
	}
	return kvSet(attrs, key, "0")
}

func objectCommonFromXML(c xmlfmt.ObjectCommonXML, warnings *warn.Channel) ir.ObjectCommon {
	out := ir.ObjectCommon{
		OffsetX: ir.LengthUnit(c.OffsetX),
		OffsetY: ir.LengthUnit(c.OffsetY),
		Width:   ir.LengthUnit(c.Width),
		Height:  ir.LengthUnit(c.Height),
		ZOrder:  c.ZOrder,
		Margins: ir.Margins{
			Left:   ir.LengthUnit(c.MarginLeft),
			Right:  ir.LengthUnit(c.MarginRight),
			Top:    ir.LengthUnit(c.MarginTop),
			Bottom: ir.LengthUnit(c.MarginBottom),
		},
		Wrap: ir.TextWrap{
			TreatAsChar:   c.TreatAsChar,
			HorizontalRel: hRelFromXML(c.HorizontalRelativeTo, warnings),
			VerticalRel:   vRelFromXML(c.VerticalRelativeTo, warnings),
			WrapType:      wrapTypeFromXML(c.WrapType, warnings),
			WrapSide:      wrapSideFromXML(c.WrapSide, warnings),
			AllowOverlap:  c.AllowOverlap,
		},
	}
	if c.CaptionText != "" {
		out.Caption = &ir.Caption{
			Position:   captionPositionFromXML(c.CaptionPosition, warnings),
			Paragraphs: paragraphsOfText(c.CaptionText),
		}
	}
	return out
}

func objectCommonToXML(c ir.ObjectCommon, warnings *warn.Channel) xmlfmt.ObjectCommonXML {
	out := xmlfmt.ObjectCommonXML{
		TreatAsChar:          c.Wrap.TreatAsChar,
		OffsetX:              int32(c.OffsetX),
		OffsetY:              int32(c.OffsetY),
		Width:                int32(c.Width),
		Height:               int32(c.Height),
		ZOrder:               c.ZOrder,
		HorizontalRelativeTo: hRelToXML(c.Wrap.HorizontalRel),
		VerticalRelativeTo:   vRelToXML(c.Wrap.VerticalRel),
		WrapType:             wrapTypeToXML(c.Wrap.WrapType),
		WrapSide:             wrapSideToXML(c.Wrap.WrapSide),
		AllowOverlap:         c.Wrap.AllowOverlap,
		MarginLeft:           int32(c.Margins.Left),
		MarginRight:          int32(c.Margins.Right),
		MarginTop:            int32(c.Margins.Top),
		MarginBottom:         int32(c.Margins.Bottom),
	}
	if c.Caption != nil {
		out.CaptionText = textOfParagraphs(c.Caption.Paragraphs)
		out.CaptionPosition = captionPositionToXML(c.Caption.Position)
		if c.Caption.Width != 0 {
			warnings.DataLoss("caption width (the caption element carries text and position only)")
		}
	}
	return out
}

// commonToAttrs flattens the anchored-object preamble into the generic
// envelope's attribute list; commonFromAttrs is its inverse. The
// attribute names match the dedicated tbl/pic elements so the two
// spellings stay greppable as one vocabulary.
func commonToAttrs(c ir.ObjectCommon, attrs []xmlfmt.AttrKV, warnings *warn.Channel) []xmlfmt.AttrKV {
	attrs = kvSetBool(attrs, "treatAsChar", c.Wrap.TreatAsChar)
	attrs = kvSetInt(attrs, "offsetX", int32(c.OffsetX))
	attrs = kvSetInt(attrs, "offsetY", int32(c.OffsetY))
	attrs = kvSetInt(attrs, "width", int32(c.Width))
	attrs = kvSetInt(attrs, "height", int32(c.Height))
	attrs = kvSetInt(attrs, "zOrder", c.ZOrder)
	attrs = kvSet(attrs, "horzRelTo", hRelToXML(c.Wrap.HorizontalRel))
	attrs = kvSet(attrs, "vertRelTo", vRelToXML(c.Wrap.VerticalRel))
	attrs = kvSet(attrs, "wrap", wrapTypeToXML(c.Wrap.WrapType))
	attrs = kvSet(attrs, "wrapSide", wrapSideToXML(c.Wrap.WrapSide))
	attrs = kvSetBool(attrs, "allowOverlap", c.Wrap.AllowOverlap)
	attrs = kvSetInt(attrs, "marginLeft", int32(c.Margins.Left))
	attrs = kvSetInt(attrs, "marginRight", int32(c.Margins.Right))
	attrs = kvSetInt(attrs, "marginTop", int32(c.Margins.Top))
	attrs = kvSetInt(attrs, "marginBottom", int32(c.Margins.Bottom))
	if c.Caption != nil {
		warnings.DataLoss("caption on a generic control envelope")
	}
	return attrs
}

func commonFromAttrs(attrs []xmlfmt.AttrKV, warnings *warn.Channel) ir.ObjectCommon {
	return ir.ObjectCommon{
		OffsetX: ir.LengthUnit(kvInt(attrs, "offsetX", warnings)),
		OffsetY: ir.LengthUnit(kvInt(attrs, "offsetY", warnings)),
		Width:   ir.LengthUnit(kvInt(attrs, "width", warnings)),
		Height:  ir.LengthUnit(kvInt(attrs, "height", warnings)),
		ZOrder:  kvInt(attrs, "zOrder", warnings),
		Margins: ir.Margins{
			Left:   ir.LengthUnit(kvInt(attrs, "marginLeft", warnings)),
			Right:  ir.LengthUnit(kvInt(attrs, "marginRight", warnings)),
			Top:    ir.LengthUnit(kvInt(attrs, "marginTop", warnings)),
			Bottom: ir.LengthUnit(kvInt(attrs, "marginBottom", warnings)),
		},
		Wrap: ir.TextWrap{
			TreatAsChar:   kvBool(attrs, "treatAsChar"),
			HorizontalRel: hRelFromXML(kvGet(attrs, "horzRelTo"), warnings),
			VerticalRel:   vRelFromXML(kvGet(attrs, "vertRelTo"), warnings),
			WrapType:      wrapTypeFromXML(kvGet(attrs, "wrap"), warnings),
			WrapSide:      wrapSideFromXML(kvGet(attrs, "wrapSide"), warnings),
			AllowOverlap:  kvBool(attrs, "allowOverlap"),
		},
	}
}

// paragraphsOfText wraps plain text in a single minimal paragraph.
func paragraphsOfText(s string) []ir.Paragraph {
	p := ir.Paragraph{
		CharShapeRefs: []ir.CharShapeRef{{Position: 0, CharShape: 0}},
	}
	if s != "" {
		p.Runs = []ir.Run{{Content: []ir.RunContent{{Kind: ir.ContentText, Text: s}}}}
	}
	return []ir.Paragraph{p}
}

// textOfParagraphs concatenates the plain-text content of paragraphs,
// joining paragraph boundaries with newlines.
func textOfParagraphs(paras []ir.Paragraph) string {
	out := ""
	for i, p := range paras {
		if i > 0 {
			out += "\n"
		}
		for _, r := range p.Runs {
			for _, c := range r.Content {
				if c.Kind == ir.ContentText {
					out += c.Text
				}
			}
		}
	}
	return out
}

func paragraphsFromXMLList(ps []xmlfmt.ParagraphXML, warnings *warn.Channel) ([]ir.Paragraph, error) {
	out := make([]ir.Paragraph, 0, len(ps))
	for _, p := range ps {
		para, err := paragraphFromXML(p, warnings)
		if err != nil {
			return nil, err
		}
		out = append(out, para)
	}
	return out, nil
}

func paragraphsToXMLList(ps []ir.Paragraph, warnings *warn.Channel) ([]xmlfmt.ParagraphXML, error) {
	out := make([]xmlfmt.ParagraphXML, 0, len(ps))
	for _, p := range ps {
		para, err := paragraphToXML(p, warnings)
		if err != nil {
			return nil, err
		}
		out = append(out, para)
	}
	return out, nil
}

// controlFromXML maps one wire control to its canonical variant.
func controlFromXML(c xmlfmt.ControlXML, warnings *warn.Channel) (ir.Control, error) {
	switch {
	case c.Table != nil:
		return tableFromXML(*c.Table, warnings)
	case c.Picture != nil:
		return pictureFromXML(*c.Picture, warnings), nil
	case c.Memo != nil:
		return ir.Control{Kind: ir.ControlMemo, Memo: &ir.Memo{
			Author:     c.Memo.Author,
			CreatedAt:  c.Memo.CreatedAt,
			Paragraphs: paragraphsOfText(c.Memo.Text),
		}}, nil
	case c.Generic != nil:
		return genericControlFromXML(*c.Generic, warnings)
	}
	warnings.UnknownElement(c.Kind)
	return ir.Control{Kind: ir.ControlUnknown, Unknown: &ir.Unknown{}}, nil
}

func genericControlFromXML(g xmlfmt.GenericControlXML, warnings *warn.Channel) (ir.Control, error) {
	kind := controlKindFromXML(g.Kind, warnings)
	out := ir.Control{Kind: kind}
	switch kind {
	case ir.ControlEquation:
		out.Equation = &ir.Equation{
			Common: commonFromAttrs(g.Attrs, warnings),
			Script: g.Text,
		}
	case ir.ControlShape:
		out.Shape = &ir.Shape{
			Common:      commonFromAttrs(g.Attrs, warnings),
			BorderFill:  ir.BorderFillId(kvInt(g.Attrs, "borderFillIDRef", warnings)),
			RotationDeg: int16(kvInt(g.Attrs, "rotation", warnings)),
		}
	case ir.ControlTextBox:
		paras, err := paragraphsFromXMLList(g.Paragraphs, warnings)
		if err != nil {
			return out, err
		}
		out.TextBox = &ir.TextBox{
			Common:     commonFromAttrs(g.Attrs, warnings),
			BorderFill: ir.BorderFillId(kvInt(g.Attrs, "borderFillIDRef", warnings)),
			Paragraphs: paras,
		}
	case ir.ControlHeader, ir.ControlFooter:
		paras, err := paragraphsFromXMLList(g.Paragraphs, warnings)
		if err != nil {
			return out, err
		}
		out.HeaderFooter = &ir.HeaderFooter{
			ApplyPages: pageBorderPageTypeFromXML(kvGet(g.Attrs, "applyPages"), warnings),
			Paragraphs: paras,
		}
	case ir.ControlFootnote, ir.ControlEndnote:
		paras, err := paragraphsFromXMLList(g.Paragraphs, warnings)
		if err != nil {
			return out, err
		}
		out.Note = &ir.Note{
			Number:     uint32(kvInt(g.Attrs, "number", warnings)),
			Paragraphs: paras,
		}
	case ir.ControlHyperlink:
		out.Hyperlink = &ir.Hyperlink{
			Target:  kvGet(g.Attrs, "target"),
			Display: kvGet(g.Attrs, "display"),
		}
	case ir.ControlBookmark:
		out.Bookmark = &ir.Bookmark{Name: kvGet(g.Attrs, "name")}
	case ir.ControlAutoNumber:
		an := &ir.AutoNumber{
			Kind:   autoNumberKindFromXML(kvGet(g.Attrs, "numKind"), warnings),
			Format: numberFormatFromXML(kvGet(g.Attrs, "numFormat"), warnings),
		}
		if v := kvGet(g.Attrs, "position"); v != "" {
			pos := captionPositionFromXML(v, warnings)
			an.Position = &pos
		}
		out.AutoNumber = an
	case ir.ControlNewNumber:
		out.NewNumber = &ir.NewNumber{
			Kind:  autoNumberKindFromXML(kvGet(g.Attrs, "numKind"), warnings),
			Value: uint32(kvInt(g.Attrs, "value", warnings)),
		}
	case ir.ControlHiddenComment:
		paras, err := paragraphsFromXMLList(g.Paragraphs, warnings)
		if err != nil {
			return out, err
		}
		out.HiddenComment = &ir.HiddenComment{Paragraphs: paras}
	case ir.ControlVideo:
		out.Video = &ir.Video{
			Common: commonFromAttrs(g.Attrs, warnings),
			Source: binItemRefToID(kvGet(g.Attrs, "binItemRef"), warnings),
		}
	case ir.ControlOle:
		out.Ole = &ir.Ole{
			Common: commonFromAttrs(g.Attrs, warnings),
			Data:   binItemRefToID(kvGet(g.Attrs, "binItemRef"), warnings),
		}
	case ir.ControlChart:
		data, err := hex.DecodeString(g.Text)
		if err != nil {
			warnings.FallbackApplied("chart payload not valid hex, dropping bytes")
			data = nil
		}
		out.Chart = &ir.Chart{Common: commonFromAttrs(g.Attrs, warnings), Data: data}
	case ir.ControlFormObject:
		out.FormObject = &ir.FormObject{
			Common: commonFromAttrs(g.Attrs, warnings),
			Name:   kvGet(g.Attrs, "name"),
			Kind:   kvGet(g.Attrs, "formType"),
		}
	case ir.ControlTextArt:
		out.TextArt = &ir.TextArt{Common: commonFromAttrs(g.Attrs, warnings), Text: g.Text}
	case ir.ControlMemo:
		out.Memo = &ir.Memo{
			Author:     kvGet(g.Attrs, "author"),
			CreatedAt:  kvGet(g.Attrs, "createdAt"),
			Paragraphs: paragraphsOfText(g.Text),
		}
	case ir.ControlIndexMark:
		out.IndexMark = &ir.IndexMark{
			Author:    kvGet(g.Attrs, "author"),
			CreatedAt: kvGet(g.Attrs, "createdAt"),
			Key1:      kvGet(g.Attrs, "key1"),
			Key2:      kvGet(g.Attrs, "key2"),
		}
	default:
		raw, err := hex.DecodeString(g.Text)
		if err != nil {
			raw = nil
		}
		out.Kind = ir.ControlUnknown
		out.Unknown = &ir.Unknown{
			TagID: uint32(kvInt(g.Attrs, "tagID", warnings)),
			Raw:   raw,
		}
	}
	return out, nil
}

// controlToXML maps one canonical control to its wire form.
func controlToXML(c ir.Control, warnings *warn.Channel) (*xmlfmt.ControlXML, error) {
	switch c.Kind {
	case ir.ControlTable:
		t, err := tableToXML(*c.Table, warnings)
		if err != nil {
			return nil, err
		}
		return &xmlfmt.ControlXML{Kind: "table", Table: &t}, nil
	case ir.ControlPicture:
		p := pictureToXML(*c.Picture, warnings)
		return &xmlfmt.ControlXML{Kind: "picture", Picture: &p}, nil
	case ir.ControlMemo:
		return &xmlfmt.ControlXML{Kind: "memo", Memo: &xmlfmt.MemoXML{
			Author:    c.Memo.Author,
			CreatedAt: c.Memo.CreatedAt,
			Text:      textOfParagraphs(c.Memo.Paragraphs),
		}}, nil
	}

	g := xmlfmt.GenericControlXML{Kind: controlKindToXML(c.Kind)}
	var err error
	switch c.Kind {
	case ir.ControlEquation:
		g.Attrs = commonToAttrs(c.Equation.Common, g.Attrs, warnings)
		g.Text = c.Equation.Script
	case ir.ControlShape:
		g.Attrs = commonToAttrs(c.Shape.Common, g.Attrs, warnings)
		g.Attrs = kvSetInt(g.Attrs, "borderFillIDRef", int32(c.Shape.BorderFill))
		g.Attrs = kvSetInt(g.Attrs, "rotation", int32(c.Shape.RotationDeg))
	case ir.ControlTextBox:
		g.Attrs = commonToAttrs(c.TextBox.Common, g.Attrs, warnings)
		g.Attrs = kvSetInt(g.Attrs, "borderFillIDRef", int32(c.TextBox.BorderFill))
		g.Paragraphs, err = paragraphsToXMLList(c.TextBox.Paragraphs, warnings)
	case ir.ControlHeader, ir.ControlFooter:
		g.Attrs = kvSet(g.Attrs, "applyPages", pageBorderPageTypeToXML(c.HeaderFooter.ApplyPages))
		g.Paragraphs, err = paragraphsToXMLList(c.HeaderFooter.Paragraphs, warnings)
	case ir.ControlFootnote, ir.ControlEndnote:
		g.Attrs = kvSetInt(g.Attrs, "number", int32(c.Note.Number))
		g.Paragraphs, err = paragraphsToXMLList(c.Note.Paragraphs, warnings)
	case ir.ControlHyperlink:
		g.Attrs = kvSet(g.Attrs, "target", c.Hyperlink.Target)
		g.Attrs = kvSet(g.Attrs, "display", c.Hyperlink.Display)
	case ir.ControlBookmark:
		g.Attrs = kvSet(g.Attrs, "name", c.Bookmark.Name)
	case ir.ControlAutoNumber:
		g.Attrs = kvSet(g.Attrs, "numKind", autoNumberKindToXML(c.AutoNumber.Kind))
		g.Attrs = kvSet(g.Attrs, "numFormat", numberFormatToXML(c.AutoNumber.Format, warnings))
		if c.AutoNumber.Position != nil {
			g.Attrs = kvSet(g.Attrs, "position", captionPositionToXML(*c.AutoNumber.Position))
		}
	case ir.ControlNewNumber:
		g.Attrs = kvSet(g.Attrs, "numKind", autoNumberKindToXML(c.NewNumber.Kind))
		g.Attrs = kvSetInt(g.Attrs, "value", int32(c.NewNumber.Value))
	case ir.ControlHiddenComment:
		g.Paragraphs, err = paragraphsToXMLList(c.HiddenComment.Paragraphs, warnings)
	case ir.ControlVideo:
		g.Attrs = commonToAttrs(c.Video.Common, g.Attrs, warnings)
		g.Attrs = kvSet(g.Attrs, "binItemRef", binItemRefFromID(c.Video.Source))
	case ir.ControlOle:
		g.Attrs = commonToAttrs(c.Ole.Common, g.Attrs, warnings)
		g.Attrs = kvSet(g.Attrs, "binItemRef", binItemRefFromID(c.Ole.Data))
	case ir.ControlChart:
		g.Attrs = commonToAttrs(c.Chart.Common, g.Attrs, warnings)
		g.Text = hex.EncodeToString(c.Chart.Data)
	case ir.ControlFormObject:
		g.Attrs = commonToAttrs(c.FormObject.Common, g.Attrs, warnings)
		g.Attrs = kvSet(g.Attrs, "name", c.FormObject.Name)
		g.Attrs = kvSet(g.Attrs, "formType", c.FormObject.Kind)
	case ir.ControlTextArt:
		g.Attrs = commonToAttrs(c.TextArt.Common, g.Attrs, warnings)
		g.Text = c.TextArt.Text
	case ir.ControlIndexMark:
		g.Attrs = kvSet(g.Attrs, "author", c.IndexMark.Author)
		g.Attrs = kvSet(g.Attrs, "createdAt", c.IndexMark.CreatedAt)
		g.Attrs = kvSet(g.Attrs, "key1", c.IndexMark.Key1)
		g.Attrs = kvSet(g.Attrs, "key2", c.IndexMark.Key2)
	case ir.ControlUnknown:
		if c.Unknown != nil {
			g.Attrs = kvSetInt(g.Attrs, "tagID", int32(c.Unknown.TagID))
			g.Text = hex.EncodeToString(c.Unknown.Raw)
		}
	default:
		warnings.DataLoss("control kind without a wire mapping")
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &xmlfmt.ControlXML{Kind: g.Kind, Generic: &g}, nil
}

func tableFromXML(t xmlfmt.TableXML, warnings *warn.Channel) (ir.Control, error) {
	tbl := ir.Table{
		Common:     objectCommonFromXML(t.Common, warnings),
		Rows:       uint16(t.Rows),
		Columns:    uint16(t.Columns),
		BorderFill: ir.BorderFillId(idRefFromXML(t.BorderFillIDRef, warnings, "BorderFill")),
	}
	for _, h := range t.RowHeights {
		tbl.RowHeights = append(tbl.RowHeights, ir.LengthUnit(h))
	}
	for _, z := range t.Zones {
		tbl.Zones = append(tbl.Zones, ir.TableZone{
			StartRow:   uint16(z.StartRow),
			StartCol:   uint16(z.StartCol),
			EndRow:     uint16(z.EndRow),
			EndCol:     uint16(z.EndCol),
			BorderFill: ir.BorderFillId(idRefFromXML(z.BorderFillIDRef, warnings, "BorderFill")),
		})
	}
	for _, c := range t.Cells {
		paras, err := paragraphsFromXMLList(c.Paragraphs, warnings)
		if err != nil {
			return ir.Control{}, err
		}
		tbl.Cells = append(tbl.Cells, ir.TableCell{
			Row:        uint16(c.Row),
			Column:     uint16(c.Column),
			RowSpan:    uint16(c.RowSpan),
			ColSpan:    uint16(c.ColSpan),
			BorderFill: ir.BorderFillId(idRefFromXML(c.BorderFillIDRef, warnings, "BorderFill")),
			Width:      ir.LengthUnit(c.Width),
			Height:     ir.LengthUnit(c.Height),
			Paragraphs: paras,
		})
	}
	return ir.Control{Kind: ir.ControlTable, Table: &tbl}, nil
}

func tableToXML(t ir.Table, warnings *warn.Channel) (xmlfmt.TableXML, error) {
	out := xmlfmt.TableXML{
		Common:          objectCommonToXML(t.Common, warnings),
		Rows:            int32(t.Rows),
		Columns:         int32(t.Columns),
		BorderFillIDRef: idRefToXML(t.BorderFill),
	}
	for _, h := range t.RowHeights {
		out.RowHeights = append(out.RowHeights, int32(h))
	}
	for _, z := range t.Zones {
		out.Zones = append(out.Zones, xmlfmt.ZoneXML{
			StartRow:        int32(z.StartRow),
			StartCol:        int32(z.StartCol),
			EndRow:          int32(z.EndRow),
			EndCol:          int32(z.EndCol),
			BorderFillIDRef: idRefToXML(z.BorderFill),
		})
	}
	for _, c := range t.Cells {
		paras, err := paragraphsToXMLList(c.Paragraphs, warnings)
		if err != nil {
			return out, err
		}
		out.Cells = append(out.Cells, xmlfmt.CellXML{
			Row:             int32(c.Row),
			Column:          int32(c.Column),
			RowSpan:         int32(c.RowSpan),
			ColSpan:         int32(c.ColSpan),
			BorderFillIDRef: idRefToXML(c.BorderFill),
			Width:           int32(c.Width),
			Height:          int32(c.Height),
			Paragraphs:      paras,
		})
	}
	return out, nil
}

func pictureFromXML(p xmlfmt.PictureXML, warnings *warn.Channel) ir.Control {
	return ir.Control{Kind: ir.ControlPicture, Picture: &ir.Picture{
		Common:     objectCommonFromXML(p.Common, warnings),
		Image:      binItemRefToID(p.BinItemRef, warnings),
		Effect:     imageEffectFromXML(p.Effect, warnings),
		Fill:       imageFillModeFromXML(p.FillMode, warnings),
		CropLeft:   ir.LengthUnit(p.CropLeft),
		CropRight:  ir.LengthUnit(p.CropRight),
		CropTop:    ir.LengthUnit(p.CropTop),
		CropBottom: ir.LengthUnit(p.CropBottom),
	}}
}

func pictureToXML(p ir.Picture, warnings *warn.Channel) xmlfmt.PictureXML {
	return xmlfmt.PictureXML{
		Common:     objectCommonToXML(p.Common, warnings),
		BinItemRef: binItemRefFromID(p.Image),
		Effect:     imageEffectToXML(p.Effect),
		FillMode:   imageFillModeToXML(p.Fill),
		CropLeft:   int32(p.CropLeft),
		CropRight:  int32(p.CropRight),
		CropTop:    int32(p.CropTop),
		CropBottom: int32(p.CropBottom),
	}
}
