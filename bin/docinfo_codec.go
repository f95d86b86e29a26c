package bin

import "github.com/tinywasm/hwpconv/warn"

// Each DocInfo list record's payload is a uint16 entry count followed
// by that many fixed/variable-length entries.

func decodeDocProps(payload []byte) (DocPropsRecord, error) {
	c := newCursor(payload)
	var rec DocPropsRecord
	var err error
	if rec.Title, err = c.utf16String(); err != nil {
		return rec, err
	}
	if rec.Author, err = c.utf16String(); err != nil {
		return rec, err
	}
	if rec.Subject, err = c.utf16String(); err != nil {
		return rec, err
	}
	n, err := c.u16()
	if err != nil {
		return rec, err
	}
	for i := uint16(0); i < n; i++ {
		kw, err := c.utf16String()
		if err != nil {
			return rec, err
		}
		rec.Keywords = append(rec.Keywords, kw)
	}
	for _, f := range []*uint16{&rec.Major, &rec.Minor, &rec.Micro, &rec.Build} {
		if *f, err = c.u16(); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func encodeDocProps(rec DocPropsRecord) []byte {
	w := &writer{}
	w.utf16String(rec.Title)
	w.utf16String(rec.Author)
	w.utf16String(rec.Subject)
	w.u16(uint16(len(rec.Keywords)))
	for _, kw := range rec.Keywords {
		w.utf16String(kw)
	}
	w.u16(rec.Major)
	w.u16(rec.Minor)
	w.u16(rec.Micro)
	w.u16(rec.Build)
	return w.buf
}

func decodeFontList(payload []byte) ([]FontRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]FontRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		name, err := c.utf16String()
		if err != nil {
			return nil, err
		}
		familyTag, err := c.u8()
		if err != nil {
			return nil, err
		}
		panose, err := c.bytes(10)
		if err != nil {
			return nil, err
		}
		sub, err := c.utf16String()
		if err != nil {
			return nil, err
		}
		embeddedFlag, err := c.u8()
		if err != nil {
			return nil, err
		}
		ref, err := c.u16()
		if err != nil {
			return nil, err
		}
		var panoseArr [10]byte
		copy(panoseArr[:], panose)
		out = append(out, FontRecord{
			Name: name, FamilyTag: familyTag, Panose: panoseArr,
			Substitute: sub, Embedded: embeddedFlag != 0, BinDataRef: ref,
		})
	}
	return out, nil
}

func encodeFontList(list []FontRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, f := range list {
		w.utf16String(f.Name)
		w.u8(f.FamilyTag)
		w.bytes(f.Panose[:])
		w.utf16String(f.Substitute)
		if f.Embedded {
			w.u8(1)
		} else {
			w.u8(0)
		}
		w.u16(f.BinDataRef)
	}
	return w.buf
}

func decodeFontSlot(c *cursor) (FontSlotRecord, error) {
	idx, err := c.u16()
	if err != nil {
		return FontSlotRecord{}, err
	}
	wr, err := c.i8()
	if err != nil {
		return FontSlotRecord{}, err
	}
	sp, err := c.i8()
	if err != nil {
		return FontSlotRecord{}, err
	}
	off, err := c.i8()
	if err != nil {
		return FontSlotRecord{}, err
	}
	rel, err := c.u8()
	if err != nil {
		return FontSlotRecord{}, err
	}
	return FontSlotRecord{FontIndex: idx, WidthRatio: wr, Spacing: sp, Offset: off, RelativeSize: rel}, nil
}

func encodeFontSlot(w *writer, s FontSlotRecord) {
	w.u16(s.FontIndex)
	w.i8(s.WidthRatio)
	w.i8(s.Spacing)
	w.i8(s.Offset)
	w.u8(s.RelativeSize)
}

func decodeCharShapeList(payload []byte) ([]CharShapeRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]CharShapeRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec CharShapeRecord
		for s := 0; s < 7; s++ {
			slot, err := decodeFontSlot(c)
			if err != nil {
				return nil, err
			}
			rec.Fonts[s] = slot
		}
		if rec.Size, err = c.i32(); err != nil {
			return nil, err
		}
		if rec.Properties, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.Foreground, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.Shade, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.UnderlineShapeColor, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.StrikethroughColor, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.ShadowOffsetX, err = c.i8(); err != nil {
			return nil, err
		}
		if rec.ShadowOffsetY, err = c.i8(); err != nil {
			return nil, err
		}
		if rec.ShadowColor, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.BorderFillIndex, err = c.i32(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeCharShapeList(list []CharShapeRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		for _, slot := range rec.Fonts {
			encodeFontSlot(w, slot)
		}
		w.i32(rec.Size)
		w.u32(rec.Properties)
		w.u32(rec.Foreground)
		w.u32(rec.Shade)
		w.u32(rec.UnderlineShapeColor)
		w.u32(rec.StrikethroughColor)
		w.i8(rec.ShadowOffsetX)
		w.i8(rec.ShadowOffsetY)
		w.u32(rec.ShadowColor)
		w.i32(rec.BorderFillIndex)
	}
	return w.buf
}

func decodeParaShapeList(payload []byte) ([]ParaShapeRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]ParaShapeRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec ParaShapeRecord
		fields := []*int32{&rec.MarginLeft, &rec.MarginRight, &rec.IndentFirstLine, &rec.SpacingBefore, &rec.SpacingAfter}
		if rec.Properties1, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.Properties2, err = c.u32(); err != nil {
			return nil, err
		}
		for _, f := range fields {
			if *f, err = c.i32(); err != nil {
				return nil, err
			}
		}
		if rec.LineSpacingType, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.LineSpacingValue, err = c.u16(); err != nil {
			return nil, err
		}
		hasBorder, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasBorder = hasBorder != 0
		if rec.BorderFillIndex, err = c.i32(); err != nil {
			return nil, err
		}
		offs := []*int32{&rec.BorderOffsetLeft, &rec.BorderOffsetRight, &rec.BorderOffsetTop, &rec.BorderOffsetBottom}
		for _, f := range offs {
			if *f, err = c.i32(); err != nil {
				return nil, err
			}
		}
		hasNum, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasNumbering = hasNum != 0
		if rec.HeadingType, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.HeadingLevel, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.NumberingIndex, err = c.i32(); err != nil {
			return nil, err
		}
		if rec.BulletIndex, err = c.i32(); err != nil {
			return nil, err
		}
		hasTab, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasTabDef = hasTab != 0
		if rec.TabDefIndex, err = c.i32(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeParaShapeList(list []ParaShapeRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		w.u32(rec.Properties1)
		w.u32(rec.Properties2)
		for _, v := range []int32{rec.MarginLeft, rec.MarginRight, rec.IndentFirstLine, rec.SpacingBefore, rec.SpacingAfter} {
			w.i32(v)
		}
		w.u8(rec.LineSpacingType)
		w.u16(rec.LineSpacingValue)
		w.u8(boolByte(rec.HasBorder))
		w.i32(rec.BorderFillIndex)
		for _, v := range []int32{rec.BorderOffsetLeft, rec.BorderOffsetRight, rec.BorderOffsetTop, rec.BorderOffsetBottom} {
			w.i32(v)
		}
		w.u8(boolByte(rec.HasNumbering))
		w.u8(rec.HeadingType)
		w.u8(rec.HeadingLevel)
		w.i32(rec.NumberingIndex)
		w.i32(rec.BulletIndex)
		w.u8(boolByte(rec.HasTabDef))
		w.i32(rec.TabDefIndex)
	}
	return w.buf
}

func boolByte(v bool) uint8 {
	if v {
		return 1
	}
	return 0
}

func decodeStyleList(payload []byte) ([]StyleRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]StyleRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec StyleRecord
		if rec.NameKorean, err = c.utf16String(); err != nil {
			return nil, err
		}
		if rec.NameEnglish, err = c.utf16String(); err != nil {
			return nil, err
		}
		if rec.Kind, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.ParaShapeIndex, err = c.u16(); err != nil {
			return nil, err
		}
		if rec.CharShapeIndex, err = c.u16(); err != nil {
			return nil, err
		}
		if rec.NextStyleIndex, err = c.u16(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeStyleList(list []StyleRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		w.utf16String(rec.NameKorean)
		w.utf16String(rec.NameEnglish)
		w.u8(rec.Kind)
		w.u16(rec.ParaShapeIndex)
		w.u16(rec.CharShapeIndex)
		w.u16(rec.NextStyleIndex)
	}
	return w.buf
}

func decodeBorderEdge(c *cursor) (BorderEdgeRecord, error) {
	line, err := c.u8()
	if err != nil {
		return BorderEdgeRecord{}, err
	}
	width, err := c.i32()
	if err != nil {
		return BorderEdgeRecord{}, err
	}
	color, err := c.u32()
	if err != nil {
		return BorderEdgeRecord{}, err
	}
	return BorderEdgeRecord{Line: line, Width: width, Color: color}, nil
}

func encodeBorderEdge(w *writer, e BorderEdgeRecord) {
	w.u8(e.Line)
	w.i32(e.Width)
	w.u32(e.Color)
}

func decodeBorderFillList(payload []byte) ([]BorderFillRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]BorderFillRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec BorderFillRecord
		for _, e := range []*BorderEdgeRecord{&rec.Left, &rec.Right, &rec.Top, &rec.Bottom} {
			if *e, err = decodeBorderEdge(c); err != nil {
				return nil, err
			}
		}
		hdd, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasDiagonalDown = hdd != 0
		if rec.DiagonalDown, err = decodeBorderEdge(c); err != nil {
			return nil, err
		}
		hdu, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasDiagonalUp = hdu != 0
		if rec.DiagonalUp, err = decodeBorderEdge(c); err != nil {
			return nil, err
		}
		if rec.FillKind, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.FillColor1, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.FillColor2, err = c.u32(); err != nil {
			return nil, err
		}
		if rec.FillPattern, err = c.u8(); err != nil {
			return nil, err
		}
		if rec.FillImageRef, err = c.u16(); err != nil {
			return nil, err
		}
		if rec.FillImageMode, err = c.u8(); err != nil {
			return nil, err
		}
		td, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.ThreeD = td != 0
		sh, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.Shadow = sh != 0
		out = append(out, rec)
	}
	return out, nil
}

func encodeBorderFillList(list []BorderFillRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		for _, e := range []BorderEdgeRecord{rec.Left, rec.Right, rec.Top, rec.Bottom} {
			encodeBorderEdge(w, e)
		}
		w.u8(boolByte(rec.HasDiagonalDown))
		encodeBorderEdge(w, rec.DiagonalDown)
		w.u8(boolByte(rec.HasDiagonalUp))
		encodeBorderEdge(w, rec.DiagonalUp)
		w.u8(rec.FillKind)
		w.u32(rec.FillColor1)
		w.u32(rec.FillColor2)
		w.u8(rec.FillPattern)
		w.u16(rec.FillImageRef)
		w.u8(rec.FillImageMode)
		w.u8(boolByte(rec.ThreeD))
		w.u8(boolByte(rec.Shadow))
	}
	return w.buf
}

func decodeTabDefList(payload []byte) ([]TabDefRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]TabDefRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec TabDefRecord
		stopCount, err := c.u16()
		if err != nil {
			return nil, err
		}
		for s := uint16(0); s < stopCount; s++ {
			pos, err := c.i32()
			if err != nil {
				return nil, err
			}
			typ, err := c.u8()
			if err != nil {
				return nil, err
			}
			lead, err := c.u8()
			if err != nil {
				return nil, err
			}
			rec.Stops = append(rec.Stops, TabStopRecord{Position: pos, Type: typ, Leader: lead})
		}
		if rec.AutoTabInterval, err = c.i32(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeTabDefList(list []TabDefRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		w.u16(uint16(len(rec.Stops)))
		for _, s := range rec.Stops {
			w.i32(s.Position)
			w.u8(s.Type)
			w.u8(s.Leader)
		}
		w.i32(rec.AutoTabInterval)
	}
	return w.buf
}

func decodeNumberingList(payload []byte) ([]NumberingRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]NumberingRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec NumberingRecord
		for lvl := 0; lvl < 10; lvl++ {
			var l NumberingLevelRecord
			if l.Template, err = c.utf16String(); err != nil {
				return nil, err
			}
			if l.Start, err = c.u32(); err != nil {
				return nil, err
			}
			if l.Alignment, err = c.u8(); err != nil {
				return nil, err
			}
			if l.CharShapeIndex, err = c.u16(); err != nil {
				return nil, err
			}
			if l.TextOffset, err = c.i32(); err != nil {
				return nil, err
			}
			if l.NumberWidth, err = c.i32(); err != nil {
				return nil, err
			}
			iw, err := c.u8()
			if err != nil {
				return nil, err
			}
			l.InstanceWidth = iw != 0
			ai, err := c.u8()
			if err != nil {
				return nil, err
			}
			l.AutoIndent = ai != 0
			if l.Format, err = c.u8(); err != nil {
				return nil, err
			}
			rec.Levels[lvl] = l
		}
		if rec.StartNumber, err = c.u32(); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func encodeNumberingList(list []NumberingRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		for _, l := range rec.Levels {
			w.utf16String(l.Template)
			w.u32(l.Start)
			w.u8(l.Alignment)
			w.u16(l.CharShapeIndex)
			w.i32(l.TextOffset)
			w.i32(l.NumberWidth)
			w.u8(boolByte(l.InstanceWidth))
			w.u8(boolByte(l.AutoIndent))
			w.u8(l.Format)
		}
		w.u32(rec.StartNumber)
	}
	return w.buf
}

func decodeBulletList(payload []byte) ([]BulletRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]BulletRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		var rec BulletRecord
		ch, err := c.u32()
		if err != nil {
			return nil, err
		}
		rec.Char = rune(ch)
		has, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.HasCharShape = has != 0
		if rec.CharShapeIndex, err = c.u16(); err != nil {
			return nil, err
		}
		cb, err := c.u8()
		if err != nil {
			return nil, err
		}
		rec.Checkbox = cb != 0
		out = append(out, rec)
	}
	return out, nil
}

func encodeBulletList(list []BulletRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		w.u32(uint32(rec.Char))
		w.u8(boolByte(rec.HasCharShape))
		w.u16(rec.CharShapeIndex)
		w.u8(boolByte(rec.Checkbox))
	}
	return w.buf
}

func decodeBinDataInfoList(payload []byte) ([]BinDataInfoRecord, error) {
	c := newCursor(payload)
	n, err := c.u16()
	if err != nil {
		return nil, err
	}
	out := make([]BinDataInfoRecord, 0, n)
	for i := uint16(0); i < n; i++ {
		alias, err := c.utf16String()
		if err != nil {
			return nil, err
		}
		format, err := c.u8()
		if err != nil {
			return nil, err
		}
		out = append(out, BinDataInfoRecord{Alias: alias, Format: format})
	}
	return out, nil
}

func encodeBinDataInfoList(list []BinDataInfoRecord) []byte {
	w := &writer{}
	w.u16(uint16(len(list)))
	for _, rec := range list {
		w.utf16String(rec.Alias)
		w.u8(rec.Format)
	}
	return w.buf
}

// decodeDocInfo dispatches every top-level DocInfo-stream record by
// tag, skipping anything outside the decoded catalog with a warning.
func decodeDocInfo(roots []*Node, warnings *warn.Channel) (DocInfo, error) {
	var info DocInfo
	for _, root := range roots {
		switch root.Record.TagID {
		case TagFontList:
			list, err := decodeFontList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.Fonts = list
		case TagCharShapeList:
			list, err := decodeCharShapeList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.CharShapes = list
		case TagParaShapeList:
			list, err := decodeParaShapeList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.ParaShapes = list
		case TagStyleList:
			list, err := decodeStyleList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.Styles = list
		case TagBorderFillList:
			list, err := decodeBorderFillList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.BorderFills = list
		case TagTabDefList:
			list, err := decodeTabDefList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.TabDefs = list
		case TagNumberingList:
			list, err := decodeNumberingList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.Numberings = list
		case TagBulletList:
			list, err := decodeBulletList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.Bullets = list
		case TagBinDataInfoList:
			list, err := decodeBinDataInfoList(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.BinDataInfo = list
		case TagDocumentProperties:
			props, err := decodeDocProps(root.Record.Payload)
			if err != nil {
				return info, err
			}
			info.Props = props
		default:
			warnings.UnknownTag(uint32(root.Record.TagID))
		}
	}
	return info, nil
}

func encodeDocInfo(info DocInfo) []*Node {
	mk := func(tag uint16, payload []byte) *Node {
		return &Node{Record: Record{TagID: tag, Level: 0, Payload: payload}}
	}
	return []*Node{
		mk(TagDocumentProperties, encodeDocProps(info.Props)),
		mk(TagFontList, encodeFontList(info.Fonts)),
		mk(TagCharShapeList, encodeCharShapeList(info.CharShapes)),
		mk(TagParaShapeList, encodeParaShapeList(info.ParaShapes)),
		mk(TagStyleList, encodeStyleList(info.Styles)),
		mk(TagBorderFillList, encodeBorderFillList(info.BorderFills)),
		mk(TagNumberingList, encodeNumberingList(info.Numberings)),
		mk(TagBulletList, encodeBulletList(info.Bullets)),
		mk(TagTabDefList, encodeTabDefList(info.TabDefs)),
		mk(TagBinDataInfoList, encodeBinDataInfoList(info.BinDataInfo)),
	}
}
