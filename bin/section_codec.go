package bin

import "github.com/tinywasm/hwpconv/warn"

func decodeSectionDef(payload []byte) (SectionDefRecord, error) {
	c := newCursor(payload)
	var rec SectionDefRecord
	var err error
	if rec.Properties, err = c.u32(); err != nil {
		return rec, err
	}
	if rec.GridUnit, err = c.i32(); err != nil {
		return rec, err
	}
	if rec.Language, err = c.u16(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeSectionDef(rec SectionDefRecord) []byte {
	w := &writer{}
	w.u32(rec.Properties)
	w.i32(rec.GridUnit)
	w.u16(rec.Language)
	return w.buf
}

func decodePageDef(payload []byte) (PageDefRecord, error) {
	c := newCursor(payload)
	var rec PageDefRecord
	fields := []*int32{
		&rec.Width, &rec.Height,
		&rec.MarginLeft, &rec.MarginRight, &rec.MarginTop, &rec.MarginBottom,
		&rec.MarginHeader, &rec.MarginFooter, &rec.MarginGutter,
	}
	var err error
	for _, f := range fields {
		if *f, err = c.i32(); err != nil {
			return rec, err
		}
	}
	if rec.Orientation, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.Gutter, err = c.u8(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodePageDef(rec PageDefRecord) []byte {
	w := &writer{}
	for _, v := range []int32{
		rec.Width, rec.Height,
		rec.MarginLeft, rec.MarginRight, rec.MarginTop, rec.MarginBottom,
		rec.MarginHeader, rec.MarginFooter, rec.MarginGutter,
	} {
		w.i32(v)
	}
	w.u8(rec.Orientation)
	w.u8(rec.Gutter)
	return w.buf
}

func decodeNoteShape(c *cursor) (NoteShapeRecord, error) {
	var rec NoteShapeRecord
	var err error
	if rec.NumberFormat, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.StartNumber, err = c.u32(); err != nil {
		return rec, err
	}
	if rec.Numbering, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.DividerLength, err = c.i32(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeNoteShape(w *writer, rec NoteShapeRecord) {
	w.u8(rec.NumberFormat)
	w.u32(rec.StartNumber)
	w.u8(rec.Numbering)
	w.i32(rec.DividerLength)
}

func decodeFootnoteShape(payload []byte) (NoteShapeRecord, NoteShapeRecord, error) {
	c := newCursor(payload)
	fn, err := decodeNoteShape(c)
	if err != nil {
		return fn, NoteShapeRecord{}, err
	}
	en, err := decodeNoteShape(c)
	return fn, en, err
}

func encodeFootnoteShape(fn, en NoteShapeRecord) []byte {
	w := &writer{}
	encodeNoteShape(w, fn)
	encodeNoteShape(w, en)
	return w.buf
}

func decodePageBorderFill(payload []byte) (PageBorderFillRecord, error) {
	c := newCursor(payload)
	var rec PageBorderFillRecord
	var err error
	if rec.Properties, err = c.u32(); err != nil {
		return rec, err
	}
	if rec.BorderFillIndex, err = c.i32(); err != nil {
		return rec, err
	}
	if rec.PageType, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.FillArea, err = c.u8(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodePageBorderFill(rec PageBorderFillRecord) []byte {
	w := &writer{}
	w.u32(rec.Properties)
	w.i32(rec.BorderFillIndex)
	w.u8(rec.PageType)
	w.u8(rec.FillArea)
	return w.buf
}

func decodeColumnDef(payload []byte) (ColumnDefRecord, error) {
	c := newCursor(payload)
	var rec ColumnDefRecord
	var err error
	if rec.Properties1, err = c.u32(); err != nil {
		return rec, err
	}
	count := ColumnDefProps1FromUint32(rec.Properties1).Count()
	sameWidth := ColumnDefProps1FromUint32(rec.Properties1).SameWidth()
	if !sameWidth {
		for i := uint16(0); i < count; i++ {
			v, err := c.i32()
			if err != nil {
				return rec, err
			}
			rec.Widths = append(rec.Widths, v)
		}
	}
	if rec.Spacing, err = c.i32(); err != nil {
		return rec, err
	}
	if rec.Separator, err = c.u8(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeColumnDef(rec ColumnDefRecord) []byte {
	w := &writer{}
	w.u32(rec.Properties1)
	if !ColumnDefProps1FromUint32(rec.Properties1).SameWidth() {
		for _, v := range rec.Widths {
			w.i32(v)
		}
	}
	w.i32(rec.Spacing)
	w.u8(rec.Separator)
	return w.buf
}

func decodeParaHeader(payload []byte) (ParaHeaderRecord, error) {
	c := newCursor(payload)
	var rec ParaHeaderRecord
	var err error
	if rec.CharCount, err = c.u32(); err != nil {
		return rec, err
	}
	if rec.ParaShapeIndex, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.StyleIndex, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.BreakType, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.InstanceID, err = c.u32(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeParaHeader(rec ParaHeaderRecord) []byte {
	w := &writer{}
	w.u32(rec.CharCount)
	w.u16(rec.ParaShapeIndex)
	w.u16(rec.StyleIndex)
	w.u8(rec.BreakType)
	w.u32(rec.InstanceID)
	return w.buf
}

// decodeParaText reads UTF-16LE code units up to (but excluding) the
// terminating 0x000D code unit. Extended characters (one code unit per
// control) pass through unresolved; the caller resolves them against
// the control list.
func decodeParaText(payload []byte) ([]uint16, error) {
	c := newCursor(payload)
	var units []uint16
	for c.remaining() >= 2 {
		u, err := c.u16()
		if err != nil {
			return nil, err
		}
		if u == 0x000D {
			break
		}
		units = append(units, u)
	}
	return units, nil
}

func encodeParaText(units []uint16) []byte {
	w := &writer{}
	for _, u := range units {
		w.u16(u)
	}
	w.u16(0x000D)
	return w.buf
}

// decodeCharShapeRefs reads a declared count followed by that many
// (position, char_shape_id) pairs. A mismatch between the declared
// count and the number of pairs actually present is a hard error.
func decodeCharShapeRefs(payload []byte) ([]CharShapeRefRecord, error) {
	c := newCursor(payload)
	declared, err := c.u32()
	if err != nil {
		return nil, err
	}
	out := make([]CharShapeRefRecord, 0, declared)
	for c.remaining() >= 8 {
		pos, err := c.u32()
		if err != nil {
			return nil, err
		}
		idx, err := c.u32()
		if err != nil {
			return nil, err
		}
		out = append(out, CharShapeRefRecord{Position: pos, CharShapeIndex: idx})
	}
	if uint32(len(out)) != declared {
		return nil, warn.InvariantViolation("char-shape-ref count does not match declared count")
	}
	return out, nil
}

func encodeCharShapeRefs(refs []CharShapeRefRecord) []byte {
	w := &writer{}
	w.u32(uint32(len(refs)))
	for _, r := range refs {
		w.u32(r.Position)
		w.u32(r.CharShapeIndex)
	}
	return w.buf
}

func decodeRangeTags(payload []byte) ([]RangeTagRecord, error) {
	c := newCursor(payload)
	var out []RangeTagRecord
	for c.remaining() >= 12 {
		start, err := c.u32()
		if err != nil {
			return nil, err
		}
		end, err := c.u32()
		if err != nil {
			return nil, err
		}
		tag, err := c.u32()
		if err != nil {
			return nil, err
		}
		out = append(out, RangeTagRecord{Start: start, End: end, Tag: tag})
	}
	return out, nil
}

func encodeRangeTags(tags []RangeTagRecord) []byte {
	w := &writer{}
	for _, t := range tags {
		w.u32(t.Start)
		w.u32(t.End)
		w.u32(t.Tag)
	}
	return w.buf
}

func decodeObjectCommon(c *cursor) (ObjectCommonRecord, error) {
	var rec ObjectCommonRecord
	var err error
	if rec.Properties, err = c.u32(); err != nil {
		return rec, err
	}
	fields := []*int32{&rec.OffsetX, &rec.OffsetY, &rec.Width, &rec.Height, &rec.ZOrder,
		&rec.MarginLeft, &rec.MarginRight, &rec.MarginTop, &rec.MarginBottom}
	for _, f := range fields {
		if *f, err = c.i32(); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func encodeObjectCommon(w *writer, rec ObjectCommonRecord) {
	w.u32(rec.Properties)
	for _, v := range []int32{rec.OffsetX, rec.OffsetY, rec.Width, rec.Height, rec.ZOrder,
		rec.MarginLeft, rec.MarginRight, rec.MarginTop, rec.MarginBottom} {
		w.i32(v)
	}
}

func decodeHyperlinkPayload(payload []byte) (HyperlinkRecord, error) {
	c := newCursor(payload)
	target, err := c.utf16String()
	if err != nil {
		return HyperlinkRecord{}, err
	}
	display, err := c.utf16String()
	if err != nil {
		return HyperlinkRecord{}, err
	}
	return HyperlinkRecord{Target: target, Display: display}, nil
}

func encodeHyperlinkPayload(rec HyperlinkRecord) []byte {
	w := &writer{}
	w.utf16String(rec.Target)
	w.utf16String(rec.Display)
	return w.buf
}

// decodeFieldPayload decodes the remainder of a field control's payload
// (the four-byte tag itself is already stripped by the caller and
// supplied separately). Param is empty for tags that carry no payload
// beyond their tag (e.g. %dat, %pn).
func decodeFieldPayload(tag FieldTag, rest []byte) (FieldRecord, error) {
	rec := FieldRecord{Tag: tag}
	if len(rest) == 0 {
		return rec, nil
	}
	c := newCursor(rest)
	param, err := c.utf16String()
	if err != nil {
		return rec, err
	}
	rec.Param = param
	return rec, nil
}

func encodeFieldPayload(rec FieldRecord) []byte {
	w := &writer{}
	if rec.Param != "" {
		w.utf16String(rec.Param)
	}
	return w.buf
}

func decodeAutoNumberPayload(payload []byte) (AutoNumberRecord, error) {
	c := newCursor(payload)
	var rec AutoNumberRecord
	var err error
	if rec.Kind, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.Format, err = c.u8(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeAutoNumberPayload(rec AutoNumberRecord) []byte {
	w := &writer{}
	w.u8(rec.Kind)
	w.u8(rec.Format)
	return w.buf
}

func decodeNewNumberPayload(payload []byte) (NewNumberRecord, error) {
	c := newCursor(payload)
	var rec NewNumberRecord
	var err error
	if rec.Kind, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.Value, err = c.u32(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeNewNumberPayload(rec NewNumberRecord) []byte {
	w := &writer{}
	w.u8(rec.Kind)
	w.u32(rec.Value)
	return w.buf
}

func decodePageNumberPayload(payload []byte) (PageNumberRecord, error) {
	c := newCursor(payload)
	var rec PageNumberRecord
	var err error
	if rec.Position, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.Format, err = c.u8(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodePageNumberPayload(rec PageNumberRecord) []byte {
	w := &writer{}
	w.u8(rec.Position)
	w.u8(rec.Format)
	return w.buf
}

func decodePicturePayload(payload []byte) (PictureRecord, error) {
	c := newCursor(payload)
	common, err := decodeObjectCommon(c)
	if err != nil {
		return PictureRecord{}, err
	}
	var rec PictureRecord
	rec.Common = common
	if rec.BinDataRef, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.Effect, err = c.u8(); err != nil {
		return rec, err
	}
	if rec.Fill, err = c.u8(); err != nil {
		return rec, err
	}
	fields := []*int32{&rec.CropLeft, &rec.CropRight, &rec.CropTop, &rec.CropBottom}
	for _, f := range fields {
		if *f, err = c.i32(); err != nil {
			return rec, err
		}
	}
	return rec, nil
}

func encodePicturePayload(rec PictureRecord) []byte {
	w := &writer{}
	encodeObjectCommon(w, rec.Common)
	w.u16(rec.BinDataRef)
	w.u8(rec.Effect)
	w.u8(rec.Fill)
	for _, v := range []int32{rec.CropLeft, rec.CropRight, rec.CropTop, rec.CropBottom} {
		w.i32(v)
	}
	return w.buf
}

func decodeTablePayload(payload []byte) (TableRecord, error) {
	c := newCursor(payload)
	common, err := decodeObjectCommon(c)
	if err != nil {
		return TableRecord{}, err
	}
	var rec TableRecord
	rec.Common = common
	if rec.Rows, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.Columns, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.BorderFillIndex, err = c.i32(); err != nil {
		return rec, err
	}
	for i := uint16(0); i < rec.Rows; i++ {
		v, err := c.i32()
		if err != nil {
			return rec, err
		}
		rec.RowHeights = append(rec.RowHeights, v)
	}
	zoneCount, err := c.u16()
	if err != nil {
		return rec, err
	}
	for i := uint16(0); i < zoneCount; i++ {
		sr, _ := c.u16()
		sc, _ := c.u16()
		er, _ := c.u16()
		ec, _ := c.u16()
		bf, err := c.i32()
		if err != nil {
			return rec, err
		}
		rec.ZoneStartRow = append(rec.ZoneStartRow, sr)
		rec.ZoneStartCol = append(rec.ZoneStartCol, sc)
		rec.ZoneEndRow = append(rec.ZoneEndRow, er)
		rec.ZoneEndCol = append(rec.ZoneEndCol, ec)
		rec.ZoneBorderFillIndex = append(rec.ZoneBorderFillIndex, bf)
	}
	// Cell headers/paragraphs are decoded by the caller from the
	// following TagTableCell list-header siblings in the record tree,
	// since each cell carries its own nested paragraph list.
	return rec, nil
}

func encodeTablePayload(rec TableRecord) []byte {
	w := &writer{}
	encodeObjectCommon(w, rec.Common)
	w.u16(rec.Rows)
	w.u16(rec.Columns)
	w.i32(rec.BorderFillIndex)
	for _, h := range rec.RowHeights {
		w.i32(h)
	}
	w.u16(uint16(len(rec.ZoneStartRow)))
	for i := range rec.ZoneStartRow {
		w.u16(rec.ZoneStartRow[i])
		w.u16(rec.ZoneStartCol[i])
		w.u16(rec.ZoneEndRow[i])
		w.u16(rec.ZoneEndCol[i])
		w.i32(rec.ZoneBorderFillIndex[i])
	}
	return w.buf
}

func decodeTableCellHeader(payload []byte) (TableCellRecord, error) {
	c := newCursor(payload)
	var rec TableCellRecord
	var err error
	if rec.Row, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.Column, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.RowSpan, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.ColSpan, err = c.u16(); err != nil {
		return rec, err
	}
	if rec.BorderFillIndex, err = c.i32(); err != nil {
		return rec, err
	}
	if rec.Width, err = c.i32(); err != nil {
		return rec, err
	}
	if rec.Height, err = c.i32(); err != nil {
		return rec, err
	}
	return rec, nil
}

func encodeTableCellHeader(rec TableCellRecord) []byte {
	w := &writer{}
	w.u16(rec.Row)
	w.u16(rec.Column)
	w.u16(rec.RowSpan)
	w.u16(rec.ColSpan)
	w.i32(rec.BorderFillIndex)
	w.i32(rec.Width)
	w.i32(rec.Height)
	return w.buf
}
