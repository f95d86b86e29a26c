package bin

import "github.com/bits-and-blooms/bitset"

// PropsBuilder assembles a bit-packed record property word through a
// typed API rather than hand-rolled shift/mask arithmetic. Writers
// construct property words through it; readers deconstruct them through
// the matching accessors. Backed by bitset.BitSet.
type PropsBuilder struct {
	bits *bitset.BitSet
}

// NewPropsBuilder starts an empty (all-zero) builder of the given bit width.
func NewPropsBuilder(width uint) *PropsBuilder {
	return &PropsBuilder{bits: bitset.New(width)}
}

// PropsFromUint32 loads an existing packed value for decoding.
func PropsFromUint32(v uint32) *PropsBuilder {
	b := bitset.New(32)
	for i := uint(0); i < 32; i++ {
		if v&(1<<i) != 0 {
			b.Set(i)
		}
	}
	return &PropsBuilder{bits: b}
}

// SetBit sets or clears a single bit.
func (p *PropsBuilder) SetBit(pos uint, v bool) *PropsBuilder {
	if v {
		p.bits.Set(pos)
	} else {
		p.bits.Clear(pos)
	}
	return p
}

// Bit reads a single bit.
func (p *PropsBuilder) Bit(pos uint) bool {
	return p.bits.Test(pos)
}

// SetField writes width bits of v starting at lo, inclusive.
func (p *PropsBuilder) SetField(lo, width uint, v uint32) *PropsBuilder {
	for i := uint(0); i < width; i++ {
		p.bits.SetTo(lo+i, (v>>i)&1 != 0)
	}
	return p
}

// Field reads width bits starting at lo as an unsigned value.
func (p *PropsBuilder) Field(lo, width uint) uint32 {
	var v uint32
	for i := uint(0); i < width; i++ {
		if p.bits.Test(lo + i) {
			v |= 1 << i
		}
	}
	return v
}

// Uint32 packs the builder into the wire's little-endian 32-bit field.
func (p *PropsBuilder) Uint32() uint32 {
	var v uint32
	for i := uint(0); i < 32; i++ {
		if p.bits.Test(i) {
			v |= 1 << i
		}
	}
	return v
}

// ParaShapeProps1 is the typed view over the paragraph shape's first
// property word: alignment in bits 2-4; snap-to-grid bit 8;
// widow/orphan bit 16; keep-with-next bit 17; keep-lines bit 18;
// page-break-before bit 19; auto-line-height bit 22; border-connect
// bit 28; ignore-margin bit 29.
type ParaShapeProps1 struct{ p *PropsBuilder }

func NewParaShapeProps1() ParaShapeProps1                { return ParaShapeProps1{NewPropsBuilder(32)} }
func ParaShapeProps1FromUint32(v uint32) ParaShapeProps1 { return ParaShapeProps1{PropsFromUint32(v)} }
func (f ParaShapeProps1) Uint32() uint32                 { return f.p.Uint32() }

func (f ParaShapeProps1) SetAlignment(v uint8) ParaShapeProps1 {
	f.p.SetField(2, 3, uint32(v))
	return f
}
func (f ParaShapeProps1) Alignment() uint8 { return uint8(f.p.Field(2, 3)) }

func (f ParaShapeProps1) SetSnapToGrid(v bool) ParaShapeProps1 { f.p.SetBit(8, v); return f }
func (f ParaShapeProps1) SnapToGrid() bool                     { return f.p.Bit(8) }

func (f ParaShapeProps1) SetWidowOrphan(v bool) ParaShapeProps1 { f.p.SetBit(16, v); return f }
func (f ParaShapeProps1) WidowOrphan() bool                     { return f.p.Bit(16) }

func (f ParaShapeProps1) SetKeepWithNext(v bool) ParaShapeProps1 { f.p.SetBit(17, v); return f }
func (f ParaShapeProps1) KeepWithNext() bool                     { return f.p.Bit(17) }

func (f ParaShapeProps1) SetKeepLines(v bool) ParaShapeProps1 { f.p.SetBit(18, v); return f }
func (f ParaShapeProps1) KeepLines() bool                     { return f.p.Bit(18) }

func (f ParaShapeProps1) SetPageBreakBefore(v bool) ParaShapeProps1 { f.p.SetBit(19, v); return f }
func (f ParaShapeProps1) PageBreakBefore() bool                     { return f.p.Bit(19) }

func (f ParaShapeProps1) SetAutoLineHeight(v bool) ParaShapeProps1 { f.p.SetBit(22, v); return f }
func (f ParaShapeProps1) AutoLineHeight() bool                     { return f.p.Bit(22) }

func (f ParaShapeProps1) SetBorderConnect(v bool) ParaShapeProps1 { f.p.SetBit(28, v); return f }
func (f ParaShapeProps1) BorderConnect() bool                     { return f.p.Bit(28) }

func (f ParaShapeProps1) SetIgnoreMargin(v bool) ParaShapeProps1 { f.p.SetBit(29, v); return f }
func (f ParaShapeProps1) IgnoreMargin() bool                     { return f.p.Bit(29) }

// ParaShapeProps2 is the typed view over the paragraph shape's second
// property word: the auto-spacing flags.
type ParaShapeProps2 struct{ p *PropsBuilder }

func NewParaShapeProps2() ParaShapeProps2                { return ParaShapeProps2{NewPropsBuilder(32)} }
func ParaShapeProps2FromUint32(v uint32) ParaShapeProps2 { return ParaShapeProps2{PropsFromUint32(v)} }
func (f ParaShapeProps2) Uint32() uint32                 { return f.p.Uint32() }

func (f ParaShapeProps2) SetAutoSpaceKorean(v bool) ParaShapeProps2 { f.p.SetBit(0, v); return f }
func (f ParaShapeProps2) AutoSpaceKorean() bool                     { return f.p.Bit(0) }

func (f ParaShapeProps2) SetAutoSpaceOther(v bool) ParaShapeProps2 { f.p.SetBit(1, v); return f }
func (f ParaShapeProps2) AutoSpaceOther() bool                     { return f.p.Bit(1) }

// CharShapeProps is the typed view over the char shape's property word:
// italic bit 0; bold bit 1; underline shape bits 2-4; outline bits 5-7;
// shadow bits 8-10; emboss bit 11; engrave bit 12; superscript bit 13;
// subscript bit 14; strikethrough bits 18-20; emphasis bits 21-23;
// kerning bit 24.
type CharShapeProps struct{ p *PropsBuilder }

func NewCharShapeProps() CharShapeProps                { return CharShapeProps{NewPropsBuilder(32)} }
func CharShapePropsFromUint32(v uint32) CharShapeProps { return CharShapeProps{PropsFromUint32(v)} }
func (f CharShapeProps) Uint32() uint32                { return f.p.Uint32() }

func (f CharShapeProps) SetItalic(v bool) CharShapeProps { f.p.SetBit(0, v); return f }
func (f CharShapeProps) Italic() bool                    { return f.p.Bit(0) }

func (f CharShapeProps) SetBold(v bool) CharShapeProps { f.p.SetBit(1, v); return f }
func (f CharShapeProps) Bold() bool                    { return f.p.Bit(1) }

func (f CharShapeProps) SetUnderlineShape(v uint8) CharShapeProps {
	f.p.SetField(2, 3, uint32(v))
	return f
}
func (f CharShapeProps) UnderlineShape() uint8 { return uint8(f.p.Field(2, 3)) }

func (f CharShapeProps) SetOutline(v uint8) CharShapeProps { f.p.SetField(5, 3, uint32(v)); return f }
func (f CharShapeProps) Outline() uint8                    { return uint8(f.p.Field(5, 3)) }

func (f CharShapeProps) SetShadow(v uint8) CharShapeProps { f.p.SetField(8, 3, uint32(v)); return f }
func (f CharShapeProps) Shadow() uint8                    { return uint8(f.p.Field(8, 3)) }

func (f CharShapeProps) SetEmboss(v bool) CharShapeProps { f.p.SetBit(11, v); return f }
func (f CharShapeProps) Emboss() bool                    { return f.p.Bit(11) }

func (f CharShapeProps) SetEngrave(v bool) CharShapeProps { f.p.SetBit(12, v); return f }
func (f CharShapeProps) Engrave() bool                    { return f.p.Bit(12) }

func (f CharShapeProps) SetSuperscript(v bool) CharShapeProps { f.p.SetBit(13, v); return f }
func (f CharShapeProps) Superscript() bool                    { return f.p.Bit(13) }

func (f CharShapeProps) SetSubscript(v bool) CharShapeProps { f.p.SetBit(14, v); return f }
func (f CharShapeProps) Subscript() bool                    { return f.p.Bit(14) }

func (f CharShapeProps) SetStrikethrough(v uint8) CharShapeProps {
	f.p.SetField(18, 3, uint32(v))
	return f
}
func (f CharShapeProps) Strikethrough() uint8 { return uint8(f.p.Field(18, 3)) }

func (f CharShapeProps) SetEmphasis(v uint8) CharShapeProps { f.p.SetField(21, 3, uint32(v)); return f }
func (f CharShapeProps) Emphasis() uint8                    { return uint8(f.p.Field(21, 3)) }

func (f CharShapeProps) SetKerning(v bool) CharShapeProps { f.p.SetBit(24, v); return f }
func (f CharShapeProps) Kerning() bool                    { return f.p.Bit(24) }

// ObjectCommonProps is the typed view over the anchored-object
// property word: treat-as-char bit 0; vertical-rel bits 3-4;
// horizontal-rel bits 8-9; allow-overlap bit 14; wrap-type bits 21-23;
// wrap-side bits 24-25.
type ObjectCommonProps struct{ p *PropsBuilder }

func NewObjectCommonProps() ObjectCommonProps { return ObjectCommonProps{NewPropsBuilder(32)} }
func ObjectCommonPropsFromUint32(v uint32) ObjectCommonProps {
	return ObjectCommonProps{PropsFromUint32(v)}
}
func (f ObjectCommonProps) Uint32() uint32 { return f.p.Uint32() }

func (f ObjectCommonProps) SetTreatAsChar(v bool) ObjectCommonProps { f.p.SetBit(0, v); return f }
func (f ObjectCommonProps) TreatAsChar() bool                       { return f.p.Bit(0) }

func (f ObjectCommonProps) SetVerticalRel(v uint8) ObjectCommonProps {
	f.p.SetField(3, 2, uint32(v))
	return f
}
func (f ObjectCommonProps) VerticalRel() uint8 { return uint8(f.p.Field(3, 2)) }

func (f ObjectCommonProps) SetHorizontalRel(v uint8) ObjectCommonProps {
	f.p.SetField(8, 2, uint32(v))
	return f
}
func (f ObjectCommonProps) HorizontalRel() uint8 { return uint8(f.p.Field(8, 2)) }

func (f ObjectCommonProps) SetAllowOverlap(v bool) ObjectCommonProps { f.p.SetBit(14, v); return f }
func (f ObjectCommonProps) AllowOverlap() bool                       { return f.p.Bit(14) }

func (f ObjectCommonProps) SetWrapType(v uint8) ObjectCommonProps {
	f.p.SetField(21, 3, uint32(v))
	return f
}
func (f ObjectCommonProps) WrapType() uint8 { return uint8(f.p.Field(21, 3)) }

func (f ObjectCommonProps) SetWrapSide(v uint8) ObjectCommonProps {
	f.p.SetField(24, 2, uint32(v))
	return f
}
func (f ObjectCommonProps) WrapSide() uint8 { return uint8(f.p.Field(24, 2)) }

// SectionDefProps is the typed view over the section definition's
// property word: visibility flags in bits 0-5, then grid and
// page-parity fields.
type SectionDefProps struct{ p *PropsBuilder }

func NewSectionDefProps() SectionDefProps                { return SectionDefProps{NewPropsBuilder(32)} }
func SectionDefPropsFromUint32(v uint32) SectionDefProps { return SectionDefProps{PropsFromUint32(v)} }
func (f SectionDefProps) Uint32() uint32                 { return f.p.Uint32() }

func (f SectionDefProps) SetVisibilityFlags(v uint8) SectionDefProps {
	f.p.SetField(0, 6, uint32(v))
	return f
}
func (f SectionDefProps) VisibilityFlags() uint8 { return uint8(f.p.Field(0, 6)) }

func (f SectionDefProps) SetGridVisible(v bool) SectionDefProps { f.p.SetBit(6, v); return f }
func (f SectionDefProps) GridVisible() bool                     { return f.p.Bit(6) }

func (f SectionDefProps) SetGridViewLine(v bool) SectionDefProps { f.p.SetBit(7, v); return f }
func (f SectionDefProps) GridViewLine() bool                     { return f.p.Bit(7) }

func (f SectionDefProps) SetStartsOn(v uint8) SectionDefProps {
	f.p.SetField(8, 2, uint32(v))
	return f
}
func (f SectionDefProps) StartsOn() uint8 { return uint8(f.p.Field(8, 2)) }

func (f SectionDefProps) SetFootnotePlacement(v uint8) SectionDefProps {
	f.p.SetField(10, 2, uint32(v))
	return f
}
func (f SectionDefProps) FootnotePlacement() uint8 { return uint8(f.p.Field(10, 2)) }

func (f SectionDefProps) SetEndnotePlacement(v uint8) SectionDefProps {
	f.p.SetBit(12, v != 0)
	return f
}
func (f SectionDefProps) EndnotePlacement() uint8 {
	if f.p.Bit(12) {
		return 1
	}
	return 0
}

// ColumnDefProps1 is the typed view over the column definition's first
// property word: count (8 bits), direction (2 bits), same-width flag
// (1 bit), packed low-to-high.
type ColumnDefProps1 struct{ p *PropsBuilder }

func NewColumnDefProps1() ColumnDefProps1                { return ColumnDefProps1{NewPropsBuilder(32)} }
func ColumnDefProps1FromUint32(v uint32) ColumnDefProps1 { return ColumnDefProps1{PropsFromUint32(v)} }
func (f ColumnDefProps1) Uint32() uint32                 { return f.p.Uint32() }

func (f ColumnDefProps1) SetCount(v uint16) ColumnDefProps1 { f.p.SetField(0, 8, uint32(v)); return f }
func (f ColumnDefProps1) Count() uint16                     { return uint16(f.p.Field(0, 8)) }

func (f ColumnDefProps1) SetDirection(v uint8) ColumnDefProps1 {
	f.p.SetField(8, 2, uint32(v))
	return f
}
func (f ColumnDefProps1) Direction() uint8 { return uint8(f.p.Field(8, 2)) }

func (f ColumnDefProps1) SetSameWidth(v bool) ColumnDefProps1 { f.p.SetBit(10, v); return f }
func (f ColumnDefProps1) SameWidth() bool                     { return f.p.Bit(10) }

// PageBorderFillProps is the typed view over the page-border-fill
// property word: position bit 0; header/footer-inside bits 1-2;
// fill-behind bit 3.
type PageBorderFillProps struct{ p *PropsBuilder }

func NewPageBorderFillProps() PageBorderFillProps { return PageBorderFillProps{NewPropsBuilder(32)} }
func PageBorderFillPropsFromUint32(v uint32) PageBorderFillProps {
	return PageBorderFillProps{PropsFromUint32(v)}
}
func (f PageBorderFillProps) Uint32() uint32 { return f.p.Uint32() }

func (f PageBorderFillProps) SetPosition(v bool) PageBorderFillProps { f.p.SetBit(0, v); return f }
func (f PageBorderFillProps) Position() bool                         { return f.p.Bit(0) }

func (f PageBorderFillProps) SetHeaderFooterInside(v uint8) PageBorderFillProps {
	f.p.SetField(1, 2, uint32(v))
	return f
}
func (f PageBorderFillProps) HeaderFooterInside() uint8 { return uint8(f.p.Field(1, 2)) }

func (f PageBorderFillProps) SetFillBehind(v bool) PageBorderFillProps { f.p.SetBit(3, v); return f }
func (f PageBorderFillProps) FillBehind() bool                         { return f.p.Bit(3) }
