package binconv

import (
	"github.com/tinywasm/hwpconv/bin"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
)

// The functions below map the wire's raw bit-packed field values onto
// ir's named enums and back. The ir enums share this wire's native
// ordinal range, so the common case is a direct cast guarded by a
// range check; the guard exists because a malformed document can carry
// an out-of-range value, which falls back to the default variant with
// a warning.

func clampToBIN[E ~uint8](v E, max E, warnings *warn.Channel, feature string) uint8 {
	if v > max {
		warnings.FallbackApplied(feature + " value out of range, using default")
		return 0
	}
	return uint8(v)
}

func alignmentFromBIN(v uint8, warnings *warn.Channel) ir.Alignment {
	if v > uint8(ir.AlignDivide) {
		warnings.FallbackApplied("alignment out of range, using left")
		return ir.AlignLeft
	}
	return ir.Alignment(v)
}
func alignmentToBIN(v ir.Alignment, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.AlignDivide, warnings, "alignment")
}

func lineTypeFromBIN(v uint8, warnings *warn.Channel) ir.LineType {
	if v > uint8(ir.LineCircle) {
		warnings.FallbackApplied("line type out of range, using none")
		return ir.LineNone
	}
	return ir.LineType(v)
}
func lineTypeToBIN(v ir.LineType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.LineCircle, warnings, "line type")
}

func underlineTypeFromBIN(v uint8, warnings *warn.Channel) ir.UnderlineType {
	if v > uint8(ir.UnderlineBoth) {
		warnings.FallbackApplied("underline type out of range, using none")
		return ir.UnderlineNone
	}
	return ir.UnderlineType(v)
}
func underlineTypeToBIN(v ir.UnderlineType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.UnderlineBoth, warnings, "underline type")
}

func strikethroughTypeFromBIN(v uint8, warnings *warn.Channel) ir.StrikethroughType {
	if v > uint8(ir.StrikethroughDouble) {
		warnings.FallbackApplied("strikethrough type out of range, using none")
		return ir.StrikethroughNone
	}
	return ir.StrikethroughType(v)
}
func strikethroughTypeToBIN(v ir.StrikethroughType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.StrikethroughDouble, warnings, "strikethrough type")
}

func emphasisTypeFromBIN(v uint8, warnings *warn.Channel) ir.EmphasisType {
	if v > uint8(ir.EmphasisCircleAbove) {
		warnings.FallbackApplied("emphasis type out of range, using none")
		return ir.EmphasisNone
	}
	return ir.EmphasisType(v)
}
func emphasisTypeToBIN(v ir.EmphasisType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.EmphasisCircleAbove, warnings, "emphasis type")
}

func outlineTypeFromBIN(v uint8, warnings *warn.Channel) ir.OutlineType {
	if v > uint8(ir.OutlineThick) {
		warnings.FallbackApplied("outline type out of range, using none")
		return ir.OutlineNone
	}
	return ir.OutlineType(v)
}
func outlineTypeToBIN(v ir.OutlineType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.OutlineThick, warnings, "outline type")
}

// shadowTypeFromBIN recovers a shadow type from the wire's
// discrete/continuous axis. The wire has no directional axis; the
// reader always resynthesizes the bottom-right variant, selecting
// Discrete vs Continuous from the shape byte, which the writer in turn
// reduces every directional variant down to.
func shadowTypeFromBIN(shape uint8, warnings *warn.Channel) ir.ShadowType {
	switch shape {
	case 0:
		return ir.ShadowNone
	case 1:
		return ir.ShadowBottomRightContinuous
	default:
		if shape != 2 {
			warnings.FallbackApplied("shadow shape out of range, using discrete")
		}
		return ir.ShadowBottomRightDiscrete
	}
}
func shadowTypeToBIN(v ir.ShadowType) uint8 {
	if v == ir.ShadowNone {
		return 0
	}
	if v.IsDiscrete() {
		return 2
	}
	return 1
}

// clampShadowOffset enforces the wire's i8 percent range of
// [-100, 100].
func clampShadowOffset(v int8) int8 {
	if v < -100 {
		return -100
	}
	if v > 100 {
		return 100
	}
	return v
}

// numberFormatFromBIN recovers a NumberFormat; Ganji is native to this
// wire so this direction never falls back.
func numberFormatFromBIN(v uint8, warnings *warn.Channel) ir.NumberFormat {
	if v > uint8(ir.NumberGanji) {
		warnings.FallbackApplied("number format out of range, using digit")
		return ir.NumberDigit
	}
	return ir.NumberFormat(v)
}

// numberFormatToBIN is the inverse; the wire supports the full
// canonical range (Ganji included), unlike the XML emit direction.
func numberFormatToBIN(v ir.NumberFormat, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.NumberGanji, warnings, "number format")
}

func tabTypeFromBIN(v uint8, warnings *warn.Channel) ir.TabType {
	if v > uint8(ir.TabDecimal) {
		warnings.FallbackApplied("tab type out of range, using left")
		return ir.TabLeft
	}
	return ir.TabType(v)
}
func tabTypeToBIN(v ir.TabType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.TabDecimal, warnings, "tab type")
}

func tabLeaderFromBIN(v uint8, warnings *warn.Channel) ir.TabLeader {
	if v > uint8(ir.TabLeaderDoubleLine) {
		warnings.FallbackApplied("tab leader out of range, using none")
		return ir.TabLeaderNone
	}
	return ir.TabLeader(v)
}
func tabLeaderToBIN(v ir.TabLeader, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.TabLeaderDoubleLine, warnings, "tab leader")
}

func headingTypeFromBIN(v uint8, warnings *warn.Channel) ir.HeadingType {
	if v > uint8(ir.HeadingBullet) {
		warnings.FallbackApplied("heading type out of range, using none")
		return ir.HeadingNone
	}
	return ir.HeadingType(v)
}
func headingTypeToBIN(v ir.HeadingType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.HeadingBullet, warnings, "heading type")
}

func orientationFromBIN(v uint8, warnings *warn.Channel) ir.PageOrientation {
	if v > uint8(ir.PageNarrow) {
		warnings.FallbackApplied("page orientation out of range, using wide")
		return ir.PageWide
	}
	return ir.PageOrientation(v)
}
func orientationToBIN(v ir.PageOrientation, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.PageNarrow, warnings, "page orientation")
}

func gutterFromBIN(v uint8, warnings *warn.Channel) ir.GutterPosition {
	if v > uint8(ir.GutterTopBottom) {
		warnings.FallbackApplied("gutter position out of range, using left-only")
		return ir.GutterLeftOnly
	}
	return ir.GutterPosition(v)
}
func gutterToBIN(v ir.GutterPosition, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.GutterTopBottom, warnings, "gutter position")
}

func pageStartsOnFromBIN(v uint8, warnings *warn.Channel) ir.PageStartsOn {
	if v > uint8(ir.PageStartsOdd) {
		warnings.FallbackApplied("page-starts-on out of range, using both")
		return ir.PageStartsBoth
	}
	return ir.PageStartsOn(v)
}
func pageStartsOnToBIN(v ir.PageStartsOn, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.PageStartsOdd, warnings, "page-starts-on")
}

func noteNumberingFromBIN(v uint8, warnings *warn.Channel) ir.NoteNumbering {
	if v > uint8(ir.NoteNumberRestartPage) {
		warnings.FallbackApplied("note numbering out of range, using continuous")
		return ir.NoteNumberContinuous
	}
	return ir.NoteNumbering(v)
}
func noteNumberingToBIN(v ir.NoteNumbering, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.NoteNumberRestartPage, warnings, "note numbering")
}

func footnotePlacementFromBIN(v uint8, warnings *warn.Channel) ir.FootnotePlacement {
	if v > uint8(ir.FootnotePageBottom) {
		warnings.FallbackApplied("footnote placement out of range, using each-column")
		return ir.FootnoteEachColumn
	}
	return ir.FootnotePlacement(v)
}
func footnotePlacementToBIN(v ir.FootnotePlacement, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.FootnotePageBottom, warnings, "footnote placement")
}

func endnotePlacementFromBIN(v uint8) ir.EndnotePlacement {
	if v == 0 {
		return ir.EndnoteSectionEnd
	}
	return ir.EndnoteDocumentEnd
}
func endnotePlacementToBIN(v ir.EndnotePlacement) uint8 {
	if v == ir.EndnoteSectionEnd {
		return 0
	}
	return 1
}

func columnDirectionFromBIN(v uint8, warnings *warn.Channel) ir.ColumnDirection {
	if v > uint8(ir.ColumnBalanced) {
		warnings.FallbackApplied("column direction out of range, using left-to-right")
		return ir.ColumnLeftToRight
	}
	return ir.ColumnDirection(v)
}
func columnDirectionToBIN(v ir.ColumnDirection, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.ColumnBalanced, warnings, "column direction")
}

func columnSeparatorFromBIN(v uint8, warnings *warn.Channel) ir.ColumnSeparator {
	if v > uint8(ir.ColumnSeparatorDashed) {
		warnings.FallbackApplied("column separator out of range, using none")
		return ir.ColumnSeparatorNone
	}
	return ir.ColumnSeparator(v)
}
func columnSeparatorToBIN(v ir.ColumnSeparator, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.ColumnSeparatorDashed, warnings, "column separator")
}

func pageBorderPageTypeFromBIN(v uint8, warnings *warn.Channel) ir.PageBorderPageType {
	if v > uint8(ir.PageBorderOddPages) {
		warnings.FallbackApplied("page-border page type out of range, using all")
		return ir.PageBorderAllPages
	}
	return ir.PageBorderPageType(v)
}
func pageBorderPageTypeToBIN(v ir.PageBorderPageType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.PageBorderOddPages, warnings, "page-border page type")
}

func pageBorderFillAreaFromBIN(v uint8, warnings *warn.Channel) ir.PageBorderFillArea {
	if v > uint8(ir.PageBorderFillBorder) {
		warnings.FallbackApplied("page-border fill area out of range, using paper")
		return ir.PageBorderFillPaper
	}
	return ir.PageBorderFillArea(v)
}
func pageBorderFillAreaToBIN(v ir.PageBorderFillArea, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.PageBorderFillBorder, warnings, "page-border fill area")
}

func fillKindFromBIN(v uint8, warnings *warn.Channel) ir.FillKind {
	if v > uint8(ir.FillImage) {
		warnings.FallbackApplied("fill kind out of range, using none")
		return ir.FillNone
	}
	return ir.FillKind(v)
}
func fillKindToBIN(v ir.FillKind, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.FillImage, warnings, "fill kind")
}

func patternTypeFromBIN(v uint8, warnings *warn.Channel) ir.PatternType {
	if v > uint8(ir.PatternCrossDiagonal) {
		warnings.FallbackApplied("pattern type out of range, using horizontal")
		return ir.PatternHorizontal
	}
	return ir.PatternType(v)
}
func patternTypeToBIN(v ir.PatternType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.PatternCrossDiagonal, warnings, "pattern type")
}

func imageFillModeFromBIN(v uint8, warnings *warn.Channel) ir.ImageFillMode {
	if v > uint8(ir.ImageFillTileVertical) {
		warnings.FallbackApplied("image fill mode out of range, using tile")
		return ir.ImageFillTile
	}
	return ir.ImageFillMode(v)
}
func imageFillModeToBIN(v ir.ImageFillMode, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.ImageFillTileVertical, warnings, "image fill mode")
}

func imageEffectFromBIN(v uint8, warnings *warn.Channel) ir.ImageEffect {
	if v > uint8(ir.ImageEffectPattern) {
		warnings.FallbackApplied("image effect out of range, using none")
		return ir.ImageEffectNone
	}
	return ir.ImageEffect(v)
}
func imageEffectToBIN(v ir.ImageEffect, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.ImageEffectPattern, warnings, "image effect")
}

func autoNumberKindFromBIN(v uint8, warnings *warn.Channel) ir.AutoNumberKind {
	if v > uint8(ir.AutoNumberEquation) {
		warnings.FallbackApplied("auto-number kind out of range, using page")
		return ir.AutoNumberPage
	}
	return ir.AutoNumberKind(v)
}
func autoNumberKindToBIN(v ir.AutoNumberKind, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.AutoNumberEquation, warnings, "auto-number kind")
}

func captionPositionFromBIN(v uint8, warnings *warn.Channel) ir.CaptionPosition {
	if v > uint8(ir.CaptionBottom) {
		warnings.FallbackApplied("caption position out of range, using left")
		return ir.CaptionLeft
	}
	return ir.CaptionPosition(v)
}
func captionPositionToBIN(v ir.CaptionPosition, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.CaptionBottom, warnings, "caption position")
}

func breakTypeFromBIN(v uint8, warnings *warn.Channel) ir.BreakType {
	if v > uint8(ir.BreakSection) {
		warnings.FallbackApplied("break type out of range, using none")
		return ir.BreakNone
	}
	return ir.BreakType(v)
}
func breakTypeToBIN(v ir.BreakType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.BreakSection, warnings, "break type")
}

func binaryFormatFromBIN(v uint8, warnings *warn.Channel) ir.BinaryFormat {
	if v > uint8(ir.BinaryOLE) {
		warnings.FallbackApplied("binary format out of range, using unknown")
		return ir.BinaryUnknown
	}
	return ir.BinaryFormat(v)
}
func binaryFormatToBIN(v ir.BinaryFormat) uint8 { return uint8(v) }

func wrapTypeFromBIN(v uint8, warnings *warn.Channel) ir.TextWrapType {
	if v > uint8(ir.WrapInFrontOfText) {
		warnings.FallbackApplied("wrap type out of range, using square")
		return ir.WrapSquare
	}
	return ir.TextWrapType(v)
}
func wrapTypeToBIN(v ir.TextWrapType, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.WrapInFrontOfText, warnings, "wrap type")
}

func wrapSideFromBIN(v uint8, warnings *warn.Channel) ir.TextWrapSide {
	if v > uint8(ir.WrapSideLargest) {
		warnings.FallbackApplied("wrap side out of range, using both")
		return ir.WrapSideBoth
	}
	return ir.TextWrapSide(v)
}
func wrapSideToBIN(v ir.TextWrapSide, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.WrapSideLargest, warnings, "wrap side")
}

func hRelFromBIN(v uint8, warnings *warn.Channel) ir.HorizontalRelativeTo {
	if v > uint8(ir.HRelParagraph) {
		warnings.FallbackApplied("horizontal-relative-to out of range, using paper")
		return ir.HRelPaper
	}
	return ir.HorizontalRelativeTo(v)
}
func hRelToBIN(v ir.HorizontalRelativeTo, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.HRelParagraph, warnings, "horizontal-relative-to")
}

func vRelFromBIN(v uint8, warnings *warn.Channel) ir.VerticalRelativeTo {
	if v > uint8(ir.VRelLine) {
		warnings.FallbackApplied("vertical-relative-to out of range, using paper")
		return ir.VRelPaper
	}
	return ir.VerticalRelativeTo(v)
}
func vRelToBIN(v ir.VerticalRelativeTo, warnings *warn.Channel) uint8 {
	return clampToBIN(v, ir.VRelLine, warnings, "vertical-relative-to")
}

// objectCommonFromBIN maps an anchored object's shared preamble.
func objectCommonFromBIN(rec bin.ObjectCommonRecord, warnings *warn.Channel) ir.ObjectCommon {
	props := bin.ObjectCommonPropsFromUint32(rec.Properties)
	return ir.ObjectCommon{
		OffsetX: ir.LengthUnit(rec.OffsetX),
		OffsetY: ir.LengthUnit(rec.OffsetY),
		Width:   ir.LengthUnit(rec.Width),
		Height:  ir.LengthUnit(rec.Height),
		ZOrder:  rec.ZOrder,
		Margins: ir.Margins{
			Left:   ir.LengthUnit(rec.MarginLeft),
			Right:  ir.LengthUnit(rec.MarginRight),
			Top:    ir.LengthUnit(rec.MarginTop),
			Bottom: ir.LengthUnit(rec.MarginBottom),
		},
		Wrap: ir.TextWrap{
			TreatAsChar:   props.TreatAsChar(),
			HorizontalRel: hRelFromBIN(props.HorizontalRel(), warnings),
			VerticalRel:   vRelFromBIN(props.VerticalRel(), warnings),
			WrapType:      wrapTypeFromBIN(props.WrapType(), warnings),
			WrapSide:      wrapSideFromBIN(props.WrapSide(), warnings),
			AllowOverlap:  props.AllowOverlap(),
		},
	}
}

func objectCommonToBIN(c ir.ObjectCommon, warnings *warn.Channel) bin.ObjectCommonRecord {
	props := bin.NewObjectCommonProps().
		SetTreatAsChar(c.Wrap.TreatAsChar).
		SetHorizontalRel(hRelToBIN(c.Wrap.HorizontalRel, warnings)).
		SetVerticalRel(vRelToBIN(c.Wrap.VerticalRel, warnings)).
		SetWrapType(wrapTypeToBIN(c.Wrap.WrapType, warnings)).
		SetWrapSide(wrapSideToBIN(c.Wrap.WrapSide, warnings)).
		SetAllowOverlap(c.Wrap.AllowOverlap)
	return bin.ObjectCommonRecord{
		Properties:   props.Uint32(),
		OffsetX:      int32(c.OffsetX),
		OffsetY:      int32(c.OffsetY),
		Width:        int32(c.Width),
		Height:       int32(c.Height),
		ZOrder:       c.ZOrder,
		MarginLeft:   int32(c.Margins.Left),
		MarginRight:  int32(c.Margins.Right),
		MarginTop:    int32(c.Margins.Top),
		MarginBottom: int32(c.Margins.Bottom),
	}
}
