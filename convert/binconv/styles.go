package binconv

import (
	"github.com/tinywasm/hwpconv/bin"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
)

// borderFillIdFromBIN translates the wire's -1-means-absent int32
// index convention into ir's pointer-means-absent convention.
func borderFillIdFromBIN(idx int32) *ir.BorderFillId {
	if idx < 0 {
		return nil
	}
	id := ir.BorderFillId(idx)
	return &id
}

func borderFillIdToBIN(id *ir.BorderFillId) int32 {
	if id == nil {
		return -1
	}
	return int32(*id)
}

func stylesFromBIN(info bin.DocInfo, warnings *warn.Channel) ir.StyleStore {
	var s ir.StyleStore
	for _, f := range info.Fonts {
		s.Fonts = append(s.Fonts, ir.Font{
			Name:        f.Name,
			FamilyTag:   f.FamilyTag,
			Panose:      f.Panose,
			Substitute:  f.Substitute,
			Embedded:    f.Embedded,
			EmbeddedRef: ir.BinaryDataId(f.BinDataRef),
		})
	}
	for _, c := range info.CharShapes {
		s.CharShapes = append(s.CharShapes, charShapeFromBIN(c, warnings))
	}
	for _, p := range info.ParaShapes {
		s.ParaShapes = append(s.ParaShapes, paraShapeFromBIN(p, warnings))
	}
	for _, st := range info.Styles {
		kind := ir.StyleKindParagraph
		if st.Kind == 1 {
			kind = ir.StyleKindCharacter
		}
		s.Styles = append(s.Styles, ir.Style{
			NameKorean:  st.NameKorean,
			NameEnglish: st.NameEnglish,
			Kind:        kind,
			ParaShape:   ir.ParaShapeId(st.ParaShapeIndex),
			CharShape:   ir.CharShapeId(st.CharShapeIndex),
			NextStyle:   ir.StyleId(st.NextStyleIndex),
		})
	}
	for _, b := range info.BorderFills {
		s.BorderFills = append(s.BorderFills, borderFillFromBIN(b, warnings))
	}
	for _, t := range info.TabDefs {
		var stops []ir.TabStop
		for _, st := range t.Stops {
			stops = append(stops, ir.TabStop{
				Position: ir.LengthUnit(st.Position),
				Type:     tabTypeFromBIN(st.Type, warnings),
				Leader:   tabLeaderFromBIN(st.Leader, warnings),
			})
		}
		s.TabDefs = append(s.TabDefs, ir.TabDef{Stops: stops, AutoTabInterval: ir.LengthUnit(t.AutoTabInterval)})
	}
	for _, n := range info.Numberings {
		var levels [10]ir.NumberingLevel
		for i, l := range n.Levels {
			levels[i] = ir.NumberingLevel{
				Level:         uint8(i),
				Template:      l.Template,
				Start:         l.Start,
				Alignment:     alignmentFromBIN(l.Alignment, warnings),
				CharShape:     ir.CharShapeId(l.CharShapeIndex),
				TextOffset:    ir.LengthUnit(l.TextOffset),
				NumberWidth:   ir.LengthUnit(l.NumberWidth),
				InstanceWidth: l.InstanceWidth,
				AutoIndent:    l.AutoIndent,
				Format:        numberFormatFromBIN(l.Format, warnings),
			}
		}
		s.Numberings = append(s.Numberings, ir.Numbering{Levels: levels, StartNumber: n.StartNumber})
	}
	for _, b := range info.Bullets {
		bu := ir.Bullet{Char: b.Char, Checkbox: b.Checkbox}
		if b.HasCharShape {
			id := ir.CharShapeId(b.CharShapeIndex)
			bu.CharShape = &id
		}
		s.Bullets = append(s.Bullets, bu)
	}
	return s
}

func charShapeFromBIN(c bin.CharShapeRecord, warnings *warn.Channel) ir.CharShape {
	props := bin.CharShapePropsFromUint32(c.Properties)
	var fonts [7]ir.FontSlot
	for i, f := range c.Fonts {
		fonts[i] = ir.FontSlot{
			Font:         ir.FontId(f.FontIndex),
			WidthRatio:   f.WidthRatio,
			Spacing:      f.Spacing,
			Offset:       f.Offset,
			RelativeSize: f.RelativeSize,
		}
	}
	return ir.CharShape{
		Fonts:      fonts,
		Size:       ir.LengthUnit(c.Size),
		Foreground: ir.FromBINPacked(c.Foreground),
		Shade:      ir.FromBINPacked(c.Shade),
		Underline: ir.UnderlineStyle{
			Type:  underlineTypeFromBIN(props.UnderlineShape(), warnings),
			Color: ir.FromBINPacked(c.UnderlineShapeColor),
		},
		Strikethrough: ir.StrikethroughStyle{
			Type:  strikethroughTypeFromBIN(props.Strikethrough(), warnings),
			Color: ir.FromBINPacked(c.StrikethroughColor),
		},
		Outline: ir.OutlineStyle{Type: outlineTypeFromBIN(props.Outline(), warnings)},
		Shadow: ir.ShadowStyle{
			Type:    shadowTypeFromBIN(props.Shadow(), warnings),
			OffsetX: c.ShadowOffsetX,
			OffsetY: c.ShadowOffsetY,
			Color:   ir.FromBINPacked(c.ShadowColor),
		},
		Emphasis:    ir.EmphasisStyle{Type: emphasisTypeFromBIN(props.Emphasis(), warnings)},
		Bold:        props.Bold(),
		Italic:      props.Italic(),
		Emboss:      props.Emboss(),
		Engrave:     props.Engrave(),
		Superscript: props.Superscript(),
		Subscript:   props.Subscript(),
		BorderFill:  borderFillIdFromBIN(c.BorderFillIndex),
	}
}

func charShapeToBIN(c ir.CharShape, warnings *warn.Channel) bin.CharShapeRecord {
	props := bin.NewCharShapeProps()
	props.SetBold(c.Bold).SetItalic(c.Italic)
	props.SetUnderlineShape(underlineTypeToBIN(c.Underline.Type, warnings))
	props.SetOutline(outlineTypeToBIN(c.Outline.Type, warnings))
	props.SetShadow(shadowTypeToBIN(c.Shadow.Type))
	if t := c.Shadow.Type; t != ir.ShadowNone && t != ir.ShadowBottomRightContinuous && t != ir.ShadowBottomRightDiscrete {
		chosen := "Continuous"
		if t.IsDiscrete() {
			chosen = "Discrete"
		}
		warnings.EnumNarrowed("ShadowType", "BIN", chosen)
	}
	props.SetEmboss(c.Emboss).SetEngrave(c.Engrave)
	props.SetSuperscript(c.Superscript).SetSubscript(c.Subscript)
	props.SetStrikethrough(strikethroughTypeToBIN(c.Strikethrough.Type, warnings))
	props.SetEmphasis(emphasisTypeToBIN(c.Emphasis.Type, warnings))

	var fonts [7]bin.FontSlotRecord
	for i, f := range c.Fonts {
		fonts[i] = bin.FontSlotRecord{
			FontIndex:    uint16(f.Font),
			WidthRatio:   f.WidthRatio,
			Spacing:      f.Spacing,
			Offset:       f.Offset,
			RelativeSize: f.RelativeSize,
		}
	}
	return bin.CharShapeRecord{
		Fonts:               fonts,
		Size:                int32(c.Size),
		Properties:          props.Uint32(),
		Foreground:          c.Foreground.ToBINPacked(),
		Shade:               c.Shade.ToBINPacked(),
		UnderlineShapeColor: c.Underline.Color.ToBINPacked(),
		StrikethroughColor:  c.Strikethrough.Color.ToBINPacked(),
		ShadowOffsetX:       clampShadowOffset(c.Shadow.OffsetX),
		ShadowOffsetY:       clampShadowOffset(c.Shadow.OffsetY),
		ShadowColor:         c.Shadow.Color.ToBINPacked(),
		BorderFillIndex:     borderFillIdToBIN(c.BorderFill),
	}
}

func paraShapeFromBIN(p bin.ParaShapeRecord, warnings *warn.Channel) ir.ParaShape {
	props1 := bin.ParaShapeProps1FromUint32(p.Properties1)
	props2 := bin.ParaShapeProps2FromUint32(p.Properties2)
	ps := ir.ParaShape{
		Alignment:         alignmentFromBIN(props1.Alignment(), warnings),
		MarginLeft:        ir.LengthUnit(p.MarginLeft),
		MarginRight:       ir.LengthUnit(p.MarginRight),
		IndentFirstLine:   ir.LengthUnit(p.IndentFirstLine),
		SpacingBefore:     ir.LengthUnit(p.SpacingBefore),
		SpacingAfter:      ir.LengthUnit(p.SpacingAfter),
		LineSpacing:       ir.LineSpacing{Type: ir.LineSpacingType(p.LineSpacingType), Value: p.LineSpacingValue},
		VerticalAlignment: ir.VAlignBaseline,
		WidowOrphan:       props1.WidowOrphan(),
		KeepWithNext:      props1.KeepWithNext(),
		KeepLines:         props1.KeepLines(),
		PageBreakBefore:   props1.PageBreakBefore(),
		AutoSpaceKorean:   props2.AutoSpaceKorean(),
		AutoSpaceOther:    props2.AutoSpaceOther(),
		SnapToGrid:        props1.SnapToGrid(),
	}
	if p.HasBorder {
		ps.Border = &ir.ParaBorder{
			BorderFill:   ir.BorderFillId(p.BorderFillIndex),
			OffsetLeft:   ir.LengthUnit(p.BorderOffsetLeft),
			OffsetRight:  ir.LengthUnit(p.BorderOffsetRight),
			OffsetTop:    ir.LengthUnit(p.BorderOffsetTop),
			OffsetBottom: ir.LengthUnit(p.BorderOffsetBottom),
			Connect:      props1.BorderConnect(),
			IgnoreMargin: props1.IgnoreMargin(),
		}
	}
	if p.HasNumbering {
		n := &ir.ParaNumbering{
			Heading: headingTypeFromBIN(p.HeadingType, warnings),
			Level:   p.HeadingLevel,
		}
		if p.NumberingIndex >= 0 {
			n.Numbering = ir.NumberingId(p.NumberingIndex)
		}
		if p.BulletIndex >= 0 {
			n.Bullet = ir.BulletId(p.BulletIndex)
		}
		ps.Numbering = n
	}
	if p.HasTabDef {
		id := ir.TabDefId(p.TabDefIndex)
		ps.TabDef = &id
	}
	return ps
}

func paraShapeToBIN(p ir.ParaShape, warnings *warn.Channel) bin.ParaShapeRecord {
	props1 := bin.NewParaShapeProps1()
	props1.SetAlignment(alignmentToBIN(p.Alignment, warnings))
	props1.SetWidowOrphan(p.WidowOrphan).SetKeepWithNext(p.KeepWithNext).SetKeepLines(p.KeepLines)
	props1.SetPageBreakBefore(p.PageBreakBefore).SetSnapToGrid(p.SnapToGrid)
	props2 := bin.NewParaShapeProps2()
	props2.SetAutoSpaceKorean(p.AutoSpaceKorean).SetAutoSpaceOther(p.AutoSpaceOther)

	rec := bin.ParaShapeRecord{
		Properties1:      props1.Uint32(),
		Properties2:      props2.Uint32(),
		MarginLeft:       int32(p.MarginLeft),
		MarginRight:      int32(p.MarginRight),
		IndentFirstLine:  int32(p.IndentFirstLine),
		SpacingBefore:    int32(p.SpacingBefore),
		SpacingAfter:     int32(p.SpacingAfter),
		LineSpacingType:  uint8(p.LineSpacing.Type),
		LineSpacingValue: p.LineSpacing.Value,
		BorderFillIndex:  -1,
		NumberingIndex:   -1,
		BulletIndex:      -1,
		TabDefIndex:      -1,
	}
	if p.Border != nil {
		props1.SetBorderConnect(p.Border.Connect).SetIgnoreMargin(p.Border.IgnoreMargin)
		rec.Properties1 = props1.Uint32()
		rec.HasBorder = true
		rec.BorderFillIndex = int32(p.Border.BorderFill)
		rec.BorderOffsetLeft = int32(p.Border.OffsetLeft)
		rec.BorderOffsetRight = int32(p.Border.OffsetRight)
		rec.BorderOffsetTop = int32(p.Border.OffsetTop)
		rec.BorderOffsetBottom = int32(p.Border.OffsetBottom)
	}
	if p.Numbering != nil {
		rec.HasNumbering = true
		rec.HeadingType = headingTypeToBIN(p.Numbering.Heading, warnings)
		rec.HeadingLevel = p.Numbering.Level
		switch p.Numbering.Heading {
		case ir.HeadingBullet:
			rec.BulletIndex = int32(p.Numbering.Bullet)
		default:
			rec.NumberingIndex = int32(p.Numbering.Numbering)
		}
	}
	if p.TabDef != nil {
		rec.HasTabDef = true
		rec.TabDefIndex = int32(*p.TabDef)
	}
	if p.VerticalAlignment != ir.VAlignBaseline {
		warnings.DataLoss("paragraph vertical alignment")
	}
	return rec
}

func borderEdgeFromBIN(e bin.BorderEdgeRecord, warnings *warn.Channel) ir.BorderEdge {
	return ir.BorderEdge{Line: lineTypeFromBIN(e.Line, warnings), Width: ir.LengthUnit(e.Width), Color: ir.FromBINPacked(e.Color)}
}
func borderEdgeToBIN(e ir.BorderEdge, warnings *warn.Channel) bin.BorderEdgeRecord {
	return bin.BorderEdgeRecord{Line: lineTypeToBIN(e.Line, warnings), Width: int32(e.Width), Color: e.Color.ToBINPacked()}
}

func borderFillFromBIN(b bin.BorderFillRecord, warnings *warn.Channel) ir.BorderFill {
	bf := ir.BorderFill{
		Left:   borderEdgeFromBIN(b.Left, warnings),
		Right:  borderEdgeFromBIN(b.Right, warnings),
		Top:    borderEdgeFromBIN(b.Top, warnings),
		Bottom: borderEdgeFromBIN(b.Bottom, warnings),
		Fill:   fillKindFromBIN(b.FillKind, warnings),
		ThreeD: b.ThreeD,
		Shadow: b.Shadow,
	}
	if b.HasDiagonalDown {
		d := borderEdgeFromBIN(b.DiagonalDown, warnings)
		bf.DiagonalDown = &d
	}
	if b.HasDiagonalUp {
		d := borderEdgeFromBIN(b.DiagonalUp, warnings)
		bf.DiagonalUp = &d
	}
	switch bf.Fill {
	case ir.FillSolid:
		bf.Solid = &ir.SolidFill{Color: ir.FromBINPacked(b.FillColor1)}
	case ir.FillPattern:
		bf.Pattern = &ir.PatternFill{
			Pattern:    patternTypeFromBIN(b.FillPattern, warnings),
			Foreground: ir.FromBINPacked(b.FillColor1),
			Background: ir.FromBINPacked(b.FillColor2),
		}
	case ir.FillGradient:
		bf.Gradient = &ir.GradientFill{Colors: []ir.Color{ir.FromBINPacked(b.FillColor1), ir.FromBINPacked(b.FillColor2)}}
	case ir.FillImage:
		bf.Image = &ir.ImageFill{Image: ir.BinaryDataId(b.FillImageRef), Mode: imageFillModeFromBIN(b.FillImageMode, warnings)}
	}
	return bf
}

func borderFillToBIN(b ir.BorderFill, warnings *warn.Channel) bin.BorderFillRecord {
	rec := bin.BorderFillRecord{
		Left:     borderEdgeToBIN(b.Left, warnings),
		Right:    borderEdgeToBIN(b.Right, warnings),
		Top:      borderEdgeToBIN(b.Top, warnings),
		Bottom:   borderEdgeToBIN(b.Bottom, warnings),
		FillKind: fillKindToBIN(b.Fill, warnings),
		ThreeD:   b.ThreeD,
		Shadow:   b.Shadow,
	}
	if b.DiagonalDown != nil {
		rec.HasDiagonalDown = true
		rec.DiagonalDown = borderEdgeToBIN(*b.DiagonalDown, warnings)
	}
	if b.DiagonalUp != nil {
		rec.HasDiagonalUp = true
		rec.DiagonalUp = borderEdgeToBIN(*b.DiagonalUp, warnings)
	}
	switch {
	case b.Solid != nil:
		rec.FillColor1 = b.Solid.Color.ToBINPacked()
	case b.Pattern != nil:
		rec.FillPattern = patternTypeToBIN(b.Pattern.Pattern, warnings)
		rec.FillColor1 = b.Pattern.Foreground.ToBINPacked()
		rec.FillColor2 = b.Pattern.Background.ToBINPacked()
	case b.Gradient != nil:
		if len(b.Gradient.Colors) > 0 {
			rec.FillColor1 = b.Gradient.Colors[0].ToBINPacked()
		}
		if len(b.Gradient.Colors) > 1 {
			rec.FillColor2 = b.Gradient.Colors[1].ToBINPacked()
		}
		warnings.DataLoss("gradient type/angle (BIN stores only a two-stop color pair)")
	case b.Image != nil:
		rec.FillImageRef = uint16(b.Image.Image)
		rec.FillImageMode = imageFillModeToBIN(b.Image.Mode, warnings)
	}
	return rec
}

func stylesToBIN(s ir.StyleStore, warnings *warn.Channel) bin.DocInfo {
	var info bin.DocInfo
	for _, f := range s.Fonts {
		info.Fonts = append(info.Fonts, bin.FontRecord{
			Name:       f.Name,
			FamilyTag:  f.FamilyTag,
			Panose:     f.Panose,
			Substitute: f.Substitute,
			Embedded:   f.Embedded,
			BinDataRef: uint16(f.EmbeddedRef),
		})
	}
	for _, c := range s.CharShapes {
		info.CharShapes = append(info.CharShapes, charShapeToBIN(c, warnings))
	}
	for _, p := range s.ParaShapes {
		info.ParaShapes = append(info.ParaShapes, paraShapeToBIN(p, warnings))
	}
	for _, st := range s.Styles {
		kind := uint8(0)
		if st.Kind == ir.StyleKindCharacter {
			kind = 1
		}
		info.Styles = append(info.Styles, bin.StyleRecord{
			NameKorean:     st.NameKorean,
			NameEnglish:    st.NameEnglish,
			Kind:           kind,
			ParaShapeIndex: uint16(st.ParaShape),
			CharShapeIndex: uint16(st.CharShape),
			NextStyleIndex: uint16(st.NextStyle),
		})
	}
	for _, b := range s.BorderFills {
		info.BorderFills = append(info.BorderFills, borderFillToBIN(b, warnings))
	}
	for _, t := range s.TabDefs {
		var stops []bin.TabStopRecord
		for _, st := range t.Stops {
			stops = append(stops, bin.TabStopRecord{
				Position: int32(st.Position),
				Type:     tabTypeToBIN(st.Type, warnings),
				Leader:   tabLeaderToBIN(st.Leader, warnings),
			})
		}
		info.TabDefs = append(info.TabDefs, bin.TabDefRecord{Stops: stops, AutoTabInterval: int32(t.AutoTabInterval)})
	}
	for _, n := range s.Numberings {
		var levels [10]bin.NumberingLevelRecord
		for i, l := range n.Levels {
			levels[i] = bin.NumberingLevelRecord{
				Template:       l.Template,
				Start:          l.Start,
				Alignment:      alignmentToBIN(l.Alignment, warnings),
				CharShapeIndex: uint16(l.CharShape),
				TextOffset:     int32(l.TextOffset),
				NumberWidth:    int32(l.NumberWidth),
				InstanceWidth:  l.InstanceWidth,
				AutoIndent:     l.AutoIndent,
				Format:         numberFormatToBIN(l.Format, warnings),
			}
		}
		info.Numberings = append(info.Numberings, bin.NumberingRecord{Levels: levels, StartNumber: n.StartNumber})
	}
	for _, b := range s.Bullets {
		rec := bin.BulletRecord{Char: b.Char, Checkbox: b.Checkbox}
		if b.CharShape != nil {
			rec.HasCharShape = true
			rec.CharShapeIndex = uint16(*b.CharShape)
		}
		info.Bullets = append(info.Bullets, rec)
	}
	return info
}
