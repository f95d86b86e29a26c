package xmlconv

import (
	"strconv"

	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/warn"
	"github.com/tinywasm/hwpconv/xmlfmt"
)

// fontSlotLangTokens names FontSlotXML.Lang, the wire counterpart to
// FontSlot's positional array index; order matches the canonical
// per-language slot list.
var fontSlotLangTokens = []string{"HANGUL", "LATIN", "HANJA", "JAPANESE", "OTHER", "SYMBOL", "USER"}

func fontSlotLangFromXML(s string, warnings *warn.Channel) int {
	return reverseLookup(fontSlotLangTokens, s, warnings, "font-slot language")
}
func fontSlotLangToXML(i int) string { return lookup(fontSlotLangTokens, i) }

// stylesFromXML decodes a Contents/header.xml part into the canonical
// arena-style StyleStore, the XML counterpart to binconv's
// stylesFromBIN.
func stylesFromXML(head xmlfmt.HeadXML, warnings *warn.Channel) ir.StyleStore {
	var s ir.StyleStore
	for _, f := range head.Fonts {
		fam, err := strconv.Atoi(f.FamilyTag)
		if err != nil {
			warnings.FallbackApplied("font family tag not numeric, using 0")
		}
		s.Fonts = append(s.Fonts, ir.Font{
			Name:        f.Name,
			FamilyTag:   byte(fam),
			Panose:      f.Panose,
			Substitute:  f.Substitute,
			Embedded:    f.Embedded,
			EmbeddedRef: binItemRefToID(f.BinItemRef, warnings),
		})
	}
	for _, c := range head.CharShapes {
		s.CharShapes = append(s.CharShapes, charShapeFromXML(c, warnings))
	}
	for _, p := range head.ParaShapes {
		s.ParaShapes = append(s.ParaShapes, paraShapeFromXML(p, warnings))
	}
	for _, st := range head.Styles {
		s.Styles = append(s.Styles, ir.Style{
			NameKorean:  st.NameKorean,
			NameEnglish: st.NameEnglish,
			Kind:        styleKindFromXML(st.Kind, warnings),
			ParaShape:   ir.ParaShapeId(idRefFromXML(st.ParaShapeIDRef, warnings, "ParaShape")),
			CharShape:   ir.CharShapeId(idRefFromXML(st.CharShapeIDRef, warnings, "CharShape")),
			NextStyle:   ir.StyleId(idRefFromXML(st.NextStyleIDRef, warnings, "Style")),
		})
	}
	for _, b := range head.BorderFills {
		s.BorderFills = append(s.BorderFills, borderFillFromXML(b, warnings))
	}
	for _, t := range head.TabDefs {
		var stops []ir.TabStop
		for _, st := range t.Stops {
			stops = append(stops, ir.TabStop{
				Position: ir.LengthUnit(st.Position),
				Type:     tabTypeFromXML(st.Type, warnings),
				Leader:   tabLeaderFromXML(st.Leader, warnings),
			})
		}
		s.TabDefs = append(s.TabDefs, ir.TabDef{Stops: stops, AutoTabInterval: ir.LengthUnit(t.AutoTabInterval)})
	}
	for _, n := range head.Numberings {
		var levels [10]ir.NumberingLevel
		for i, l := range n.Levels {
			if i >= 10 {
				break
			}
			levels[i] = ir.NumberingLevel{
				Level:       uint8(i),
				Template:    l.Template,
				Start:       uint32(l.Start),
				Alignment:   alignmentFromXML(l.Align, warnings),
				CharShape:   ir.CharShapeId(idRefFromXML(l.CharShapeIDRef, warnings, "CharShape")),
				TextOffset:  ir.LengthUnit(l.TextOffset),
				NumberWidth: ir.LengthUnit(l.NumberWidth),
				Format:      numberFormatFromXML(l.Format, warnings),
			}
		}
		s.Numberings = append(s.Numberings, ir.Numbering{Levels: levels, StartNumber: uint32(n.StartNumber)})
	}
	for _, b := range head.Bullets {
		bu := ir.Bullet{Checkbox: b.Checkbox}
		if len(b.Char) > 0 {
			for _, r := range b.Char {
				bu.Char = r
				break
			}
		}
		bu.CharShape = optionalCharShapeRefFromXML(b.CharShapeIDRef, warnings)
		s.Bullets = append(s.Bullets, bu)
	}
	return s
}

func charShapeFromXML(c xmlfmt.CharShapeXML, warnings *warn.Channel) ir.CharShape {
	var fonts [7]ir.FontSlot
	for _, fs := range c.Fonts {
		idx := fontSlotLangFromXML(fs.Lang, warnings)
		fonts[idx] = ir.FontSlot{
			Font:         ir.FontId(fs.FontRef),
			WidthRatio:   int8(fs.WidthRatio),
			Spacing:      int8(fs.Spacing),
			Offset:       int8(fs.Offset),
			RelativeSize: uint8(fs.RelativeSize),
		}
	}
	textColor, err := ir.ParseHex(c.TextColor)
	if err != nil {
		warnings.FallbackApplied("char-shape text color not parseable, using black")
	}
	shadeColor, _ := ir.ParseHex(c.ShadeColor)
	underlineColor, _ := ir.ParseHex(c.UnderlineColor)
	return ir.CharShape{
		Fonts:      fonts,
		Size:       ir.LengthUnit(c.Height),
		Foreground: textColor,
		Shade:      shadeColor,
		Underline: ir.UnderlineStyle{
			Type:  underlineTypeFromXML(c.Underline, warnings),
			Color: underlineColor,
		},
		Strikethrough: ir.StrikethroughStyle{Type: strikethroughTypeFromXML(c.Strikeout, warnings)},
		Outline:       ir.OutlineStyle{Type: outlineTypeFromXML(c.Outline, warnings)},
		Shadow:        ir.ShadowStyle{Type: shadowTypeFromXML(c.Shadow, warnings)},
		Emphasis:      ir.EmphasisStyle{Type: emphasisTypeFromXML(c.Emphasis, warnings)},
		Bold:          c.Bold,
		Italic:        c.Italic,
		Emboss:        c.Emboss,
		Engrave:       c.Engrave,
		Superscript:   c.Superscript,
		Subscript:     c.Subscript,
		BorderFill:    optionalBorderFillRefFromXML(c.BorderFillIDRef, warnings),
	}
}

func charShapeToXML(id int, c ir.CharShape, warnings *warn.Channel) xmlfmt.CharShapeXML {
	var fonts []xmlfmt.FontSlotXML
	for i, fs := range c.Fonts {
		fonts = append(fonts, xmlfmt.FontSlotXML{
			Lang:         fontSlotLangToXML(i),
			FontRef:      int32(fs.Font),
			WidthRatio:   int32(fs.WidthRatio),
			Spacing:      int32(fs.Spacing),
			Offset:       int32(fs.Offset),
			RelativeSize: int32(fs.RelativeSize),
		})
	}
	if c.Shadow.OffsetX != 0 || c.Shadow.OffsetY != 0 {
		warnings.DataLoss("char-shape shadow offset (no XML field for it in this head codec)")
	}
	lineShapeSurvives := func(l ir.LineType) bool { return l == ir.LineNone || l == ir.LineSolid }
	if !lineShapeSurvives(c.Underline.Shape) || !lineShapeSurvives(c.Strikethrough.Shape) {
		warnings.DataLoss("char-shape underline/strikethrough line shape (only the solid default round-trips)")
	}
	return xmlfmt.CharShapeXML{
		ID:              int32(id),
		Fonts:           fonts,
		Height:          int32(c.Size),
		TextColor:       c.Foreground.Hex(),
		ShadeColor:      c.Shade.Hex(),
		Bold:            c.Bold,
		Italic:          c.Italic,
		Underline:       underlineTypeToXML(c.Underline.Type),
		UnderlineColor:  c.Underline.Color.Hex(),
		Strikeout:       strikethroughTypeToXML(c.Strikethrough.Type),
		Outline:         outlineTypeToXML(c.Outline.Type),
		Shadow:          shadowTypeToXML(c.Shadow.Type),
		Emphasis:        emphasisTypeToXML(c.Emphasis.Type),
		Emboss:          c.Emboss,
		Engrave:         c.Engrave,
		Superscript:     c.Superscript,
		Subscript:       c.Subscript,
		BorderFillIDRef: optionalIdRefToXML(c.BorderFill),
	}
}

func paraShapeFromXML(p xmlfmt.ParaShapeXML, warnings *warn.Channel) ir.ParaShape {
	ps := ir.ParaShape{
		Alignment:       alignmentFromXML(p.Align, warnings),
		MarginLeft:      ir.LengthUnit(p.MarginLeft),
		MarginRight:     ir.LengthUnit(p.MarginRight),
		IndentFirstLine: ir.LengthUnit(p.IndentFirstLine),
		SpacingBefore:   ir.LengthUnit(p.SpacingBefore),
		SpacingAfter:    ir.LengthUnit(p.SpacingAfter),
		LineSpacing: ir.LineSpacing{
			Type:  lineSpacingTypeFromXML(p.LineSpacingType, warnings),
			Value: uint16(p.LineSpacingValue),
		},
		PageBreakBefore: p.BreakBefore,
		SnapToGrid:      p.SnapToGrid,
	}
	if p.HasBorder {
		ps.Border = &ir.ParaBorder{
			BorderFill:   ir.BorderFillId(idRefFromXML(p.BorderFillIDRef, warnings, "BorderFill")),
			OffsetLeft:   ir.LengthUnit(p.BorderOffsetLeft),
			OffsetRight:  ir.LengthUnit(p.BorderOffsetRight),
			OffsetTop:    ir.LengthUnit(p.BorderOffsetTop),
			OffsetBottom: ir.LengthUnit(p.BorderOffsetBottom),
		}
	}
	if p.NumberingIDRef != "" || p.BulletIDRef != "" {
		n := &ir.ParaNumbering{Heading: headingTypeFromXML(p.HeadingType, warnings), Level: uint8(p.HeadingLevel)}
		if p.NumberingIDRef != "" {
			n.Numbering = ir.NumberingId(idRefFromXML(p.NumberingIDRef, warnings, "Numbering"))
		}
		if p.BulletIDRef != "" {
			n.Bullet = ir.BulletId(idRefFromXML(p.BulletIDRef, warnings, "Bullet"))
		}
		ps.Numbering = n
	}
	ps.TabDef = optionalTabDefRefFromXML(p.TabDefIDRef, warnings)
	return ps
}

func paraShapeToXML(id int, p ir.ParaShape, warnings *warn.Channel) xmlfmt.ParaShapeXML {
	if p.WidowOrphan || p.KeepWithNext || p.KeepLines || p.AutoSpaceKorean || p.AutoSpaceOther || p.SuppressLineNumber {
		warnings.DataLoss("paragraph shape widow/orphan, keep-with-next, keep-lines, auto-space, or suppress-line-number flags (no XML field for them in this head codec)")
	}
	if p.VerticalAlignment != ir.VAlignBaseline {
		warnings.DataLoss("paragraph shape vertical alignment")
	}
	if p.KoreanBreak != ir.BreakPolicyWordFirst || p.LatinBreak != ir.BreakPolicyWordFirst {
		warnings.DataLoss("paragraph shape Korean/Latin break policy")
	}
	out := xmlfmt.ParaShapeXML{
		ID:               int32(id),
		Align:            alignmentToXML(p.Alignment),
		MarginLeft:       int32(p.MarginLeft),
		MarginRight:      int32(p.MarginRight),
		IndentFirstLine:  int32(p.IndentFirstLine),
		SpacingBefore:    int32(p.SpacingBefore),
		SpacingAfter:     int32(p.SpacingAfter),
		LineSpacingType:  lineSpacingTypeToXML(p.LineSpacing.Type),
		LineSpacingValue: int32(p.LineSpacing.Value),
		BreakBefore:      p.PageBreakBefore,
		SnapToGrid:       p.SnapToGrid,
	}
	if p.Border != nil {
		out.HasBorder = true
		out.BorderFillIDRef = idRefToXML(p.Border.BorderFill)
		out.BorderOffsetLeft = int32(p.Border.OffsetLeft)
		out.BorderOffsetRight = int32(p.Border.OffsetRight)
		out.BorderOffsetTop = int32(p.Border.OffsetTop)
		out.BorderOffsetBottom = int32(p.Border.OffsetBottom)
	}
	if p.Numbering != nil {
		out.HeadingType = headingTypeToXML(p.Numbering.Heading)
		out.HeadingLevel = int32(p.Numbering.Level)
		switch p.Numbering.Heading {
		case ir.HeadingBullet:
			out.BulletIDRef = idRefToXML(p.Numbering.Bullet)
		default:
			out.NumberingIDRef = idRefToXML(p.Numbering.Numbering)
		}
	}
	if p.TabDef != nil {
		out.TabDefIDRef = idRefToXML(*p.TabDef)
	}
	return out
}

func borderEdgeFromXML(e xmlfmt.BorderEdgeXML, warnings *warn.Channel) ir.BorderEdge {
	c, _ := ir.ParseHex(e.Color)
	return ir.BorderEdge{Line: lineTypeFromXML(e.Type, warnings), Width: ir.LengthUnit(e.Width), Color: c}
}
func borderEdgeToXML(e ir.BorderEdge) xmlfmt.BorderEdgeXML {
	return xmlfmt.BorderEdgeXML{Type: lineTypeToXML(e.Line), Width: int32(e.Width), Color: e.Color.Hex()}
}

func borderFillFromXML(b xmlfmt.BorderFillXML, warnings *warn.Channel) ir.BorderFill {
	bf := ir.BorderFill{
		Left:   borderEdgeFromXML(b.Left, warnings),
		Right:  borderEdgeFromXML(b.Right, warnings),
		Top:    borderEdgeFromXML(b.Top, warnings),
		Bottom: borderEdgeFromXML(b.Bottom, warnings),
		Fill:   fillKindFromXML(b.FillKind, warnings),
		ThreeD: b.ThreeD,
		Shadow: b.Shadow,
	}
	if b.DiagonalDown != nil {
		d := borderEdgeFromXML(*b.DiagonalDown, warnings)
		bf.DiagonalDown = &d
	}
	if b.DiagonalUp != nil {
		d := borderEdgeFromXML(*b.DiagonalUp, warnings)
		bf.DiagonalUp = &d
	}
	switch bf.Fill {
	case ir.FillSolid:
		c, _ := ir.ParseHex(b.FillColor1)
		bf.Solid = &ir.SolidFill{Color: c}
	case ir.FillPattern:
		fg, _ := ir.ParseHex(b.FillColor1)
		bg, _ := ir.ParseHex(b.FillColor2)
		bf.Pattern = &ir.PatternFill{Pattern: patternTypeFromXML(b.FillPattern, warnings), Foreground: fg, Background: bg}
	case ir.FillGradient:
		c1, _ := ir.ParseHex(b.FillColor1)
		c2, _ := ir.ParseHex(b.FillColor2)
		bf.Gradient = &ir.GradientFill{Colors: []ir.Color{c1, c2}}
	case ir.FillImage:
		bf.Image = &ir.ImageFill{Image: binItemRefToID(b.FillImageRef, warnings)}
	}
	return bf
}

func borderFillToXML(id int, b ir.BorderFill, warnings *warn.Channel) xmlfmt.BorderFillXML {
	out := xmlfmt.BorderFillXML{
		ID:       int32(id),
		Left:     borderEdgeToXML(b.Left),
		Right:    borderEdgeToXML(b.Right),
		Top:      borderEdgeToXML(b.Top),
		Bottom:   borderEdgeToXML(b.Bottom),
		FillKind: fillKindToXML(b.Fill),
		ThreeD:   b.ThreeD,
		Shadow:   b.Shadow,
	}
	if b.DiagonalDown != nil {
		e := borderEdgeToXML(*b.DiagonalDown)
		out.DiagonalDown = &e
	}
	if b.DiagonalUp != nil {
		e := borderEdgeToXML(*b.DiagonalUp)
		out.DiagonalUp = &e
	}
	switch {
	case b.Solid != nil:
		out.FillColor1 = b.Solid.Color.Hex()
	case b.Pattern != nil:
		out.FillPattern = patternTypeToXML(b.Pattern.Pattern)
		out.FillColor1 = b.Pattern.Foreground.Hex()
		out.FillColor2 = b.Pattern.Background.Hex()
	case b.Gradient != nil:
		if len(b.Gradient.Colors) > 0 {
			out.FillColor1 = b.Gradient.Colors[0].Hex()
		}
		if len(b.Gradient.Colors) > 1 {
			out.FillColor2 = b.Gradient.Colors[1].Hex()
		}
		warnings.DataLoss("gradient type/angle (this head codec stores only a two-stop color pair)")
	case b.Image != nil:
		out.FillImageRef = binItemRefFromID(b.Image.Image)
		if b.Image.Mode != ir.ImageFillTile {
			warnings.DataLoss("border-fill image scaling mode")
		}
	}
	return out
}

func stylesToXML(s ir.StyleStore, warnings *warn.Channel) xmlfmt.HeadXML {
	var head xmlfmt.HeadXML
	for i, f := range s.Fonts {
		fx := xmlfmt.FontXML{
			ID:         int32(i),
			Name:       f.Name,
			FamilyTag:  strconv.Itoa(int(f.FamilyTag)),
			Panose:     f.Panose,
			Substitute: f.Substitute,
			Embedded:   f.Embedded,
		}
		if f.Embedded {
			fx.BinItemRef = binItemRefFromID(f.EmbeddedRef)
		}
		head.Fonts = append(head.Fonts, fx)
	}
	for i, c := range s.CharShapes {
		head.CharShapes = append(head.CharShapes, charShapeToXML(i, c, warnings))
	}
	for i, p := range s.ParaShapes {
		head.ParaShapes = append(head.ParaShapes, paraShapeToXML(i, p, warnings))
	}
	for i, st := range s.Styles {
		head.Styles = append(head.Styles, xmlfmt.StyleXML{
			ID:             int32(i),
			NameKorean:     st.NameKorean,
			NameEnglish:    st.NameEnglish,
			Kind:           styleKindToXML(st.Kind),
			ParaShapeIDRef: idRefToXML(st.ParaShape),
			CharShapeIDRef: idRefToXML(st.CharShape),
			NextStyleIDRef: idRefToXML(st.NextStyle),
		})
	}
	for i, b := range s.BorderFills {
		head.BorderFills = append(head.BorderFills, borderFillToXML(i, b, warnings))
	}
	for i, t := range s.TabDefs {
		var stops []xmlfmt.TabStopXML
		for _, st := range t.Stops {
			stops = append(stops, xmlfmt.TabStopXML{
				Position: int32(st.Position),
				Type:     tabTypeToXML(st.Type),
				Leader:   tabLeaderToXML(st.Leader),
			})
		}
		head.TabDefs = append(head.TabDefs, xmlfmt.TabDefXML{ID: int32(i), Stops: stops, AutoTabInterval: int32(t.AutoTabInterval)})
	}
	for i, n := range s.Numberings {
		var levels []xmlfmt.NumberingLevelXML
		for li, l := range n.Levels {
			if l.InstanceWidth || l.AutoIndent {
				warnings.DataLoss("numbering level instance-width/auto-indent flags (no XML field for them in this head codec)")
			}
			levels = append(levels, xmlfmt.NumberingLevelXML{
				Level:          int32(li),
				Template:       l.Template,
				Start:          int32(l.Start),
				Align:          alignmentToXML(l.Alignment),
				CharShapeIDRef: idRefToXML(l.CharShape),
				TextOffset:     int32(l.TextOffset),
				NumberWidth:    int32(l.NumberWidth),
				Format:         numberFormatToXML(l.Format, warnings),
			})
		}
		head.Numberings = append(head.Numberings, xmlfmt.NumberingXML{ID: int32(i), Levels: levels, StartNumber: int32(n.StartNumber)})
	}
	for i, b := range s.Bullets {
		head.Bullets = append(head.Bullets, xmlfmt.BulletXML{
			ID:             int32(i),
			Char:           string(b.Char),
			CharShapeIDRef: optionalIdRefToXML(b.CharShape),
			Checkbox:       b.Checkbox,
		})
	}
	return head
}
