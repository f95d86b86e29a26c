package ir

import "github.com/tinywasm/hwpconv/warn"

// FontSlot is one of the seven per-language font references a CharShape
// carries (korean, latin, hanja, japanese, other, symbol, user).
type FontSlot struct {
	Font         FontId
	WidthRatio   int8 // percent, 50-200
	Spacing      int8 // percent, -50-50
	Offset       int8 // percent, -100-100
	RelativeSize uint8
}

// FontSlotKind indexes CharShape.Fonts.
type FontSlotKind int

const (
	FontSlotKorean FontSlotKind = iota
	FontSlotLatin
	FontSlotHanja
	FontSlotJapanese
	FontSlotOther
	FontSlotSymbol
	FontSlotUser
	fontSlotCount
)

// Font is one entry of StyleStore.Fonts. Its index in the store is its
// FontId: stores are contiguous and reordering after assignment is
// disallowed.
type Font struct {
	Name        string
	FamilyTag   byte
	Panose      [10]byte
	Substitute  string // always populated when known, even if Embedded is set.
	Embedded    bool
	EmbeddedRef BinaryDataId
}

// UnderlineStyle, StrikethroughStyle, OutlineStyle, ShadowStyle, and
// EmphasisStyle are CharShape sub-styles.
type UnderlineStyle struct {
	Type  UnderlineType
	Shape LineType
	Color Color
}

type StrikethroughStyle struct {
	Type  StrikethroughType
	Shape LineType
	Color Color
}

type OutlineStyle struct {
	Type OutlineType
}

type ShadowStyle struct {
	Type    ShadowType
	OffsetX int8 // percent of font size, clamped [-100, 100]
	OffsetY int8
	Color   Color
}

type EmphasisStyle struct {
	Type EmphasisType
}

// CharShape is one entry of StyleStore.CharShapes; its index is its CharShapeId.
type CharShape struct {
	Fonts         [fontSlotCount]FontSlot
	Size          LengthUnit
	Foreground    Color
	Shade         Color
	Underline     UnderlineStyle
	Strikethrough StrikethroughStyle
	Outline       OutlineStyle
	Shadow        ShadowStyle
	Emphasis      EmphasisStyle
	Bold          bool
	Italic        bool
	Emboss        bool
	Engrave       bool
	Superscript   bool
	Subscript     bool
	BorderFill    *BorderFillId
}

// ParaBorder is a paragraph border association, distinct from a
// character BorderFill reference because it carries its own offsets.
type ParaBorder struct {
	BorderFill   BorderFillId
	OffsetLeft   LengthUnit
	OffsetRight  LengthUnit
	OffsetTop    LengthUnit
	OffsetBottom LengthUnit
	Connect      bool
	IgnoreMargin bool
}

// ParaNumbering associates a paragraph shape with outline numbering.
type ParaNumbering struct {
	Heading HeadingType
	Level   uint8
	// Exactly one of Numbering/Bullet is meaningful, selected by Heading.
	Numbering NumberingId
	Bullet    BulletId
}

// LineSpacing carries the spacing mode and its interpretation-dependent value.
type LineSpacing struct {
	Type  LineSpacingType
	Value uint16
}

type LineSpacingType uint8

const (
	LineSpacingPercent LineSpacingType = iota
	LineSpacingFixed
	LineSpacingAtLeast
)

// KoreanLatinBreak enumerates word-break policy across script boundaries.
type KoreanLatinBreak uint8

const (
	BreakPolicyWordFirst KoreanLatinBreak = iota
	BreakPolicyHangulFirst
	BreakPolicyAnywhere
)

// ParaShape is one entry of StyleStore.ParaShapes; its index is its ParaShapeId.
type ParaShape struct {
	Alignment          Alignment
	MarginLeft         LengthUnit
	MarginRight        LengthUnit
	IndentFirstLine    LengthUnit
	SpacingBefore      LengthUnit
	SpacingAfter       LengthUnit
	LineSpacing        LineSpacing
	VerticalAlignment  VerticalAlignment
	KoreanBreak        KoreanLatinBreak
	LatinBreak         KoreanLatinBreak
	WidowOrphan        bool
	KeepWithNext       bool
	KeepLines          bool
	PageBreakBefore    bool
	Border             *ParaBorder
	Numbering          *ParaNumbering
	TabDef             *TabDefId
	AutoSpaceKorean    bool
	AutoSpaceOther     bool
	SuppressLineNumber bool
	SnapToGrid         bool
}

// StyleKind distinguishes paragraph styles from character styles.
type StyleKind uint8

const (
	StyleKindParagraph StyleKind = iota
	StyleKindCharacter
)

// Style is one entry of StyleStore.Styles; its index is its StyleId.
type Style struct {
	NameKorean  string
	NameEnglish string
	Kind        StyleKind
	ParaShape   ParaShapeId
	CharShape   CharShapeId
	NextStyle   StyleId
}

// BorderEdge is one side of a BorderFill.
type BorderEdge struct {
	Line  LineType
	Width LengthUnit
	Color Color
}

// FillKind selects which of BorderFill's fill variants is populated.
type FillKind uint8

const (
	FillNone FillKind = iota
	FillSolid
	FillPattern
	FillGradient
	FillImage
)

// SolidFill is a flat color fill.
type SolidFill struct{ Color Color }

// PatternFill is a two-color hatch fill.
type PatternFill struct {
	Pattern    PatternType
	Foreground Color
	Background Color
}

// GradientFill is a multi-stop gradient fill.
type GradientFill struct {
	Type   GradientType
	Angle  int16
	Colors []Color
}

// ImageFill references a BinaryData entry as a fill image.
type ImageFill struct {
	Image BinaryDataId
	Mode  ImageFillMode
}

// BorderFill is one entry of StyleStore.BorderFills; its index is its BorderFillId.
type BorderFill struct {
	Left, Right, Top, Bottom BorderEdge
	DiagonalDown, DiagonalUp *BorderEdge
	Fill                     FillKind
	Solid                    *SolidFill
	Pattern                  *PatternFill
	Gradient                 *GradientFill
	Image                    *ImageFill
	ThreeD                   bool
	Shadow                   bool
}

// TabStop is a single tab stop within a TabDef.
type TabStop struct {
	Position LengthUnit
	Type     TabType
	Leader   TabLeader
}

// TabDef is one entry of StyleStore.TabDefs; its index is its TabDefId.
type TabDef struct {
	Stops           []TabStop
	AutoTabInterval LengthUnit // 0 disables automatic tabbing.
}

// NumberingLevel describes one of a Numbering's (up to 10) outline levels.
type NumberingLevel struct {
	Level         uint8
	Template      string // e.g. "%1.%2." with %N placeholders per level.
	Start         uint32
	Alignment     Alignment
	CharShape     CharShapeId
	TextOffset    LengthUnit
	NumberWidth   LengthUnit
	InstanceWidth bool
	AutoIndent    bool
	Format        NumberFormat
}

// Numbering is one entry of StyleStore.Numberings; its index is its NumberingId.
type Numbering struct {
	Levels      [10]NumberingLevel
	StartNumber uint32
}

// Bullet is one entry of StyleStore.Bullets; its index is its BulletId.
type Bullet struct {
	Char      rune
	CharShape *CharShapeId
	Checkbox  bool
}

// StyleStore is the flat, append-only arena all style ids resolve
// into; integer ids in place of pointers keep ownership acyclic. A
// store's index is its id; once appended an entry is immutable for the
// document's lifetime.
type StyleStore struct {
	Fonts       []Font
	CharShapes  []CharShape
	ParaShapes  []ParaShape
	Styles      []Style
	BorderFills []BorderFill
	TabDefs     []TabDef
	Numberings  []Numbering
	Bullets     []Bullet
}

// AddFont appends a Font and returns its new FontId.
func (s *StyleStore) AddFont(f Font) FontId {
	s.Fonts = append(s.Fonts, f)
	return FontId(len(s.Fonts) - 1)
}

// AddCharShape appends a CharShape and returns its new CharShapeId.
func (s *StyleStore) AddCharShape(c CharShape) CharShapeId {
	s.CharShapes = append(s.CharShapes, c)
	return CharShapeId(len(s.CharShapes) - 1)
}

// AddParaShape appends a ParaShape and returns its new ParaShapeId.
func (s *StyleStore) AddParaShape(p ParaShape) ParaShapeId {
	s.ParaShapes = append(s.ParaShapes, p)
	return ParaShapeId(len(s.ParaShapes) - 1)
}

// AddStyle appends a Style and returns its new StyleId.
func (s *StyleStore) AddStyle(st Style) StyleId {
	s.Styles = append(s.Styles, st)
	return StyleId(len(s.Styles) - 1)
}

// AddBorderFill appends a BorderFill and returns its new BorderFillId.
func (s *StyleStore) AddBorderFill(b BorderFill) BorderFillId {
	s.BorderFills = append(s.BorderFills, b)
	return BorderFillId(len(s.BorderFills) - 1)
}

// AddTabDef appends a TabDef and returns its new TabDefId.
func (s *StyleStore) AddTabDef(t TabDef) TabDefId {
	s.TabDefs = append(s.TabDefs, t)
	return TabDefId(len(s.TabDefs) - 1)
}

// AddNumbering appends a Numbering and returns its new NumberingId.
func (s *StyleStore) AddNumbering(n Numbering) NumberingId {
	s.Numberings = append(s.Numberings, n)
	return NumberingId(len(s.Numberings) - 1)
}

// AddBullet appends a Bullet and returns its new BulletId.
func (s *StyleStore) AddBullet(b Bullet) BulletId {
	s.Bullets = append(s.Bullets, b)
	return BulletId(len(s.Bullets) - 1)
}

// ResolveFont validates id against the store: readers reject broken
// references rather than carrying dangling ids.
func (s *StyleStore) ResolveFont(id FontId) (*Font, error) {
	if id < 0 || int(id) >= len(s.Fonts) {
		return nil, warn.UnresolvedReference("Font", int(id))
	}
	return &s.Fonts[id], nil
}

// ResolveCharShape validates id against the store.
func (s *StyleStore) ResolveCharShape(id CharShapeId) (*CharShape, error) {
	if id < 0 || int(id) >= len(s.CharShapes) {
		return nil, warn.UnresolvedReference("CharShape", int(id))
	}
	return &s.CharShapes[id], nil
}

// ResolveParaShape validates id against the store.
func (s *StyleStore) ResolveParaShape(id ParaShapeId) (*ParaShape, error) {
	if id < 0 || int(id) >= len(s.ParaShapes) {
		return nil, warn.UnresolvedReference("ParaShape", int(id))
	}
	return &s.ParaShapes[id], nil
}

// ResolveBorderFill validates id against the store.
func (s *StyleStore) ResolveBorderFill(id BorderFillId) (*BorderFill, error) {
	if id < 0 || int(id) >= len(s.BorderFills) {
		return nil, warn.UnresolvedReference("BorderFill", int(id))
	}
	return &s.BorderFills[id], nil
}
