package ir

// Every enum below is closed: both codecs map into and out of it. Where
// a target format cannot represent some variants, the enum's comment
// documents the fallback the emit direction uses.

// Alignment is horizontal paragraph alignment.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
	AlignJustify
	AlignDistribute
	AlignDivide // no BIN-native bit pattern beyond 5; both formats support 0-5 directly.
)

// VerticalAlignment is vertical text alignment within a line box.
type VerticalAlignment uint8

const (
	VAlignBaseline VerticalAlignment = iota
	VAlignTop
	VAlignMiddle
	VAlignBottom
)

// LineType enumerates border/underline stroke styles.
type LineType uint8

const (
	LineNone LineType = iota
	LineSolid
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
	LineLongDash
	LineDouble
	LineTriple
	LineWave
	LineDoubleWave
	LineThickThinLarge
	LineThinThickLarge
	LineCircle
)

// UnderlineType enumerates underline placement relative to the baseline.
type UnderlineType uint8

const (
	UnderlineNone UnderlineType = iota
	UnderlineBottom
	UnderlineTop
	UnderlineBoth
)

// StrikethroughType enumerates strikethrough stroke styles.
type StrikethroughType uint8

const (
	StrikethroughNone StrikethroughType = iota
	StrikethroughSingle
	StrikethroughDouble
)

// EmphasisType enumerates character emphasis mark placement.
type EmphasisType uint8

const (
	EmphasisNone EmphasisType = iota
	EmphasisDotAbove
	EmphasisRingAbove
	EmphasisTildeAbove
	EmphasisCircleAbove
)

// OutlineType enumerates character outline render styles.
type OutlineType uint8

const (
	OutlineNone OutlineType = iota
	OutlineSolid
	OutlineDotted
	OutlineThick
)

// ShadowType enumerates the 12-way directional shadow axis plus the
// discrete/continuous style axis. The binary format can only express
// the discrete/continuous axis; its emit direction picks Discrete for
// any *Discrete variant and Continuous otherwise, clamping offsets to
// [-100, 100] (i8 percent).
type ShadowType uint8

const (
	ShadowNone ShadowType = iota
	ShadowBottomRightContinuous
	ShadowBottomRightDiscrete
	ShadowBottomLeftContinuous
	ShadowBottomLeftDiscrete
	ShadowTopRightContinuous
	ShadowTopRightDiscrete
	ShadowTopLeftContinuous
	ShadowTopLeftDiscrete
	ShadowLeftContinuous
	ShadowRightContinuous
	ShadowCenterContinuous
	ShadowCenterDiscrete
)

// IsDiscrete reports whether the shadow belongs to the discrete axis.
func (s ShadowType) IsDiscrete() bool {
	switch s {
	case ShadowBottomRightDiscrete, ShadowBottomLeftDiscrete, ShadowTopRightDiscrete,
		ShadowTopLeftDiscrete, ShadowCenterDiscrete:
		return true
	}
	return false
}

// NumberFormat enumerates list/heading numbering glyph schemes.
// Ganji has no XML counterpart; the XML emit direction falls back to
// Digit with a warning.
type NumberFormat uint8

const (
	NumberDigit NumberFormat = iota
	NumberCircledDigit
	NumberRomanUpper
	NumberRomanLower
	NumberLatinUpper
	NumberLatinLower
	NumberCircledLatinUpper
	NumberCircledLatinLower
	NumberHangulSyllable
	NumberCircledHangulSyllable
	NumberHangulJamo
	NumberCircledHangulJamo
	NumberHangulPhonetic
	NumberIdeograph
	NumberCircledIdeograph
	NumberDecagonCircle
	NumberGanji // BIN/IR-native; no XML counterpart, falls back to NumberDigit.
)

// TabType enumerates tab stop kinds.
type TabType uint8

const (
	TabLeft TabType = iota
	TabRight
	TabCenter
	TabDecimal
)

// TabLeader enumerates tab fill characters.
type TabLeader uint8

const (
	TabLeaderNone TabLeader = iota
	TabLeaderDot
	TabLeaderHyphen
	TabLeaderUnderscore
	TabLeaderThickLine
	TabLeaderDoubleLine
)

// HeadingType enumerates how a paragraph participates in outline numbering.
type HeadingType uint8

const (
	HeadingNone HeadingType = iota
	HeadingOutline
	HeadingNumber
	HeadingBullet
)

// PageOrientation enumerates page orientation.
type PageOrientation uint8

const (
	PageWide PageOrientation = iota
	PageNarrow
)

// GutterPosition enumerates binding-gutter placement.
type GutterPosition uint8

const (
	GutterLeftOnly GutterPosition = iota
	GutterLeftRight
	GutterTopBottom
)

// PageStartsOn enumerates section page-start parity.
type PageStartsOn uint8

const (
	PageStartsBoth PageStartsOn = iota
	PageStartsEven
	PageStartsOdd
)

// TextWrapType enumerates how text flows around an anchored object.
type TextWrapType uint8

const (
	WrapSquare TextWrapType = iota
	WrapTight
	WrapThrough
	WrapTopAndBottom
	WrapBehindText
	WrapInFrontOfText
)

// TextWrapSide enumerates which side(s) of an object text wraps on.
type TextWrapSide uint8

const (
	WrapSideBoth TextWrapSide = iota
	WrapSideLeft
	WrapSideRight
	WrapSideLargest
)

// HorizontalRelativeTo enumerates the horizontal anchor base.
type HorizontalRelativeTo uint8

const (
	HRelPaper HorizontalRelativeTo = iota
	HRelPage
	HRelColumn
	HRelParagraph
)

// VerticalRelativeTo enumerates the vertical anchor base.
type VerticalRelativeTo uint8

const (
	VRelPaper VerticalRelativeTo = iota
	VRelPage
	VRelParagraph
	VRelLine
)

// BreakType enumerates forced break semantics for paragraphs/sections.
type BreakType uint8

const (
	BreakNone BreakType = iota
	BreakColumn
	BreakPage
	BreakSection
)

// NoteNumbering enumerates footnote/endnote numbering continuity.
type NoteNumbering uint8

const (
	NoteNumberContinuous NoteNumbering = iota
	NoteNumberRestartSection
	NoteNumberRestartPage
)

// FootnotePlacement enumerates where footnotes render on the page.
type FootnotePlacement uint8

const (
	FootnoteEachColumn FootnotePlacement = iota
	FootnoteMergedColumn
	FootnotePageBottom
)

// EndnotePlacement enumerates where endnotes render.
type EndnotePlacement uint8

const (
	EndnoteSectionEnd EndnotePlacement = iota
	EndnoteDocumentEnd
)

// ColumnDirection enumerates multi-column reading order.
type ColumnDirection uint8

const (
	ColumnLeftToRight ColumnDirection = iota
	ColumnRightToLeft
	ColumnBalanced
)

// ColumnSeparator enumerates the rule drawn between columns.
type ColumnSeparator uint8

const (
	ColumnSeparatorNone ColumnSeparator = iota
	ColumnSeparatorLine
	ColumnSeparatorDoubleLine
	ColumnSeparatorDashed
)

// PageBorderPosition enumerates whether a page border wraps the whole
// page or only the text area.
type PageBorderPosition uint8

const (
	PageBorderWholePage PageBorderPosition = iota
	PageBorderTextArea
)

// PageBorderPageType enumerates which pages in a section a border applies to.
type PageBorderPageType uint8

const (
	PageBorderAllPages PageBorderPageType = iota
	PageBorderEvenPages
	PageBorderOddPages
)

// PageBorderFillArea enumerates the fill extent for a page border.
type PageBorderFillArea uint8

const (
	PageBorderFillPaper PageBorderFillArea = iota
	PageBorderFillBorder
)

// LineNumberRestartType enumerates line-numbering restart granularity.
// XML-only; on the binary side the field is always None.
type LineNumberRestartType uint8

const (
	LineNumberRestartNone LineNumberRestartType = iota
	LineNumberRestartEachPage
	LineNumberRestartEachSection
	LineNumberRestartContinuous
)

// ImageFillMode enumerates picture content scaling semantics.
type ImageFillMode uint8

const (
	ImageFillTile ImageFillMode = iota
	ImageFillFitWindow
	ImageFillFitSize
	ImageFillCenter
	ImageFillTileHorizontal
	ImageFillTileVertical
)

// ImageEffect enumerates picture color adjustment presets.
type ImageEffect uint8

const (
	ImageEffectNone ImageEffect = iota
	ImageEffectGrayscale
	ImageEffectBlackWhite
	ImageEffectPattern
)

// GradientType enumerates fill gradient shapes.
type GradientType uint8

const (
	GradientLinear GradientType = iota
	GradientRadial
	GradientConical
	GradientSquare
)

// PatternType enumerates fill hatch patterns.
type PatternType uint8

const (
	PatternHorizontal PatternType = iota
	PatternVertical
	PatternBackSlash
	PatternSlash
	PatternCross
	PatternCrossDiagonal
)
