package xmlfmt

// This file defines the structural model the reader assembles from
// parsed Element trees and the writer assembles before serializing.
// Field names mirror the wire element/attribute vocabulary; converters
// in convert/xmlconv map them to/from ir's canonical enums and Color,
// the same division of labor bin/fsd.go keeps for the binary side.

// VersionInfo is the root version.xml part.
type VersionInfo struct {
	TargetApplication                string
	Major, Minor, Micro, BuildNumber string
}

// FontXML is one head.xml font-list entry.
type FontXML struct {
	ID         int32
	Name       string
	FamilyTag  string
	Panose     [10]byte
	Substitute string
	Embedded   bool
	BinItemRef string
}

// FontSlotXML is one char-shape font-face slot reference.
type FontSlotXML struct {
	Lang         string
	FontRef      int32
	WidthRatio   int32
	Spacing      int32
	Offset       int32
	RelativeSize int32
}

// CharShapeXML is one head.xml char-shape-list entry.
type CharShapeXML struct {
	ID                     int32
	Fonts                  []FontSlotXML
	Height                 int32
	TextColor              string
	ShadeColor             string
	Bold, Italic           bool
	Underline              string
	UnderlineColor         string
	Strikeout              string
	Outline                string
	Shadow                 string
	Emphasis               string
	Emboss, Engrave        bool
	Superscript, Subscript bool
	BorderFillIDRef        string
}

// ParaShapeXML is one head.xml para-shape-list entry.
type ParaShapeXML struct {
	ID                                                                       int32
	Align                                                                    string
	MarginLeft, MarginRight                                                  int32
	IndentFirstLine                                                          int32
	SpacingBefore, SpacingAfter                                              int32
	LineSpacingType                                                          string
	LineSpacingValue                                                         int32
	HasBorder                                                                bool
	BorderFillIDRef                                                          string
	BorderOffsetLeft, BorderOffsetRight, BorderOffsetTop, BorderOffsetBottom int32
	HeadingType                                                              string
	HeadingLevel                                                             int32
	NumberingIDRef, BulletIDRef                                              string
	TabDefIDRef                                                              string
	SnapToGrid, BreakBefore                                                  bool
}

// StyleXML is one head.xml style-list entry.
type StyleXML struct {
	ID                                             int32
	NameKorean, NameEnglish                        string
	Kind                                           string
	ParaShapeIDRef, CharShapeIDRef, NextStyleIDRef string
}

// BorderEdgeXML is one edge of a BorderFillXML.
type BorderEdgeXML struct {
	Type  string
	Width int32
	Color string
}

// BorderFillXML is one head.xml border-fill-list entry.
type BorderFillXML struct {
	ID                       int32
	Left, Right, Top, Bottom BorderEdgeXML
	DiagonalDown, DiagonalUp *BorderEdgeXML
	FillKind                 string
	FillColor1, FillColor2   string
	FillPattern              string
	FillImageRef             string
	ThreeD, Shadow           bool
}

// TabStopXML is one stop within a TabDefXML.
type TabStopXML struct {
	Position int32
	Type     string
	Leader   string
}

// TabDefXML is one head.xml tab-def-list entry.
type TabDefXML struct {
	ID              int32
	Stops           []TabStopXML
	AutoTabInterval int32
}

// NumberingLevelXML is one level of a NumberingXML.
type NumberingLevelXML struct {
	Level          int32
	Template       string
	Start          int32
	Align          string
	CharShapeIDRef string
	TextOffset     int32
	NumberWidth    int32
	Format         string
}

// NumberingXML is one head.xml numbering-list entry.
type NumberingXML struct {
	ID          int32
	Levels      []NumberingLevelXML
	StartNumber int32
}

// BulletXML is one head.xml bullet-list entry.
type BulletXML struct {
	ID             int32
	Char           string
	CharShapeIDRef string
	Checkbox       bool
}

// MasterPageXML is one master-page record; master pages exist only in
// this format.
type MasterPageXML struct {
	ID, Name string
	Type     string
}

// TrackChangeAuthorColorXML is one entry of the track-change config's
// per-type author-color table.
type TrackChangeAuthorColorXML struct {
	Author, Color, ChangeType string
}

// DocSummaryXML is the header part's document-summary element.
type DocSummaryXML struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Language int32
}

// HeadXML is the fully decoded Contents/header.xml part.
type HeadXML struct {
	Summary     *DocSummaryXML
	Fonts       []FontXML
	CharShapes  []CharShapeXML
	ParaShapes  []ParaShapeXML
	Styles      []StyleXML
	BorderFills []BorderFillXML
	TabDefs     []TabDefXML
	Numberings  []NumberingXML
	Bullets     []BulletXML

	ForbiddenWords         []string
	MasterPages            []MasterPageXML
	TrackChangeAuthors     []TrackChangeAuthorColorXML
	LayoutCompatFlags      []string
	DocumentOptionLinkPath string
}

// RangeMarkXML is an inline range-tag marker materialized as begin/end
// markup inside the text stream.
type RangeMarkXML struct {
	Kind  string // "bookmarkBegin" | "bookmarkEnd" | "markpenBegin" | "markpenEnd" | ...
	Name  string
	Color string
}

// FieldXML is a field span; what the binary format expresses as a
// control (e.g. a hyperlink) this format expresses as a
// fieldBegin/fieldEnd bracket.
type FieldXML struct {
	Kind    string
	ID      int32
	Param   string // e.g. the hyperlink URL.
	Display string
}

// RunContentXML is one piece of run content in wire order.
type RunContentXML struct {
	Text            string
	Tab             bool
	LineBreak       bool
	Hyphen          bool
	NonBreakSpace   bool
	FixedWidthSpace bool
	Range           *RangeMarkXML
	Field           *FieldXML
	Control         *ControlXML
}

// RunXML is one run element.
type RunXML struct {
	CharShapeIDRef string
	Contents       []RunContentXML
}

// ParagraphXML is one <p> element.
type ParagraphXML struct {
	ParaShapeIDRef    string
	StyleIDRef        string
	InstanceID        string
	PageBreakBefore   bool
	ColumnBreakBefore bool
	Runs              []RunXML
	SecPr             *SecPrXML // only set on a section's first paragraph.
	ColPr             *ColPrXML
}

// SecPrXML is the per-section page-definition marker carried inside
// the first run of a section's first paragraph.
type SecPrXML struct {
	PageWidth, PageHeight                            int32
	MarginLeft, MarginRight, MarginTop, MarginBottom int32
	MarginHeader, MarginFooter, MarginGutter         int32
	Landscape                                        bool
	GutterPosition                                   string
	StartsOn                                         string
	Language                                         int32
	Align                                            string // the section's default paragraph alignment surfaces here too.

	FootnoteShape *NoteShapeXML
	EndnoteShape  *NoteShapeXML

	PageBorderFillIDRef string
	PageBorderArea      string
	PageBorderWhere     string
	PageBorderPages     string

	GridVisible  bool
	GridUnit     int32
	GridViewLine bool

	HideHeader, HideFooter, HideMasterPage, HideBorderFill, HideFill, HidePageNumber bool
}

// NoteShapeXML is a footnote or endnote shape marker nested in SecPrXML.
type NoteShapeXML struct {
	NumberFormat  string
	StartNumber   int32
	Numbering     string
	Placement     string
	DividerLength int32
}

// ColPrXML is the column-definition marker.
type ColPrXML struct {
	Count     int32
	SameWidth bool
	Widths    []int32
	Spacing   int32
	Direction string
	Separator string
}

// CellXML is one table cell.
type CellXML struct {
	Row, Column      int32
	RowSpan, ColSpan int32
	BorderFillIDRef  string
	Width, Height    int32
	Paragraphs       []ParagraphXML
}

// ZoneXML is one merged-region marker.
type ZoneXML struct {
	StartRow, StartCol, EndRow, EndCol int32
	BorderFillIDRef                    string
}

// TableXML is a <tbl> control payload.
type TableXML struct {
	Common          ObjectCommonXML
	Rows, Columns   int32
	BorderFillIDRef string
	RowHeights      []int32
	Cells           []CellXML
	Zones           []ZoneXML
}

// PictureXML is a <pic> control payload.
type PictureXML struct {
	Common                                   ObjectCommonXML
	BinItemRef                               string
	Effect                                   string
	FillMode                                 string
	CropLeft, CropRight, CropTop, CropBottom int32
}

// ObjectCommonXML is the shared anchored-object preamble.
type ObjectCommonXML struct {
	TreatAsChar                                      bool
	OffsetX, OffsetY                                 int32
	Width, Height                                    int32
	ZOrder                                           int32
	HorizontalRelativeTo, VerticalRelativeTo         string
	WrapType, WrapSide                               string
	AllowOverlap                                     bool
	MarginLeft, MarginRight, MarginTop, MarginBottom int32
	CaptionText                                      string
	CaptionPosition                                  string
}

// MemoXML is a <memo> control payload.
type MemoXML struct {
	Author    string
	CreatedAt string
	Text      string
}

// GenericControlXML is the <ctrl kind="..."> fallback envelope for
// every anchorable/inline construct that doesn't warrant its own
// element vocabulary (equations, shapes, text boxes, headers/footers,
// notes, auto-numbers, and the rarer control kinds). Attrs holds the
// scalar payload fields; Paragraphs carries any nested text-bearing
// content in wire order.
type GenericControlXML struct {
	Kind       string
	Attrs      []AttrKV
	Text       string
	Paragraphs []ParagraphXML
}

// AttrKV keeps GenericControlXML's attribute order stable across a
// read/write round trip instead of relying on a map's iteration order.
type AttrKV struct{ Key, Value string }

// ControlXML is a generic inline control payload, dispatched by Kind.
type ControlXML struct {
	Kind    string
	Table   *TableXML
	Picture *PictureXML
	Memo    *MemoXML
	Generic *GenericControlXML
}

// LineNumberShapeXML is the per-section line-numbering shape, which
// has no binary counterpart.
type LineNumberShapeXML struct {
	RestartType string
	StartNumber int32
}

// SectionXML is the fully decoded Contents/section{N}.xml part.
type SectionXML struct {
	Paragraphs      []ParagraphXML
	LineNumberShape *LineNumberShapeXML
}

// Document is the fully decoded package: version info, head, and every
// section part in package order. BinaryData holds each embedded item's
// payload bytes, keyed by its binItemRef, fetched from the package's
// BinData/ directory.
type Document struct {
	Version    VersionInfo
	Head       HeadXML
	Sections   []SectionXML
	BinaryData map[string][]byte
}
