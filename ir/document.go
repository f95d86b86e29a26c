package ir

// VersionQuad is a four-part document format version (major.minor.micro.build).
type VersionQuad struct {
	Major, Minor, Micro, Build uint16
}

// Metadata carries document-level descriptive fields.
type Metadata struct {
	Title    string
	Author   string
	Subject  string
	Keywords []string
	Version  VersionQuad
}

// Settings carries document-wide scalars shared by both formats.
type Settings struct {
	// LanguageLCID is the representative document language: the first
	// section's language is treated as the document default, while
	// per-section values still round-trip independently.
	LanguageLCID uint16
}

// BinaryFormat identifies the encoding of a stored binary blob.
type BinaryFormat uint8

const (
	BinaryUnknown BinaryFormat = iota
	BinaryPNG
	BinaryJPG
	BinaryGIF
	BinaryBMP
	BinaryTIFF
	BinaryWMF
	BinaryEMF
	BinaryOLE
)

// BinaryData is one stored binary blob, owned by value.
type BinaryData struct {
	Format BinaryFormat
	Bytes  []byte
}

// BINExtensions carries binary-format-only semantics opaquely:
// distribution-document and embedded-script blobs. These have no XML
// counterpart; converting to XML drops them with a DataLoss warning.
type BINExtensions struct {
	DistributionDocument []byte
	EmbeddedScripts      []byte
}

// MasterPage is an XML-only repeating page background/decoration template.
type MasterPage struct {
	Name string
	Data []byte // opaque serialized master-page content.
}

// TrackChangeAuthorColor associates a track-change author with a display color.
type TrackChangeAuthorColor struct {
	Author string
	Color  Color
}

// TrackChangeConfig is the XML head part's per-author color mapping,
// modeled as a typed structure rather than an opaque blob since its
// schema is stable.
type TrackChangeConfig struct {
	Enabled      bool
	AuthorColors []TrackChangeAuthorColor
}

// XMLExtensions carries XML-only semantics: master pages, forbidden words,
// track-change configuration, and layout-compatibility flags. These have
// no BIN counterpart; converting to BIN drops them with a DataLoss warning.
type XMLExtensions struct {
	MasterPages        []MasterPage
	ForbiddenWords     []string
	TrackChangeConfig  TrackChangeConfig
	LayoutCompatFlags  uint32
	DocumentOptionLink string
}

// Extensions holds the two opaque-by-family blobs. The blob matching
// the round-trip's own format is preserved; the other is dropped with
// a warning on cross-format conversion.
type Extensions struct {
	BIN *BINExtensions
	XML *XMLExtensions
}

// GridSettings controls the section's editing grid.
type GridSettings struct {
	Visible  bool
	Unit     LengthUnit
	ViewLine bool
}

// LineNumberShape exists only in the XML format; on a binary-origin
// Section this is always nil.
type LineNumberShape struct {
	Restart  LineNumberRestartType
	StartAt  uint32
	Distance LengthUnit
	Interval uint16
}

// PageDef is the per-section physical page definition.
type PageDef struct {
	Width, Height              LengthUnit
	MarginLeft, MarginRight    LengthUnit
	MarginTop, MarginBottom    LengthUnit
	MarginHeader, MarginFooter LengthUnit
	MarginGutter               LengthUnit
	Orientation                PageOrientation
	Gutter                     GutterPosition
}

// ColumnDef is the per-section multi-column layout definition.
type ColumnDef struct {
	Count     uint16
	Direction ColumnDirection
	SameWidth bool
	Widths    []LengthUnit // meaningful only when !SameWidth.
	Spacing   LengthUnit
	Separator ColumnSeparator
}

// NoteShape is shared shape data for footnotes or endnotes in a section.
type NoteShape struct {
	NumberFormat  NumberFormat
	StartNumber   uint32
	Numbering     NoteNumbering
	DividerLength LengthUnit
}

// Section is one entry of Document.Sections.
type Section struct {
	Page            PageDef
	PageBorderFill  *BorderFillId
	PageBorderArea  PageBorderFillArea
	PageBorderWhere PageBorderPosition
	PageBorderPages PageBorderPageType
	Columns         ColumnDef
	FootnoteShape   NoteShape
	EndnoteShape    NoteShape
	FootnotePlace   FootnotePlacement
	EndnotePlace    EndnotePlacement
	StartsOn        PageStartsOn
	HideHeader      bool
	HideFooter      bool
	HideMasterPage  bool
	HideBorderFill  bool
	HideFill        bool
	HidePageNumber  bool
	Grid            GridSettings
	LineNumbers     *LineNumberShape // XML-only; nil on BIN-origin sections.
	LanguageLCID    uint16
	Paragraphs      []Paragraph
}

// Document is the root of the format-neutral document tree.
type Document struct {
	Metadata   Metadata
	Settings   Settings
	Styles     StyleStore
	Sections   []Section
	BinaryData map[BinaryDataId]BinaryData
	Extensions Extensions
}

// NewDocument returns an empty, writer-ready Document.
func NewDocument() *Document {
	return &Document{BinaryData: make(map[BinaryDataId]BinaryData)}
}
