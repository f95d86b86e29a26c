package bin

// This file defines the structural document model the reader assembles
// directly off the wire and the writer serializes back. Numeric fields
// here are wire-native (0x00BBGGRR colors, bit-packed property words,
// -1-means-absent indexes); converters in convert/binconv map them
// to/from ir's canonical enums and Color.

// DocPropsRecord is the document-properties record at the head of the
// DocInfo stream: summary strings plus the format version quadruple.
type DocPropsRecord struct {
	Title                      string
	Author                     string
	Subject                    string
	Keywords                   []string
	Major, Minor, Micro, Build uint16
}

// FontRecord is one DocInfo font-list entry.
type FontRecord struct {
	Name       string
	FamilyTag  byte
	Panose     [10]byte
	Substitute string
	Embedded   bool
	BinDataRef uint16 // resolves via BinDataInfoList; meaningful iff Embedded.
}

// FontSlotRecord is one of a CharShapeRecord's seven per-language font
// references.
type FontSlotRecord struct {
	FontIndex    uint16
	WidthRatio   int8
	Spacing      int8
	Offset       int8
	RelativeSize uint8
}

// CharShapeRecord is one DocInfo char-shape-list entry.
type CharShapeRecord struct {
	Fonts               [7]FontSlotRecord
	Size                int32
	Properties          uint32 // CharShapeProps-packed.
	Foreground          uint32 // 0x00BBGGRR.
	Shade               uint32
	UnderlineShapeColor uint32
	StrikethroughColor  uint32
	ShadowOffsetX       int8
	ShadowOffsetY       int8
	ShadowColor         uint32
	BorderFillIndex     int32 // -1 when absent.
}

// ParaShapeRecord is one DocInfo para-shape-list entry.
type ParaShapeRecord struct {
	Properties1                                                              uint32
	Properties2                                                              uint32
	MarginLeft, MarginRight                                                  int32
	IndentFirstLine                                                          int32
	SpacingBefore, SpacingAfter                                              int32
	LineSpacingType                                                          uint8
	LineSpacingValue                                                         uint16
	HasBorder                                                                bool
	BorderFillIndex                                                          int32
	BorderOffsetLeft, BorderOffsetRight, BorderOffsetTop, BorderOffsetBottom int32
	HasNumbering                                                             bool
	HeadingType                                                              uint8
	HeadingLevel                                                             uint8
	NumberingIndex                                                           int32
	BulletIndex                                                              int32
	HasTabDef                                                                bool
	TabDefIndex                                                              int32
}

// StyleRecord is one DocInfo style-list entry.
type StyleRecord struct {
	NameKorean, NameEnglish string
	Kind                    uint8 // 0 paragraph, 1 character.
	ParaShapeIndex          uint16
	CharShapeIndex          uint16
	NextStyleIndex          uint16
}

// BorderEdgeRecord is one edge of a BorderFillRecord.
type BorderEdgeRecord struct {
	Line  uint8
	Width int32
	Color uint32
}

// BorderFillRecord is one DocInfo border-fill-list entry.
type BorderFillRecord struct {
	Left, Right, Top, Bottom       BorderEdgeRecord
	HasDiagonalDown, HasDiagonalUp bool
	DiagonalDown, DiagonalUp       BorderEdgeRecord
	FillKind                       uint8
	FillColor1                     uint32
	FillColor2                     uint32
	FillPattern                    uint8
	FillImageRef                   uint16
	FillImageMode                  uint8
	ThreeD, Shadow                 bool
}

// TabStopRecord is one stop within a TabDefRecord.
type TabStopRecord struct {
	Position int32
	Type     uint8
	Leader   uint8
}

// TabDefRecord is one DocInfo tab-definition-list entry.
type TabDefRecord struct {
	Stops           []TabStopRecord
	AutoTabInterval int32
}

// NumberingLevelRecord is one of a NumberingRecord's ten levels.
type NumberingLevelRecord struct {
	Template       string
	Start          uint32
	Alignment      uint8
	CharShapeIndex uint16
	TextOffset     int32
	NumberWidth    int32
	InstanceWidth  bool
	AutoIndent     bool
	Format         uint8
}

// NumberingRecord is one DocInfo numbering-list entry.
type NumberingRecord struct {
	Levels      [10]NumberingLevelRecord
	StartNumber uint32
}

// BulletRecord is one DocInfo bullet-list entry.
type BulletRecord struct {
	Char           rune
	HasCharShape   bool
	CharShapeIndex uint16
	Checkbox       bool
}

// BinDataInfoRecord is one DocInfo binary-data-info-list entry.
type BinDataInfoRecord struct {
	Alias  string // the "BIN{XXXX}" textual form.
	Format uint8
}

// DocInfo is the DocInfo stream's fully-decoded content.
type DocInfo struct {
	Props       DocPropsRecord
	Fonts       []FontRecord
	CharShapes  []CharShapeRecord
	ParaShapes  []ParaShapeRecord
	Styles      []StyleRecord
	BorderFills []BorderFillRecord
	Numberings  []NumberingRecord
	Bullets     []BulletRecord
	TabDefs     []TabDefRecord
	BinDataInfo []BinDataInfoRecord
}

// SectionDefRecord is the section stream's header record: visibility
// flags, grid settings and start-page parity packed into Properties
// (see SectionDefProps), plus the section's representative language.
type SectionDefRecord struct {
	Properties uint32
	GridUnit   int32
	Language   uint16
}

// PageDefRecord is the section stream's page-definition record.
type PageDefRecord struct {
	Width, Height                            int32
	MarginLeft, MarginRight                  int32
	MarginTop, MarginBottom                  int32
	MarginHeader, MarginFooter, MarginGutter int32
	Orientation                              uint8
	Gutter                                   uint8
}

// NoteShapeRecord is a footnote or endnote shape record.
type NoteShapeRecord struct {
	NumberFormat  uint8
	StartNumber   uint32
	Numbering     uint8
	DividerLength int32
}

// PageBorderFillRecord is the section stream's page-border-fill record.
type PageBorderFillRecord struct {
	Properties      uint32
	BorderFillIndex int32
	PageType        uint8
	FillArea        uint8
}

// ColumnDefRecord is the section stream's column-definition record.
type ColumnDefRecord struct {
	Properties1 uint32
	Widths      []int32
	Spacing     int32
	Separator   uint8
}

// ParaHeaderRecord is one paragraph group's header record.
type ParaHeaderRecord struct {
	CharCount      uint32
	ParaShapeIndex uint16
	StyleIndex     uint16
	BreakType      uint8
	InstanceID     uint32
}

// CharShapeRefRecord is one (position, char_shape_id) pair.
type CharShapeRefRecord struct {
	Position       uint32
	CharShapeIndex uint32
}

// RangeTagRecord is one paragraph range-tag record: the high byte of
// the packed Tag encodes the tag kind; the low three bytes carry either
// a track-change id or an opaque data value.
type RangeTagRecord struct {
	Start, End uint32
	Tag        uint32
}

// ControlHeaderRecord is a generic control envelope; ID identifies which
// concrete payload (if any) decoded it.
type ControlHeaderRecord struct {
	ID      ControlID
	Payload []byte // sub-record-specific; consumed by dedicated decoders.
}

// ObjectCommonRecord is the shared anchored-object preamble.
type ObjectCommonRecord struct {
	Properties                                       uint32
	OffsetX, OffsetY                                 int32
	Width, Height                                    int32
	ZOrder                                           int32
	MarginLeft, MarginRight, MarginTop, MarginBottom int32
}

// TableCellRecord is one grid cell's header plus nested paragraphs.
type TableCellRecord struct {
	Row, Column      uint16
	RowSpan, ColSpan uint16
	BorderFillIndex  int32
	Width, Height    int32
	Paragraphs       []ParagraphRecord
}

// TableRecord is the table control payload.
type TableRecord struct {
	Common                                             ObjectCommonRecord
	Rows, Columns                                      uint16
	BorderFillIndex                                    int32
	RowHeights                                         []int32
	Cells                                              []TableCellRecord
	ZoneStartRow, ZoneStartCol, ZoneEndRow, ZoneEndCol []uint16
	ZoneBorderFillIndex                                []int32
}

// PictureRecord is the picture control payload.
type PictureRecord struct {
	Common                                   ObjectCommonRecord
	BinDataRef                               uint16
	Effect, Fill                             uint8
	CropLeft, CropRight, CropTop, CropBottom int32
}

// HyperlinkRecord is the hyperlink control payload.
type HyperlinkRecord struct {
	Target, Display string
}

// AutoNumberRecord is the auto-number control payload.
type AutoNumberRecord struct {
	Kind   uint8
	Format uint8
}

// NewNumberRecord is the new-number (counter reset) control payload.
type NewNumberRecord struct {
	Kind  uint8
	Value uint32
}

// PageNumberRecord is the page-number control payload, emitted in place
// of a generic auto-number when a page position is attached.
type PageNumberRecord struct {
	Position uint8
	Format   uint8
}

// FieldRecord is a field control's defining data: the four-byte ASCII
// field tag plus the parameter string the field computes from (e.g. the
// hyperlink tag's target). Field controls occupy the field-start/
// field-end text-stream bracket rather than the single control slot;
// Param is empty for tags that carry no payload beyond their tag.
type FieldRecord struct {
	Tag   FieldTag
	Param string
}

// ParagraphGroupControl is one control occupying an extended-character
// slot within a paragraph's text, paired with its decoded payload and
// any nested paragraphs a text-bearing control carries via a following
// list-header record.
type ParagraphGroupControl struct {
	Header     ControlHeaderRecord
	Table      *TableRecord
	Picture    *PictureRecord
	Hyperlink  *HyperlinkRecord
	AutoNumber *AutoNumberRecord
	NewNumber  *NewNumberRecord
	PageNumber *PageNumberRecord
	Field      *FieldRecord
	Paragraphs []ParagraphRecord // populated for header/footer/footnote/endnote/hidden-comment/textbox.
}

// ParagraphRecord is one fully-assembled paragraph group: header, text,
// char-shape refs, range tags, controls, in wire order.
type ParagraphRecord struct {
	Header        ParaHeaderRecord
	Text          []uint16 // UTF-16 code units, terminator (0x000D) excluded.
	CharShapeRefs []CharShapeRefRecord
	RangeTags     []RangeTagRecord
	Controls      []ParagraphGroupControl
}

// Section is one section stream's fully-decoded content.
type Section struct {
	Def            SectionDefRecord
	Page           PageDefRecord
	FootnoteShape  NoteShapeRecord
	EndnoteShape   NoteShapeRecord
	PageBorderFill PageBorderFillRecord
	Column         ColumnDefRecord
	Paragraphs     []ParagraphRecord
}

// Extensions carries this format's family-private blobs: the
// distribution-document envelope and embedded scripts. They live in
// their own container streams and round-trip opaquely.
type Extensions struct {
	DistributionDocument []byte
	EmbeddedScripts      []byte
}

// Document is the fully-decoded document: the DocInfo stream plus every
// section stream, in stream order. BinaryData holds each
// BinDataInfoRecord's payload bytes, keyed by its "BIN{XXXX}" alias,
// fetched from the container's binary-data directory.
type Document struct {
	DocInfo    DocInfo
	Sections   []Section
	BinaryData map[string][]byte
	Extensions Extensions
}
