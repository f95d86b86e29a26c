package ir

// ControlKind discriminates the Control tagged union.
type ControlKind uint8

const (
	ControlTable ControlKind = iota
	ControlPicture
	ControlEquation
	ControlShape
	ControlTextBox
	ControlHeader
	ControlFooter
	ControlFootnote
	ControlEndnote
	ControlHyperlink
	ControlBookmark
	ControlAutoNumber
	ControlNewNumber
	ControlHiddenComment
	ControlVideo
	ControlOle
	ControlChart
	ControlFormObject
	ControlTextArt
	ControlMemo
	ControlIndexMark
	ControlUnknown
)

// CaptionPosition enumerates where a caption renders relative to its object.
type CaptionPosition uint8

const (
	CaptionLeft CaptionPosition = iota
	CaptionRight
	CaptionTop
	CaptionBottom
)

// Caption is an object's optional caption block.
type Caption struct {
	Position   CaptionPosition
	Paragraphs []Paragraph
	Width      LengthUnit
}

// TextWrap is an anchored object's text-flow configuration.
type TextWrap struct {
	TreatAsChar   bool
	HorizontalRel HorizontalRelativeTo
	VerticalRel   VerticalRelativeTo
	WrapType      TextWrapType
	WrapSide      TextWrapSide
	AllowOverlap  bool
}

// Margins are the four inset distances around an anchored object.
type Margins struct {
	Left, Right, Top, Bottom LengthUnit
}

// ObjectCommon is the anchored-object preamble shared by every placeable
// control: position, size, wrap, z-order, margins, optional caption.
type ObjectCommon struct {
	OffsetX LengthUnit
	OffsetY LengthUnit
	Width   LengthUnit
	Height  LengthUnit
	Wrap    TextWrap
	ZOrder  int32
	Margins Margins
	Caption *Caption
}

// TableCell is one grid cell of a Table.
type TableCell struct {
	Row, Column      uint16
	RowSpan, ColSpan uint16
	BorderFill       BorderFillId
	Paragraphs       []Paragraph
	Width, Height    LengthUnit
}

// TableZone is a merged region marker; zones always lie inside the
// declared grid.
type TableZone struct {
	StartRow, StartCol uint16
	EndRow, EndCol     uint16
	BorderFill         BorderFillId
}

// Table is the ControlTable payload.
type Table struct {
	Common     ObjectCommon
	Rows       uint16
	Columns    uint16
	Cells      []TableCell
	Zones      []TableZone
	RowHeights []LengthUnit
	BorderFill BorderFillId
}

// Picture is the ControlPicture payload.
type Picture struct {
	Common                                   ObjectCommon
	Image                                    BinaryDataId
	Effect                                   ImageEffect
	Fill                                     ImageFillMode
	CropLeft, CropRight, CropTop, CropBottom LengthUnit
}

// Equation is the ControlEquation payload (inline math expression).
type Equation struct {
	Common ObjectCommon
	Script string // the equation's script-language source text.
}

// Shape is the ControlShape payload (freeform/basic drawing shape).
type Shape struct {
	Common      ObjectCommon
	BorderFill  BorderFillId
	RotationDeg int16
}

// TextBox is the ControlTextBox payload: a text-bearing anchored frame.
type TextBox struct {
	Common     ObjectCommon
	BorderFill BorderFillId
	Paragraphs []Paragraph
}

// HeaderFooter is the shared payload of ControlHeader/ControlFooter.
type HeaderFooter struct {
	ApplyPages PageBorderPageType
	Paragraphs []Paragraph
}

// Note is the shared payload of ControlFootnote/ControlEndnote.
type Note struct {
	Number     uint32
	Paragraphs []Paragraph
}

// Hyperlink is the ControlHyperlink payload.
type Hyperlink struct {
	Target  string
	Display string
}

// Bookmark is the ControlBookmark payload.
type Bookmark struct {
	Name string
}

// AutoNumberKind enumerates what an AutoNumber control counts.
type AutoNumberKind uint8

const (
	AutoNumberPage AutoNumberKind = iota
	AutoNumberFootnote
	AutoNumberEndnote
	AutoNumberPicture
	AutoNumberTable
	AutoNumberEquation
)

// AutoNumber is the ControlAutoNumber payload. Position only exists in
// the XML format; when set and Kind is AutoNumberPage, the binary
// writer emits a dedicated page-number control instead of the generic
// auto-number record.
type AutoNumber struct {
	Kind     AutoNumberKind
	Format   NumberFormat
	Position *CaptionPosition
}

// NewNumber is the ControlNewNumber payload: resets a counter.
type NewNumber struct {
	Kind  AutoNumberKind
	Value uint32
}

// HiddenComment is the ControlHiddenComment payload.
type HiddenComment struct {
	Paragraphs []Paragraph
}

// Video is the ControlVideo payload.
type Video struct {
	Common ObjectCommon
	Source BinaryDataId
}

// Ole is the ControlOle payload (embedded OLE object).
type Ole struct {
	Common ObjectCommon
	Data   BinaryDataId
}

// Chart is the ControlChart payload.
type Chart struct {
	Common ObjectCommon
	Data   []byte
}

// FormObject is the ControlFormObject payload (form field controls).
type FormObject struct {
	Common ObjectCommon
	Name   string
	Kind   string
}

// TextArt is the ControlTextArt payload (decorative WordArt-like text).
type TextArt struct {
	Common ObjectCommon
	Text   string
}

// Memo is the ControlMemo payload. CreatedAt is carried verbatim as
// the source format stored it.
type Memo struct {
	Author     string
	CreatedAt  string
	Paragraphs []Paragraph
}

// IndexMark is the ControlIndexMark payload.
type IndexMark struct {
	Author    string
	CreatedAt string
	Key1      string
	Key2      string
}

// Unknown preserves an unrecognized control's raw bytes for
// best-effort passthrough.
type Unknown struct {
	TagID uint32
	Raw   []byte
}

// Control is a tagged variant over every anchorable/inline construct.
// Exactly the field matching Kind is populated.
type Control struct {
	Kind          ControlKind
	Table         *Table
	Picture       *Picture
	Equation      *Equation
	Shape         *Shape
	TextBox       *TextBox
	HeaderFooter  *HeaderFooter
	Note          *Note
	Hyperlink     *Hyperlink
	Bookmark      *Bookmark
	AutoNumber    *AutoNumber
	NewNumber     *NewNumber
	HiddenComment *HiddenComment
	Video         *Video
	Ole           *Ole
	Chart         *Chart
	FormObject    *FormObject
	TextArt       *TextArt
	Memo          *Memo
	IndexMark     *IndexMark
	Unknown       *Unknown
}
