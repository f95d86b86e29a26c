package ir

// RangeTagKind enumerates the annotation kinds a RangeTag can carry.
type RangeTagKind uint8

const (
	RangeBookmark RangeTagKind = iota
	RangeHyperlink
	RangeTrackChangeInsert
	RangeTrackChangeDelete
	RangeHighlight
	RangeOther
)

// TrackChangeInfo is attached to track-change RangeTags. Timestamp is
// carried verbatim as the source format stored it; neither codec
// interprets it.
type TrackChangeInfo struct {
	Author    string
	Timestamp string
}

// RangeTag is a semi-open [Start, End) interval over a paragraph's
// UTF-16 code-unit positions carrying a typed annotation.
type RangeTag struct {
	Start, End  uint32
	Kind        RangeTagKind
	OtherTag    byte // meaningful only when Kind == RangeOther.
	Data        *string
	TrackChange *TrackChangeInfo
}

// FieldStart marks the beginning of a field span, e.g. a hyperlink
// folded out of a hyperlink control when crossing formats.
type FieldStart struct {
	ID    uint32
	Kind  FieldKind
	Param string // e.g. the hyperlink URL.
}

// FieldKind enumerates the field-span kinds the converters fold
// controls into and back; the binary codec maps its four-byte ASCII
// field tags onto this set.
type FieldKind uint8

const (
	FieldUnknown FieldKind = iota
	FieldHyperlink
	FieldDate
	FieldTime
	FieldFile
	FieldTitle
	FieldAuthor
	FieldPageNumber
	FieldSummary
	FieldCrossRef
	FieldMemo
	FieldFormula
	FieldClickHere
	FieldUserInfo
	FieldRevisionSummary
	FieldMailMerge
	FieldTOC
)

// FieldEnd closes the field span opened by the FieldStart of the same
// ID: exactly one match, later in the same sequence.
type FieldEnd struct {
	ID uint32
}

// RunContentKind discriminates the RunContent tagged union.
type RunContentKind uint8

const (
	ContentText RunContentKind = iota
	ContentTab
	ContentLineBreak
	ContentHyphen
	ContentNonBreakingSpace
	ContentFixedWidthSpace
	ContentControl
	ContentFieldStart
	ContentFieldEnd
	ContentBookmarkStart
	ContentBookmarkEnd
	ContentCompose
	ContentDutmal
)

// ComposeContent overlaps several characters into one glyph cell.
type ComposeContent struct {
	Letters []rune
}

// DutmalContent is a ruby-like main/sub character annotation.
type DutmalContent struct {
	Main string
	Sub  string
}

// TabContent describes an inline tab character's rendering.
type TabContent struct {
	Width  LengthUnit
	Leader TabLeader
	Type   TabType
}

// RunContent is one element of a Run's content sequence. Exactly the
// field matching Kind is populated.
type RunContent struct {
	Kind         RunContentKind
	Text         string
	Tab          TabContent
	Control      *Control
	FieldStart   *FieldStart
	FieldEnd     *FieldEnd
	BookmarkName string
	Compose      *ComposeContent
	Dutmal       *DutmalContent
}

// UTF16Len returns the code-unit length this content contributes to
// its paragraph's declared character count: text counts its encoded
// length; every single-character control/special counts 1; Compose
// counts its composed text's encoded length; Dutmal counts main+sub.
func (c RunContent) UTF16Len() int {
	switch c.Kind {
	case ContentText:
		return utf16Len(c.Text)
	case ContentCompose:
		if c.Compose == nil {
			return 0
		}
		n := 0
		for _, r := range c.Compose.Letters {
			if r > 0xFFFF {
				n += 2
			} else {
				n++
			}
		}
		return n
	case ContentDutmal:
		if c.Dutmal == nil {
			return 0
		}
		return utf16Len(c.Dutmal.Main) + utf16Len(c.Dutmal.Sub)
	default:
		return 1
	}
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if r > 0xFFFF {
			n += 2
		} else {
			n++
		}
	}
	return n
}

// Run is a styling unit: a CharShape reference plus an ordered content
// sequence.
type Run struct {
	CharShape *CharShapeId
	Content   []RunContent
}

// CharShapeRef is a (position, char_shape_id) pair describing
// character styling inside a paragraph the way the binary format
// expresses it. The paragraph carries the precomputed array so binary
// round-trips and validation can both use it directly.
type CharShapeRef struct {
	Position  uint32
	CharShape CharShapeId
}

// LineSegment is one precomputed rendering line, optional on a Paragraph.
type LineSegment struct {
	StartPosition uint32
	Height        LengthUnit
	BaselineGap   LengthUnit
}

// Paragraph is one entry of Section.Paragraphs.
type Paragraph struct {
	ParaShape     ParaShapeId
	Style         StyleId
	InstanceID    uint32
	Break         BreakType
	Runs          []Run
	CharShapeRefs []CharShapeRef
	LineSegments  []LineSegment
	RangeTags     []RangeTag
}

// UTF16Length returns the paragraph's total code-unit length across
// all runs' content.
func (p *Paragraph) UTF16Length() int {
	n := 0
	for _, r := range p.Runs {
		for _, c := range r.Content {
			n += c.UTF16Len()
		}
	}
	return n
}

// DeclaredCharCount is the binary wire character count: paragraph
// UTF-16 length plus one paragraph terminator.
func (p *Paragraph) DeclaredCharCount() int {
	return p.UTF16Length() + 1
}
