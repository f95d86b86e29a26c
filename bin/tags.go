package bin

// Tag IDs for the records this module decodes structurally. The format
// defines a long tail of further tags; any tag outside this set is
// skipped with a CategoryUnknownTag warning during reading, which is
// the documented recovery path for the whole catalog.
const (
	// DocInfo stream.
	TagDocumentProperties uint16 = 0x010
	TagFontList           uint16 = 0x021
	TagCharShapeList      uint16 = 0x022
	TagTabDefList         uint16 = 0x023
	TagNumberingList      uint16 = 0x024
	TagBulletList         uint16 = 0x025
	TagParaShapeList      uint16 = 0x026
	TagStyleList          uint16 = 0x027
	TagBorderFillList     uint16 = 0x02C
	TagBinDataInfoList    uint16 = 0x02D

	// Section stream: layout records.
	TagSectionDef     uint16 = 0x02F
	TagPageDef        uint16 = 0x030
	TagFootnoteShape  uint16 = 0x031
	TagPageBorderFill uint16 = 0x032
	TagColumnDef      uint16 = 0x033

	// Section stream: paragraph group.
	TagParaHeader       uint16 = 0x042
	TagParaText         uint16 = 0x043
	TagParaCharShapeRef uint16 = 0x044
	TagParaLineSegment  uint16 = 0x045
	TagParaRangeTag     uint16 = 0x046

	// Section stream: control headers. Each carries a 4-byte reversed
	// control identifier in its payload's first 4 bytes;
	// TagControlHeader is the generic envelope, dispatched by that id.
	TagControlHeader uint16 = 0x047
	TagListHeader    uint16 = 0x048 // nested-paragraph container for text-bearing controls.

	// Control sub-records.
	TagTableBody      uint16 = 0x050
	TagTableCell      uint16 = 0x051
	TagShapeComponent uint16 = 0x052
	TagPicture        uint16 = 0x053
	TagHyperlinkField uint16 = 0x054
)

// ControlID is the four-byte reversed identifier embedded in a
// control-header payload.
type ControlID [4]byte

var (
	CtrlTable      = ControlID{' ', 't', 'b', 'l'}
	CtrlShape      = ControlID{' ', 'g', 's', 'o'}
	CtrlEquation   = ControlID{'d', 'e', 'q', 'e'}
	CtrlHeader     = ControlID{'h', 'e', 'a', 'd'}
	CtrlFooter     = ControlID{'f', 'o', 'o', 't'}
	CtrlFootnote   = ControlID{' ', ' ', 'n', 'f'}
	CtrlEndnote    = ControlID{' ', ' ', 'n', 'e'}
	CtrlTextBox    = ControlID{' ', 'k', 'l', 'h'}
	CtrlBookmark   = ControlID{'m', 'b', 'o', 'k'}
	CtrlAutoNumber = ControlID{'a', 't', 'n', 'o'}
	CtrlNewNumber  = ControlID{'n', 'w', 'n', 'o'}
	CtrlPageNumber = ControlID{'p', 'g', 'n', 'p'}
	CtrlHiddenCmt  = ControlID{'o', 'm', 'c', 't'}
	CtrlVideo      = ControlID{' ', 'v', 'i', 'd'}
	CtrlOle        = ControlID{' ', 'o', 'l', 'e'}
	CtrlChart      = ControlID{' ', 'c', 'h', 't'}
	CtrlFormObject = ControlID{'m', 'r', 'o', 'f'}
	CtrlTextArt    = ControlID{' ', 'o', 's', 'g'}
	CtrlHyperlink  = ControlID{'h', 'l', 'n', 'k'}
)

// FieldTag is the four-byte ASCII tag identifying a field control.
type FieldTag [4]byte

var (
	FieldDate           = FieldTag{'%', 'd', 'a', 't'}
	FieldTime           = FieldTag{'%', 't', 'i', 'm'}
	FieldFile           = FieldTag{'%', 'f', 'i', 'l'}
	FieldTitle          = FieldTag{'%', 't', 'i', 't'}
	FieldAuthor         = FieldTag{'%', 'a', 'u', 't'}
	FieldPage           = FieldTag{'%', 'p', 'n', ' '}
	FieldSummary        = FieldTag{'%', 's', 'm', 'r'}
	FieldCrossRef       = FieldTag{'%', 'x', 'r', 'f'}
	FieldHyperlink      = FieldTag{'%', 'h', 'l', 'k'}
	FieldMemo           = FieldTag{'%', 'm', 'e', 'm'}
	FieldFormula        = FieldTag{'%', 'f', 'r', 'm'}
	FieldClickHere      = FieldTag{'%', 'c', 'l', 'k'}
	FieldUserInfo       = FieldTag{'%', 'u', 's', 'r'}
	FieldRevSummary     = FieldTag{'%', 'p', 'r', 'v'}
	FieldMailMerge      = FieldTag{'%', 'm', 't', 'g'}
	FieldMailMergeRange = FieldTag{'%', 'm', 'm', 'r'}
	FieldTOC            = FieldTag{'%', 't', 'o', 'c'}
	FieldUnknown        = FieldTag{'%', 'u', 'n', 'k'}
)
