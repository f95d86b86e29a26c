// Package binconv implements the binary format's converter half: it
// reconciles bin.Document (the structural wire model) against
// ir.Document (the canonical model), in both directions, depositing
// every soft loss into the shared warning channel.
package binconv

// Paragraph text on this wire is a flat UTF-16 code-unit stream; most
// code units are literal characters, but a closed set of low code
// points are reserved markers, each control occupying exactly one code
// unit. These constants name the reserved range instead of leaving
// magic numbers scattered through the codec.
const (
	charControl          uint16 = 2 // one ParagraphGroupControl occupies this slot, consumed in order.
	charFieldStart       uint16 = 3
	charFieldEnd         uint16 = 4
	charBookmarkStart    uint16 = 5
	charBookmarkEnd      uint16 = 6
	charComposeStart     uint16 = 7
	charComposeEnd       uint16 = 8
	charTab              uint16 = 9
	charLineBreak        uint16 = 10
	charDutmalStart      uint16 = 17
	charDutmalEnd        uint16 = 18
	charHyphen           uint16 = 24
	charNonBreakingSpace uint16 = 30
	charFixedWidthSpace  uint16 = 31
)
