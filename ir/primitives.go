// Package ir defines the language-neutral in-memory document model that
// both the BIN and XML codecs converge on. It is the single source of
// truth the converters reconcile every format-specific construct against.
package ir

import "github.com/tinywasm/hwpconv/warn"

// LengthUnit is a signed HWP length: 1 unit = 1/7200 inch. Zero is valid.
type LengthUnit int32

const (
	unitsPerInch = 7200
	mmPerInch    = 25.4
	ptPerInch    = 72
)

// Millimeters converts the length to millimeters.
func (l LengthUnit) Millimeters() float64 {
	return float64(l) / unitsPerInch * mmPerInch
}

// Points converts the length to points (1/72 inch).
func (l LengthUnit) Points() float64 {
	return float64(l) / unitsPerInch * ptPerInch
}

// FromMillimeters builds a LengthUnit from a millimeter value.
func FromMillimeters(mm float64) LengthUnit {
	return LengthUnit(mm / mmPerInch * unitsPerInch)
}

// FromPoints builds a LengthUnit from a point value.
func FromPoints(pt float64) LengthUnit {
	return LengthUnit(pt / ptPerInch * unitsPerInch)
}

// Percent is a signed fixed-point value with one fractional digit, i.e.
// the stored integer is tenths of a percent (e.g. 1005 == 100.5%).
type Percent int32

// NewPercent validates value against [min, max] (expressed in whole
// percent) and returns a range error if it falls outside.
func NewPercent(tenths, min, max int32) (Percent, error) {
	whole := tenths / 10
	if whole < min || whole > max {
		return 0, warn.InvariantViolation("percent out of range")
	}
	return Percent(tenths), nil
}

// Whole returns the truncated whole-percent value.
func (p Percent) Whole() int32 { return int32(p) / 10 }

// Color is an RGBA value, 8 bits per channel.
type Color struct {
	R, G, B, A uint8
}

// FromBINPacked decodes BIN's 0x00BBGGRR packing into a Color. Alpha is
// always opaque; BIN has no alpha channel.
func FromBINPacked(v uint32) Color {
	return Color{
		R: uint8(v),
		G: uint8(v >> 8),
		B: uint8(v >> 16),
		A: 0xFF,
	}
}

// ToBINPacked encodes the color as BIN's 0x00BBGGRR packing, dropping alpha.
func (c Color) ToBINPacked() uint32 {
	return uint32(c.R) | uint32(c.G)<<8 | uint32(c.B)<<16
}

// Hex returns the XML `#RRGGBB` form, dropping alpha.
func (c Color) Hex() string {
	const hexDigits = "0123456789ABCDEF"
	buf := make([]byte, 7)
	buf[0] = '#'
	put := func(i int, v uint8) {
		buf[i] = hexDigits[v>>4]
		buf[i+1] = hexDigits[v&0xF]
	}
	put(1, c.R)
	put(3, c.G)
	put(5, c.B)
	return string(buf)
}

// ParseHex parses the XML `#RRGGBB` form into a Color with opaque alpha.
func ParseHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, warn.MalformedInput("invalid color literal " + s)
	}
	nibble := func(b byte) (uint8, bool) {
		switch {
		case b >= '0' && b <= '9':
			return b - '0', true
		case b >= 'A' && b <= 'F':
			return b - 'A' + 10, true
		case b >= 'a' && b <= 'f':
			return b - 'a' + 10, true
		}
		return 0, false
	}
	byteAt := func(hi, lo byte) (uint8, bool) {
		h, ok1 := nibble(hi)
		l, ok2 := nibble(lo)
		return h<<4 | l, ok1 && ok2
	}
	r, ok1 := byteAt(s[1], s[2])
	g, ok2 := byteAt(s[3], s[4])
	b, ok3 := byteAt(s[5], s[6])
	if !ok1 || !ok2 || !ok3 {
		return Color{}, warn.MalformedInput("invalid color literal " + s)
	}
	return Color{R: r, G: g, B: b, A: 0xFF}, nil
}
