package bin

import (
	"encoding/binary"

	"github.com/tinywasm/hwpconv/warn"
)

// cursor is a small bounds-checked reader over one record's payload.
// Every primitive is little-endian on this wire.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(data []byte) *cursor { return &cursor{data: data} }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) need(n int) error {
	if c.remaining() < n {
		return warn.MalformedInput("record payload truncated")
	}
	return nil
}

func (c *cursor) u8() (uint8, error) {
	if err := c.need(1); err != nil {
		return 0, err
	}
	v := c.data[c.pos]
	c.pos++
	return v, nil
}

func (c *cursor) i8() (int8, error) {
	v, err := c.u8()
	return int8(v), err
}

func (c *cursor) u16() (uint16, error) {
	if err := c.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

func (c *cursor) u32() (uint32, error) {
	if err := c.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) i32() (int32, error) {
	v, err := c.u32()
	return int32(v), err
}

func (c *cursor) bytes(n int) ([]byte, error) {
	if err := c.need(n); err != nil {
		return nil, err
	}
	v := c.data[c.pos : c.pos+n]
	c.pos += n
	return v, nil
}

func (c *cursor) skip(n int) error {
	if err := c.need(n); err != nil {
		return err
	}
	c.pos += n
	return nil
}

// utf16String reads a UTF-16LE string prefixed by its 16-bit code-unit
// count, the string form used throughout the record streams.
func (c *cursor) utf16String() (string, error) {
	n, err := c.u16()
	if err != nil {
		return "", err
	}
	units := make([]uint16, n)
	for i := range units {
		u, err := c.u16()
		if err != nil {
			return "", err
		}
		units[i] = u
	}
	return utf16Decode(units), nil
}

func utf16Decode(units []uint16) string {
	runes := make([]rune, 0, len(units))
	for i := 0; i < len(units); i++ {
		u := units[i]
		if u >= 0xD800 && u <= 0xDBFF && i+1 < len(units) {
			lo := units[i+1]
			if lo >= 0xDC00 && lo <= 0xDFFF {
				r := (rune(u-0xD800)<<10 | rune(lo-0xDC00)) + 0x10000
				runes = append(runes, r)
				i++
				continue
			}
		}
		runes = append(runes, rune(u))
	}
	return string(runes)
}

func utf16Encode(s string) []uint16 {
	var units []uint16
	for _, r := range s {
		if r > 0xFFFF {
			r -= 0x10000
			units = append(units, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
		} else {
			units = append(units, uint16(r))
		}
	}
	return units
}

// writer is a small append-only byte builder mirroring cursor's reads.
type writer struct {
	buf []byte
}

func (w *writer) u8(v uint8)   { w.buf = append(w.buf, v) }
func (w *writer) i8(v int8)    { w.u8(uint8(v)) }
func (w *writer) u16(v uint16) { w.buf = append(w.buf, byte(v), byte(v>>8)) }
func (w *writer) u32(v uint32) {
	w.buf = append(w.buf, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
}
func (w *writer) i32(v int32)    { w.u32(uint32(v)) }
func (w *writer) bytes(b []byte) { w.buf = append(w.buf, b...) }

func (w *writer) utf16String(s string) {
	units := utf16Encode(s)
	w.u16(uint16(len(units)))
	for _, u := range units {
		w.u16(u)
	}
}

// DecodeUTF16String reads a length-prefixed UTF-16LE string out of a
// raw control payload, for converters that need to peel a name or
// parameter out of a control whose envelope this package preserved
// verbatim (e.g. a bookmark control's name).
func DecodeUTF16String(data []byte) (string, error) {
	return newCursor(data).utf16String()
}

// EncodeUTF16String is the inverse of DecodeUTF16String.
func EncodeUTF16String(s string) []byte {
	w := &writer{}
	w.utf16String(s)
	return w.buf
}
