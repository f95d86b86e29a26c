package ir

import "strconv"

// FontId is an opaque, non-negative reference into StyleStore.Fonts.
type FontId int32

// CharShapeId is an opaque, non-negative reference into StyleStore.CharShapes.
type CharShapeId int32

// ParaShapeId is an opaque, non-negative reference into StyleStore.ParaShapes.
type ParaShapeId int32

// StyleId is an opaque, non-negative reference into StyleStore.Styles.
type StyleId int32

// BorderFillId is an opaque, non-negative reference into StyleStore.BorderFills.
type BorderFillId int32

// TabDefId is an opaque, non-negative reference into StyleStore.TabDefs.
type TabDefId int32

// NumberingId is an opaque, non-negative reference into StyleStore.Numberings.
type NumberingId int32

// BulletId is an opaque, non-negative reference into StyleStore.Bullets.
type BulletId int32

// BinaryDataId is an opaque, non-negative reference into Document.BinaryData.
// BIN's `BIN{XXXX}` textual alias resolves to the same integer domain.
type BinaryDataId int32

// ParseBINBinaryDataId parses BIN's "BIN0003"-shaped alias into its
// integer id. The four hex digits following "BIN" are the 16-bit id.
func ParseBINBinaryDataId(alias string) (BinaryDataId, bool) {
	const prefix = "BIN"
	if len(alias) != len(prefix)+4 || alias[:len(prefix)] != prefix {
		return 0, false
	}
	v, err := strconv.ParseUint(alias[len(prefix):], 16, 16)
	if err != nil {
		return 0, false
	}
	return BinaryDataId(v), true
}

// BINAlias renders the id in BIN's "BIN{XXXX}" textual alias form.
func (id BinaryDataId) BINAlias() string {
	const hexDigits = "0123456789ABCDEF"
	v := uint16(id)
	buf := [7]byte{'B', 'I', 'N', 0, 0, 0, 0}
	for i := 3; i >= 0; i-- {
		buf[3+i] = hexDigits[v&0xF]
		v >>= 4
	}
	return string(buf[:])
}
