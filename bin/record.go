// Package bin implements the legacy HWP binary codec: a record-stream
// tokenizer, bit-packed field codecs, and a structural reader/writer
// pair over the streams of an OLE compound container. The container
// itself is an injected collaborator (container.ContainerReader and
// container.ContainerWriter); this package only consumes its streams.
package bin

import (
	"encoding/binary"
	"io"

	"github.com/tinywasm/hwpconv/warn"
)

// overflowSize is the size-field sentinel signaling that the real
// payload length follows the header as a separate 32-bit little-endian
// integer.
const overflowSize = 0xFFF

// maxLevelSkip is how far a record's Level may exceed its predecessor's
// before the stream is treated as corrupt. A well-formed writer only
// ever descends one level at a time.
const maxLevelSkip = 1

// Record is one wire record: a 32-bit header packed as
// tag_id:10 | level:10 | size:12, followed by payload bytes, with an
// extra 32-bit length when the declared size is the overflow sentinel.
type Record struct {
	TagID   uint16
	Level   uint16
	Payload []byte
}

// ReadRecord decodes one record from r. A record whose declared size
// exceeds what the stream can supply is a hard error.
func ReadRecord(r io.Reader, byteOffset int64) (Record, int64, error) {
	var hdr [4]byte
	n, err := io.ReadFull(r, hdr[:])
	if err == io.EOF && n == 0 {
		return Record{}, byteOffset, io.EOF
	}
	if err != nil {
		return Record{}, byteOffset, warn.MalformedInputAt("truncated record header", byteOffset)
	}
	packed := binary.LittleEndian.Uint32(hdr[:])
	tagID := uint16(packed & 0x3FF)
	level := uint16((packed >> 10) & 0x3FF)
	size := uint32((packed >> 20) & 0xFFF)
	consumed := int64(4)

	if size == overflowSize {
		var ext [4]byte
		if _, err := io.ReadFull(r, ext[:]); err != nil {
			return Record{}, byteOffset, warn.MalformedInputAt("truncated overflow length", byteOffset+consumed)
		}
		size = binary.LittleEndian.Uint32(ext[:])
		consumed += 4
	}

	payload := make([]byte, size)
	if size > 0 {
		if _, err := io.ReadFull(r, payload); err != nil {
			return Record{}, byteOffset, warn.MalformedInputAt("record payload exceeds stream remainder", byteOffset+consumed)
		}
	}
	consumed += int64(size)
	return Record{TagID: tagID, Level: level, Payload: payload}, byteOffset + consumed, nil
}

// WriteRecord encodes one record to w. The overflow form is emitted iff
// the payload exceeds 4094 bytes, and exactly the declared number of
// payload bytes follows the header.
func WriteRecord(w io.Writer, rec Record) error {
	size := len(rec.Payload)
	declared := uint32(size)
	overflow := size > 4094
	if overflow {
		declared = overflowSize
	}

	packed := uint32(rec.TagID&0x3FF) | uint32(rec.Level&0x3FF)<<10 | (declared&0xFFF)<<20
	var hdr [4]byte
	binary.LittleEndian.PutUint32(hdr[:], packed)
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if overflow {
		var ext [4]byte
		binary.LittleEndian.PutUint32(ext[:], uint32(size))
		if _, err := w.Write(ext[:]); err != nil {
			return err
		}
	}
	if size > 0 {
		if _, err := w.Write(rec.Payload); err != nil {
			return err
		}
	}
	return nil
}

// Node is one record in the tree a level-stack walk reconstructs from a
// flat record stream. Record.Level expresses parent/child nesting on
// the wire; in memory the nesting is explicit.
type Node struct {
	Record   Record
	Children []*Node
}

// ReadTree decodes every record in r and reassembles the parent/child
// tree implied by Record.Level. A level jumping more than maxLevelSkip
// above its predecessor corrupts the level stack and is a hard error.
func ReadTree(r io.Reader) ([]*Node, error) {
	var roots []*Node
	var stack []*Node // stack[i] is the current node at level i.
	var offset int64

	for {
		rec, next, err := ReadRecord(r, offset)
		offset = next
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		node := &Node{Record: rec}

		level := int(rec.Level)
		if level > len(stack) {
			return nil, warn.MalformedInputAt("level stack corruption: level skipped ahead", offset)
		}
		stack = stack[:level]
		if level == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[level-1]
			parent.Children = append(parent.Children, node)
		}
		stack = append(stack, node)
	}
	return roots, nil
}

// WriteTree flattens a record tree back into wire order: each node is
// emitted before its children, depth-first, preserving Level as written.
func WriteTree(w io.Writer, roots []*Node) error {
	var walk func(n *Node) error
	walk = func(n *Node) error {
		if err := WriteRecord(w, n.Record); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, r := range roots {
		if err := walk(r); err != nil {
			return err
		}
	}
	return nil
}
