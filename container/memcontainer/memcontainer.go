// Package memcontainer provides in-memory test doubles for
// container.ContainerReader/Writer and container.ZipReader/Writer. It
// exists purely so bin/ and xmlfmt/ tests can exercise the codecs
// without a real OLE compound-container or ZIP implementation, both of
// which are external collaborators.
package memcontainer

import (
	"archive/zip"
	"bytes"
	"io"
	"sort"

	"github.com/tinywasm/hwpconv/warn"
)

// MemContainer is a named-stream map standing in for an OLE compound
// container. It implements both container.ContainerReader and
// container.ContainerWriter.
type MemContainer struct {
	streams map[string][]byte
	order   []string
	buffers map[string]*bytes.Buffer
}

// NewMemContainer returns an empty writable container.
func NewMemContainer() *MemContainer {
	return &MemContainer{streams: map[string][]byte{}, buffers: map[string]*bytes.Buffer{}}
}

// FromStreams builds a readable container from a name->bytes map in
// the given stream order.
func FromStreams(order []string, streams map[string][]byte) *MemContainer {
	return &MemContainer{streams: streams, order: order}
}

func (m *MemContainer) OpenStream(name string) (io.Reader, error) {
	data, ok := m.streams[name]
	if !ok {
		return nil, warn.MalformedInput("stream not found: " + name)
	}
	return bytes.NewReader(data), nil
}

func (m *MemContainer) Streams() ([]string, error) {
	return append([]string(nil), m.order...), nil
}

func (m *MemContainer) CreateStream(name string) (io.Writer, error) {
	buf := &bytes.Buffer{}
	m.buffers[name] = buf
	m.order = append(m.order, name)
	return buf, nil
}

func (m *MemContainer) Close() ([]byte, error) {
	if m.streams == nil {
		m.streams = map[string][]byte{}
	}
	for name, buf := range m.buffers {
		m.streams[name] = buf.Bytes()
	}
	// The encoded form is a trivial length-prefixed concatenation; only
	// this package's own OpenStream/FromStreams round-trips it, since
	// the real CFB framing is an external collaborator's concern.
	var out bytes.Buffer
	for _, name := range m.order {
		writeLV(&out, []byte(name))
		writeLV(&out, m.streams[name])
	}
	return out.Bytes(), nil
}

// Decode parses bytes produced by Close back into a readable MemContainer.
func Decode(data []byte) (*MemContainer, error) {
	streams := map[string][]byte{}
	var order []string
	r := bytes.NewReader(data)
	for r.Len() > 0 {
		name, err := readLV(r)
		if err != nil {
			return nil, err
		}
		payload, err := readLV(r)
		if err != nil {
			return nil, err
		}
		streams[string(name)] = payload
		order = append(order, string(name))
	}
	return FromStreams(order, streams), nil
}

func writeLV(buf *bytes.Buffer, data []byte) {
	n := uint32(len(data))
	buf.WriteByte(byte(n))
	buf.WriteByte(byte(n >> 8))
	buf.WriteByte(byte(n >> 16))
	buf.WriteByte(byte(n >> 24))
	buf.Write(data)
}

func readLV(r *bytes.Reader) ([]byte, error) {
	var hdr [4]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, warn.MalformedInput("truncated stream length")
	}
	n := uint32(hdr[0]) | uint32(hdr[1])<<8 | uint32(hdr[2])<<16 | uint32(hdr[3])<<24
	data := make([]byte, n)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, warn.MalformedInput("truncated stream payload")
	}
	return data, nil
}

// MemZip is an in-memory ZIP package implementing container.ZipReader
// and container.ZipWriter via the standard library's archive/zip. The
// real ZIP collaborator is injected by callers; this double exists
// only so tests can round-trip bytes.
type MemZip struct {
	parts map[string][]byte
	order []string
	zw    *zip.Writer
	buf   *bytes.Buffer
}

// NewMemZip returns an empty writable package.
func NewMemZip() *MemZip {
	buf := &bytes.Buffer{}
	return &MemZip{buf: buf, zw: zip.NewWriter(buf)}
}

func (m *MemZip) CreatePart(name string) (io.Writer, error) {
	return m.zw.Create(name)
}

func (m *MemZip) Close() ([]byte, error) {
	if err := m.zw.Close(); err != nil {
		return nil, warn.MalformedInput("zip finalize: " + err.Error())
	}
	return m.buf.Bytes(), nil
}

// DecodeZip parses bytes produced by Close (or any ZIP bytes) into a
// readable MemZip.
func DecodeZip(data []byte) (*MemZip, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, warn.MalformedInput("zip open: " + err.Error())
	}
	parts := map[string][]byte{}
	var order []string
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			return nil, warn.MalformedInput("zip part open: " + err.Error())
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, warn.MalformedInput("zip part read: " + err.Error())
		}
		parts[f.Name] = data
		order = append(order, f.Name)
	}
	sort.Strings(order)
	return &MemZip{parts: parts, order: order}, nil
}

func (m *MemZip) OpenPart(name string) (io.Reader, error) {
	data, ok := m.parts[name]
	if !ok {
		return nil, warn.MalformedInput("zip part not found: " + name)
	}
	return bytes.NewReader(data), nil
}

func (m *MemZip) Parts() ([]string, error) {
	return append([]string(nil), m.order...), nil
}
