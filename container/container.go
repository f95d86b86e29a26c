// Package container defines the injected collaborator interfaces the
// binary and XML codecs consume rather than own. Concrete
// OLE-compound-container and ZIP implementations are external
// collaborators; only in-memory test doubles live under memcontainer.
package container

import "io"

// ContainerReader exposes the named streams of an OLE compound
// container: the document-info stream, section streams, and the
// binary-data directory.
type ContainerReader interface {
	// OpenStream opens a named stream for sequential reading. Readers
	// are single-pass: no seeking.
	OpenStream(name string) (io.Reader, error)
	// Streams lists stream names available, in container order.
	Streams() ([]string, error)
}

// ContainerWriter builds an OLE compound container stream-by-stream.
type ContainerWriter interface {
	// CreateStream opens a named stream for sequential writing.
	CreateStream(name string) (io.Writer, error)
	// Close finalizes the container and returns its encoded bytes.
	Close() ([]byte, error)
}

// ZipReader exposes the named parts of a ZIP package: the version
// part, header part, section parts, and BinData/ parts.
type ZipReader interface {
	OpenPart(name string) (io.Reader, error)
	Parts() ([]string, error)
}

// ZipWriter builds a ZIP package part-by-part.
type ZipWriter interface {
	CreatePart(name string) (io.Writer, error)
	Close() ([]byte, error)
}
