// Package hwpconv is the public surface of the bidirectional document
// engine: four entry points composing the binary and XML codecs (bin,
// xmlfmt) with their converters (convert/binconv, convert/xmlconv)
// over the format-neutral document model (ir).
package hwpconv

import (
	"github.com/tinywasm/hwpconv/bin"
	"github.com/tinywasm/hwpconv/container"
	"github.com/tinywasm/hwpconv/convert"
	"github.com/tinywasm/hwpconv/convert/binconv"
	"github.com/tinywasm/hwpconv/convert/xmlconv"
	"github.com/tinywasm/hwpconv/ir"
	"github.com/tinywasm/hwpconv/xmlfmt"
)

// ReadBIN parses a binary-format compound container into the document
// model, returning every soft-failure warning accumulated along the
// way. The container itself is supplied by the caller as a
// ContainerReader; this package never owns the OLE layer.
func ReadBIN(cr container.ContainerReader, cfg bin.ReaderConfig) (convert.Result[*ir.Document], error) {
	doc, warnings, err := binconv.ReadDocument(cr, cfg)
	if err != nil {
		return convert.Result[*ir.Document]{}, err
	}
	return convert.NewResult(doc, warnings), nil
}

// WriteBIN serializes a document as binary-format bytes through the
// supplied ContainerWriter. It fails hard on a broken reference or
// invariant violation in doc; every other loss is a warning.
func WriteBIN(doc *ir.Document, cw container.ContainerWriter, cfg bin.WriterConfig) (convert.Result[[]byte], error) {
	out, warnings, err := binconv.WriteDocument(cw, doc, cfg)
	if err != nil {
		return convert.Result[[]byte]{}, err
	}
	return convert.NewResult(out, warnings), nil
}

// ReadXML parses an HWPX ZIP package into the document model.
func ReadXML(zr container.ZipReader, cfg xmlfmt.ReaderConfig) (convert.Result[*ir.Document], error) {
	doc, warnings, err := xmlconv.ReadDocument(zr, cfg)
	if err != nil {
		return convert.Result[*ir.Document]{}, err
	}
	return convert.NewResult(doc, warnings), nil
}

// WriteXML serializes an IR document as an XML (HWPX) ZIP package
// through the supplied ZipWriter.
func WriteXML(doc *ir.Document, zw container.ZipWriter, cfg xmlfmt.WriterConfig) (convert.Result[[]byte], error) {
	out, warnings, err := xmlconv.WriteDocument(zw, doc, cfg)
	if err != nil {
		return convert.Result[[]byte]{}, err
	}
	return convert.NewResult(out, warnings), nil
}
