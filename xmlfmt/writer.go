package xmlfmt

import (
	"github.com/tinywasm/hwpconv/container"
)

// WriterConfig is the writer's configuration; it currently has no fields.
type WriterConfig struct{}

func encodeVersion(v VersionInfo) *Element {
	e := NewElement("", "version")
	e.SetAttr("target", v.TargetApplication)
	e.SetAttr("major", v.Major)
	e.SetAttr("minor", v.Minor)
	e.SetAttr("micro", v.Micro)
	if v.BuildNumber != "" {
		e.SetAttr("buildNumber", v.BuildNumber)
	}
	return e
}

// Write emits a full document to a ZIP package, producing
// byte-identical output across repeated calls on an unchanged
// Document.
func Write(zw container.ZipWriter, doc *Document, cfg WriterConfig) ([]byte, error) {
	vStream, err := zw.CreatePart("version.xml")
	if err != nil {
		return nil, err
	}
	if _, err := vStream.Write(Serialize(encodeVersion(doc.Version))); err != nil {
		return nil, err
	}

	headStream, err := zw.CreatePart("Contents/header.xml")
	if err != nil {
		return nil, err
	}
	if _, err := headStream.Write(Serialize(encodeHead(doc.Head))); err != nil {
		return nil, err
	}

	for i, sec := range doc.Sections {
		partName := "Contents/section" + itoa(i) + ".xml"
		stream, err := zw.CreatePart(partName)
		if err != nil {
			return nil, err
		}
		if _, err := stream.Write(Serialize(encodeSection(sec))); err != nil {
			return nil, err
		}
	}

	for _, ref := range collectBinItemRefs(doc) {
		data, ok := doc.BinaryData[ref]
		if !ok {
			continue
		}
		stream, err := zw.CreatePart("BinData/" + ref)
		if err != nil {
			return nil, err
		}
		if _, err := stream.Write(data); err != nil {
			return nil, err
		}
	}
	return zw.Close()
}
