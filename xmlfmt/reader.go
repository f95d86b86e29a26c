package xmlfmt

import (
	"io"
	"sort"

	"github.com/tinywasm/hwpconv/container"
	"github.com/tinywasm/hwpconv/warn"
)

// ReaderConfig carries XML reader strictness knobs, following the same
// Config-struct idiom as bin.ReaderConfig.
type ReaderConfig struct {
	// MaxSections bounds how many numbered section parts are probed;
	// zero falls back to 64.
	MaxSections int
}

func (c ReaderConfig) maxSections() int {
	if c.MaxSections == 0 {
		return 64
	}
	return c.MaxSections
}

func decodeVersion(root *Element) (VersionInfo, error) {
	var v VersionInfo
	var err error
	if v.TargetApplication, err = requireAttr(root, "target"); err != nil {
		return v, err
	}
	if v.Major, err = requireAttr(root, "major"); err != nil {
		return v, err
	}
	if v.Minor, err = requireAttr(root, "minor"); err != nil {
		return v, err
	}
	if v.Micro, err = requireAttr(root, "micro"); err != nil {
		return v, err
	}
	v.BuildNumber = attrStr(root, "buildNumber")
	return v, nil
}

// Read decodes a full document out of a ZIP package: version.xml,
// Contents/header.xml, then each Contents/section{N}.xml in order.
func Read(zr container.ZipReader, cfg ReaderConfig) (*Document, *warn.Channel, error) {
	warnings := &warn.Channel{}
	doc := &Document{}

	vStream, err := zr.OpenPart("version.xml")
	if err != nil {
		return nil, warnings, err
	}
	vRoot, err := ParseElement(vStream)
	if err != nil {
		return nil, warnings, err
	}
	doc.Version, err = decodeVersion(vRoot)
	if err != nil {
		return nil, warnings, err
	}

	headStream, err := zr.OpenPart("Contents/header.xml")
	if err != nil {
		return nil, warnings, err
	}
	headRoot, err := ParseElement(headStream)
	if err != nil {
		return nil, warnings, err
	}
	doc.Head, err = decodeHead(headRoot, warnings)
	if err != nil {
		return nil, warnings, err
	}

	for i := 0; i < cfg.maxSections(); i++ {
		partName := "Contents/section" + itoa(i) + ".xml"
		stream, err := zr.OpenPart(partName)
		if err != nil {
			break
		}
		secRoot, err := ParseElement(stream)
		if err != nil {
			return nil, warnings, err
		}
		sec, err := decodeSection(secRoot, warnings)
		if err != nil {
			return nil, warnings, err
		}
		doc.Sections = append(doc.Sections, sec)
	}
	if len(doc.Sections) == 0 {
		return nil, warnings, warn.MalformedInput("no section parts found")
	}

	refs := collectBinItemRefs(doc)
	if len(refs) > 0 {
		doc.BinaryData = make(map[string][]byte, len(refs))
		for _, ref := range refs {
			stream, err := zr.OpenPart("BinData/" + ref)
			if err != nil {
				warnings.FallbackApplied("binary data part missing for " + ref)
				continue
			}
			data, err := io.ReadAll(stream)
			if err != nil {
				return nil, warnings, err
			}
			doc.BinaryData[ref] = data
		}
	}
	return doc, warnings, nil
}

// collectBinItemRefs gathers every binItemRef a document references
// (embedded fonts, pictures) so the reader knows which BinData/ parts
// to fetch without the package listing them anywhere else. The result
// is sorted so fetch and emission order stay deterministic.
func collectBinItemRefs(doc *Document) []string {
	refs := make(map[string]struct{})
	for _, f := range doc.Head.Fonts {
		if f.BinItemRef != "" {
			refs[f.BinItemRef] = struct{}{}
		}
	}
	for _, sec := range doc.Sections {
		for _, p := range sec.Paragraphs {
			collectBinItemRefsFromParagraph(p, refs)
		}
	}
	out := make([]string, 0, len(refs))
	for ref := range refs {
		out = append(out, ref)
	}
	sort.Strings(out)
	return out
}

func collectBinItemRefsFromParagraph(p ParagraphXML, refs map[string]struct{}) {
	for _, r := range p.Runs {
		for _, c := range r.Contents {
			if c.Control == nil {
				continue
			}
			switch {
			case c.Control.Picture != nil && c.Control.Picture.BinItemRef != "":
				refs[c.Control.Picture.BinItemRef] = struct{}{}
			case c.Control.Table != nil:
				for _, cell := range c.Control.Table.Cells {
					for _, cp := range cell.Paragraphs {
						collectBinItemRefsFromParagraph(cp, refs)
					}
				}
			case c.Control.Generic != nil:
				for _, gp := range c.Control.Generic.Paragraphs {
					collectBinItemRefsFromParagraph(gp, refs)
				}
			}
		}
	}
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	n := i
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}
