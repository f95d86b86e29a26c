package xmlfmt

import (
	"bytes"
	"encoding/xml"
	"io"
	"sort"

	"github.com/tinywasm/hwpconv/warn"
)

// Element is a namespace-qualified XML element, reassembled from a
// pull-parser token stream the same way bin.Node reassembles a tree
// from a flat record stream: children nest by start/end token instead
// of by a level field.
type Element struct {
	NS       string
	Local    string
	Attrs    []xml.Attr
	Children []*Element
	Text     string
}

// Attr returns the value of the attribute with the given local name
// (any namespace), and whether it was present.
func (e *Element) Attr(local string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name.Local == local {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child with the given namespace+local name,
// and whether one was found.
func (e *Element) Child(ns, local string) (*Element, bool) {
	for _, c := range e.Children {
		if c.Local == local && (ns == "" || c.NS == ns) {
			return c, true
		}
	}
	return nil, false
}

// ChildrenOf returns every child with the given namespace+local name,
// preserving document order.
func (e *Element) ChildrenOf(ns, local string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Local == local && (ns == "" || c.NS == ns) {
			out = append(out, c)
		}
	}
	return out
}

// ParseElement decodes one well-formed XML document (a ZIP part) into
// an Element tree. Any prefix bound to a canonical URI is accepted;
// only the resolved namespace URI is retained on each node.
func ParseElement(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	var stack []*Element
	var root *Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, warn.MalformedInput("invalid XML: " + err.Error())
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{NS: t.Name.Space, Local: t.Name.Local, Attrs: t.Attr}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			} else {
				root = el
			}
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) == 0 {
				return nil, warn.MalformedInput("unbalanced XML end element")
			}
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			}
		}
	}
	if root == nil {
		return nil, warn.MalformedInput("empty XML document")
	}
	return root, nil
}

// Serialize renders an Element tree as canonical well-formed XML:
// UTF-8, no BOM, attributes alphabetized per element for deterministic
// output.
func Serialize(root *Element) []byte {
	var buf bytes.Buffer
	buf.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	writeElement(&buf, root, true)
	return buf.Bytes()
}

func writeElement(buf *bytes.Buffer, el *Element, declareNamespaces bool) {
	prefix := emitPrefix(el.NS)
	name := el.Local
	if prefix != "" {
		name = prefix + ":" + name
	}
	buf.WriteString("<" + name)

	if declareNamespaces {
		for _, ns := range nsPrefixes {
			buf.WriteString(" xmlns:" + ns.Prefix + `="` + escapeAttr(ns.URI) + `"`)
		}
	}

	attrs := append([]xml.Attr{}, el.Attrs...)
	sort.Slice(attrs, func(i, j int) bool { return attrs[i].Name.Local < attrs[j].Name.Local })
	for _, a := range attrs {
		buf.WriteString(" " + a.Name.Local + `="` + escapeAttr(a.Value) + `"`)
	}

	if len(el.Children) == 0 && el.Text == "" {
		buf.WriteString("/>")
		return
	}
	buf.WriteString(">")
	if el.Text != "" {
		buf.WriteString(escapeText(el.Text))
	}
	for _, c := range el.Children {
		writeElement(buf, c, false)
	}
	buf.WriteString("</" + name + ">")
}

func escapeAttr(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

func escapeText(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// NewElement constructs a writer-side element with the given namespace
// and local name.
func NewElement(ns, local string) *Element {
	return &Element{NS: ns, Local: local}
}

// SetAttr sets (or appends) an unqualified attribute.
func (e *Element) SetAttr(local, value string) {
	for i, a := range e.Attrs {
		if a.Name.Local == local {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, xml.Attr{Name: xml.Name{Local: local}, Value: value})
}

// AddChild appends a child element and returns it.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}
