package xmlfmt_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/xmlfmt"
)

func TestSerializeAlphabetizesAttributes(t *testing.T) {
	el := xmlfmt.NewElement(xmlfmt.NSSection, "p")
	el.SetAttr("zeta", "1")
	el.SetAttr("alpha", "2")
	el.SetAttr("middle", "3")

	out := string(xmlfmt.Serialize(el))
	alphaIdx := bytes.Index([]byte(out), []byte(`alpha="2"`))
	middleIdx := bytes.Index([]byte(out), []byte(`middle="3"`))
	zetaIdx := bytes.Index([]byte(out), []byte(`zeta="1"`))
	assert.True(t, alphaIdx < middleIdx)
	assert.True(t, middleIdx < zetaIdx)
}

func TestSerializeEmptyElementIsSelfClosing(t *testing.T) {
	el := xmlfmt.NewElement(xmlfmt.NSCore, "align")
	el.SetAttr("horizontal", "JUSTIFY")
	out := string(xmlfmt.Serialize(el))
	assert.Contains(t, out, `<hc:align`)
	assert.Contains(t, out, `horizontal="JUSTIFY"/>`)
}

func TestParseElementAcceptsAnyPrefixBoundToCanonicalURI(t *testing.T) {
	doc := `<?xml version="1.0"?><root xmlns:foo="` + xmlfmt.NSSection + `"><foo:p foo:id="1"/></root>`
	root, err := xmlfmt.ParseElement(bytes.NewBufferString(doc))
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, xmlfmt.NSSection, root.Children[0].NS)
	assert.Equal(t, "p", root.Children[0].Local)
	v, ok := root.Children[0].Attr("id")
	require.True(t, ok)
	assert.Equal(t, "1", v)
}

func TestParseElementRejectsUnbalancedXML(t *testing.T) {
	_, err := xmlfmt.ParseElement(bytes.NewBufferString(`<root><a></root>`))
	require.Error(t, err)
}

func TestParseThenSerializeRoundTripsChildOrderAndText(t *testing.T) {
	root := xmlfmt.NewElement(xmlfmt.NSSection, "p")
	child := root.AddChild(xmlfmt.NewElement(xmlfmt.NSSection, "run"))
	child.Text = "hello"

	out := xmlfmt.Serialize(root)
	parsed, err := xmlfmt.ParseElement(bytes.NewReader(out))
	require.NoError(t, err)
	require.Len(t, parsed.Children, 1)
	assert.Equal(t, "hello", parsed.Children[0].Text)
}
