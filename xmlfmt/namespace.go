// Package xmlfmt implements the HWPX codec: a typed-element-binder
// reader and an inverse writer over the ZIP package's XML parts. The
// reader is built on encoding/xml's pull-token stream; the writer
// serializes canonical UTF-8 with alphabetized attributes so identical
// documents produce identical bytes.
package xmlfmt

// Canonical namespace URIs.
const (
	NSHead    = "http://www.hancom.co.kr/hwpml/2011/head"
	NSSection = "http://www.hancom.co.kr/hwpml/2011/section"
	NSCore    = "http://www.hancom.co.kr/hwpml/2011/core"
)

// emitPrefix is the stable prefix the writer binds per namespace.
func emitPrefix(ns string) string {
	switch ns {
	case NSHead:
		return "hh"
	case NSSection:
		return "hp"
	case NSCore:
		return "hc"
	default:
		return ""
	}
}

// nsPrefixes lists every namespace the writer declares, in document order.
var nsPrefixes = []struct{ URI, Prefix string }{
	{NSHead, "hh"},
	{NSSection, "hp"},
	{NSCore, "hc"},
}
