package warn_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tinywasm/hwpconv/warn"
)

func TestChannelPreservesFirstOccurrenceOrder(t *testing.T) {
	var ch warn.Channel
	ch.DataLoss("master pages")
	ch.UnknownTag(42)
	ch.EnumNarrowed("ShadowType", "BIN", "Discrete")

	got := ch.Warnings()
	assert.Len(t, got, 3)
	assert.Equal(t, warn.CategoryDataLoss, got[0].Category)
	assert.Equal(t, warn.CategoryUnknownTag, got[1].Category)
	assert.Equal(t, warn.CategoryEnumNarrowed, got[2].Category)
}

func TestChannelMergeAppendsInOrder(t *testing.T) {
	var a, b warn.Channel
	a.DataLoss("x")
	b.DataLoss("y")
	a.Merge(&b)
	assert.Len(t, a.Warnings(), 2)
	assert.Equal(t, "x", a.Warnings()[0].Feature)
	assert.Equal(t, "y", a.Warnings()[1].Feature)
}

func TestConversionErrorMessageIncludesPositionHint(t *testing.T) {
	err := warn.MalformedInputAt("bad tag", 128)
	assert.Contains(t, err.Error(), "MalformedInput")
	assert.Contains(t, err.Error(), "bad tag")
	assert.Contains(t, err.Error(), "128")
}

func TestUnresolvedReferenceIncludesKindAndId(t *testing.T) {
	err := warn.UnresolvedReference("Font", 7)
	assert.Contains(t, err.Error(), "Font")
	assert.Contains(t, err.Error(), "7")
}
