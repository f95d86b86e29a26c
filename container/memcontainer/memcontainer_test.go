package memcontainer_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/container/memcontainer"
)

func TestMemContainerRoundTripsStreamsInOrder(t *testing.T) {
	cw := memcontainer.NewMemContainer()
	w1, err := cw.CreateStream("DocInfo")
	require.NoError(t, err)
	w1.Write([]byte("docinfo-bytes"))
	w2, err := cw.CreateStream("BodyText/Section0")
	require.NoError(t, err)
	w2.Write([]byte("section-bytes"))

	encoded, err := cw.Close()
	require.NoError(t, err)

	cr, err := memcontainer.Decode(encoded)
	require.NoError(t, err)

	names, err := cr.Streams()
	require.NoError(t, err)
	assert.Equal(t, []string{"DocInfo", "BodyText/Section0"}, names)

	r, err := cr.OpenStream("DocInfo")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "docinfo-bytes", string(data))
}

func TestMemContainerOpenStreamMissingNameErrors(t *testing.T) {
	cr := memcontainer.FromStreams(nil, map[string][]byte{})
	_, err := cr.OpenStream("nope")
	require.Error(t, err)
}

func TestMemZipRoundTripsPartsViaStandardZip(t *testing.T) {
	zw := memcontainer.NewMemZip()
	w, err := zw.CreatePart("Contents/header.xml")
	require.NoError(t, err)
	w.Write([]byte("<hh:head/>"))

	encoded, err := zw.Close()
	require.NoError(t, err)

	zr, err := memcontainer.DecodeZip(encoded)
	require.NoError(t, err)

	parts, err := zr.Parts()
	require.NoError(t, err)
	assert.Contains(t, parts, "Contents/header.xml")

	r, err := zr.OpenPart("Contents/header.xml")
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "<hh:head/>", string(data))
}

func TestMemZipOpenPartMissingNameErrors(t *testing.T) {
	zw := memcontainer.NewMemZip()
	encoded, err := zw.Close()
	require.NoError(t, err)
	zr, err := memcontainer.DecodeZip(encoded)
	require.NoError(t, err)
	_, err = zr.OpenPart("missing")
	require.Error(t, err)
}
