package bin_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinywasm/hwpconv/bin"
)

func TestRecordRoundTripsSmallPayload(t *testing.T) {
	rec := bin.Record{TagID: 42, Level: 0, Payload: []byte{1, 2, 3, 4}}
	var buf bytes.Buffer
	require.NoError(t, bin.WriteRecord(&buf, rec))

	got, _, err := bin.ReadRecord(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecordOverflowFormRoundTrips(t *testing.T) {
	payload := make([]byte, 5000)
	for i := range payload {
		payload[i] = byte(i)
	}
	rec := bin.Record{TagID: 7, Level: 2, Payload: payload}

	var buf bytes.Buffer
	require.NoError(t, bin.WriteRecord(&buf, rec))
	// Header declares the 0xFFF sentinel plus a 4-byte overflow length:
	// 4 (header) + 4 (overflow) + len(payload).
	assert.Equal(t, 8+len(payload), buf.Len())

	got, _, err := bin.ReadRecord(&buf, 0)
	require.NoError(t, err)
	assert.Equal(t, rec, got)
}

func TestRecordExactly4094BytesDoesNotOverflow(t *testing.T) {
	rec := bin.Record{TagID: 1, Level: 0, Payload: make([]byte, 4094)}
	var buf bytes.Buffer
	require.NoError(t, bin.WriteRecord(&buf, rec))
	assert.Equal(t, 4+4094, buf.Len())
}

func TestReadRecordRejectsTruncatedPayload(t *testing.T) {
	// Header declares a larger payload than actually follows.
	var buf bytes.Buffer
	rec := bin.Record{TagID: 1, Level: 0, Payload: []byte{1, 2, 3, 4, 5, 6}}
	require.NoError(t, bin.WriteRecord(&buf, rec))
	truncated := buf.Bytes()[:len(buf.Bytes())-3]

	_, _, err := bin.ReadRecord(bytes.NewReader(truncated), 0)
	require.Error(t, err)
}

func TestTreeRoundTripsNesting(t *testing.T) {
	roots := []*bin.Node{
		{
			Record: bin.Record{TagID: 1, Level: 0, Payload: []byte("root")},
			Children: []*bin.Node{
				{Record: bin.Record{TagID: 2, Level: 1, Payload: []byte("child-a")}},
				{
					Record: bin.Record{TagID: 3, Level: 1, Payload: []byte("child-b")},
					Children: []*bin.Node{
						{Record: bin.Record{TagID: 4, Level: 2, Payload: []byte("grandchild")}},
					},
				},
			},
		},
		{Record: bin.Record{TagID: 5, Level: 0, Payload: nil}},
	}

	var buf bytes.Buffer
	require.NoError(t, bin.WriteTree(&buf, roots))

	got, err := bin.ReadTree(&buf)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, uint16(1), got[0].Record.TagID)
	require.Len(t, got[0].Children, 2)
	assert.Equal(t, "child-a", string(got[0].Children[0].Record.Payload))
	require.Len(t, got[0].Children[1].Children, 1)
	assert.Equal(t, "grandchild", string(got[0].Children[1].Children[0].Record.Payload))
	assert.Equal(t, uint16(5), got[1].Record.TagID)
}

func TestReadTreeRejectsLevelSkip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, bin.WriteRecord(&buf, bin.Record{TagID: 1, Level: 0}))
	require.NoError(t, bin.WriteRecord(&buf, bin.Record{TagID: 2, Level: 2}))

	_, err := bin.ReadTree(&buf)
	require.Error(t, err)
}
