package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tjson "github.com/tinywasm/json"

	"github.com/tinywasm/hwpconv/ir"
)

// metadataFixture is the in-memory fixture shape used by TestMetadataFixtureRoundTripsThroughJSON,
// decoded with tinywasm/json rather than stdlib encoding/json, matching
// this corpus's substitution for JSON handling.
type metadataFixture struct {
	Title   string `json:"title"`
	Author  string `json:"author"`
	Subject string `json:"subject"`
}

func TestMetadataFixtureRoundTripsThroughJSON(t *testing.T) {
	want := metadataFixture{Title: "Annual Report", Author: "Kim", Subject: "Finance"}

	encoded, err := tjson.Marshal(want)
	require.NoError(t, err)

	var got metadataFixture
	require.NoError(t, tjson.Unmarshal(encoded, &got))
	assert.Equal(t, want, got)

	md := ir.Metadata{Title: got.Title, Author: got.Author, Subject: got.Subject}
	assert.Equal(t, "Annual Report", md.Title)
}
