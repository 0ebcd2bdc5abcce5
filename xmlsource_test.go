package xmlscan

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSource_PassthroughForEmptyEncoding(t *testing.T) {
	src, err := NewSource(strings.NewReader("<a/>"), "")
	require.NoError(t, err)

	out := make([]byte, 64)
	n, err := src.Fill(out)
	require.True(t, err == nil || err == io.EOF)
	assert.Equal(t, "<a/>", string(out[:n]))
}

func TestSource_UnrecognizedEncodingFallsBackToPassthrough(t *testing.T) {
	src, err := NewSource(strings.NewReader("hello"), "not-a-real-encoding")
	require.NoError(t, err)

	out := make([]byte, 64)
	n, _ := src.Fill(out)
	assert.Equal(t, "hello", string(out[:n]))
}

func TestSource_KnownEncodingTranscodesToUTF8(t *testing.T) {
	// 0xE9 in ISO-8859-1 is U+00E9 (é), 2 bytes in UTF-8.
	src, err := NewSource(strings.NewReader("caf\xe9"), "ISO-8859-1")
	require.NoError(t, err)

	out := make([]byte, 64)
	n, _ := src.Fill(out)
	assert.Equal(t, "café", string(out[:n]))
}

func TestEncodingNameFromEvent(t *testing.T) {
	assert.Equal(t, "UTF-8", EncodingNameFromEvent(Event{Kind: EvEncodingNameChunk, Bytes: []byte("UTF-8")}))
	assert.Equal(t, "", EncodingNameFromEvent(Event{Kind: EvNameChunk, Bytes: []byte("ignored")}))
}
