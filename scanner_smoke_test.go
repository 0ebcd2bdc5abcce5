package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collectEvents drives sc against buf until it has collected want events (or
// hits a terminal error), returning whatever it collected along the way.
func collectEvents(t *testing.T, sc *Scanner, buf *StrBuf, want int) []Event {
	t.Helper()
	var got []Event
	for len(got) < want {
		ev, err := sc.Resume(buf)
		if err != nil {
			if err == MoreInputRequired {
				break
			}
			require.NoError(t, err)
		}
		got = append(got, ev)
	}
	return got
}

func TestScanner_MinimalEmptyElementWithXMLDecl(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, `<?xml version="1.1"?><a/>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 4)

	require.Len(t, events, 4)
	assert.Equal(t, EvVersionChunk, events[0].Kind)
	assert.Equal(t, "1.1", string(events[0].Bytes))
	assert.Equal(t, EvStartTagStart, events[1].Kind)
	assert.Equal(t, EvNameChunk, events[2].Kind)
	assert.Equal(t, "a", string(events[2].Bytes))
	assert.Equal(t, EvStartTagEndEmpty, events[3].Kind)
}

func TestScanner_XML10DeclAcceptsDottedVersion(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, `<?xml version="1.0"?><a/>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 4)

	require.Len(t, events, 4)
	assert.Equal(t, EvVersionChunk, events[0].Kind)
	assert.Equal(t, "1.", string(events[0].Bytes))
	assert.Equal(t, EvVersionChunk, events[1].Kind)
	assert.Equal(t, "0", string(events[1].Bytes))
	assert.Equal(t, EvStartTagStart, events[2].Kind)
}

func TestScanner_StartAndEndTag(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, `<?xml version="1.1"?><a></a>`)

	sc := NewScanner()
	var kinds []EventKind
	for i := 0; i < 6; i++ {
		ev, err := sc.Resume(buf)
		if err == MoreInputRequired {
			break
		}
		require.NoError(t, err)
		kinds = append(kinds, ev.Kind)
	}

	assert.Contains(t, kinds, EvStartTagEnd)
	assert.Contains(t, kinds, EvEndTagStart)
	assert.Contains(t, kinds, EvEndTagEnd)
}

func TestScanner_MissingXMLDeclRebootsTo10AndParsesNormally(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, `<a/>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 3)

	require.Len(t, events, 3)
	assert.Equal(t, EvStartTagStart, events[0].Kind)
	assert.Equal(t, EvNameChunk, events[1].Kind)
	assert.Equal(t, "a", string(events[1].Bytes))
	assert.Equal(t, EvStartTagEndEmpty, events[2].Kind)
}

func TestScanner_WhitespaceOnlyInputRequestsMoreInput(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, ` `)

	sc := NewScanner()
	_, err := sc.Resume(buf)
	assert.ErrorIs(t, err, MoreInputRequired)
}

func TestScanner_RebootPreservesDepthLimitOption(t *testing.T) {
	buf := NewStrBuf(make([]byte, 256))
	fillN(t, buf, `<a><b><c/></b></a>`)

	sc := NewScanner(DepthLimit(3))
	var lastErr error
	for i := 0; i < 100; i++ {
		_, err := sc.Resume(buf)
		if err != nil {
			lastErr = err
			break
		}
	}
	require.Error(t, lastErr)
	assert.ErrorIs(t, lastErr, Error{Kind: ErrDepthLimitExceeded})
}

func TestScanner_DepthLimitExceeded(t *testing.T) {
	buf := NewStrBuf(make([]byte, 8192))
	doc := `<?xml version="1.1"?>`
	for i := 0; i < 10; i++ {
		doc += `<a>`
	}
	fillN(t, buf, doc)

	sc := NewScanner(DepthLimit(4))
	var lastErr error
	for i := 0; i < 200; i++ {
		_, err := sc.Resume(buf)
		if err != nil {
			lastErr = err
			break
		}
	}
	require.Error(t, lastErr)
	assert.ErrorIs(t, lastErr, Error{Kind: ErrDepthLimitExceeded})
}
