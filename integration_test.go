package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests exercise spec.md §8's concrete end-to-end scenarios through
// Scanner.Resume, driving real input all the way from a fresh Scanner rather
// than calling individual productions directly.

// Scenario 2: a lone space with no declaration is just Misc* — no event, and
// the caller sees MoreInputRequired once EOF is reached without ever having
// to reboot or error.
func TestScenario_WhitespaceOnlyYieldsNoEventsThenMoreInput(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, ` `)

	sc := NewScanner()
	_, err := sc.Resume(buf)
	assert.ErrorIs(t, err, MoreInputRequired)
}

// Scenario 5: <empty /> — reboots to 1.0 (no leading "<?xml"), then parses a
// self-closing element with no attributes.
func TestScenario_SelfClosingElementWithoutXMLDecl(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<empty />`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 3)

	require.Len(t, events, 3)
	assert.Equal(t, EvStartTagStart, events[0].Kind)
	assert.Equal(t, EvNameChunk, events[1].Kind)
	assert.Equal(t, "empty", string(events[1].Bytes))
	assert.Equal(t, EvStartTagEndEmpty, events[2].Kind)
}

// Scenario 6: a full start-tag/content/end-tag traversal, again without a
// declaration, rebooting to 1.0 first.
func TestScenario_FullElementTraversalWithoutXMLDecl(t *testing.T) {
	buf := NewStrBuf(make([]byte, 128))
	fillN(t, buf, `<element > content </element>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 7)

	require.Len(t, events, 7)
	kinds := make([]EventKind, len(events))
	for i, ev := range events {
		kinds[i] = ev.Kind
	}
	assert.Equal(t, []EventKind{
		EvStartTagStart, EvNameChunk, EvStartTagEnd, EvCharDataChunk,
		EvEndTagStart, EvNameChunk, EvEndTagEnd,
	}, kinds)
	assert.Equal(t, " content ", string(events[3].Bytes))
}

// Scenario 7: the same shape under 1.0, but with a literal U+0001 in the
// content — not a legal Char in 1.0, so the scanner gets through CharData up
// to that byte and then fails to find the ETag it expected.
func TestScenario_IllegalCharInXML10ContentIsExpectedETagError(t *testing.T) {
	buf := NewStrBuf(make([]byte, 128))
	fillN(t, buf, "<element > content \x01 </element>")

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 4)

	require.Len(t, events, 4)
	assert.Equal(t, EvCharDataChunk, events[3].Kind)
	assert.Equal(t, " content ", string(events[3].Bytes))

	_, err := sc.Resume(buf)
	assert.ErrorIs(t, err, Error{Kind: ErrExpectedETag})
}

// Scenario 8: the same U+0001 is a legal RestrictedChar under 1.1, where an
// explicit XMLDecl keeps the scanner from ever rebooting to 1.0.
func TestScenario_RestrictedCharLegalInXML11Content(t *testing.T) {
	buf := NewStrBuf(make([]byte, 128))
	fillN(t, buf, "<?xml version='1.1'?><element> content \x01 </element>")

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 8)

	require.Len(t, events, 8)
	assert.Equal(t, EvVersionChunk, events[0].Kind)
	assert.Equal(t, "1.1", string(events[0].Bytes))
	assert.Equal(t, EvCharDataChunk, events[4].Kind)
	assert.Equal(t, " content \x01 ", string(events[4].Bytes))
	assert.Equal(t, EvEndTagEnd, events[7].Kind)
}

// Scenario 9: an empty comment in the prolog, reached only via the 1.0
// reboot path since "<!--" never begins with "<?xml".
func TestScenario_EmptyCommentInProlog(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<!---->`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 2)

	require.Len(t, events, 2)
	assert.Equal(t, EvCommentStart, events[0].Kind)
	assert.Equal(t, "<!--", string(events[0].Bytes))
	assert.Equal(t, EvCommentEnd, events[1].Kind)
	assert.Equal(t, "-->", string(events[1].Bytes))

	_, err := sc.Resume(buf)
	assert.ErrorIs(t, err, MoreInputRequired)
}

// Scenario 10: "--" is illegal inside a comment body even though it is legal
// right after the opening "<!--".
func TestScenario_DoubleDashInsideCommentIsFatal(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<!-- -- -->`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 2)

	require.Len(t, events, 2)
	assert.Equal(t, EvCommentStart, events[0].Kind)
	assert.Equal(t, EvCommentChunk, events[1].Kind)
	assert.Equal(t, " ", string(events[1].Bytes))

	_, err := sc.Resume(buf)
	assert.ErrorIs(t, err, Error{Kind: ErrDoubleDashInComment})
}

// Processing instructions reach the same Misc* prolog slot as Comment, and
// also appear inside element content (contentProd's pPI alternative).
func TestIntegration_ProcessingInstructionInProlog(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<?target data?>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 3)

	require.Len(t, events, 3)
	assert.Equal(t, EvPIStart, events[0].Kind)
	assert.Equal(t, EvPITargetChunk, events[1].Kind)
	assert.Equal(t, "target", string(events[1].Bytes))
	assert.Equal(t, EvPIChunk, events[2].Kind)
	assert.Equal(t, "data", string(events[2].Bytes))

	ev, err := sc.Resume(buf)
	require.NoError(t, err)
	assert.Equal(t, EvPIEnd, ev.Kind)
}

// A PITarget spelled "xml" (case-insensitively) is reserved and must be
// rejected rather than treated as an ordinary target name.
func TestIntegration_PITargetNamedXMLIsRejected(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<?xMl data?>`)

	sc := NewScanner()
	// "<?xMl" doesn't match the XMLDecl literal byte-for-byte (case matters
	// there), so prolog first reboots to 1.0 and retries this as an ordinary
	// PI — where PITarget's case-insensitive "xml" exclusion rejects it
	// instead, a hard error rather than another reboot. PIStart is yielded
	// before PITarget runs, so the error comes on the second Resume.
	ev, err := sc.Resume(buf)
	require.NoError(t, err)
	assert.Equal(t, EvPIStart, ev.Kind)

	_, err = sc.Resume(buf)
	require.Error(t, err)
	assert.NotErrorIs(t, err, MoreInputRequired)
}

func TestIntegration_CDataSectionInContent(t *testing.T) {
	buf := NewStrBuf(make([]byte, 128))
	fillN(t, buf, `<a><![CDATA[<not a tag>]]></a>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 6)

	require.Len(t, events, 6)
	assert.Equal(t, []EventKind{
		EvStartTagStart, EvNameChunk, EvStartTagEnd,
		EvCDStart, EvCDChunk, EvCDEnd,
	}, []EventKind{events[0].Kind, events[1].Kind, events[2].Kind, events[3].Kind, events[4].Kind, events[5].Kind})
	assert.Equal(t, "<not a tag>", string(events[4].Bytes))
}

func TestIntegration_DoctypeDeclWithoutInternalSubset(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<!DOCTYPE greeting>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 3)

	require.Len(t, events, 3)
	assert.Equal(t, EvDoctypedeclStart, events[0].Kind)
	assert.Equal(t, EvNameChunk, events[1].Kind)
	assert.Equal(t, "greeting", string(events[1].Bytes))
	assert.Equal(t, EvDoctypedeclEnd, events[2].Kind)
}

func TestIntegration_EntityRefInContent(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<a>&amp;</a>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 7)

	require.Len(t, events, 7)
	assert.Equal(t, []EventKind{
		EvStartTagStart, EvNameChunk, EvStartTagEnd,
		EvEntityRefStart, EvNameChunk, EvEntityRefEnd,
		EvEndTagStart,
	}, []EventKind{
		events[0].Kind, events[1].Kind, events[2].Kind,
		events[3].Kind, events[4].Kind, events[5].Kind,
		events[6].Kind,
	})
	assert.Equal(t, "amp", string(events[4].Bytes))
}

func TestIntegration_CharRefDecimalAndHexInContent(t *testing.T) {
	buf := NewStrBuf(make([]byte, 64))
	fillN(t, buf, `<a>&#65;&#x41;</a>`)

	sc := NewScanner()
	events := collectEvents(t, sc, buf, 9)

	require.Len(t, events, 9)
	assert.Equal(t, EvCharRefDecimalStart, events[3].Kind)
	assert.Equal(t, EvCharRefDecimalChunk, events[4].Kind)
	assert.Equal(t, "65", string(events[4].Bytes))
	assert.Equal(t, EvCharRefEnd, events[5].Kind)
	assert.Equal(t, EvCharRefHexadecimalStart, events[6].Kind)
	assert.Equal(t, EvCharRefHexadecimalChunk, events[7].Kind)
	assert.Equal(t, "41", string(events[7].Bytes))
	assert.Equal(t, EvCharRefEnd, events[8].Kind)
}

// The reboot path is grammar-version-sticky: once rebooted to 1.0, a second,
// independent document parsed on a fresh Scanner that *does* declare 1.1
// must not be affected by the first Scanner's reboot.
func TestIntegration_RebootIsPerScannerNotGlobal(t *testing.T) {
	buf1 := NewStrBuf(make([]byte, 64))
	fillN(t, buf1, `<a/>`)
	sc1 := NewScanner()
	_, err := sc1.Resume(buf1)
	require.NoError(t, err)

	buf2 := NewStrBuf(make([]byte, 64))
	fillN(t, buf2, `<?xml version="1.1"?><a/>`)
	sc2 := NewScanner()
	ev, err := sc2.Resume(buf2)
	require.NoError(t, err)
	assert.Equal(t, EvVersionChunk, ev.Kind)
	assert.Equal(t, "1.1", string(ev.Bytes))
}
