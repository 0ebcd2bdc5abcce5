package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillN(t *testing.T, b *StrBuf, data string) {
	t.Helper()
	tail := b.RemainingMaybeUninitialized()
	require.GreaterOrEqual(t, len(tail), len(data))
	n := copy(tail, data)
	b.AssumeFilledNRemaining(n)
}

func TestStrBuf_FillAndShiftKnownArray(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "<?xml")

	out, ok, err := b.ShiftKnownArray([]byte("<?xml"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "<?xml", string(out))
	assert.Equal(t, 0, len(b.Filled()))
}

func TestStrBuf_ShiftKnownArray_Indeterminate(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "<?x")

	_, ok, err := b.ShiftKnownArray([]byte("<?xml"))
	assert.False(t, ok)
	assert.ErrorIs(t, err, Indeterminate)
}

func TestStrBuf_ShiftKnownArray_DefiniteMismatch(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "<!--")

	_, ok, err := b.ShiftKnownArray([]byte("<?xml"))
	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestStrBuf_PeekEquals_DoesNotConsume(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "]]>rest")

	matches, err := b.PeekEquals([]byte("]]>"))
	require.NoError(t, err)
	assert.True(t, matches)
	assert.Equal(t, "]]>rest", string(b.Filled()))
}

func TestStrBuf_ShiftBytesWhile(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "1234x")

	out, err := b.ShiftBytesWhile(isDigit)
	require.NoError(t, err)
	assert.Equal(t, "1234", string(out))
	assert.Equal(t, "x", string(b.Filled()))
}

func TestStrBuf_ShiftBytesWhile_EmptyIsIndeterminate(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	_, err := b.ShiftBytesWhile(isDigit)
	assert.ErrorIs(t, err, Indeterminate)
}

func TestStrBuf_ShiftCharsWhile_StopsAtNonMatch(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "abc<rest")

	out, err := b.ShiftCharsWhile(isNameChar)
	require.NoError(t, err)
	assert.Equal(t, "abc", string(out))
}

func TestStrBuf_ShiftCharsStartWhile_RejectsBadStart(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "9abc")

	out, err := b.ShiftCharsStartWhile(isNameStartChar, isNameChar)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Equal(t, "9abc", string(b.Filled())) // rejection must not consume
}

func TestStrBuf_ShiftCharsWhileDelimited_StopsAtDelimiter(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "hello]]>tail")

	out, err := b.ShiftCharsWhileDelimited(func(rune) bool { return true }, []byte("]]>"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(out))
	assert.Equal(t, "]]>tail", string(b.Filled()))
}

func TestStrBuf_ShiftCharsWhileDelimited_PartialDelimiterIsIndeterminate(t *testing.T) {
	b := NewStrBuf(make([]byte, 32))
	fillN(t, b, "hello]]")

	_, err := b.ShiftCharsWhileDelimited(func(rune) bool { return true }, []byte("]]>"))
	assert.ErrorIs(t, err, Indeterminate)
}

func TestStrBuf_UnshiftReset_CompactsAndReportsDrift(t *testing.T) {
	b := NewStrBuf(make([]byte, 16))
	fillN(t, b, "0123456789")

	_, _, err := b.ShiftKnownArray([]byte("01234"))
	require.NoError(t, err)
	assert.False(t, b.IsAtOrigin())

	drift := b.UnshiftReset()
	assert.Equal(t, 5, drift)
	assert.True(t, b.IsAtOrigin())
	assert.Equal(t, "56789", string(b.Filled()))
}

func TestStrBuf_IsFull(t *testing.T) {
	b := NewStrBuf(make([]byte, 4))
	assert.False(t, b.IsFull())
	fillN(t, b, "abcd")
	assert.True(t, b.IsFull())
}
