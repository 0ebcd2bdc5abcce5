package xmlscan

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTestChar10_ExcludesControlsAndSurrogateGap(t *testing.T) {
	assert.True(t, testChar10('\t'))
	assert.True(t, testChar10('\n'))
	assert.False(t, testChar10(0x0))
	assert.False(t, testChar10(0x1))
	assert.False(t, testChar10(0xD800)) // surrogate gap
	assert.False(t, testChar10(0xDFFF))
	assert.True(t, testChar10(0x20))
	assert.True(t, testChar10(0x10000))
	assert.False(t, testChar10(0x110000)) // past max code point
}

func TestTestChar11_AllowsMoreControlsButNotNUL(t *testing.T) {
	assert.False(t, testChar11(0x0))
	assert.True(t, testChar11(0x1))
	assert.True(t, testChar11(0x8))
	assert.False(t, testChar11(0xD800))
	assert.True(t, testChar11(0xFFFD))
	assert.False(t, testChar11(0xFFFE))
}

func TestIsRestrictedChar11(t *testing.T) {
	assert.True(t, isRestrictedChar11(0x1))
	assert.True(t, isRestrictedChar11(0x7F))
	assert.False(t, isRestrictedChar11(' '))
	assert.False(t, isRestrictedChar11('\n'))
}

func TestIsNameStartChar(t *testing.T) {
	assert.True(t, isNameStartChar('a'))
	assert.True(t, isNameStartChar('Z'))
	assert.True(t, isNameStartChar('_'))
	assert.True(t, isNameStartChar(':'))
	assert.False(t, isNameStartChar('0'))
	assert.False(t, isNameStartChar('-'))
	assert.False(t, isNameStartChar(' '))
}

func TestIsNameChar(t *testing.T) {
	assert.True(t, isNameChar('a'))
	assert.True(t, isNameChar('0'))
	assert.True(t, isNameChar('-'))
	assert.True(t, isNameChar('.'))
	assert.False(t, isNameChar(' '))
	assert.False(t, isNameChar('<'))
}

func TestIsPubidChar(t *testing.T) {
	assert.True(t, isPubidChar('a'))
	assert.True(t, isPubidChar('-'))
	assert.True(t, isPubidChar(' '))
	assert.False(t, isPubidChar('<'))
	assert.False(t, isPubidChar('&'))
}

func TestIsDigitAndIsHexDigit(t *testing.T) {
	assert.True(t, isDigit('5'))
	assert.False(t, isDigit('a'))
	assert.True(t, isHexDigit('a'))
	assert.True(t, isHexDigit('F'))
	assert.False(t, isHexDigit('g'))
}
