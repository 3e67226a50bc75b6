package compare

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"j5.nz/qtext/uview"
)

func TestLastIndexOfBasic(t *testing.T) {
	haystack := u16("abcabcabc")
	needle := u16("abc")
	assert.Equal(t, 6, LastIndexOf(haystack, needle, -1, CaseSensitive))
	assert.Equal(t, 3, LastIndexOf(haystack, needle, 5, CaseSensitive))
}

func TestLastIndexOfCaseInsensitive(t *testing.T) {
	haystack := u16("abcABCabc")
	needle := u16("ABC")
	assert.Equal(t, 6, LastIndexOf(haystack, needle, -1, CaseInsensitive))
}

func TestLastIndexOfNoMatch(t *testing.T) {
	assert.Equal(t, -1, LastIndexOf(u16("abcdef"), u16("xyz"), -1, CaseSensitive))
}

func TestLastIndexOfEmptyNeedle(t *testing.T) {
	haystack := u16("abc")
	// Per the open question this package resolves: from < 0 excludes the
	// end-of-string match, from >= 0 includes it.
	assert.Equal(t, 2, LastIndexOf(haystack, uview.StringView{Data: []uint16{}}, -1, CaseSensitive))
	assert.Equal(t, 3, LastIndexOf(haystack, uview.StringView{Data: []uint16{}}, 3, CaseSensitive))
}
