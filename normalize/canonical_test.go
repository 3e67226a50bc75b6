package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCCCStarterIsZero(t *testing.T) {
	assert.Equal(t, uint8(0), ccc('a'))
}

func TestCCCCombiningAcuteIsNonzero(t *testing.T) {
	assert.NotZero(t, ccc(0x0301))
}

func TestCanonicalOrderReordersOutOfOrderMarks(t *testing.T) {
	// U+0323 COMBINING DOT BELOW (ccc 220) followed by U+0301 COMBINING
	// ACUTE ACCENT (ccc 230) is already in canonical order; reversed, the
	// pass must restore it.
	base := rune('a')
	dotBelow := rune(0x0323)
	acute := rune(0x0301)
	require := []rune{base, dotBelow, acute}

	reversed := []rune{base, acute, dotBelow}
	ordered := CanonicalOrder(reversed)
	assert.Equal(t, require, ordered)
}

func TestCanonicalOrderNeverMovesMarkPastStarter(t *testing.T) {
	points := []rune{'a', 0x0301, 'b', 0x0323}
	ordered := CanonicalOrder(points)
	assert.Equal(t, points, ordered)
}

func TestDecomposeCanonical(t *testing.T) {
	out := Decompose([]rune{0x00e9}, false)
	assert.Equal(t, []rune{'e', 0x0301}, out)
}

func TestDecomposeCompatibility(t *testing.T) {
	out := Decompose([]rune{0xfb01}, true)
	assert.Equal(t, []rune{'f', 'i'}, out)
}

func TestComposeCanonical(t *testing.T) {
	out := Compose([]rune{'e', 0x0301}, false)
	assert.Equal(t, []rune{0x00e9}, out)
}
