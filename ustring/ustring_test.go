package ustring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"j5.nz/qtext/uview"
)

func TestNewIsNullAndEmpty(t *testing.T) {
	s := New()
	assert.True(t, s.IsNull())
	assert.True(t, s.IsEmpty())
	assert.Equal(t, 0, s.Size())
}

func TestFromUTF16NotNull(t *testing.T) {
	s := FromUTF16([]uint16{'h', 'i'})
	assert.False(t, s.IsNull())
	assert.Equal(t, 2, s.Size())
	assert.Equal(t, []uint16{'h', 'i'}, s.Data())
}

func TestFromUTF16CopiesInput(t *testing.T) {
	src := []uint16{'a', 'b'}
	s := FromUTF16(src)
	src[0] = 'z'
	assert.Equal(t, uint16('a'), s.Data()[0])
}

func TestShareIncrementsRefcountAndAliases(t *testing.T) {
	s := FromUTF16([]uint16{'a', 'b', 'c'})
	shared := s.Share()
	require.True(t, s.isShared())
	require.True(t, shared.isShared())

	// Mutating through one handle must not affect the other: Append
	// detaches the shared buffer first.
	s.Append([]uint16{'d'})
	assert.Equal(t, []uint16{'a', 'b', 'c'}, shared.Data())
	assert.Equal(t, []uint16{'a', 'b', 'c', 'd'}, s.Data())
}

func TestPlainCopyDoesNotShareUnlikeQString(t *testing.T) {
	// §8.6's boundary scenario describes "Create a = hello; b = a" and
	// expects mutating one to leave the other untouched, the way QString's
	// copy constructor (which bumps the refcount) behaves. Go has no copy
	// constructor: "b := a" only copies the *data pointer, never calling
	// retain(), so isShared() has no way to know b exists.
	a := FromUTF16([]uint16{'h', 'e', 'l', 'l', 'o'})
	b := a // plain struct copy, NOT Share() — the pitfall the type doc warns about

	require.False(t, a.isShared(), "a plain Go copy never bumps refcount")

	b.Append([]uint16{'!'})

	// Both handles observe the mutation: b's Append wrote through the one
	// buffer they both still point at, corrupting a rather than leaving it
	// stable. This documents the limitation, it is not the desired
	// behavior — callers who need QString's copy-on-assign semantics must
	// call a.Share() instead of "b := a".
	assert.Equal(t, []uint16{'h', 'e', 'l', 'l', 'o', '!'}, a.Data())
	assert.Equal(t, []uint16{'h', 'e', 'l', 'l', 'o', '!'}, b.Data())

	// The correct idiom, Share(), does not have this problem.
	c := FromUTF16([]uint16{'h', 'e', 'l', 'l', 'o'})
	d := c.Share()
	d.Append([]uint16{'!'})
	assert.Equal(t, []uint16{'h', 'e', 'l', 'l', 'o'}, c.Data())
	assert.Equal(t, []uint16{'h', 'e', 'l', 'l', 'o', '!'}, d.Data())
}

func TestCloneIsIndependentEvenUnshared(t *testing.T) {
	s := FromUTF16([]uint16{'a', 'b'})
	c := s.Clone()
	c.Append([]uint16{'c'})
	assert.Equal(t, []uint16{'a', 'b'}, s.Data())
	assert.Equal(t, []uint16{'a', 'b', 'c'}, c.Data())
}

func TestFromRawDataDetachesOnMutate(t *testing.T) {
	raw := []uint16{'x', 'y', 'z'}
	s := FromRawData(raw)
	s.Append([]uint16{'w'})
	assert.Equal(t, []uint16{'x', 'y', 'z'}, raw, "raw buffer must not be written through")
	assert.Equal(t, []uint16{'x', 'y', 'z', 'w'}, s.Data())
}

func TestViewReflectsCurrentContent(t *testing.T) {
	s := FromUTF16([]uint16{'a', 'b'})
	v := s.View()
	assert.Equal(t, []uint16{'a', 'b'}, v.Data)
}

func TestFromUCS4SurrogatePair(t *testing.T) {
	s := FromUCS4([]rune{0x1f600})
	assert.Equal(t, []uint16{0xd83d, 0xde00}, s.Data())
}

func TestFromLatin1(t *testing.T) {
	s := FromLatin1(uview.Latin1View{Data: []byte{0x41, 0xe9}})
	assert.Equal(t, []uint16{0x41, 0xe9}, s.Data())
}
