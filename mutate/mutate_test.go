package mutate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"j5.nz/qtext/ustring"
	"j5.nz/qtext/uview"
)

func u16(s string) []uint16 {
	out := make([]uint16, len(s))
	for i, r := range []byte(s) {
		out[i] = uint16(r)
	}
	return out
}

func str(s *ustring.String) string {
	data := s.Data()
	out := make([]byte, len(data))
	for i, u := range data {
		out[i] = byte(u)
	}
	return string(out)
}

func TestInsertWithinBounds(t *testing.T) {
	s := ustring.FromUTF16(u16("heo"))
	Insert(&s, 2, u16("ll"))
	assert.Equal(t, "hello", str(&s))
}

func TestInsertAtStart(t *testing.T) {
	s := ustring.FromUTF16(u16("world"))
	Insert(&s, 0, u16("hello "))
	assert.Equal(t, "hello world", str(&s))
}

func TestInsertBeyondEndPadsWithSpaces(t *testing.T) {
	s := ustring.FromUTF16(u16("ab"))
	Insert(&s, 5, u16("cd"))
	assert.Equal(t, "ab   cd", str(&s))
}

func TestRemove(t *testing.T) {
	s := ustring.FromUTF16(u16("hello world"))
	Remove(&s, 5, 6)
	assert.Equal(t, "hello", str(&s))
}

func TestRemoveClampsOutOfRange(t *testing.T) {
	s := ustring.FromUTF16(u16("hi"))
	Remove(&s, 1, 100)
	assert.Equal(t, "h", str(&s))
}

func TestAppendPrepend(t *testing.T) {
	s := ustring.FromUTF16(u16("b"))
	Prepend(&s, u16("a"))
	Append(&s, u16("c"))
	assert.Equal(t, "abc", str(&s))
}

func TestReplaceEqualLength(t *testing.T) {
	s := ustring.FromUTF16(u16("cat hat bat"))
	Replace(&s, u16("at"), u16("og"), uview.CaseSensitive)
	assert.Equal(t, "cog hog bog", str(&s))
}

func TestReplaceShrink(t *testing.T) {
	s := ustring.FromUTF16(u16("hello world hello"))
	Replace(&s, u16("hello"), u16("hi"), uview.CaseSensitive)
	assert.Equal(t, "hi world hi", str(&s))
}

func TestReplaceGrow(t *testing.T) {
	s := ustring.FromUTF16(u16("a-b-c"))
	Replace(&s, u16("-"), u16("---"), uview.CaseSensitive)
	assert.Equal(t, "a---b---c", str(&s))
}

func TestReplaceCaseInsensitive(t *testing.T) {
	s := ustring.FromUTF16(u16("Cat CAT cat"))
	Replace(&s, u16("cat"), u16("dog"), uview.CaseInsensitive)
	assert.Equal(t, "dog dog dog", str(&s))
}

func TestReplaceNoMatchIsNoOp(t *testing.T) {
	s := ustring.FromUTF16(u16("hello"))
	Replace(&s, u16("xyz"), u16("abc"), uview.CaseSensitive)
	assert.Equal(t, "hello", str(&s))
}

func TestReplaceEmptyBeforeIsNoOp(t *testing.T) {
	s := ustring.FromUTF16(u16("hello"))
	Replace(&s, nil, u16("x"), uview.CaseSensitive)
	assert.Equal(t, "hello", str(&s))
}

func TestReplacePreservesSharedSourceUnaffected(t *testing.T) {
	s := ustring.FromUTF16(u16("aaa"))
	shared := s.Share()
	Replace(&s, u16("a"), u16("bb"), uview.CaseSensitive)
	assert.Equal(t, "aaa", str(&shared))
	assert.Equal(t, "bbbbbb", str(&s))
}
