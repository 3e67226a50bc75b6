package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUTF8ToUTF16(t *testing.T) {
	assert.Equal(t, []uint16{'a', 0xe9}, UTF8ToUTF16([]byte("a\xc3\xa9")))
}

func TestUTF8ToUTF16InvalidByte(t *testing.T) {
	assert.Equal(t, []uint16{'a', 0xfffd, 'b'}, UTF8ToUTF16([]byte{'a', 0xff, 'b'}))
}

func TestUTF16ToUTF8RoundTrip(t *testing.T) {
	units := []uint16{'a', 0xe9, 0xd83d, 0xde00}
	utf8Bytes := UTF16ToUTF8(units)
	assert.Equal(t, units, UTF8ToUTF16(utf8Bytes))
}

func TestIsValidUTF8(t *testing.T) {
	assert.True(t, IsValidUTF8([]byte("hello")))
	assert.False(t, IsValidUTF8([]byte{0xff}))
}
