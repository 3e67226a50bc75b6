package convert

import (
	"unsafe"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// FromUTF16WithBOM detects a leading byte-order mark in b and honors it;
// absent a BOM, bytes are interpreted in host byte order. This is the one
// conversion path in the package that leans on golang.org/x/text rather
// than a hand-rolled decoder: BOM sniffing across big/little-endian input
// is exactly what golang.org/x/text/encoding/unicode.BOMOverride is for,
// and getting it subtly wrong (off-by-one on the BOM pair, wrong fallback
// order) is the kind of bug a vetted decoder avoids.
func FromUTF16WithBOM(b []byte) []uint16 {
	fallback := unicode.UTF16(hostEndianness(), unicode.IgnoreBOM)
	transformer := unicode.BOMOverride(fallback.NewDecoder())
	// BOMOverride never reports an error of its own; a non-nil err here
	// only reflects a truncated multi-byte sequence at the end of b, and
	// utf8Bytes still holds everything decoded up to that point.
	utf8Bytes, _, _ := transform.Bytes(transformer, b)
	return UTF8ToUTF16(utf8Bytes)
}

func hostEndianness() unicode.Endianness {
	var x uint16 = 1
	if *(*byte)(unsafe.Pointer(&x)) == 1 {
		return unicode.LittleEndian
	}
	return unicode.BigEndian
}
