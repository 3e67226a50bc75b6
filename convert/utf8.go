package convert

import "unicode/utf8"

// UTF8ToUTF16 decodes src; each maximal ill-formed subsequence becomes one
// U+FFFD. utf8.DecodeRune rejects ill-formed input one byte at a time, so a
// truncated but otherwise well-formed prefix is widened here to its full
// length before the single replacement is emitted. This stays on the
// standard library rather than reaching for
// golang.org/x/text/encoding/unicode's (stateful, streaming-oriented)
// decoder — see DESIGN.md.
func UTF8ToUTF16(src []byte) []uint16 {
	out := make([]uint16, 0, len(src))
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if r == utf8.RuneError && size == 1 {
			for size < len(src) && !utf8.FullRune(src[:size+1]) {
				size++
			}
		}
		out = appendUTF16(out, r)
		src = src[size:]
	}
	return out
}

// UTF16ToUTF8 encodes src; a lone surrogate half produces U+FFFD.
func UTF16ToUTF8(src []uint16) []byte {
	out := make([]byte, 0, len(src)*2)
	var buf [utf8.UTFMax]byte
	for _, r := range UTF16ToUCS4(src) {
		n := utf8.EncodeRune(buf[:], r)
		out = append(out, buf[:n]...)
	}
	return out
}

// IsValidUTF16 reports whether src contains no lone surrogate halves, the
// strict validation API §7 promises alongside the lossy decode path.
func IsValidUTF16(src []uint16) bool {
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c >= 0xd800 && c <= 0xdbff:
			if i+1 >= len(src) || src[i+1] < 0xdc00 || src[i+1] > 0xdfff {
				return false
			}
			i++
		case c >= 0xdc00 && c <= 0xdfff:
			return false
		}
	}
	return true
}

// IsValidUTF8 reports whether src is well-formed UTF-8.
func IsValidUTF8(src []byte) bool {
	return utf8.Valid(src)
}
