// Package convert implements the encoding conversions of §4.5: Latin-1,
// UTF-8, UTF-16, and UCS-4, including lossy down-conversion and BOM
// handling. Every function here is one-shot — none retains state across
// calls, matching "none retains state across calls" in §4.5's closing
// sentence.
package convert

// Latin1ToUTF16 zero-extends each Latin-1 byte to a 16-bit code unit.
func Latin1ToUTF16(src []byte) []uint16 {
	out := make([]uint16, len(src))
	for i, b := range src {
		out[i] = uint16(b)
	}
	return out
}

// UTF16ToLatin1Lossy truncates each code unit to its low byte; units above
// U+00FF become '?'. The result always has the same length as src.
func UTF16ToLatin1Lossy(src []uint16) []byte {
	out := make([]byte, len(src))
	for i, c := range src {
		if c > 0xff {
			out[i] = '?'
		} else {
			out[i] = byte(c)
		}
	}
	return out
}

// UTF16ToLatin1Unchecked truncates each code unit to its low byte without
// substituting '?' for out-of-range units; their value is undefined by the
// spec beyond "same code-unit length", so callers that need the lossy '?'
// behavior should use UTF16ToLatin1Lossy instead.
func UTF16ToLatin1Unchecked(src []uint16) []byte {
	out := make([]byte, len(src))
	for i, c := range src {
		out[i] = byte(c)
	}
	return out
}

// UCS4ToUTF16 expands code points above U+FFFF into surrogate pairs.
func UCS4ToUTF16(src []rune) []uint16 {
	out := make([]uint16, 0, len(src))
	for _, r := range src {
		out = appendUTF16(out, r)
	}
	return out
}

func appendUTF16(out []uint16, r rune) []uint16 {
	switch {
	case r < 0 || r > 0x10ffff:
		return append(out, 0xfffd)
	case r > 0xffff:
		r -= 0x10000
		return append(out, uint16(0xd800+(r>>10)), uint16(0xdc00+(r&0x3ff)))
	default:
		return append(out, uint16(r))
	}
}

// UTF16ToUCS4 combines surrogate pairs into their code point; an unpaired
// surrogate half yields U+FFFD.
func UTF16ToUCS4(src []uint16) []rune {
	out := make([]rune, 0, len(src))
	for i := 0; i < len(src); i++ {
		c := src[i]
		switch {
		case c >= 0xd800 && c <= 0xdbff:
			if i+1 < len(src) && src[i+1] >= 0xdc00 && src[i+1] <= 0xdfff {
				out = append(out, (rune(c-0xd800)<<10|rune(src[i+1]-0xdc00))+0x10000)
				i++
			} else {
				out = append(out, 0xfffd)
			}
		case c >= 0xdc00 && c <= 0xdfff:
			out = append(out, 0xfffd)
		default:
			out = append(out, rune(c))
		}
	}
	return out
}
