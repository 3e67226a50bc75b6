package compare

import (
	"unicode/utf16"

	"golang.org/x/text/cases"
)

// caser is the shared golang.org/x/text/cases folder used by the whole-
// string convenience helpers below. It is distinct from FoldRune: FoldRune
// preserves code-point count (needed so ß stays unequal to "SS", per §8
// boundary scenario 3), while cases.Fold() performs full Unicode default
// case folding, which can change a string's length (ß -> "ss"). Both exist
// because callers want both behaviors at different times — exact-property
// matching uses FoldRune; bulk "normalize this text for a case-insensitive
// index" use cases uses this.
var caser = cases.Fold()

// FoldUTF8 case-folds a UTF-8 byte slice using full Unicode case folding,
// for callers that want canonical-casing text for indexing rather than the
// code-point-preserving comparison FoldRune implements.
func FoldUTF8(b []byte) []byte {
	return caser.Bytes(b)
}

// FoldString is the string-typed equivalent of FoldUTF8.
func FoldString(s string) string {
	return caser.String(s)
}

// FoldUTF16 is the UTF-16 code-unit equivalent of FoldUTF8, for bulk
// case-insensitive indexing of ustring/uview's native UTF-16 content. Like
// FoldUTF8, this performs full Unicode case folding and can change the
// code-unit count (ß -> "ss"); use FoldRune for code-point-preserving
// comparison instead.
func FoldUTF16(units []uint16) []uint16 {
	folded := caser.String(string(utf16.Decode(units)))
	return utf16.Encode([]rune(folded))
}
