// Package normalize implements the NFD/NFC/NFKD/NFKC pipeline of §4.6,
// layered over decomposition, canonical-ordering, and composition helpers
// the way §4.6 describes, with golang.org/x/text/unicode/norm supplying
// the underlying Unicode decomposition/composition/quick-check tables —
// reproducing those tables by hand is exactly the kind of large read-only
// Unicode data §9's "Global Unicode tables" design note says to treat as
// process-lifetime data, not something to hand-author.
package normalize

import (
	"golang.org/x/text/unicode/norm"

	"j5.nz/qtext/ustring"
	"j5.nz/qtext/uview"
)

// Form selects one of the four normalization forms.
type Form int

const (
	NFD Form = iota
	NFC
	NFKD
	NFKC
)

func (f Form) compatibility() bool {
	return f == NFKD || f == NFKC
}

func (f Form) composes() bool {
	return f == NFC || f == NFKC
}

// xtextForm maps Form onto the golang.org/x/text/unicode/norm form used
// for the quick-check fast path (step 3).
func (f Form) xtextForm() norm.Form {
	switch f {
	case NFD:
		return norm.NFD
	case NFC:
		return norm.NFC
	case NFKD:
		return norm.NFKD
	default:
		return norm.NFKC
	}
}

// Normalize implements §4.6's six-step pipeline over a UTF-16 view, pinning
// the Unicode version corrections to unicodeVersion ("" selects the
// library's current version with no corrections applied). Step 2 (version
// corrections) runs before step 3 (quick-check), matching §4.6's ordering:
// running quick-check first would approve already-current-form input before
// the correction ever had a chance to rewrite it.
func Normalize(v uview.StringView, form Form, unicodeVersion string) ustring.String {
	points := collectRunes(v)

	if isASCII(points) {
		return ustring.FromUCS4(points)
	}

	points, frozen := applyVersionCorrections(points, unicodeVersion)

	if len(frozen) == 0 && quickCheck(points, form) {
		return ustring.FromUCS4(points)
	}

	decomposed := decomposeExcept(points, frozen, form.compatibility())
	ordered := CanonicalOrder(decomposed)

	if form.composes() {
		return ustring.FromUCS4(Compose(ordered, form.compatibility()))
	}
	return ustring.FromUCS4(ordered)
}

func collectRunes(v uview.StringView) []rune {
	out := make([]rune, 0, v.Size())
	for r := range v.Points() {
		out = append(out, r)
	}
	return out
}

func isASCII(points []rune) bool {
	for _, r := range points {
		if r > 0x7f {
			return false
		}
	}
	return true
}

// quickCheck reports whether points is already in form, per the quick-check
// tables golang.org/x/text/unicode/norm embeds.
func quickCheck(points []rune, form Form) bool {
	return form.xtextForm().IsNormalString(string(points))
}
