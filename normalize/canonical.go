package normalize

import "golang.org/x/text/unicode/norm"

// ccc returns a code point's canonical combining class: 0 for starters,
// nonzero for combining marks that participate in canonical reordering.
func ccc(r rune) uint8 {
	return norm.NFC.PropertiesString(string(r)).CCC()
}

// CanonicalOrder stably reorders runs of combining marks by canonical
// combining class (§4.6 step 5). The sort itself is the teacher's own
// insertion sort from std/sort.Strings, generalized from byte-string
// comparison to combining-class comparison over a rune run — the same
// "walk forward, bubble the out-of-order element back" shape, just
// swapping what "less than" means. golang.org/x/text/unicode/norm already
// returns canonically ordered output, so running this afterward is a
// verifying pass, not a required one; it is kept as its own exported step
// because §4.6 names canonical ordering as a distinct stage.
func CanonicalOrder(points []rune) []rune {
	out := append([]rune(nil), points...)
	classes := make([]uint8, len(out))
	for i, r := range out {
		classes[i] = ccc(r)
	}

	i := 1
	for i < len(out) {
		// Only combining marks (nonzero class) ever move; a starter (class
		// 0) anchors the run before it.
		j := i
		for j > 0 && classes[j] != 0 && classes[j-1] != 0 && classes[j] < classes[j-1] {
			out[j], out[j-1] = out[j-1], out[j]
			classes[j], classes[j-1] = classes[j-1], classes[j]
			j--
		}
		i++
	}
	return out
}

// Decompose expands every code point in points per its canonical (or, when
// compatibility is true, compatibility) decomposition.
func Decompose(points []rune, compatibility bool) []rune {
	return decomposeExcept(points, nil, compatibility)
}

// decomposeExcept is Decompose's pipeline-internal variant: positions where
// frozen[i] is true are copied through unchanged instead of being handed to
// golang.org/x/text/unicode/norm. Normalize uses this so a rune that
// applyVersionCorrections already rewrote to its pre-correction mapping
// isn't immediately decomposed right back to the current-version form — a
// per-rune decomposition is context-free (it never depends on neighboring
// code points), so splitting the batch call into one call per unfrozen rune
// changes nothing about the result for those runes.
func decomposeExcept(points []rune, frozen []bool, compatibility bool) []rune {
	form := norm.NFD
	if compatibility {
		form = norm.NFKD
	}
	if len(frozen) == 0 {
		return []rune(form.String(string(points)))
	}

	out := make([]rune, 0, len(points))
	for i, r := range points {
		if i < len(frozen) && frozen[i] {
			out = append(out, r)
			continue
		}
		out = append(out, []rune(form.String(string(r)))...)
	}
	return out
}

// Compose applies canonical composition to an already decomposed,
// canonically ordered rune sequence (§4.6 step 6, NFC/NFKC only).
func Compose(points []rune, compatibility bool) []rune {
	form := norm.NFC
	if compatibility {
		form = norm.NFKC
	}
	composed := form.String(string(points))
	return []rune(composed)
}
