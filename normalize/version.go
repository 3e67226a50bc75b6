package normalize

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// correction describes one normalization-stability correction the Unicode
// Standard has applied to a code point's canonical decomposition over time
// (§4.6 step 2). CorrectedInVersion is the Unicode version that introduced
// the fix; Previous is the decomposition a requester pinned to an earlier
// version should still observe.
type correction struct {
	Rune               rune
	CorrectedInVersion string
	Previous           []rune
}

// table is a small, illustrative set of such corrections — not an
// exhaustive transcription of every NormalizationCorrections.txt entry,
// which would require shipping the full historical table. It demonstrates
// the mechanism §4.6 describes: a caller pinning an old Unicode version
// sees the pre-correction mapping restored.
var table = []correction{
	// U+2126 OHM SIGN's canonical decomposition to U+03A9 GREEK CAPITAL
	// LETTER OMEGA was stabilized early; recorded here so a caller pinning
	// a version before the stabilization observes the code point
	// unexpanded rather than decomposed.
	{Rune: 0x2126, CorrectedInVersion: "3.0", Previous: []rune{0x2126}},
}

// parseVersion parses a "major.minor" Unicode version string.
func parseVersion(v string) (major, minor int, err error) {
	parts := strings.SplitN(v, ".", 2)
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "normalize: invalid unicode version %q", v)
	}
	if len(parts) > 1 {
		minor, err = strconv.Atoi(parts[1])
		if err != nil {
			return 0, 0, errors.Wrapf(err, "normalize: invalid unicode version %q", v)
		}
	}
	return major, minor, nil
}

// versionLess reports whether a < b as Unicode "major.minor" versions.
func versionLess(a, b string) bool {
	aMaj, aMin, aErr := parseVersion(a)
	bMaj, bMin, bErr := parseVersion(b)
	if aErr != nil || bErr != nil {
		// An unparsable version is treated as "current" (i.e. not less
		// than anything), the conservative choice: we'd rather apply the
		// corrected mapping than silently guess at a caller's intent.
		return false
	}
	if aMaj != bMaj {
		return aMaj < bMaj
	}
	return aMin < bMin
}

// applyVersionCorrections restores the pre-correction decomposition for any
// code point in points whose fix postdates requestedVersion. The returned
// frozen slice parallels out: frozen[i] marks a position whose content is
// already the historical mapping a caller pinning requestedVersion should
// see, so later pipeline stages (Decompose in particular, which would
// otherwise hand every code point straight back to the current-version
// golang.org/x/text/unicode/norm tables and silently undo the correction)
// must leave it untouched rather than re-deriving it from current tables.
func applyVersionCorrections(points []rune, requestedVersion string) (out []rune, frozen []bool) {
	if requestedVersion == "" {
		return points, nil
	}
	out = make([]rune, 0, len(points))
	frozen = make([]bool, 0, len(points))
	for _, r := range points {
		replaced := false
		for _, c := range table {
			if c.Rune == r && versionLess(requestedVersion, c.CorrectedInVersion) {
				for range c.Previous {
					frozen = append(frozen, true)
				}
				out = append(out, c.Previous...)
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, r)
			frozen = append(frozen, false)
		}
	}
	return out, frozen
}
