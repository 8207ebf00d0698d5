package subtitle

import (
	"strings"
	"unicode"
)

// directional and zero-width characters left behind by mixed Arabic/Latin
// editing tools; rendering-only, so they are dropped outright
var invisibleReplacer = strings.NewReplacer(
	"\u200e", "", // left-to-right mark
	"\u200f", "", // right-to-left mark
	"\u061c", "", // arabic letter mark
	"\u202a", "", // left-to-right embedding
	"\u202b", "", // right-to-left embedding
	"\u202c", "", // pop directional formatting
	"\u202d", "", // left-to-right override
	"\u202e", "", // right-to-left override
	"\u2066", "", // left-to-right isolate
	"\u2067", "", // right-to-left isolate
	"\u2068", "", // first strong isolate
	"\u2069", "", // pop directional isolate
	"\u200b", "", // zero width space
	"\u200c", "", // zero width non-joiner
	"\u200d", "", // zero width joiner
	"\u2060", "", // word joiner
	"\ufeff", "", // BOM / zero width no-break space
)

// space lookalikes folded to a plain space ahead of the final whitespace strip
var spaceVariantReplacer = strings.NewReplacer(
	"\u00a0", " ", // no-break space
	"\u1680", " ", // ogham space mark
	"\u2000", " ", // en quad
	"\u2001", " ", // em quad
	"\u2002", " ", // en space
	"\u2003", " ", // em space
	"\u2004", " ", // three-per-em space
	"\u2005", " ", // four-per-em space
	"\u2006", " ", // six-per-em space
	"\u2007", " ", // figure space
	"\u2008", " ", // punctuation space
	"\u2009", " ", // thin space
	"\u200a", " ", // hair space
	"\u2028", " ", // line separator
	"\u2029", " ", // paragraph separator
	"\u202f", " ", // narrow no-break space
	"\u205f", " ", // medium mathematical space
	"\u3000", " ", // ideographic space
)

// Arabic and wide punctuation variants mapped to the ASCII forms the timing
// pattern expects; the thousands separator is elided rather than substituted
var punctuationReplacer = strings.NewReplacer(
	"\u060c", ",", // arabic comma
	"\u066b", ",", // arabic decimal separator
	"\u066c", "", // arabic thousands separator
	"\uff0c", ",", // fullwidth comma
	"\ufe50", ",", // small comma
	"\ufe51", ",", // small ideographic comma
	"\uff1a", ":", // fullwidth colon
	"\ufe13", ":", // presentation form vertical colon
	"\ufe55", ":", // small colon
	"\u2236", ":", // ratio
)

// NormalizeTimingText canonicalizes a raw timing fragment into plain ASCII so
// it can be matched numerically. Directional marks and zero-width characters
// are removed, space and punctuation variants are folded to their ASCII
// equivalents, Arabic-Indic digits become 0-9, and every remaining whitespace
// character is stripped. The function is pure and never fails.
func NormalizeTimingText(raw string) string {
	if raw == "" {
		return ""
	}
	s := invisibleReplacer.Replace(raw)
	s = spaceVariantReplacer.Replace(s)
	s = punctuationReplacer.Replace(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 0x0660 && r <= 0x0669: // arabic-indic digits
			return '0' + (r - 0x0660)
		case r >= 0x06f0 && r <= 0x06f9: // extended arabic-indic digits
			return '0' + (r - 0x06f0)
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, s)
}
