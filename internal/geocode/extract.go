package geocode

import (
	"regexp"
	"strings"
)

// pattern is one entry of the ordered extraction list: the language it was
// written for and a regexp whose first capture group is the place candidate.
type pattern struct {
	lang string
	re   *regexp.Regexp
}

// Extraction patterns are tried top to bottom; the first match with a usable
// candidate wins. Non-Latin vocabulary (Russian, Ukrainian) is handled by the
// AI parser upstream; this list is the deterministic fallback.
var locationPatterns = []pattern{
	// English
	{"en", regexp.MustCompile(`(?i)weather\s+(?:in|at|for)\s+(.+?)(?:\?|$|today|tomorrow|this week|next)`)},
	{"en", regexp.MustCompile(`(?i)(?:what's|what is|how's|how is)\s+(?:the\s+)?weather\s+(?:like\s+)?(?:in|at|for)\s+(.+?)(?:\?|$)`)},
	{"en", regexp.MustCompile(`(?i)\b(?:in|at|for)\s+(.+?)(?:\s+weather|\?|$)`)},
	{"en", regexp.MustCompile(`(?i)^(.+?)\s+weather`)},
	{"en", regexp.MustCompile(`(?i)forecast\s+(?:for|in)\s+(.+)$`)},
	{"en", regexp.MustCompile(`(?i)temperature\s+(?:in|at|for)\s+(.+)$`)},
	{"en", regexp.MustCompile(`(?i)rain\s+(?:in|at|for)\s+(.+)$`)},

	// Latvian
	{"lv", regexp.MustCompile(`(?i)k[aā]ds\s+laiks\s+(?:ir\s+)?(.+)`)},
	{"lv", regexp.MustCompile(`(?i)laika\s+prognoze\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)laikapst[aā]k[lļ]i\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)temperat[uū]ra\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)cik\s+(?:ir\s+|b[uū]s\s+)?(?:šodien\s+|r[iī]t\s+|par[iī]t\s+)?gr[aā]d[iu]\s+(?:ir\s+)?(.+)`)},
	{"lv", regexp.MustCompile(`(?i)vai\s+l[iī][sš]t?\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)vai\s+b[uū]s\s+lietus\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)par[aā]di\s+laiku\s+(.+)`)},
	{"lv", regexp.MustCompile(`(?i)k[aā]da\s+temperat[uū]ra\s+(.+)`)},
}

var (
	trailingPunct         = regexp.MustCompile(`[?,!.]$`)
	englishTemporalSuffix = regexp.MustCompile(`(?i)\s+(today|tomorrow|this week|next week|right now|currently)$`)
	latvianTemporalSuffix = regexp.MustCompile(`(?i)\s+(šodien|rīt|šonedēļ|nākamnedēļ|tagad|pašlaik)$`)
)

// ExtractLocation pulls a place-name candidate out of free text. It returns
// the empty string when no pattern yields a candidate longer than one
// character after trimming punctuation and temporal suffixes.
func ExtractLocation(query string) string {
	for _, p := range locationPatterns {
		m := p.re.FindStringSubmatch(query)
		if m == nil || m[1] == "" {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		candidate = strings.TrimSpace(trailingPunct.ReplaceAllString(candidate, ""))
		candidate = strings.TrimSpace(englishTemporalSuffix.ReplaceAllString(candidate, ""))
		candidate = strings.TrimSpace(latvianTemporalSuffix.ReplaceAllString(candidate, ""))
		if len([]rune(candidate)) > 1 {
			return candidate
		}
	}
	return ""
}
