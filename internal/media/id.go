package media

import "regexp"

var (
	// kinopoiskPrefix matches the "kinopoisk" / "sskinopoisk/" style prefixes clients send.
	kinopoiskPrefix = regexp.MustCompile(`(?i)^(ss)?kinopoisk/?`)

	digitRun = regexp.MustCompile(`[0-9]+`)
)

// NormalizeKinopoiskID extracts the numeric catalog ID from free-form input.
// e.g., "sskinopoisk/678" -> "678", "kinopoisk12345" -> "12345"
//
// Input without any digits is returned as-is after prefix stripping so near-miss
// IDs still reach the upstream. ok is false only for empty input or a bare prefix.
func NormalizeKinopoiskID(raw string) (id string, ok bool) {
	if raw == "" {
		return "", false
	}

	cleaned := kinopoiskPrefix.ReplaceAllString(raw, "")
	if run := digitRun.FindString(cleaned); run != "" {
		return run, true
	}

	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}
