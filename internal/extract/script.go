package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

// ScriptMatcher pulls a player URL out of inline script source.
// Pattern must have exactly one capture group holding the URL.
type ScriptMatcher struct {
	Name    string
	Pattern *regexp.Regexp
}

// Match returns the captured URL or "" when the pattern does not match.
func (m ScriptMatcher) Match(script string) string {
	sm := m.Pattern.FindStringSubmatch(script)
	if len(sm) < 2 {
		return ""
	}
	return sm[1]
}

var (
	// TheatreURL matches a quoted absolute URL on the secondary player host.
	TheatreURL = ScriptMatcher{
		Name:    "theatre",
		Pattern: regexp.MustCompile(`["'](https?://theatre\.stloadi\.live/[^"']+)["']`),
	}

	// IframeSrcAssignment matches JS like `iframe.src = "..."` or `playerIframe.src='...'`.
	IframeSrcAssignment = ScriptMatcher{
		Name:    "iframe-src",
		Pattern: regexp.MustCompile(`(?i)iframe.*?\.src\s*=\s*["']([^"']+)["']`),
	}

	// KinoboxString matches the first quoted string after a "kinobox" token.
	KinoboxString = ScriptMatcher{
		Name:    "kinobox",
		Pattern: regexp.MustCompile(`(?i)kinobox[^"']*["']([^"']+)["']`),
	}
)

// ScriptMatchers is the per-block priority order used by ScriptEmbed.
var ScriptMatchers = []ScriptMatcher{TheatreURL, IframeSrcAssignment, KinoboxString}

// ScriptEmbed scans inline scripts with ScriptMatchers.
func ScriptEmbed(doc *goquery.Document) string {
	return ScanScripts(doc, ScriptMatchers)
}

// ScanScripts walks <script> blocks in document order. Within a block the
// matchers are tried in order; the first block yielding any match wins.
func ScanScripts(doc *goquery.Document, matchers []ScriptMatcher) string {
	var found string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		content := s.Text()
		for _, m := range matchers {
			if u := m.Match(content); u != "" {
				found = u
				return false
			}
		}
		return true
	})
	return found
}
