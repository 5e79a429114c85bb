package extract

import "strings"

// ResolveURL decodes &amp; and makes a scraped URL absolute.
// e.g., "//cdn.example/x" -> "https://cdn.example/x", "/x" -> origin+"/x"
func ResolveURL(raw, origin string) string {
	u := strings.ReplaceAll(raw, "&amp;", "&")
	switch {
	case strings.HasPrefix(u, "//"):
		return "https:" + u
	case strings.HasPrefix(u, "/"):
		return strings.TrimRight(origin, "/") + u
	default:
		return u
	}
}
