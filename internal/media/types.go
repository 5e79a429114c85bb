// Package media defines shared types for the kinorelay service.
package media

import "strings"

// ContentKind represents whether a title is a movie or a series.
type ContentKind int

const (
	Movie ContentKind = iota
	Series
)

func (k ContentKind) String() string {
	switch k {
	case Movie:
		return "movie"
	case Series:
		return "series"
	default:
		return "unknown"
	}
}

// PathSegment returns the upstream URL path segment for the kind.
func (k ContentKind) PathSegment() string {
	if k == Series {
		return "series"
	}
	return "film"
}

// ParseContentKind maps a caller-supplied type to a ContentKind.
// Anything other than "series" is treated as a movie.
func ParseContentKind(s string) ContentKind {
	if strings.EqualFold(strings.TrimSpace(s), "series") {
		return Series
	}
	return Movie
}

// Player is a resolved player embed from a single source.
type Player struct {
	Iframe    string `json:"iframe"`    // Absolute player iframe URL
	Translate string `json:"translate"` // Human-readable source label, e.g. "Flcksbr"
	Warning   bool   `json:"warning"`   // Reserved; always false for now
}

// Players maps a source key (e.g. "FLICKSBR") to the player it produced.
type Players map[string]Player
