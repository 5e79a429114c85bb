// Package extract locates the player iframe URL on an upstream title page.
// Strategies are tried in priority order and the first non-empty match wins.
package extract

import (
	"errors"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// ErrNoPlayer is returned when no strategy finds a player URL on the page.
var ErrNoPlayer = errors.New("no player iframe found")

// Extractor resolves a parsed page into an absolute player URL.
type Extractor interface {
	Extract(doc *goquery.Document) (string, error)
}

// Strategy is a single way of finding a raw player URL in a document.
// Find returns "" when the strategy does not apply.
type Strategy struct {
	Name string
	Find func(doc *goquery.Document) string
}

// DefaultStrategies is the priority order used by New.
var DefaultStrategies = []Strategy{
	{Name: "kinobox-iframe", Find: KinoboxIframe},
	{Name: "any-iframe", Find: AnyIframe},
	{Name: "script", Find: ScriptEmbed},
}

// Iframe extracts player URLs using an ordered list of strategies.
// Relative URLs are resolved against Origin.
type Iframe struct {
	Origin     string
	Strategies []Strategy
}

// New returns an extractor for pages served from origin (e.g. "https://flcksbr.xyz").
func New(origin string) Extractor {
	return &Iframe{
		Origin:     origin,
		Strategies: DefaultStrategies,
	}
}

// Extract runs the strategies in order and returns the first URL found.
func (x *Iframe) Extract(doc *goquery.Document) (string, error) {
	for _, s := range x.Strategies {
		raw := s.Find(doc)
		if raw == "" {
			continue
		}
		u := ResolveURL(raw, x.Origin)
		log.WithFields(log.Fields{
			"strategy": s.Name,
			"raw":      raw,
			"url":      u,
		}).Debug("player iframe found")
		return u, nil
	}

	logIframes(doc)
	return "", ErrNoPlayer
}

// KinoboxIframe returns the src of the first iframe carrying the upstream's
// player embed class.
func KinoboxIframe(doc *goquery.Document) string {
	return doc.Find("iframe.kinobox_iframe").First().AttrOr("src", "")
}

// AnyIframe returns the first non-empty iframe src in the document.
func AnyIframe(doc *goquery.Document) string {
	var src string
	doc.Find("iframe[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src = s.AttrOr("src", "")
		return src == ""
	})
	return src
}

// logIframes dumps every iframe on a page that yielded nothing, for diagnosing markup changes.
func logIframes(doc *goquery.Document) {
	if !log.IsLevelEnabled(log.DebugLevel) {
		return
	}
	iframes := doc.Find("iframe")
	log.Debugf("no player found, %d iframes on page", iframes.Length())
	iframes.Each(func(i int, s *goquery.Selection) {
		log.Debugf("iframe %d: class=%q src=%q", i, s.AttrOr("class", ""), s.AttrOr("src", ""))
	})
}
