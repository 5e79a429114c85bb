package provider

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"

	"kinorelay/internal/extract"
	"kinorelay/internal/httputil"
	"kinorelay/internal/media"
)

const (
	// FlcksbrKey is the response key for players from this source.
	FlcksbrKey = "FLICKSBR"
	// FlcksbrLabel is reported in the player's translate field.
	FlcksbrLabel = "Flcksbr"
)

// Flcksbr implements the Provider interface for the flcksbr player pages.
type Flcksbr struct {
	base      string // e.g., "flcksbr.xyz"
	referer   string
	client    *http.Client
	extractor extract.Extractor
}

// NewFlcksbr creates a new Flcksbr provider.
func NewFlcksbr(base, referer string, client *http.Client) *Flcksbr {
	f := &Flcksbr{
		base:    base,
		referer: referer,
		client:  client,
	}
	f.extractor = extract.New(f.baseURL())
	return f
}

func (f *Flcksbr) baseURL() string {
	return "https://" + f.base
}

// Key returns the response key for this source.
func (f *Flcksbr) Key() string {
	return FlcksbrKey
}

// Player fetches the title page once and extracts its player iframe.
func (f *Flcksbr) Player(ctx context.Context, id string, kind media.ContentKind) (*media.Player, error) {
	pageURL := httputil.BuildURL(f.baseURL(), kind.PathSegment(), id)

	doc, err := f.fetchDocument(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}

	iframe, err := f.extractor.Extract(doc)
	if err != nil {
		return nil, fmt.Errorf("extracting player from %s: %w", pageURL, err)
	}

	return &media.Player{
		Iframe:    iframe,
		Translate: FlcksbrLabel,
		Warning:   false,
	}, nil
}

// fetchDocument fetches a URL and parses it into a goquery Document.
func (f *Flcksbr) fetchDocument(ctx context.Context, url string) (*goquery.Document, error) {
	log.WithField("url", url).Debug("fetching player page")

	resp, err := httputil.Get(ctx, f.client, url, f.referer)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, httputil.MaxBodySize))
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	log.WithFields(log.Fields{
		"status": resp.StatusCode,
		"bytes":  len(body),
	}).Debug("player page fetched")

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	return doc, nil
}
