// Package provider defines the interface for player sources
// and their implementations.
package provider

import (
	"context"
	"fmt"
	"net/http"

	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"

	"kinorelay/internal/config"
	"kinorelay/internal/media"
)

// Provider is the interface that player sources must implement.
type Provider interface {
	// Key returns the response key for this source, e.g. "FLICKSBR".
	Key() string

	// Player resolves the player embed for a catalog ID.
	Player(ctx context.Context, id string, kind media.ContentKind) (*media.Player, error)
}

// StatusError reports a non-2xx upstream response.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// Default returns the registered Kinopoisk-keyed sources.
// Adding a source means appending it here.
func Default(cfg *config.Config, client *http.Client) []Provider {
	return []Provider{
		NewFlcksbr(cfg.Upstream, cfg.Referer, client),
	}
}

// Collect queries every source in order and gathers the players found.
// A failing source is logged and skipped, never fatal.
func Collect(ctx context.Context, providers []Provider, id string, kind media.ContentKind) media.Players {
	players := media.Players{}
	for _, p := range providers {
		player, err := p.Player(ctx, id, kind)
		if err != nil {
			log.WithFields(log.Fields{
				"source": p.Key(),
				"id":     id,
				"type":   kind.String(),
			}).WithError(err).Warn("source returned no player")
			continue
		}
		if player == nil {
			continue
		}
		players[p.Key()] = *player
	}

	log.WithFields(log.Fields{
		"id":      id,
		"sources": lo.Keys(players),
	}).Debug("players collected")
	return players
}
