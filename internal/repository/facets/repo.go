// Package facets resolves display-form facet values ("Iran", "Banking") to
// the canonical IDs the search backend filters on. The dictionary lives in
// one hash per facet.
package facets

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/kailas-cloud/lexdex/internal/db"
)

// store is the consumer interface for the facet dictionary (ISP).
type store interface {
	HGet(ctx context.Context, key, field string) (string, error)
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
}

// UnmappedPrefix marks a facet value that has no dictionary entry. The
// sentinel keeps the mapping total: downstream consumers see the original
// value and know it was not resolved, instead of silently losing a filter.
const UnmappedPrefix = "unmapped:"

// Repo is the facet dictionary repository.
type Repo struct {
	store     store
	keyPrefix string
	logger    *zap.Logger
}

// New creates a facet dictionary repository. keyPrefix is the key namespace,
// e.g. "lexdex:".
func New(s store, keyPrefix string, logger *zap.Logger) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix, logger: logger}
}

func (r *Repo) dictKey(facet string) string {
	return r.keyPrefix + "facet:" + facet
}

// Lookup resolves one facet value to its canonical ID. Missing entries and
// store failures both yield the unmapped sentinel; a lookup never fails the
// request it serves.
func (r *Repo) Lookup(ctx context.Context, facet, value string) string {
	id, err := r.store.HGet(ctx, r.dictKey(facet), value)
	if err != nil {
		if !errors.Is(err, db.ErrFieldNotFound) && !errors.Is(err, db.ErrKeyNotFound) {
			r.logger.Warn("Facet dictionary lookup failed",
				zap.String("facet", facet),
				zap.String("value", value),
				zap.Error(err),
			)
		}
		return UnmappedPrefix + value
	}
	if id == "" {
		return UnmappedPrefix + value
	}
	return id
}

// Load replaces the dictionary entries for one facet.
func (r *Repo) Load(ctx context.Context, facet string, entries map[string]string) error {
	if len(entries) == 0 {
		return nil
	}
	return r.store.HSet(ctx, r.dictKey(facet), entries)
}

// Entries returns the full dictionary for one facet.
func (r *Repo) Entries(ctx context.Context, facet string) (map[string]string, error) {
	m, err := r.store.HGetAll(ctx, r.dictKey(facet))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return m, nil
}
