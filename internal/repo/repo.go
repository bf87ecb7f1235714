// Package repo provides the domain-facing quote repository.
package repo

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/qmichel/qquotes/internal/quote"
	"github.com/qmichel/qquotes/internal/store"
)

// Repository translates quotes to and from the document store.
type Repository struct {
	store *store.Store
	log   *slog.Logger
}

// New returns a repository over the given store. The logger must not be
// nil; it is injected so callers control the sinks.
func New(st *store.Store, logger *slog.Logger) *Repository {
	return &Repository{store: st, log: logger}
}

// SaveQuote persists q and returns the copy read back from the store.
// The re-read is a post-condition check: the caller sees exactly what was
// durably stored, so any encode/decode mismatch surfaces immediately.
func (r *Repository) SaveQuote(q quote.Quote) (quote.Quote, error) {
	r.log.Debug("repository_save_quote", "author", q.Author)

	id, err := r.store.Insert(q)
	if err != nil {
		return quote.Quote{}, fmt.Errorf("saving quote: %w", err)
	}

	var saved quote.Quote
	if err := r.store.Get(id, &saved); err != nil {
		return quote.Quote{}, fmt.Errorf("reading back quote %s: %w", id, err)
	}

	r.log.Info("repository_saved_quote", "id", id, "author", saved.Author)
	return saved, nil
}

// GetQuotes returns all quotes keyed by id. An empty store yields an
// empty map, not an error.
func (r *Repository) GetQuotes() (map[string]quote.Quote, error) {
	r.log.Debug("repository_get_quotes")

	docs, err := r.store.All()
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	quotes := make(map[string]quote.Quote, len(docs))
	for id, raw := range docs {
		var q quote.Quote
		if err := json.Unmarshal(raw, &q); err != nil {
			return nil, fmt.Errorf("decoding quote %s: %w", id, err)
		}
		quotes[id] = q
	}
	return quotes, nil
}

// DeleteQuote removes the quote with the given id. Deleting an unknown
// id is an error, not a no-op.
func (r *Repository) DeleteQuote(id string) error {
	r.log.Debug("repository_delete_quote", "id", id)

	if err := r.store.Delete(id); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}

	r.log.Info("repository_deleted_quote", "id", id)
	return nil
}
