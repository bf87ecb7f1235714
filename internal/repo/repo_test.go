package repo

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmichel/qquotes/internal/quote"
	"github.com/qmichel/qquotes/internal/store"
)

func testRepo(t *testing.T) *Repository {
	t.Helper()
	st := store.New(filepath.Join(t.TempDir(), "data.json"))
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(st, logger)
}

func TestSaveQuoteRoundTrip(t *testing.T) {
	r := testRepo(t)

	q := quote.Quote{Author: "Twain", Text: "Lies, damned lies, and statistics."}
	saved, err := r.SaveQuote(q)
	require.NoError(t, err)
	assert.Equal(t, q, saved)

	quotes, err := r.GetQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	for _, got := range quotes {
		assert.Equal(t, q, got)
	}
}

func TestGetQuotesEmpty(t *testing.T) {
	r := testRepo(t)

	quotes, err := r.GetQuotes()
	require.NoError(t, err)
	assert.NotNil(t, quotes)
	assert.Empty(t, quotes)
}

func TestDeleteQuote(t *testing.T) {
	r := testRepo(t)

	q1 := quote.Quote{Author: "A", Text: "first"}
	q2 := quote.Quote{Author: "B", Text: "second"}
	_, err := r.SaveQuote(q1)
	require.NoError(t, err)
	_, err = r.SaveQuote(q2)
	require.NoError(t, err)

	quotes, err := r.GetQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 2)

	var id1 string
	for id, q := range quotes {
		if q == q1 {
			id1 = id
		}
	}
	require.NotEmpty(t, id1)

	require.NoError(t, r.DeleteQuote(id1))

	quotes, err = r.GetQuotes()
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	for _, got := range quotes {
		assert.Equal(t, q2, got)
	}
}

func TestDeleteQuoteNotFound(t *testing.T) {
	r := testRepo(t)

	_, err := r.SaveQuote(quote.Quote{Author: "A", Text: "kept"})
	require.NoError(t, err)

	err = r.DeleteQuote("missing-id")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.Contains(t, err.Error(), "missing-id")

	quotes, err := r.GetQuotes()
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}
