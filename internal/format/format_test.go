package format

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmichel/qquotes/internal/quote"
)

func TestMaxWidths(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id-1":      {Author: "A", Text: "x"},
		"longer-id": {Author: "Bob", Text: "y"},
	}

	idMax, authorMax := MaxWidths(quotes, true)
	assert.Equal(t, 9, idMax)
	assert.Equal(t, 3, authorMax)

	// Short mode does not show ids.
	idMax, authorMax = MaxWidths(quotes, false)
	assert.Equal(t, 0, idMax)
	assert.Equal(t, 3, authorMax)
}

func TestMaxWidthsEmpty(t *testing.T) {
	idMax, authorMax := MaxWidths(nil, true)
	assert.Equal(t, 0, idMax)
	assert.Equal(t, 0, authorMax)
}

func TestMaxWidthsCountsRunes(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id": {Author: "老子", Text: "x"},
	}

	_, authorMax := MaxWidths(quotes, false)
	assert.Equal(t, 2, authorMax)
}

func TestWrapWidth(t *testing.T) {
	tests := []struct {
		name      string
		termWidth int
		idMax     int
		authorMax int
		long      bool
		want      int
	}{
		{"short mode", 80, 0, 3, false, 72},
		{"long mode", 80, 36, 3, true, 33},
		{"clamped to minimum", 80, 70, 10, true, 1},
		{"short mode crowded", 10, 0, 20, false, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WrapWidth(tt.termWidth, tt.idMax, tt.authorMax, tt.long))
		})
	}
}

func TestWrap(t *testing.T) {
	lines := Wrap("the quick brown fox jumps over the lazy dog", 15)
	assert.Equal(t, []string{
		"the quick brown",
		"fox jumps over",
		"the lazy dog",
	}, lines)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 15)
	}
}

func TestWrapShortText(t *testing.T) {
	assert.Equal(t, []string{"hi there"}, Wrap("hi there", 40))
}

func TestWrapLongWordGetsOwnLine(t *testing.T) {
	lines := Wrap("a pneumonoultramicroscopic b", 5)
	assert.Equal(t, []string{"a", "pneumonoultramicroscopic", "b"}, lines)
}

func TestWrapEmpty(t *testing.T) {
	assert.Equal(t, []string{""}, Wrap("", 10))
}

func TestQuotesTableShort(t *testing.T) {
	quotes := map[string]quote.Quote{
		"b-id": {Author: "Twain", Text: "Lies, damned lies, and statistics."},
	}

	tbl := QuotesTable(quotes, false, 80)
	require.Equal(t, []string{"Author", "Quote"}, tbl.Header)
	require.Len(t, tbl.Rows, 1)
	assert.Equal(t, []string{"Twain", "Lies, damned lies, and statistics."}, tbl.Rows[0])
}

func TestQuotesTableLongSortsByID(t *testing.T) {
	quotes := map[string]quote.Quote{
		"b-second": {Author: "B", Text: "second"},
		"a-first":  {Author: "A", Text: "first"},
		"c-third":  {Author: "C", Text: "third"},
	}

	tbl := QuotesTable(quotes, true, 80)
	require.Equal(t, []string{"QUOTE_ID", "Author", "Quote"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "a-first", tbl.Rows[0][0])
	assert.Equal(t, "b-second", tbl.Rows[1][0])
	assert.Equal(t, "c-third", tbl.Rows[2][0])
}

func TestQuotesTableWrapsNarrowTerminal(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id": {Author: "Twain", Text: "The secret of getting ahead is getting started"},
	}

	tbl := QuotesTable(quotes, false, 30)
	require.Len(t, tbl.Rows, 1)
	assert.True(t, strings.Contains(tbl.Rows[0][1], "\n"), "quote should wrap at width 30")
}

func TestRenderShort(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id": {Author: "Twain", Text: "Lies, damned lies, and statistics."},
	}

	var buf bytes.Buffer
	QuotesTable(quotes, false, 80).Render(&buf, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Author  Quote", strings.TrimRight(lines[0], " "))
	assert.Equal(t, "Twain   Lies, damned lies, and statistics.", lines[1])
}

func TestRenderMultilineCell(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id": {Author: "Twain", Text: "The secret of getting ahead is getting started"},
	}

	var buf bytes.Buffer
	QuotesTable(quotes, false, 30).Render(&buf, false)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Greater(t, len(lines), 2, "wrapped quote should span lines")
	// Continuation lines leave the author column blank.
	assert.True(t, strings.HasPrefix(lines[2], "  "), "continuation line %q should start in the quote column", lines[2])
}

func TestRenderBoldHeader(t *testing.T) {
	quotes := map[string]quote.Quote{
		"id": {Author: "A", Text: "q"},
	}

	var buf bytes.Buffer
	QuotesTable(quotes, false, 80).Render(&buf, true)

	header := strings.SplitN(buf.String(), "\n", 2)[0]
	assert.Contains(t, header, "\x1b[1m")
	assert.Contains(t, header, "\x1b[0m")
}
