// Package format renders quote collections as terminal tables.
package format

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"

	"github.com/qmichel/qquotes/internal/quote"
)

// DefaultTermWidth is used when the terminal size cannot be detected.
const DefaultTermWidth = 80

// Space reserved for padding and the non-quote columns, on top of their
// content width. These match the layout the table renderer produces.
const (
	shortReserved = 5
	longReserved  = 8
	minWrapWidth  = 1
)

// Table is an aligned grid with a header row. Cells may span several
// lines.
type Table struct {
	Header []string
	Rows   [][]string
}

// QuotesTable builds the list table for a quote collection. Long mode adds
// the id column. Rows are ordered by ascending id, matching the store's
// natural ordering. The caller must not pass an empty collection; it
// short-circuits with a message instead.
func QuotesTable(quotes map[string]quote.Quote, long bool, termWidth int) *Table {
	idMax, authorMax := MaxWidths(quotes, long)
	wrapWidth := WrapWidth(termWidth, idMax, authorMax, long)

	ids := make([]string, 0, len(quotes))
	for id := range quotes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	t := &Table{}
	if long {
		t.Header = []string{"QUOTE_ID", "Author", "Quote"}
	} else {
		t.Header = []string{"Author", "Quote"}
	}

	for _, id := range ids {
		q := quotes[id]
		wrapped := strings.Join(Wrap(q.Text, wrapWidth), "\n")
		if long {
			t.Rows = append(t.Rows, []string{id, q.Author, wrapped})
		} else {
			t.Rows = append(t.Rows, []string{q.Author, wrapped})
		}
	}
	return t
}

// MaxWidths returns the widest id and author in the collection, in runes.
// The id width is 0 in short mode since the column is not shown.
func MaxWidths(quotes map[string]quote.Quote, long bool) (idMax, authorMax int) {
	for id, q := range quotes {
		if long {
			if w := utf8.RuneCountInString(id); w > idMax {
				idMax = w
			}
		}
		if w := utf8.RuneCountInString(q.Author); w > authorMax {
			authorMax = w
		}
	}
	return idMax, authorMax
}

// WrapWidth computes the column width for quote text: the terminal width
// minus the space taken by the other columns and padding. Never returns
// less than 1, even when the other columns crowd out the terminal.
func WrapWidth(termWidth, idMax, authorMax int, long bool) int {
	var w int
	if long {
		w = termWidth - idMax - authorMax - longReserved
	} else {
		w = termWidth - authorMax - shortReserved
	}
	if w < minWrapWidth {
		return minWrapWidth
	}
	return w
}

// Wrap greedily wraps text into lines of at most width runes. Words longer
// than width get a line of their own.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line strings.Builder
	lineLen := 0

	for _, word := range words {
		wordLen := utf8.RuneCountInString(word)
		switch {
		case lineLen == 0:
			line.WriteString(word)
			lineLen = wordLen
		case lineLen+1+wordLen <= width:
			line.WriteString(" ")
			line.WriteString(word)
			lineLen += 1 + wordLen
		default:
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			lineLen = wordLen
		}
	}
	lines = append(lines, line.String())
	return lines
}

// TerminalWidth returns the current width of stdout, or DefaultTermWidth
// when stdout is not a terminal.
func TerminalWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return DefaultTermWidth
}

// Render writes the table to w: whitespace-separated columns, no border
// lines. Headers are emphasized with ANSI bold when bold is set.
func (t *Table) Render(w io.Writer, bold bool) {
	widths := t.columnWidths()

	cells := make([]string, len(t.Header))
	for i, h := range t.Header {
		cell := padRight(h, widths[i])
		if bold {
			cell = "\x1b[1m" + cell + "\x1b[0m"
		}
		cells[i] = cell
	}
	fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))

	for _, row := range t.Rows {
		t.renderRow(w, row, widths)
	}
}

// renderRow prints one logical row, spreading multi-line cells over as
// many terminal lines as needed.
func (t *Table) renderRow(w io.Writer, row []string, widths []int) {
	split := make([][]string, len(row))
	height := 1
	for i, cell := range row {
		split[i] = strings.Split(cell, "\n")
		if len(split[i]) > height {
			height = len(split[i])
		}
	}

	for line := 0; line < height; line++ {
		cells := make([]string, len(row))
		for i := range row {
			var s string
			if line < len(split[i]) {
				s = split[i][line]
			}
			cells[i] = padRight(s, widths[i])
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(cells, "  "), " "))
	}
}

// columnWidths returns the display width of each column: the widest line
// among the header and all cells.
func (t *Table) columnWidths() []int {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = utf8.RuneCountInString(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			for _, line := range strings.Split(cell, "\n") {
				if w := utf8.RuneCountInString(line); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}
	return widths
}

func padRight(s string, width int) string {
	if pad := width - utf8.RuneCountInString(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
