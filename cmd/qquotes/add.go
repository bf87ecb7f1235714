package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qmichel/qquotes/internal/quote"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a quote",
	Long: `Add a quote. Prompts for the author and the quote text on stdin.

Example:
  qquotes add`,
	Args: cobra.NoArgs,
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	a := setupApp()
	stdin := bufio.NewReader(os.Stdin)

	author, err := ask(stdin, "author")
	if err != nil {
		a.fail(fmt.Errorf("reading author: %w", err))
	}
	text, err := ask(stdin, "quote ")
	if err != nil {
		a.fail(fmt.Errorf("reading quote: %w", err))
	}

	if _, err := a.repo.SaveQuote(quote.Quote{Author: author, Text: text}); err != nil {
		a.fail(err)
	}
	return nil
}

// ask prompts for one line and strips the line ending. EOF after some
// input still yields that input.
func ask(r *bufio.Reader, label string) (string, error) {
	fmt.Printf("%s ⏵ ", label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
