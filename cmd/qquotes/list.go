package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/qmichel/qquotes/internal/format"
)

var longFormat bool

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVarP(&longFormat, "long-format", "l", false,
		"Display all information such as IDs")
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints all quotes",
	Long: `Prints all quotes as an aligned table, wrapped to the terminal width.

Examples:
  qquotes list
  qquotes list --long-format`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	a := setupApp()

	quotes, err := a.repo.GetQuotes()
	if err != nil {
		a.fail(err)
	}

	if len(quotes) == 0 {
		fmt.Println("There is no quote saved.")
		return nil
	}

	tbl := format.QuotesTable(quotes, longFormat, format.TerminalWidth())
	tbl.Render(os.Stdout, term.IsTerminal(int(os.Stdout.Fd())))
	return nil
}
