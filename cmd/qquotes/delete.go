package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete <QUOTE_ID>",
	Short: "Delete a quote by ID",
	Long: `Delete a quote by its id. Find ids with 'qquotes list --long-format'.

Example:
  qquotes delete 1f0a7c6e-8f04-4bcb-9a3e-1f4f1a2b3c4d`,
	Args: cobra.ExactArgs(1),
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, args []string) error {
	a := setupApp()

	if err := a.repo.DeleteQuote(args[0]); err != nil {
		a.fail(err)
	}
	return nil
}
