package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

// editShowContent controls whether the edited text is printed in full.
var editShowContent bool

var editCmd = &cobra.Command{
	Use:   "edit [doc-id]",
	Short: "Rewrite a document and record the edit",
	Long: `Fetch a Google Doc, run it through the rewrite engine, and
append the result to the local edit history. The document itself is
never modified.

Examples:
  storyspark edit 1a2b3c4d5e
  storyspark edit 1a2b3c4d5e --show`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().BoolVar(&editShowContent, "show", false, "Print the full edited text")
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	if editorService == nil {
		return errors.New("editor service not configured")
	}

	ctx := context.Background()
	record, err := editorService.EditDocument(ctx, args[0])
	if err != nil {
		return describeAuthError(err)
	}

	cmd.Printf("Edited %q\n", record.DocumentName)
	cmd.Printf("  Record: %s\n", record.ID)
	cmd.Printf("  When:   %s\n", record.Timestamp.Format("2006-01-02 15:04:05"))

	if editShowContent {
		cmd.Println()
		cmd.Println(record.EditedContent)
	} else {
		cmd.Printf("\nView it with: storyspark history show %s\n", record.ID)
	}
	return nil
}
