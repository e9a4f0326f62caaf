package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Browse your Google Docs",
	Long:  `List your Google Docs and print their content.`,
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your Google Docs, newest first",
	RunE:  runDocsList,
}

var docsContentCmd = &cobra.Command{
	Use:   "content [doc-id]",
	Short: "Print a document's plain text",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocsContent,
}

func init() {
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsContentCmd)
	rootCmd.AddCommand(docsCmd)
}

func runDocsList(cmd *cobra.Command, _ []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	docs, err := documentService.List(ctx)
	if err != nil {
		return describeAuthError(err)
	}

	if len(docs) == 0 {
		cmd.Println("No Google Docs found.")
		return nil
	}

	for i := range docs {
		cmd.Printf("  %s\n", docs[i].ID)
		cmd.Printf("    Name: %s\n", docs[i].Name)
		if !docs[i].ModifiedTime.IsZero() {
			cmd.Printf("    Modified: %s\n", docs[i].ModifiedTime.Format("2006-01-02 15:04"))
		}
		cmd.Println()
	}
	cmd.Printf("%d document(s)\n", len(docs))
	return nil
}

func runDocsContent(cmd *cobra.Command, args []string) error {
	if documentService == nil {
		return errors.New("document service not configured")
	}

	ctx := context.Background()
	doc, err := documentService.Content(ctx, args[0])
	if err != nil {
		return describeAuthError(err)
	}

	cmd.Print(doc.Content)
	return nil
}

// describeAuthError turns auth sentinels into actionable messages.
func describeAuthError(err error) error {
	switch {
	case errors.Is(err, domain.ErrAuthRequired):
		return fmt.Errorf("not signed in; run: storyspark login")
	case errors.Is(err, domain.ErrAuthExpired), errors.Is(err, domain.ErrAuthInvalid):
		return fmt.Errorf("session expired; run: storyspark login")
	default:
		return err
	}
}
