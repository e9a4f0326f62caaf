package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/storyspark-labs/storyspark-cli/internal/core/domain"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Review past edits",
	Long:  `List and inspect locally recorded edits.`,
}

// historyDocID filters the list to a single document.
var historyDocID string

var historyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded edits, newest first",
	RunE:  runHistoryList,
}

var historyShowCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show a recorded edit in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryShow,
}

func init() {
	historyListCmd.Flags().StringVar(&historyDocID, "doc", "", "Only show edits for this document ID")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyShowCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryList(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()

	var records []domain.EditRecord
	var err error
	if historyDocID != "" {
		records, err = historyService.ByDocument(ctx, historyDocID)
	} else {
		records, err = historyService.ListAll(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		cmd.Println("No edits recorded yet.")
		cmd.Println("Make one with: storyspark edit <doc-id>")
		return nil
	}

	for i := range records {
		cmd.Printf("  %s\n", records[i].ID)
		cmd.Printf("    Document: %s (%s)\n", records[i].DocumentName, records[i].DocumentID)
		cmd.Printf("    When:     %s\n", records[i].Timestamp.Format("2006-01-02 15:04:05"))
		cmd.Println()
	}
	cmd.Printf("%d edit(s)\n", len(records))
	return nil
}

func runHistoryShow(cmd *cobra.Command, args []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	ctx := context.Background()
	record, err := historyService.ByID(ctx, args[0])
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("no edit with ID %s", args[0])
		}
		return err
	}

	cmd.Printf("Edit %s\n", record.ID)
	cmd.Printf("Document: %s (%s)\n", record.DocumentName, record.DocumentID)
	cmd.Printf("When:     %s\n", record.Timestamp.Format("2006-01-02 15:04:05"))
	cmd.Println()

	if record.OriginalContent != nil {
		cmd.Println("--- Original ---")
		cmd.Println(*record.OriginalContent)
		cmd.Println()
	}
	cmd.Println("--- Edited ---")
	cmd.Println(record.EditedContent)
	return nil
}
