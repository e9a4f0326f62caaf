package cli

import (
	"github.com/spf13/cobra"

	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driving"
	"github.com/storyspark-labs/storyspark-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services are injected by main via SetServices before Execute.
var (
	authService     driving.AuthService
	documentService driving.DocumentService
	editorService   driving.EditorService
	historyService  driving.HistoryService
	configStore     driven.ConfigStore
)

// verbose enables debug logging across all commands.
var verbose bool

var rootCmd = &cobra.Command{
	Use:   "storyspark",
	Short: "Spark up your Google Docs stories",
	Long: `StorySpark fetches your Google Docs, runs them through a
rule-based rewrite engine, and keeps a local history of every edit.

Sign in once with 'storyspark login', then:

  storyspark docs list          # browse your Google Docs
  storyspark edit <doc-id>      # rewrite a document
  storyspark history list       # review past edits`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

// SetServices injects the driving services used by the commands.
func SetServices(
	auth driving.AuthService,
	documents driving.DocumentService,
	editor driving.EditorService,
	history driving.HistoryService,
	config driven.ConfigStore,
) {
	authService = auth
	documentService = documents
	editorService = editor
	historyService = history
	configStore = config
}

// SetVersion sets the version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}
