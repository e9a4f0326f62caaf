// Command storyspark is the StorySpark CLI entry point.
// It wires the driven adapters into the core services and hands
// control to the cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/auth"
	configfile "github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/config/file"
	storagefile "github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/storage/file"
	"github.com/storyspark-labs/storyspark-cli/internal/adapters/driven/storage/sqlite"
	"github.com/storyspark-labs/storyspark-cli/internal/adapters/driving/cli"
	"github.com/storyspark-labs/storyspark-cli/internal/connectors/google/docs"
	"github.com/storyspark-labs/storyspark-cli/internal/core/ports/driven"
	"github.com/storyspark-labs/storyspark-cli/internal/core/services"
	"github.com/storyspark-labs/storyspark-cli/internal/rewrite"
)

// version is overridden at build time via
// -ldflags "-X main.version=v1.2.3".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	credsStore, err := auth.NewFileCredentialsStore("")
	if err != nil {
		return fmt.Errorf("failed to open credentials store: %w", err)
	}

	historyStore, closeHistory, err := newHistoryStore(configStore)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer closeHistory()

	tokens := auth.NewOAuthTokenProvider(
		credsStore,
		configStore.GetString("google.client_id"),
		configStore.GetString("google.client_secret"),
	)
	fetcher := docs.NewFetcher(tokens)
	flow := auth.NewGoogleOAuthFlowFromConfig(configStore)
	engine := rewrite.New()

	cli.SetServices(
		services.NewAuthService(credsStore, flow),
		services.NewDocumentService(fetcher),
		services.NewEditorService(fetcher, engine, historyStore),
		services.NewHistoryService(historyStore),
		configStore,
	)
	cli.SetVersion(version)

	return cli.Execute()
}

// newHistoryStore selects the history backend from configuration.
// The default is the JSON file store; set history.backend = "sqlite"
// to use the SQLite store instead.
func newHistoryStore(cfg driven.ConfigStore) (driven.HistoryStore, func(), error) {
	switch backend := cfg.GetString("history.backend"); backend {
	case "", "file":
		store, err := storagefile.NewHistoryStore("")
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	case "sqlite":
		store, err := sqlite.NewStore("")
		if err != nil {
			return nil, nil, err
		}
		return store, func() { _ = store.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown history backend %q", backend)
	}
}
