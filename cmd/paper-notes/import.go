package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/paper-notes/internal/app"
	"github.com/pdiddy/paper-notes/internal/vault"
	"github.com/pdiddy/paper-notes/pkg/types"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "paper-notes/0.1"
	defaultNotesDir  = "papers"
)

var importCmd = &cobra.Command{
	Use:   "import [urls...]",
	Short: "Fetch arXiv metadata and citations into a vault note",
	Long: `Import resolves arXiv paper references (abstract-page URLs, PDF URLs, or
bare identifiers), fetches bibliographic metadata from the arXiv API and
citation statistics from Semantic Scholar, and writes one Markdown note
per paper into the vault. Citation data is best-effort: when it cannot
be fetched the note is written without it.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 30s)")
	importCmd.Flags().Bool("from-clipboard", false, "read the paper URL from the system clipboard")
	importCmd.Flags().String("notes-dir", "", "vault-relative directory for notes (default papers)")

	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	fromClipboard, _ := cmd.Flags().GetBool("from-clipboard")
	if len(args) == 0 && !fromClipboard {
		return fmt.Errorf("provide one or more paper URLs or identifiers, or use --from-clipboard")
	}

	a, err := buildApp(cmd)
	if err != nil {
		return err
	}
	defer a.Shutdown()

	if fromClipboard {
		name, err := a.ImportFromClipboard(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Printf("imported: %s\n", name)
		return nil
	}

	result := a.ImportBatch(cmd.Context(), args)
	if result.HasFailures() {
		return fmt.Errorf("%d paper(s) failed to import", result.Failed)
	}
	return nil
}

// buildApp assembles the capability bundle and configuration shared by
// the import and extract commands, then runs the app's startup.
func buildApp(cmd *cobra.Command) (*app.App, error) {
	timeout, _ := cmd.Flags().GetDuration("timeout")
	if timeout == 0 {
		timeout = viper.GetDuration("fetch.timeout")
	}
	if timeout == 0 {
		timeout = defaultTimeout
	}

	userAgent := viper.GetString("fetch.user_agent")
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	vaultDir, _ := rootCmd.PersistentFlags().GetString("vault")
	if vaultDir == "" {
		vaultDir = viper.GetString("vault.dir")
	}
	if vaultDir == "" {
		vaultDir = "."
	}

	notesDir, _ := cmd.Flags().GetString("notes-dir")
	if notesDir == "" {
		notesDir = viper.GetString("vault.notes_dir")
	}
	if notesDir == "" {
		notesDir = defaultNotesDir
	}

	cfg := types.Config{
		Fetch: types.FetchConfig{
			HTTPConfig: types.HTTPConfig{
				Timeout:   timeout,
				UserAgent: userAgent,
			},
			SemanticScholarAPIKey: secretDefault("semantic-scholar-api-key",
				viper.GetString("fetch.semantic_scholar_api_key")),
		},
		Vault: types.VaultConfig{
			Dir:      vaultDir,
			NotesDir: notesDir,
		},
	}

	a := app.New(cfg, app.Capabilities{
		Vault:     vault.NewDirVault(vaultDir),
		Clipboard: app.SystemClipboard{},
		Client:    &http.Client{Timeout: cfg.Fetch.Timeout},
	}, os.Stdout)

	if err := a.Startup(cmd.Context()); err != nil {
		return nil, err
	}
	return a, nil
}
