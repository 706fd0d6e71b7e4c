package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zhachu16/wdg-pm/internal/config"
	"github.com/zhachu16/wdg-pm/internal/printer"
	"github.com/zhachu16/wdg-pm/internal/resolver"
	"github.com/zhachu16/wdg-pm/internal/store"
)

var (
	version string
	commit  string
	date    string

	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "wdgpm",
	Short: "wdgpm - 3D printing production job tracker",
	Long: `wdgpm tracks 3D printing production jobs from creation to shipping.

Every project keeps its printable file under version control: replacing
the file archives the previous revision, and every field change is
recorded in a per-category change log so the full production history
of a job stays auditable.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", v, c, d)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultFilename, "Path to the wdgpm configuration file")
}

// openStore loads the configuration and opens the project store.
// A corrupt index is reported as a warning and treated as empty.
func openStore() (*store.Store, error) {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, printer.Error(
			"failed to load configuration",
			err.Error(),
			[]string{fmt.Sprintf("Check the syntax of %s", configPath)},
		)
	}

	s, err := store.Open(cfg.Storage.IndexFile, cfg.Storage.ProjectsDir)
	if s == nil {
		return nil, printer.Error("failed to open project store", err.Error(), nil)
	}
	if err != nil {
		printer.Warning("%v\n", err)
	}
	return s, nil
}

// resolveProjectID resolves a full id or unique prefix against the store,
// turning resolution failures into user-facing errors.
func resolveProjectID(s *store.Store, arg string) (string, error) {
	id, err := resolver.ResolveProjectID(s.List(), arg)
	if err != nil {
		if resolver.IsAmbiguousError(err) {
			ambErr := err.(*resolver.AmbiguousError)
			return "", printer.Error(
				fmt.Sprintf("ambiguous project id '%s'", arg),
				resolver.FormatAmbiguousError(ambErr),
				nil,
			)
		}
		return "", printer.Error(
			fmt.Sprintf("project '%s' not found", arg),
			"",
			[]string{"Run 'wdgpm list' to see known projects"},
		)
	}
	return id, nil
}
