package main

import (
	"fmt"
	"os"
	"path/filepath"

	"au-reset/internal/config"
	"au-reset/internal/exitcodes"
	"au-reset/internal/paths"
	"au-reset/internal/reset"
	"au-reset/internal/safety"
	"au-reset/internal/ui"

	"github.com/spf13/cobra"
)

var (
	archiveFlag string
	forceFlag   bool
	dbOnlyFlag  bool
	dryRunFlag  bool
	configFlag  string
	noColorFlag bool
)

// rootCmd is the single au-reset command
var rootCmd = &cobra.Command{
	Use:   "au-reset",
	Short: "Reset AU Archive state for testing",
	Long: `Reset the AU Archive desktop app to a clean state.

Removes the SQLite database and its journal sidecars, the bootstrap
config.json, the data and backups directories, dev-checkout equivalents
when run inside the project, and optionally the cache directories the
app keeps inside an archive (.thumbnails, .previews, .posters).

Missing targets are reported and skipped; a removal failure never stops
the run. Completed and aborted runs both exit 0.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runReset,
}

func init() {
	rootCmd.Flags().StringVarP(&archiveFlag, "archive", "a", "", "archive root whose cache directories should also be cleaned")
	rootCmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "skip the confirmation prompt")
	rootCmd.Flags().BoolVar(&dbOnlyFlag, "db-only", false, "remove only the database and its journal sidecars")
	rootCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "show what would be removed without deleting anything")
	rootCmd.Flags().StringVar(&configFlag, "config", "", "extra-targets file (YAML) removed on a full reset")
	rootCmd.Flags().BoolVar(&noColorFlag, "no-color", false, "disable colored output")
}

func runReset(cmd *cobra.Command, _ []string) error {
	rep := ui.NewReporter(cmd.OutOrStdout(), !noColorFlag)

	primary, err := paths.Resolve()
	if err != nil {
		return fmt.Errorf("resolve app paths: %w", err)
	}

	var dev *paths.Locations
	if cwd, err := os.Getwd(); err == nil {
		if d, ok := paths.DetectDev(cwd); ok {
			dev = &d
		}
	}

	roots := []string{primary.Base}
	if dev != nil {
		roots = append(roots, dev.Base)
	}

	var archive *paths.ArchiveDirs
	if archiveFlag != "" {
		root, err := filepath.Abs(archiveFlag)
		if err != nil {
			return fmt.Errorf("resolve archive root: %w", err)
		}
		if err := safety.CheckRoot(root); err != nil {
			return fmt.Errorf("archive root %q: %w", root, err)
		}
		a := paths.ArchiveUnder(root)
		archive = &a
		roots = append(roots, root)
	}

	var extra []reset.Target
	if configFlag != "" {
		cfg, err := config.Load(configFlag)
		if err != nil {
			return err
		}
		for _, t := range cfg.ExtraTargets {
			extra = append(extra, reset.Target{Path: t.Path, Kind: t.Kind, Label: t.Label})
			roots = append(roots, filepath.Dir(t.Path))
		}
	}

	r := reset.New(rep, cmd.InOrStdin(), forceFlag, dryRunFlag)
	r.SetValidator(safety.NewValidator(roots))

	if dbOnlyFlag {
		r.DBOnly(primary, dev)
		return nil
	}
	r.FullReset(primary, dev, archive, extra)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "au-reset: %v\n", err)
		os.Exit(exitcodes.InvalidInvocation)
	}
}
