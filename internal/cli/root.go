package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mspanwala8/pokestat/internal/infra/fsworkspace"
	"github.com/mspanwala8/pokestat/internal/infra/logger"
	"github.com/mspanwala8/pokestat/internal/infra/workspacefinder"
	"github.com/mspanwala8/pokestat/internal/ui/tui"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:          "pokestat",
		Short:        "Pokestat, a config-driven PokeAPI analysis tool",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			wd, err := os.Getwd()
			if err != nil {
				wd = "."
			}
			wd, _ = filepath.Abs(wd)

			finder := workspacefinder.NewFinder()

			logRoot := wd
			if root, ferr := finder.FindRoot(wd); ferr == nil && root != "" {
				logRoot = root
			}

			cleanup, _ := logger.Setup(logger.Config{
				Root:  logRoot,
				Debug: debug,
			})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			deps := tui.Deps{
				WorkspaceLocator:     finder,
				WorkspaceInitializer: fsworkspace.NewInitializer(),
				Logger:               logger.L(),
				Debug:                debug,
			}

			return tui.Run(deps)
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable verbose logging to .pokestat/logs/pokestat.log")

	cmd.AddCommand(runCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(jobsCmd())
	cmd.AddCommand(versionCmd())
	cmd.AddCommand(initCmd())

	return cmd
}
