package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mspanwala8/pokestat/internal/infra/fsworkspace"
	"github.com/mspanwala8/pokestat/internal/usecase"
	"github.com/spf13/cobra"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Initialize a Pokestat workspace",
		RunE: func(_ *cobra.Command, _ []string) error {
			target := strings.TrimSpace(path)
			if target == "" {
				wd, err := os.Getwd()
				if err != nil {
					return fmt.Errorf("get working directory: %w", err)
				}
				target = wd
			}
			abs, err := filepath.Abs(target)
			if err != nil {
				return fmt.Errorf("invalid path: %w", err)
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(abs, force); err != nil {
				return err
			}

			fmt.Printf("Workspace initialized at %s\n", abs)
			return nil
		},
	}

	c.Flags().StringVar(&path, "path", "", "Directory to initialize (default: current directory)")
	c.Flags().BoolVar(&force, "force", false, "Overwrite existing template files")
	return c
}
