package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/mspanwala8/pokestat/internal/usecase"
	"github.com/spf13/cobra"
)

func validateCmd() *cobra.Command {
	var workspace string
	var job string
	var extraConfigs []string

	c := &cobra.Command{
		Use:   "validate",
		Short: "Validate a job's merged configuration (no HTTP)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			jobPath, err := resolveJobPath(ws, job)
			if err != nil {
				return err
			}
			sources := configSources(ws, extraConfigs, jobPath)

			uc := usecase.NewValidateJob(ws.configs)
			statuses, vErr := uc.Execute(cmd.Context(), sources)

			printKeyStatuses(os.Stdout, statuses)

			if vErr != nil {
				return vErr
			}

			fmt.Println("OK")
			return nil
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&job, "job", "j", "", "Job name or path (optional; defaults to workspace default job)")
	c.Flags().StringArrayVar(&extraConfigs, "config", nil, "Extra config source merged before the job file (repeatable)")

	return c
}

func printKeyStatuses(w io.Writer, statuses []usecase.KeyStatus) {
	for _, s := range statuses {
		mark := "✓"
		detail := s.Origin
		if !s.Present {
			mark = "✗"
			detail = "missing"
		}
		fmt.Fprintf(w, "  %s %-20s %s\n", mark, s.Key, detail)
	}
}
