package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
)

func jobsCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "jobs",
		Short: "Manage analysis jobs in a workspace",
	}

	c.AddCommand(jobsListCmd())
	return c
}

func jobsListCmd() *cobra.Command {
	var workspace string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		RunE: func(_ *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			refs, err := ws.jobs.ListJobs(filepath.Join(ws.root, ws.settings.Paths.JobsDir))
			if err != nil {
				return err
			}

			if len(refs) == 0 {
				fmt.Println("(no jobs found)")
				return nil
			}

			fmt.Printf("Workspace: %s\n", ws.root)
			fmt.Printf("Default:   %s\n\n", ws.settings.Defaults.Job)

			for _, r := range refs {
				rel, _ := filepath.Rel(ws.root, r.Path)
				fmt.Printf("- %s  (%s)\n", r.Name, rel)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	return cmd
}
