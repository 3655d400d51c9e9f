package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/infra/logger"
	"github.com/mspanwala8/pokestat/internal/usecase"
	"github.com/spf13/cobra"
)

func runCmd() *cobra.Command {
	var workspace string
	var job string
	var extraConfigs []string
	var noNotify bool
	var format string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run an analysis job from a Pokestat workspace",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ws, err := loadWorkspace(workspace)
			if err != nil {
				return err
			}

			debug, _ := cmd.Flags().GetBool("debug")
			cleanup, _ := logger.Setup(logger.Config{Root: ws.root, Debug: debug})
			if cleanup != nil {
				defer func() { _ = cleanup() }()
			}

			jobPath, err := resolveJobPath(ws, job)
			if err != nil {
				return err
			}
			sources := configSources(ws, extraConfigs, jobPath)

			notifier := ws.notifier
			if noNotify {
				notifier = nil
			}

			uc := usecase.NewRunAnalysis(ws.configs, ws.fetcher, ws.renderer, ws.store, notifier)

			logger.L().Info("run.start", "job", jobName(jobPath), "sources", sources)
			report, err := uc.Execute(cmd.Context(), jobName(jobPath), sources)
			if err != nil {
				logger.L().Error("run.failed",
					"job", jobName(jobPath),
					"stage", string(domain.FailedStage(err)),
					"err", err.Error(),
				)
				return err
			}
			logger.L().Info("run.done",
				"job", report.Job,
				"total", report.Summary.Total,
				"distinct", report.Summary.Distinct(),
				"degraded", report.Degraded(),
			)
			for _, warn := range report.Warnings {
				logger.L().Warn("stage.warning", "stage", string(warn.Stage), "message", warn.Message)
			}

			return printReport(os.Stdout, report, format)
		},
	}

	c.Flags().StringVarP(&workspace, "workspace", "w", "", "Workspace root (optional; autodetected if omitted)")
	c.Flags().StringVarP(&job, "job", "j", "", "Job name or path (optional; defaults to workspace default job)")
	c.Flags().StringArrayVar(&extraConfigs, "config", nil, "Extra config source merged before the job file (repeatable)")
	c.Flags().BoolVar(&noNotify, "no-notify", false, "Skip the push notification stage")
	c.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")

	return c
}

func printReport(w io.Writer, report domain.Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		payload := map[string]any{
			"report": report,
		}
		return enc.Encode(payload)
	case "pretty", "":
		printPrettyReport(w, report)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyReport(w io.Writer, report domain.Report) {
	fmt.Fprintf(w, "Job:      %s\n", report.Job)
	fmt.Fprintf(w, "URL:      %s\n", report.URL)
	fmt.Fprintf(w, "Started:  %s\n", report.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Finished: %s\n", report.FinishedAt.Format(time.RFC3339))
	fmt.Fprintf(w, "Duration: %s\n", report.Duration())
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Entries:  %d total, %d distinct\n", report.Summary.Total, report.Summary.Distinct())
	if top, ok := report.Summary.Top(); ok {
		fmt.Fprintf(w, "Top:      %s (%d)\n", top.Name, top.Count)
	}

	if len(report.Summary.Ranking) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Ranking:")
		for i, e := range report.Summary.Ranking {
			fmt.Fprintf(w, "  %2d. %-16s %d\n", i+1, e.Name, e.Count)
		}
	}

	fmt.Fprintln(w)
	if report.ChartPath != "" {
		fmt.Fprintf(w, "Chart:    %s\n", report.ChartPath)
	}
	if report.Notified {
		fmt.Fprintf(w, "Notified: yes\n")
	} else {
		fmt.Fprintf(w, "Notified: no\n")
	}

	if report.Degraded() {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, warn := range report.Warnings {
			fmt.Fprintf(w, "  - [%s] %s\n", warn.Stage, warn.Message)
		}
	}
}
