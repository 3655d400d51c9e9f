package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mspanwala8/pokestat/internal/infra/artifact"
	"github.com/mspanwala8/pokestat/internal/infra/chart"
	"github.com/mspanwala8/pokestat/internal/infra/config"
	"github.com/mspanwala8/pokestat/internal/infra/httpclient"
	"github.com/mspanwala8/pokestat/internal/infra/httpfetch"
	"github.com/mspanwala8/pokestat/internal/infra/ntfy"
	"github.com/mspanwala8/pokestat/internal/infra/workspacefinder"
	"github.com/mspanwala8/pokestat/internal/usecase"
)

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{cwd: "", found: false, err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, found: false, err: findErr}
		}

		return workspaceRefreshedMsg{cwd: wd, found: true, root: root, err: nil}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(root, true)
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadJobs(root string) tea.Cmd {
	return func() tea.Msg {
		settings, err := workspacefinder.LoadSettings(root)
		if err != nil {
			return jobsLoadedMsg{root: root, err: err}
		}

		loader := config.NewLoader()
		refs, err := loader.ListJobs(filepath.Join(root, settings.Paths.JobsDir))
		return jobsLoadedMsg{root: root, refs: refs, err: err}
	}
}

func listenRun(ch <-chan runDoneMsg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return runDoneMsg{err: errors.New("run channel closed")}
		}
		return msg
	}
}

// runTimeout bounds a whole pipeline run; the HTTP client additionally
// bounds each outbound call.
const runTimeout = 2 * time.Minute

func startRunAsync(
	workspaceRoot, jobName, jobPath string,
	log *slog.Logger,
	debug bool,
) (chan runDoneMsg, tea.Cmd) {
	ch := make(chan runDoneMsg, 1)

	if log == nil {
		log = slog.Default()
	}

	go func() {
		defer close(ch)

		settings, err := workspacefinder.LoadSettings(workspaceRoot)
		if err != nil {
			log.Error("run.load_settings.failed", "err", err)
			ch <- runDoneMsg{err: err}
			return
		}

		if jobName == "" {
			jobName = settings.Defaults.Job
		}
		if jobPath == "" {
			jobPath = findJobFile(workspaceRoot, settings.Paths.JobsDir, jobName)
		}

		log.Info("run.start",
			"workspace", workspaceRoot,
			"job", jobName,
			"job_path", jobPath,
			"debug", debug,
		)

		configsDir := filepath.Join(workspaceRoot, settings.Paths.ConfigsDir)
		sources := []string{
			firstExisting(
				filepath.Join(configsDir, "system_config.yaml"),
				filepath.Join(configsDir, "system_config.yml"),
			),
			firstExisting(
				filepath.Join(configsDir, "user_config.yaml"),
				filepath.Join(configsDir, "user_config.yml"),
			),
			jobPath,
		}

		loader := config.NewLoader()
		client := httpclient.New(httpclient.DefaultConfig())

		uc := usecase.NewRunAnalysis(
			loader,
			httpfetch.New(client),
			chart.New(),
			artifact.NewStore(workspaceRoot),
			ntfy.New(client),
		)

		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()

		report, execErr := uc.Execute(ctx, jobName, sources)

		if execErr != nil {
			log.Error("run.failed", "job", jobName, "err", execErr)
		} else {
			log.Info("run.ok",
				"job", report.Job,
				"total", report.Summary.Total,
				"distinct", report.Summary.Distinct(),
				"chart", report.ChartPath,
				"notified", report.Notified,
			)
		}

		for _, w := range report.Warnings {
			log.Warn("stage.warning", "stage", string(w.Stage), "message", w.Message)
		}
		if debug {
			for _, e := range report.Summary.Ranking {
				log.Debug("ranking.entry", "name", e.Name, "count", e.Count)
			}
		}

		ch <- runDoneMsg{report: report, err: execErr}
	}()

	return ch, listenRun(ch)
}

func findJobFile(root, jobsDir, name string) string {
	dir := filepath.Join(root, jobsDir)
	return firstExisting(
		filepath.Join(dir, name+".yaml"),
		filepath.Join(dir, name+".yml"),
	)
}

// firstExisting returns the first path that exists, or the first candidate
// so a later load error names the expected location.
func firstExisting(paths ...string) string {
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return paths[0]
}
