package usecase

import (
	"context"
	"fmt"
	"strconv"
	"time"

	apptemplate "github.com/mspanwala8/pokestat/internal/app/template"
	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
	ucaggregate "github.com/mspanwala8/pokestat/internal/usecase/aggregate"
)

// RunAnalysis drives one full pipeline run: load and merge the
// configuration sources, fetch the remote collection, aggregate it,
// render the chart, and push the completion notification.
//
// Config and fetch failures abort the run. Render and notify failures
// are isolated per stage: they become report warnings and the run still
// finishes successfully.
type RunAnalysis struct {
	configs  ports.ConfigLoader
	fetcher  ports.Fetcher
	renderer ports.ChartRenderer
	store    ports.ArtifactStore
	notifier ports.Notifier
}

func NewRunAnalysis(cl ports.ConfigLoader, f ports.Fetcher, r ports.ChartRenderer, s ports.ArtifactStore, n ports.Notifier) *RunAnalysis {
	return &RunAnalysis{
		configs:  cl,
		fetcher:  f,
		renderer: r,
		store:    s,
		notifier: n, // nil disables the notify stage
	}
}

// Execute runs the pipeline for job using the ordered configuration
// sources (later sources win on key collision).
func (uc *RunAnalysis) Execute(ctx context.Context, job string, sources []string) (domain.Report, error) {
	cfg, err := uc.configs.Load(sources)
	if err != nil {
		return domain.Report{}, err
	}

	fetchOpts, err := cfg.FetchOptions()
	if err != nil {
		return domain.Report{}, err
	}

	report := domain.Report{
		Job:       job,
		URL:       fetchOpts.URL(),
		StartedAt: time.Now(),
	}

	if err := ctx.Err(); err != nil {
		return domain.Report{}, err
	}

	col, err := uc.fetcher.Fetch(ctx, fetchOpts)
	if err != nil {
		return domain.Report{}, err
	}

	report.Summary = ucaggregate.Apply(col.Records)

	uc.render(&report, cfg)
	uc.notify(ctx, &report, cfg)

	report.FinishedAt = time.Now()
	return report, nil
}

func (uc *RunAnalysis) render(report *domain.Report, cfg domain.Config) {
	opts, err := cfg.DisplayOptions()
	if err != nil {
		warn(report, domain.StageRender, err)
		return
	}

	image, err := uc.renderer.Render(report.Summary.ChartData(), opts)
	if err != nil {
		warn(report, domain.StageRender, err)
		return
	}

	path, err := uc.store.SaveChart(opts.SavePath, image)
	if err != nil {
		warn(report, domain.StageRender, err)
		return
	}
	report.ChartPath = path
}

func (uc *RunAnalysis) notify(ctx context.Context, report *domain.Report, cfg domain.Config) {
	if uc.notifier == nil {
		return
	}

	opts, err := cfg.NotifyOptions()
	if err != nil {
		warn(report, domain.StageNotify, err)
		return
	}

	message, err := apptemplate.RenderString(opts.Message, messageVars(*report))
	if err != nil {
		warn(report, domain.StageNotify, err)
		return
	}

	if err := uc.notifier.Notify(ctx, opts, message); err != nil {
		warn(report, domain.StageNotify, err)
		return
	}
	report.Notified = true
}

func warn(report *domain.Report, stage domain.Stage, err error) {
	report.Warnings = append(report.Warnings, domain.Warning{
		Stage:   stage,
		Message: err.Error(),
	})
}

// messageVars exposes the placeholders a notify_message may reference.
func messageVars(report domain.Report) map[string]string {
	vars := map[string]string{
		"job":      report.Job,
		"total":    strconv.Itoa(report.Summary.Total),
		"distinct": strconv.Itoa(report.Summary.Distinct()),
		"top":      "",
	}
	if top, ok := report.Summary.Top(); ok {
		vars["top"] = fmt.Sprintf("%s (%d)", top.Name, top.Count)
	}
	return vars
}
