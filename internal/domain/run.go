package domain

import "time"

// Stage identifies one pipeline stage in reports and logs.
type Stage string

const (
	StageConfig    Stage = "config"
	StageFetch     Stage = "fetch"
	StageAggregate Stage = "aggregate"
	StageRender    Stage = "render"
	StageNotify    Stage = "notify"
)

// Warning records a non-fatal stage failure. Render and notify failures
// degrade the output but never fail the run.
type Warning struct {
	Stage   Stage
	Message string
}

// Report is the outcome of one analysis run. A Report only exists for
// runs that reached the aggregate stage; config and fetch failures
// surface as errors instead.
type Report struct {
	Job string
	URL string

	StartedAt  time.Time
	FinishedAt time.Time

	Summary   Summary
	ChartPath string
	Notified  bool

	Warnings []Warning
}

// FailedStage names the stage a fatal run error came from. Render and
// notify problems never surface as errors, so only the config and fetch
// stages apply; anything unclassified counts as fetch, the first stage
// that leaves the process.
func FailedStage(err error) Stage {
	switch {
	case IsKind(err, KindConfigLoad), IsKind(err, KindMissingOption), IsKind(err, KindInvalidConfig):
		return StageConfig
	default:
		return StageFetch
	}
}

// Degraded reports whether any non-fatal stage failed.
func (r Report) Degraded() bool {
	return len(r.Warnings) > 0
}

// Duration is the wall-clock time the run took.
func (r Report) Duration() time.Duration {
	return r.FinishedAt.Sub(r.StartedAt)
}
