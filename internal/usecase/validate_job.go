package usecase

import (
	"context"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

// ValidateJob checks that merged configuration sources can drive a full
// run, without performing any network call.
type ValidateJob struct {
	configs ports.ConfigLoader
}

func NewValidateJob(cl ports.ConfigLoader) *ValidateJob {
	return &ValidateJob{configs: cl}
}

// KeyStatus describes one required key after the merge.
type KeyStatus struct {
	Key     string
	Present bool
	Origin  string
}

// Execute loads and merges sources, reports the presence and origin of
// every required key, and runs the option extractors so malformed
// values (e.g., a bad figure_size) fail here instead of mid-run. The
// statuses are returned even when err is non-nil so callers can show
// what was found.
func (uc *ValidateJob) Execute(ctx context.Context, sources []string) ([]KeyStatus, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := uc.configs.Load(sources)
	if err != nil {
		return nil, err
	}

	statuses := make([]KeyStatus, 0, len(domain.RequiredKeys()))
	for _, key := range domain.RequiredKeys() {
		st := KeyStatus{Key: key}
		if _, ok := cfg.Get(key); ok {
			st.Present = true
			st.Origin, _ = cfg.Origin(key)
		}
		statuses = append(statuses, st)
	}

	if _, err := cfg.FetchOptions(); err != nil {
		return statuses, err
	}
	if _, err := cfg.DisplayOptions(); err != nil {
		return statuses, err
	}
	if _, err := cfg.NotifyOptions(); err != nil {
		return statuses, err
	}
	return statuses, nil
}
