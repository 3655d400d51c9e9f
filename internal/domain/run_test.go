package domain

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFailedStage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Stage
	}{
		{name: "config load", err: &OpError{Op: "config.load_source", Kind: KindConfigLoad, Err: errors.New("no such file")}, want: StageConfig},
		{name: "missing key", err: &OpError{Op: "config.fetch_options", Kind: KindMissingOption, Err: ErrKeyAbsent}, want: StageConfig},
		{name: "invalid value", err: &OpError{Op: "config.fetch_options", Kind: KindInvalidConfig, Err: ErrInvalidConfig}, want: StageConfig},
		{name: "fetch", err: &OpError{Op: "fetch.get", Kind: KindFetch, Err: errors.New("status 500")}, want: StageFetch},
		{name: "cancellation", err: context.Canceled, want: StageFetch},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FailedStage(tc.err); got != tc.want {
				t.Fatalf("expected stage %s, got %s", tc.want, got)
			}
		})
	}
}

func TestReportDegraded(t *testing.T) {
	var r Report
	if r.Degraded() {
		t.Fatalf("expected clean report not degraded")
	}

	r.Warnings = append(r.Warnings, Warning{Stage: StageNotify, Message: "post failed"})
	if !r.Degraded() {
		t.Fatalf("expected warned report degraded")
	}
}

func TestReportDuration(t *testing.T) {
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	r := Report{StartedAt: start, FinishedAt: start.Add(900 * time.Millisecond)}

	if r.Duration() != 900*time.Millisecond {
		t.Fatalf("expected 900ms, got %s", r.Duration())
	}
}
