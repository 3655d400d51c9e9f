// Package httpfetch retrieves remote collections over HTTP.
package httpfetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

const defaultMaxBodyBytes = 4 * 1024 * 1024 // 4MB

type Fetcher struct {
	client       *http.Client
	maxBodyBytes int64
}

type Option func(*Fetcher)

func WithMaxBodyBytes(n int64) Option {
	return func(f *Fetcher) { f.maxBodyBytes = n }
}

func New(client *http.Client, opts ...Option) *Fetcher {
	f := &Fetcher{
		client:       client,
		maxBodyBytes: defaultMaxBodyBytes,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.Fetcher = (*Fetcher)(nil)

// Fetch performs one GET against opts.URL() and maps the configured
// results field into domain records. Transport errors, non-2xx
// statuses, and unparseable bodies all classify as fetch failures; the
// caller decides whether to surface or retry (the pipeline does not).
func (f *Fetcher) Fetch(ctx context.Context, opts domain.FetchOptions) (domain.Collection, error) {
	url := opts.URL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return domain.Collection{}, fetchErr(url, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return domain.Collection{}, fetchErr(url, err)
	}
	defer resp.Body.Close()

	body, truncated, err := readBounded(resp.Body, f.maxBodyBytes)
	if err != nil {
		return domain.Collection{}, fetchErr(url, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return domain.Collection{}, fetchErr(url, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, snippet(body)))
	}
	if truncated {
		return domain.Collection{}, fetchErr(url, fmt.Errorf("response body exceeds %d bytes", f.maxBodyBytes))
	}

	records, err := parseRecords(body, opts.ResultsPath)
	if err != nil {
		return domain.Collection{}, fetchErr(url, err)
	}

	return domain.Collection{SourceURL: url, Records: records}, nil
}

func parseRecords(body []byte, resultsPath string) ([]domain.Record, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, fmt.Errorf("response body is not valid JSON: %w", err)
	}

	raw, err := jsonpath.Get(resultsPath, doc)
	if err != nil {
		return nil, fmt.Errorf("results path %q: %w", resultsPath, err)
	}

	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("results path %q: expected a sequence, got %T", resultsPath, raw)
	}

	records := make([]domain.Record, 0, len(items))
	for i, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("results[%d]: expected an object, got %T", i, item)
		}
		name, ok := entry["name"].(string)
		if !ok {
			return nil, fmt.Errorf("results[%d]: missing name field", i)
		}
		// url is pass-through only; tolerate its absence.
		url, _ := entry["url"].(string)
		records = append(records, domain.Record{Name: name, URL: url})
	}
	return records, nil
}

func readBounded(r io.Reader, maxBytes int64) ([]byte, bool, error) {
	lim := io.LimitReader(r, maxBytes+1)
	b, err := io.ReadAll(lim)
	if err != nil {
		return nil, false, err
	}
	if int64(len(b)) > maxBytes {
		return b[:maxBytes], true, nil
	}
	return b, false, nil
}

func snippet(b []byte) string {
	const max = 180
	s := strings.TrimSpace(string(b))
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}

func fetchErr(url string, err error) error {
	return &domain.OpError{
		Op:   "fetch.get",
		Kind: domain.KindFetch,
		Path: url,
		Err:  err,
	}
}
