// Package config loads YAML configuration sources from disk and merges
// them into the flat lookup the pipeline runs from.
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var (
	_ ports.ConfigLoader = (*Loader)(nil)
	_ ports.JobCatalog   = (*Loader)(nil)
)

// Load reads each path in order and merges the documents last-wins. Any
// unreadable or malformed source aborts the load.
func (l *Loader) Load(paths []string) (domain.Config, error) {
	sources := make([]domain.Source, 0, len(paths))
	for _, path := range paths {
		src, err := loadSource(path)
		if err != nil {
			return domain.Config{}, err
		}
		sources = append(sources, src)
	}
	return domain.MergeSources(sources...), nil
}

// ListJobs returns the job files directly under dir, named by file base.
func (l *Loader) ListJobs(dir string) ([]domain.JobRef, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "config.list_jobs",
			Kind: domain.KindNotFound,
			Path: dir,
			Err:  err,
		}
	}

	var refs []domain.JobRef
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		refs = append(refs, domain.JobRef{
			Name: strings.TrimSuffix(name, filepath.Ext(name)),
			Path: filepath.Join(dir, name),
		})
	}

	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}

func loadSource(path string) (domain.Source, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.Source{}, &domain.OpError{
			Op:   "config.load_source",
			Kind: domain.KindConfigLoad,
			Path: path,
			Err:  err,
		}
	}

	values := map[string]any{}
	if err := yaml.Unmarshal(b, &values); err != nil {
		return domain.Source{}, &domain.OpError{
			Op:   "config.load_source",
			Kind: domain.KindConfigLoad,
			Path: path,
			Err:  err,
		}
	}

	return domain.Source{Name: sourceName(path), Values: values}, nil
}

// sourceName is the file base without extension, e.g. "user_config".
func sourceName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
