package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/infra/artifact"
	"github.com/mspanwala8/pokestat/internal/infra/chart"
	"github.com/mspanwala8/pokestat/internal/infra/config"
	"github.com/mspanwala8/pokestat/internal/infra/httpclient"
	"github.com/mspanwala8/pokestat/internal/infra/httpfetch"
	"github.com/mspanwala8/pokestat/internal/infra/ntfy"
	"github.com/mspanwala8/pokestat/internal/infra/workspacefinder"
	"github.com/mspanwala8/pokestat/internal/ports"
)

type workspaceCtx struct {
	root     string
	settings domain.Settings

	configs ports.ConfigLoader
	jobs    ports.JobCatalog

	fetcher  ports.Fetcher
	renderer ports.ChartRenderer
	store    ports.ArtifactStore
	notifier ports.Notifier
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	settings, err := workspacefinder.LoadSettings(root)
	if err != nil {
		return nil, err
	}

	loader := config.NewLoader()
	client := httpclient.New(httpclient.DefaultConfig())

	return &workspaceCtx{
		root:     root,
		settings: settings,
		configs:  loader,
		jobs:     loader,
		fetcher:  httpfetch.New(client),
		renderer: chart.New(),
		store:    artifact.NewStore(root),
		notifier: ntfy.New(client),
	}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `pokestat init`): %w", wd, err)
	}
	return root, nil
}

func resolveJobPath(ws *workspaceCtx, arg string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		in = ws.settings.Defaults.Job
	}
	if in == "" {
		return "", fmt.Errorf("job is required (use --job or -j)")
	}

	// If arg looks like a path (contains separators), resolve relative to workspace root.
	if looksLikePath(in) {
		p := in
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		return filepath.Clean(p), nil
	}

	jobsDir := filepath.Join(ws.root, ws.settings.Paths.JobsDir)

	// If user provided "pokemon-types.yaml", treat it as a file under the jobs dir.
	if hasYAMLExt(in) {
		p := filepath.Join(jobsDir, in)
		if fileExists(p) {
			return p, nil
		}
	}

	// If user provided "pokemon-types", try .yaml / .yml in the jobs dir.
	p1 := filepath.Join(jobsDir, in+".yaml")
	if fileExists(p1) {
		return p1, nil
	}
	p2 := filepath.Join(jobsDir, in+".yml")
	if fileExists(p2) {
		return p2, nil
	}

	// As a last resort: match by catalog name.
	refs, err := ws.jobs.ListJobs(jobsDir)
	if err == nil {
		for _, r := range refs {
			if strings.EqualFold(r.Name, in) {
				return r.Path, nil
			}
		}
	}

	return "", fmt.Errorf("job %q not found in %q", in, jobsDir)
}

// configSources builds the ordered merge list: system config, user config,
// any extra sources, then the job file. Later sources win key by key.
func configSources(ws *workspaceCtx, extras []string, jobPath string) []string {
	configsDir := filepath.Join(ws.root, ws.settings.Paths.ConfigsDir)

	sources := []string{
		firstExisting(
			filepath.Join(configsDir, "system_config.yaml"),
			filepath.Join(configsDir, "system_config.yml"),
		),
		firstExisting(
			filepath.Join(configsDir, "user_config.yaml"),
			filepath.Join(configsDir, "user_config.yml"),
		),
	}

	for _, extra := range extras {
		p := strings.TrimSpace(extra)
		if p == "" {
			continue
		}
		if !filepath.IsAbs(p) {
			p = filepath.Join(ws.root, p)
		}
		sources = append(sources, filepath.Clean(p))
	}

	return append(sources, jobPath)
}

func jobName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func looksLikePath(s string) bool {
	return strings.Contains(s, "/") || strings.Contains(s, string(filepath.Separator))
}

func hasYAMLExt(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// firstExisting returns the first path that exists, or the first candidate
// so a later load error names the expected location.
func firstExisting(paths ...string) string {
	for _, p := range paths {
		if fileExists(p) {
			return p
		}
	}
	return paths[0]
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
