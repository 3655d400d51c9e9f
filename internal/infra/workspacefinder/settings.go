package workspacefinder

import (
	"os"
	"path/filepath"

	"github.com/mspanwala8/pokestat/internal/domain"
	"gopkg.in/yaml.v3"
)

// LoadSettings loads pokestat.yaml from the workspace root and applies defaults.
func LoadSettings(root string) (domain.Settings, error) {
	settings := domain.DefaultSettings()

	path := filepath.Join(root, "pokestat.yaml")
	b, err := os.ReadFile(path)
	if err != nil {
		return settings, &domain.OpError{
			Op:   "workspacefinder.loadsettings",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlSettings
	if err := yaml.Unmarshal(b, &y); err != nil {
		return settings, &domain.OpError{
			Op:   "workspacefinder.loadsettings",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	if y.Pokestat.Defaults.Job != "" {
		settings.Defaults.Job = y.Pokestat.Defaults.Job
	}
	if y.Pokestat.Paths.ConfigsDir != "" {
		settings.Paths.ConfigsDir = y.Pokestat.Paths.ConfigsDir
	}
	if y.Pokestat.Paths.JobsDir != "" {
		settings.Paths.JobsDir = y.Pokestat.Paths.JobsDir
	}

	return settings, nil
}

type yamlSettings struct {
	Pokestat struct {
		Defaults struct {
			Job string `yaml:"job"`
		} `yaml:"defaults"`

		Paths struct {
			ConfigsDir string `yaml:"configs_dir"`
			JobsDir    string `yaml:"jobs_dir"`
		} `yaml:"paths"`
	} `yaml:"pokestat"`
}
