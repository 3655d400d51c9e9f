package ports

import "github.com/mspanwala8/pokestat/internal/domain"

// ConfigLoader loads an ordered list of configuration sources (e.g.,
// YAML files) and merges them last-wins into a single Config.
type ConfigLoader interface {
	Load(paths []string) (domain.Config, error)
}
