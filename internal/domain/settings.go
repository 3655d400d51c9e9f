package domain

// Settings represents the minimal Pokestat configuration loaded from pokestat.yaml.
type Settings struct {
	Defaults DefaultsSettings
	Paths    PathsSettings
}

type DefaultsSettings struct {
	Job string
}

type PathsSettings struct {
	ConfigsDir string
	JobsDir    string
}

// DefaultSettings provides sane defaults if pokestat.yaml is partially missing.
func DefaultSettings() Settings {
	return Settings{
		Defaults: DefaultsSettings{
			Job: "pokemon-types",
		},
		Paths: PathsSettings{
			ConfigsDir: "configs",
			JobsDir:    "jobs",
		},
	}
}
