package domain

import (
	"strings"
	"testing"
)

func configWith(values map[string]any) Config {
	return MergeSources(Source{Name: "test", Values: values})
}

func fullValues() map[string]any {
	return map[string]any{
		"base_url":          "https://pokeapi.co/api/v2",
		"param_type":        "type",
		"plot_color":        "skyblue",
		"figure_size":       []any{12, 6},
		"plot_x_axis_title": "Pokemon type",
		"plot_y_axis_title": "Count",
		"plot_title":        "Pokemon type distribution",
		"default_save_path": "out/types.png",
		"topicname":         "pokestat-demo",
		"title":             "Pokestat",
	}
}

func TestFetchOptionsComposesURL(t *testing.T) {
	cases := []struct {
		name    string
		base    string
		param   string
		wantURL string
	}{
		{name: "plain join", base: "https://pokeapi.co/api/v2", param: "type", wantURL: "https://pokeapi.co/api/v2/type"},
		{name: "trailing slash", base: "https://pokeapi.co/api/v2/", param: "type", wantURL: "https://pokeapi.co/api/v2/type"},
		{name: "leading slash", base: "https://pokeapi.co/api/v2", param: "/type", wantURL: "https://pokeapi.co/api/v2/type"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := configWith(map[string]any{"base_url": tc.base, "param_type": tc.param})
			opts, err := cfg.FetchOptions()
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := opts.URL(); got != tc.wantURL {
				t.Fatalf("expected url %q, got %q", tc.wantURL, got)
			}
		})
	}
}

func TestFetchOptionsDefaultsResultsPath(t *testing.T) {
	cfg := configWith(map[string]any{"base_url": "https://a", "param_type": "type"})
	opts, err := cfg.FetchOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ResultsPath != DefaultResultsPath {
		t.Fatalf("expected default results path, got %q", opts.ResultsPath)
	}

	cfg = configWith(map[string]any{"base_url": "https://a", "param_type": "type", "results_path": "$.data"})
	opts, err = cfg.FetchOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.ResultsPath != "$.data" {
		t.Fatalf("expected override, got %q", opts.ResultsPath)
	}
}

func TestFetchOptionsMissingKey(t *testing.T) {
	cfg := configWith(map[string]any{"base_url": "https://a"})
	_, err := cfg.FetchOptions()
	if err == nil {
		t.Fatalf("expected error for missing param_type")
	}
	if !IsKind(err, KindMissingOption) {
		t.Fatalf("expected missing_option kind, got %v", err)
	}
	if !strings.Contains(err.Error(), "param_type") {
		t.Fatalf("expected error to name the key, got %v", err)
	}
}

func TestDisplayOptionsComplete(t *testing.T) {
	cfg := configWith(fullValues())
	opts, err := cfg.DisplayOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Color != "skyblue" {
		t.Fatalf("expected color skyblue, got %q", opts.Color)
	}
	if opts.Width != 12 || opts.Height != 6 {
		t.Fatalf("expected size 12x6, got %gx%g", opts.Width, opts.Height)
	}
	if opts.SavePath != "out/types.png" {
		t.Fatalf("expected save path, got %q", opts.SavePath)
	}
}

func TestDisplayOptionsMissingEachRequiredKey(t *testing.T) {
	for _, key := range []string{"plot_color", "figure_size", "plot_x_axis_title", "plot_y_axis_title", "plot_title", "default_save_path"} {
		values := fullValues()
		delete(values, key)
		cfg := configWith(values)

		_, err := cfg.DisplayOptions()
		if err == nil {
			t.Fatalf("expected error for missing %s", key)
		}
		if !IsKind(err, KindMissingOption) {
			t.Fatalf("expected missing_option kind for %s, got %v", key, err)
		}
	}
}

func TestParseFigureSize(t *testing.T) {
	cases := []struct {
		name    string
		value   any
		wantW   float64
		wantH   float64
		wantErr bool
	}{
		{name: "int pair", value: []any{12, 6}, wantW: 12, wantH: 6},
		{name: "float pair", value: []any{10.5, 4.2}, wantW: 10.5, wantH: 4.2},
		{name: "x string", value: "12x6", wantW: 12, wantH: 6},
		{name: "comma string", value: "10.5, 4", wantW: 10.5, wantH: 4},
		{name: "one element", value: []any{12}, wantErr: true},
		{name: "three elements", value: []any{1, 2, 3}, wantErr: true},
		{name: "zero width", value: []any{0, 6}, wantErr: true},
		{name: "negative height", value: "12x-6", wantErr: true},
		{name: "garbage string", value: "big", wantErr: true},
		{name: "wrong type", value: map[string]any{"w": 1}, wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			values := fullValues()
			values["figure_size"] = tc.value
			cfg := configWith(values)

			opts, err := cfg.DisplayOptions()
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for %v", tc.value)
				}
				if !IsKind(err, KindInvalidConfig) {
					t.Fatalf("expected invalid_config kind, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if opts.Width != tc.wantW || opts.Height != tc.wantH {
				t.Fatalf("expected %gx%g, got %gx%g", tc.wantW, tc.wantH, opts.Width, opts.Height)
			}
		})
	}
}

func TestNotifyOptionsDefaults(t *testing.T) {
	cfg := configWith(map[string]any{"topicname": "demo", "title": "Pokestat"})
	opts, err := cfg.NotifyOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Server != DefaultNotifyServer {
		t.Fatalf("expected default server, got %q", opts.Server)
	}
	if opts.Message != DefaultNotifyMessage {
		t.Fatalf("expected default message, got %q", opts.Message)
	}
	if opts.Topic != "demo" || opts.Title != "Pokestat" {
		t.Fatalf("expected topic/title from config, got %q/%q", opts.Topic, opts.Title)
	}
}

func TestNotifyOptionsOverrides(t *testing.T) {
	cfg := configWith(map[string]any{
		"topicname":      "demo",
		"title":          "Pokestat",
		"notify_server":  "https://ntfy.internal",
		"notify_message": "done: {{total}}",
	})
	opts, err := cfg.NotifyOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Server != "https://ntfy.internal" {
		t.Fatalf("expected server override, got %q", opts.Server)
	}
	if opts.Message != "done: {{total}}" {
		t.Fatalf("expected message override, got %q", opts.Message)
	}
}

func TestNotifyOptionsMissingTopic(t *testing.T) {
	cfg := configWith(map[string]any{"title": "Pokestat"})
	_, err := cfg.NotifyOptions()
	if err == nil {
		t.Fatalf("expected error for missing topicname")
	}
	if !IsKind(err, KindMissingOption) {
		t.Fatalf("expected missing_option kind, got %v", err)
	}
}

func TestRequiredStringRejectsBlank(t *testing.T) {
	values := fullValues()
	values["plot_title"] = "   "
	cfg := configWith(values)

	_, err := cfg.DisplayOptions()
	if err == nil {
		t.Fatalf("expected error for blank plot_title")
	}
	if !IsKind(err, KindMissingOption) {
		t.Fatalf("expected missing_option kind, got %v", err)
	}
}

func TestScalarCoercion(t *testing.T) {
	values := fullValues()
	values["topicname"] = 42
	cfg := configWith(values)

	opts, err := cfg.NotifyOptions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if opts.Topic != "42" {
		t.Fatalf("expected numeric scalar coerced to string, got %q", opts.Topic)
	}

	values["topicname"] = []any{"a"}
	cfg = configWith(values)
	if _, err := cfg.NotifyOptions(); !IsKind(err, KindInvalidConfig) {
		t.Fatalf("expected invalid_config for non-scalar, got %v", err)
	}
}
