package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Documented defaults. Every other key consumed by an options extractor
// is required and fails with KindMissingOption when absent.
const (
	DefaultResultsPath   = "$.results"
	DefaultNotifyServer  = "https://ntfy.sh"
	DefaultNotifyMessage = "Analysis of {{job}} is complete: {{total}} entries across {{distinct}} names. Check the results."
)

// RequiredKeys lists every key an analysis run reads that has no
// documented default.
func RequiredKeys() []string {
	return []string{
		"base_url",
		"param_type",
		"plot_color",
		"figure_size",
		"plot_x_axis_title",
		"plot_y_axis_title",
		"plot_title",
		"default_save_path",
		"topicname",
		"title",
	}
}

// FetchOptions is the subset of Config consumed to retrieve the remote
// collection.
type FetchOptions struct {
	BaseURL     string
	ParamType   string
	ResultsPath string
}

// URL composes the fetch target as {base_url}/{param_type}.
func (o FetchOptions) URL() string {
	return strings.TrimRight(o.BaseURL, "/") + "/" + strings.TrimLeft(o.ParamType, "/")
}

// FetchOptions extracts and validates the fetch-related keys.
func (c Config) FetchOptions() (FetchOptions, error) {
	const op = "config.fetch_options"

	baseURL, err := c.requiredString(op, "base_url")
	if err != nil {
		return FetchOptions{}, err
	}
	paramType, err := c.requiredString(op, "param_type")
	if err != nil {
		return FetchOptions{}, err
	}

	opts := FetchOptions{
		BaseURL:     baseURL,
		ParamType:   paramType,
		ResultsPath: DefaultResultsPath,
	}
	if v, ok := c.Get("results_path"); ok {
		s, err := scalarString(op, "results_path", v)
		if err != nil {
			return FetchOptions{}, err
		}
		opts.ResultsPath = s
	}
	return opts, nil
}

// DisplayOptions is the subset of Config consumed by the chart renderer.
type DisplayOptions struct {
	Color      string
	Width      float64
	Height     float64
	XAxisTitle string
	YAxisTitle string
	Title      string
	SavePath   string
}

// DisplayOptions extracts and validates the chart-related keys.
func (c Config) DisplayOptions() (DisplayOptions, error) {
	const op = "config.display_options"

	var opts DisplayOptions
	var err error
	if opts.Color, err = c.requiredString(op, "plot_color"); err != nil {
		return DisplayOptions{}, err
	}
	if opts.XAxisTitle, err = c.requiredString(op, "plot_x_axis_title"); err != nil {
		return DisplayOptions{}, err
	}
	if opts.YAxisTitle, err = c.requiredString(op, "plot_y_axis_title"); err != nil {
		return DisplayOptions{}, err
	}
	if opts.Title, err = c.requiredString(op, "plot_title"); err != nil {
		return DisplayOptions{}, err
	}
	if opts.SavePath, err = c.requiredString(op, "default_save_path"); err != nil {
		return DisplayOptions{}, err
	}

	size, ok := c.Get("figure_size")
	if !ok {
		return DisplayOptions{}, missingKey(op, "figure_size")
	}
	opts.Width, opts.Height, err = parseFigureSize(op, size)
	if err != nil {
		return DisplayOptions{}, err
	}
	return opts, nil
}

// NotifyOptions is the subset of Config consumed to push the completion
// notification.
type NotifyOptions struct {
	Server  string
	Topic   string
	Title   string
	Message string
}

// NotifyOptions extracts and validates the notification-related keys.
func (c Config) NotifyOptions() (NotifyOptions, error) {
	const op = "config.notify_options"

	topic, err := c.requiredString(op, "topicname")
	if err != nil {
		return NotifyOptions{}, err
	}
	title, err := c.requiredString(op, "title")
	if err != nil {
		return NotifyOptions{}, err
	}

	opts := NotifyOptions{
		Server:  DefaultNotifyServer,
		Topic:   topic,
		Title:   title,
		Message: DefaultNotifyMessage,
	}
	if v, ok := c.Get("notify_server"); ok {
		s, err := scalarString(op, "notify_server", v)
		if err != nil {
			return NotifyOptions{}, err
		}
		opts.Server = s
	}
	if v, ok := c.Get("notify_message"); ok {
		s, err := scalarString(op, "notify_message", v)
		if err != nil {
			return NotifyOptions{}, err
		}
		opts.Message = s
	}
	return opts, nil
}

// parseFigureSize accepts either a two-element sequence of positive
// numbers or a "WxH"/"W,H" string.
func parseFigureSize(op string, v any) (width, height float64, err error) {
	const key = "figure_size"

	switch size := v.(type) {
	case []any:
		if len(size) != 2 {
			return 0, 0, invalidKey(op, key, fmt.Sprintf("expected 2 dimensions, got %d", len(size)))
		}
		width, err = scalarFloat(op, key, size[0])
		if err != nil {
			return 0, 0, err
		}
		height, err = scalarFloat(op, key, size[1])
		if err != nil {
			return 0, 0, err
		}
	case string:
		sep := "x"
		if strings.Contains(size, ",") {
			sep = ","
		}
		parts := strings.SplitN(size, sep, 2)
		if len(parts) != 2 {
			return 0, 0, invalidKey(op, key, fmt.Sprintf("cannot parse %q as WxH", size))
		}
		width, err = scalarFloat(op, key, strings.TrimSpace(parts[0]))
		if err != nil {
			return 0, 0, err
		}
		height, err = scalarFloat(op, key, strings.TrimSpace(parts[1]))
		if err != nil {
			return 0, 0, err
		}
	default:
		return 0, 0, invalidKey(op, key, fmt.Sprintf("unsupported value of type %T", v))
	}

	if width <= 0 || height <= 0 {
		return 0, 0, invalidKey(op, key, fmt.Sprintf("dimensions must be positive, got %gx%g", width, height))
	}
	return width, height, nil
}

func (c Config) requiredString(op, key string) (string, error) {
	v, ok := c.Get(key)
	if !ok {
		return "", missingKey(op, key)
	}
	s, err := scalarString(op, key, v)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(s) == "" {
		return "", &OpError{
			Op:   op,
			Kind: KindMissingOption,
			Err:  fmt.Errorf("key %q is empty: %w", key, ErrKeyAbsent),
		}
	}
	return s, nil
}

func scalarString(op, key string, v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(s), nil
	default:
		return "", invalidKey(op, key, fmt.Sprintf("expected a scalar, got %T", v))
	}
}

func scalarFloat(op, key string, v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		if err != nil {
			return 0, invalidKey(op, key, fmt.Sprintf("cannot parse %q as a number", n))
		}
		return f, nil
	default:
		return 0, invalidKey(op, key, fmt.Sprintf("expected a number, got %T", v))
	}
}

func missingKey(op, key string) error {
	return &OpError{
		Op:   op,
		Kind: KindMissingOption,
		Err:  fmt.Errorf("required key %q is not set in any source: %w", key, ErrKeyAbsent),
	}
}

func invalidKey(op, key, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidConfig,
		Err:  fmt.Errorf("key %s: %s: %w", key, msg, ErrInvalidConfig),
	}
}
