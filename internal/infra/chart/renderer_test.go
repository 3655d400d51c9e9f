package chart

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/mspanwala8/pokestat/internal/domain"
)

func displayOpts() domain.DisplayOptions {
	return domain.DisplayOptions{
		Color:      "skyblue",
		Width:      8,
		Height:     4,
		XAxisTitle: "Pokemon type",
		YAxisTitle: "Count",
		Title:      "Pokemon type distribution",
		SavePath:   "out/types.png",
	}
}

func TestRenderer_ProducesPNG(t *testing.T) {
	data := domain.ChartData{
		Labels: []string{"fire", "water", "grass"},
		Counts: []int{3, 2, 1},
	}

	image, err := New().Render(data, displayOpts())
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(image) == 0 {
		t.Fatalf("expected non-empty image")
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(image))
	if err != nil {
		t.Fatalf("expected decodable png, got %v", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		t.Fatalf("expected positive dimensions, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width <= cfg.Height {
		t.Fatalf("expected landscape figure for 8x4 inches, got %dx%d", cfg.Width, cfg.Height)
	}
}

func TestRenderer_MismatchedLengths(t *testing.T) {
	data := domain.ChartData{
		Labels: []string{"fire", "water"},
		Counts: []int{1},
	}

	image, err := New().Render(data, displayOpts())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render kind, got %v", err)
	}
	if image != nil {
		t.Fatalf("expected no image on failure")
	}
}

func TestRenderer_UnknownColor(t *testing.T) {
	data := domain.ChartData{Labels: []string{"fire"}, Counts: []int{1}}
	opts := displayOpts()
	opts.Color = "not-a-color"

	_, err := New().Render(data, opts)
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindRender) {
		t.Fatalf("expected render kind, got %v", err)
	}
}

func TestRenderer_HexColor(t *testing.T) {
	data := domain.ChartData{Labels: []string{"fire"}, Counts: []int{1}}
	opts := displayOpts()
	opts.Color = "#87ceeb"

	image, err := New().Render(data, opts)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}
	if len(image) == 0 {
		t.Fatalf("expected non-empty image")
	}
}

func TestRenderer_EmptyDataIsNotAnError(t *testing.T) {
	image, err := New().Render(domain.ChartData{}, displayOpts())
	if err != nil {
		t.Fatalf("expected empty chart to render, got %v", err)
	}
	if len(image) == 0 {
		t.Fatalf("expected non-empty image")
	}
}
