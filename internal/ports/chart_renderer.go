package ports

import "github.com/mspanwala8/pokestat/internal/domain"

// ChartRenderer draws a categorical bar chart and returns the encoded
// image bytes. It must reject data whose labels and counts disagree in
// length.
type ChartRenderer interface {
	Render(data domain.ChartData, opts domain.DisplayOptions) ([]byte, error)
}
