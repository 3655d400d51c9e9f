package ports

import (
	"context"

	"github.com/mspanwala8/pokestat/internal/domain"
)

// Fetcher retrieves and parses a remote collection in one blocking call.
type Fetcher interface {
	Fetch(ctx context.Context, opts domain.FetchOptions) (domain.Collection, error)
}
