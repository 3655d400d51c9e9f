package ports

import (
	"context"

	"github.com/mspanwala8/pokestat/internal/domain"
)

// Notifier pushes a best-effort completion notification. Callers treat
// any returned error as non-fatal.
type Notifier interface {
	Notify(ctx context.Context, opts domain.NotifyOptions, message string) error
}
