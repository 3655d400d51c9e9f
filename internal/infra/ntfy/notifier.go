// Package ntfy pushes completion notifications through an ntfy-style
// publish endpoint.
package ntfy

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/mspanwala8/pokestat/internal/domain"
	"github.com/mspanwala8/pokestat/internal/ports"
)

const maxErrorBodyBytes = 2 * 1024

type Notifier struct {
	client *http.Client
}

func New(client *http.Client) *Notifier {
	return &Notifier{client: client}
}

var _ ports.Notifier = (*Notifier)(nil)

// Notify publishes message to {server}/{topic} with the configured
// title. Delivery is best-effort: callers log the returned error and
// keep going. The response body is only read to improve error messages.
func (n *Notifier) Notify(ctx context.Context, opts domain.NotifyOptions, message string) error {
	url := strings.TrimRight(opts.Server, "/") + "/" + opts.Topic

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, strings.NewReader(message))
	if err != nil {
		return notifyErr(url, err)
	}
	req.Header.Set("Title", opts.Title)
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := n.client.Do(req)
	if err != nil {
		return notifyErr(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		return notifyErr(url, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))))
	}
	return nil
}

func notifyErr(url string, err error) error {
	return &domain.OpError{
		Op:   "notify.post",
		Kind: domain.KindNotify,
		Path: url,
		Err:  err,
	}
}
