package export

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// Notifier posts a run summary to a chat webhook.
type Notifier struct {
	client *resty.Client
	url    string
}

// NewNotifier creates a notifier for the given webhook URL. An empty URL
// yields a nil notifier, which ignores all sends.
func NewNotifier(url string) *Notifier {
	if url == "" {
		return nil
	}
	return &Notifier{
		client: resty.New().SetTimeout(10 * time.Second),
		url:    url,
	}
}

// Send posts the diagnostics summary. A run with no diagnostics sends
// nothing.
func (n *Notifier) Send(ctx context.Context, diagnostics []string) error {
	if n == nil || len(diagnostics) == 0 {
		return nil
	}

	text := strings.Join(append([]string{"**Errors:**"}, diagnostics...), "\r\n")
	resp, err := n.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]string{"text": text}).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("notify webhook: %w", err)
	}
	if resp.IsError() {
		return fmt.Errorf("notify webhook: status %d", resp.StatusCode())
	}
	return nil
}
