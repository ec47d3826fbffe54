package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
)

type slackChannel struct {
	webhookURL string
	client     *http.Client
}

func NewSlackChannel(webhookURL string, client *http.Client) Channel {
	if client == nil {
		client = http.DefaultClient
	}
	return slackChannel{
		webhookURL: webhookURL,
		client:     client,
	}
}

func (c slackChannel) Name() string {
	return "slack"
}

func (c slackChannel) Send(ctx context.Context, event Event) error {
	payload, err := json.Marshal(map[string]string{"text": event.Text()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("slack webhook responded with %v", resp.Status)
	}
	return nil
}
