package groupme

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
)

const (
	// DispatchFailureCode is the code returned when GroupMe could not be reached or refused the message
	DispatchFailureCode = -1

	// Default timeout for bot post requests
	defaultSendTimeout = 5 * time.Second
	// Maximum response body size to read for error logging
	maxResponseBodySize = 1024

	userAgent = "magic-conch-bot/1.0"
)

// Sender posts bot messages to GroupMe.
type Sender struct {
	client  *http.Client
	postURL string
}

// NewSender creates a Sender that posts to postURL.
// A nil client gets a default client with a bounded timeout.
func NewSender(client *http.Client, postURL string) *Sender {
	if client == nil {
		client = &http.Client{
			Timeout: defaultSendTimeout,
		}
	}
	return &Sender{
		client:  client,
		postURL: postURL,
	}
}

// SendMessage posts msg to GroupMe. It is not retried.
// Returns error for failures, nil for success
func (s *Sender) SendMessage(ctx context.Context, msg *BotMessage) error {
	payload := *msg
	if payload.Attachments == nil {
		// GroupMe expects an array, never null.
		payload.Attachments = []Attachment{}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal bot message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.postURL, bytes.NewReader(body))
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			return richerrors.Error{
				Code: DispatchFailureCode,
				Err:  fmt.Errorf("invalid URL: %w", err),
			}
		}
		return fmt.Errorf("failed to create bot post request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return richerrors.Error{
			Code: DispatchFailureCode,
			Err:  fmt.Errorf("failed to POST bot message: %w", err),
		}
	}
	defer resp.Body.Close() // nolint:errcheck

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxResponseBodySize))
		return richerrors.Error{
			Code: DispatchFailureCode,
			Err:  fmt.Errorf("groupme returned status code %d: %s", resp.StatusCode, string(respBody)),
		}
	}
	// Drain so the connection can be reused.
	_, _ = io.Copy(io.Discard, resp.Body)

	return nil
}
