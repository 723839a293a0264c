package conch

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrMalformedPayload is returned when a callback body is not a usable GroupMe message.
var ErrMalformedPayload = errors.New("malformed payload")

// InboundMessage is the part of a GroupMe bot callback the conch cares about.
type InboundMessage struct {
	Text      string
	SenderID  string
	MessageID string
}

// callbackBody mirrors the GroupMe callback. Pointers let us tell a missing
// field from an empty one.
type callbackBody struct {
	Text      *string `json:"text"`
	SenderID  *string `json:"sender_id"`
	MessageID *string `json:"id"`
}

// ParseInboundMessage decodes a GroupMe callback body.
// text, sender_id and id must all be present as strings; anything else wraps ErrMalformedPayload.
func ParseInboundMessage(body []byte) (*InboundMessage, error) {
	var cb callbackBody
	if err := json.Unmarshal(body, &cb); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	if cb.Text == nil {
		return nil, fmt.Errorf("%w: missing text", ErrMalformedPayload)
	}
	if cb.SenderID == nil {
		return nil, fmt.Errorf("%w: missing sender_id", ErrMalformedPayload)
	}
	if cb.MessageID == nil {
		return nil, fmt.Errorf("%w: missing id", ErrMalformedPayload)
	}
	return &InboundMessage{
		Text:      *cb.Text,
		SenderID:  *cb.SenderID,
		MessageID: *cb.MessageID,
	}, nil
}
