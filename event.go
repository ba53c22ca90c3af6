package tableclient

import (
	"encoding/json"
	"fmt"
)

// ActionResult is the inbound event envelope for both the public table topic
// and the viewer's private queue. Only Success is always present.
type ActionResult struct {
	Success    bool           `json:"success"`
	Message    string         `json:"message,omitempty"`
	ActionType GameActionType `json:"actionType,omitempty"`
	PlayerID   string         `json:"playerId,omitempty"`
	TableID    string         `json:"tableId,omitempty"`
	SeatIndex  *int           `json:"seatIndex,omitempty"`
	Amount     *int64         `json:"amount,omitempty"`
	Payload    *ActionPayload `json:"payload,omitempty"`
}

// ActionPayload carries the optional full table snapshot.
type ActionPayload struct {
	TableState *TableSnapshot `json:"tableState,omitempty"`
}

// ActionIntent is the outbound envelope for player intents.
type ActionIntent struct {
	ActionType GameActionType `json:"actionType"`
	TableID    string         `json:"tableId"`
	PlayerID   string         `json:"playerId"`
	Amount     *int64         `json:"amount,omitempty"`
}

// DecodeActionResult decodes an inbound payload. Some brokers deliver the
// envelope double-encoded as a JSON string; that layer is unwrapped first.
func DecodeActionResult(data []byte) (*ActionResult, error) {
	var wrapped string
	if err := json.Unmarshal(data, &wrapped); err == nil {
		data = []byte(wrapped)
	}

	var result ActionResult
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// BubbleText renders the ephemeral indicator text for an action notification,
// e.g. "Raise 40". Returns false when the action type has no indicator.
func (r *ActionResult) BubbleText() (string, bool) {
	if r.ActionType == "" {
		return "", false
	}
	label, ok := actionLabels[r.ActionType]
	if !ok {
		return "", false
	}
	if r.Amount != nil && wagerActionTypes[r.ActionType] {
		return fmt.Sprintf("%s %d", label, *r.Amount), true
	}
	return label, true
}

// SeatBubble is a short-lived per-seat action indicator.
type SeatBubble struct {
	SeatIndex int    `json:"seat_index"`
	Text      string `json:"text"`
}

// Notice is a transient table-wide message, e.g. a player leaving.
type Notice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}
