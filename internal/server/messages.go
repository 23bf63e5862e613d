package server

import (
	"encoding/json"
	"fmt"
)

// Inbound message types. Anything else is rejected before it reaches a room.
const (
	MessageStartGame        = "START_GAME"
	MessageStageCardClicked = "STAGE_CARD_CLICKED"
)

const messageTypeError = "ERROR"

// Envelope is the inbound client message. Card is present only for card
// click messages.
type Envelope struct {
	Type string   `json:"type"`
	Card *CardRef `json:"card,omitempty"`
}

// CardRef names a stage card by its per-game identifier.
type CardRef struct {
	UID string `json:"uid"`
}

// ErrorMessage is the unicast rejection sent back to the offending
// connection. It never goes to the opponent.
type ErrorMessage struct {
	Type         string `json:"type"`
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message,omitempty"`
}

// NewErrorMessage builds the rejection envelope for a code and detail.
func NewErrorMessage(code, message string) ErrorMessage {
	return ErrorMessage{
		Type:         messageTypeError,
		ErrorCode:    code,
		ErrorMessage: message,
	}
}

// ValidationError rejects a malformed inbound message.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid message: %s", e.Reason)
}

// ParseEnvelope decodes and validates one inbound frame. Unknown types and
// missing payload fields are rejected here so rooms only ever see well-formed
// actions.
func ParseEnvelope(raw []byte) (Envelope, error) {
	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Envelope{}, &ValidationError{Reason: "malformed JSON"}
	}

	switch env.Type {
	case MessageStartGame:
		// No payload.
	case MessageStageCardClicked:
		if env.Card == nil || env.Card.UID == "" {
			return Envelope{}, &ValidationError{Reason: "card click requires card.uid"}
		}
	case "":
		return Envelope{}, &ValidationError{Reason: "missing type"}
	default:
		return Envelope{}, &ValidationError{Reason: fmt.Sprintf("unknown type %q", env.Type)}
	}

	return env, nil
}
