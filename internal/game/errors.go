package game

import (
	"errors"
	"fmt"
)

// Error taxonomy. Rule violations and turn violations are rejected before any
// state changes and are reported back to the acting player; invariant
// failures indicate a bug in setup and are fatal for the match, never for the
// process.

// RuleViolationError is an action that the rules reject: unknown card, card
// not currently exposed, or the player cannot pay for it.
type RuleViolationError struct {
	Code    string
	Message string
}

func (e *RuleViolationError) Error() string {
	return e.Message
}

// TurnViolationError is an action authored by the non-active player.
type TurnViolationError struct {
	PlayerID string
}

func (e *TurnViolationError) Error() string {
	return fmt.Sprintf("it is not player %s's turn", e.PlayerID)
}

// InvariantError is a broken engine invariant: the deck ran dry or the age
// was advanced past the last one. Neither is reachable through legal play.
type InvariantError struct {
	Message string
}

func (e *InvariantError) Error() string {
	return e.Message
}

// EffectError wraps a failure inside a triggered purchase effect. The card
// transfer has already committed by the time an effect runs, so this reports
// an internal error without rolling the purchase back.
type EffectError struct {
	CardName string
	Err      error
}

func (e *EffectError) Error() string {
	return fmt.Sprintf("effect of card %q failed: %v", e.CardName, e.Err)
}

func (e *EffectError) Unwrap() error {
	return e.Err
}

func ruleViolation(code, format string, args ...any) error {
	return &RuleViolationError{Code: code, Message: fmt.Sprintf(format, args...)}
}

func invariant(format string, args ...any) error {
	return &InvariantError{Message: fmt.Sprintf(format, args...)}
}

// IsRuleViolation reports whether err is a rule or turn violation, i.e. a
// rejection that should be relayed to the offending player rather than
// treated as an internal failure.
func IsRuleViolation(err error) bool {
	var rv *RuleViolationError
	var tv *TurnViolationError
	return errors.As(err, &rv) || errors.As(err, &tv)
}

// ErrorCode maps an engine error to the wire error code sent to the player.
func ErrorCode(err error) string {
	var rv *RuleViolationError
	if errors.As(err, &rv) {
		return rv.Code
	}
	var tv *TurnViolationError
	if errors.As(err, &tv) {
		return "NOT_YOUR_TURN"
	}
	return "INTERNAL_ERROR"
}
