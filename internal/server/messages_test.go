package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnvelopeStartGame(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"type":"START_GAME"}`))
	require.NoError(t, err)
	assert.Equal(t, MessageStartGame, env.Type)
}

func TestParseEnvelopeCardClick(t *testing.T) {
	env, err := ParseEnvelope([]byte(`{"type":"STAGE_CARD_CLICKED","card":{"uid":"abc"}}`))
	require.NoError(t, err)
	assert.Equal(t, MessageStageCardClicked, env.Type)
	require.NotNil(t, env.Card)
	assert.Equal(t, "abc", env.Card.UID)
}

func TestParseEnvelopeRejections(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"malformed json", `{"type":`},
		{"missing type", `{}`},
		{"unknown type", `{"type":"DANCE"}`},
		{"click without card", `{"type":"STAGE_CARD_CLICKED"}`},
		{"click without uid", `{"type":"STAGE_CARD_CLICKED","card":{}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEnvelope([]byte(tt.raw))
			require.Error(t, err)
			var verr *ValidationError
			assert.ErrorAs(t, err, &verr)
		})
	}
}

func TestNewErrorMessage(t *testing.T) {
	msg := NewErrorMessage("NOT_YOUR_TURN", "wait for the opponent")
	assert.Equal(t, "ERROR", msg.Type)
	assert.Equal(t, "NOT_YOUR_TURN", msg.ErrorCode)
	assert.Equal(t, "wait for the opponent", msg.ErrorMessage)
}
