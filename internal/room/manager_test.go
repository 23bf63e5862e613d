package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestManagerCreateAndGet(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	created := m.Create()
	require.NotEmpty(t, created.ID())

	got, ok := m.Get(created.ID())
	require.True(t, ok)
	assert.Same(t, created, got)
	assert.Equal(t, 1, m.Count())
}

func TestManagerCreateWithID(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	lobby := m.CreateWithID("lobby")
	assert.Equal(t, "lobby", lobby.ID())

	got, ok := m.Get("lobby")
	require.True(t, ok)
	assert.Same(t, lobby, got)
}

func TestManagerGetUnknownRoom(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	_, ok := m.Get("missing")
	assert.False(t, ok)
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))
	created := m.Create()

	m.Remove(created.ID())
	_, ok := m.Get(created.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, m.Count())

	// Removing twice is harmless.
	m.Remove(created.ID())
}

func TestManagerRoomsAreIsolated(t *testing.T) {
	m := NewManager(zaptest.NewLogger(t))

	first := m.Create()
	second := m.Create()

	_, err := first.Join("Alice", &fakeConn{})
	require.NoError(t, err)

	assert.Equal(t, 1, first.PlayerCount())
	assert.Equal(t, 0, second.PlayerCount())
}
