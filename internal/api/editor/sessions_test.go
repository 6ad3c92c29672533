package editor

import (
	"testing"

	domain "marketing-app/internal/domain/editor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreOwnership(t *testing.T) {
	s := &sessionStore{sessions: make(map[string]*session)}

	id := s.open(1, nil, nil)
	require.NotEmpty(t, id)

	_, ok := s.get(id, 1)
	assert.True(t, ok)

	// Another user cannot see or close the session.
	_, ok = s.get(id, 2)
	assert.False(t, ok)
	assert.False(t, s.close(id, 2))

	assert.True(t, s.close(id, 1))
	_, ok = s.get(id, 1)
	assert.False(t, ok)
}

func TestSessionStateReflectsEditor(t *testing.T) {
	s := &sessionStore{sessions: make(map[string]*session)}
	id := s.open(7, nil, nil)
	sess, ok := s.get(id, 7)
	require.True(t, ok)

	_, err := sess.ed.AddBlock(domain.TypeText)
	require.NoError(t, err)

	state := sessionState(id, sess)
	assert.Equal(t, id, state.SessionID)
	require.Len(t, state.Document.Blocks, 1)
	assert.True(t, state.CanUndo)
	assert.False(t, state.CanRedo)
	assert.Equal(t, 1, state.HistoryCursor)
	assert.Equal(t, 2, state.HistoryLen)
}
