package types

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRunID(t *testing.T) {
	t.Run("generates valid UUID", func(t *testing.T) {
		id := NewRunID()

		require.False(t, id.IsZero())
		_, err := uuid.Parse(id.String())
		assert.NoError(t, err)
	})

	t.Run("generates unique IDs", func(t *testing.T) {
		assert.NotEqual(t, NewRunID(), NewRunID())
	})
}

func TestRunIDIsZero(t *testing.T) {
	assert.True(t, RunID("").IsZero())
	assert.False(t, NewRunID().IsZero())
}
