package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calorietracker/internal/config"
)

func TestOpen_RejectsUnknownDriver(t *testing.T) {
	store, err := Open(context.Background(), &config.Config{DBDriver: "sqlite"})

	require.Error(t, err)
	assert.Nil(t, store)
	assert.Contains(t, err.Error(), "sqlite")
}

func TestStore_CloseNil(t *testing.T) {
	var store *Store
	assert.NoError(t, store.Close(context.Background()))
}
