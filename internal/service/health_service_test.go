package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestHealthService_Check(t *testing.T) {
	t.Run("healthy", func(t *testing.T) {
		db := new(MockPinger)
		db.On("HealthCheck", mock.Anything).Return(nil)
		schema := new(MockSchemaRepository)
		schema.On("CountTables", mock.Anything).Return(6, nil)

		health, err := NewHealthService(db, schema).Check(context.Background())

		require.NoError(t, err)
		assert.Equal(t, &Health{Status: "ok", Tables: 6}, health)
	})

	t.Run("database down", func(t *testing.T) {
		db := new(MockPinger)
		db.On("HealthCheck", mock.Anything).Return(errors.New("connection refused"))
		schema := new(MockSchemaRepository)

		_, err := NewHealthService(db, schema).Check(context.Background())

		assert.Error(t, err)
		schema.AssertNotCalled(t, "CountTables", mock.Anything)
	})
}
