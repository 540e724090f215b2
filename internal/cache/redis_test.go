package cache

import (
	"context"
	"testing"

	"trivia-api/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClient_NotConfigured(t *testing.T) {
	client, err := NewRedisClient(context.Background(), config.RedisConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, client)
}
