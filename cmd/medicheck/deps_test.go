package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/medicheck/medicheck/internal/domain/mocks"
)

type closingClient struct {
	mocks.LLMClient
	closeErr error
	closed   bool
}

func (c *closingClient) Close() error {
	c.closed = true
	return c.closeErr
}

func TestCloseClient(t *testing.T) {
	t.Run("close error is logged", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		client := &closingClient{closeErr: errors.New("connection reset")}

		closeClient(client, zap.New(core))

		assert.True(t, client.closed)
		entries := logs.FilterMessage("closing llm client").All()
		require.Len(t, entries, 1)
		assert.Equal(t, "connection reset", entries[0].ContextMap()["error"])
	})

	t.Run("clean close logs nothing", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		client := &closingClient{}

		closeClient(client, zap.New(core))

		assert.True(t, client.closed)
		assert.Equal(t, 0, logs.Len())
	})

	t.Run("client without Close", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)

		closeClient(&mocks.LLMClient{}, zap.New(core))

		assert.Equal(t, 0, logs.Len())
	})
}
