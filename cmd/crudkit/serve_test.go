package main

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestWaitForStop(t *testing.T) {
	t.Run("Should stay quiet when the server returns cleanly", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)
		errCh := make(chan error, 1)
		errCh <- nil

		assert.NoError(t, waitForStop(context.Background(), &log, errCh))
		assert.NotContains(t, buf.String(), "server stopped unexpectedly")
	})

	t.Run("Should log and return a server failure", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)
		errCh := make(chan error, 1)
		errCh <- errors.New("listen tcp :8080: bind: address already in use")

		err := waitForStop(context.Background(), &log, errCh)
		assert.EqualError(t, err, "listen tcp :8080: bind: address already in use")
		assert.Contains(t, buf.String(), `"level":"error"`)
		assert.Contains(t, buf.String(), "server stopped unexpectedly")
	})

	t.Run("Should return nil on a shutdown signal", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, waitForStop(ctx, &log, make(chan error)))
		assert.Contains(t, buf.String(), "shutdown signal received")
	})
}
