package logging

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogText_WritesLevelMessageAndPairs(t *testing.T) {
	var buf bytes.Buffer
	log, err := newSlogText(&buf, "debug")
	require.NoError(t, err)
	ctx := context.Background()

	log.Debug(ctx, "page loaded", "page", 0)
	log.Info(ctx, "group joined", "group_id", 7)
	log.Warn(ctx, "stored token unreadable")
	log.Error(ctx, "signup failed", "status", 409)

	out := buf.String()
	for _, want := range []string{
		"level=DEBUG", `msg="page loaded"`, "page=0",
		"level=INFO", "group_id=7",
		"level=WARN",
		"level=ERROR", "status=409",
	} {
		assert.Contains(t, out, want)
	}
}

func TestSlogText_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := newSlogText(&buf, "warn")
	require.NoError(t, err)

	log.Info(context.Background(), "hidden")
	assert.Empty(t, buf.String())

	log.Warn(context.Background(), "shown")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestSlogText_BadLevel(t *testing.T) {
	_, err := newSlogText(&bytes.Buffer{}, "chatty")
	require.ErrorContains(t, err, `log level "chatty"`)
}

func TestSlogLogger_WithKeepsParentPairs(t *testing.T) {
	var buf bytes.Buffer
	log, err := newSlogText(&buf, "info")
	require.NoError(t, err)

	child := log.With("component", "credentials")
	child.With("op", "login").Info(context.Background(), "saved")

	out := buf.String()
	assert.Contains(t, out, "component=credentials")
	assert.Contains(t, out, "op=login")
}

func TestNop_DiscardsOutput(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().With("k", "v").Error(context.Background(), "nothing to see")
	})
}
