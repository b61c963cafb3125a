package logger

import (
	"context"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLoggerFallsBackToGlobal(t *testing.T) {
	entry := GetLogger(context.Background())
	require.NotNil(t, entry)
	assert.Equal(t, L.Logger, entry.Logger)
}

func TestWithLoggerRoundTrip(t *testing.T) {
	ctx := context.Background()
	decorated := L.WithField("execution_id", "abc")

	ctx = WithLogger(ctx, decorated)
	got := GetLogger(ctx)
	assert.Equal(t, "abc", got.Data["execution_id"])
}

func TestSetLogLevel(t *testing.T) {
	require.NoError(t, SetLogLevel("debug"))
	assert.Equal(t, logrus.DebugLevel, L.Logger.GetLevel())

	assert.Error(t, SetLogLevel("chatty"))

	require.NoError(t, SetLogLevel("info"))
}
