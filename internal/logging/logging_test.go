package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		log, err := New(env, "api")
		require.NoError(t, err)
		assert.NotNil(t, log)
	}
}

func TestNew_Level(t *testing.T) {
	dev := Must("development", "api")
	assert.True(t, dev.Core().Enabled(zap.DebugLevel))

	prod := Must("production", "worker")
	assert.False(t, prod.Core().Enabled(zap.DebugLevel))
}
