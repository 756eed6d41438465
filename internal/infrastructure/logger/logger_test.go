package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production", ""} {
		log, err := New(env, "rutasverdes")
		require.NoError(t, err, env)
		assert.NotNil(t, log)
		assert.Equal(t, "rutasverdes", log.Name())
	}
}
