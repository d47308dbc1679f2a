package env

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvVariableProviderFound(t *testing.T) {
	t.Setenv("TEST1", "VALUE1")

	provider := NewEnvVariableProvider()
	value, err := provider.GetEnv(t.Context(), "TEST1")

	require.NoError(t, err)
	assert.Equal(t, "VALUE1", value)
}

func TestEnvVariableProviderNotFound(t *testing.T) {
	t.Setenv("TEST2", "")

	provider := NewEnvVariableProvider()
	value, err := provider.GetEnv(t.Context(), "TEST2")

	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestFirst(t *testing.T) {
	provider := MapProvider{"LANG": "de_DE.UTF-8", "LC_MESSAGES": "fr_FR"}

	value, err := First(t.Context(), provider, "LC_ALL", "LC_MESSAGES", "LANG")
	require.NoError(t, err)
	assert.Equal(t, "fr_FR", value)

	value, err = First(t.Context(), provider, "LC_ALL")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestFirstFails(t *testing.T) {
	value, err := First(t.Context(), &alwaysFailProvider{}, "LANG")

	require.Error(t, err)
	assert.Empty(t, value)
}

func TestDefaultProviderPrefersOverrides(t *testing.T) {
	t.Setenv("GA_APP_NAME", "from-env")

	provider := NewDefaultProvider(map[string]string{"GA_APP_NAME": "from-flag"})
	value, err := provider.GetEnv(t.Context(), "GA_APP_NAME")
	require.NoError(t, err)
	assert.Equal(t, "from-flag", value)

	provider = NewDefaultProvider(nil)
	value, err = provider.GetEnv(t.Context(), "GA_APP_NAME")
	require.NoError(t, err)
	assert.Equal(t, "from-env", value)
}
