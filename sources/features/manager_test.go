package features

import (
	"testing"
	"toaster/sources/tracing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFeature(t *testing.T) {
	assert.Equal(t, "toaster/actions/game_roll", ActionFeature("game_roll"))
}

func TestFeatureManagerWithoutUnleashUsesFallbacks(t *testing.T) {
	manager, err := NewFeatureManager(&FeatureConfig{}, tracing.NewConsoleLogger())
	require.NoError(t, err)

	assert.True(t, manager.IsEnabledDefault("anything", true))
	assert.False(t, manager.IsEnabledDefault("anything", false))
	assert.True(t, manager.IsActionEnabled("set_mark"))
	assert.NoError(t, manager.Close())
}
