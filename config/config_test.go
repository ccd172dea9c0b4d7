package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPulseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := NewPulseConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	require.Equal(t, 120, cfg.StartTempo)
	require.Equal(t, 70, cfg.StartVolume)
	require.Equal(t, 0, cfg.StartSound)
	require.Equal(t, [4]int{60, 120, 180, 200}, cfg.Presets)
}

func TestValidateRejectsBrokenConfigs(t *testing.T) {
	t.Parallel()

	cfg, err := NewPulseConfig()
	require.NoError(t, err)

	cfg.StartTempo = 0
	require.Error(t, cfg.Validate())

	cfg, _ = NewPulseConfig()
	cfg.UIRefresh = 0
	require.Error(t, cfg.Validate())

	cfg, _ = NewPulseConfig()
	cfg.CommandQueueSize = 0
	require.Error(t, cfg.Validate())
}
