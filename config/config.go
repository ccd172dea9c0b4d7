package config

import (
	"fmt"
	"time"
)

// PulseConfig represents options that configure the global behavior of the
// program. There is deliberately no config file: settings live for one run.
type PulseConfig struct {
	// Startup values for the metronome state.
	StartTempo  int
	StartVolume int
	StartSound  int
	StartSpread int

	// Tempo presets bound to the F-keys.
	Presets [4]int

	// Silent disables audio output entirely.
	Silent bool

	// UIRefresh is how often the view polls a state snapshot.
	UIRefresh time.Duration

	// CommandQueueSize bounds the pending command queue.
	CommandQueueSize int
}

// NewPulseConfig creates a config with reasonable defaults for real usage.
func NewPulseConfig() (PulseConfig, error) {
	return PulseConfig{
		StartTempo:       120,
		StartVolume:      70,
		StartSound:       0,
		StartSpread:      30,
		Presets:          [4]int{60, 120, 180, 200},
		UIRefresh:        50 * time.Millisecond,
		CommandQueueSize: 64,
	}, nil
}

// Validate sanity-checks the startup values.
func (c PulseConfig) Validate() error {
	if c.StartTempo < 1 {
		return fmt.Errorf("start tempo must be positive, got %d", c.StartTempo)
	}
	if c.UIRefresh <= 0 {
		return fmt.Errorf("ui refresh interval must be positive, got %v", c.UIRefresh)
	}
	if c.CommandQueueSize < 1 {
		return fmt.Errorf("command queue size must be positive, got %d", c.CommandQueueSize)
	}
	return nil
}
