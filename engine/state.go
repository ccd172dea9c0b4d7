package engine

import (
	"sync"
	"time"

	"github.com/robmorgan/pulse/utils"
)

// Tempo and volume bounds. Every mutation clamps into these, so the rest of
// the program never sees a value outside them.
const (
	MinTempo = 20
	MaxTempo = 400

	MinVolume = 0
	MaxVolume = 100

	VolumeStep = 10
	SpreadStep = 10
)

// Interval returns the gap between two ticks at the given tempo.
func Interval(bpm int) time.Duration {
	return time.Duration(int64(time.Minute) / int64(bpm))
}

// State holds the metronome settings. It is owned by the scheduler loop: only
// Apply mutates it, and Apply is only called from inside Run. Everyone else
// reads a copy via Snapshot.
type State struct {
	mu         sync.Mutex
	tempo      int
	running    bool
	soundIndex int
	soundCount int
	volume     int
	randomMode bool
	spread     int
}

// Snapshot is an immutable copy of the state fields a reader may care about.
type Snapshot struct {
	Tempo        int
	Running      bool
	SoundIndex   int
	Volume       int
	RandomMode   bool
	RandomSpread int
}

// NewState builds the initial state. Out-of-range inputs are clamped rather
// than rejected, matching how commands are treated later on.
func NewState(tempo, volume, soundIndex, spread, soundCount int) *State {
	if soundCount < 1 {
		panic("engine: state needs at least one sound")
	}
	return &State{
		tempo:      utils.Clamp(tempo, MinTempo, MaxTempo),
		volume:     utils.Clamp(volume, MinVolume, MaxVolume),
		soundIndex: ((soundIndex % soundCount) + soundCount) % soundCount,
		spread:     utils.Clamp(spread, 0, MaxTempo),
		soundCount: soundCount,
	}
}

// Snapshot copies the current settings under the lock.
func (s *State) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{
		Tempo:        s.tempo,
		Running:      s.running,
		SoundIndex:   s.soundIndex,
		Volume:       s.volume,
		RandomMode:   s.randomMode,
		RandomSpread: s.spread,
	}
}

// Effect reports the side effects the scheduler must perform after applying a
// command. State mutation happens inside Apply; anything involving time or
// audio is the scheduler's job.
type Effect struct {
	// Quit terminates the scheduler loop.
	Quit bool

	// Started is set on the stopped -> running transition so the scheduler
	// resets its timing baseline.
	Started bool

	// TestSound asks for one immediate tick, independent of scheduling.
	TestSound bool
}

// Apply mutates the state according to cmd and returns the side effects the
// caller owes. Values outside their range are clamped silently.
func (s *State) Apply(cmd Command) Effect {
	s.mu.Lock()
	defer s.mu.Unlock()

	var fx Effect
	switch cmd.Kind {
	case CmdStartStop:
		s.running = !s.running
		fx.Started = s.running
	case CmdAdjustTempo:
		s.tempo = utils.Clamp(s.tempo+cmd.Value, MinTempo, MaxTempo)
	case CmdSetTempo:
		s.tempo = utils.Clamp(cmd.Value, MinTempo, MaxTempo)
	case CmdNextSound:
		s.soundIndex = (s.soundIndex + 1) % s.soundCount
	case CmdPrevSound:
		s.soundIndex = (s.soundIndex + s.soundCount - 1) % s.soundCount
	case CmdTestSound:
		fx.TestSound = true
	case CmdVolumeUp:
		s.volume = utils.Clamp(s.volume+VolumeStep, MinVolume, MaxVolume)
	case CmdVolumeDown:
		s.volume = utils.Clamp(s.volume-VolumeStep, MinVolume, MaxVolume)
	case CmdToggleRandom:
		// flipping the mode never re-rolls the tempo here; the next natural
		// tick boundary does that
		s.randomMode = !s.randomMode
	case CmdAdjustSpread:
		s.spread = utils.Clamp(s.spread+cmd.Value, 0, MaxTempo)
	case CmdQuit:
		fx.Quit = true
	}
	return fx
}

// setTempo is used by the scheduler when random mode draws a new tempo.
func (s *State) setTempo(bpm int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tempo = utils.Clamp(bpm, MinTempo, MaxTempo)
}
