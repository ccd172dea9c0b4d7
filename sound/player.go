package sound

import (
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/robmorgan/pulse/engine"
	"github.com/robmorgan/pulse/logger"
)

// Player plays bank timbres through the speaker. If the audio device cannot
// be opened the player runs silent: ticks keep firing on schedule and the
// failure is logged once, because timing correctness never depends on audio.
type Player struct {
	bank    *Bank
	enabled bool
}

// NewPlayer initializes the speaker with a small mix buffer. The returned
// player is usable even when init fails.
func NewPlayer(bank *Bank) *Player {
	log := logger.GetProjectLogger()

	sr := beep.SampleRate(SampleRate)
	if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
		log.Errorf("audio unavailable, running silent: %v", err)
		return &Player{bank: bank}
	}
	return &Player{bank: bank, enabled: true}
}

// NewSilentPlayer returns a player that never touches the audio device.
func NewSilentPlayer(bank *Bank) *Player {
	return &Player{bank: bank}
}

// Play hands one tick to the speaker mixer and returns immediately.
func (p *Player) Play(ev engine.TickEvent) {
	if !p.enabled {
		return
	}
	s := p.bank.Resolve(ev.SoundIndex)
	speaker.Play(&tickStreamer{
		samples: s.Samples,
		gain:    float64(ev.Volume) / 100.0,
	})
}

// Close shuts the speaker down.
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
	}
}

// tickStreamer streams one rendered timbre, mono to both channels, scaled by
// the volume in effect when the tick fired.
type tickStreamer struct {
	samples []float64
	gain    float64
	pos     int
}

func (t *tickStreamer) Stream(out [][2]float64) (int, bool) {
	if t.pos >= len(t.samples) {
		return 0, false
	}
	n := 0
	for i := range out {
		if t.pos >= len(t.samples) {
			break
		}
		v := t.samples[t.pos] * t.gain
		out[i][0] = v
		out[i][1] = v
		t.pos++
		n++
	}
	return n, true
}

func (t *tickStreamer) Err() error {
	return nil
}
