package sound

import "fmt"

// Sound is one rendered timbre from the bank.
type Sound struct {
	Name    string
	Samples []float64
}

// Bank is the fixed, ordered catalog of tick timbres. Indexing is cyclic from
// the caller's point of view: the engine wraps its sound index modulo Count,
// so Resolve only ever sees in-range values.
type Bank struct {
	sounds []Sound
}

// DefaultBank renders the eight stock timbres once, up front, so ticking
// never waits on synthesis.
func DefaultBank() *Bank {
	return &Bank{
		sounds: []Sound{
			{Name: "Beep", Samples: beepWave()},
			{Name: "Kick", Samples: kickWave()},
			{Name: "Click", Samples: clickWave()},
			{Name: "Cowbell", Samples: cowbellWave()},
			{Name: "Hi-hat", Samples: hihatWave()},
			{Name: "Square", Samples: squareWave()},
			{Name: "Triangle", Samples: triangleWave()},
			{Name: "Woodblock", Samples: woodblockWave()},
		},
	}
}

// Count returns the number of timbres in the bank.
func (b *Bank) Count() int {
	return len(b.sounds)
}

// Resolve returns the timbre at index. An out-of-range index means the caller
// broke the modulo-wrap invariant, so fail loudly instead of papering over it.
func (b *Bank) Resolve(index int) Sound {
	if index < 0 || index >= len(b.sounds) {
		panic(fmt.Sprintf("sound: index %d out of range [0,%d)", index, len(b.sounds)))
	}
	return b.sounds[index]
}

// Name returns the display name of the timbre at index.
func (b *Bank) Name(index int) string {
	return b.Resolve(index).Name
}

// Names lists every timbre in catalog order.
func (b *Bank) Names() []string {
	out := make([]string, len(b.sounds))
	for i, s := range b.sounds {
		out[i] = s.Name
	}
	return out
}
