package sound

import (
	"math"
	"math/rand"

	"github.com/fogleman/ease"
)

// SampleRate all timbres are rendered at.
const SampleRate = 44100

func numSamples(durationMs int) int {
	return SampleRate * durationMs / 1000
}

// declick shapes the first millisecond of a wave so the speaker does not pop
// when the buffer starts.
func declick(wave []float64) []float64 {
	n := SampleRate / 1000
	if n > len(wave) {
		n = len(wave)
	}
	for i := 0; i < n; i++ {
		wave[i] *= ease.InQuad(float64(i) / float64(n))
	}
	return wave
}

// fadeTail eases out the final few milliseconds of waves that have no decay
// envelope of their own.
func fadeTail(wave []float64, ms int) []float64 {
	n := numSamples(ms)
	if n > len(wave) {
		n = len(wave)
	}
	start := len(wave) - n
	for i := 0; i < n; i++ {
		wave[start+i] *= ease.OutQuad(1.0 - float64(i)/float64(n))
	}
	return wave
}

// beepWave is a plain 800 Hz sine, 50 ms.
func beepWave() []float64 {
	n := numSamples(50)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		wave[i] = math.Sin(t*800*2*math.Pi) * 0.3
	}
	return declick(fadeTail(wave, 5))
}

// kickWave is a 60 Hz sine whose pitch and amplitude both drop away fast.
func kickWave() []float64 {
	n := numSamples(150)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 12)
		freq := 60 * math.Exp(-t*10)
		wave[i] = math.Sin(t*freq*2*math.Pi) * envelope * 0.6
	}
	return wave
}

// clickWave is a very short 2 kHz blip.
func clickWave() []float64 {
	n := numSamples(10)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 50)
		wave[i] = math.Sin(t*2000*2*math.Pi) * envelope * 0.5
	}
	return wave
}

// cowbellWave layers inharmonic partials over an 800 Hz fundamental.
func cowbellWave() []float64 {
	n := numSamples(120)
	wave := make([]float64, n)
	const fundamental = 800.0
	for i := range wave {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 8)
		sample := math.Sin(t*fundamental*2*math.Pi)*0.4 +
			math.Sin(t*fundamental*2.4*2*math.Pi)*0.3 +
			math.Sin(t*fundamental*3.2*2*math.Pi)*0.2 +
			math.Sin(t*fundamental*4.1*2*math.Pi)*0.1
		wave[i] = sample * envelope
	}
	return declick(wave)
}

// hihatWave mixes decaying white noise with an 8 kHz shimmer.
func hihatWave() []float64 {
	n := numSamples(60)
	wave := make([]float64, n)
	rng := rand.New(rand.NewSource(0x4a7))
	for i := range wave {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 25)
		noise := rng.Float64()*2 - 1
		wave[i] = noise*envelope*0.3 + math.Sin(t*8000*2*math.Pi)*envelope*0.1
	}
	return wave
}

// squareWave is a 600 Hz square with an exponential decay.
func squareWave() []float64 {
	n := numSamples(60)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		phase := math.Mod(t*600, 1.0)
		envelope := math.Exp(-t * 10)
		sample := 1.0
		if phase >= 0.5 {
			sample = -1.0
		}
		wave[i] = sample * 0.3 * envelope
	}
	return declick(wave)
}

// triangleWave is an 800 Hz triangle, 80 ms.
func triangleWave() []float64 {
	n := numSamples(80)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		phase := math.Mod(t*800, 1.0)
		var sample float64
		if phase < 0.5 {
			sample = 4*phase - 1
		} else {
			sample = 3 - 4*phase
		}
		wave[i] = sample * 0.3
	}
	return declick(fadeTail(wave, 8))
}

// woodblockWave combines two short resonances at 1200 and 800 Hz.
func woodblockWave() []float64 {
	n := numSamples(80)
	wave := make([]float64, n)
	for i := range wave {
		t := float64(i) / SampleRate
		envelope := math.Exp(-t * 15)
		sample := math.Sin(t*1200*2*math.Pi)*0.3 + math.Sin(t*800*2*math.Pi)*0.2
		wave[i] = sample * envelope
	}
	return declick(wave)
}
