package sound

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultBankCatalog(t *testing.T) {
	t.Parallel()

	bank := DefaultBank()
	require.Equal(t, 8, bank.Count())
	require.Equal(t, []string{
		"Beep", "Kick", "Click", "Cowbell", "Hi-hat", "Square", "Triangle", "Woodblock",
	}, bank.Names())
}

func TestResolveIsTotalOverRange(t *testing.T) {
	t.Parallel()

	bank := DefaultBank()
	for i := 0; i < bank.Count(); i++ {
		s := bank.Resolve(i)
		assert.NotEmpty(t, s.Samples, "timbre %q rendered no samples", s.Name)
		assert.Equal(t, s.Name, bank.Name(i))
	}
}

func TestResolveFailsLoudlyOutOfRange(t *testing.T) {
	t.Parallel()

	bank := DefaultBank()
	require.Panics(t, func() { bank.Resolve(-1) })
	require.Panics(t, func() { bank.Resolve(bank.Count()) })
}

func TestRenderedWavesStayInRange(t *testing.T) {
	t.Parallel()

	bank := DefaultBank()
	for i := 0; i < bank.Count(); i++ {
		s := bank.Resolve(i)
		peak := 0.0
		for _, v := range s.Samples {
			peak = math.Max(peak, math.Abs(v))
		}
		assert.LessOrEqual(t, peak, 1.0, "timbre %q clips", s.Name)
		assert.Greater(t, peak, 0.0, "timbre %q is silent", s.Name)
	}
}

func TestWaveDurations(t *testing.T) {
	t.Parallel()

	// spot-check the reference recipe durations
	require.Len(t, beepWave(), numSamples(50))
	require.Len(t, clickWave(), numSamples(10))
	require.Len(t, kickWave(), numSamples(150))
	require.Len(t, cowbellWave(), numSamples(120))
}

func TestDeclickStartsFromSilence(t *testing.T) {
	t.Parallel()

	for i, wave := range [][]float64{beepWave(), cowbellWave(), squareWave(), triangleWave()} {
		require.NotEmpty(t, wave)
		assert.InDelta(t, 0.0, wave[0], 1e-9, "wave %d does not start silent", i)
	}
}
