package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQueuePreservesOrder(t *testing.T) {
	t.Parallel()

	q := NewQueue(16)
	q.Push(StartStop())
	q.Push(AdjustTempo(5))
	q.Push(VolumeUp())

	cmds := q.Drain()
	require.Len(t, cmds, 3)
	require.Equal(t, CmdStartStop, cmds[0].Kind)
	require.Equal(t, CmdAdjustTempo, cmds[1].Kind)
	require.Equal(t, 5, cmds[1].Value)
	require.Equal(t, CmdVolumeUp, cmds[2].Kind)
}

func TestQueueDrainEmpty(t *testing.T) {
	t.Parallel()

	q := NewQueue(16)
	require.Empty(t, q.Drain())
	require.Empty(t, q.Drain())
}

func TestQueueOverflowDropsOldestOfSameKind(t *testing.T) {
	t.Parallel()

	q := NewQueue(3)
	q.Push(AdjustTempo(1))
	q.Push(AdjustTempo(2))
	q.Push(VolumeUp())
	q.Push(AdjustTempo(3))

	cmds := q.Drain()
	require.Len(t, cmds, 3)
	require.Equal(t, AdjustTempo(2), cmds[0])
	require.Equal(t, VolumeUp(), cmds[1])
	require.Equal(t, AdjustTempo(3), cmds[2])
}

func TestQueueOverflowFallsBackToOldest(t *testing.T) {
	t.Parallel()

	q := NewQueue(2)
	q.Push(VolumeUp())
	q.Push(VolumeDown())
	q.Push(ToggleRandom())

	cmds := q.Drain()
	require.Len(t, cmds, 2)
	require.Equal(t, VolumeDown(), cmds[0])
	require.Equal(t, ToggleRandom(), cmds[1])
}

func TestQueueNeverDropsQuit(t *testing.T) {
	t.Parallel()

	q := NewQueue(2)
	q.Push(Quit())
	q.Push(VolumeUp())
	q.Push(VolumeDown())

	cmds := q.Drain()
	require.Len(t, cmds, 2)
	require.Equal(t, Quit(), cmds[0])
	require.Equal(t, VolumeDown(), cmds[1])

	// a queue full of quits grows rather than dropping one
	q = NewQueue(1)
	q.Push(Quit())
	q.Push(Quit())
	require.Equal(t, 2, q.Len())
}

func TestQueueReadySignals(t *testing.T) {
	t.Parallel()

	q := NewQueue(16)
	select {
	case <-q.Ready():
		t.Fatal("ready before any push")
	default:
	}

	q.Push(StartStop())
	select {
	case <-q.Ready():
	default:
		t.Fatal("no ready signal after push")
	}
}
