package engine

import (
	"context"
	"time"

	"github.com/robmorgan/pulse/logger"
	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// TickEvent is handed to the sound backend each time the scheduler fires.
type TickEvent struct {
	SoundIndex int
	Volume     int
	Timestamp  time.Time
}

// Player is the audio boundary. Play must not block: the speaker mixes
// asynchronously, so the scheduler's timing never depends on audio latency.
type Player interface {
	Play(ev TickEvent)
}

// Scheduler drives the timing loop. It owns the State (single writer) and
// drains the command queue between ticks, so tempo, sound and volume changes
// land without disturbing the interval already in flight.
//
// Drift handling: after each tick the baseline advances by the interval that
// was scheduled, not to the wall clock, so wake-up latency never accumulates.
type Scheduler struct {
	clock  clock.Clock
	state  *State
	queue  *Queue
	player Player
	policy *RandomTempoPolicy

	baseline time.Time
	done     chan struct{}
}

func NewScheduler(cl clock.Clock, st *State, q *Queue, p Player, policy *RandomTempoPolicy) *Scheduler {
	return &Scheduler{
		clock:  cl,
		state:  st,
		queue:  q,
		player: p,
		policy: policy,
		done:   make(chan struct{}),
	}
}

// Done is closed once Run has returned and released its timer.
func (s *Scheduler) Done() <-chan struct{} {
	return s.done
}

// outcome of one interruptible wait
const (
	waitFired = iota
	waitQuit
	waitStopped
)

// Run loops until a Quit command arrives or ctx is cancelled. This is the
// only blocking call in the engine.
func (s *Scheduler) Run(ctx context.Context) {
	log := logger.GetProjectLogger()
	log.Info("tick scheduler started")
	defer close(s.done)
	defer log.Info("tick scheduler shutdown")

	for {
		snap := s.state.Snapshot()

		if !snap.Running {
			// idle: block until a command shows up, no polling
			select {
			case <-ctx.Done():
				return
			case <-s.queue.Ready():
				if s.applyPending().Quit {
					return
				}
			}
			continue
		}

		interval := Interval(snap.Tempo)
		switch s.waitUntil(ctx, s.baseline.Add(interval)) {
		case waitQuit:
			return
		case waitStopped:
			continue
		}

		// tick boundary: a random-mode draw governs the next gap, not the
		// one that just elapsed
		cur := s.state.Snapshot()
		if cur.RandomMode {
			next := s.policy.Next(cur.Tempo, cur.RandomSpread)
			s.state.setTempo(next)
			log.WithFields(logrus.Fields{"from": cur.Tempo, "to": next}).Debug("random tempo draw")
		}

		s.player.Play(TickEvent{
			SoundIndex: cur.SoundIndex,
			Volume:     cur.Volume,
			Timestamp:  s.clock.Now(),
		})
		s.baseline = s.baseline.Add(interval)
	}
}

// waitUntil sleeps until due while staying responsive to commands. Commands
// applied mid-wait take effect from the next interval; the wait already in
// flight keeps its original due time.
func (s *Scheduler) waitUntil(ctx context.Context, due time.Time) int {
	for {
		remaining := due.Sub(s.clock.Now())
		if remaining <= 0 {
			return waitFired
		}

		timer := s.clock.NewTimer(remaining)
		select {
		case <-ctx.Done():
			timer.Stop()
			return waitQuit
		case <-timer.C():
			return waitFired
		case <-s.queue.Ready():
			timer.Stop()
			if s.applyPending().Quit {
				return waitQuit
			}
			if !s.state.Snapshot().Running {
				return waitStopped
			}
		}
	}
}

// applyPending drains the queue and applies every command in arrival order.
// Quit short-circuits: nothing queued behind it is applied.
func (s *Scheduler) applyPending() Effect {
	log := logger.GetProjectLogger()

	var out Effect
	for _, cmd := range s.queue.Drain() {
		fx := s.state.Apply(cmd)
		log.WithFields(logrus.Fields{"command": cmd.Kind.String()}).Debug("applied command")

		if fx.Quit {
			out.Quit = true
			return out
		}
		if fx.Started {
			// resuming must not inherit a stale baseline
			s.baseline = s.clock.Now()
		}
		if fx.TestSound {
			snap := s.state.Snapshot()
			s.player.Play(TickEvent{
				SoundIndex: snap.SoundIndex,
				Volume:     snap.Volume,
				Timestamp:  s.clock.Now(),
			})
		}
	}
	return out
}
