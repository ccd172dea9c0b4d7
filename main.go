package main

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"
	"k8s.io/utils/clock"

	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/engine"
	"github.com/robmorgan/pulse/logger"
	"github.com/robmorgan/pulse/sound"
)

var (
	flagBPM    = flag.Int("bpm", 120, "starting tempo in beats per minute")
	flagVolume = flag.Int("volume", 70, "starting volume (0-100)")
	flagSound  = flag.Int("sound", 0, "starting sound index")
	flagSilent = flag.Bool("silent", false, "disable audio output")
	flagDebug  = flag.Bool("debug", false, "enable debug logging")
)

func main() {
	flag.Parse()
	Run(context.Background())
}

// Run wires the engine to the terminal front-end and blocks until the user
// quits.
func Run(ctx context.Context) {
	log := logger.GetProjectLogger()
	if *flagDebug {
		logger.EnableDebugLogging()
	}

	cfg, err := config.NewPulseConfig()
	if err != nil {
		log.Fatalf("error creating config: %v", err)
	}
	cfg.StartTempo = *flagBPM
	cfg.StartVolume = *flagVolume
	cfg.StartSound = *flagSound
	cfg.Silent = *flagSilent
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	log.Info("Initializing sound bank...")
	bank := sound.DefaultBank()

	var player *sound.Player
	if cfg.Silent {
		player = sound.NewSilentPlayer(bank)
	} else {
		player = sound.NewPlayer(bank)
	}
	defer player.Close()

	// out-of-range flag values are clamped, same as commands are later
	state := engine.NewState(cfg.StartTempo, cfg.StartVolume, cfg.StartSound, cfg.StartSpread, bank.Count())
	queue := engine.NewQueue(cfg.CommandQueueSize)
	policy := engine.NewRandomTempoPolicy(time.Now().UnixNano())
	sched := engine.NewScheduler(clock.RealClock{}, state, queue, player, policy)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go sched.Run(ctx)

	if err := tea.NewProgram(newModel(cfg, state, queue, bank)).Start(); err != nil {
		log.Errorf("error running program: %v", err)
	}

	// the quit key already queued a Quit; this covers front-end errors
	queue.Push(engine.Quit())
	<-sched.Done()
}
