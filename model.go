package main

import (
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robmorgan/pulse/config"
	"github.com/robmorgan/pulse/engine"
	"github.com/robmorgan/pulse/sound"
)

type model struct {
	cfg   config.PulseConfig
	state *engine.State
	queue *engine.Queue
	bank  *sound.Bank

	snap      engine.Snapshot
	volumeBar progress.Model
	quitting  bool
}

func newModel(cfg config.PulseConfig, state *engine.State, queue *engine.Queue, bank *sound.Bank) model {
	vb := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(30),
		progress.WithoutPercentage(),
	)

	return model{
		cfg:       cfg,
		state:     state,
		queue:     queue,
		bank:      bank,
		snap:      state.Snapshot(),
		volumeBar: vb,
	}
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.cfg.UIRefresh)
}

type tickMsg time.Time

func tickCmd(every time.Duration) tea.Cmd {
	return tea.Tick(every, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
