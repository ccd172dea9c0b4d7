package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/robmorgan/pulse/engine"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.queue.Push(engine.Quit())
			m.quitting = true
			return m, tea.Quit
		case " ", "enter":
			m.queue.Push(engine.StartStop())
		case "up":
			m.queue.Push(engine.AdjustTempo(5))
		case "down":
			m.queue.Push(engine.AdjustTempo(-5))
		case "right":
			m.queue.Push(engine.AdjustTempo(1))
		case "left":
			m.queue.Push(engine.AdjustTempo(-1))
		case "f1":
			m.queue.Push(engine.SetTempo(m.cfg.Presets[0]))
		case "f2":
			m.queue.Push(engine.SetTempo(m.cfg.Presets[1]))
		case "f3":
			m.queue.Push(engine.SetTempo(m.cfg.Presets[2]))
		case "f4":
			m.queue.Push(engine.SetTempo(m.cfg.Presets[3]))
		case "s", "n":
			m.queue.Push(engine.NextSound())
		case "a", "p":
			m.queue.Push(engine.PrevSound())
		case "t":
			m.queue.Push(engine.TestSound())
		case "v":
			m.queue.Push(engine.VolumeUp())
		case "c":
			m.queue.Push(engine.VolumeDown())
		case "r":
			m.queue.Push(engine.ToggleRandom())
		case "+", "=":
			m.queue.Push(engine.AdjustSpread(10))
		case "-", "_":
			m.queue.Push(engine.AdjustSpread(-10))
		}
		return m, nil
	case tickMsg:
		m.snap = m.state.Snapshot()
		return m, tickCmd(m.cfg.UIRefresh)
	default:
		return m, nil
	}
}
