package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/robmorgan/pulse/engine"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	runningStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	stoppedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	randomStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Margin(1, 0)
	appStyle     = lipgloss.NewStyle().Margin(1, 2, 0, 2)
)

// tempoColor blends from a calm green at 20 BPM to an urgent pink at 400.
func tempoColor(bpm int) lipgloss.Color {
	slow, _ := colorful.Hex("#43bf6d")
	fast, _ := colorful.Hex("#f25d94")
	t := float64(bpm-engine.MinTempo) / float64(engine.MaxTempo-engine.MinTempo)
	return lipgloss.Color(slow.BlendLuv(fast, t).Hex())
}

func (m model) View() string {
	snap := m.snap

	var s string
	s += titleStyle.Render("♪ pulse") + "\n\n"

	bpmStyle := lipgloss.NewStyle().Bold(true).Foreground(tempoColor(snap.Tempo))
	s += labelStyle.Render("Tempo  ") + bpmStyle.Render(fmt.Sprintf("%d BPM", snap.Tempo)) + "\n"

	if snap.Running {
		s += labelStyle.Render("Status ") + runningStyle.Render("RUNNING") + "\n"
	} else {
		s += labelStyle.Render("Status ") + stoppedStyle.Render("STOPPED") + "\n"
	}

	s += labelStyle.Render("Sound  ") + m.bank.Name(snap.SoundIndex) + "\n"
	s += labelStyle.Render("Volume ") + m.volumeBar.ViewAs(float64(snap.Volume)/100.0) +
		fmt.Sprintf(" %d%%", snap.Volume) + "\n"

	if snap.RandomMode {
		s += randomStyle.Render(fmt.Sprintf("Random mode ON (spread ±%d BPM)", snap.RandomSpread)) + "\n"
	} else {
		s += labelStyle.Render("Random mode off") + "\n"
	}

	s += helpStyle.Render(
		"space start/stop · ↑/↓ ±5 · ←/→ ±1 · F1-F4 presets\n" +
			"s/a next/prev sound · t test · v/c volume · r random · +/- spread · q quit")

	if m.quitting {
		s += "\n"
	}
	return appStyle.Render(s)
}
