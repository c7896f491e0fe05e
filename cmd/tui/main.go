package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"atc-runway-simulator/internal/game/airspace"
	"atc-runway-simulator/internal/game/selector"
	"atc-runway-simulator/internal/game/simulation"
	"atc-runway-simulator/internal/logging"
	"atc-runway-simulator/internal/trigger"
	"atc-runway-simulator/pkg/config"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/labstack/gommon/log"
)

const (
	HISTORY_LINES  = 8
	PROMPT_MESSAGE = "Press SPACE to process the next plane."
)

type model struct {
	cfg     *config.Config
	airport *airspace.Airport
	sim     *simulation.Simulation

	// timed trigger, running while cancel is set
	events   chan tea.Msg
	cancel   context.CancelFunc
	timerID  int
	interval time.Duration

	last *simulation.Assignment
	err  error
}

type assignedMsg simulation.Assignment

type timerDoneMsg struct {
	id  int
	err error
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

func (m model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Clear error on any keypress (but don't quit)
		if m.err != nil && msg.String() != "q" && msg.String() != "ctrl+c" {
			m.err = nil
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.stopTimer()
			return m, tea.Quit
		case " ", "enter":
			result, err := m.sim.ProcessNext()
			if err != nil {
				m.err = err
				m.last = nil
			} else if result != nil {
				m.last = result
			}
		case "t":
			if m.cancel != nil {
				m.stopTimer()
			} else {
				m.startTimer()
			}
		case "p":
			m.cyclePolicy()
		case "n":
			m.sim.Enqueue(m.cfg.Simulation.Arrivals)
		case "c":
			m.sim.SetWind(0, 0)
		}

	case assignedMsg:
		a := simulation.Assignment(msg)
		m.last = &a
		return m, waitForEvent(m.events)

	case timerDoneMsg:
		if msg.id == m.timerID {
			m.cancel = nil
		}
		if msg.err != nil {
			m.err = msg.err
		}
		return m, waitForEvent(m.events)
	}

	return m, nil
}

func (m *model) startTimer() {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancel = cancel
	m.timerID++

	id, events, sim := m.timerID, m.events, m.sim
	timer := trigger.NewTimer(trigger.TimerConfig{Interval: m.interval, StopWhenEmpty: true}, func(a simulation.Assignment) {
		events <- assignedMsg(a)
	})
	go func() {
		err := timer.Run(ctx, sim)
		events <- timerDoneMsg{id: id, err: err}
	}()
	log.Infof("Timed trigger started, every %s", m.interval)
}

func (m *model) stopTimer() {
	if m.cancel == nil {
		return
	}
	m.cancel()
	m.cancel = nil
	log.Infof("Timed trigger stopped")
}

func (m *model) cyclePolicy() {
	current := m.sim.Selector().Name()
	next := selector.Policies[0]
	for i, p := range selector.Policies {
		if p == current {
			next = selector.Policies[(i+1)%len(selector.Policies)]
			break
		}
	}
	sel, err := selector.New(next, m.airport)
	if err != nil {
		m.err = err
		return
	}
	m.sim.SetSelector(sel)
}

func (m model) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("86")).
		Background(lipgloss.Color("235")).
		Padding(0, 1)
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true)
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	b.WriteString(titleStyle.Render("ATC Runway Simulator"))
	b.WriteString("\n\n")

	w := m.sim.Wind()
	b.WriteString(simulation.WindText(w) + "\n")
	b.WriteString(w.String() + "\n\n")

	status := m.sim.Status()
	if status == "" {
		status = PROMPT_MESSAGE
	}
	b.WriteString(labelStyle.Render(status) + "\n")

	timer := "off"
	if m.cancel != nil {
		timer = fmt.Sprintf("every %s", m.interval)
	}
	next := "-"
	if a, ok := m.sim.Next(); ok {
		next = string(a.ID)
	}
	b.WriteString(fmt.Sprintf("Pending: %d  Next: %s  Policy: %s  Timer: %s\n\n",
		m.sim.Pending(), next, m.sim.Selector().Name(), timer))

	b.WriteString(m.renderCompass())
	b.WriteString("\n")
	b.WriteString(m.renderHistory())

	if m.err != nil {
		errStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
		b.WriteString("\n" + errStyle.Render(fmt.Sprintf("Error: %v", m.err)) + "\n")
	}

	b.WriteString("\n" + helpStyle.Render("space/enter: next plane  t: timer  p: policy  n: more planes  c: calm  q: quit"))
	return b.String()
}

// renderCompass lights the landing direction of the last assignment.
func (m model) renderCompass() string {
	lit := lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("237"))

	mark := func(d selector.Direction) string {
		if m.last != nil && m.last.Direction == d {
			return lit.Render(d.ShortString())
		}
		return dim.Render(d.ShortString())
	}

	return fmt.Sprintf("    %s\n  %s + %s\n    %s\n",
		mark(selector.North), mark(selector.West), mark(selector.East), mark(selector.South))
}

func (m model) renderHistory() string {
	entries := m.sim.Log()
	if len(entries) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("  No assignments yet") + "\n"
	}
	if len(entries) > HISTORY_LINES {
		entries = entries[len(entries)-HISTORY_LINES:]
	}

	var b strings.Builder
	for i := len(entries) - 1; i >= 0; i-- {
		a := entries[i]
		line := fmt.Sprintf("  %s  %-8s %-5s (%6.2f, %6.2f) %s",
			a.Timestamp.Format("15:04:05"), a.Callsign, a.Label, a.Wind.X, a.Wind.Y, a.Policy)
		if a.Fallback {
			line += " calm"
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func main() {
	configPath := flag.String("config", "runway-sim.json", "path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// The terminal belongs to the UI, so logs only go to the file, if any.
	closer, err := logging.Setup(cfg.Log.Level, cfg.Log.Dir, cfg.Log.MaxSizeMB, nil, "tui")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	sim, ap, err := simulation.NewFromConfig(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	interval := cfg.Simulation.AutoTriggerInterval()
	if interval <= 0 {
		interval = 2 * time.Second
	}

	m := model{
		cfg:      cfg,
		airport:  ap,
		sim:      sim,
		events:   make(chan tea.Msg, 1),
		interval: interval,
	}
	if cfg.Simulation.AutoTriggerSeconds > 0 {
		m.startTimer()
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
