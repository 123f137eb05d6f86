package ui

import (
	"time"

	"github.com/eternalgreen/eternal-green/internal/config"
	"github.com/eternalgreen/eternal-green/internal/injector"
	"github.com/eternalgreen/eternal-green/internal/logging"
	"github.com/eternalgreen/eternal-green/internal/simulator"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

// ShutdownMsg asks the program to stop any running loop and quit. The
// entry point sends it on SIGINT/SIGTERM so the stop event still reaches
// the activity log.
type ShutdownMsg struct{}

// StartRequestMsg asks the menu to start idle prevention immediately.
// The entry point sends it for the -start flag.
type StartRequestMsg struct{}

// Model holds the TUI state: the persisted configuration, the simulator
// for the current run, and the edit-screen scratch input.
type Model struct {
	State    state
	Selected int
	Input    string
	Editing  field

	Manager *config.Manager
	Cfg     config.Config
	// IntervalOverride is a session-only interval in seconds (0 = none).
	// It affects started loops but is never persisted.
	IntervalOverride int

	Injector injector.Injector
	Logger   *logging.ActivityLogger
	Sim      *simulator.Simulator

	StartTime    time.Time
	ErrorMessage string
	Status       string

	// pendingMin holds the minimum entered on the first half of a range
	// edit; both bounds are validated and persisted together.
	pendingMin int

	keys    KeyMap
	help    help.Model
	version string
}

// InitialModel returns the menu model over a loaded configuration.
func InitialModel(mgr *config.Manager, cfg config.Config, inj injector.Injector) Model {
	return Model{
		State:    stateMenu,
		Manager:  mgr,
		Cfg:      cfg,
		Injector: inj,
		Logger:   logging.New(config.ExpandPath(cfg.LogFilePath)),
		keys:     DefaultKeys(),
		help:     NewHelpModel(),
	}
}

// SetVersion records the version string shown in the menu header.
func (m *Model) SetVersion(v string) {
	m.version = v
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	if m.State == stateRunning {
		return tick()
	}
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return Update(msg, m)
}

// View implements tea.Model.
func (m Model) View() string {
	return View(m)
}

// runConfig returns the configuration snapshot a started loop should use,
// with the session interval override applied.
func (m Model) runConfig() config.Config {
	cfg := m.Cfg
	if m.IntervalOverride > 0 {
		cfg.IntervalSeconds = m.IntervalOverride
	}
	return cfg
}

// StartLoop begins idle prevention with the current configuration.
func (m Model) StartLoop() (Model, tea.Cmd) {
	sim := simulator.New(m.runConfig(), m.Logger, m.Injector)
	if err := sim.Start(); err != nil {
		m.ErrorMessage = err.Error()
		return m, nil
	}
	m.Sim = sim
	m.State = stateRunning
	m.StartTime = time.Now()
	m.ErrorMessage = ""
	m.Status = ""
	return m, tick()
}

// StopLoop ends the running loop, if any, and returns to the menu.
func (m Model) StopLoop() Model {
	if m.Sim != nil {
		m.Sim.Stop()
		m.Sim = nil
	}
	m.State = stateMenu
	return m
}

// Elapsed returns how long the current run has been active.
func (m Model) Elapsed() time.Duration {
	if m.State != stateRunning {
		return 0
	}
	return time.Since(m.StartTime)
}
