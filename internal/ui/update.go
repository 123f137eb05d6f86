package ui

import (
	"fmt"
	"strconv"
	"time"
	"unicode"

	"github.com/eternalgreen/eternal-green/internal/config"
	"github.com/eternalgreen/eternal-green/internal/logging"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg refreshes the running view once per second.
type tickMsg time.Time

const menuItemCount = 8

// Update handles messages and returns the next model.
func Update(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg.(type) {
	case ShutdownMsg:
		m = m.StopLoop()
		m.Logger.Close()
		return m, tea.Quit
	case StartRequestMsg:
		if m.State == stateMenu {
			return m.StartLoop()
		}
		return m, nil
	}

	switch m.State {
	case stateMenu:
		return updateMenu(msg, m)
	case stateEditing:
		return updateEditing(msg, m)
	case stateRunning:
		return updateRunning(msg, m)
	}
	return m, nil
}

func updateMenu(msg tea.Msg, m Model) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.Selected > 0 {
			m.Selected--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.Selected < menuItemCount-1 {
			m.Selected++
		}
	case key.Matches(keyMsg, m.keys.Select):
		return selectMenuItem(m)
	case key.Matches(keyMsg, m.keys.Quit):
		m.Logger.Close()
		return m, tea.Quit
	}
	return m, nil
}

func selectMenuItem(m Model) (Model, tea.Cmd) {
	m.ErrorMessage = ""
	m.Status = ""

	switch m.Selected {
	case 0:
		return m.startEdit(fieldInterval, strconv.Itoa(m.Cfg.IntervalSeconds)), nil
	case 1:
		return m.startEdit(fieldPixels, strconv.Itoa(m.Cfg.MovementPixels)), nil
	case 2:
		silent := !m.Cfg.SilentMode
		return m.applyChanges(config.Changes{SilentMode: &silent}, "silent_mode", m.Cfg.SilentMode, silent), nil
	case 3:
		return m.startEdit(fieldLogPath, m.Cfg.LogFilePath), nil
	case 4:
		random := !m.Cfg.RandomInterval
		return m.applyChanges(config.Changes{RandomInterval: &random}, "random_interval", m.Cfg.RandomInterval, random), nil
	case 5:
		return m.startEdit(fieldRangeMin, strconv.Itoa(m.Cfg.IntervalRangeMin)), nil
	case 6:
		return m.StartLoop()
	case 7:
		m.Logger.Close()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) startEdit(f field, current string) Model {
	m.State = stateEditing
	m.Editing = f
	m.Input = current
	return m
}

func updateEditing(msg tea.Msg, m Model) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Submit):
		return submitEdit(m), nil
	case key.Matches(keyMsg, m.keys.Back):
		m.State = stateMenu
		m.Editing = fieldNone
		m.Input = ""
		m.ErrorMessage = ""
		return m, nil
	case key.Matches(keyMsg, m.keys.Backspace):
		if len(m.Input) > 0 {
			m.Input = m.Input[:len(m.Input)-1]
			m.ErrorMessage = ""
		}
		return m, nil
	default:
		s := keyMsg.String()
		if len([]rune(s)) != 1 {
			return m, nil
		}
		r := []rune(s)[0]
		if m.Editing.numeric() {
			if unicode.IsDigit(r) && len(m.Input) < 4 {
				m.Input += s
				m.ErrorMessage = ""
			}
		} else if unicode.IsPrint(r) && len(m.Input) < 128 {
			m.Input += s
			m.ErrorMessage = ""
		}
		return m, nil
	}
}

func submitEdit(m Model) Model {
	if m.Input == "" {
		m.ErrorMessage = "Please enter a value"
		return m
	}

	if m.Editing == fieldLogPath {
		path := m.Input
		m = m.applyChanges(config.Changes{LogFilePath: &path}, "log_file_path", m.Cfg.LogFilePath, path)
		if m.ErrorMessage == "" {
			m.State = stateMenu
			m.Editing = fieldNone
			m.Input = ""
		}
		return m
	}

	value, err := strconv.Atoi(m.Input)
	if err != nil {
		m.ErrorMessage = "Invalid input, enter a whole number"
		return m
	}

	switch m.Editing {
	case fieldInterval:
		m = m.applyChanges(config.Changes{IntervalSeconds: &value}, "interval_seconds", m.Cfg.IntervalSeconds, value)
	case fieldPixels:
		m = m.applyChanges(config.Changes{MovementPixels: &value}, "movement_pixels", m.Cfg.MovementPixels, value)
	case fieldRangeMin:
		// Second half of the range edit follows; nothing persists yet.
		m.pendingMin = value
		m.Editing = fieldRangeMax
		m.Input = strconv.Itoa(m.Cfg.IntervalRangeMax)
		return m
	case fieldRangeMax:
		min := m.pendingMin
		old := fmt.Sprintf("%d-%d", m.Cfg.IntervalRangeMin, m.Cfg.IntervalRangeMax)
		m = m.applyChanges(
			config.Changes{IntervalRangeMin: &min, IntervalRangeMax: &value},
			"interval_range", old, fmt.Sprintf("%d-%d", min, value),
		)
	}

	if m.ErrorMessage == "" {
		m.State = stateMenu
		m.Editing = fieldNone
		m.Input = ""
	}
	return m
}

// applyChanges persists a configuration update and records it in the
// activity log. On validation failure the model keeps the previous
// configuration and shows the error; the file on disk is untouched.
func (m Model) applyChanges(ch config.Changes, field string, oldValue, newValue any) Model {
	cfg, err := m.Manager.Update(m.Cfg, ch)
	if err != nil {
		m.ErrorMessage = err.Error()
		return m
	}

	m.Logger.ConfigChange(field, oldValue, newValue)
	if field == "log_file_path" {
		m.Logger.Close()
		m.Logger = logging.New(config.ExpandPath(cfg.LogFilePath))
	}

	m.Cfg = cfg
	m.Status = fmt.Sprintf("Updated %s: %v -> %v", field, oldValue, newValue)
	m.ErrorMessage = ""
	return m
}

func updateRunning(msg tea.Msg, m Model) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Stop):
			m = m.StopLoop()
			m.Status = "Idle prevention stopped"
			return m, nil
		case key.Matches(msg, m.keys.Quit):
			m = m.StopLoop()
			m.Logger.Close()
			return m, tea.Quit
		}
	case tickMsg:
		return m, tick()
	}
	return m, nil
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
