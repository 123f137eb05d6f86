package ui

import (
	"fmt"
	"strings"
)

// View renders the current state of the model to a string.
func View(m Model) string {
	switch m.State {
	case stateMenu:
		return menuView(m)
	case stateEditing:
		return editView(m)
	case stateRunning:
		return runningView(m)
	}
	return ""
}

func menuView(m Model) string {
	var b strings.Builder

	title := "Eternal Green"
	if m.version != "" {
		title += " v" + m.version
	}
	b.WriteString(Current.Title.Render(title))
	b.WriteString("\n\n")

	menuItems := []string{
		fmt.Sprintf("Interval seconds      %d", m.Cfg.IntervalSeconds),
		fmt.Sprintf("Movement pixels       %d", m.Cfg.MovementPixels),
		fmt.Sprintf("Silent mode           %s", onOff(m.Cfg.SilentMode)),
		fmt.Sprintf("Log file path         %s", m.Cfg.LogFilePath),
		fmt.Sprintf("Random interval       %s", onOff(m.Cfg.RandomInterval)),
		fmt.Sprintf("Interval range        %d-%ds", m.Cfg.IntervalRangeMin, m.Cfg.IntervalRangeMax),
		"Start idle prevention",
		"Quit",
	}

	for i, item := range menuItems {
		if i == m.Selected {
			b.WriteString(Current.Selected.Render("> " + item))
		} else {
			b.WriteString(Current.Unselected.Render("  " + item))
		}
		b.WriteString("\n")
	}

	if m.IntervalOverride > 0 {
		b.WriteString("\n" + Current.Value.Render(
			fmt.Sprintf("Session interval override: %ds (not saved)", m.IntervalOverride)))
	}

	if m.Status != "" {
		b.WriteString("\n" + Current.Status.Render(m.Status))
	}
	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func editView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Edit Configuration"))
	b.WriteString("\n\n")

	b.WriteString(Current.Unselected.Render(m.Editing.prompt()))
	b.WriteString("\n")

	input := m.Input
	if input == "" {
		input = " "
	}
	b.WriteString(Current.InputBox.Render(input))
	b.WriteString("\n")

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func runningView(m Model) string {
	var b strings.Builder

	b.WriteString(Current.Title.Render("Idle Prevention Active"))
	b.WriteString("\n\n")

	cfg := m.runConfig()
	if cfg.RandomInterval {
		b.WriteString(Current.Active.Render(
			fmt.Sprintf("Simulating activity every %d-%d seconds", cfg.IntervalRangeMin, cfg.IntervalRangeMax)))
	} else {
		b.WriteString(Current.Active.Render(
			fmt.Sprintf("Simulating activity every %d seconds", cfg.IntervalSeconds)))
	}
	b.WriteString("\n")

	mode := "pointer + keystroke"
	if cfg.SilentMode {
		mode = "pointer only (silent)"
	}
	b.WriteString(Current.Unselected.Render("Mode: " + mode))
	b.WriteString("\n")

	elapsed := m.Elapsed()
	b.WriteString(Current.Unselected.Render(
		fmt.Sprintf("Running for %d:%02d", int(elapsed.Minutes()), int(elapsed.Seconds())%60)))
	b.WriteString("\n")

	if m.ErrorMessage != "" {
		b.WriteString("\n" + Current.Error.Render(m.ErrorMessage))
	}

	b.WriteString("\n" + Current.Help.Render(m.help.View(m.keys.ForState(m.State))))
	return b.String()
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
