package ui

// state identifies the current screen of the TUI.
type state int

const (
	stateMenu state = iota
	stateEditing
	stateRunning
)

func (s state) String() string {
	switch s {
	case stateMenu:
		return "Menu"
	case stateEditing:
		return "Editing"
	case stateRunning:
		return "Running"
	default:
		return "Unknown"
	}
}

// field identifies which configuration value an edit screen targets.
type field int

const (
	fieldNone field = iota
	fieldInterval
	fieldPixels
	fieldLogPath
	fieldRangeMin
	fieldRangeMax
)

func (f field) prompt() string {
	switch f {
	case fieldInterval:
		return "Enter interval in seconds (10-3600):"
	case fieldPixels:
		return "Enter movement in pixels (1-100):"
	case fieldLogPath:
		return "Enter log file path:"
	case fieldRangeMin:
		return "Enter minimum interval in seconds (10-3600):"
	case fieldRangeMax:
		return "Enter maximum interval in seconds (10-3600):"
	default:
		return ""
	}
}

func (f field) numeric() bool {
	return f != fieldLogPath
}
