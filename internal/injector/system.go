package injector

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-vgo/robotgo"
	"github.com/micmonay/keybd_event"
)

// keyCodes maps supported key names to keybd_event virtual key codes.
// F13-F15 are deliberately obscure: they register as activity without
// doing anything in ordinary applications.
var keyCodes = map[string]int{
	"f13": keybd_event.VK_F13,
	"f14": keybd_event.VK_F14,
	"f15": keybd_event.VK_F15,
}

// System injects input through the OS using robotgo for pointer movement
// and keybd_event for keystrokes.
type System struct {
	kb      keybd_event.KeyBonding
	readyAt time.Time
}

// NewSystem prepares the system injector. On Linux the virtual keyboard
// device needs a registration delay before the first event; SendKey
// waits it out instead of blocking construction.
func NewSystem() (*System, error) {
	kb, err := keybd_event.NewKeyBonding()
	if err != nil {
		return nil, &Error{Op: "keyboard setup", Err: err}
	}

	s := &System{kb: kb}
	if runtime.GOOS == "linux" {
		s.readyAt = time.Now().Add(2 * time.Second)
	}
	return s, nil
}

// MovePointer moves the pointer by the given relative offset.
func (s *System) MovePointer(dx, dy int) error {
	robotgo.MoveRelative(dx, dy)
	return nil
}

// SendKey taps the named key once.
func (s *System) SendKey(key string) error {
	code, ok := keyCodes[key]
	if !ok {
		return &Error{Op: "key " + key, Err: fmt.Errorf("unsupported key")}
	}

	if wait := time.Until(s.readyAt); wait > 0 {
		time.Sleep(wait)
	}

	s.kb.SetKeys(code)
	if err := s.kb.Launching(); err != nil {
		return &Error{Op: "key " + key, Err: err}
	}
	s.kb.Clear()
	return nil
}
