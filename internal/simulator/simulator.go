// Package simulator owns the activity scheduling loop.
package simulator

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/eternalgreen/eternal-green/internal/config"
	"github.com/eternalgreen/eternal-green/internal/injector"
	"github.com/eternalgreen/eternal-green/internal/logging"
)

// ErrAlreadyRunning is returned by Start while a loop is active.
var ErrAlreadyRunning = errors.New("simulator already running")

const (
	// sleepSlice bounds how long a Stop request can go unnoticed while the
	// loop sleeps between actions.
	sleepSlice = time.Second

	// stopWait bounds how long Stop waits for the loop goroutine.
	stopWait = 2 * time.Second

	// activityKey is the keystroke sent when silent mode is off. F15 is a
	// no-op in ordinary applications but still counts as user input.
	activityKey = "f15"
)

// Simulator repeatedly performs one simulated input action at a delay
// determined by its configuration snapshot, until asked to stop. A failed
// action is logged and skipped, never fatal. The configuration is
// read-only after construction; one Simulator drives at most one loop at
// a time.
type Simulator struct {
	cfg config.Config
	log *logging.ActivityLogger
	inj injector.Injector

	running atomic.Bool

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	rnd *rand.Rand
}

// New creates a simulator over one configuration snapshot.
func New(cfg config.Config, log *logging.ActivityLogger, inj injector.Injector) *Simulator {
	return &Simulator{
		cfg: cfg,
		log: log,
		inj: inj,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// IsRunning reports whether the loop is currently active.
func (s *Simulator) IsRunning() bool {
	return s.running.Load()
}

// NextDelay returns the delay in seconds before the next action. With
// random intervals enabled it draws a fresh uniform value from the closed
// range [min, max] on every call, so the loop never settles into a fixed
// detectable period.
func (s *Simulator) NextDelay() int {
	if !s.cfg.RandomInterval {
		return s.cfg.IntervalSeconds
	}
	span := s.cfg.IntervalRangeMax - s.cfg.IntervalRangeMin
	return s.cfg.IntervalRangeMin + s.rnd.Intn(span+1)
}

// pointerOffsets draws a random pointer offset with both components
// bounded by the configured pixel count and never the zero vector.
func (s *Simulator) pointerOffsets() (int, int) {
	px := s.cfg.MovementPixels
	dx := s.rnd.Intn(2*px+1) - px
	dy := s.rnd.Intn(2*px+1) - px
	if dx == 0 && dy == 0 {
		dx = px
	}
	return dx, dy
}

// SimulateActivity performs exactly one action: a pointer round trip by a
// random bounded offset and, unless silent mode is set, one keystroke.
// Injection failures are logged as an error event and reported as a false
// return; they never propagate to the caller. A positive nextInterval is
// included in the success message only; it has no effect on scheduling.
func (s *Simulator) SimulateActivity(nextInterval int) bool {
	dx, dy := s.pointerOffsets()

	if err := s.inj.MovePointer(dx, dy); err != nil {
		s.log.Error(fmt.Sprintf("activity simulation failed: %v", err))
		return false
	}
	if err := s.inj.MovePointer(-dx, -dy); err != nil {
		s.log.Error(fmt.Sprintf("activity simulation failed: %v", err))
		return false
	}

	mode := "with keystroke"
	if s.cfg.SilentMode {
		mode = "silent mode"
	} else if err := s.inj.SendKey(activityKey); err != nil {
		s.log.Error(fmt.Sprintf("activity simulation failed: %v", err))
		return false
	}

	msg := fmt.Sprintf("activity simulated: pointer moved %dpx (%s)", s.cfg.MovementPixels, mode)
	if nextInterval > 0 {
		msg += fmt.Sprintf(", next in %ds", nextInterval)
	}
	s.log.Activity(msg)
	return true
}

// Start begins the scheduling loop on a new goroutine. It returns
// ErrAlreadyRunning if a loop is already active; it never silently
// ignores the call. Start after Stop runs again: a stop request applies
// only to the loop that observes it.
func (s *Simulator) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running.Load() {
		return ErrAlreadyRunning
	}

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.done = make(chan struct{})
	s.running.Store(true)

	go s.loop(ctx, s.done)
	return nil
}

// Stop requests the loop to end and waits up to stopWait for it. It is
// idempotent and safe to call before any Start, in which case it does
// nothing to a future loop.
func (s *Simulator) Stop() {
	s.mu.Lock()
	s.running.Store(false)
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	done := s.done
	s.mu.Unlock()

	if done == nil {
		return
	}
	select {
	case <-done:
	case <-time.After(stopWait):
	}
}

func (s *Simulator) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	defer s.running.Store(false)

	if s.cfg.RandomInterval {
		s.log.Start(fmt.Sprintf("starting idle prevention loop (random interval: %d-%ds)",
			s.cfg.IntervalRangeMin, s.cfg.IntervalRangeMax))
	} else {
		s.log.Start(fmt.Sprintf("starting idle prevention loop (interval: %ds)", s.cfg.IntervalSeconds))
	}

	for s.running.Load() {
		// One draw per iteration, used for both the logged hint and the
		// actual sleep so they can never diverge.
		delay := s.NextDelay()
		s.SimulateActivity(delay)
		if !s.sleep(ctx, time.Duration(delay)*time.Second) {
			break
		}
	}

	s.log.Stop("idle prevention loop stopped")
}

// sleep waits for d in slices, rechecking the stop flag after each slice
// and waking immediately on cancellation. It returns false once the loop
// should exit.
func (s *Simulator) sleep(ctx context.Context, d time.Duration) bool {
	for remaining := d; remaining > 0; remaining -= sleepSlice {
		slice := sleepSlice
		if remaining < slice {
			slice = remaining
		}

		timer := time.NewTimer(slice)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}

		if !s.running.Load() {
			return false
		}
	}
	return s.running.Load()
}
