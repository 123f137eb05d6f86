package simulator

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/eternalgreen/eternal-green/internal/config"
	"github.com/eternalgreen/eternal-green/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeInjector records injected input and can be told to fail.
type fakeInjector struct {
	mu       sync.Mutex
	moves    [][2]int
	keys     []string
	failMove bool
	failKey  bool
}

func (f *fakeInjector) MovePointer(dx, dy int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failMove {
		return errors.New("pointer blocked")
	}
	f.moves = append(f.moves, [2]int{dx, dy})
	return nil
}

func (f *fakeInjector) SendKey(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failKey {
		return errors.New("keyboard blocked")
	}
	f.keys = append(f.keys, key)
	return nil
}

func (f *fakeInjector) keyCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.keys)
}

func (f *fakeInjector) moveCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.moves)
}

func newTestSimulator(t *testing.T, cfg config.Config, inj *fakeInjector) (*Simulator, string) {
	t.Helper()
	logPath := filepath.Join(t.TempDir(), "activity.log")
	return New(cfg, logging.New(logPath), inj), logPath
}

func logLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

func linesOfKind(lines []string, kind string) []string {
	var out []string
	for _, line := range lines {
		if strings.Contains(line, "["+kind+"]") {
			out = append(out, line)
		}
	}
	return out
}

func TestNextDelayFixed(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 120
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	for i := 0; i < 100; i++ {
		assert.Equal(t, 120, s.NextDelay())
	}
}

func TestNextDelayRandomStaysInClosedRange(t *testing.T) {
	cfg := config.Default()
	cfg.RandomInterval = true
	cfg.IntervalRangeMin = 10
	cfg.IntervalRangeMax = 13
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	sawMin, sawMax := false, false
	for i := 0; i < 2000; i++ {
		d := s.NextDelay()
		require.GreaterOrEqual(t, d, 10)
		require.LessOrEqual(t, d, 13)
		if d == 10 {
			sawMin = true
		}
		if d == 13 {
			sawMax = true
		}
	}
	assert.True(t, sawMin, "never drew the minimum")
	assert.True(t, sawMax, "never drew the maximum")
}

func TestNextDelayDegenerateRange(t *testing.T) {
	cfg := config.Default()
	cfg.RandomInterval = true
	cfg.IntervalRangeMin = 42
	cfg.IntervalRangeMax = 42
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	for i := 0; i < 50; i++ {
		assert.Equal(t, 42, s.NextDelay())
	}
}

func TestPointerOffsetsBounded(t *testing.T) {
	cfg := config.Default()
	cfg.MovementPixels = 7
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	for i := 0; i < 1000; i++ {
		dx, dy := s.pointerOffsets()
		assert.LessOrEqual(t, abs(dx), 7)
		assert.LessOrEqual(t, abs(dy), 7)
		assert.False(t, dx == 0 && dy == 0, "offset must never be the zero vector")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func TestSimulateActivityRoundTrip(t *testing.T) {
	inj := &fakeInjector{}
	s, _ := newTestSimulator(t, config.Default(), inj)

	require.True(t, s.SimulateActivity(0))

	require.Equal(t, 2, inj.moveCount())
	out, back := inj.moves[0], inj.moves[1]
	assert.Equal(t, -out[0], back[0])
	assert.Equal(t, -out[1], back[1])
	assert.Equal(t, []string{"f15"}, inj.keys)
}

func TestSimulateActivityIncludesNextIntervalInLog(t *testing.T) {
	s, logPath := newTestSimulator(t, config.Default(), &fakeInjector{})

	require.True(t, s.SimulateActivity(42))

	lines := logLines(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "[ACTIVITY]")
	assert.Contains(t, lines[0], "next in 42s")
}

func TestSimulateActivityWithoutNextInterval(t *testing.T) {
	s, logPath := newTestSimulator(t, config.Default(), &fakeInjector{})

	require.True(t, s.SimulateActivity(0))

	lines := logLines(t, logPath)
	require.Len(t, lines, 1)
	assert.NotContains(t, lines[0], "next in")
}

func TestSimulateActivityMoveFailure(t *testing.T) {
	inj := &fakeInjector{failMove: true}
	s, logPath := newTestSimulator(t, config.Default(), inj)

	assert.False(t, s.SimulateActivity(30))

	lines := logLines(t, logPath)
	require.Len(t, lines, 1, "exactly one line must be appended")
	assert.Contains(t, lines[0], "[ERROR]")
	assert.Contains(t, lines[0], "pointer blocked")
	assert.Zero(t, inj.keyCount(), "no keystroke after a failed move")
}

func TestSimulateActivityKeyFailure(t *testing.T) {
	inj := &fakeInjector{failKey: true}
	s, logPath := newTestSimulator(t, config.Default(), inj)

	assert.False(t, s.SimulateActivity(0))

	errs := linesOfKind(logLines(t, logPath), "ERROR")
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "keyboard blocked")
}

func TestSilentModeSkipsKeystroke(t *testing.T) {
	cfg := config.Default()
	cfg.SilentMode = true
	inj := &fakeInjector{failKey: true} // would fail if touched
	s, logPath := newTestSimulator(t, cfg, inj)

	assert.True(t, s.SimulateActivity(0))
	assert.Zero(t, inj.keyCount())

	lines := logLines(t, logPath)
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "silent mode")
}

func TestLoggerFailureDoesNotChangeResult(t *testing.T) {
	// A logger pointed at a directory can never write; simulation must
	// still report success.
	log := logging.New(t.TempDir())
	log.SetDiagnostics(discard{})
	s := New(config.Default(), log, &fakeInjector{})

	assert.True(t, s.SimulateActivity(10))
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func TestStartWhileRunning(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 3600
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	require.NoError(t, s.Start())
	defer s.Stop()
	require.True(t, s.IsRunning())

	assert.ErrorIs(t, s.Start(), ErrAlreadyRunning)
}

func TestStopDuringLongSleep(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 3600
	s, logPath := newTestSimulator(t, cfg, &fakeInjector{})

	require.NoError(t, s.Start())
	time.Sleep(150 * time.Millisecond) // let the first action land

	start := time.Now()
	s.Stop()
	elapsed := time.Since(start)

	assert.Less(t, elapsed, 2*time.Second, "stop must not wait out the full interval")
	assert.False(t, s.IsRunning())

	lines := logLines(t, logPath)
	require.NotEmpty(t, linesOfKind(lines, "START"))
	require.NotEmpty(t, linesOfKind(lines, "ACTIVITY"))
	require.NotEmpty(t, linesOfKind(lines, "STOP"))
}

func TestStartLogsInitialInterval(t *testing.T) {
	cfg := config.Default()
	cfg.RandomInterval = true
	cfg.IntervalRangeMin = 20
	cfg.IntervalRangeMax = 40
	s, logPath := newTestSimulator(t, cfg, &fakeInjector{})

	require.NoError(t, s.Start())
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	starts := linesOfKind(logLines(t, logPath), "START")
	require.Len(t, starts, 1)
	assert.Contains(t, starts[0], "20-40s")
}

func TestStopBeforeStartDoesNotPreCancel(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 3600
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	s.Stop() // no loop yet; must be a harmless no-op
	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning(), "start after stop must still run")
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestStopIdempotent(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 3600
	s, _ := newTestSimulator(t, cfg, &fakeInjector{})

	require.NoError(t, s.Start())
	s.Stop()
	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestRestartAfterStop(t *testing.T) {
	cfg := config.Default()
	cfg.IntervalSeconds = 3600
	inj := &fakeInjector{}
	s, logPath := newTestSimulator(t, cfg, inj)

	require.NoError(t, s.Start())
	time.Sleep(100 * time.Millisecond)
	s.Stop()
	firstMoves := inj.moveCount()
	require.Positive(t, firstMoves)

	require.NoError(t, s.Start())
	time.Sleep(100 * time.Millisecond)
	s.Stop()

	assert.Greater(t, inj.moveCount(), firstMoves, "second run must act again")
	assert.Len(t, linesOfKind(logLines(t, logPath), "STOP"), 2)
}

func TestLoopFirstActionLogsSameDelayItSleeps(t *testing.T) {
	cfg := config.Default()
	cfg.RandomInterval = true
	cfg.IntervalRangeMin = 100
	cfg.IntervalRangeMax = 3600
	s, logPath := newTestSimulator(t, cfg, &fakeInjector{})

	require.NoError(t, s.Start())
	time.Sleep(150 * time.Millisecond)
	s.Stop()

	// The loop stopped during its first sleep, so exactly one activity
	// line exists and it carries the hint for the delay being slept.
	acts := linesOfKind(logLines(t, logPath), "ACTIVITY")
	require.Len(t, acts, 1)
	assert.Contains(t, acts[0], "next in")
}
