package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineChecker records a goroutine baseline and verifies later that the
// count returned to it. Use one checker per test.
type GoroutineChecker struct {
	baseline int
	t        testing.TB
}

// NewGoroutineChecker captures the current goroutine count as the baseline.
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()

	// Let goroutines started by previous tests settle first
	runtime.Gosched()
	time.Sleep(10 * time.Millisecond)

	return &GoroutineChecker{
		baseline: runtime.NumGoroutine(),
		t:        t,
	}
}

// Check fails the test when more than tolerance goroutines remain above the
// baseline after the workload finished.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	// Give exiting goroutines a chance to be reaped before counting
	runtime.Gosched()
	time.Sleep(50 * time.Millisecond)
	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	current := runtime.NumGoroutine()
	leaked := current - g.baseline

	if leaked > tolerance {
		g.t.Errorf("goroutine leak: baseline=%d, current=%d, leaked=%d (tolerance=%d)",
			g.baseline, current, leaked, tolerance)
	}
}

// MemoryChecker records a heap baseline and verifies later that allocations
// stayed within a growth budget.
type MemoryChecker struct {
	baseline runtime.MemStats
	t        testing.TB
}

// NewMemoryChecker captures current heap usage as the baseline.
func NewMemoryChecker(t testing.TB) *MemoryChecker {
	t.Helper()

	runtime.GC()
	time.Sleep(10 * time.Millisecond)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	return &MemoryChecker{
		baseline: m,
		t:        t,
	}
}

// Check fails the test when live heap grew by more than maxGrowthMB since
// the baseline.
func (m *MemoryChecker) Check(maxGrowthMB float64) {
	m.t.Helper()

	runtime.GC()
	time.Sleep(50 * time.Millisecond)

	var current runtime.MemStats
	runtime.ReadMemStats(&current)

	baselineMB := float64(m.baseline.Alloc) / 1024 / 1024
	currentMB := float64(current.Alloc) / 1024 / 1024
	growthMB := currentMB - baselineMB

	if growthMB > maxGrowthMB {
		m.t.Errorf("heap growth: baseline=%.2fMB, current=%.2fMB, growth=%.2fMB (max=%.2fMB)",
			baselineMB, currentMB, growthMB, maxGrowthMB)
	}
}

// CheckNoGoroutineLeak runs fn and fails the test if any goroutine it
// started is still alive afterwards.
func CheckNoGoroutineLeak(t *testing.T, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// CheckBoundedMemory runs fn and fails the test if live heap grew by more
// than maxGrowthMB.
func CheckBoundedMemory(t *testing.T, maxGrowthMB float64, fn func()) {
	t.Helper()

	checker := NewMemoryChecker(t)
	fn()
	checker.Check(maxGrowthMB)
}
