// Package leaktest checks that code under test leaves no goroutines or heap behind.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

const settleDelay = 20 * time.Millisecond

// settle gives finished goroutines a chance to exit and the GC a chance to run
func settle() {
	runtime.Gosched()
	runtime.GC()
	time.Sleep(settleDelay)
}

// Snapshot is the goroutine count and live heap at one moment.
type Snapshot struct {
	Goroutines int
	HeapBytes  uint64
}

// Take records a snapshot after letting the runtime settle.
func Take() Snapshot {
	settle()
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return Snapshot{
		Goroutines: runtime.NumGoroutine(),
		HeapBytes:  m.HeapAlloc,
	}
}

// NoGoroutineLeak runs fn and fails t if more than tolerance goroutines outlive it.
func NoGoroutineLeak(t testing.TB, tolerance int, fn func()) {
	t.Helper()

	before := Take()
	fn()
	after := Take()

	if leaked := after.Goroutines - before.Goroutines; leaked > tolerance {
		t.Errorf("Potential goroutine leak: before=%d, after=%d, leaked=%d (tolerance=%d)",
			before.Goroutines, after.Goroutines, leaked, tolerance)
	}
}

// NoHeapGrowth runs fn and fails t if the live heap grew by more than maxGrowthMB.
func NoHeapGrowth(t testing.TB, maxGrowthMB float64, fn func()) {
	t.Helper()

	before := Take()
	fn()
	after := Take()

	growthMB := (float64(after.HeapBytes) - float64(before.HeapBytes)) / 1024 / 1024
	if growthMB > maxGrowthMB {
		t.Errorf("Potential memory leak: heap grew %.2fMB (max=%.2fMB)", growthMB, maxGrowthMB)
	}
}
