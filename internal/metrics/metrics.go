// Package metrics tracks optional byte-accounting counters: a tiny global
// counter map that call sites bump and a benchmark harness periodically
// drains.
package metrics

import (
	"os"
	"sync"
)

// Enabled gates whether Add does any work. Off by default so the hot
// signing/verification path pays no locking cost unless a caller (a
// benchmark, typically) opts in.
var Enabled = os.Getenv("MAYO_METRICS") == "1"

var (
	mu     sync.Mutex
	counts = map[string]uint64{}
)

// Add accumulates n under key. A no-op when Enabled is false.
func Add(key string, n uint64) {
	if !Enabled {
		return
	}
	mu.Lock()
	counts[key] += n
	mu.Unlock()
}

// SnapshotAndReset returns a copy of the accumulated counters and clears
// them, letting a benchmark loop report per-iteration deltas.
func SnapshotAndReset() map[string]uint64 {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]uint64, len(counts))
	for k, v := range counts {
		out[k] = v
	}
	for k := range counts {
		delete(counts, k)
	}
	return out
}
