// Package lockarena provides a fixed-size pool of mutexes addressed by
// string key. Keys hash onto stripes with xxhash; unrelated keys may share a
// stripe, which only costs contention.
package lockarena

import (
	"slices"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// Arena is a striped lock pool. The zero value is not usable; use New.
type Arena struct {
	stripes []sync.Mutex
}

// New returns an arena with n stripes. n < 1 is treated as 1.
func New(n int) *Arena {
	if n < 1 {
		n = 1
	}
	return &Arena{stripes: make([]sync.Mutex, n)}
}

// Size reports the number of stripes.
func (a *Arena) Size() int { return len(a.stripes) }

// Stripe returns the stripe index key maps to.
func (a *Arena) Stripe(key string) int {
	return int(xxhash.Sum64String(key) % uint64(len(a.stripes)))
}

// Acquire locks the stripes of all keys and returns the matching release
// func. Stripes are taken once each, in ascending index order, and released
// in reverse. Two callers holding overlapping key sets therefore never wait
// on each other in a cycle, even when distinct keys collide on a stripe.
//
// A goroutine must release what it holds before calling Acquire again on
// the same arena.
func (a *Arena) Acquire(keys ...string) (unlock func()) {
	idx := make([]int, 0, len(keys))
	for _, k := range keys {
		idx = append(idx, a.Stripe(k))
	}
	slices.Sort(idx)
	idx = slices.Compact(idx)

	for _, i := range idx {
		a.stripes[i].Lock()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			for i := len(idx) - 1; i >= 0; i-- {
				a.stripes[idx[i]].Unlock()
			}
		})
	}
}
