package grpc

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// peerLimiter applies a token bucket per peer address and evicts idle
// buckets every few hundred calls. A nil limiter allows everything.
type peerLimiter struct {
	limit   rate.Limit
	burst   int
	idleTTL time.Duration

	mu     sync.Mutex
	byPeer map[string]*peerBucket
	hits   uint64
}

type peerBucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func newPeerLimiter(rps float64, burst int, idleTTL time.Duration) *peerLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = 1
	}
	return &peerLimiter{
		limit:   rate.Limit(rps),
		burst:   burst,
		idleTTL: idleTTL,
		byPeer:  make(map[string]*peerBucket),
	}
}

func (l *peerLimiter) allow(peer string, now time.Time) bool {
	if l == nil || peer == "" {
		return true
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.byPeer[peer]
	if !ok {
		b = &peerBucket{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.byPeer[peer] = b
	}
	b.lastSeen = now
	allowed := b.limiter.AllowN(now, 1)

	l.hits++
	if l.hits%512 == 0 {
		cutoff := now.Add(-l.idleTTL)
		for k, v := range l.byPeer {
			if v.lastSeen.Before(cutoff) {
				delete(l.byPeer, k)
			}
		}
	}
	return allowed
}
