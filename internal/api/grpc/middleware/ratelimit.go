package middleware

import (
	"context"
	"errors"
	"net"
	"sync"
	"time"

	"golang.org/x/time/rate"
	"google.golang.org/grpc/peer"
)

const limiterCleanupInterval = 5 * time.Minute

var errRateLimited = errors.New("too many authentication attempts")

// PeerLimiter keeps one token bucket per remote host. It satisfies the
// go-grpc-middleware ratelimit.Limiter interface.
type PeerLimiter struct {
	limiters sync.Map // map[string]*rate.Limiter
	rate     rate.Limit
	burst    int

	mu          sync.Mutex
	lastCleanup time.Time
}

// NewPeerLimiter allows requests per window for each peer, all of them at
// once if the bucket is full.
func NewPeerLimiter(requests int, window time.Duration) *PeerLimiter {
	return &PeerLimiter{
		rate:        rate.Limit(float64(requests) / window.Seconds()),
		burst:       requests,
		lastCleanup: time.Now(),
	}
}

// Limit rejects the call when the caller's bucket is empty.
func (l *PeerLimiter) Limit(ctx context.Context) error {
	if !l.limiter(peerKey(ctx)).Allow() {
		return errRateLimited
	}
	return nil
}

func (l *PeerLimiter) limiter(key string) *rate.Limiter {
	if lim, ok := l.limiters.Load(key); ok {
		return lim.(*rate.Limiter)
	}

	lim := rate.NewLimiter(l.rate, l.burst)
	actual, _ := l.limiters.LoadOrStore(key, lim)

	l.maybeCleanup()

	return actual.(*rate.Limiter)
}

// maybeCleanup drops idle buckets, those that have refilled completely.
func (l *PeerLimiter) maybeCleanup() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if time.Since(l.lastCleanup) < limiterCleanupInterval {
		return
	}
	l.lastCleanup = time.Now()

	l.limiters.Range(func(key, value any) bool {
		if value.(*rate.Limiter).Tokens() >= float64(l.burst) {
			l.limiters.Delete(key)
		}
		return true
	})
}

func peerKey(ctx context.Context) string {
	p, ok := peer.FromContext(ctx)
	if !ok || p.Addr == nil {
		return "unknown"
	}
	addr := p.Addr.String()
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
