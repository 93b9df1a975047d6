package batch

import (
	"context"
	"sync"

	"github.com/fwojciec/urltext"
	"golang.org/x/time/rate"
)

var _ urltext.HostLimiter = (*HostLimiter)(nil)

// HostLimiter spaces out requests with one token bucket per host.
// Hosts are independent, so a throttled or slow host only delays its
// own items.
type HostLimiter struct {
	rps float64

	mu      sync.Mutex
	buckets map[string]*rate.Limiter
}

// NewHostLimiter creates a HostLimiter allowing rps requests per second
// to each host.
func NewHostLimiter(rps float64) *HostLimiter {
	return &HostLimiter{
		rps:     rps,
		buckets: make(map[string]*rate.Limiter),
	}
}

// Wait blocks until a request to host is allowed, or until ctx is done.
func (h *HostLimiter) Wait(ctx context.Context, host string) error {
	return h.bucket(host).Wait(ctx)
}

// bucket returns the limiter for host, creating it on first use. Burst
// stays at 1 so consecutive requests to a host are always at least
// 1/rps apart.
func (h *HostLimiter) bucket(host string) *rate.Limiter {
	h.mu.Lock()
	defer h.mu.Unlock()

	b, ok := h.buckets[host]
	if !ok {
		b = rate.NewLimiter(rate.Limit(h.rps), 1)
		h.buckets[host] = b
	}
	return b
}
