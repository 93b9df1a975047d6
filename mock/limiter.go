package mock

import (
	"context"

	"github.com/fwojciec/urltext"
)

var _ urltext.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of urltext.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
