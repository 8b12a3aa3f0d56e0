package http

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/mdport"
	"golang.org/x/time/rate"
)

var _ mdport.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out requests to each blog host. Hosts are compared
// case-insensitively and without port, so blog.example and BLOG.example:443
// share one budget.
type DomainLimiter struct {
	mu    sync.Mutex
	hosts map[string]*rate.Limiter
	limit rate.Limit
}

// NewDomainLimiter allows rps requests per second to every host, one at a
// time. A non-positive rps disables limiting.
func NewDomainLimiter(rps float64) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	return &DomainLimiter{
		hosts: make(map[string]*rate.Limiter),
		limit: limit,
	}
}

// Wait blocks until host may be contacted again or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, host string) error {
	key := hostKey(host)

	d.mu.Lock()
	l, ok := d.hosts[key]
	if !ok {
		l = rate.NewLimiter(d.limit, 1)
		d.hosts[key] = l
	}
	d.mu.Unlock()

	return l.Wait(ctx)
}

func hostKey(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.ToLower(host)
}
