package http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/fwojciec/mdport"
)

// Ensure URLSource implements mdport.Source at compile time.
var _ mdport.Source = (*URLSource)(nil)

// URLSource reads HTML posts from a list of URLs.
type URLSource struct {
	urls []string

	Fetcher mdport.Fetcher
	Limiter mdport.DomainLimiter

	// RetryDelays are the waits between attempts. Nil disables retries.
	RetryDelays []time.Duration

	// OnRetry is called before each retry, if set.
	OnRetry func(url string, attempt int, err error)
}

// NewURLSource creates a URLSource for urls.
func NewURLSource(fetcher mdport.Fetcher, limiter mdport.DomainLimiter, urls ...string) *URLSource {
	return &URLSource{
		urls:        urls,
		Fetcher:     fetcher,
		Limiter:     limiter,
		RetryDelays: DefaultRetryDelays(),
	}
}

// Entries fetches every URL in order. Any failed fetch aborts the listing.
func (s *URLSource) Entries(ctx context.Context) ([]*mdport.Entry, error) {
	entries := make([]*mdport.Entry, 0, len(s.urls))

	for _, rawURL := range s.urls {
		u, err := url.Parse(rawURL)
		if err != nil || u.Host == "" {
			return nil, mdport.Errorf(mdport.EINVALID, "invalid URL %q", rawURL)
		}

		fetch := func(ctx context.Context, target string) (string, error) {
			if s.Limiter != nil {
				if err := s.Limiter.Wait(ctx, u.Host); err != nil {
					return "", err
				}
			}
			return s.Fetcher.Fetch(ctx, target)
		}

		var onRetry func(int, error)
		if s.OnRetry != nil {
			onRetry = func(attempt int, err error) { s.OnRetry(rawURL, attempt, err) }
		}

		html, err := FetchWithRetry(ctx, rawURL, fetch, s.RetryDelays, onRetry)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
		}

		entries = append(entries, &mdport.Entry{
			Source: rawURL,
			HTML:   html,
		})
	}

	return entries, nil
}
