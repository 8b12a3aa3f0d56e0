package mock

import (
	"context"

	"github.com/fwojciec/mdport"
)

var _ mdport.Source = (*Source)(nil)

// Source is a mock implementation of mdport.Source.
type Source struct {
	EntriesFn func(ctx context.Context) ([]*mdport.Entry, error)
}

func (s *Source) Entries(ctx context.Context) ([]*mdport.Entry, error) {
	return s.EntriesFn(ctx)
}
