package mock

import (
	"context"

	"github.com/fwojciec/mdport"
)

var _ mdport.PostStore = (*PostStore)(nil)

// PostStore is a mock implementation of mdport.PostStore.
type PostStore struct {
	SaveFn   func(ctx context.Context, post *mdport.Post) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PostStore) Save(ctx context.Context, post *mdport.Post) error {
	return s.SaveFn(ctx, post)
}

func (s *PostStore) Commit() error {
	return s.CommitFn()
}

func (s *PostStore) Abort() error {
	return s.AbortFn()
}
