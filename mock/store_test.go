package mock_test

import (
	"context"
	"testing"

	"github.com/fwojciec/mdport"
	"github.com/fwojciec/mdport/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostStore_ImplementsInterface(t *testing.T) {
	t.Parallel()

	// Verify mock can be used where PostStore is expected
	var _ mdport.PostStore = &mock.PostStore{}
}

func TestPostStore_Save(t *testing.T) {
	t.Parallel()

	t.Run("delegates to SaveFn", func(t *testing.T) {
		t.Parallel()

		var calledWith *mdport.Post
		s := &mock.PostStore{
			SaveFn: func(_ context.Context, post *mdport.Post) error {
				calledWith = post
				return nil
			},
		}

		post := &mdport.Post{Source: "a.html", Slug: "a"}
		err := s.Save(context.Background(), post)

		require.NoError(t, err)
		assert.Same(t, post, calledWith)
	})

	t.Run("returns error from SaveFn", func(t *testing.T) {
		t.Parallel()

		s := &mock.PostStore{
			SaveFn: func(_ context.Context, _ *mdport.Post) error {
				return mdport.Errorf(mdport.EINTERNAL, "disk full")
			},
		}

		err := s.Save(context.Background(), &mdport.Post{})

		require.Error(t, err)
		assert.Equal(t, mdport.EINTERNAL, mdport.ErrorCode(err))
	})
}
