package importer

import (
	"context"

	"github.com/fwojciec/mdport"
)

// Ensure Sources implements mdport.Source at compile time.
var _ mdport.Source = Sources(nil)

// Sources lists the entries of several sources, one after another.
type Sources []mdport.Source

// Entries returns the entries of every source in order. The first failing
// source stops the listing.
func (s Sources) Entries(ctx context.Context) ([]*mdport.Entry, error) {
	var entries []*mdport.Entry
	for _, src := range s {
		found, err := src.Entries(ctx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, found...)
	}
	return entries, nil
}
