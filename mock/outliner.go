package mock

import "github.com/fwojciec/mdport"

var _ mdport.Outliner = (*Outliner)(nil)

// Outliner is a mock implementation of mdport.Outliner.
type Outliner struct {
	OutlineFn func(markdown string) []mdport.Section
}

func (o *Outliner) Outline(markdown string) []mdport.Section {
	return o.OutlineFn(markdown)
}
