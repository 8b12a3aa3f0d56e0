package mock

import "github.com/fwojciec/mdport"

var _ mdport.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of mdport.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*mdport.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*mdport.ExtractResult, error) {
	return e.ExtractFn(html)
}
