package mock

import "github.com/fwojciec/mdport"

var _ mdport.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of mdport.Renderer.
type Renderer struct {
	RenderFn func(html string) (*mdport.MarkdownDocument, error)
}

func (r *Renderer) Render(html string) (*mdport.MarkdownDocument, error) {
	return r.RenderFn(html)
}
