package mock

import "github.com/fwojciec/mdport"

var _ mdport.ProfileRegistry = (*ProfileRegistry)(nil)

// ProfileRegistry is a mock implementation of mdport.ProfileRegistry.
type ProfileRegistry struct {
	GetFn      func(platform mdport.Platform) *mdport.Profile
	ForHTMLFn  func(html string) (*mdport.Profile, mdport.Platform)
	RegisterFn func(platform mdport.Platform, profile *mdport.Profile)
	ListFn     func() []mdport.Platform
}

func (r *ProfileRegistry) Get(platform mdport.Platform) *mdport.Profile {
	return r.GetFn(platform)
}

func (r *ProfileRegistry) ForHTML(html string) (*mdport.Profile, mdport.Platform) {
	return r.ForHTMLFn(html)
}

func (r *ProfileRegistry) Register(platform mdport.Platform, profile *mdport.Profile) {
	r.RegisterFn(platform, profile)
}

func (r *ProfileRegistry) List() []mdport.Platform {
	return r.ListFn()
}
