package mock

import "github.com/fwojciec/mdport"

var _ mdport.PlatformDetector = (*PlatformDetector)(nil)

// PlatformDetector is a mock implementation of mdport.PlatformDetector.
type PlatformDetector struct {
	DetectFn func(html string) mdport.Platform
}

func (d *PlatformDetector) Detect(html string) mdport.Platform {
	return d.DetectFn(html)
}
