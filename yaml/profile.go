// Package yaml loads conversion profiles from YAML files.
package yaml

import (
	"errors"
	"io"
	"os"

	"github.com/fwojciec/mdport"
	"gopkg.in/yaml.v3"
)

// LoadProfile reads and validates the profile stored at path.
func LoadProfile(path string) (*mdport.Profile, error) {
	p, err := ReadProfile(path)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// ReadProfile reads the profile stored at path without validating it, so
// callers can apply overrides first.
func ReadProfile(path string) (*mdport.Profile, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, mdport.Errorf(mdport.ENOTFOUND, "profile %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return decodeProfile(f)
}

// ParseProfile decodes and validates a profile from r. Unknown keys are
// rejected so that typos in locator lists do not silently drop rules.
//
// Example:
//
//	content: "div.entry-content"
//	remove:
//	  - ".sharedaddy"
//	  - ".//script"
//	inline:
//	  - "span.highlight"
func ParseProfile(r io.Reader) (*mdport.Profile, error) {
	p, err := decodeProfile(r)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

func decodeProfile(r io.Reader) (*mdport.Profile, error) {
	var p mdport.Profile

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && !errors.Is(err, io.EOF) {
		return nil, mdport.Errorf(mdport.EINVALID, "invalid profile: %v", err)
	}
	return &p, nil
}
