package mdport

// DefaultExtractedContentLocator selects the content of a page that was
// already reduced by an Extractor.
const DefaultExtractedContentLocator = "body"

// Profile describes how posts of one source site are converted.
type Profile struct {
	Content   string   `yaml:"content"`
	Remove    []string `yaml:"remove"`
	Inline    []string `yaml:"inline"`
	Extractor string   `yaml:"extractor"`
	Layout    string   `yaml:"layout"`
}

// Validate returns an error if the profile contains invalid fields.
// A profile with an extractor and no content locator is completed with
// DefaultExtractedContentLocator.
func (p *Profile) Validate() error {
	switch p.Extractor {
	case ExtractorNone, ExtractorReadability, ExtractorTrafilatura:
	default:
		return Errorf(EINVALID, "unknown extractor %q", p.Extractor)
	}

	if p.Content == "" {
		if p.Extractor == ExtractorNone {
			return Errorf(EINVALID, "content locator required")
		}
		p.Content = DefaultExtractedContentLocator
	}
	return nil
}

// ConverterOptions returns the remove and inline locators of the profile.
func (p *Profile) ConverterOptions() ConverterOptions {
	return ConverterOptions{
		Inline: p.Inline,
		Remove: p.Remove,
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	if p == nil {
		return nil
	}
	other := *p
	other.Remove = append([]string(nil), p.Remove...)
	other.Inline = append([]string(nil), p.Inline...)
	return &other
}
