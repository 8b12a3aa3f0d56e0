package mdport

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, footer, sidebar, ads) has been removed.
	ContentHTML string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// It is an alternative to hand-written content locators for sources without
// a stable layout.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	Extract(html string) (*ExtractResult, error)
}

// Extractor names accepted by Profile.
const (
	ExtractorNone        = ""
	ExtractorReadability = "readability"
	ExtractorTrafilatura = "trafilatura"
)
