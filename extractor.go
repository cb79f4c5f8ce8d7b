package progadvisor

// PageText holds the text content extracted from a program page.
type PageText struct {
	// Title is the first non-empty page heading, the page title, or a
	// default placeholder when neither exists.
	Title string

	// Text is the page text with scripts and styles stripped, whitespace
	// collapsed, and near-empty lines dropped. Lines are separated by
	// single newlines.
	Text string
}

// TextExtractor extracts the title and text content from an HTML page.
type TextExtractor interface {
	ExtractText(html string) (*PageText, error)
}

// DocLink is a candidate curriculum document discovered on a program page.
type DocLink struct {
	// URL is the absolute document URL.
	URL string

	// Text is the trimmed anchor text.
	Text string
}

// LinkFinder discovers linked curriculum documents on a program page.
type LinkFinder interface {
	// FindDocLinks returns PDF document links whose anchor text contains a
	// curriculum vocabulary term or whose URL carries a PDF extension,
	// resolved against baseURL, deduplicated in document order.
	FindDocLinks(html string, baseURL string) ([]DocLink, error)
}
