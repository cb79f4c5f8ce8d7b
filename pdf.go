package progadvisor

// PDFExtractor extracts plain text from PDF bytes.
type PDFExtractor interface {
	// ExtractText returns the best-effort text content of a PDF document.
	// Extraction is never an error: malformed or image-only documents
	// yield an empty string.
	ExtractText(data []byte) string
}
