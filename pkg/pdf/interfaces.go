package pdf

// Document represents an open PDF exposing per-page glyph lists.
// Concrete backends (ledongthuc, dslipak) are variants behind this
// interface, selected by the fallback chain in the root package.
type Document interface {
	// GetMetadata returns the PDF metadata
	GetMetadata() Metadata

	// GetPages returns all pages in the document
	GetPages() []Page

	// GetPage returns a specific page by index (0-based)
	GetPage(index int) (Page, error)

	// PageCount returns the total number of pages
	PageCount() int

	// Close releases resources associated with the document
	Close() error
}

// Page represents a single page in a PDF document. The order of the
// glyphs returned by Chars carries no meaning; callers that need
// reading order must reconstruct it from the glyph geometry.
type Page interface {
	// GetPageNumber returns the page number (1-based)
	GetPageNumber() int

	// GetWidth returns the page width
	GetWidth() float64

	// GetHeight returns the page height
	GetHeight() float64

	// GetBBox returns the page bounding box
	GetBBox() BoundingBox

	// Chars returns the positioned glyphs on the page. A page with no
	// extractable text yields an empty slice, not an error.
	Chars() []Char
}
