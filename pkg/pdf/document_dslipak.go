package pdf

import (
	"fmt"

	dpdf "github.com/dslipak/pdf"
)

// DslipakDocument implements the Document interface using the
// dslipak/pdf library, a fork of the same reader lineage as
// ledongthuc/pdf. It serves as the fallback backend when the primary
// one cannot open a file.
type DslipakDocument struct {
	reader   *dpdf.Reader
	filepath string
	pages    []Page
}

// OpenWithDslipak opens a PDF file using the dslipak/pdf library
func OpenWithDslipak(filepath string) (Document, error) {
	r, err := dpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", err)
	}

	doc := &DslipakDocument{
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(); err != nil {
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// initializePages initializes all pages in the document
func (d *DslipakDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newDslipakPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *DslipakDocument) GetMetadata() Metadata {
	return Metadata{}
}

// GetPages returns all pages in the document
func (d *DslipakDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *DslipakDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *DslipakDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *DslipakDocument) Close() error {
	d.reader = nil
	d.pages = nil
	return nil
}

// dslipakPage implements the Page interface using dslipak/pdf
type dslipakPage struct {
	pageNumber int
	width      float64
	height     float64
	chars      []Char
}

func newDslipakPage(reader *dpdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// The dslipak reader does not expose MediaBox; assume US Letter.
	p := &dslipakPage{
		pageNumber: pageNumber,
		width:      612.0,
		height:     792.0,
	}

	for _, text := range page.Content().Text {
		runes := []rune(text.S)
		if len(runes) == 0 {
			continue
		}

		charWidth := text.W / float64(len(runes))
		x := text.X

		for _, ch := range runes {
			if ch == '\n' || ch == '\r' {
				x += charWidth
				continue
			}
			p.chars = append(p.chars, Char{
				Text:     string(ch),
				Font:     text.Font,
				FontSize: text.FontSize,
				X0:       x,
				Y0:       text.Y,
				X1:       x + charWidth,
				Y1:       text.Y + text.FontSize,
				Page:     pageNumber - 1,
			})
			x += charWidth
		}
	}

	return p, nil
}

// GetPageNumber returns the page number (1-based)
func (p *dslipakPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *dslipakPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *dslipakPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *dslipakPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// Chars returns the positioned glyphs on the page
func (p *dslipakPage) Chars() []Char {
	return p.chars
}
