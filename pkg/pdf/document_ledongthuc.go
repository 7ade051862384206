package pdf

import (
	"fmt"
	"io"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using the
// ledongthuc/pdf library. This is the preferred backend: its content
// walker reports per-item coordinates and widths, which the glyph
// splitter below turns into one Char per rune.
type LedongthucDocument struct {
	file     io.Closer
	reader   *lpdf.Reader
	filepath string
	pages    []Page
}

// OpenWithLedongthuc opens a PDF file using the ledongthuc/pdf library
func OpenWithLedongthuc(filepath string) (Document, error) {
	f, r, err := lpdf.Open(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", err)
	}

	doc := &LedongthucDocument{
		file:     f,
		reader:   r,
		filepath: filepath,
	}

	if err := doc.initializePages(); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to initialize pages: %w", err)
	}

	return doc, nil
}

// initializePages initializes all pages in the document
func (d *LedongthucDocument) initializePages() error {
	pageCount := d.reader.NumPage()
	d.pages = make([]Page, pageCount)

	for i := 1; i <= pageCount; i++ {
		page, err := newLedongthucPage(d.reader, i)
		if err != nil {
			return fmt.Errorf("failed to initialize page %d: %w", i, err)
		}
		d.pages[i-1] = page
	}

	return nil
}

// GetMetadata returns the PDF metadata
func (d *LedongthucDocument) GetMetadata() Metadata {
	return Metadata{}
}

// GetPages returns all pages in the document
func (d *LedongthucDocument) GetPages() []Page {
	return d.pages
}

// GetPage returns a specific page by index (0-based)
func (d *LedongthucDocument) GetPage(index int) (Page, error) {
	if index < 0 || index >= len(d.pages) {
		return nil, fmt.Errorf("page index %d out of range [0, %d)", index, len(d.pages))
	}
	return d.pages[index], nil
}

// PageCount returns the total number of pages
func (d *LedongthucDocument) PageCount() int {
	return len(d.pages)
}

// Close releases resources associated with the document
func (d *LedongthucDocument) Close() error {
	if d.file != nil {
		return d.file.Close()
	}
	return nil
}

// ledongthucPage implements the Page interface using ledongthuc/pdf
type ledongthucPage struct {
	pageNumber int
	width      float64
	height     float64
	chars      []Char
}

func newLedongthucPage(reader *lpdf.Reader, pageNumber int) (Page, error) {
	if pageNumber < 1 || pageNumber > reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", pageNumber)
	}

	page := reader.Page(pageNumber)

	// Page dimensions from MediaBox, defaulting to US Letter
	width := 612.0
	height := 792.0

	mediaBox := page.V.Key("MediaBox")
	if mediaBox.Kind() == lpdf.Array && mediaBox.Len() == 4 {
		// MediaBox is [x0, y0, x1, y1]
		x0 := mediaBox.Index(0).Float64()
		y0 := mediaBox.Index(1).Float64()
		x1 := mediaBox.Index(2).Float64()
		y1 := mediaBox.Index(3).Float64()
		width = x1 - x0
		height = y1 - y0
	}

	p := &ledongthucPage{
		pageNumber: pageNumber,
		width:      width,
		height:     height,
	}
	p.chars = splitTextItems(page.Content(), pageNumber-1)

	return p, nil
}

// splitTextItems converts the library's text items into per-rune Char
// records. The library reports one coordinate and one total width per
// item, so individual glyph positions are interpolated by dividing the
// width evenly across the runes. Literal spaces are kept: the
// reconstructor needs them to judge real word breaks against rendering
// artifacts.
func splitTextItems(content lpdf.Content, pageIndex int) []Char {
	var chars []Char

	for _, text := range content.Text {
		runes := []rune(text.S)
		if len(runes) == 0 {
			continue
		}

		fontHeight := text.FontSize
		charWidth := text.W / float64(len(runes))
		x := text.X

		for _, ch := range runes {
			if ch == '\n' || ch == '\r' {
				x += charWidth
				continue
			}
			chars = append(chars, Char{
				Text:     string(ch),
				Font:     text.Font,
				FontSize: text.FontSize,
				X0:       x,
				Y0:       text.Y,
				X1:       x + charWidth,
				Y1:       text.Y + fontHeight,
				Page:     pageIndex,
			})
			x += charWidth
		}
	}

	return chars
}

// GetPageNumber returns the page number (1-based)
func (p *ledongthucPage) GetPageNumber() int {
	return p.pageNumber
}

// GetWidth returns the page width
func (p *ledongthucPage) GetWidth() float64 {
	return p.width
}

// GetHeight returns the page height
func (p *ledongthucPage) GetHeight() float64 {
	return p.height
}

// GetBBox returns the page bounding box
func (p *ledongthucPage) GetBBox() BoundingBox {
	return BoundingBox{X0: 0, Y0: 0, X1: p.width, Y1: p.height}
}

// Chars returns the positioned glyphs on the page
func (p *ledongthucPage) Chars() []Char {
	return p.chars
}
