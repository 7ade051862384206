// Package scraper extracts targeted values from machine-generated PDF
// documents. It reconstructs correctly spaced lines of text from raw
// glyph geometry, then locates values relative to known keywords
// ("the word two tokens right of 'Invoice #'") inside that text.
package scraper

import (
	"fmt"

	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/extractors"
	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/pdf"
	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/processors"
)

// Re-export types from the concern packages for the public API
type (
	Document         = pdf.Document
	Page             = pdf.Page
	Char             = pdf.Char
	BoundingBox      = pdf.BoundingBox
	FileInfo         = pdf.FileInfo
	Processor        = processors.Processor
	SpacingProfile   = processors.SpacingProfile
	Pattern          = extractors.Pattern
	PatternExtractor = extractors.PatternExtractor
	Result           = extractors.Result
)

// Re-export the open-failure taxonomy and pattern constructors
var (
	ErrEncrypted   = pdf.ErrEncrypted
	ErrNotReadable = pdf.ErrNotReadable
	ErrCorrupt     = pdf.ErrCorrupt

	NewPattern          = extractors.NewPattern
	ParsePattern        = extractors.ParsePattern
	ParsePatterns       = extractors.ParsePatterns
	NewPatternExtractor = extractors.NewPatternExtractor
	NewProcessor        = processors.NewProcessor
)

// Open opens a PDF file and returns a Document. Backends are tried in
// accuracy order: ledongthuc first, then dslipak. When neither can
// read the file, pdfcpu diagnoses the container so the returned error
// matches the ErrEncrypted/ErrNotReadable/ErrCorrupt taxonomy.
func Open(filepath string) (pdf.Document, error) {
	doc, primaryErr := pdf.OpenWithLedongthuc(filepath)
	if primaryErr == nil {
		return doc, nil
	}

	doc, err := pdf.OpenWithDslipak(filepath)
	if err == nil {
		return doc, nil
	}

	if _, err := pdf.ValidateFile(filepath); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("no backend could extract glyphs from %s: %w", filepath, primaryErr)
}

// ExtractPages opens a PDF and reconstructs the text of every page.
// Pages with no extractable glyphs yield empty strings.
func ExtractPages(filepath string, opts ...processors.Option) ([]string, error) {
	doc, err := Open(filepath)
	if err != nil {
		return nil, err
	}
	defer doc.Close()

	proc := processors.NewProcessor(opts...)

	texts := make([]string, 0, doc.PageCount())
	for _, page := range doc.GetPages() {
		texts = append(texts, proc.ReconstructText(page.Chars()))
	}
	return texts, nil
}

// ExtractPage opens a PDF and reconstructs the text of one page.
// Page numbers are 1-based, matching user-facing page numbering.
func ExtractPage(filepath string, pageNumber int, opts ...processors.Option) (string, error) {
	doc, err := Open(filepath)
	if err != nil {
		return "", err
	}
	defer doc.Close()

	if pageNumber < 1 || pageNumber > doc.PageCount() {
		return "", fmt.Errorf("page %d out of range (1-%d)", pageNumber, doc.PageCount())
	}

	page, err := doc.GetPage(pageNumber - 1)
	if err != nil {
		return "", err
	}

	return processors.NewProcessor(opts...).ReconstructText(page.Chars()), nil
}
