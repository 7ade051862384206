// Package processors reconstructs readable lines of text from raw
// positioned glyphs. Upstream extraction frequently collapses or loses
// inter-character spacing; the processor groups glyphs into visual
// rows, measures each row's own character pitch, and re-derives word
// and field boundaries from center-to-center glyph distances.
package processors

import (
	"sort"
	"strings"

	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/pdf"
)

// Default tuning. The ratios were carried over from the empirically
// tested thresholds of the original extraction pipeline: 1.1x catches
// concatenated text without over-inserting, 1.3x marks structural
// column boundaries.
const (
	DefaultLineTolerance    = 2.0
	DefaultKeepSpaceRatio   = 1.3
	DefaultInsertSpaceRatio = 1.1
	DefaultBoundaryRatio    = 1.3
)

// Processor converts an unordered set of positioned glyphs into
// ordered lines of text with semantically correct spacing. A Processor
// holds tuning only; it is stateless across calls and safe for
// concurrent use.
type Processor struct {
	lineTolerance    float64
	keepSpaceRatio   float64
	insertSpaceRatio float64
	boundaryRatio    float64
	spaceChar        string
	boundaryChar     string

	// When set, per-line pitch measurement is skipped and these
	// thresholds apply to every line (legacy fixed mode).
	fixed *SpacingProfile
}

// Option configures a Processor.
type Option func(*Processor)

// WithLineTolerance sets the Y tolerance for grouping glyphs into lines.
func WithLineTolerance(tolerance float64) Option {
	return func(p *Processor) {
		p.lineTolerance = tolerance
	}
}

// WithRatios sets the pitch multipliers used to derive the keep-space,
// insert-space and insert-boundary thresholds in adaptive mode.
func WithRatios(keepSpace, insertSpace, boundary float64) Option {
	return func(p *Processor) {
		p.keepSpaceRatio = keepSpace
		p.insertSpaceRatio = insertSpace
		p.boundaryRatio = boundary
	}
}

// WithSeparators overrides the characters emitted for a normal word
// gap and for a structural boundary gap.
func WithSeparators(space, boundary string) Option {
	return func(p *Processor) {
		p.spaceChar = space
		p.boundaryChar = boundary
	}
}

// WithFixedThresholds disables per-line pitch measurement and applies
// the given absolute distances to every line.
func WithFixedThresholds(keepSpace, insertSpace, boundary float64) Option {
	return func(p *Processor) {
		p.fixed = &SpacingProfile{
			KeepSpace:      keepSpace,
			InsertSpace:    insertSpace,
			InsertBoundary: boundary,
		}
	}
}

// NewProcessor creates a Processor with adaptive per-line spacing and
// the default tuning.
func NewProcessor(opts ...Option) *Processor {
	p := &Processor{
		lineTolerance:    DefaultLineTolerance,
		keepSpaceRatio:   DefaultKeepSpaceRatio,
		insertSpaceRatio: DefaultInsertSpaceRatio,
		boundaryRatio:    DefaultBoundaryRatio,
		spaceChar:        " ",
		boundaryChar:     "\t",
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ReconstructText converts one page's glyphs into newline-joined line
// text. Lines with no non-whitespace content are dropped. An empty
// glyph list yields an empty string.
func (p *Processor) ReconstructText(chars []pdf.Char) string {
	lines := p.GroupLines(chars)

	var kept []string
	for _, line := range lines {
		text := p.SynthesizeLine(line, p.SpacingFor(line))
		if strings.TrimSpace(text) != "" {
			kept = append(kept, text)
		}
	}

	return strings.Join(kept, "\n")
}

// GroupLines groups glyphs into visual rows ordered top to bottom,
// each row sorted left to right. A glyph joins the current row when
// its top Y is within the line tolerance of the row's first member.
func (p *Processor) GroupLines(chars []pdf.Char) [][]pdf.Char {
	if len(chars) == 0 {
		return nil
	}

	sorted := make([]pdf.Char, len(chars))
	copy(sorted, chars)

	// Descending top-Y, then ascending left-X, approximates reading
	// order before the tolerance walk.
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y1 != sorted[j].Y1 {
			return sorted[i].Y1 > sorted[j].Y1
		}
		return sorted[i].X0 < sorted[j].X0
	})

	var lines [][]pdf.Char
	currentLine := []pdf.Char{sorted[0]}
	referenceY := sorted[0].Y1

	for _, char := range sorted[1:] {
		if abs(char.Y1-referenceY) <= p.lineTolerance {
			currentLine = append(currentLine, char)
		} else {
			lines = append(lines, currentLine)
			currentLine = []pdf.Char{char}
			referenceY = char.Y1
		}
	}
	lines = append(lines, currentLine)

	// The global sort only approximates order: grouping can interleave
	// rows near tie boundaries, so each line is re-sorted by X.
	for _, line := range lines {
		sort.SliceStable(line, func(i, j int) bool {
			return line[i].X0 < line[j].X0
		})
	}

	return lines
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
