package processors

import (
	"strings"

	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/pdf"
)

// SynthesizeLine builds a line's text in a single left-to-right pass.
// Literal space glyphs are kept only when the non-space glyphs around
// them are far enough apart to be a real word break; conversely a
// separator is inserted between adjacent non-space glyphs whose
// distance exceeds the line's insert thresholds. The pass is
// deterministic and idempotent: every separator it keeps or inserts
// already satisfies the distance that triggered it.
func (p *Processor) SynthesizeLine(line []pdf.Char, profile SpacingProfile) string {
	var b strings.Builder

	for i, char := range line {
		if char.IsSpace() {
			if shouldKeepSpace(line, i, profile.KeepSpace) {
				b.WriteString(p.spaceChar)
			}
			continue
		}

		b.WriteString(char.Text)

		// No insertion at end of line or when the next glyph is a
		// literal space, which is judged on its own.
		if i+1 >= len(line) || line[i+1].IsSpace() {
			continue
		}

		distance := line[i+1].Center() - char.Center()
		switch {
		case distance >= profile.InsertBoundary:
			b.WriteString(p.boundaryChar)
		case distance >= profile.InsertSpace:
			b.WriteString(p.spaceChar)
		}
	}

	return b.String()
}

// shouldKeepSpace judges a literal space glyph by the center distance
// between the nearest non-space glyphs on either side. When either
// side is absent the space is kept: an edge space cannot be judged
// spurious.
func shouldKeepSpace(line []pdf.Char, spaceIndex int, keepSpace float64) bool {
	var prev, next *pdf.Char

	for i := spaceIndex - 1; i >= 0; i-- {
		if !line[i].IsSpace() {
			prev = &line[i]
			break
		}
	}
	for i := spaceIndex + 1; i < len(line); i++ {
		if !line[i].IsSpace() {
			next = &line[i]
			break
		}
	}

	if prev == nil || next == nil {
		return true
	}

	return next.Center()-prev.Center() >= keepSpace
}
