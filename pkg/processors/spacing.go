package processors

import (
	"sort"

	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/pdf"
)

// FallbackPitch is the assumed character pitch when a line has too few
// non-space glyphs to measure one. It matches typical 12pt body text.
const FallbackPitch = 4.8

// maxPlausibleGap bounds the center distances admitted into the pitch
// measurement. Larger gaps are cross-column artifacts, not pitch.
const maxPlausibleGap = 50.0

// SpacingProfile holds one line's derived spacing thresholds. Pitch is
// zero in fixed mode, where the thresholds were injected rather than
// measured.
type SpacingProfile struct {
	Pitch          float64
	KeepSpace      float64
	InsertSpace    float64
	InsertBoundary float64
}

// SpacingFor returns the spacing profile to use for a line: the fixed
// profile when one was configured, otherwise a freshly measured one.
// Profiles are recomputed per line because font size may vary across a
// document.
func (p *Processor) SpacingFor(line []pdf.Char) SpacingProfile {
	if p.fixed != nil {
		return *p.fixed
	}
	return p.MeasureSpacing(line)
}

// MeasureSpacing computes a line's spacing profile from its own glyph
// geometry. The pitch is the median center-to-center distance between
// consecutive non-space glyphs; the median resists one anomalously
// wide or narrow pair skewing a short line.
func (p *Processor) MeasureSpacing(line []pdf.Char) SpacingProfile {
	pitch := measurePitch(line)
	return SpacingProfile{
		Pitch:          pitch,
		KeepSpace:      pitch * p.keepSpaceRatio,
		InsertSpace:    pitch * p.insertSpaceRatio,
		InsertBoundary: pitch * p.boundaryRatio,
	}
}

func measurePitch(line []pdf.Char) float64 {
	var centers []float64
	for _, c := range line {
		if !c.IsSpace() {
			centers = append(centers, c.Center())
		}
	}
	if len(centers) < 2 {
		return FallbackPitch
	}

	var gaps []float64
	for i := 1; i < len(centers); i++ {
		gap := centers[i] - centers[i-1]
		if gap > 0 && gap < maxPlausibleGap {
			gaps = append(gaps, gap)
		}
	}
	if len(gaps) == 0 {
		return FallbackPitch
	}

	sort.Float64s(gaps)
	mid := len(gaps) / 2
	if len(gaps)%2 == 0 {
		return (gaps[mid-1] + gaps[mid]) / 2
	}
	return gaps[mid]
}
