package processors

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RedBearAK/Simple-PDF-Scraper/pkg/pdf"
)

func TestMeasurePitchMedianOddCount(t *testing.T) {
	// Centers 0, 5, 10, 15: three gaps of 5
	line := glyphLine("ABCD", 0, 5, 700)
	assert.InDelta(t, 5.0, measurePitch(line), 1e-9)
}

func TestMeasurePitchMedianEvenCount(t *testing.T) {
	// Gaps 4 and 6 average to 5
	line := []pdf.Char{
		glyphAt("A", 0, 700),
		glyphAt("B", 4, 700),
		glyphAt("C", 10, 700),
	}
	assert.InDelta(t, 5.0, measurePitch(line), 1e-9)
}

func TestMeasurePitchIgnoresCrossColumnGaps(t *testing.T) {
	// A 75-unit jump between two tight pairs is a column gap, not pitch
	line := []pdf.Char{
		glyphAt("A", 0, 700),
		glyphAt("B", 5, 700),
		glyphAt("C", 80, 700),
		glyphAt("D", 85, 700),
	}
	assert.InDelta(t, 5.0, measurePitch(line), 1e-9)
}

func TestMeasurePitchIgnoresSpaceGlyphs(t *testing.T) {
	// The space sits between A and B; pitch measures A-to-B directly
	line := []pdf.Char{
		glyphAt("A", 0, 700),
		glyphAt(" ", 2.5, 700),
		glyphAt("B", 5, 700),
		glyphAt("C", 10, 700),
	}
	assert.InDelta(t, 5.0, measurePitch(line), 1e-9)
}

func TestMeasurePitchFallback(t *testing.T) {
	// Fewer than two non-space glyphs
	assert.InDelta(t, FallbackPitch, measurePitch(nil), 1e-9)
	assert.InDelta(t, FallbackPitch, measurePitch([]pdf.Char{glyphAt("A", 0, 700)}), 1e-9)
	assert.InDelta(t, FallbackPitch, measurePitch([]pdf.Char{
		glyphAt(" ", 0, 700),
		glyphAt(" ", 5, 700),
	}), 1e-9)

	// All gaps implausibly large
	assert.InDelta(t, FallbackPitch, measurePitch([]pdf.Char{
		glyphAt("A", 0, 700),
		glyphAt("B", 60, 700),
	}), 1e-9)
}

func TestMeasureSpacingThresholds(t *testing.T) {
	p := NewProcessor()
	profile := p.MeasureSpacing(glyphLine("ABCD", 0, 5, 700))

	assert.InDelta(t, 5.0, profile.Pitch, 1e-9)
	assert.InDelta(t, 6.5, profile.KeepSpace, 1e-9)
	assert.InDelta(t, 5.5, profile.InsertSpace, 1e-9)
	assert.InDelta(t, 6.5, profile.InsertBoundary, 1e-9)
}

func TestCustomRatios(t *testing.T) {
	p := NewProcessor(WithRatios(2.0, 1.5, 3.0))
	profile := p.MeasureSpacing(glyphLine("ABCD", 0, 5, 700))

	assert.InDelta(t, 10.0, profile.KeepSpace, 1e-9)
	assert.InDelta(t, 7.5, profile.InsertSpace, 1e-9)
	assert.InDelta(t, 15.0, profile.InsertBoundary, 1e-9)
}

func TestFixedThresholdsSkipMeasurement(t *testing.T) {
	p := NewProcessor(WithFixedThresholds(6.0, 5.3, 6.2))

	// The line geometry is irrelevant in fixed mode
	profile := p.SpacingFor(glyphLine("ABCD", 0, 20, 700))
	assert.Equal(t, SpacingProfile{KeepSpace: 6.0, InsertSpace: 5.3, InsertBoundary: 6.2}, profile)
}
