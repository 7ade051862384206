package pdf

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundingBox(t *testing.T) {
	box := BoundingBox{X0: 10, Y0: 20, X1: 40, Y1: 50}

	assert.Equal(t, 30.0, box.Width())
	assert.Equal(t, 30.0, box.Height())

	assert.True(t, box.Contains(25, 35))
	assert.True(t, box.Contains(10, 20)) // edges are inclusive
	assert.False(t, box.Contains(5, 35))
	assert.False(t, box.Contains(25, 55))

	assert.True(t, box.Intersects(BoundingBox{X0: 30, Y0: 40, X1: 60, Y1: 70}))
	assert.False(t, box.Intersects(BoundingBox{X0: 41, Y0: 20, X1: 60, Y1: 50}))
	assert.False(t, box.Intersects(BoundingBox{X0: 10, Y0: 51, X1: 40, Y1: 70}))
}

func TestCharCenter(t *testing.T) {
	c := Char{Text: "A", X0: 10, X1: 16, Y0: 90, Y1: 100}
	assert.Equal(t, 13.0, c.Center())
	assert.Equal(t, BoundingBox{X0: 10, Y0: 90, X1: 16, Y1: 100}, c.GetBBox())
}

func TestCharIsSpace(t *testing.T) {
	assert.True(t, Char{Text: " "}.IsSpace())
	assert.False(t, Char{Text: "A"}.IsSpace())
	assert.False(t, Char{Text: "\t"}.IsSpace())
	assert.False(t, Char{Text: ""}.IsSpace())
}

func TestErrorTaxonomy(t *testing.T) {
	wrapped := fmt.Errorf("open sample.pdf: %w", ErrEncrypted)
	assert.True(t, errors.Is(wrapped, ErrEncrypted))
	assert.False(t, errors.Is(wrapped, ErrCorrupt))

	assert.False(t, errors.Is(ErrNotReadable, ErrCorrupt))
	assert.False(t, errors.Is(ErrCorrupt, ErrEncrypted))
}
