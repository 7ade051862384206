package pdf

// BoundingBox represents a rectangular area in page coordinates.
// Y increases upward, so Y1 is the top edge and Y0 the bottom edge.
type BoundingBox struct {
	X0 float64 // Left
	Y0 float64 // Bottom
	X1 float64 // Right
	Y1 float64 // Top
}

// Width returns the width of the bounding box
func (b BoundingBox) Width() float64 {
	return b.X1 - b.X0
}

// Height returns the height of the bounding box
func (b BoundingBox) Height() float64 {
	return b.Y1 - b.Y0
}

// Contains checks if a point is within the bounding box
func (b BoundingBox) Contains(x, y float64) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Intersects checks if two bounding boxes intersect
func (b BoundingBox) Intersects(other BoundingBox) bool {
	return !(b.X1 < other.X0 || b.X0 > other.X1 || b.Y1 < other.Y0 || b.Y0 > other.Y1)
}

// Char represents a single positioned glyph on a page, as produced by
// one of the PDF backends. Char values are immutable once produced.
type Char struct {
	Text     string
	Font     string
	FontSize float64
	X0       float64
	Y0       float64
	X1       float64
	Y1       float64
	Page     int // 0-based owning page index
}

// GetBBox returns the glyph's bounding box
func (c Char) GetBBox() BoundingBox {
	return BoundingBox{X0: c.X0, Y0: c.Y0, X1: c.X1, Y1: c.Y1}
}

// Center returns the horizontal center of the glyph. All spacing
// decisions in the reconstructor compare center-to-center distances.
func (c Char) Center() float64 {
	return (c.X0 + c.X1) / 2
}

// IsSpace reports whether the glyph is a literal space character.
func (c Char) IsSpace() bool {
	return c.Text == " "
}

// Metadata represents PDF document metadata
type Metadata struct {
	Title    string
	Author   string
	Creator  string
	Producer string
}
