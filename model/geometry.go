package model

import "math"

// Point represents a 2D point in page coordinates. The origin is the top-left
// corner of the page and Y grows downward.
type Point struct {
	X, Y float64
}

// Size represents the dimensions of a rectangle or a page
type Size struct {
	Width  float64
	Height float64
}

// Area returns the area of the size
func (s Size) Area() float64 {
	return s.Width * s.Height
}

// Scale returns the size scaled by the given factor
func (s Size) Scale(factor float64) Size {
	return Size{Width: s.Width * factor, Height: s.Height * factor}
}

// BBox represents an axis-aligned bounding box in page coordinates.
// Origin is the top-left corner; Y grows downward, so Bottom() > Top()
// for any box with positive height.
type BBox struct {
	Origin Point
	Size   Size
}

// NewBBox creates a bounding box from an origin and dimensions
func NewBBox(x, y, width, height float64) BBox {
	return BBox{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// NewBBoxFromEdges creates a bounding box from its four edges.
// A box whose right edge lies left of its left edge (or bottom above top)
// has negative extent; IsValid reports false for such boxes.
func NewBBoxFromEdges(left, top, right, bottom float64) BBox {
	return BBox{
		Origin: Point{X: left, Y: top},
		Size:   Size{Width: right - left, Height: bottom - top},
	}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.Origin.X
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Origin.Y
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.Origin.X + b.Size.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Origin.Y + b.Size.Height
}

// Width returns the width of the box
func (b BBox) Width() float64 {
	return b.Size.Width
}

// Height returns the height of the box
func (b BBox) Height() float64 {
	return b.Size.Height
}

// Area returns the area of the bounding box
func (b BBox) Area() float64 {
	return b.Size.Width * b.Size.Height
}

// Center returns the center point
func (b BBox) Center() Point {
	return Point{
		X: b.Origin.X + b.Size.Width/2,
		Y: b.Origin.Y + b.Size.Height/2,
	}
}

// Contains checks if a point is inside the bounding box
func (b BBox) Contains(p Point) bool {
	return p.X >= b.Left() && p.X <= b.Right() &&
		p.Y >= b.Top() && p.Y <= b.Bottom()
}

// HorizontalOverlap returns the signed length of the overlap of the two
// boxes projected onto the X axis. The result is negative when the boxes
// are horizontally disjoint, and then equals minus the gap between them.
func (b BBox) HorizontalOverlap(other BBox) float64 {
	return math.Min(b.Right(), other.Right()) - math.Max(b.Left(), other.Left())
}

// VerticalOverlap returns the signed length of the overlap of the two
// boxes projected onto the Y axis. The result is negative when the boxes
// are vertically disjoint.
func (b BBox) VerticalOverlap(other BBox) float64 {
	return math.Min(b.Bottom(), other.Bottom()) - math.Max(b.Top(), other.Top())
}

// HorizontalOverlapRatio returns the horizontal overlap divided by the
// width of the narrower box. Returns 0 when the narrower box has no width.
func (b BBox) HorizontalOverlapRatio(other BBox) float64 {
	minWidth := math.Min(b.Width(), other.Width())
	if minWidth <= 0 {
		return 0
	}
	return b.HorizontalOverlap(other) / minWidth
}

// VerticalOverlapRatio returns the vertical overlap divided by the height
// of the shorter box. Returns 0 when the shorter box has no height.
func (b BBox) VerticalOverlapRatio(other BBox) float64 {
	minHeight := math.Min(b.Height(), other.Height())
	if minHeight <= 0 {
		return 0
	}
	return b.VerticalOverlap(other) / minHeight
}

// Intersects checks if two bounding boxes have a non-degenerate intersection
func (b BBox) Intersects(other BBox) bool {
	return b.HorizontalOverlap(other) > 0 && b.VerticalOverlap(other) > 0
}

// Intersection returns the intersection of two bounding boxes.
// Returns the zero box when the boxes do not intersect.
func (b BBox) Intersection(other BBox) BBox {
	if !b.Intersects(other) {
		return BBox{}
	}
	return NewBBoxFromEdges(
		math.Max(b.Left(), other.Left()),
		math.Max(b.Top(), other.Top()),
		math.Min(b.Right(), other.Right()),
		math.Min(b.Bottom(), other.Bottom()),
	)
}

// Union returns the minimum enclosing box of the two boxes
func (b BBox) Union(other BBox) BBox {
	return NewBBoxFromEdges(
		math.Min(b.Left(), other.Left()),
		math.Min(b.Top(), other.Top()),
		math.Max(b.Right(), other.Right()),
		math.Max(b.Bottom(), other.Bottom()),
	)
}

// UnionWith expands the box in place to the minimum enclosing box of
// itself and the other box
func (b *BBox) UnionWith(other BBox) {
	*b = b.Union(other)
}

// IsValid returns true if the bounding box has positive dimensions
func (b BBox) IsValid() bool {
	return b.Size.Width > 0 && b.Size.Height > 0
}

// IsEmpty returns true if the bounding box has zero or negative area
func (b BBox) IsEmpty() bool {
	return !b.IsValid()
}
