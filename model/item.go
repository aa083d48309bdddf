package model

// ItemType represents the type of a raw page item as reported by the
// PDF decoder
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeChar
	ItemTypeFigure
	ItemTypePath
)

func (it ItemType) String() string {
	switch it {
	case ItemTypeChar:
		return "Char"
	case ItemTypeFigure:
		return "Figure"
	case ItemTypePath:
		return "Path"
	default:
		return "Unknown"
	}
}

// IsChar reports whether the item type is a character glyph. Layout
// analysis only distinguishes character items from everything else.
func (it ItemType) IsChar() bool {
	return it == ItemTypeChar
}

// DocItem is a single raw item on a page: one character glyph or one
// figure, with its bounding box in page coordinates. Glyph metadata
// (text, font size, baseline angle) is carried for callers and is opaque
// to layout analysis.
type DocItem struct {
	// Type distinguishes character glyphs from figures
	Type ItemType

	// BBox is the item's bounding box in page coordinates
	BBox BBox

	// Text is the glyph's text content (empty for figures)
	Text string

	// FontSize is the glyph's font size as reported by the decoder
	FontSize float64

	// Angle is the glyph's baseline angle in degrees (0 for upright text)
	Angle float64
}

// Bounds returns the item's bounding box
func (it *DocItem) Bounds() BBox {
	return it.BBox
}

// DocLine is a horizontal sequence of character items forming a visual
// text line. The bounding box is always the union of the item boxes, and
// Items is sorted left to right in final pipeline output.
type DocLine struct {
	// BBox is the union of all item bounding boxes
	BBox BBox

	// Items are the character items of the line
	Items []*DocItem
}

// Bounds returns the line's bounding box
func (l *DocLine) Bounds() BBox {
	return l.BBox
}

// MergeWith appends the other line's items to this line and expands the
// bounding box to enclose both lines
func (l *DocLine) MergeWith(other *DocLine) {
	l.Items = append(l.Items, other.Items...)
	l.BBox.UnionWith(other.BBox)
}

// ItemCount returns the number of items in the line
func (l *DocLine) ItemCount() int {
	if l == nil {
		return 0
	}
	return len(l.Items)
}

// Text assembles the line's text from its item glyphs in item order
func (l *DocLine) Text() string {
	if l == nil {
		return ""
	}
	var text string
	for _, item := range l.Items {
		text += item.Text
	}
	return text
}
