package model

// BlockKind discriminates the DocBlock variants
type BlockKind int

const (
	BlockKindText BlockKind = iota
	BlockKindFigure
)

func (k BlockKind) String() string {
	switch k {
	case BlockKindText:
		return "Text"
	case BlockKindFigure:
		return "Figure"
	default:
		return "Unknown"
	}
}

// DocBlock is a logical block on a page: either a text block (a vertical
// stack of lines forming a paragraph or column fragment) or a figure block.
type DocBlock interface {
	Kind() BlockKind
	BoundingBox() BBox
}

// TextBlock is a vertical stack of text lines. The bounding box is always
// the union of the line boxes.
type TextBlock struct {
	// BBox is the union of all line bounding boxes
	BBox BBox

	// Lines are the text lines of the block, in assignment order
	Lines []*DocLine
}

func (b *TextBlock) Kind() BlockKind   { return BlockKindText }
func (b *TextBlock) BoundingBox() BBox { return b.BBox }

// Bounds returns the block's bounding box
func (b *TextBlock) Bounds() BBox { return b.BBox }

// LineCount returns the number of lines in the block
func (b *TextBlock) LineCount() int {
	if b == nil {
		return 0
	}
	return len(b.Lines)
}

// Text assembles the block's text, one line per row
func (b *TextBlock) Text() string {
	if b == nil {
		return ""
	}
	var text string
	for i, line := range b.Lines {
		if i > 0 {
			text += "\n"
		}
		text += line.Text()
	}
	return text
}

// FigureBlock is a non-text block covering a consolidated figure region
type FigureBlock struct {
	// BBox is the consolidated figure bounding box
	BBox BBox
}

func (b *FigureBlock) Kind() BlockKind   { return BlockKindFigure }
func (b *FigureBlock) BoundingBox() BBox { return b.BBox }

// AsText returns the block as a *TextBlock, or nil if it is not a text block
func AsText(b DocBlock) *TextBlock {
	t, _ := b.(*TextBlock)
	return t
}
