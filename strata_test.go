package strata

import (
	"image"
	"image/color"
	"testing"

	"github.com/tsawler/strata/layout"
	"github.com/tsawler/strata/model"
)

// fakeSource serves in-memory page items for Document tests.
type fakeSource struct {
	size  model.Size
	pages [][]*model.DocItem
}

func (s *fakeSource) PageCount() int { return len(s.pages) }

func (s *fakeSource) PageSize(pageIndex int) (model.Size, error) {
	return s.size, nil
}

func (s *fakeSource) PageItems(pageIndex int) ([]*model.DocItem, error) {
	return s.pages[pageIndex], nil
}

func (s *fakeSource) RenderPageImage(pageIndex int, background color.Color, renderSize model.Size) (image.Image, error) {
	return image.NewRGBA(image.Rect(0, 0, int(renderSize.Width), int(renderSize.Height))), nil
}

func testPage() []*model.DocItem {
	var items []*model.DocItem
	x := 50.0
	for _, r := range "hello" {
		items = append(items, &model.DocItem{
			Type: model.ItemTypeChar,
			BBox: model.NewBBox(x, 100, 10, 10),
			Text: string(r),
		})
		x += 12
	}
	items = append(items, &model.DocItem{
		Type: model.ItemTypeFigure,
		BBox: model.NewBBox(400, 500, 100, 100),
	})
	return items
}

func newTestDocument(opts ...Option) *Document {
	src := &fakeSource{
		size:  model.Size{Width: 612, Height: 792},
		pages: [][]*model.DocItem{testPage()},
	}
	return FromSource(src, opts...)
}

func TestDocument_PageCount(t *testing.T) {
	doc := newTestDocument()
	if got := doc.PageCount(); got != 1 {
		t.Errorf("Expected 1 page, got %d", got)
	}
}

func TestDocument_PageBlocks(t *testing.T) {
	doc := newTestDocument()

	blocks, err := doc.PageBlocks(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(blocks) != 2 {
		t.Fatalf("Expected text and figure block, got %d blocks", len(blocks))
	}
	text := model.AsText(blocks[0])
	if text == nil {
		t.Fatal("Expected first block to be text")
	}
	if got := text.Text(); got != "hello" {
		t.Errorf("Expected 'hello', got %q", got)
	}
	if blocks[1].Kind() != model.BlockKindFigure {
		t.Errorf("Expected second block to be a figure, got %s", blocks[1].Kind())
	}
}

func TestDocument_TextBlocks(t *testing.T) {
	doc := newTestDocument()

	blocks, err := doc.TextBlocks(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(blocks) != 1 {
		t.Fatalf("Expected 1 text block, got %d", len(blocks))
	}
	if blocks[0].Kind() != model.BlockKindText {
		t.Errorf("Expected a text block, got %s", blocks[0].Kind())
	}
}

func TestDocument_PageOutOfRange(t *testing.T) {
	doc := newTestDocument()

	if _, err := doc.PageBlocks(1); err == nil {
		t.Error("Expected an error for an out-of-range page")
	}
	if _, err := doc.PageBlocks(-1); err == nil {
		t.Error("Expected an error for a negative page index")
	}
}

func TestDocument_AnalyzePage(t *testing.T) {
	doc := newTestDocument()

	result, err := doc.AnalyzePage(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(result.Figures) != 1 {
		t.Errorf("Expected 1 consolidated figure, got %d", len(result.Figures))
	}
	if result.PageSize.Width != 612 {
		t.Errorf("Expected page size to round-trip, got %+v", result.PageSize)
	}
}

func TestWithConfig(t *testing.T) {
	config := layout.DefaultConfig()
	config.MinItemSize = 20

	doc := newTestDocument(WithConfig(config))
	blocks, err := doc.TextBlocks(0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(blocks) != 0 {
		t.Errorf("Expected raised intake threshold to drop all glyphs, got %d blocks", len(blocks))
	}
}

func TestDocument_CloseWithoutOwnership(t *testing.T) {
	doc := newTestDocument()
	if err := doc.Close(); err != nil {
		t.Errorf("Unexpected error closing unowned source: %v", err)
	}
}
