package layout

import (
	"testing"

	"github.com/tsawler/strata/model"
)

func makeLine(x, y, width, height float64) *model.DocLine {
	return &model.DocLine{
		BBox:  model.NewBBox(x, y, width, height),
		Items: []*model.DocItem{makeChar(x, y, width, height)},
	}
}

func TestBuildBlocks_StacksLines(t *testing.T) {
	a := NewAnalyzer()
	lines := []*model.DocLine{
		makeLine(0, 100, 200, 10),
		makeLine(0, 115, 200, 10),
		makeLine(0, 130, 200, 10),
	}

	blocks := a.buildBlocks(lines, nil)

	if len(blocks) != 1 {
		t.Fatalf("Expected 1 block, got %d", len(blocks))
	}
	if blocks[0].LineCount() != 3 {
		t.Errorf("Expected 3 lines in block, got %d", blocks[0].LineCount())
	}
	if blocks[0].BBox != model.NewBBox(0, 100, 200, 40) {
		t.Errorf("Expected block box to span all lines, got %+v", blocks[0].BBox)
	}
}

func TestBuildBlocks_ColumnsStaySeparate(t *testing.T) {
	a := NewAnalyzer()
	lines := []*model.DocLine{
		makeLine(0, 100, 200, 10),
		makeLine(300, 100, 200, 10),
		makeLine(0, 115, 200, 10),
		makeLine(300, 115, 200, 10),
	}

	blocks := a.buildBlocks(lines, nil)

	if len(blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(blocks))
	}
	for _, blk := range blocks {
		if blk.LineCount() != 2 {
			t.Errorf("Expected 2 lines per column block, got %d", blk.LineCount())
		}
	}
}

func TestBuildBlocks_FigureSplitsBlock(t *testing.T) {
	a := NewAnalyzer()
	lines := []*model.DocLine{
		makeLine(0, 100, 200, 10),
		makeLine(0, 160, 200, 10),
	}
	figures := []model.BBox{model.NewBBox(0, 120, 200, 30)}

	blocks := a.buildBlocks(lines, figures)

	if len(blocks) != 2 {
		t.Errorf("Expected figure to split the block, got %d blocks", len(blocks))
	}
}

func TestSpansBothColumns(t *testing.T) {
	line := makeLine(0, 130, 200, 10)
	block := &model.TextBlock{BBox: model.NewBBox(0, 100, 200, 25), Lines: []*model.DocLine{makeLine(0, 100, 200, 10)}}

	heading := makeLine(0, 60, 500, 14)
	if !spansBothColumns(heading, line, block) {
		t.Error("Expected a wide heading to count as a column spanner")
	}

	narrow := makeLine(195, 120, 20, 10)
	if spansBothColumns(narrow, line, block) {
		t.Error("Expected a barely-overlapping line not to count as a spanner")
	}
}

func TestMergeBlocked_StrangerLine(t *testing.T) {
	line := makeLine(0, 200, 100, 10)
	block := &model.TextBlock{BBox: model.NewBBox(0, 100, 100, 10)}
	block.Lines = append(block.Lines, makeLine(0, 100, 100, 10))
	union := block.BBox.Union(line.BBox)

	// A line poking into the union from the side with little horizontal
	// overlap blocks the merge.
	stranger := makeLine(95, 150, 200, 10)
	others := []*model.DocLine{block.Lines[0], stranger, line}

	if !mergeBlocked(union, line, block, others, nil) {
		t.Error("Expected stranger line to block the merge")
	}

	// The same geometry without the stranger is free to merge.
	if mergeBlocked(union, line, block, []*model.DocLine{block.Lines[0], line}, nil) {
		t.Error("Expected merge to proceed without the stranger")
	}
}

func TestMergeBlocked_Figure(t *testing.T) {
	line := makeLine(0, 200, 100, 10)
	block := &model.TextBlock{BBox: model.NewBBox(0, 100, 100, 10)}
	block.Lines = append(block.Lines, makeLine(0, 100, 100, 10))
	union := block.BBox.Union(line.BBox)

	figures := []model.BBox{model.NewBBox(20, 140, 60, 30)}
	if !mergeBlocked(union, line, block, []*model.DocLine{block.Lines[0], line}, figures) {
		t.Error("Expected figure to block the merge")
	}
}
