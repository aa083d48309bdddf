package model

import "testing"

func TestDocLine_Text(t *testing.T) {
	line := &DocLine{
		BBox: NewBBox(0, 0, 30, 10),
		Items: []*DocItem{
			makeItem("H", 0, 0, 10, 10),
			makeItem("i", 10, 0, 10, 10),
		},
	}

	if got := line.Text(); got != "Hi" {
		t.Errorf("Expected 'Hi', got '%s'", got)
	}
	if line.ItemCount() != 2 {
		t.Errorf("Expected 2 items, got %d", line.ItemCount())
	}
}

func TestDocLine_MergeWith(t *testing.T) {
	a := &DocLine{BBox: NewBBox(0, 0, 10, 10), Items: []*DocItem{makeItem("a", 0, 0, 10, 10)}}
	b := &DocLine{BBox: NewBBox(20, 0, 10, 10), Items: []*DocItem{makeItem("b", 20, 0, 10, 10)}}

	a.MergeWith(b)

	if a.ItemCount() != 2 {
		t.Errorf("Expected 2 items after merge, got %d", a.ItemCount())
	}
	if a.BBox != NewBBox(0, 0, 30, 10) {
		t.Errorf("Expected merged box to span both lines, got %+v", a.BBox)
	}
}

func TestTextBlock_Text(t *testing.T) {
	block := &TextBlock{
		BBox: NewBBox(0, 0, 30, 30),
		Lines: []*DocLine{
			{Items: []*DocItem{makeItem("one", 0, 0, 30, 10)}},
			{Items: []*DocItem{makeItem("two", 0, 20, 30, 10)}},
		},
	}

	if got := block.Text(); got != "one\ntwo" {
		t.Errorf("Expected 'one\\ntwo', got '%s'", got)
	}
	if block.LineCount() != 2 {
		t.Errorf("Expected 2 lines, got %d", block.LineCount())
	}
	if block.Kind() != BlockKindText {
		t.Errorf("Expected text kind, got %s", block.Kind())
	}
}

func TestAsText(t *testing.T) {
	var text DocBlock = &TextBlock{}
	var figure DocBlock = &FigureBlock{BBox: NewBBox(0, 0, 10, 10)}

	if AsText(text) == nil {
		t.Error("Expected AsText to return the text block")
	}
	if AsText(figure) != nil {
		t.Error("Expected AsText to return nil for a figure block")
	}
	if figure.Kind() != BlockKindFigure {
		t.Errorf("Expected figure kind, got %s", figure.Kind())
	}
}
