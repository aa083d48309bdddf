package layout

import (
	"github.com/tsawler/strata/model"
)

// Hook receives the intermediate geometry of each pipeline stage. The
// stages fire in order: "segments" with the whitespace gutters, "lines"
// with the merged line boxes, and "blocks" with the final block boxes.
// A nil hook is never called.
type Hook interface {
	Stage(name string, pageSize model.Size, boxes []model.BBox)
}

// Result is the outcome of analyzing one page.
type Result struct {
	// Blocks holds the page's blocks in reading order: text blocks
	// first, figure blocks after.
	Blocks []model.DocBlock

	// Gutters is the whitespace cover used to separate columns
	Gutters []model.BBox

	// Figures holds the consolidated figure regions
	Figures []model.BBox

	// WordSeparation is the inferred inter-word gap threshold
	WordSeparation float64

	// PageSize is the page extent the analysis ran against
	PageSize model.Size
}

// Analyzer runs the geometric segmentation pipeline for single pages.
// The zero value is not usable; construct with NewAnalyzer or
// NewAnalyzerWithConfig.
type Analyzer struct {
	config Config
	hook   Hook
}

// NewAnalyzer creates an analyzer with the default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultConfig())
}

// NewAnalyzerWithConfig creates an analyzer with a custom configuration
func NewAnalyzerWithConfig(config Config) *Analyzer {
	return &Analyzer{config: config}
}

// SetHook installs a stage hook, replacing any previous one. Pass nil
// to remove it.
func (a *Analyzer) SetHook(h Hook) {
	a.hook = h
}

// keepItem is the intake filter. Items not strictly larger than the
// geometry tolerance in both dimensions carry no visual weight and are
// dropped before any stage sees them.
func (a *Analyzer) keepItem(item *model.DocItem) bool {
	return item.BBox.Width() > a.config.MinItemSize &&
		item.BBox.Height() > a.config.MinItemSize
}

// Analyze segments one page's items into text and figure blocks.
func (a *Analyzer) Analyze(items []*model.DocItem, pageSize model.Size) *Result {
	return a.analyze(items, pageSize, true)
}

// AnalyzeText segments one page's items into text blocks only. Figures
// still participate as merge blockers; they are just not emitted.
func (a *Analyzer) AnalyzeText(items []*model.DocItem, pageSize model.Size) *Result {
	return a.analyze(items, pageSize, false)
}

func (a *Analyzer) analyze(items []*model.DocItem, pageSize model.Size, emitFigures bool) *Result {
	var chars, figureItems, kept []*model.DocItem
	for _, item := range items {
		if !a.keepItem(item) {
			continue
		}
		kept = append(kept, item)
		if item.Type.IsChar() {
			chars = append(chars, item)
		} else {
			figureItems = append(figureItems, item)
		}
	}

	model.SortT2BL2R(chars)
	model.SortT2BL2R(figureItems)
	model.SortT2BL2R(kept)

	mean := meanCharWidth(chars)
	wordSep := a.wordSeparationThreshold(chars, mean, pageSize.Width)

	cover := a.whitespaceCover(kept, pageSize, wordSep)
	a.emitStage("segments", pageSize, cover)

	figures := a.consolidateFigures(figureItems, pageSize.Area())

	lines := a.buildLines(chars, cover)
	lines = a.mergeLineFragments(lines, cover)
	a.emitStage("lines", pageSize, lineBoxes(lines))

	blocks := a.buildBlocks(lines, figures)

	result := &Result{
		Gutters:        cover,
		Figures:        figures,
		WordSeparation: wordSep,
		PageSize:       pageSize,
	}
	for _, blk := range blocks {
		result.Blocks = append(result.Blocks, blk)
	}
	if emitFigures {
		for _, f := range figures {
			result.Blocks = append(result.Blocks, &model.FigureBlock{BBox: f})
		}
	}
	a.emitStage("blocks", pageSize, blockBoxes(result.Blocks))

	return result
}

func (a *Analyzer) emitStage(name string, pageSize model.Size, boxes []model.BBox) {
	if a.hook == nil {
		return
	}
	a.hook.Stage(name, pageSize, boxes)
}

func lineBoxes(lines []*model.DocLine) []model.BBox {
	boxes := make([]model.BBox, len(lines))
	for i, l := range lines {
		boxes[i] = l.BBox
	}
	return boxes
}

func blockBoxes(blocks []model.DocBlock) []model.BBox {
	boxes := make([]model.BBox, len(blocks))
	for i, b := range blocks {
		boxes[i] = b.BoundingBox()
	}
	return boxes
}
