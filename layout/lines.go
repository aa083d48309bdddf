package layout

import (
	"math"
	"sort"

	"github.com/tsawler/strata/model"
)

// horizontallyOnSameLine reports whether two boxes are close enough
// horizontally to belong to one line: they must not be separated by more
// than 2.5 times the taller of the two heights.
func horizontallyOnSameLine(b1, b2 model.BBox) bool {
	return b2.HorizontalOverlap(b1) > -2.5*math.Max(b1.Height(), b2.Height())
}

// verticallyOnSameLine reports whether two boxes share a visual row.
// When one box is less than half the height of the other (a superscript
// or subscript against its base text) any vertical overlap beyond the
// geometry tolerance counts; otherwise the overlap must exceed half the
// shorter height.
func (a *Analyzer) verticallyOnSameLine(b1, b2 model.BBox) bool {
	overlap := b2.VerticalOverlap(b1)
	if b1.Height() < 0.5*b2.Height() || b2.Height() < 0.5*b1.Height() {
		return overlap > a.config.MinItemSize
	}
	return overlap > 0.5*math.Min(b1.Height(), b2.Height())
}

// gutterBlocked reports whether a candidate union crosses a whitespace
// gutter: some gutter intersects it with vertical overlap beyond the
// guard threshold.
func (a *Analyzer) gutterBlocked(union model.BBox, cover []model.BBox) bool {
	for _, g := range cover {
		if g.Intersects(union) && g.VerticalOverlap(union) > a.config.GutterVerticalOverlapGuard {
			return true
		}
	}
	return false
}

// buildLines greedily assigns characters to lines in reading order.
// A character joins a line when both same-line predicates hold and the
// resulting union is not gutter-blocked. When several lines qualify the
// last one examined wins; with no qualifying line the character starts a
// new one.
func (a *Analyzer) buildLines(sortedChars []*model.DocItem, cover []model.BBox) []*model.DocLine {
	var lines []*model.DocLine

	for _, item := range sortedChars {
		var line *model.DocLine
		for _, candidate := range lines {
			if !horizontallyOnSameLine(item.BBox, candidate.BBox) ||
				!a.verticallyOnSameLine(item.BBox, candidate.BBox) {
				continue
			}
			if a.gutterBlocked(candidate.BBox.Union(item.BBox), cover) {
				continue
			}
			line = candidate
		}
		if line == nil {
			line = &model.DocLine{BBox: item.BBox}
			lines = append(lines, line)
		}
		line.BBox.UnionWith(item.BBox)
		line.Items = append(line.Items, item)
	}

	return lines
}

// mergeLineFragments merges collinear line fragments separated by small
// gaps. For each live line it collects every live line on the same visual
// row whose union is not gutter-blocked, walks them left to right merging
// while the accumulator and the next fragment stay disjoint, and stops at
// the first positive horizontal overlap. Consumed fragments are nilled in
// place; the slice is compacted at the end and each surviving line's
// items are sorted left to right.
func (a *Analyzer) mergeLineFragments(lines []*model.DocLine, cover []model.BBox) []*model.DocLine {
	for idx := range lines {
		segment := lines[idx]
		if segment == nil {
			continue
		}

		var sameLine []int
		for i, l := range lines {
			if l == nil {
				continue
			}
			if !a.verticallyOnSameLine(segment.BBox, l.BBox) {
				continue
			}
			if a.gutterBlocked(segment.BBox.Union(l.BBox), cover) {
				continue
			}
			sameLine = append(sameLine, i)
		}
		if len(sameLine) == 0 {
			continue
		}

		sort.SliceStable(sameLine, func(x, y int) bool {
			return lines[sameLine[x]].BBox.Left() < lines[sameLine[y]].BBox.Left()
		})

		var merged *model.DocLine
		for _, i := range sameLine {
			if merged == nil {
				merged = lines[i]
			} else {
				if merged.BBox.HorizontalOverlap(lines[i].BBox) > 0 {
					break
				}
				merged.MergeWith(lines[i])
			}
			lines[i] = nil
		}
		// The accumulator starts from the leftmost fragment, so it takes
		// that slot; a segment the walk did not reach keeps its own.
		lines[sameLine[0]] = merged
		model.SortL2R(merged.Items)
	}

	result := make([]*model.DocLine, 0, len(lines))
	for _, l := range lines {
		if l != nil {
			result = append(result, l)
		}
	}
	return result
}

// consolidateFigures unions intersecting figures into single regions,
// excluding background figures larger than the blob area factor times the
// page area. Each figure folds into the first emitted region it
// intersects, or starts a new region.
func (a *Analyzer) consolidateFigures(sortedFigures []*model.DocItem, pageArea float64) []model.BBox {
	maxArea := a.config.MaxImageBlobAreaFactor * pageArea
	var figures []model.BBox

	for _, item := range sortedFigures {
		if item.BBox.Area() > maxArea {
			continue
		}
		target := -1
		for i := range figures {
			if figures[i].Intersects(item.BBox) {
				target = i
				break
			}
		}
		if target >= 0 {
			figures[target].UnionWith(item.BBox)
		} else {
			figures = append(figures, item.BBox)
		}
	}

	return figures
}
