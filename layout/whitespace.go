package layout

import (
	"math"

	"github.com/tsawler/strata/model"
)

// assembleBlobs coalesces adjacent characters into word-level blobs and
// unions them with the page's small figures, producing the obstacle set
// for the whitespace cover search.
//
// A character extends the previous blob when it shares the item type of
// the previous character, overlaps it vertically by more than half the
// shorter height, and follows it by less than the word-separation
// threshold. Figures larger than the blob area factor times the page area
// are backgrounds and do not become obstacles.
func (a *Analyzer) assembleBlobs(sortedItems []*model.DocItem, pageSize model.Size, wordSeparationThreshold float64) []model.BBox {
	var blobs []model.BBox
	var prev *model.DocItem

	for _, item := range sortedItems {
		if !item.Type.IsChar() {
			continue
		}
		if len(blobs) == 0 {
			blobs = append(blobs, item.BBox)
			prev = item
			continue
		}
		extended := false
		if item.Type == prev.Type &&
			item.BBox.VerticalOverlapRatio(prev.BBox) > 0.5 {
			dx := int(item.BBox.Left() - prev.BBox.Right() + 0.5)
			if float64(dx) < wordSeparationThreshold {
				blobs[len(blobs)-1].UnionWith(item.BBox)
				extended = true
			}
		}
		if !extended {
			blobs = append(blobs, item.BBox)
		}
		prev = item
	}

	maxBlobArea := a.config.MaxImageBlobAreaFactor * pageSize.Area()
	for _, item := range sortedItems {
		if item.Type.IsChar() {
			continue
		}
		if item.BBox.Area() <= maxBlobArea {
			blobs = append(blobs, item.BBox)
		}
	}

	return blobs
}

// acceptableCover is the acceptance predicate every candidate whitespace
// rectangle must pass to count as a gutter
func (a *Analyzer) acceptableCover(b model.BBox) bool {
	return b.Width() >= a.config.MinCoverSize &&
		b.Height() >= a.config.MinCoverSize &&
		b.Width()+b.Height() >= a.config.MinCoverPerimeter &&
		b.Area() >= a.config.MinCoverArea
}

// coverScore ranks candidate rectangles. Tall rectangles win; width is a
// tiebreaker.
func coverScore(b model.BBox) float64 {
	return b.Height() + 0.1*b.Width()
}

// coverCandidate is one entry in the working set of the best-first search
type coverCandidate struct {
	score     float64
	box       model.BBox
	obstacles []model.BBox
}

// nextLargestCover finds the best-scoring empty rectangle inside bounds
// that avoids all obstacles.
//
// The search is best-first over a working set of candidate rectangles.
// Each step takes the highest-scoring candidate (candidates failing the
// acceptance predicate rank as -1), returns it if it is obstacle-free or
// scores below 1, and otherwise splits it into the four sub-rectangles
// strictly left of, right of, above and below its largest-area obstacle.
func (a *Analyzer) nextLargestCover(bounds model.BBox, obstacles []model.BBox) model.BBox {
	candidates := []coverCandidate{{score: coverScore(bounds), box: bounds, obstacles: obstacles}}
	// A rectangle reached through different splits carries the same
	// obstacles and score, so each one enters the working set only once.
	seen := map[model.BBox]bool{bounds: true}

	for {
		if len(candidates) == 0 {
			return model.BBox{}
		}

		best := 0
		bestEffective := math.Inf(-1)
		for i, c := range candidates {
			effective := -1.0
			if a.acceptableCover(c.box) {
				effective = c.score
			}
			if effective > bestEffective {
				bestEffective = effective
				best = i
			}
		}

		chosen := candidates[best]
		if len(chosen.obstacles) == 0 || chosen.score < 1 {
			return chosen.box
		}

		pivot := chosen.obstacles[0]
		for _, o := range chosen.obstacles[1:] {
			if o.Area() > pivot.Area() {
				pivot = o
			}
		}

		subs := [4]model.BBox{
			model.NewBBoxFromEdges(pivot.Right(), chosen.box.Top(), chosen.box.Right(), chosen.box.Bottom()),
			model.NewBBoxFromEdges(chosen.box.Left(), chosen.box.Top(), pivot.Left(), chosen.box.Bottom()),
			model.NewBBoxFromEdges(chosen.box.Left(), pivot.Bottom(), chosen.box.Right(), chosen.box.Bottom()),
			model.NewBBoxFromEdges(chosen.box.Left(), chosen.box.Top(), chosen.box.Right(), pivot.Top()),
		}

		candidates = append(candidates[:best], candidates[best+1:]...)
		for _, sub := range subs {
			if !a.acceptableCover(sub) || seen[sub] {
				continue
			}
			seen[sub] = true
			var subObstacles []model.BBox
			for _, o := range chosen.obstacles {
				if o.Intersects(sub) {
					subObstacles = append(subObstacles, o)
				}
			}
			candidates = append(candidates, coverCandidate{
				score:     coverScore(sub),
				box:       sub,
				obstacles: subObstacles,
			})
		}
	}
}

// rawWhitespaceCover repeatedly extracts the next largest empty rectangle,
// feeding each result back into the obstacle set so later searches avoid
// the regions already found. Stops after MaxCoverItems rectangles or at
// the first result failing the acceptance predicate.
func (a *Analyzer) rawWhitespaceCover(bounds model.BBox, obstacles []model.BBox) []model.BBox {
	var result []model.BBox
	working := make([]model.BBox, len(obstacles))
	copy(working, obstacles)

	for i := 0; i < a.config.MaxCoverItems; i++ {
		next := a.nextLargestCover(bounds, working)
		if !a.acceptableCover(next) {
			break
		}
		result = append(result, next)
		working = append(working, next)
	}
	return result
}

// whitespaceCover computes the page's whitespace gutters: the vertical
// rectangles of the raw cover, each extended through any horizontal cover
// rectangle directly above or below it, then union-merged when nearly
// fully aligned. Horizontal rectangles only contribute their vertical
// extent; the returned cover is vertical-only.
func (a *Analyzer) whitespaceCover(sortedItems []*model.DocItem, pageSize model.Size, wordSeparationThreshold float64) []model.BBox {
	blobs := a.assembleBlobs(sortedItems, pageSize, wordSeparationThreshold)

	bounds := model.NewBBox(0, 0, pageSize.Width, pageSize.Height)
	raw := a.rawWhitespaceCover(bounds, blobs)

	var verticals, horizontals []model.BBox
	for _, b := range raw {
		if b.Width() < b.Height() {
			verticals = append(verticals, b)
		} else {
			horizontals = append(horizontals, b)
		}
	}

	for i := range verticals {
		v := &verticals[i]
		for _, h := range horizontals {
			if v.HorizontalOverlap(h) >= a.config.ApproxFullOverlapRatio*v.Width() &&
				v.VerticalOverlap(h) > -a.config.MinItemSize {
				top := math.Min(v.Top(), h.Top())
				bottom := math.Max(v.Bottom(), h.Bottom())
				v.Origin.Y = top
				v.Size.Height = bottom - top
			}
		}
	}

	var cover []model.BBox
	for _, candidate := range verticals {
		merged := false
		for i := range cover {
			if cover[i].Intersects(candidate) &&
				cover[i].HorizontalOverlapRatio(candidate) >= a.config.ApproxFullOverlapRatio {
				cover[i].UnionWith(candidate)
				merged = true
			}
		}
		if !merged {
			cover = append(cover, candidate)
		}
	}

	return cover
}
