package model

import (
	"math"
	"sort"
)

// Bounded is implemented by every value that carries a bounding box
// (items, lines, text blocks).
type Bounded interface {
	Bounds() BBox
}

// sameRow reports whether two boxes sit on the same visual row: their
// vertical overlap exceeds half the height of the shorter box.
func sameRow(a, b BBox) bool {
	return a.VerticalOverlap(b) > 0.5*math.Min(a.Height(), b.Height())
}

// SortT2BL2R sorts in top-to-bottom, left-to-right reading order: primary
// key is the top edge, secondary key the left edge. Boxes whose vertical
// overlap exceeds half their minimum height count as the same row and are
// ordered by their left edge. The sort is stable.
func SortT2BL2R[T Bounded](s []T) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i].Bounds(), s[j].Bounds()
		if sameRow(a, b) {
			return a.Left() < b.Left()
		}
		return a.Top() < b.Top()
	})
}

// SortL2R sorts by ascending left edge. The sort is stable.
func SortL2R[T Bounded](s []T) {
	sort.SliceStable(s, func(i, j int) bool {
		return s[i].Bounds().Left() < s[j].Bounds().Left()
	})
}

// SortL2RT2B sorts left-to-right with the top edge as secondary key.
// The sort is stable.
func SortL2RT2B[T Bounded](s []T) {
	sort.SliceStable(s, func(i, j int) bool {
		a, b := s[i].Bounds(), s[j].Bounds()
		if a.Left() != b.Left() {
			return a.Left() < b.Left()
		}
		return a.Top() < b.Top()
	})
}
