package layout

import (
	"math"

	"github.com/tsawler/strata/model"
)

// wordSeparationThreshold infers the page-local distance below which a
// horizontal gap between adjacent characters is intra-word rather than
// inter-word.
//
// It builds a histogram of pixel-rounded horizontal gaps between
// consecutive same-row characters, smoothed with a triangular kernel, and
// returns the histogram mode scaled by the word-separation multiplier.
// Ties break toward the lowest gap. A page with zero width yields 0,
// which classifies every gap as inter-word.
func (a *Analyzer) wordSeparationThreshold(sortedChars []*model.DocItem, meanCharWidth, pageWidth float64) float64 {
	histLen := int(math.Ceil(pageWidth))
	if histLen <= 0 {
		return 0
	}
	hist := make([]int, histLen)

	maxGap := a.config.MaxWordSeparationToMeanCharWidthRatio * meanCharWidth
	for i := 1; i < len(sortedChars); i++ {
		this := sortedChars[i]
		prev := sortedChars[i-1]
		if this.BBox.VerticalOverlap(prev.BBox) <= a.config.MinItemSize {
			continue
		}
		dx := int(this.BBox.Left() - prev.BBox.Right() + 0.5)
		if float64(dx) < a.config.MinAcknowledgableDistance || float64(dx) > maxGap || dx >= histLen {
			continue
		}
		hist[dx]++
		if dx > 1 {
			hist[dx-1]++
		}
		if dx < histLen-1 {
			hist[dx+1]++
		}
	}

	mode := 0
	for i, count := range hist {
		if count > hist[mode] {
			mode = i
		}
	}
	return a.config.WordSeparationMultiplier * float64(mode)
}

// meanCharWidth returns the mean bounding-box width of the given items,
// or 0 for an empty slice
func meanCharWidth(chars []*model.DocItem) float64 {
	if len(chars) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range chars {
		total += c.BBox.Width()
	}
	return total / float64(len(chars))
}
