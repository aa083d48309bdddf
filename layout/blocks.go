package layout

import (
	"github.com/tsawler/strata/model"
)

// spansBothColumns reports whether other is a wide line spanning across
// both the candidate line and the block, such as a section heading laid
// over two columns. Spanning lines do not block a merge.
func spansBothColumns(other, line *model.DocLine, block *model.TextBlock) bool {
	return other.BBox.HorizontalOverlap(line.BBox) > line.BBox.Height() &&
		other.BBox.HorizontalOverlap(block.BBox) > line.BBox.Height()
}

// mergeBlocked reports whether joining line to block is forbidden: the
// candidate union either intersects a figure region or swallows a
// stranger line that is not a column spanner.
func mergeBlocked(union model.BBox, line *model.DocLine, block *model.TextBlock, others []*model.DocLine, figures []model.BBox) bool {
	for _, f := range figures {
		if union.Intersects(f) {
			return true
		}
	}
	for _, other := range others {
		if other == line {
			continue
		}
		member := false
		for _, l := range block.Lines {
			if l == other {
				member = true
				break
			}
		}
		if member {
			continue
		}
		if spansBothColumns(other, line, block) {
			continue
		}
		if union.Intersects(other.BBox) {
			return true
		}
	}
	return false
}

// buildBlocks stacks lines into text blocks. Lines are visited left to
// right, top to bottom; a line joins the first block it overlaps
// horizontally by at least the block threshold, provided the merge is
// not blocked by a figure or by a stranger line. Otherwise it seeds a
// new block.
func (a *Analyzer) buildBlocks(lines []*model.DocLine, figures []model.BBox) []*model.TextBlock {
	ordered := make([]*model.DocLine, len(lines))
	copy(ordered, lines)
	model.SortL2RT2B(ordered)

	var blocks []*model.TextBlock
	for _, line := range ordered {
		var target *model.TextBlock
		for _, blk := range blocks {
			if blk.BBox.HorizontalOverlap(line.BBox) < a.config.MinBlockHorizontalOverlap {
				continue
			}
			if mergeBlocked(blk.BBox.Union(line.BBox), line, blk, ordered, figures) {
				continue
			}
			target = blk
			break
		}
		if target == nil {
			target = &model.TextBlock{BBox: line.BBox}
			blocks = append(blocks, target)
		}
		target.BBox.UnionWith(line.BBox)
		target.Lines = append(target.Lines, line)
	}

	return blocks
}
