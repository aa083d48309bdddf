// Package debugimg renders the intermediate geometry of the
// segmentation pipeline onto upscaled page rasters, one PNG per stage.
package debugimg

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"

	"github.com/tsawler/strata/model"
)

var log = logrus.New()

// SetLogLevel sets the logging level for the package logger.
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// UpscaleFactor is the ratio between debug raster size and page size.
// Boxes drawn at page coordinates are scaled by the same factor.
const UpscaleFactor = 1.3

// RasterFunc produces the page raster a sink draws on.
type RasterFunc func(background color.Color, renderSize model.Size) (image.Image, error)

// Sink writes one annotated PNG per pipeline stage. It implements the
// layout stage hook. The page raster is rendered once on first use and
// cached for the remaining stages.
type Sink struct {
	basename  string
	pageIndex int
	render    RasterFunc
	raster    image.Image
}

// NewSink creates a sink for one page. Output files are named
// "<basename>-p<page>-<stage>.png".
func NewSink(basename string, pageIndex int, render RasterFunc) *Sink {
	return &Sink{basename: basename, pageIndex: pageIndex, render: render}
}

// Stage draws the stage's boxes over the page raster and writes the
// annotated PNG. Render and save failures are logged, not returned;
// debug output never fails the analysis.
func (s *Sink) Stage(name string, pageSize model.Size, boxes []model.BBox) {
	scaled := pageSize.Scale(UpscaleFactor)
	width := int(scaled.Width)
	height := int(scaled.Height)
	if width <= 0 || height <= 0 {
		return
	}

	if s.raster == nil {
		raster, err := s.render(color.White, scaled)
		if err != nil {
			log.WithFields(logrus.Fields{
				"page":  s.pageIndex,
				"stage": name,
			}).WithError(err).Warn("rendering debug raster, using blank page")
			blank := image.NewRGBA(image.Rect(0, 0, width, height))
			for i := range blank.Pix {
				blank.Pix[i] = 0xff
			}
			raster = blank
		}
		s.raster = raster
	}

	dc := gg.NewContext(width, height)
	dc.DrawImage(s.raster, 0, 0)

	dc.SetLineWidth(2)
	for _, b := range boxes {
		dc.DrawRectangle(
			b.Left()*UpscaleFactor,
			b.Top()*UpscaleFactor,
			b.Width()*UpscaleFactor,
			b.Height()*UpscaleFactor,
		)
		dc.SetRGBA(1, 0, 0, 0.85)
		dc.Stroke()
	}

	filename := fmt.Sprintf("%s-p%03d-%s.png", s.basename, s.pageIndex, name)
	if err := dc.SavePNG(filename); err != nil {
		log.WithFields(logrus.Fields{
			"page":  s.pageIndex,
			"stage": name,
			"file":  filename,
		}).WithError(err).Warn("saving debug image")
		return
	}
	log.WithFields(logrus.Fields{
		"page":  s.pageIndex,
		"stage": name,
		"file":  filename,
		"boxes": len(boxes),
	}).Debug("wrote debug image")
}
