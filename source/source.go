// Package source provides page item providers for the segmentation
// pipeline. A PdfSource abstracts the underlying document backend; the
// default implementation reads PDFs through MuPDF.
package source

import (
	"image"
	"image/color"

	"github.com/tsawler/strata/model"
)

// PdfSource supplies the per-page geometry the analyzer consumes.
// Implementations are not required to be safe for concurrent use.
type PdfSource interface {
	// PageCount returns the number of pages in the document
	PageCount() int

	// PageSize returns the extent of the given page in points
	PageSize(pageIndex int) (model.Size, error)

	// PageItems returns the character and figure items of the given
	// page. Callers own the returned slice.
	PageItems(pageIndex int) ([]*model.DocItem, error)

	// RenderPageImage rasterizes the given page onto the background
	// color at the requested size.
	RenderPageImage(pageIndex int, background color.Color, renderSize model.Size) (image.Image, error)
}
