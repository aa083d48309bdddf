package source

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/gen2brain/go-fitz"
	xdraw "golang.org/x/image/draw"

	"github.com/tsawler/strata/model"
)

// FitzSource reads PDF documents through MuPDF. Page geometry comes
// from MuPDF's positioned HTML rendition of each page; raster output
// comes from the MuPDF renderer.
//
// libmupdf is not thread-safe, so every call into it is serialized
// behind a mutex. FitzSource itself is safe for concurrent use.
type FitzSource struct {
	mu  sync.Mutex
	doc *fitz.Document
}

// OpenFitz opens a PDF file as a FitzSource.
func OpenFitz(filename string) (*FitzSource, error) {
	doc, err := fitz.New(filename)
	if err != nil {
		return nil, fmt.Errorf("opening pdf: %w", err)
	}
	return &FitzSource{doc: doc}, nil
}

// OpenFitzFromMemory opens an in-memory PDF as a FitzSource.
func OpenFitzFromMemory(data []byte) (*FitzSource, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("opening pdf from memory: %w", err)
	}
	return &FitzSource{doc: doc}, nil
}

// Close releases the underlying MuPDF document.
func (s *FitzSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.doc == nil {
		return nil
	}
	err := s.doc.Close()
	s.doc = nil
	return err
}

// PageCount returns the number of pages in the document.
func (s *FitzSource) PageCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.NumPage()
}

// PageSize returns the page extent in points.
func (s *FitzSource) PageSize(pageIndex int) (model.Size, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pageSizeLocked(pageIndex)
}

func (s *FitzSource) pageSizeLocked(pageIndex int) (model.Size, error) {
	bound, err := s.doc.Bound(pageIndex)
	if err != nil {
		return model.Size{}, fmt.Errorf("page %d bounds: %w", pageIndex, err)
	}
	return model.Size{
		Width:  float64(bound.Dx()),
		Height: float64(bound.Dy()),
	}, nil
}

// PageItems extracts the character and figure items of one page from
// MuPDF's positioned HTML output.
func (s *FitzSource) PageItems(pageIndex int) ([]*model.DocItem, error) {
	s.mu.Lock()
	markup, err := s.doc.HTML(pageIndex, false)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("page %d html: %w", pageIndex, err)
	}
	items, err := parsePageItems(markup)
	if err != nil {
		return nil, fmt.Errorf("page %d items: %w", pageIndex, err)
	}
	return items, nil
}

// RenderPageImage rasterizes one page onto the background color at the
// requested size. MuPDF renders at a DPI chosen to approximate the
// target size; the result is then rescaled exactly and composited.
func (s *FitzSource) RenderPageImage(pageIndex int, background color.Color, renderSize model.Size) (image.Image, error) {
	s.mu.Lock()
	pageSize, err := s.pageSizeLocked(pageIndex)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	dpi := 72.0
	if pageSize.Width > 0 {
		dpi = 72.0 * renderSize.Width / pageSize.Width
	}
	raster, err := s.doc.ImageDPI(pageIndex, dpi)
	s.mu.Unlock()
	if err != nil {
		return nil, fmt.Errorf("page %d render: %w", pageIndex, err)
	}

	out := image.NewRGBA(image.Rect(0, 0, int(renderSize.Width), int(renderSize.Height)))
	draw.Draw(out, out.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	xdraw.BiLinear.Scale(out, out.Bounds(), raster, raster.Bounds(), xdraw.Over, nil)
	return out, nil
}
