// Package strata segments PDF pages into their geometric layout: text
// blocks in reading order and figure regions, separated along the
// page's whitespace gutters.
//
// Basic usage:
//
//	doc, err := strata.Open("document.pdf")
//	if err != nil {
//	    // handle error
//	}
//	defer doc.Close()
//
//	blocks, err := doc.PageBlocks(0)
//	for _, b := range blocks {
//	    if tb := model.AsText(b); tb != nil {
//	        fmt.Println(tb.Text())
//	    }
//	}
//
// For advanced use cases, the lower-level layout and source packages
// are also available.
package strata

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/tsawler/strata/debugimg"
	"github.com/tsawler/strata/layout"
	"github.com/tsawler/strata/model"
	"github.com/tsawler/strata/source"
)

var log = logrus.New()

// ErrPageOutOfRange is returned for page indexes outside the document.
var ErrPageOutOfRange = errors.New("page index out of range")

// Document provides page layout analysis over one PDF document. Its own
// state is guarded by a mutex; concurrent analyses are safe when the
// source is safe for concurrent use (FitzSource is) and, with debug
// images enabled, when they analyze distinct pages.
type Document struct {
	mu            sync.Mutex
	source        source.PdfSource
	ownsSource    bool
	options       documentOptions
	debugBasename string
	sinks         map[int]*debugimg.Sink
}

// Open opens a PDF file for layout analysis. The returned Document
// owns the underlying source and must be closed when done.
func Open(filename string, opts ...Option) (*Document, error) {
	src, err := source.OpenFitz(filename)
	if err != nil {
		return nil, err
	}
	doc := FromSource(src, opts...)
	doc.ownsSource = true
	return doc, nil
}

// FromSource creates a Document over an already-opened source. The
// caller remains responsible for closing the source.
func FromSource(src source.PdfSource, opts ...Option) *Document {
	options := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&options)
	}
	log.SetLevel(options.logLevel)
	debugimg.SetLogLevel(options.logLevel)
	return &Document{
		source:        src,
		options:       options,
		debugBasename: options.debugBasename,
		sinks:         make(map[int]*debugimg.Sink),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	blocks := strata.Must(doc.PageBlocks(0))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// PageCount returns the number of pages in the document.
func (d *Document) PageCount() int {
	return d.source.PageCount()
}

// PageBlocks analyzes one page and returns its blocks in reading
// order, text blocks first and figure blocks after.
func (d *Document) PageBlocks(pageIndex int) ([]model.DocBlock, error) {
	result, err := d.analyzePage(pageIndex, false)
	if err != nil {
		return nil, err
	}
	return result.Blocks, nil
}

// TextBlocks analyzes one page and returns its text blocks only.
// Figures still constrain the segmentation; they are just not emitted.
func (d *Document) TextBlocks(pageIndex int) ([]model.DocBlock, error) {
	result, err := d.analyzePage(pageIndex, true)
	if err != nil {
		return nil, err
	}
	return result.Blocks, nil
}

// AnalyzePage analyzes one page and returns the full result including
// gutters, consolidated figures, and the inferred word separation.
func (d *Document) AnalyzePage(pageIndex int) (*layout.Result, error) {
	return d.analyzePage(pageIndex, false)
}

// EnableDebug turns on per-stage debug images for subsequent analyses.
// Output files are named "<basename>-p<page>-<stage>.png". Debug output
// has no effect on returned blocks.
func (d *Document) EnableDebug(basename string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.debugBasename = basename
	d.sinks = make(map[int]*debugimg.Sink)
}

// Close releases the underlying source if this Document owns it.
func (d *Document) Close() error {
	if !d.ownsSource {
		return nil
	}
	if closer, ok := d.source.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

// pageSink returns the debug sink for a page, creating it on first use
// so repeated analyses of the same page reuse the rendered raster.
func (d *Document) pageSink(pageIndex int) *debugimg.Sink {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.debugBasename == "" {
		return nil
	}
	if sink, ok := d.sinks[pageIndex]; ok {
		return sink
	}
	render := func(background color.Color, renderSize model.Size) (image.Image, error) {
		return d.source.RenderPageImage(pageIndex, background, renderSize)
	}
	sink := debugimg.NewSink(d.debugBasename, pageIndex, render)
	d.sinks[pageIndex] = sink
	return sink
}

func (d *Document) analyzePage(pageIndex int, textOnly bool) (*layout.Result, error) {
	if pageIndex < 0 || pageIndex >= d.source.PageCount() {
		return nil, fmt.Errorf("%w: %d", ErrPageOutOfRange, pageIndex)
	}

	items, err := d.source.PageItems(pageIndex)
	if err != nil {
		return nil, err
	}
	pageSize, err := d.source.PageSize(pageIndex)
	if err != nil {
		return nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(d.options.config)
	// the text-only path never rasterizes
	if !textOnly {
		if sink := d.pageSink(pageIndex); sink != nil {
			analyzer.SetHook(sink)
		}
	}

	var result *layout.Result
	if textOnly {
		result = analyzer.AnalyzeText(items, pageSize)
	} else {
		result = analyzer.Analyze(items, pageSize)
	}

	log.WithFields(logrus.Fields{
		"page":    pageIndex,
		"items":   len(items),
		"blocks":  len(result.Blocks),
		"gutters": len(result.Gutters),
	}).Debug("analyzed page")

	return result, nil
}
