// Package model defines the geometric primitives and document structures
// shared across strata: points, sizes and bounding boxes in top-left-origin
// page coordinates, the raw page items reported by the PDF decoder, and the
// lines and blocks produced by layout analysis.
package model
