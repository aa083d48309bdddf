// Package layout implements strata's geometric page segmentation pipeline.
// Starting from the raw character and figure items of one page it estimates
// the page-local word separation distance, assembles word blobs, computes a
// whitespace cover of the page (the dominant vertical gutters), and then
// groups characters into lines and lines into text blocks, never merging
// across a gutter or across a figure.
package layout
