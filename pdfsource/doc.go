// Package pdfsource is a layout provider for PDF files built on
// github.com/ledongthuc/pdf.
//
// Glyph runs are merged into word tokens and converted to top-down page
// coordinates. Rectangles drawn on the page become ruled segments, and
// the segments are turned into table regions by [tables.GridDetector].
package pdfsource
