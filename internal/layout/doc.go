// Package layout decides how prepared content is spread over slides: it
// paginates summary sentences under a length cap and positions images on
// the right-hand side of a slide according to their orientation.
//
// All geometry is in EMU (English Metric Units), the unit used by the
// Office Open XML drawing markup.
package layout
