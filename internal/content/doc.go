// Package content prepares the per-keyword records that a deck is built
// from: a summary text and, optionally, a fixed number of image slots.
package content
