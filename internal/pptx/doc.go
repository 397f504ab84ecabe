// Package pptx writes a deck.Deck as an Office Open XML presentation.
//
// The package holds one slide master with a single blank layout and a
// minimal theme. Pictures are copied into ppt/media; a file used by
// several slides is stored once.
package pptx
