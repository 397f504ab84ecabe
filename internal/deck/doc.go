// Package deck turns prepared content records into an ordered list of
// slides made of positioned text boxes and pictures. The order of slides
// is fixed: title, table of contents, content, overall summary, closing.
// Writers such as package pptx render a Deck without further layout
// decisions.
package deck
