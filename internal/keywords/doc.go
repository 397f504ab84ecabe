// Package keywords extracts the bracketed keyword tags that drive a deck.
package keywords
