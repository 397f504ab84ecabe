// Package processor runs one slidedeck generation: it reads the keywords,
// prepares their content, assembles the deck and writes the presentation
// together with the metadata and summary files. It is the coordinator
// between all other components.
package processor
