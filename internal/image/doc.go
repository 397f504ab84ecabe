// Package image locates and downloads stock photos for a keyword and
// classifies their orientation. Providers sit behind ImageSearcher: keyless
// featured-photo URLs, the Unsplash API and the Pixabay API.
package image
