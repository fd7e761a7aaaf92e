// Package stylesnatcher extracts the visual identity of a web page: a
// ranked palette of representative colors and a ranked list of
// representative font families, derived from the page's stylesheet text
// (inline style blocks, linked stylesheet bodies, element style
// attributes). Results can be rendered for the terminal, emitted as a
// CSS custom-property document, and persisted for later retrieval.
//
// This package contains domain types, interfaces, and the pure extraction
// core following Ben Johnson's Standard Package Layout. Implementations
// live in subdirectories named after their primary dependency
// (e.g., goquery/, sqlite/, rod/).
package stylesnatcher
