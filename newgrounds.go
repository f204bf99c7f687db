// Package newgrounds extracts structured records (audio details, search
// results, playlists) from Newgrounds pages and normalizes loosely typed
// markup into a strict data model.
//
// This package contains domain types, interfaces and the pure parts of the
// extraction pipeline (value coercers, the markup-to-text converter and the
// record assembler) following Ben Johnson's Standard Package Layout.
// Implementations that touch a dependency live in subdirectories named after
// it (e.g., goquery/, rod/, http/).
package newgrounds

// DefaultBaseURL is the site root used when no base URL is configured.
const DefaultBaseURL = "https://www.newgrounds.com"
