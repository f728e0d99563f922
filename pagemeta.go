// Package pagemeta extracts structured metadata (titles, descriptions,
// images, canonical and feed URLs, social-card data) from HTML documents.
// It runs an ordered set of independent extraction techniques against the
// same document and merges their partial results under a quality-based
// precedence policy, producing one normalized result for link-preview and
// content-indexing consumers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, trafilatura/).
package pagemeta
