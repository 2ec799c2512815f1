// Package townpress converts a mirrored municipal website into a canonical
// twelve-page site model. It cleans raw HTML, classifies every document into
// one of twelve semantic page slots, extracts site-wide metadata, normalizes
// content to markdown, aggregates documents per slot, and renders the result
// through a small set of interchangeable layouts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, htmltomarkdown/, sqlite/).
package townpress
