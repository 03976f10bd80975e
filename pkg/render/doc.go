// Package render serializes live host trees and immutable descriptions to
// HTML.
//
// Both tree forms render through the same code path, so the output of a
// description and of the host subtree created from it are byte-identical.
// That property is what tests and the playground use to check that a patch
// produced the tree the description asked for:
//
//	html := render.OuterHTML(node)
//	want := render.DescriptionHTML(next)
//
// Attributes render in insertion order unless SortAttributes is set.
// Boolean values render as bare attributes when true and are omitted when
// false. Event handlers are not attributes; EventMarkers adds a
// data-on-<event> marker for each bound handler.
package render
