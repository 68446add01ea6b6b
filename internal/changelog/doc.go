// Package changelog implements a structured, editable model of a
// Markdown changelog file. Parsing is a two-stage pipeline: Split turns
// raw text into typed blocks, and Build assembles blocks into a
// Document of versions, sections and entries plus a link table. Render
// serializes the Document back to canonical Markdown, and Increment
// computes PEP 440 version transitions in place.
//
// Parsing is total: unrecognized text degrades to paragraphs and
// uncategorized entries rather than failing, and nothing the parser
// does not understand is ever dropped.
package changelog
