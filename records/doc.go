// Package records persists a core.Graph as line-oriented CSV records, one
// record per vertex and one per edge, demand included:
//
//	VERTEX,<key>,<name>,<group>[,<x>,<y>]
//	EDGE,<from>,<to>,<distance>,<time>,<cost>[,<demand>]
//
// The record tag is case-insensitive. Blank lines and lines starting with '#'
// are skipped. Fields follow RFC 4180 quoting, so names may contain commas,
// but every record is confined to its own line: an unbalanced quote makes only
// that line malformed, and Write refuses vertex fields holding CR or LF.
//
// Read applies every VERTEX record before any EDGE record, so an edge may
// appear before the vertices it references. Bad lines never stop the load:
// each one is reported, with its line number, in a combined error built with
// go.uber.org/multierr, and every valid line is still applied.
package records
