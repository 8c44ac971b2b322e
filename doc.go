// Package themecheck validates the asset tree of a skinnable front-end
// theme: raster images, vector logos and per-system XML metadata.
//
// Each validation is an independent Check producing one Result per file
// it examines. A Result is a Success, a Fix (the issue was corrected in
// place) or a Failure (the issue needs a human). The Runner consumes one
// check's results, classifies the run as Error, Pass, Fixed or Failed,
// and reports it through a ReportSink; the Suite runs all checks in
// order and renders the overall verdict.
//
// Fixes rewrite files to their canonical form, so a clean second run
// reports Success for everything fixed by the first. A check that
// produces no results at all is classified as an Error, since a silent
// no-op almost always means a misconfigured layout.
package themecheck
