// Package scene arranges rendered datasets into presentation panels.
//
// # Overview
//
// A [Scene] is an ordered row of [Panel] values, each pairing a dataset
// with a title, a caption, and a style. Two canonical scenes ship with the
// package:
//
//   - [Comparison]: the integrated network beside the modular one
//   - [SplitBrain]: the two-hemisphere network, intact or severed
//
// [ComposeSVG] and [ComposePNG] lay the panels out side by side with the
// scene chrome (headings and captions), pushing each panel through the
// core renderer so the drawing contract holds per panel.
//
// # Split-Brain Toggle
//
// The severed state is purely a dataset selection. [SplitBrain] with split
// set builds one panel per hemisphere sub-dataset; with split unset it
// builds a single panel of the merged dataset. Nothing in the renderer
// knows which state it is drawing.
//
// # Reading List
//
// [References] returns the literature the bundled datasets allude to, for
// display by the CLI.
package scene
