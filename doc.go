// Package koch models a von Koch snowflake and the view transform used to
// display it interactively.
//
// # Overview
//
// The snowflake is a closed fractal curve built from an equilateral triangle
// by recursively replacing every straight segment with four segments forming
// an outward spike. The package splits into two small layers:
//
//   - Generate: a pure recursive subdivision turning one segment and a
//     recursion depth into an ordered Curve of points.
//   - View: the interactive state (zoom, pan, recursion depth) that places
//     the base triangle on a canvas and assembles the three generated sides
//     into one closed polygon outline.
//
// Rendering, windowing and input wiring live outside this package; the only
// contract with the UI layer is "mutate the View, then ask it for an
// Outline to draw".
//
// # Quick Start
//
//	v := koch.NewView()
//	v.ApplyZoomFactor(1.2)
//	v.Pan(30, -10)
//	outline := v.Outline(1000, 800)
//	// hand outline to the renderer as a closed polygon
//
// # Coordinate System
//
// Standard screen coordinates: origin at the top-left, X increases right,
// Y increases down. Angles are in radians. With the triangle walked
// apex, bottom-left, bottom-right, the +60 degree spike rotation points
// every bump away from the triangle's interior.
package koch

// Version is the current version of the library.
const Version = "1.0.0"
