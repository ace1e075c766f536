// Package render produces visualizations of the preference graph.
//
// The graph shows who asked to sit with whom after constraint
// resolution: surviving "with" edges are solid, edges severed by a
// "without" constraint are dashed. The rendering is diagnostic - it
// explains why clusters formed the way they did - and carries no seat
// geometry.
//
// [ToDOT] emits Graphviz DOT text; [RenderSVG] rasterizes it in-process
// using github.com/goccy/go-graphviz (no external Graphviz install
// required, the library ships a WASM build).
package render
