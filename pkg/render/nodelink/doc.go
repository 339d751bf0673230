// Package nodelink renders dislike graphs as node-link diagrams.
//
// [ToDOT] produces Graphviz DOT text for an undirected dislike graph, with
// isolated guests visually muted and the chosen invite list highlighted.
// [RenderSVG] turns the DOT text into an SVG through the embedded Graphviz
// runtime, no system Graphviz install required.
package nodelink
