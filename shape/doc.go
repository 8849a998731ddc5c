// Package shape provides the stock draw objects of a cad scene: lines,
// rectangles, arcs, ellipses, Bezier curves, polygons and text.
//
// Every shape embeds cad.ObjectBase and commits its property changes
// through cad.SetProperty, so each setter raises a visual-changed
// notification and emits an undoable edit transaction.
//
// Point hit-tests on outlines use a tolerance in screen pixels, converted to
// model units with the scene's converter, so picking feels the same at any
// zoom.
package shape
