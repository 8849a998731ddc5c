// Package cad provides the scene core of an interactive 2D drafting view.
//
// # Overview
//
// A drawing lives in model space and is organised in layers of draw
// objects. A Scene owns the layers and a Converter that maps model space
// onto the pixels of a host surface through a zoom and a pan offset. The
// host feeds raw pointer and key events in screen coordinates; the scene
// converts them, routes them to selected objects and performs click and
// drag selection. Rendering goes through a Renderer that only ever
// receives screen-space primitives.
//
// # Quick Start
//
//	layer := cad.NewLayer("sketch")
//	scene := cad.NewScene(
//	    cad.WithViewport(800, 600),
//	    cad.WithPan(cad.Pt(400, 300)),
//	    cad.WithLayers(layer),
//	)
//
//	line := shape.NewLine(cad.Pt(0, 0), cad.Pt(2, 1), cad.NewPen(color.Black, 1))
//	if err := layer.Add(line); err != nil {
//	    return err
//	}
//
//	scene.MouseDown(cad.Pt(400, 300), cad.ButtonLeft, 0)
//	scene.MouseUp(cad.Pt(400, 300), cad.ButtonLeft, 0)
//	scene.Render(renderer)
//
// # Coordinate System
//
// Model space ("CAD coordinates") has the Y axis pointing up. Screen space
// has the origin at the top-left pixel with Y pointing down. One model unit
// is DefaultResolution pixels at zoom 1. Angles are in radians, 0 along the
// positive X axis, increasing counterclockwise in model space.
//
// # Undo and Redo
//
// Every settable property of a draw object goes through SetProperty, which
// raises a visual-changed notification and emits an EditTransaction. The
// scene forwards transactions through OnEditCommitted; package history
// provides an undo stack for them.
//
// # Concurrency
//
// The core is single-threaded. Every notification is delivered
// synchronously on the goroutine that made the change, after the state has
// been updated and before the call returns.
package cad
