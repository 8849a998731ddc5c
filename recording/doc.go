// Package recording captures the screen-space drawing calls of a cad scene
// as typed commands.
//
// A Recorder implements cad.Renderer. Render a scene into it, inspect the
// commands, or finish the recording and play it back onto another renderer:
//
//	rec := recording.NewRecorder()
//	scene.Render(rec)
//
//	for _, cmd := range rec.Commands() {
//		fmt.Println(cmd.Type())
//	}
//
//	r := rec.FinishRecording()
//	r.Playback(rasterRenderer)
//
// Paths are cloned into a ResourcePool when recorded, so a finished
// recording is unaffected by later changes to the scene. Pens and brushes
// are pooled by identity.
package recording
