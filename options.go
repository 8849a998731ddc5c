package cad

// SceneOption configures a Scene during creation.
//
// Example:
//
//	s := cad.NewScene(
//	    cad.WithViewport(1280, 720),
//	    cad.WithPan(cad.Pt(640, 360)),
//	    cad.WithSelectMode(cad.MultipleSelect),
//	)
type SceneOption func(*sceneOptions)

type sceneOptions struct {
	converter     *Converter
	zoom          float64 // 0 keeps the converter's zoom
	pan           *Point
	viewport      *[2]float64
	mode          SelectMode
	dragThreshold float64
	layers        []*Layer
}

func defaultSceneOptions() sceneOptions {
	return sceneOptions{
		mode:          SingleSelect,
		dragThreshold: DefaultDragThreshold,
	}
}

// WithConverter makes the scene use an existing converter. Zoom, pan and
// viewport options are applied to it.
func WithConverter(c *Converter) SceneOption {
	return func(o *sceneOptions) {
		o.converter = c
	}
}

// WithZoom sets the initial zoom. Non-positive values are ignored.
func WithZoom(zoom float64) SceneOption {
	return func(o *sceneOptions) {
		if zoom > 0 {
			o.zoom = zoom
		}
	}
}

// WithPan sets the screen position of the model origin.
func WithPan(p Point) SceneOption {
	return func(o *sceneOptions) {
		o.pan = &p
	}
}

// WithViewport sets the size of the rendering surface in pixels.
func WithViewport(width, height float64) SceneOption {
	return func(o *sceneOptions) {
		o.viewport = &[2]float64{width, height}
	}
}

// WithSelectMode sets how clicks and drags change the selection.
func WithSelectMode(m SelectMode) SceneOption {
	return func(o *sceneOptions) {
		o.mode = m
	}
}

// WithDragThreshold sets how far, in pixels, the pointer must travel with
// the button held before a press becomes a drag selection.
func WithDragThreshold(px float64) SceneOption {
	return func(o *sceneOptions) {
		if px >= 0 {
			o.dragThreshold = px
		}
	}
}

// WithLayers sets the initial layers. The first one becomes active.
func WithLayers(layers ...*Layer) SceneOption {
	return func(o *sceneOptions) {
		o.layers = layers
	}
}
