package recording

import "github.com/draftline/cad"

// ResourcePool stores resources referenced by recording commands. Paths
// are cloned on add; pens and brushes are stored once per pointer.
//
// ResourcePool is not safe for concurrent use.
type ResourcePool struct {
	paths   []*cad.Path
	pens    []*cad.Pen
	brushes []*cad.Brush

	penIndex   map[*cad.Pen]PenRef
	brushIndex map[*cad.Brush]BrushRef
}

// NewResourcePool creates an empty resource pool.
func NewResourcePool() *ResourcePool {
	return &ResourcePool{
		paths:      make([]*cad.Path, 0, 64),
		penIndex:   make(map[*cad.Pen]PenRef),
		brushIndex: make(map[*cad.Brush]BrushRef),
	}
}

// AddPath adds a copy of path and returns its reference. A nil path yields
// an invalid reference.
func (p *ResourcePool) AddPath(path *cad.Path) PathRef {
	if path == nil {
		return PathRef(InvalidRef)
	}
	p.paths = append(p.paths, path.Clone())
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	return PathRef(uint32(len(p.paths) - 1))
}

// GetPath returns the path for the given reference, or nil.
func (p *ResourcePool) GetPath(ref PathRef) *cad.Path {
	if int(ref) >= len(p.paths) {
		return nil
	}
	return p.paths[ref]
}

// PathCount returns the number of paths in the pool.
func (p *ResourcePool) PathCount() int { return len(p.paths) }

// AddPen returns the reference of pen, adding it on first use. A nil pen
// yields an invalid reference.
func (p *ResourcePool) AddPen(pen *cad.Pen) PenRef {
	if pen == nil {
		return PenRef(InvalidRef)
	}
	if ref, ok := p.penIndex[pen]; ok {
		return ref
	}
	p.pens = append(p.pens, pen)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := PenRef(uint32(len(p.pens) - 1))
	p.penIndex[pen] = ref
	return ref
}

// GetPen returns the pen for the given reference, or nil.
func (p *ResourcePool) GetPen(ref PenRef) *cad.Pen {
	if int(ref) >= len(p.pens) {
		return nil
	}
	return p.pens[ref]
}

// PenCount returns the number of distinct pens in the pool.
func (p *ResourcePool) PenCount() int { return len(p.pens) }

// AddBrush returns the reference of brush, adding it on first use. A nil
// brush yields an invalid reference.
func (p *ResourcePool) AddBrush(brush *cad.Brush) BrushRef {
	if brush == nil {
		return BrushRef(InvalidRef)
	}
	if ref, ok := p.brushIndex[brush]; ok {
		return ref
	}
	p.brushes = append(p.brushes, brush)
	// #nosec G115 -- pool size is bounded by available memory, well under uint32 max
	ref := BrushRef(uint32(len(p.brushes) - 1))
	p.brushIndex[brush] = ref
	return ref
}

// GetBrush returns the brush for the given reference, or nil.
func (p *ResourcePool) GetBrush(ref BrushRef) *cad.Brush {
	if int(ref) >= len(p.brushes) {
		return nil
	}
	return p.brushes[ref]
}

// BrushCount returns the number of distinct brushes in the pool.
func (p *ResourcePool) BrushCount() int { return len(p.brushes) }

// Clear removes all resources from the pool.
func (p *ResourcePool) Clear() {
	p.paths = p.paths[:0]
	p.pens = p.pens[:0]
	p.brushes = p.brushes[:0]
	clear(p.penIndex)
	clear(p.brushIndex)
}
