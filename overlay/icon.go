package overlay

// IconSize is the floating icon's edge in pixels.
const IconSize = 56

// FloatingIcon is the draggable launcher shown while the dashboard is
// minimised. A press followed by a release without movement is a click.
type FloatingIcon struct {
	Position Point
	Size     int
	Viewport Size

	dragging bool
	moved    bool
	offset   Point
}

func NewFloatingIcon(pos Point, size int, viewport Size) *FloatingIcon {
	ic := &FloatingIcon{Position: pos, Size: size, Viewport: viewport}
	ic.clamp()
	return ic
}

func (ic *FloatingIcon) Contains(p Point) bool {
	return p.X >= ic.Position.X && p.X < ic.Position.X+ic.Size &&
		p.Y >= ic.Position.Y && p.Y < ic.Position.Y+ic.Size
}

// Press starts tracking a possible drag. It reports whether p hit the icon.
func (ic *FloatingIcon) Press(p Point) bool {
	if !ic.Contains(p) {
		return false
	}
	ic.dragging = true
	ic.moved = false
	ic.offset = p.Sub(ic.Position)
	return true
}

func (ic *FloatingIcon) PointerMove(p Point) {
	if !ic.dragging {
		return
	}
	next := p.Sub(ic.offset)
	if next != ic.Position {
		ic.moved = true
	}
	ic.Position = next
	ic.clamp()
}

func (ic *FloatingIcon) PointerUp() { ic.dragging = false }

// Clicked reports whether the last press ended without a drag.
func (ic *FloatingIcon) Clicked() bool { return !ic.dragging && !ic.moved }

// Resize updates the viewport and pulls the icon back inside it.
func (ic *FloatingIcon) Resize(viewport Size) {
	ic.Viewport = viewport
	ic.clamp()
}

func (ic *FloatingIcon) clamp() {
	maxX := ic.Viewport.Width - ic.Size
	maxY := ic.Viewport.Height - ic.Size
	ic.Position.X = clamp(ic.Position.X, 0, maxX)
	ic.Position.Y = clamp(ic.Position.Y, 0, maxY)
}

func clamp(v, lo, hi int) int {
	if hi < lo {
		hi = lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
