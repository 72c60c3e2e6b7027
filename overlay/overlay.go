// Package overlay implements drag-to-move and drag-to-resize for floating
// dialogs, independent of how they are drawn.
package overlay

type Point struct{ X, Y int }

func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

type Size struct{ Width, Height int }

// ElementKind tags the part of an overlay a pointer landed on.
type ElementKind int

const (
	Body ElementKind = iota
	Header
	Button
	ResizeHandle
)

// Element is a node in an overlay's hit tree.
type Element struct {
	Kind   ElementKind
	Parent *Element
}

// Within reports whether e or one of its ancestors has the given kind.
func (e *Element) Within(kind ElementKind) bool {
	for n := e; n != nil; n = n.Parent {
		if n.Kind == kind {
			return true
		}
	}
	return false
}

// Min sizes recovered from the dashboard's dialogs, in pixels.
var (
	TicketDetailMin = Size{Width: 500, Height: 300}
	InventoryMin    = Size{Width: 660, Height: 630}
)

// Overlay holds one dialog's position and size.
type Overlay struct {
	Position Point
	Size     Size
	MinSize  Size

	dragging bool
	resizing bool
	offset   Point
	origin   Point
	start    Size
}

func New(pos Point, size, min Size) *Overlay {
	o := &Overlay{Position: pos, Size: size, MinSize: min}
	o.clampSize()
	return o
}

// PointerDown starts a drag when target is inside the header but not inside
// a button, or a resize when target is inside the resize handle. It reports
// whether the overlay now wants the pointer.
func (o *Overlay) PointerDown(p Point, target *Element) bool {
	switch {
	case target == nil:
		return false
	case target.Within(Button):
		return false
	case target.Within(ResizeHandle):
		o.resizing = true
		o.origin = p
		o.start = o.Size
		return true
	case target.Within(Header):
		o.dragging = true
		o.offset = p.Sub(o.Position)
		return true
	}
	return false
}

// PointerMove follows the pointer while dragging or resizing.
func (o *Overlay) PointerMove(p Point) {
	if o.dragging {
		o.Position = p.Sub(o.offset)
	}
	if o.resizing {
		d := p.Sub(o.origin)
		o.Size = Size{Width: o.start.Width + d.X, Height: o.start.Height + d.Y}
		o.clampSize()
	}
}

// PointerUp ends any drag or resize.
func (o *Overlay) PointerUp() {
	o.dragging = false
	o.resizing = false
}

func (o *Overlay) Dragging() bool { return o.dragging }
func (o *Overlay) Resizing() bool { return o.resizing }

func (o *Overlay) clampSize() {
	if o.Size.Width < o.MinSize.Width {
		o.Size.Width = o.MinSize.Width
	}
	if o.Size.Height < o.MinSize.Height {
		o.Size.Height = o.MinSize.Height
	}
}

// Contains reports whether p falls within the overlay's bounds.
func (o *Overlay) Contains(p Point) bool {
	return p.X >= o.Position.X && p.X < o.Position.X+o.Size.Width &&
		p.Y >= o.Position.Y && p.Y < o.Position.Y+o.Size.Height
}
