package overlay

// Target is anything that can capture the pointer.
type Target interface {
	PointerMove(p Point)
	PointerUp()
}

// Document routes pointer motion to whichever target captured the pointer
// on press, so moves outside the target's bounds still reach it. The
// capture is registered on down and dropped on up.
type Document struct {
	captured Target
}

// Down offers the press to t; if t accepts, it captures the pointer.
func (d *Document) Down(p Point, t *Overlay, target *Element) bool {
	if t.PointerDown(p, target) {
		d.captured = t
		return true
	}
	return false
}

// Capture hands the pointer to t directly.
func (d *Document) Capture(t Target) { d.captured = t }

func (d *Document) Move(p Point) {
	if d.captured != nil {
		d.captured.PointerMove(p)
	}
}

func (d *Document) Up() {
	if d.captured != nil {
		d.captured.PointerUp()
		d.captured = nil
	}
}

// Captured reports whether a target currently holds the pointer.
func (d *Document) Captured() bool { return d.captured != nil }
