// =======================
// view/pointer.go
// =======================

package view

import "daysglobe/globe"

// Target receives pointer notifications tagged with a point index.
type Target interface {
	PointerEnter(idx int)
	PointerLeave()
	Click(idx int)
}

// Pointer turns raw mouse samples into enter, leave and click notifications.
// A click is a press and release over the same point. Presses on empty space
// start a drag whose deltas orbit the camera.
type Pointer struct {
	hovered  int
	pressed  bool
	pressIdx int
	dragging bool
	lastX    int
	lastY    int
}

func NewPointer() *Pointer {
	return &Pointer{hovered: globe.None, pressIdx: globe.None}
}

// Hovered returns the point under the pointer, or globe.None.
func (p *Pointer) Hovered() int {
	return p.hovered
}

// Handle processes one sample at cell (x, y). hit is the point under the
// cell and down the primary button state. It returns the drag delta in
// cells, zero unless dragging.
func (p *Pointer) Handle(t Target, x, y, hit int, down bool) (dx, dy int) {
	if p.dragging && down {
		dx, dy = x-p.lastX, y-p.lastY
		p.lastX, p.lastY = x, y
		return dx, dy
	}

	if hit != p.hovered {
		if p.hovered != globe.None {
			t.PointerLeave()
		}
		if hit != globe.None {
			t.PointerEnter(hit)
		}
		p.hovered = hit
	}

	switch {
	case down && !p.pressed:
		p.pressed = true
		p.pressIdx = hit
		if hit == globe.None {
			p.dragging = true
			p.lastX, p.lastY = x, y
		}
	case !down && p.pressed:
		if p.pressIdx != globe.None && p.pressIdx == hit {
			t.Click(hit)
		}
		p.pressed = false
		p.dragging = false
		p.pressIdx = globe.None
	}
	return 0, 0
}

// Reset forgets the pointer, leaving any hovered point.
func (p *Pointer) Reset(t Target) {
	if p.hovered != globe.None {
		t.PointerLeave()
	}
	*p = *NewPointer()
}
