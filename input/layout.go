package input

import "github.com/lixenwraith/ramp-basket/constants"

// Node is one box in a containment hierarchy. Offsets are relative to Parent
type Node struct {
	OffsetLeft, OffsetTop float64
	ScrollLeft, ScrollTop float64
	Parent                *Node
}

// ToLocal translates viewport coordinates into n's local space by removing each
// ancestor's offset, net of its scroll, up to the root
func (n *Node) ToLocal(x, y float64) (float64, float64) {
	for node := n; node != nil; node = node.Parent {
		x -= node.OffsetLeft - node.ScrollLeft
		y -= node.OffsetTop - node.ScrollTop
	}
	return x, y
}

// SurfaceSize is the drawing surface for a viewport, leaving room for the instruction text
func SurfaceSize(viewWidth, viewHeight, instructionHeight float64) (float64, float64) {
	w := viewWidth * constants.ViewportFill
	h := viewHeight*constants.ViewportFill - instructionHeight
	return max(w, 0), max(h, 0)
}
