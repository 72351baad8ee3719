package mui

import "image"

// Rect returns the rectangle at x, y with the given width and height.
func Rect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Size is the extent of a piece of rendered text.
type Size struct {
	Width, Height int
}
