// Package sui shows a frame buffer in a native X11 window and reports
// pointer and keyboard input.
//
// The backend speaks the X11 protocol directly, so it needs a reachable
// display with a 24 bit TrueColor default visual. Frames of 1, 3 or 4
// channels are converted into the server's BGRX layout before upload.
package sui
