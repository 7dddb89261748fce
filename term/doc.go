// Package term is a terminal frontend for swing scenes built on tcell.
//
// The scene is drawn as characters with a perspective projection where each
// cell is twice as tall as it is wide. The mouse is the desktop pointing
// device:
//
//	Ctrl+click      grab the hovered entity, release on button up
//	space           grab or release with the keyboard
//	w a s d         move
//	arrow keys      look around
//	t               teleport along the pointer ray
//	q, Esc, Ctrl+C  quit
package term
