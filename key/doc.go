// Package key normalizes terminal key events into the abstract input
// pairs consumed by the textarea dispatcher.
//
// The package defines a small Key enum, an Input carrying a key plus a
// ctrl flag, and a total mapping from tcell events. Anything the mapping
// does not recognize (mouse events, resizes, function keys) becomes the
// null input, which downstream code treats as a no-op.
package key
