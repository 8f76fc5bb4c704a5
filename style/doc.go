// Package style provides the visual value types carried through the
// textarea render boundary: colors, text attributes, and styles.
//
// The types are plain values with no terminal dependency; ToTcell
// converts at the edge where a tcell screen is involved. The textarea
// itself stores styles opaquely and passes them through to the
// rendering collaborator unmodified.
package style
