// Package textarea implements an embeddable multi-line text-editing
// buffer for terminal applications.
//
// A TextArea owns an ordered sequence of lines and a single cursor,
// addressed as a 0-based (row, column) pair counted in Unicode scalar
// values, never bytes. Every line is terminated by a sentinel space that
// is not part of the logical text; it exists so the cursor can address
// the position after the last real character as a real character index.
// Lines() strips the sentinel, so external code never observes it.
//
// Edit and navigation operations are total: they either mutate or no-op,
// never fail. Key input arrives as normalized key.Input pairs and is
// routed through two fixed binding tables (plain and ctrl-modified).
// RenderLines produces a styled span decomposition for a rendering
// collaborator; the package itself never touches the terminal.
//
// A TextArea is exclusively owned by its caller. Nothing blocks and
// nothing is asynchronous; callers sharing one across goroutines must
// serialize access themselves.
package textarea
