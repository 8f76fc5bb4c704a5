//go:build editkitdebug

package textarea

// debugChecks enables invariant verification after every dispatched
// input. A violation panics: it is a defect detector, not control flow.
const debugChecks = true
