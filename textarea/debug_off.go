//go:build !editkitdebug

package textarea

// debugChecks is off in normal builds; Check remains callable on demand.
const debugChecks = false
