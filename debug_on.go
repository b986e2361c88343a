//go:build arraydebug

package sharedarray

// debugChecks enables structured precondition assertions. Without the
// arraydebug tag the flag is a false constant and the compiler removes
// the checks; Go's own slice bounds panic remains the fail-fast backstop.
const debugChecks = true
