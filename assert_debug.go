//go:build vectordebug

package vector

// debugChecks enables the size-bounded index assertion in At.
const debugChecks = true
