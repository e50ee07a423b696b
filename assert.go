package vector

import "fmt"

// fail reports a contract violation by the caller. These are not
// recoverable conditions and are never returned as errors.
func fail(format string, args ...any) {
	panic("vector: " + fmt.Sprintf(format, args...))
}

func checkIndex(what string, i, n int) {
	if i < 0 || i >= n {
		fail("%s index %d out of range [0,%d)", what, i, n)
	}
}

func checkNonNegative(what string, n int) {
	if n < 0 {
		fail("negative %s %d", what, n)
	}
}
