package mandel

// Escape iterates z = z*z + c from z = 0 for at most maxIter steps.
//
// It returns the index n of the first step whose |z| exceeds threshold,
// with escaped set, so 0 <= n < maxIter. When no step escapes, c is treated
// as bounded (inside the set) and escaped is false.
func Escape(c complex128, maxIter int, threshold float64) (n int, escaped bool) {
	limit := threshold * threshold
	z := complex(0, 0)
	for i := 0; i < maxIter; i++ {
		z = z*z + c
		if real(z)*real(z)+imag(z)*imag(z) > limit {
			return i, true
		}
	}
	return 0, false
}
