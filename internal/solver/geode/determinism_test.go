package geode

import "testing"

// TestSolverDeterminism verifies that repeated searches over the same
// blueprint and budget return identical values. The answer is a max
// reduction, so it must not depend on visitation order; this guards
// against accidental map iteration or other nondeterminism creeping in.
func TestSolverDeterminism(t *testing.T) {
	const iterations = 100

	for _, bp := range []func() *Solver{
		func() *Solver { return NewSolver(exampleBlueprint()) },
		func() *Solver { return NewSolver(exampleBlueprint2()) },
	} {
		first := bp().MaxGeodes(24)
		for i := 0; i < iterations; i++ {
			if got := bp().MaxGeodes(24); got != first {
				t.Fatalf("iteration %d: got %d, first run got %d", i, got, first)
			}
		}
	}
}

// A fresh Solver and a reused one must agree: MaxGeodes keeps no state
// between calls.
func TestSolverReuse(t *testing.T) {
	solver := NewSolver(exampleBlueprint())

	a := solver.MaxGeodes(24)
	b := solver.MaxGeodes(24)
	if a != b {
		t.Errorf("reused solver disagreed with itself: %d vs %d", a, b)
	}
	if fresh := NewSolver(exampleBlueprint()).MaxGeodes(24); fresh != a {
		t.Errorf("fresh solver got %d, reused solver got %d", fresh, a)
	}
}
