package geode

import "geodeplan/internal/models"

// Solver runs the branch-and-bound geode search for one blueprint.
// Each Solver owns no mutable state between calls; searches over the
// same blueprint are independent and safe to run concurrently.
type Solver struct {
	Blueprint *models.Blueprint

	maxRobots models.Cost
}

// NewSolver creates a solver for a blueprint, precomputing the useful
// robot-count bound used to cut the branching factor.
func NewSolver(bp *models.Blueprint) *Solver {
	return &Solver{
		Blueprint: bp,
		maxRobots: bp.MaxUsefulRobots(),
	}
}

// MaxGeodes returns the maximum number of geodes openable within the
// given time budget. The traversal uses an explicit stack rather than
// recursion and prunes any state whose optimistic upper bound cannot
// beat the best value already found.
func (s *Solver) MaxGeodes(minutes int) int {
	best := 0
	stack := []State{NewInitialState(minutes)}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if state.OpenGeodes > best {
			best = state.OpenGeodes
		}

		if state.UpperBound() < best {
			continue
		}

		stack = append(stack, state.PossibleMoves(s.Blueprint, s.maxRobots)...)
	}

	return best
}

// MaxGeodesExhaustive is MaxGeodes without bound pruning. It visits the
// entire reachable state space, so it is only tractable for small
// budgets; tests use it to prove the pruned search loses nothing.
func (s *Solver) MaxGeodesExhaustive(minutes int) int {
	best := 0
	stack := []State{NewInitialState(minutes)}

	for len(stack) > 0 {
		state := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if state.OpenGeodes > best {
			best = state.OpenGeodes
		}

		stack = append(stack, state.PossibleMoves(s.Blueprint, s.maxRobots)...)
	}

	return best
}
