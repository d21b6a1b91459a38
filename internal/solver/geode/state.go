package geode

import "geodeplan/internal/models"

// State is an immutable snapshot of the search: remaining time, banked
// resources, robot counts and the geodes already committed by built
// geode robots. Transitions construct fresh states; a State is never
// mutated in place.
type State struct {
	// Time is the minutes remaining in the budget
	Time int

	// OpenGeodes counts geodes committed so far. Each geode robot is
	// credited for its whole remaining lifetime at build time, so the
	// geode-robot count itself never needs to be tracked.
	OpenGeodes int

	// Robots per resource type
	OreRobots      int
	ClayRobots     int
	ObsidianRobots int

	// Banked resources
	Ore      int
	Clay     int
	Obsidian int
}

// NewInitialState returns the start state: one ore robot, empty bank
func NewInitialState(minutes int) State {
	return State{
		Time:      minutes,
		OreRobots: 1,
	}
}

// UpperBound is the optimistic ceiling on the final geode count from this
// state: everything committed so far plus one new geode robot every
// remaining minute (the triangular number of Time). It is deliberately
// loose; the search relies only on it never under-estimating.
func (s State) UpperBound() int {
	return s.OpenGeodes + s.Time*(s.Time-1)/2
}

func divCeil(a, b int) int {
	return (a + b - 1) / b
}

// PossibleMoves returns the states reachable by waiting until one robot
// type is affordable and building it. Robot types already at their
// useful bound are skipped, as are builds that depend on a resource with
// no producer (unreachable) or that would not finish inside the budget.
// Children come out in the fixed models.AllRobotTypes order.
func (s State) PossibleMoves(bp *models.Blueprint, maxRobots models.Cost) []State {
	moves := make([]State, 0, 4)

	for _, rt := range models.AllRobotTypes() {
		switch rt {
		case models.OreRobot:
			if s.OreRobots >= maxRobots.Ore {
				continue
			}
		case models.ClayRobot:
			if s.ClayRobots >= maxRobots.Clay {
				continue
			}
		case models.ObsidianRobot:
			if s.ObsidianRobots >= maxRobots.Obsidian {
				continue
			}
		}

		cost := bp.CostOf(rt)

		// Minutes until every cost dimension is covered by the bank
		// plus production. A needed resource with zero producers makes
		// the branch infeasible rather than an error.
		wait := 0

		if need := cost.Ore - s.Ore; need > 0 {
			if s.OreRobots == 0 {
				continue
			}
			if w := divCeil(need, s.OreRobots); w > wait {
				wait = w
			}
		}
		if need := cost.Clay - s.Clay; need > 0 {
			if s.ClayRobots == 0 {
				continue
			}
			if w := divCeil(need, s.ClayRobots); w > wait {
				wait = w
			}
		}
		if need := cost.Obsidian - s.Obsidian; need > 0 {
			if s.ObsidianRobots == 0 {
				continue
			}
			if w := divCeil(need, s.ObsidianRobots); w > wait {
				wait = w
			}
		}
		// One extra minute for the build itself. A robot finished with
		// no time left would never produce, so that branch is dropped.
		remaining := s.Time - wait - 1
		if remaining <= 0 {
			continue
		}

		next := State{
			Time:           remaining,
			OpenGeodes:     s.OpenGeodes,
			OreRobots:      s.OreRobots,
			ClayRobots:     s.ClayRobots,
			ObsidianRobots: s.ObsidianRobots,
			Ore:            s.Ore + s.OreRobots*(wait+1) - cost.Ore,
			Clay:           s.Clay + s.ClayRobots*(wait+1) - cost.Clay,
			Obsidian:       s.Obsidian + s.ObsidianRobots*(wait+1) - cost.Obsidian,
		}

		switch rt {
		case models.OreRobot:
			next.OreRobots++
		case models.ClayRobot:
			next.ClayRobots++
		case models.ObsidianRobot:
			next.ObsidianRobots++
		case models.GeodeRobot:
			next.OpenGeodes += remaining
		}

		moves = append(moves, next)
	}

	return moves
}
