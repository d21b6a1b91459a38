package geode

import (
	"testing"

	"geodeplan/internal/models"
)

// FuzzPossibleMoves fuzzes the transition function with arbitrary small
// blueprints and states, checking the structural invariants that keep
// the search finite and sound.
func FuzzPossibleMoves(f *testing.F) {
	// Seed corpus: the example blueprint from a few points along its
	// optimal path, plus degenerate cases.
	f.Add(uint8(4), uint8(2), uint8(3), uint8(14), uint8(2), uint8(7), uint8(24), uint8(1), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0))
	f.Add(uint8(4), uint8(2), uint8(3), uint8(14), uint8(2), uint8(7), uint8(9), uint8(1), uint8(4), uint8(2), uint8(1), uint8(5), uint8(4))
	f.Add(uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(1), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0))
	f.Add(uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0), uint8(30), uint8(1), uint8(0), uint8(0), uint8(0), uint8(0), uint8(0))
	f.Add(uint8(255), uint8(255), uint8(255), uint8(255), uint8(255), uint8(255), uint8(32), uint8(1), uint8(1), uint8(1), uint8(255), uint8(255), uint8(255))

	f.Fuzz(func(t *testing.T,
		oreCost, clayCost, obsOreCost, obsClayCost, geoOreCost, geoObsCost uint8,
		timeLeft, oreRobots, clayRobots, obsRobots uint8,
		ore, clay, obsidian uint8,
	) {
		bp := &models.Blueprint{
			ID:                1,
			OreRobotCost:      models.Cost{Ore: int(oreCost)},
			ClayRobotCost:     models.Cost{Ore: int(clayCost)},
			ObsidianRobotCost: models.Cost{Ore: int(obsOreCost), Clay: int(obsClayCost)},
			GeodeRobotCost:    models.Cost{Ore: int(geoOreCost), Obsidian: int(geoObsCost)},
		}

		state := State{
			Time:           int(timeLeft),
			OreRobots:      int(oreRobots),
			ClayRobots:     int(clayRobots),
			ObsidianRobots: int(obsRobots),
			Ore:            int(ore),
			Clay:           int(clay),
			Obsidian:       int(obsidian),
		}

		before := state
		maxRobots := bp.MaxUsefulRobots()

		for _, child := range state.PossibleMoves(bp, maxRobots) {
			if child.Time >= state.Time {
				t.Errorf("time must strictly decrease: parent %+v child %+v", state, child)
			}
			if child.OpenGeodes < state.OpenGeodes {
				t.Errorf("committed geodes must not decrease: parent %+v child %+v", state, child)
			}
			if child.Ore < 0 || child.Clay < 0 || child.Obsidian < 0 {
				t.Errorf("resources must stay non-negative: %+v", child)
			}
			if child.OreRobots < state.OreRobots || child.ClayRobots < state.ClayRobots ||
				child.ObsidianRobots < state.ObsidianRobots {
				t.Errorf("robots are never dismantled: parent %+v child %+v", state, child)
			}
			total := (child.OreRobots - state.OreRobots) +
				(child.ClayRobots - state.ClayRobots) +
				(child.ObsidianRobots - state.ObsidianRobots)
			if total > 1 {
				t.Errorf("a move builds at most one robot: parent %+v child %+v", state, child)
			}
			if child.UpperBound() < child.OpenGeodes {
				t.Errorf("upper bound below committed value: %+v", child)
			}
		}

		if state != before {
			t.Errorf("PossibleMoves mutated its receiver: %+v -> %+v", before, state)
		}
	})
}
