package models

// ResourceType represents the materials handled by the robot factory
type ResourceType string

const (
	Ore      ResourceType = "ore"
	Clay     ResourceType = "clay"
	Obsidian ResourceType = "obsidian"
	Geode    ResourceType = "geode"
)

// AllResourceTypes returns all resource types in deterministic order
func AllResourceTypes() []ResourceType {
	return []ResourceType{Ore, Clay, Obsidian, Geode}
}

// RobotType represents the producible robot kinds, one per resource
type RobotType string

const (
	OreRobot      RobotType = "ore_robot"
	ClayRobot     RobotType = "clay_robot"
	ObsidianRobot RobotType = "obsidian_robot"
	GeodeRobot    RobotType = "geode_robot"
)

// AllRobotTypes returns all robot types in deterministic order
func AllRobotTypes() []RobotType {
	return []RobotType{OreRobot, ClayRobot, ObsidianRobot, GeodeRobot}
}

// Produces returns the resource a robot of this type gathers each minute
func (rt RobotType) Produces() ResourceType {
	switch rt {
	case OreRobot:
		return Ore
	case ClayRobot:
		return Clay
	case ObsidianRobot:
		return Obsidian
	case GeodeRobot:
		return Geode
	default:
		return Ore
	}
}

// Cost is the ore/clay/obsidian price of building one robot.
// Geodes are never spent, so they have no cost dimension.
type Cost struct {
	Ore      int
	Clay     int
	Obsidian int
}

// Max returns the component-wise maximum of two costs
func (c Cost) Max(other Cost) Cost {
	out := c
	if other.Ore > out.Ore {
		out.Ore = other.Ore
	}
	if other.Clay > out.Clay {
		out.Clay = other.Clay
	}
	if other.Obsidian > out.Obsidian {
		out.Obsidian = other.Obsidian
	}
	return out
}

// IsZero reports whether the cost is free in every dimension
func (c Cost) IsZero() bool {
	return c.Ore == 0 && c.Clay == 0 && c.Obsidian == 0
}

// Blueprint is the static ruleset for one factory: an identifier plus
// the build cost of each robot type. Read-only through the search.
type Blueprint struct {
	ID                int
	OreRobotCost      Cost
	ClayRobotCost     Cost
	ObsidianRobotCost Cost
	GeodeRobotCost    Cost
}

// CostOf returns the build cost for a robot type
func (b *Blueprint) CostOf(rt RobotType) Cost {
	switch rt {
	case OreRobot:
		return b.OreRobotCost
	case ClayRobot:
		return b.ClayRobotCost
	case ObsidianRobot:
		return b.ObsidianRobotCost
	case GeodeRobot:
		return b.GeodeRobotCost
	default:
		return Cost{}
	}
}

// MaxUsefulRobots returns, per resource, the highest single-build cost of
// that resource across all robot types. Only one robot can be built per
// minute, so owning more producers of a resource than this bound never
// increases output. Geode robots are unbounded.
func (b *Blueprint) MaxUsefulRobots() Cost {
	return Cost{}.
		Max(b.OreRobotCost).
		Max(b.ClayRobotCost).
		Max(b.ObsidianRobotCost).
		Max(b.GeodeRobotCost)
}
