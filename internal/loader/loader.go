package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"geodeplan/internal/models"
)

// Precompiled regex for the fixed blueprint sentence format
var blueprintRegex = regexp.MustCompile(
	`^Blueprint (\d+): ` +
		`Each ore robot costs (\d+) ore\. ` +
		`Each clay robot costs (\d+) ore\. ` +
		`Each obsidian robot costs (\d+) ore and (\d+) clay\. ` +
		`Each geode robot costs (\d+) ore and (\d+) obsidian\.$`)

// ParseBlueprint parses a single blueprint sentence. The format is
// strict: any deviation is an error, not a partial result.
func ParseBlueprint(line string) (*models.Blueprint, error) {
	m := blueprintRegex.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return nil, fmt.Errorf("malformed blueprint line: %q", line)
	}

	// Submatches are all \d+ so Atoi cannot fail here
	nums := make([]int, len(m)-1)
	for i, s := range m[1:] {
		nums[i], _ = strconv.Atoi(s)
	}

	return &models.Blueprint{
		ID:                nums[0],
		OreRobotCost:      models.Cost{Ore: nums[1]},
		ClayRobotCost:     models.Cost{Ore: nums[2]},
		ObsidianRobotCost: models.Cost{Ore: nums[3], Clay: nums[4]},
		GeodeRobotCost:    models.Cost{Ore: nums[5], Obsidian: nums[6]},
	}, nil
}

// ParseBlueprints reads one blueprint per line, skipping blank lines.
// The first malformed line fails the whole batch: a bad input must yield
// no answer rather than a partial one.
func ParseBlueprints(r io.Reader) ([]*models.Blueprint, error) {
	var blueprints []*models.Blueprint

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		bp, err := ParseBlueprint(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		blueprints = append(blueprints, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read blueprints: %w", err)
	}

	return blueprints, nil
}

// LoadBlueprints loads blueprints from a text file
func LoadBlueprints(path string) ([]*models.Blueprint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	blueprints, err := ParseBlueprints(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return blueprints, nil
}
