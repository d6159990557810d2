package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/depthscroll/internal/config"
)

// innerLaneLimit drops lanes with |index| below it from every row so the
// forward view straight ahead stays open.
const innerLaneLimit = 2

// LaneSchedule maps a lane index to the nearest depth at which that lane
// may receive its next obstacle. Entries are never cleared; stale ones fall
// behind worldZ and stop mattering.
type LaneSchedule map[int]float64

// Allows reports whether lane may take an obstacle at depth.
func (s LaneSchedule) Allows(lane int, depth float64) bool {
	next, ok := s[lane]
	return !ok || next <= depth
}

// LaneSpawner populates obstacle rows ahead of the camera.
type LaneSpawner struct {
	cfg         config.ObstacleConfig
	bias        float64
	schedule    LaneSchedule
	lastRowMark float64 // worldZ at which the previous row was due
	nextKind    Kind    // Ping-pongs between bush and column
}

// NewLaneSpawner creates a spawner. bias is the ground depth bias, so a new
// row sits at exactly SpawnDistance relative depth.
func NewLaneSpawner(cfg config.ObstacleConfig, bias float64) *LaneSpawner {
	return &LaneSpawner{
		cfg:      cfg,
		bias:     bias,
		schedule: make(LaneSchedule),
		nextKind: KindBush,
	}
}

// RowResult describes one spawn iteration, for logging and tests.
type RowResult struct {
	Depth   float64
	Pattern []int
	Placed  int
	Empty   bool
}

// Update spawns as many rows as worldZ has advanced past, bounded by the
// obstacle budget and MaxRowsPerFrame. Rows left over by the cap are caught
// up on later frames.
func (ls *LaneSpawner) Update(worldZ float64, reg *Registry, rng *rand.Rand) []RowResult {
	// Late rows are held at a floor so a long backlog never lands near the camera.
	minDepth := worldZ + ls.cfg.SpawnDistance - ls.bias - float64(ls.cfg.MaxRowsPerFrame)*ls.cfg.RowSpacing

	var rows []RowResult
	for i := 0; i < ls.cfg.MaxRowsPerFrame; i++ {
		if worldZ-ls.lastRowMark < ls.cfg.RowSpacing {
			break
		}
		if reg.Count(IsObstacle) >= ls.cfg.Budget {
			break
		}

		ls.lastRowMark += ls.cfg.RowSpacing
		rowDepth := math.Max(ls.lastRowMark+ls.cfg.SpawnDistance-ls.bias, minDepth)

		if rng.Intn(100) < ls.cfg.EmptyRowChance {
			rows = append(rows, RowResult{Depth: rowDepth, Empty: true})
			continue
		}

		pattern := ls.cfg.Patterns[rng.Intn(len(ls.cfg.Patterns))]
		rows = append(rows, RowResult{
			Depth:   rowDepth,
			Pattern: pattern,
			Placed:  ls.placeRow(pattern, rowDepth, reg, rng),
		})
	}
	return rows
}

// placeRow places one obstacle per eligible lane and returns the count.
func (ls *LaneSpawner) placeRow(pattern []int, rowDepth float64, reg *Registry, rng *rand.Rand) int {
	placed := 0
	for _, lane := range pattern {
		if lane > -innerLaneLimit && lane < innerLaneLimit {
			continue
		}
		if reg.Count(IsObstacle) >= ls.cfg.Budget {
			break
		}
		if !ls.schedule.Allows(lane, rowDepth) {
			continue
		}

		jitter := 1 + (rng.Float64()*2-1)*ls.cfg.SizeJitter
		reg.Add(Entity{
			Kind:  ls.nextKind,
			Lane:  lane,
			X:     float64(lane) * ls.cfg.LaneWidth,
			Depth: rowDepth,
			Size:  jitter,
		})
		ls.schedule[lane] = rowDepth + ls.cfg.LaneMinSpacing
		placed++

		if ls.nextKind == KindBush {
			ls.nextKind = KindColumn
		} else {
			ls.nextKind = KindBush
		}
	}
	return placed
}

// Schedule exposes the lane schedule for inspection.
func (ls *LaneSpawner) Schedule() LaneSchedule {
	return ls.schedule
}
