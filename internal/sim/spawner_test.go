package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/depthscroll/internal/config"
)

func TestLaneScheduleAllows(t *testing.T) {
	s := LaneSchedule{3: 10}

	tests := []struct {
		name     string
		lane     int
		depth    float64
		expected bool
	}{
		{"unscheduled lane", -4, 1, true},
		{"before next depth", 3, 9.9, false},
		{"at next depth", 3, 10, true},
		{"after next depth", 3, 12, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := s.Allows(tc.lane, tc.depth); got != tc.expected {
				t.Errorf("Allows(%d, %f) = %v, expected %v", tc.lane, tc.depth, got, tc.expected)
			}
		})
	}
}

func TestSpawnerFirstRow(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	ls := NewLaneSpawner(cfg.Obstacles, cfg.Scroll.DepthBias)
	var reg Registry
	rng := rand.New(rand.NewSource(1))

	if rows := ls.Update(cfg.Obstacles.RowSpacing/2, &reg, rng); len(rows) != 0 {
		t.Fatalf("no row should be due before RowSpacing, got %d", len(rows))
	}

	worldZ := cfg.Obstacles.RowSpacing
	rows := ls.Update(worldZ, &reg, rng)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %d", len(rows))
	}
	if rows[0].Empty {
		t.Fatal("row should not be empty with EmptyRowChance 0")
	}
	if reg.Count(IsObstacle) == 0 {
		t.Fatal("row should place obstacles")
	}

	for _, e := range reg.Snapshot() {
		if e.Lane > -innerLaneLimit && e.Lane < innerLaneLimit {
			t.Errorf("obstacle placed in inner lane %d", e.Lane)
		}
		rel := e.RelDepth(worldZ, cfg.Scroll.DepthBias)
		if math.Abs(rel-cfg.Obstacles.SpawnDistance) > 1e-9 {
			t.Errorf("new row relative depth = %f, expected %f", rel, cfg.Obstacles.SpawnDistance)
		}
		if e.X != float64(e.Lane)*cfg.Obstacles.LaneWidth {
			t.Errorf("lane %d X = %f", e.Lane, e.X)
		}
		jitter := cfg.Obstacles.SizeJitter
		if e.Size < 1-jitter || e.Size > 1+jitter {
			t.Errorf("size %f outside jitter range", e.Size)
		}
	}
}

func TestSpawnerAlternatesKinds(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	cfg.Obstacles.Patterns = [][]int{{-3, 3, -5, 5}}
	ls := NewLaneSpawner(cfg.Obstacles, cfg.Scroll.DepthBias)
	var reg Registry

	ls.Update(cfg.Obstacles.RowSpacing, &reg, rand.New(rand.NewSource(1)))

	got := reg.Snapshot()
	if len(got) != 4 {
		t.Fatalf("expected 4 obstacles, got %d", len(got))
	}
	for i, e := range got {
		expected := KindBush
		if i%2 == 1 {
			expected = KindColumn
		}
		if e.Kind != expected {
			t.Errorf("obstacle %d kind = %s, expected %s", i, e.Kind, expected)
		}
	}
}

func TestSpawnerInnerLanesOnlyPattern(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	cfg.Obstacles.Patterns = [][]int{{-1, 0, 1}}
	ls := NewLaneSpawner(cfg.Obstacles, cfg.Scroll.DepthBias)
	var reg Registry

	rows := ls.Update(cfg.Obstacles.RowSpacing, &reg, rand.New(rand.NewSource(1)))
	if len(rows) != 1 || rows[0].Placed != 0 {
		t.Errorf("inner-lane pattern should produce an empty row, got %+v", rows)
	}
}

func TestSpawnerLaneSpacing(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	cfg.Obstacles.Budget = 1000
	s := New(cfg, 7)

	for i := 0; i < 3000; i++ {
		s.Step(1, Viewport{W: 160, H: 96})
		byLane := make(map[int][]float64)
		for _, e := range s.Entities() {
			if e.Kind.IsObstacle() {
				byLane[e.Lane] = append(byLane[e.Lane], e.Depth)
			}
		}
		for lane, depths := range byLane {
			for a := 0; a < len(depths); a++ {
				for b := a + 1; b < len(depths); b++ {
					if d := math.Abs(depths[a] - depths[b]); d < cfg.Obstacles.LaneMinSpacing-1e-9 {
						t.Fatalf("frame %d lane %d: obstacles %f apart, expected >= %f", i, lane, d, cfg.Obstacles.LaneMinSpacing)
					}
				}
			}
		}
	}
}

func TestSpawnerBudget(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	cfg.Obstacles.Budget = 5
	s := New(cfg, 3)

	sawFull := false
	for i := 0; i < 2000; i++ {
		s.Step(1, Viewport{W: 160, H: 96})
		n := s.ObstacleCount()
		if n > cfg.Obstacles.Budget {
			t.Fatalf("frame %d: %d obstacles exceeds budget %d", i, n, cfg.Obstacles.Budget)
		}
		if n == cfg.Obstacles.Budget {
			sawFull = true
		}
	}
	if !sawFull {
		t.Error("budget was never reached; test does not exercise the cap")
	}
}

func TestSpawnerCatchesUpRows(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 100
	o := cfg.Obstacles

	tests := []struct {
		name     string
		lag      float64 // In row spacings
		expected int
	}{
		{"single row", 1, 1},
		{"five rows behind", 5, 5},
		{"at the frame cap", float64(o.MaxRowsPerFrame), o.MaxRowsPerFrame},
		{"beyond the frame cap", 3 * float64(o.MaxRowsPerFrame), o.MaxRowsPerFrame},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ls := NewLaneSpawner(o, cfg.Scroll.DepthBias)
			var reg Registry
			rows := ls.Update(tc.lag*o.RowSpacing, &reg, rand.New(rand.NewSource(1)))
			if len(rows) != tc.expected {
				t.Errorf("lag of %g row spacings: %d rows, expected %d", tc.lag, len(rows), tc.expected)
			}
		})
	}
}

func TestSpawnerBacklogKeepsRowsAway(t *testing.T) {
	cfg := config.DefaultSceneConfig()
	cfg.Obstacles.EmptyRowChance = 0
	cfg.Obstacles.Budget = 10000
	o := cfg.Obstacles
	ls := NewLaneSpawner(o, cfg.Scroll.DepthBias)
	var reg Registry
	rng := rand.New(rand.NewSource(1))

	worldZ := 50 * o.RowSpacing
	floor := o.SpawnDistance - float64(o.MaxRowsPerFrame)*o.RowSpacing

	// The backlog drains over several frames, MaxRowsPerFrame at a time
	total := 0
	for frame := 0; frame < 10; frame++ {
		rows := ls.Update(worldZ, &reg, rng)
		if len(rows) > o.MaxRowsPerFrame {
			t.Fatalf("frame %d: %d rows exceeds the per-frame cap", frame, len(rows))
		}
		total += len(rows)
	}
	if total != 50 {
		t.Errorf("backlog produced %d rows, expected 50", total)
	}

	for _, e := range reg.Snapshot() {
		if rel := e.RelDepth(worldZ, cfg.Scroll.DepthBias); rel < floor-1e-9 {
			t.Errorf("late row spawned at relative depth %f, below %f", rel, floor)
		}
	}
}
