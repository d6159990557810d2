package config

import (
	_ "embed"
)

//go:embed defaults/scene.yaml
var defaultSceneYAML []byte

// DefaultSceneConfig returns the hardcoded scene configuration.
// It mirrors defaults/scene.yaml and is used when the embedded file fails to parse.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Clock: ClockConfig{
			Smoothing: 0.22,
			MinDelta:  1.0 / 240,
			MaxDelta:  1.0 / 20,
			TargetHz:  60,
		},
		Scroll: ScrollConfig{
			GroundSpeed:     0.06,
			ObjectSpeedMult: 1.5,
			TileSize:        1.5,
			DepthBias:       1.2,
			NearPlane:       0.35,
		},
		Ground: GroundConfig{
			TileWidth:      1.5,
			MaxBands:       96,
			MinBandPx:      0.75,
			SeamOverlapPx:  1,
			BottomExtendPx: 4,
			ColorA:         "#3f7d3a",
			ColorB:         "#4f9a46",
			SkyColor:       "#8ec5ea",
		},
		Obstacles: ObstacleConfig{
			RowSpacing:      2.5,
			SpawnDistance:   36,
			Budget:          40,
			EmptyRowChance:  30,
			LaneWidth:       1.4,
			LaneMinSpacing:  5,
			MaxRowsPerFrame: 8,
			SizeJitter:      0.15,
			Patterns: [][]int{
				{-2, 2},
				{-3, 3},
				{-4, 4, -2},
				{-5, 5},
				{-6, 2, 4},
				{-3, -1, 1, 3},
				{0, -4, 5},
				{-5, -2, 3, 6},
			},
			Bush:   KindConfig{BaseSize: 1.1, Aspect: 0.7, Color: "#2f6b2a"},
			Column: KindConfig{BaseSize: 0.55, Aspect: 3.2, Color: "#b9b2a3"},
		},
		Projectiles: ProjectileConfig{
			CooldownFrames:   18,
			Cap:              6,
			SpawnRelDepth:    0.55,
			RelMin:           0.55,
			RelMax:           9,
			FarBound:         9,
			MaxAgeFrames:     480,
			ClosureSpeed:     0.05,
			DriftStart:       0.15,
			DriftEnd:         0.9,
			FollowLerp:       0.35,
			SnapMinPx:        12,
			SnapViewportFrac: 0.01,
			SnapLerpFloor:    0.9,
			FogNear:          6,
			FogFar:           9,
			Size:             0.12,
			Color:            "#ffd34d",
		},
		Actor: ActorConfig{
			MaxNormX:      0.8,
			MaxNormY:      0.6,
			AccelX:        0.0022,
			AccelY:        0.0018,
			MaxSpeedX:     0.028,
			MaxSpeedY:     0.02,
			StopEpsilon:   0.015,
			Friction:      0.9,
			MoveFramesMin: 40,
			MoveFramesMax: 110,
			WaitFramesMin: 25,
			WaitFramesMax: 140,
			Depth:         2.6,
			WorldHeight:   0.55,
			Aspect:        0.6,
			MaxHeightFrac: 0.28,
			SpanXFrac:     0.38,
			SpanYFrac:     0.12,
			BaseYFrac:     0.86,
			BobAmpPx:      2,
			BobHz:         1.6,
			MuzzleFrac:    0.85,
			Color:         "#d6453d",
		},
		Render: RenderConfig{
			HorizonFrac:    0.65,
			FocalFrac:      0.95,
			DepthEpsilon:   0.001,
			Gamma:          0.82,
			PitchFlatten:   0.12,
			DownOffsetFrac: 0.012,
			DeadZoneFrac:   0.07,
			CullMarginFrac: 0.2,
			ConsiderNear:   0.35,
			ConsiderFar:    40,
			FogStartFrac:   0.5,
			FogEndFrac:     1.1,
		},
	}
}

// DefaultYAML returns the embedded default scene YAML.
func DefaultYAML() []byte {
	return defaultSceneYAML
}
