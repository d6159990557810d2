// Package config provides YAML/TOML scene configuration loading and pace
// presets for the scroller.
package config

// SceneConfig contains all tuning for the simulation and the render passes.
type SceneConfig struct {
	Clock       ClockConfig      `yaml:"clock" toml:"clock"`
	Scroll      ScrollConfig     `yaml:"scroll" toml:"scroll"`
	Ground      GroundConfig     `yaml:"ground" toml:"ground"`
	Obstacles   ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Projectiles ProjectileConfig `yaml:"projectiles" toml:"projectiles"`
	Actor       ActorConfig      `yaml:"actor" toml:"actor"`
	Render      RenderConfig     `yaml:"render" toml:"render"`
}

// ClockConfig defines frame-time smoothing.
type ClockConfig struct {
	Smoothing float64 `yaml:"smoothing" toml:"smoothing"` // EMA factor applied to raw samples
	MinDelta  float64 `yaml:"min_delta" toml:"min_delta"` // Seconds; raw samples are clamped up to this
	MaxDelta  float64 `yaml:"max_delta" toml:"max_delta"` // Seconds; stalls are clamped down to this
	TargetHz  float64 `yaml:"target_hz" toml:"target_hz"` // Rate at which scale == 1
}

// ScrollConfig defines camera/world advancement and the shared depth constants.
type ScrollConfig struct {
	GroundSpeed     float64 `yaml:"ground_speed" toml:"ground_speed"`           // World units per frame at scale 1
	ObjectSpeedMult float64 `yaml:"object_speed_mult" toml:"object_speed_mult"` // worldZ runs this much faster than cameraZ
	TileSize        float64 `yaml:"tile_size" toml:"tile_size"`                 // Ground tile depth; cameraZ wraps at this
	DepthBias       float64 `yaml:"depth_bias" toml:"depth_bias"`               // Added to ground-anchored relative depths
	NearPlane       float64 `yaml:"near_plane" toml:"near_plane"`               // Entities closer than this are despawned
}

// GroundConfig defines the checkerboard ground pass.
type GroundConfig struct {
	TileWidth      float64 `yaml:"tile_width" toml:"tile_width"`             // Lateral tile size in world units
	MaxBands       int     `yaml:"max_bands" toml:"max_bands"`               // Probe limit toward the horizon
	MinBandPx      float64 `yaml:"min_band_px" toml:"min_band_px"`           // Bands thinner than this are skipped
	SeamOverlapPx  float64 `yaml:"seam_overlap_px" toml:"seam_overlap_px"`   // Vertical overlap between bands
	BottomExtendPx float64 `yaml:"bottom_extend_px" toml:"bottom_extend_px"` // Nearest band runs this far past the bottom
	ColorA         string  `yaml:"color_a" toml:"color_a"`
	ColorB         string  `yaml:"color_b" toml:"color_b"`
	SkyColor       string  `yaml:"sky_color" toml:"sky_color"`
}

// KindConfig defines the look of one obstacle kind.
type KindConfig struct {
	BaseSize float64 `yaml:"base_size" toml:"base_size"` // Width in world units
	Aspect   float64 `yaml:"aspect" toml:"aspect"`       // Height / width
	Color    string  `yaml:"color" toml:"color"`
}

// ObstacleConfig defines lane spawning.
type ObstacleConfig struct {
	RowSpacing      float64    `yaml:"row_spacing" toml:"row_spacing"`           // worldZ distance between rows
	SpawnDistance   float64    `yaml:"spawn_distance" toml:"spawn_distance"`     // Relative depth of a new row
	Budget          int        `yaml:"budget" toml:"budget"`                     // Max live obstacles
	EmptyRowChance  int        `yaml:"empty_row_chance" toml:"empty_row_chance"` // Percent of rows left empty
	LaneWidth       float64    `yaml:"lane_width" toml:"lane_width"`             // World units between lanes
	LaneMinSpacing  float64    `yaml:"lane_min_spacing" toml:"lane_min_spacing"` // Min depth gap within a lane
	MaxRowsPerFrame int        `yaml:"max_rows_per_frame" toml:"max_rows_per_frame"`
	SizeJitter      float64    `yaml:"size_jitter" toml:"size_jitter"` // Fraction around 1.0
	Patterns        [][]int    `yaml:"patterns" toml:"patterns"`       // Lane index subsets
	Bush            KindConfig `yaml:"bush" toml:"bush"`
	Column          KindConfig `yaml:"column" toml:"column"`
}

// ProjectileConfig defines the projectile subsystem.
type ProjectileConfig struct {
	CooldownFrames   float64 `yaml:"cooldown_frames" toml:"cooldown_frames"`
	Cap              int     `yaml:"cap" toml:"cap"`
	SpawnRelDepth    float64 `yaml:"spawn_rel_depth" toml:"spawn_rel_depth"`
	RelMin           float64 `yaml:"rel_min" toml:"rel_min"`
	RelMax           float64 `yaml:"rel_max" toml:"rel_max"`
	FarBound         float64 `yaml:"far_bound" toml:"far_bound"`
	MaxAgeFrames     int     `yaml:"max_age_frames" toml:"max_age_frames"`
	ClosureSpeed     float64 `yaml:"closure_speed" toml:"closure_speed"` // Extra depth per frame beyond worldZ
	DriftStart       float64 `yaml:"drift_start" toml:"drift_start"`
	DriftEnd         float64 `yaml:"drift_end" toml:"drift_end"`
	FollowLerp       float64 `yaml:"follow_lerp" toml:"follow_lerp"`
	SnapMinPx        float64 `yaml:"snap_min_px" toml:"snap_min_px"`
	SnapViewportFrac float64 `yaml:"snap_viewport_frac" toml:"snap_viewport_frac"`
	SnapLerpFloor    float64 `yaml:"snap_lerp_floor" toml:"snap_lerp_floor"`
	FogNear          float64 `yaml:"fog_near" toml:"fog_near"`
	FogFar           float64 `yaml:"fog_far" toml:"fog_far"`
	Size             float64 `yaml:"size" toml:"size"` // World units
	Color            string  `yaml:"color" toml:"color"`
}

// ActorConfig defines the autonomous player sprite.
type ActorConfig struct {
	MaxNormX      float64 `yaml:"max_norm_x" toml:"max_norm_x"`
	MaxNormY      float64 `yaml:"max_norm_y" toml:"max_norm_y"`
	AccelX        float64 `yaml:"accel_x" toml:"accel_x"`
	AccelY        float64 `yaml:"accel_y" toml:"accel_y"`
	MaxSpeedX     float64 `yaml:"max_speed_x" toml:"max_speed_x"`
	MaxSpeedY     float64 `yaml:"max_speed_y" toml:"max_speed_y"`
	StopEpsilon   float64 `yaml:"stop_epsilon" toml:"stop_epsilon"`
	Friction      float64 `yaml:"friction" toml:"friction"` // Velocity kept per frame while waiting
	MoveFramesMin int     `yaml:"move_frames_min" toml:"move_frames_min"`
	MoveFramesMax int     `yaml:"move_frames_max" toml:"move_frames_max"`
	WaitFramesMin int     `yaml:"wait_frames_min" toml:"wait_frames_min"`
	WaitFramesMax int     `yaml:"wait_frames_max" toml:"wait_frames_max"`
	Depth         float64 `yaml:"depth" toml:"depth"` // Fixed render depth
	WorldHeight   float64 `yaml:"world_height" toml:"world_height"`
	Aspect        float64 `yaml:"aspect" toml:"aspect"` // Width / height
	MaxHeightFrac float64 `yaml:"max_height_frac" toml:"max_height_frac"`
	SpanXFrac     float64 `yaml:"span_x_frac" toml:"span_x_frac"` // Viewport width covered by norm 1.0
	SpanYFrac     float64 `yaml:"span_y_frac" toml:"span_y_frac"`
	BaseYFrac     float64 `yaml:"base_y_frac" toml:"base_y_frac"` // Foot line at norm 0
	BobAmpPx      float64 `yaml:"bob_amp_px" toml:"bob_amp_px"`
	BobHz         float64 `yaml:"bob_hz" toml:"bob_hz"`
	MuzzleFrac    float64 `yaml:"muzzle_frac" toml:"muzzle_frac"` // Muzzle height as a fraction of sprite height
	Color         string  `yaml:"color" toml:"color"`
}

// RenderConfig defines projection and sprite compositing.
type RenderConfig struct {
	HorizonFrac    float64 `yaml:"horizon_frac" toml:"horizon_frac"`
	FocalFrac      float64 `yaml:"focal_frac" toml:"focal_frac"`
	DepthEpsilon   float64 `yaml:"depth_epsilon" toml:"depth_epsilon"`
	Gamma          float64 `yaml:"gamma" toml:"gamma"`                 // Obstacle scale exponent, < 1
	PitchFlatten   float64 `yaml:"pitch_flatten" toml:"pitch_flatten"` // Fraction of ground offset removed
	DownOffsetFrac float64 `yaml:"down_offset_frac" toml:"down_offset_frac"`
	DeadZoneFrac   float64 `yaml:"dead_zone_frac" toml:"dead_zone_frac"`
	CullMarginFrac float64 `yaml:"cull_margin_frac" toml:"cull_margin_frac"`
	ConsiderNear   float64 `yaml:"consider_near" toml:"consider_near"`
	ConsiderFar    float64 `yaml:"consider_far" toml:"consider_far"`
	FogStartFrac   float64 `yaml:"fog_start_frac" toml:"fog_start_frac"` // Of spawn distance
	FogEndFrac     float64 `yaml:"fog_end_frac" toml:"fog_end_frac"`
}
