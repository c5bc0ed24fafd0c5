package system

// Tuning holds gameplay constants. It is decoded from prefabs/game.yaml.
type Tuning struct {
	ScreenWidth  int     `yaml:"screen_width"`
	ScreenHeight int     `yaml:"screen_height"`
	WorldWidth   float64 `yaml:"world_width"`
	WorldHeight  float64 `yaml:"world_height"`

	Gravity      float64 `yaml:"gravity"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PitY         float64 `yaml:"pit_y"`

	MoveAccel     float64 `yaml:"move_accel"`
	MaxSpeed      float64 `yaml:"max_speed"`
	Friction      float64 `yaml:"friction"`
	StopThreshold float64 `yaml:"stop_threshold"`
	JumpSpeed     float64 `yaml:"jump_speed"`
	MaxJumps      int     `yaml:"max_jumps"`

	StartLives int     `yaml:"start_lives"`
	RespawnX   float64 `yaml:"respawn_x"`
	RespawnY   float64 `yaml:"respawn_y"`

	StompBounce      float64 `yaml:"stomp_bounce"`
	KnockbackX       float64 `yaml:"knockback_x"`
	KnockbackY       float64 `yaml:"knockback_y"`
	InvulnerableTime float64 `yaml:"invulnerable_time"`

	CameraSpeed float64 `yaml:"camera_speed"`
}

// DefaultTuning mirrors the embedded prefabs/game.yaml.
func DefaultTuning() Tuning {
	return Tuning{
		ScreenWidth:  320,
		ScreenHeight: 180,
		WorldWidth:   960,
		WorldHeight:  180,

		Gravity:      600,
		MaxFallSpeed: 400,
		PitY:         212,

		MoveAccel:     900,
		MaxSpeed:      120,
		Friction:      0.85,
		StopThreshold: 0.1,
		JumpSpeed:     260,
		MaxJumps:      2,

		StartLives: 3,
		RespawnX:   32,
		RespawnY:   100,

		StompBounce:      180,
		KnockbackX:       140,
		KnockbackY:       120,
		InvulnerableTime: 1,

		CameraSpeed: 5,
	}
}

// Normalize fills zero fields from DefaultTuning so a partial YAML file
// still yields a playable configuration.
func (t Tuning) Normalize() Tuning {
	d := DefaultTuning()
	if t.ScreenWidth <= 0 {
		t.ScreenWidth = d.ScreenWidth
	}
	if t.ScreenHeight <= 0 {
		t.ScreenHeight = d.ScreenHeight
	}
	if t.WorldWidth <= 0 {
		t.WorldWidth = d.WorldWidth
	}
	if t.WorldHeight <= 0 {
		t.WorldHeight = d.WorldHeight
	}
	if t.MaxFallSpeed <= 0 {
		t.MaxFallSpeed = d.MaxFallSpeed
	}
	if t.PitY <= 0 {
		t.PitY = t.WorldHeight + 32
	}
	if t.Friction <= 0 || t.Friction > 1 {
		t.Friction = d.Friction
	}
	if t.StopThreshold <= 0 {
		t.StopThreshold = d.StopThreshold
	}
	if t.MaxJumps <= 0 {
		t.MaxJumps = d.MaxJumps
	}
	if t.StartLives <= 0 {
		t.StartLives = d.StartLives
	}
	if t.CameraSpeed <= 0 {
		t.CameraSpeed = d.CameraSpeed
	}
	return t
}
