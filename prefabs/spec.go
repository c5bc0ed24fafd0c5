package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadSpec decodes the named YAML prefab into T.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type ColliderSpec struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
}

type SpriteSpec struct {
	Color    YAMLColor `yaml:"color"`
	AltColor YAMLColor `yaml:"alt_color"`
}

type AnimationSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FrameTime  float64 `yaml:"frame_time"`
}

type PlayerSpec struct {
	Name         string       `yaml:"name"`
	Collider     ColliderSpec `yaml:"collider"`
	Sprite       SpriteSpec   `yaml:"sprite"`
	MaxFallSpeed float64      `yaml:"max_fall_speed"`
	MaxJumps     int          `yaml:"max_jumps"`
}

type EnemySpec struct {
	Name     string       `yaml:"name"`
	Collider ColliderSpec `yaml:"collider"`
	Sprite   SpriteSpec   `yaml:"sprite"`
	Speed    float64      `yaml:"speed"`
	Points   int          `yaml:"points"`
	Script   string       `yaml:"script"`
}

type CollectibleSpec struct {
	Name      string        `yaml:"name"`
	Collider  ColliderSpec  `yaml:"collider"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
	Points    int           `yaml:"points"`
}

type PlatformSpec struct {
	Name         string     `yaml:"name"`
	Solid        SpriteSpec `yaml:"solid"`
	OneWay       SpriteSpec `yaml:"one_way"`
	OneWayHeight float64    `yaml:"one_way_height"`
}

// Prefabs groups every entity prefab used to build a level.
type Prefabs struct {
	Player      PlayerSpec
	Enemy       EnemySpec
	Collectible CollectibleSpec
	Platform    PlatformSpec
}

// LoadPrefabs loads player.yaml, enemy.yaml, collectible.yaml and
// platform.yaml.
func LoadPrefabs() (*Prefabs, error) {
	var p Prefabs
	var err error
	if p.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return nil, err
	}
	if p.Enemy, err = LoadSpec[EnemySpec]("enemy.yaml"); err != nil {
		return nil, err
	}
	if p.Collectible, err = LoadSpec[CollectibleSpec]("collectible.yaml"); err != nil {
		return nil, err
	}
	if p.Platform, err = LoadSpec[PlatformSpec]("platform.yaml"); err != nil {
		return nil, err
	}
	return &p, nil
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}

// Or returns the decoded colour, or fallback when none was set.
func (c YAMLColor) Or(fallback color.Color) color.Color {
	if c.Color == nil {
		return fallback
	}
	return c.Color
}
