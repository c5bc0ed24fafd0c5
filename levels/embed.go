// Package levels holds the JSON level layouts shipped with the game.
package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

//go:embed *.json
var LevelsFS embed.FS

// Entity types placed by a level.
const (
	EntityEnemy       = "enemy"
	EntityCollectible = "collectible"
)

// Level is a static layout: solid and one-way platforms plus the enemies
// and collectibles placed on them. Coordinates are world pixels, y down.
type Level struct {
	Name      string     `json:"name,omitempty"`
	Width     float64    `json:"width"`
	Height    float64    `json:"height"`
	SpawnX    float64    `json:"spawn_x"`
	SpawnY    float64    `json:"spawn_y"`
	Platforms []Platform `json:"platforms"`
	Entities  []Entity   `json:"entities,omitempty"`
}

type Platform struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"w"`
	Height float64 `json:"h"`
	OneWay bool    `json:"one_way,omitempty"`
}

// Entity places a prefab. Props override prefab defaults, e.g. an enemy's
// patrol bounds or a collectible's points.
type Entity struct {
	Type  string         `json:"type"`
	X     float64        `json:"x"`
	Y     float64        `json:"y"`
	Props map[string]any `json:"props,omitempty"`
}

// FloatProp returns a numeric prop, or fallback when absent or not a number.
func (e Entity) FloatProp(key string, fallback float64) float64 {
	v, ok := e.Props[key]
	if !ok {
		return fallback
	}
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	}
	return fallback
}

// StringProp returns a string prop, or fallback.
func (e Entity) StringProp(key, fallback string) string {
	if s, ok := e.Props[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

// Load reads levels/<name> from disk when present so edits are picked up
// by hot reload, otherwise from the embedded copy.
func Load(name string) (*Level, error) {
	clean := cleanLevelPath(name)
	data, err := os.ReadFile(filepath.Join("levels", clean))
	if err != nil {
		data, err = LevelsFS.ReadFile(clean)
	}
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("levels: load %s: %w", name, err)
	}
	if lvl.Name == "" {
		lvl.Name = strings.TrimSuffix(clean, ".json")
	}
	return lvl, nil
}

// Parse decodes and validates a level document.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, err
	}
	return &lvl, nil
}

// Validate checks dimensions and entity types.
func (l *Level) Validate() error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("invalid level dimensions: %gx%g", l.Width, l.Height)
	}
	for i, p := range l.Platforms {
		if p.Width <= 0 || p.Height <= 0 {
			return fmt.Errorf("platform %d: invalid size %gx%g", i, p.Width, p.Height)
		}
	}
	for i, e := range l.Entities {
		switch e.Type {
		case EntityEnemy, EntityCollectible:
		default:
			return fmt.Errorf("entity %d: unknown type %q", i, e.Type)
		}
	}
	return nil
}

// Names lists the embedded levels.
func Names() []string {
	entries, err := LevelsFS.ReadDir(".")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func cleanLevelPath(name string) string {
	s := filepath.ToSlash(name)
	s = strings.TrimPrefix(s, "levels/")
	if !strings.HasSuffix(s, ".json") {
		s += ".json"
	}
	return s
}
