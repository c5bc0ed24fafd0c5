package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// BuildLevel populates w with the level's platforms, enemies and
// collectibles and spawns the player. It returns the player entity.
func BuildLevel(w *ecs.World, lvl *levels.Level, p *prefabs.Prefabs, tuning system.Tuning) (ecs.Entity, error) {
	if w == nil || lvl == nil || p == nil {
		return 0, fmt.Errorf("level: nil world, level or prefabs")
	}

	for i, plat := range lvl.Platforms {
		if _, err := NewPlatform(w, p.Platform, plat); err != nil {
			return 0, fmt.Errorf("level %s: platform %d: %w", lvl.Name, i, err)
		}
	}

	for i, at := range lvl.Entities {
		var err error
		switch at.Type {
		case levels.EntityEnemy:
			_, err = NewEnemy(w, p.Enemy, at)
		case levels.EntityCollectible:
			_, err = NewCollectible(w, p.Collectible, at)
		default:
			err = fmt.Errorf("unknown entity type %q", at.Type)
		}
		if err != nil {
			return 0, fmt.Errorf("level %s: entity %d: %w", lvl.Name, i, err)
		}
	}

	player, err := NewPlayer(w, p.Player, tuning.RespawnX, tuning.RespawnY, tuning.MaxJumps)
	if err != nil {
		return 0, fmt.Errorf("level %s: %w", lvl.Name, err)
	}
	return player, nil
}

// LevelTuning adapts tuning to the level's size and spawn point.
func LevelTuning(t system.Tuning, lvl *levels.Level) system.Tuning {
	if lvl == nil {
		return t
	}
	t.WorldWidth = lvl.Width
	t.WorldHeight = lvl.Height
	t.PitY = lvl.Height + 32
	t.RespawnX = lvl.SpawnX
	t.RespawnY = lvl.SpawnY
	return t
}
