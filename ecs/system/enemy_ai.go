package system

import (
	"log"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

// EnemyAISystem moves enemies back and forth between their patrol bounds.
type EnemyAISystem struct {
	state *GameState

	loadScript func(name string) ([]byte, error)
	scripts    map[string]*tengo.Compiled
	failed     map[string]bool
}

func NewEnemyAISystem(state *GameState) *EnemyAISystem {
	return &EnemyAISystem{
		state:      state,
		loadScript: prefabs.LoadScript,
		scripts:    map[string]*tengo.Compiled{},
		failed:     map[string]bool{},
	}
}

func (s *EnemyAISystem) Update(w *ecs.World, dt float64) {
	if s == nil || w == nil || !s.state.Playing() {
		return
	}

	ecs.ForEach2(w, component.EnemyComponent.Kind(), component.PositionComponent.Kind(), func(e ecs.Entity, enemy *component.Enemy, pos *component.Position) {
		if enemy.Direction == 0 {
			enemy.Direction = 1
		}
		if enemy.Script != "" && s.runScript(e, enemy, pos, dt) {
			return
		}
		patrol(enemy, pos, dt)
	})
}

func patrol(enemy *component.Enemy, pos *component.Position, dt float64) {
	pos.X += enemy.Direction * enemy.Speed * dt
	if pos.X >= enemy.MaxX {
		pos.X = enemy.MaxX
		enemy.Direction = -1
	} else if pos.X <= enemy.MinX {
		pos.X = enemy.MinX
		enemy.Direction = 1
	}
}

// runScript evaluates the enemy's patrol script. Scripts read x, min_x,
// max_x, speed, dir and dt and write back x and dir.
func (s *EnemyAISystem) runScript(e ecs.Entity, enemy *component.Enemy, pos *component.Position, dt float64) bool {
	if s.failed[enemy.Script] {
		return false
	}
	compiled, err := s.compiled(enemy.Script)
	if err != nil {
		log.Printf("enemy ai: entity=%v script %s: %v", e, enemy.Script, err)
		s.failed[enemy.Script] = true
		return false
	}

	vars := map[string]float64{
		"x":     pos.X,
		"min_x": enemy.MinX,
		"max_x": enemy.MaxX,
		"speed": enemy.Speed,
		"dir":   enemy.Direction,
		"dt":    dt,
	}
	for name, v := range vars {
		if err := compiled.Set(name, v); err != nil {
			log.Printf("enemy ai: entity=%v set %s: %v", e, name, err)
			return false
		}
	}
	if err := compiled.Run(); err != nil {
		log.Printf("enemy ai: entity=%v run %s: %v", e, enemy.Script, err)
		s.failed[enemy.Script] = true
		return false
	}

	pos.X = compiled.Get("x").Float()
	if dir := compiled.Get("dir").Float(); dir != 0 {
		enemy.Direction = dir
	}
	return true
}

func (s *EnemyAISystem) compiled(name string) (*tengo.Compiled, error) {
	if c, ok := s.scripts[name]; ok {
		return c, nil
	}
	src, err := s.loadScript(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	for _, v := range []string{"x", "min_x", "max_x", "speed", "dir", "dt"} {
		_ = script.Add(v, 0.0)
	}
	c, err := script.Compile()
	if err != nil {
		return nil, err
	}
	s.scripts[name] = c
	return c, nil
}

// Cleanup drops compiled scripts.
func (s *EnemyAISystem) Cleanup() {
	if s == nil {
		return
	}
	s.scripts = map[string]*tengo.Compiled{}
	s.failed = map[string]bool{}
}
