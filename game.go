package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/input"
	"github.com/milk9111/platformer/ecs/input/device"
	"github.com/milk9111/platformer/ecs/render/screen"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

type Config struct {
	Level string
	Debug bool
	Lives int
	Watch bool
}

type Game struct {
	cfg Config

	base   system.Tuning
	tuning system.Tuning

	world   *ecs.World
	state   *system.GameState
	keys    *device.Keyboard
	surface *screen.Surface
	watcher *prefabs.Watcher

	pauseUI     *ebitenui.UI
	paused      bool
	quit        bool
	restartHeld bool
}

func NewGame(cfg Config) (*Game, error) {
	base, err := prefabs.LoadSpec[system.Tuning]("game.yaml")
	if err != nil {
		return nil, err
	}

	g := &Game{
		cfg:  cfg,
		base: base.Normalize(),
		keys: device.NewKeyboard(),
	}
	if cfg.Lives > 0 {
		g.base.StartLives = cfg.Lives
	}
	g.pauseUI = NewPauseUI(g)

	if err := g.reset(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher("prefabs", "prefabs/scripts", "levels")
		if err != nil {
			log.Printf("watch: disabled: %v", err)
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

// reset rebuilds the world from the level and prefabs on disk.
func (g *Game) reset() error {
	lvl, err := levels.Load(g.cfg.Level)
	if err != nil {
		return err
	}
	p, err := prefabs.LoadPrefabs()
	if err != nil {
		return err
	}

	tuning := entity.LevelTuning(g.base, lvl)
	world := ecs.NewWorld()
	player, err := entity.BuildLevel(world, lvl, p, tuning)
	if err != nil {
		world.Close()
		return err
	}

	if g.world != nil {
		g.world.Close()
	}
	if g.surface == nil || g.tuning.ScreenWidth != tuning.ScreenWidth || g.tuning.ScreenHeight != tuning.ScreenHeight {
		g.surface = screen.New(tuning.ScreenWidth, tuning.ScreenHeight)
	}
	g.tuning = tuning
	g.world = world
	g.state = system.NewGameState(tuning.StartLives)
	system.Register(world, g.keys, g.surface, g.state, tuning)

	if g.cfg.Debug {
		log.Printf("game: loaded level %s: %d entities, player %v %v", lvl.Name, world.EntityCount(), player, world.ComponentNames(player))
	}
	return nil
}

// Restart starts a new game on the current level.
func (g *Game) Restart() {
	if err := g.reset(); err != nil {
		log.Printf("game: restart: %v", err)
		return
	}
	g.paused = false
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
		return nil
	}

	g.keys.Poll()
	restart := g.keys.Held(input.ButtonRestart)
	if restart && !g.restartHeld {
		g.Restart()
	}
	g.restartHeld = restart

	g.world.Update(1 / float64(ebiten.TPS()))

	for _, evt := range g.world.Events().Drain() {
		if g.cfg.Debug {
			log.Printf("game: %s entity=%v value=%d", evt.Kind, evt.Entity, evt.Value)
		}
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Changes:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %s %s changed, reloading", change.Kind, change.Path)
			if change.Kind == prefabs.ChangePrefab && filepath.Base(change.Path) == "game.yaml" {
				g.reloadTuning()
			}
			g.Restart()
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadTuning() {
	base, err := prefabs.LoadSpec[system.Tuning]("game.yaml")
	if err != nil {
		log.Printf("watch: %v", err)
		return
	}
	g.base = base.Normalize()
	if g.cfg.Lives > 0 {
		g.base.StartLives = g.cfg.Lives
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.surface.Image(), nil)

	if g.paused {
		g.pauseUI.Draw(screen)
	}
	if g.cfg.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("FPS %.0f  E %d", ebiten.ActualFPS(), g.world.EntityCount()), 4, g.tuning.ScreenHeight-16)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.tuning.ScreenWidth, g.tuning.ScreenHeight
}

// Close releases the world and the file watcher.
func (g *Game) Close() {
	if g.world != nil {
		g.world.Close()
	}
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}
