package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/profile"
)

func main() {
	debug := flag.Bool("debug", false, "log gameplay events and show the FPS overlay")
	levelName := flag.String("level", "level1", "level name in levels/ (basename, .json optional)")
	lives := flag.Int("lives", 0, "starting lives (0 uses game.yaml)")
	profileMode := flag.String("profile", "", "write a cpu or mem profile to the working directory")
	watch := flag.Bool("watch", false, "reload prefabs, scripts and levels when they change on disk")
	scale := flag.Int("scale", 3, "window scale factor")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		log.Fatalf("unknown -profile mode %q (want cpu or mem)", *profileMode)
	}

	game, err := NewGame(Config{
		Level: *levelName,
		Debug: *debug,
		Lives: *lives,
		Watch: *watch,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer game.Close()

	if *scale < 1 {
		*scale = 1
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(game.tuning.ScreenWidth**scale, game.tuning.ScreenHeight**scale)
	ebiten.SetWindowTitle("platformer")

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		log.Fatal(err)
	}
}
