//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"lifefb/internal/app"
	"lifefb/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.Seed == 0 {
		cfg.Seed = core.TimeSeed()
	}
	ctrl, err := app.NewController(*cfg)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("scene %q seeded with %d", cfg.Scene, cfg.Seed)

	w, h := ctrl.Renderer().Extent(ctrl.Sim().Size())
	ebiten.SetWindowTitle(ctrl.Status())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	if err := ebiten.RunGame(app.New(ctrl)); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
