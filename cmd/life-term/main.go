package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"lifefb/internal/app"
	"lifefb/internal/core"
	"lifefb/internal/term"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.BindTerminal(flag.CommandLine)
	logPath := flag.String("log", "", "append lifecycle notices to this file")
	flag.Parse()

	// One pixel per grid cell; the grid is refitted to the terminal on the
	// first frame. -cell and -grid are not defined for this host.
	cfg.CellSize = 1
	cfg.Grid = false
	if cfg.Seed == 0 {
		cfg.Seed = core.TimeSeed()
	}

	// The screen owns stdout, so notices go to a file or nowhere. Fatal
	// errors still reach stderr.
	fatal := log.New(os.Stderr, "life-term: ", 0)
	log.SetOutput(io.Discard)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fatal.Fatal(err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctrl, err := app.NewController(*cfg)
	if err != nil {
		fatal.Fatal(err)
	}
	log.Printf("scene %q seeded with %d", cfg.Scene, cfg.Seed)

	screen, err := tcell.NewScreen()
	if err != nil {
		fatal.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		fatal.Fatalf("initializing screen: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	host := term.New(screen, ctrl, cfg.TPS)
	host.Logf = log.Printf
	err = host.Run(ctx)
	screen.Fini()
	if err != nil {
		fatal.Fatal(err)
	}
}
