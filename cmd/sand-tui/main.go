package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"mad-sand/internal/app"
	"mad-sand/internal/audio"
	"mad-sand/internal/core"
	_ "mad-sand/internal/sims/sand"
	"mad-sand/internal/term"
)

func main() {
	cfg := app.NewConfig()
	cfg.Width, cfg.Height = 80, 48
	cfg.TPS = 30
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
}

func run(cfg *app.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	factory, ok := core.Sims()[cfg.Sim]
	if !ok {
		return fmt.Errorf("unknown sim %q", cfg.Sim)
	}
	sim := factory(cfg.SimOptions())
	sim.Reset(cfg.Seed)

	var cue app.Trigger
	if cfg.Sound {
		c := audio.NewCue()
		if err := c.Initialize(); err != nil {
			log.Printf("sound disabled: %v", err)
		} else {
			defer c.Close()
			cue = c
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	session := app.NewSession(sim, cfg.Seed, cue)
	session.Brush().Select(cfg.BrushMaterial())
	viewer := term.New(screen, session, cfg.TPS)
	if err := viewer.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}
