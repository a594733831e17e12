package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"

	"torus-life/internal/app"
	"torus-life/internal/term"
	_ "torus-life/pkg/sims/life"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.Load(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	sim, err := cfg.NewSim()
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("creating screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing screen: %v", err)
	}

	host, err := term.New(screen, sim, cfg.TPS, cfg.Seed)
	if err != nil {
		screen.Fini()
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = host.Run(ctx)
	screen.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
