package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"git.lost.host/meutraa/hitline/internal/config"
)

func main() {
	if err := run(); nil != err {
		log.Fatalln(err)
	}
}

func run() error {
	cfg, err := config.Parse(os.Args[1:])
	if nil != err {
		return err
	}

	// The terminal belongs to the game while it runs
	logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if nil != err {
		return fmt.Errorf("unable to open log file: %w", err)
	}
	defer logFile.Close()
	log.SetOutput(logFile)

	p := &Program{Config: cfg}
	if err := p.Init(); nil != err {
		return err
	}
	defer p.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	snap, err := p.Run(ctx)
	if nil != err {
		return err
	}
	fmt.Printf("%v: %v points, max combo %v\n", snap.Track, snap.Score, snap.MaxCombo)
	return nil
}
