package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	scoreboardcmd "github.com/louisbranch/pitchside/internal/cmd/scoreboard"
	"github.com/louisbranch/pitchside/internal/platform/config"
)

func main() {
	cfg, err := scoreboardcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[PITCHSIDE] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := scoreboardcmd.Run(ctx, cfg); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		config.Exitf("pitchside: %v", err)
	}
}
