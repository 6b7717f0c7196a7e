// Package main runs the content administration CLI.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	contentctlcmd "github.com/sukrucan/portfolio/internal/cmd/contentctl"
)

func main() {
	cfg, args, err := contentctlcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CONTENTCTL] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := contentctlcmd.Run(ctx, cfg, args, os.Stdout); err != nil {
		log.Fatalf("contentctl: %v", err)
	}
}
