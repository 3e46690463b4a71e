// Package main runs the Pleroma Springs Foundation website.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	webcmd "github.com/pleromasprings/website/internal/cmd/web"
	entrypoint "github.com/pleromasprings/website/internal/platform/cmd"
)

func main() {
	log.SetPrefix("[WEB] ")
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse config: %v", err)
	}

	ctx, stop := entrypoint.SignalContext(context.Background())
	defer stop()
	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatalf("web: %v", err)
	}
}
