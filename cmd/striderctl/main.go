// Package main starts the striderctl command lifecycle.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	striderctlcmd "github.com/stridelabs/strider/internal/cmd/striderctl"
	"github.com/stridelabs/strider/internal/platform/config"
)

func main() {
	cfg, err := striderctlcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := striderctlcmd.Run(ctx, cfg); err != nil {
		config.Exitf("striderctl: %v", err)
	}
}
