package main

import (
	"context"
	"fmt"
	"os"

	"github.com/trebuchet-org/neon-deploy/internal/cli"
	"github.com/trebuchet-org/neon-deploy/internal/config"
)

// Set with -ldflags "-X main.version=... -X main.commit=... -X main.date=..."
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	config.SetBuildFlags(version, commit, date)

	if err := cli.Execute(context.Background(), cli.NewRootCmd()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
