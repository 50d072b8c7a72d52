package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/secmon-lab/slacktable/pkg/cli"
)

var version = "dev"

func main() {
	// Load .env for local development. All configuration is environment
	// driven, so a missing file is not an error.
	_ = godotenv.Load()

	if err := cli.Run(context.Background(), os.Args, version); err != nil {
		os.Exit(1)
	}
}
