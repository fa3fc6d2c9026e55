package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/haowjy/meridian-g4f-go/internal/cli"
)

func main() {
	// Best-effort: a missing .env just means settings come from the
	// environment or config file.
	_ = godotenv.Load()

	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
