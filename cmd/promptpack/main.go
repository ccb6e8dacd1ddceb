package main

import (
	"os"

	"github.com/bethropolis/promptpack/internal/app"
	"github.com/bethropolis/promptpack/internal/config"
)

func main() {
	cfg := config.New()

	application := app.New(cfg)
	code := application.Run()

	// Close the output file (if any) before exiting; os.Exit skips defers.
	application.Close()
	os.Exit(code)
}
