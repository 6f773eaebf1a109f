package main

import (
	"fmt"
	"log"
	"os"

	"github.com/whispra/ocr-sidecar/internal/config"
	"github.com/whispra/ocr-sidecar/internal/engine"
	"github.com/whispra/ocr-sidecar/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ocr-service %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("ocr-service - persistent OCR service")
			fmt.Println()
			fmt.Println("Usage: ocr-service")
			fmt.Println()
			fmt.Println("Reads newline-delimited JSON requests on stdin and writes one")
			fmt.Println("JSON response per request to stdout. Request types: ocr, ping,")
			fmt.Println("shutdown. Engine instances are cached per (language, gpu) pair")
			fmt.Println("for the lifetime of the process.")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s         Standard trained-data directory\n", config.EnvDataDir)
			fmt.Printf("  %s    Fast trained-data directory\n", config.EnvFastDataDir)
			return
		}
	}

	// Configure logging to stderr (stdout is for protocol traffic)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	cfg := config.Load()
	cache := engine.NewCache(engine.DefaultFactory(cfg))

	srv := server.New(cache)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
