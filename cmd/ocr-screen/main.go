package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/whispra/ocr-sidecar/internal/config"
	"github.com/whispra/ocr-sidecar/internal/engine"
	"github.com/whispra/ocr-sidecar/internal/ocr"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

const usage = "Usage: ocr-screen <image_path> [language] [use_gpu]"

// request is one parsed one-shot invocation.
type request struct {
	imagePath string
	language  string
	useGPU    bool
}

// parseRequest interprets the positional arguments after the program name.
// The reserved words (help, version, check) are intercepted before this
// point; a capture named like one must be given as a path, e.g. "./check".
func parseRequest(args []string) request {
	req := request{
		imagePath: args[0],
		language:  ocr.DefaultLanguage,
	}
	if len(args) > 1 {
		req.language = args[1]
	}
	if len(args) > 2 {
		req.useGPU = strings.EqualFold(args[2], "true")
	}
	return req
}

func main() {
	// Configure logging to stderr (stdout carries the JSON result)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("ocr-screen %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("ocr-screen - one-shot screen capture OCR")
			fmt.Println()
			fmt.Println(usage)
			fmt.Println("       ocr-screen check")
			fmt.Println()
			fmt.Println("Arguments:")
			fmt.Println("  image_path    Path to the capture to recognize")
			fmt.Println("  language      Abstract language code, default \"en\"")
			fmt.Println("  use_gpu       \"true\" to request accelerated inference")
			fmt.Println()
			fmt.Println("The words \"check\", \"help\" and \"version\" are reserved as")
			fmt.Println("subcommands; refer to a capture with such a name by path,")
			fmt.Println("e.g. \"./check\".")
			fmt.Println()
			fmt.Println("Environment variables:")
			fmt.Printf("  %s         Standard trained-data directory\n", config.EnvDataDir)
			fmt.Printf("  %s    Fast trained-data directory\n", config.EnvFastDataDir)
			fmt.Println()
			fmt.Println("The JSON result is printed to stdout; diagnostics go to stderr.")
			return
		case "check":
			runCheck()
			return
		}
	}

	if len(os.Args) < 2 {
		json.NewEncoder(os.Stdout).Encode(ocr.Fail(usage))
		os.Exit(1)
	}

	req := parseRequest(os.Args[1:])
	log.Printf("ocr request: image=%s language=%s use_gpu=%t", req.imagePath, req.language, req.useGPU)

	cfg := config.Load()
	cache := engine.NewCache(engine.DefaultFactory(cfg))
	resp := ocr.Run(cache, req.imagePath, req.language, req.useGPU)

	printJSON(resp)
}

// runCheck probes the OCR backend and reports availability as JSON.
func runCheck() {
	info := engine.Probe(config.Load())
	printJSON(info)
}

func printJSON(v interface{}) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		log.Fatalf("failed to encode result: %v", err)
	}
}
