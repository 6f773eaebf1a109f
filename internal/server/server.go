package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/whispra/ocr-sidecar/internal/engine"
	"github.com/whispra/ocr-sidecar/internal/ocr"
)

// Server runs the persistent OCR service: newline-delimited JSON requests on
// stdin, one JSON response per request on stdout. Requests are processed
// strictly in order, one at a time.
type Server struct {
	cache *engine.Cache
	in    io.Reader
	out   io.Writer
}

// Request is one incoming service message.
type Request struct {
	Type      string `json:"type"`
	ImagePath string `json:"image_path"`
	Language  string `json:"language"`
	UseGPU    bool   `json:"use_gpu"`
}

// Pong is the health-check response.
type Pong struct {
	Success bool   `json:"success"`
	Type    string `json:"type"`
}

// New creates a server reading from stdin and writing to stdout.
func New(cache *engine.Cache) *Server {
	return &Server{
		cache: cache,
		in:    os.Stdin,
		out:   os.Stdout,
	}
}

// Run processes requests until a shutdown request or end of input. Malformed
// requests produce an error response and the loop continues; only scanner
// failures are returned.
func (s *Server) Run() error {
	log.Printf("OCR service started")

	scanner := bufio.NewScanner(s.in)
	// Increase buffer size for large requests
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	encoder := json.NewEncoder(s.out)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		resp, done := s.handleLine(line)
		if resp != nil {
			if err := encoder.Encode(resp); err != nil {
				log.Printf("failed to encode response: %v", err)
			}
		}
		if done {
			log.Printf("OCR service stopped")
			return nil
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}

	log.Printf("OCR service stopped")
	return nil
}

// handleLine parses one request line and dispatches it. The returned response
// is nil when no output is owed (shutdown); done reports whether the loop
// should end.
func (s *Server) handleLine(line []byte) (interface{}, bool) {
	var req Request
	if err := json.Unmarshal(line, &req); err != nil {
		resp := ocr.Fail(fmt.Sprintf("Invalid JSON: %v", err))
		return &resp, false
	}

	switch req.Type {
	case "ocr":
		resp := ocr.Run(s.cache, req.ImagePath, req.Language, req.UseGPU)
		return &resp, false
	case "ping":
		return &Pong{Success: true, Type: "pong"}, false
	case "shutdown":
		log.Printf("shutdown requested")
		return nil, true
	default:
		resp := ocr.Fail(fmt.Sprintf("Unknown request type: %q", req.Type))
		return &resp, false
	}
}
