package server

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/whispra/ocr-sidecar/internal/engine"
)

type stubEngine struct {
	detections []engine.Detection
	err        error
}

func (s *stubEngine) Detect(imagePath string) ([]engine.Detection, error) {
	return s.detections, s.err
}

func writeTestImage(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "capture.png")
	if err := os.WriteFile(path, []byte("png"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// newTestServer wires a server to in-memory I/O with a stub engine factory.
func newTestServer(input string, factory engine.Factory) (*Server, *bytes.Buffer) {
	if factory == nil {
		factory = func(script string, accelerated bool) (engine.Engine, error) {
			return &stubEngine{}, nil
		}
	}
	out := &bytes.Buffer{}
	srv := &Server{
		cache: engine.NewCache(factory),
		in:    strings.NewReader(input),
		out:   out,
	}
	return srv, out
}

// decodeLines parses each output line as a generic JSON object.
func decodeLines(t *testing.T, out *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var responses []map[string]interface{}
	scanner := bufio.NewScanner(out)
	for scanner.Scan() {
		var obj map[string]interface{}
		if err := json.Unmarshal(scanner.Bytes(), &obj); err != nil {
			t.Fatalf("output line is not a JSON object: %q: %v", scanner.Text(), err)
		}
		responses = append(responses, obj)
	}
	return responses
}

func TestServer_Ping(t *testing.T) {
	srv, out := newTestServer(`{"type":"ping"}`+"\n", nil)
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	responses := decodeLines(t, out)
	if len(responses) != 1 {
		t.Fatalf("responses: got %d, want 1", len(responses))
	}
	if responses[0]["success"] != true || responses[0]["type"] != "pong" {
		t.Errorf("ping response: got %v, want success pong", responses[0])
	}
}

func TestServer_MalformedLineKeepsLoopAlive(t *testing.T) {
	input := "{not json\n" + `{"type":"ping"}` + "\n"
	srv, out := newTestServer(input, nil)
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	responses := decodeLines(t, out)
	if len(responses) != 2 {
		t.Fatalf("responses: got %d, want 2", len(responses))
	}
	if responses[0]["success"] != false {
		t.Errorf("malformed line response: got %v, want failure", responses[0])
	}
	if errMsg, _ := responses[0]["error"].(string); !strings.Contains(errMsg, "Invalid JSON") {
		t.Errorf("error message: got %q, want Invalid JSON", errMsg)
	}
	// The next valid request is still processed.
	if responses[1]["type"] != "pong" {
		t.Errorf("follow-up response: got %v, want pong", responses[1])
	}
}

func TestServer_UnknownType(t *testing.T) {
	srv, out := newTestServer(`{"type":"translate"}`+"\n", nil)
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	responses := decodeLines(t, out)
	if len(responses) != 1 {
		t.Fatalf("responses: got %d, want 1", len(responses))
	}
	if responses[0]["success"] != false {
		t.Errorf("unknown type response: got %v, want failure", responses[0])
	}
}

func TestServer_ShutdownStopsProcessing(t *testing.T) {
	input := `{"type":"ping"}` + "\n" +
		`{"type":"shutdown"}` + "\n" +
		`{"type":"ping"}` + "\n"
	srv, out := newTestServer(input, nil)
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// One pong; shutdown emits nothing; the trailing ping is never read.
	responses := decodeLines(t, out)
	if len(responses) != 1 {
		t.Fatalf("responses: got %d, want 1", len(responses))
	}
	if responses[0]["type"] != "pong" {
		t.Errorf("response: got %v, want pong", responses[0])
	}
}

func TestServer_OCRMissingImage(t *testing.T) {
	srv, out := newTestServer(`{"type":"ocr","image_path":"/no/such/capture.png"}`+"\n",
		func(script string, accelerated bool) (engine.Engine, error) {
			t.Fatal("engine constructed for a missing image")
			return nil, nil
		})
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	responses := decodeLines(t, out)
	if len(responses) != 1 {
		t.Fatalf("responses: got %d, want 1", len(responses))
	}
	if responses[0]["success"] != false {
		t.Errorf("response: got %v, want failure", responses[0])
	}
	if responses[0]["error"] != "Image file not found: /no/such/capture.png" {
		t.Errorf("error: got %v, want not-found message", responses[0]["error"])
	}
	boxes, ok := responses[0]["text_boxes"].([]interface{})
	if !ok {
		t.Fatalf("text_boxes: got %T, want array", responses[0]["text_boxes"])
	}
	if len(boxes) != 0 {
		t.Errorf("text_boxes: got %d entries, want 0", len(boxes))
	}
}

func TestServer_BlankLinesSkipped(t *testing.T) {
	input := "\n  \n" + `{"type":"ping"}` + "\n\n"
	srv, out := newTestServer(input, nil)
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if responses := decodeLines(t, out); len(responses) != 1 {
		t.Errorf("responses: got %d, want 1", len(responses))
	}
}

func TestServer_EngineErrorKeepsLoopAlive(t *testing.T) {
	image := writeTestImage(t)
	input := `{"type":"ocr","image_path":"` + image + `"}` + "\n" +
		`{"type":"ping"}` + "\n"
	srv, out := newTestServer(input, func(script string, accelerated bool) (engine.Engine, error) {
		return &stubEngine{err: errors.New("OCR failed: corrupt capture")}, nil
	})
	if err := srv.Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	responses := decodeLines(t, out)
	if len(responses) != 2 {
		t.Fatalf("responses: got %d, want 2", len(responses))
	}
	if responses[0]["success"] != false {
		t.Errorf("engine error response: got %v, want failure", responses[0])
	}
	if responses[1]["type"] != "pong" {
		t.Errorf("loop did not survive engine error: got %v", responses[1])
	}
}
