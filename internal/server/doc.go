// Package server implements the persistent service mode: a single-threaded
// request loop speaking newline-delimited JSON over stdin/stdout.
//
// # Protocol
//
// Each input line is one JSON object with a "type" field:
//
//	{"type": "ocr", "image_path": "...", "language": "en", "use_gpu": false}
//	{"type": "ping"}
//	{"type": "shutdown"}
//
// Each request other than shutdown produces exactly one JSON response line:
// the OCR response for "ocr", {"success":true,"type":"pong"} for "ping", and
// an error response for malformed JSON or unknown types. The loop survives
// bad input; it ends only on shutdown or end of input.
//
// Stdout carries protocol traffic exclusively. Diagnostics go to stderr.
//
// # Engine reuse
//
// The server owns an engine cache keyed by (script, acceleration). The first
// "ocr" request for a pair pays the engine initialization cost; subsequent
// requests for the same pair reuse the cached handle for the lifetime of the
// process.
package server
