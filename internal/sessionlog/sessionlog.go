// Package sessionlog records what a session did: a structured log for
// operators, plus a JSONL transcript of every request, response and execution
// that can be replayed or inspected later.
package sessionlog

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/simonfrey/jsonl"
	"go.uber.org/zap"
)

const (
	EventRequest   = "request"
	EventResponse  = "response"
	EventExecution = "execution"
	EventError     = "error"
)

// Event is one line of the session transcript. The credential never appears
// in a payload.
type Event struct {
	Time    time.Time `json:"time"`
	Kind    string    `json:"kind"`
	Payload string    `json:"payload"`
	Success *bool     `json:"success,omitempty"`
}

// Logger writes the session log and transcript under a directory.
type Logger struct {
	log        *zap.SugaredLogger
	transcript jsonl.Writer
	file       *os.File
	path       string
}

// New creates the log directory if needed and opens a fresh, timestamped
// transcript for this session.
func New(dir string) (*Logger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create log directory %s", dir)
	}

	name := fmt.Sprintf("session_%s.jsonl", time.Now().UTC().Format("20060102_150405"))
	path := filepath.Join(dir, name)

	file, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not create session transcript")
	}

	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{filepath.Join(dir, "session.log")}

	log, err := cfg.Build()
	if err != nil {
		file.Close()
		return nil, errors.Wrap(err, "could not build session logger")
	}

	return &Logger{
		log:        log.Sugar(),
		transcript: jsonl.NewWriter(file),
		file:       file,
		path:       path,
	}, nil
}

// TranscriptPath returns the location of this session's JSONL transcript.
func (l *Logger) TranscriptPath() string {
	return l.path
}

// Zap exposes the underlying structured logger for components that want to
// share this session's log output.
func (l *Logger) Zap() *zap.SugaredLogger {
	return l.log
}

// Request records a prompt sent to the inference API.
func (l *Logger) Request(prompt string) {
	l.log.Infow("api request", "chars", len(prompt))
	l.event(Event{Kind: EventRequest, Payload: prompt})
}

// Response records a raw model response.
func (l *Logger) Response(text string) {
	l.log.Infow("api response", "chars", len(text))
	l.event(Event{Kind: EventResponse, Payload: text})
}

// Execution records a script run and its captured stdout.
func (l *Logger) Execution(success bool, output string) {
	l.log.Infow("script executed", "success", success)
	l.event(Event{Kind: EventExecution, Payload: output, Success: &success})
}

// Error records a failure without aborting the session.
func (l *Logger) Error(err error) {
	l.log.Errorw("session error", "error", err)
	l.event(Event{Kind: EventError, Payload: err.Error()})
}

func (l *Logger) event(evt Event) {
	evt.Time = time.Now().UTC()

	// Transcript write failures must never take the session down.
	if err := l.transcript.Write(evt); err != nil {
		l.log.Warnw("could not write transcript event", "error", err)
	}
}

// Close flushes and closes the transcript and log.
func (l *Logger) Close() error {
	_ = l.log.Sync()

	return l.file.Close()
}
