// Package executor writes generated Python scripts to disk and runs them with
// the local interpreter.
//
// It runs model-generated code without isolation. Only use it in a controlled
// environment.
package executor

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
)

// interpreters are tried in order; the first one found on PATH wins.
var interpreters = []string{"python3", "python"}

// Result captures a single script run. Stderr is populated when the script
// itself failed; that is not reported as an error.
type Result struct {
	ScriptPath string
	Stdout     string
	Stderr     string
}

// Executor stores scripts under a base directory and executes them.
type Executor struct {
	baseDir string
}

// New creates an Executor, creating baseDir if needed.
func New(baseDir string) (*Executor, error) {
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, errors.Wrapf(err, "could not create script directory %s", baseDir)
	}

	return &Executor{baseDir: baseDir}, nil
}

// WriteAndRun stores code in a timestamped file and executes it.
func (e *Executor) WriteAndRun(ctx context.Context, code string) (*Result, error) {
	// Timestamped filenames avoid collisions between runs.
	name := fmt.Sprintf("script_%s.py", time.Now().UTC().Format("20060102_150405"))
	scriptPath := filepath.Join(e.baseDir, name)

	if err := os.WriteFile(scriptPath, []byte(code), 0o644); err != nil {
		return nil, errors.Wrapf(err, "could not write script %s", scriptPath)
	}

	interp, err := findInterpreter()
	if err != nil {
		return nil, err
	}

	cmd := exec.CommandContext(ctx, interp, scriptPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	var exitErr *exec.ExitError
	if runErr != nil && !errors.As(runErr, &exitErr) {
		return nil, errors.Wrapf(runErr, "could not execute %s", interp)
	}

	return &Result{
		ScriptPath: scriptPath,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
	}, nil
}

// InstallPackages installs third-party dependencies with pip. The caller may
// choose to run the script anyway when this fails.
func (e *Executor) InstallPackages(ctx context.Context, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}

	interp, err := findInterpreter()
	if err != nil {
		return err
	}

	args := append([]string{"-m", "pip", "install"}, pkgs...)
	cmd := exec.CommandContext(ctx, interp, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "pip install failed: %s", stderr.String())
	}

	return nil
}

func findInterpreter() (string, error) {
	for _, interp := range interpreters {
		if path, err := exec.LookPath(interp); err == nil {
			return path, nil
		}
	}

	return "", errors.Newf("no python interpreter found on PATH (tried %v)", interpreters)
}
