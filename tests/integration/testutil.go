// Package integration provides CLI integration tests for simplelist.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// simplelistBin is the path to the built simplelist binary.
	simplelistBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// SetSimplelistBin sets the path to the simplelist binary (called from TestMain).
func SetSimplelistBin(path string) {
	simplelistBin = path
}

// SetBuildErr sets the build error (called from TestMain).
func SetBuildErr(err error) {
	buildErr = err
}

// TestEnv provides an isolated test environment with its own config directory
// and a scratch directory for command files and transcripts.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	// Env holds extra KEY=VALUE pairs for the subprocess.
	Env []string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build simplelist: %v", buildErr)
	}
	if simplelistBin == "" {
		t.Fatal("simplelist binary not built (simplelistBin is empty)")
	}

	tempDir := t.TempDir()
	configDir := filepath.Join(tempDir, "config")
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		t.Fatalf("failed to create config dir: %v", err)
	}

	return &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  configDir,
	}
}

// WriteFile writes content to name inside the scratch directory and returns
// its path.
func (e *TestEnv) WriteFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

// ReadFile returns the content of path.
func (e *TestEnv) ReadFile(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		e.t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// Path returns the absolute path of name inside the scratch directory.
func (e *TestEnv) Path(name string) string {
	return filepath.Join(e.TempDir, name)
}

// CmdResult holds the result of a simplelist command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// cleanEnv returns os.Environ() with all SIMPLELIST_* and XDG_* variables
// removed.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, "SIMPLELIST_") || strings.HasPrefix(kv, "XDG_") {
			continue
		}
		env = append(env, kv)
	}
	return env
}

// RunSimplelist executes the simplelist CLI with stdin fed to the prompts.
func (e *TestEnv) RunSimplelist(stdin string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config}, args...)
	cmd := exec.Command(simplelistBin, allArgs...)
	cmd.Env = append(cleanEnv(), e.Env...)
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run simplelist: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// MustRunSimplelist executes the simplelist CLI and fails the test if it
// returns non-zero.
func (e *TestEnv) MustRunSimplelist(stdin string, args ...string) CmdResult {
	e.t.Helper()
	result := e.RunSimplelist(stdin, args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("simplelist %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// Record is one line of a JSON transcript.
type Record struct {
	Seq   int    `json:"seq"`
	Verb  string `json:"verb"`
	Name  string `json:"name"`
	Arg   string `json:"arg"`
	Error string `json:"error"`
	Value string `json:"value"`
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) and returns a slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		results = append(results, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan JSONL file %s: %v", path, err)
	}
	return results
}
