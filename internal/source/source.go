// Package source opens the two streams of a run: the command input, read
// through afs so it may be a local path or a storage URL, and the
// transcript output file.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
)

// Stdout is the output location that writes the transcript to standard output.
const Stdout = "-"

// Opener reads inputs through an afs service.
type Opener struct {
	fs afs.Service
}

// NewOpener returns an Opener backed by the default afs registry
// (file, mem, and the other built-in schemes).
func NewOpener() *Opener {
	return &Opener{fs: afs.New()}
}

// IsURL reports whether location carries a scheme such as file:// or mem://.
func IsURL(location string) bool {
	return strings.Contains(location, "://")
}

// OpenInput loads the command input at location. Plain paths are resolved
// against the working directory.
func (o *Opener) OpenInput(ctx context.Context, location string) (io.Reader, error) {
	if location == "" {
		return nil, fmt.Errorf("open input: empty location")
	}
	url := location
	if !IsURL(location) {
		abs, err := filepath.Abs(location)
		if err != nil {
			return nil, fmt.Errorf("open input %s: %w", location, err)
		}
		url = abs
	}

	ok, err := o.fs.Exists(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", location, err)
	}
	if !ok {
		return nil, fmt.Errorf("open input %s: %w", location, os.ErrNotExist)
	}

	data, err := o.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("open input %s: %w", location, err)
	}
	return bytes.NewReader(data), nil
}

// CreateOutput creates or truncates the transcript file at location.
// Stdout selects stdout instead; closing it is a no-op.
func CreateOutput(location string, stdout io.Writer) (io.WriteCloser, error) {
	if location == Stdout {
		return nopCloser{stdout}, nil
	}
	if location == "" {
		return nil, fmt.Errorf("open output: empty location")
	}
	f, err := os.Create(location)
	if err != nil {
		return nil, fmt.Errorf("open output %s: %w", location, err)
	}
	return f, nil
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
