package processor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/mesh-intelligence/simplelist/pkg/types"
)

// Entry is the outcome of one command.
type Entry struct {
	// Seq is the 1-based position of the command in the input.
	Seq     int
	Command types.Command

	// Err is the command error reported in the transcript, nil on success.
	Err error

	// Value is the rendered popped value when Popped is true.
	Value  string
	Popped bool
}

// Outcome summarizes the entry: the error text, "popped", or "ok".
func (e Entry) Outcome() string {
	switch {
	case e.Err != nil:
		return e.Err.Error()
	case e.Popped:
		return "popped"
	default:
		return "ok"
	}
}

// Transcript receives one Entry per processed command.
type Transcript interface {
	Write(e Entry) error
	Flush() error
}

// NewTranscript returns a transcript writer for the given format.
// Returns types.ErrFormatUnknown for an unrecognized format.
func NewTranscript(w io.Writer, format string) (Transcript, error) {
	switch format {
	case "", types.FormatText:
		return &textTranscript{w: bufio.NewWriter(w)}, nil
	case types.FormatJSON:
		bw := bufio.NewWriter(w)
		return &jsonTranscript{w: bw, enc: json.NewEncoder(bw)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", types.ErrFormatUnknown, format)
	}
}

// textTranscript writes the line-oriented transcript:
//
//	PROCESSING COMMAND: push istack1 5
//	ERROR: This name does not exist!
//	Value popped: 7
type textTranscript struct {
	w *bufio.Writer
}

func (t *textTranscript) Write(e Entry) error {
	if _, err := fmt.Fprintf(t.w, "PROCESSING COMMAND: %s\n", e.Command); err != nil {
		return err
	}
	var err error
	switch {
	case e.Err != nil:
		_, err = fmt.Fprintf(t.w, "ERROR: %s\n", e.Err)
	case e.Popped:
		_, err = fmt.Fprintf(t.w, "Value popped: %s\n", e.Value)
	}
	return err
}

func (t *textTranscript) Flush() error { return t.w.Flush() }

// jsonRecord is the JSON-lines rendering of an Entry.
type jsonRecord struct {
	Seq   int    `json:"seq"`
	Verb  string `json:"verb"`
	Name  string `json:"name"`
	Arg   string `json:"arg,omitempty"`
	Error string `json:"error,omitempty"`
	Value string `json:"value,omitempty"`
}

type jsonTranscript struct {
	w   *bufio.Writer
	enc *json.Encoder
}

func (t *jsonTranscript) Write(e Entry) error {
	rec := jsonRecord{
		Seq:  e.Seq,
		Verb: string(e.Command.Verb),
		Name: e.Command.Name,
		Arg:  e.Command.Arg,
	}
	if e.Err != nil {
		rec.Error = e.Err.Error()
	}
	if e.Popped {
		rec.Value = e.Value
	}
	return t.enc.Encode(rec)
}

func (t *jsonTranscript) Flush() error { return t.w.Flush() }
