// Package processor implements the simplelist command interpreter: it reads
// create, push and pop commands from a token stream, applies them to the
// run's registries, and writes a transcript entry per command.
package processor

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/mesh-intelligence/simplelist/internal/list"
	"github.com/mesh-intelligence/simplelist/internal/registry"
	"github.com/mesh-intelligence/simplelist/pkg/types"
)

// maxTokenSize lets the scanner buffer grow to fit any token.
const maxTokenSize = math.MaxInt

// Recorder observes every entry after it is written to the transcript.
type Recorder interface {
	Record(ctx context.Context, e Entry) error
}

// Stats counts what a run did.
type Stats struct {
	Commands int `json:"commands"`
	Created  int `json:"created"`
	Pushed   int `json:"pushed"`
	Popped   int `json:"popped"`
	Errors   int `json:"errors"`
}

// Option configures a Processor.
type Option func(*Processor)

// WithRecorder attaches a Recorder, such as the run journal.
func WithRecorder(r Recorder) Option {
	return func(p *Processor) { p.rec = r }
}

// WithLogger sets the logger used for dispatch tracing.
func WithLogger(l *slog.Logger) Option {
	return func(p *Processor) { p.log = l }
}

// Processor owns the registries of one run. It is not safe for
// concurrent use.
type Processor struct {
	strict bool
	regs   *registry.Registries
	out    Transcript
	rec    Recorder
	log    *slog.Logger
	stats  Stats
}

// New returns a Processor writing to out. cfg selects strict or compat
// interpretation; its Format is the caller's concern when building out.
func New(cfg types.Config, out Transcript, opts ...Option) *Processor {
	p := &Processor{
		strict: cfg.Strict(),
		regs:   registry.NewRegistries(),
		out:    out,
		log:    slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes commands from r until the input is exhausted or ctx is
// cancelled. End of input, including a command cut short by it, is normal
// termination. Errors are returned only for input, transcript, recorder or
// context failures; command errors go to the transcript.
func (p *Processor) Run(ctx context.Context, r io.Reader) (Stats, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTokenSize)
	sc.Split(scanFields)

	for {
		if err := ctx.Err(); err != nil {
			if ferr := p.out.Flush(); ferr != nil {
				p.log.Warn("flush transcript", "err", ferr)
			}
			return p.stats, err
		}
		cmd, ok := readCommand(sc)
		if !ok {
			break
		}
		e := p.Execute(cmd)
		if err := p.out.Write(e); err != nil {
			return p.stats, fmt.Errorf("write transcript: %w", err)
		}
		if p.rec != nil {
			if err := p.rec.Record(ctx, e); err != nil {
				return p.stats, fmt.Errorf("record command %d: %w", e.Seq, err)
			}
		}
	}
	if err := sc.Err(); err != nil {
		if ferr := p.out.Flush(); ferr != nil {
			p.log.Warn("flush transcript", "err", ferr)
		}
		return p.stats, fmt.Errorf("read input: %w", err)
	}
	if err := p.out.Flush(); err != nil {
		return p.stats, fmt.Errorf("flush transcript: %w", err)
	}
	return p.stats, nil
}

// scanFields is bufio.ScanWords restricted to ASCII whitespace, the only
// separators stream extraction recognizes in the C locale. Other Unicode
// spaces stay inside the token.
func scanFields(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSpace(data[start]) {
		start++
	}
	for i := start; i < len(data); i++ {
		if isSpace(data[i]) {
			return i + 1, data[start:i], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// readCommand reads the verb and name, then the argument when the verb
// takes one. It returns false when any of those tokens is missing.
func readCommand(sc *bufio.Scanner) (types.Command, bool) {
	var cmd types.Command
	if !sc.Scan() {
		return cmd, false
	}
	cmd.Verb = types.Verb(sc.Text())
	if !sc.Scan() {
		return cmd, false
	}
	cmd.Name = sc.Text()
	if cmd.Verb.Arity() == 3 {
		if !sc.Scan() {
			return cmd, false
		}
		cmd.Arg = sc.Text()
		cmd.HasArg = true
	}
	return cmd, true
}

// Execute applies one command and returns its entry without writing it.
func (p *Processor) Execute(cmd types.Command) Entry {
	p.stats.Commands++
	e := Entry{Seq: p.stats.Commands, Command: cmd}

	verb := cmd.Verb
	if !verb.Known() {
		if p.strict {
			e.Err = types.ErrUnknownVerb
			return p.finish(e)
		}
		verb = types.VerbPop
	}

	kind, err := types.KindOf(cmd.Name)
	if err != nil {
		if p.strict {
			e.Err = err
		}
		return p.finish(e)
	}

	switch kind {
	case types.KindInteger:
		dispatch(p, &e, verb, p.regs.Integers, parseInt, formatInt)
	case types.KindFloat:
		dispatch(p, &e, verb, p.regs.Floats, parseFloat, formatFloat)
	case types.KindText:
		dispatch(p, &e, verb, p.regs.Texts, parseText, formatText)
	}
	return p.finish(e)
}

func (p *Processor) finish(e Entry) Entry {
	if e.Err != nil {
		p.stats.Errors++
	}
	p.log.Debug("command", "seq", e.Seq, "command", e.Command.String(), "outcome", e.Outcome())
	return e
}

func dispatch[T any](
	p *Processor,
	e *Entry,
	verb types.Verb,
	reg *registry.Registry[T],
	parse func(string, bool) (T, error),
	format func(T) string,
) {
	cmd := e.Command
	switch verb {
	case types.VerbCreate:
		if reg.Exists(cmd.Name) {
			e.Err = types.ErrNameExists
			return
		}
		d, err := types.ParseDiscipline(cmd.Arg)
		if err != nil {
			if p.strict {
				e.Err = err
				return
			}
			d = types.Queue
		}
		if err := reg.Insert(cmd.Name, list.New[T](cmd.Name, d)); err != nil {
			e.Err = err
			return
		}
		p.stats.Created++

	case types.VerbPush:
		c, ok := reg.Find(cmd.Name)
		if !ok {
			e.Err = types.ErrNameNotFound
			return
		}
		v, err := parse(cmd.Arg, p.strict)
		if err != nil {
			e.Err = err
			return
		}
		c.Push(v)
		p.stats.Pushed++

	case types.VerbPop:
		c, ok := reg.Find(cmd.Name)
		if !ok {
			e.Err = types.ErrNameNotFound
			return
		}
		if c.IsEmpty() {
			e.Err = types.ErrListEmpty
			return
		}
		e.Value = format(c.Pop())
		e.Popped = true
		p.stats.Popped++
	}
}
