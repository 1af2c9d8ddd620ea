package cli

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/simplelist/internal/journal"
	"github.com/mesh-intelligence/simplelist/internal/processor"
	"github.com/mesh-intelligence/simplelist/internal/source"
)

// Prompts and diagnostics of the interactive file selection.
const (
	promptInput      = "Enter name of input file: "
	promptOutput     = "Enter name of output file: "
	msgInputFailure  = "Unable to open input file"
	msgOutputFailure = "Unable to open output file"
)

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [input [output]]",
		Short: "Interpret a command file",
		Long: `Interpret the commands in input and write the transcript to output.
Paths not given as arguments are prompted for. The input may be a local
path or a storage URL such as file:///tmp/in.txt; an output of "-" writes
the transcript to stdout.`,
		Args: cobra.MaximumNArgs(2),
		RunE: runInterpreter,
	}
}

// prompter reads whitespace-delimited answers from stdin.
type prompter struct {
	out io.Writer
	in  *bufio.Scanner
}

func newPrompter(in io.Reader, out io.Writer) *prompter {
	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	return &prompter{out: out, in: sc}
}

// ask prints prompt and returns the next token, or "" at end of input.
func (p *prompter) ask(prompt string) string {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		return ""
	}
	return p.in.Text()
}

func runInterpreter(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	cfg, err := runConfig()
	if err != nil {
		return userError(err)
	}
	logger := newLogger(stderr, flags.verbose)

	ask := newPrompter(cmd.InOrStdin(), stdout)
	location := func(i int, prompt string) string {
		if i < len(args) {
			return args[i]
		}
		return ask.ask(prompt)
	}

	inputPath := location(0, promptInput)
	input, err := source.NewOpener().OpenInput(ctx, inputPath)
	if err != nil {
		fmt.Fprintln(stdout, msgInputFailure)
		logger.Debug("open input", "err", err)
		return &exitError{code: exitUserError}
	}

	outputPath := location(1, promptOutput)

	// The journal run starts before the output file is created so a journal
	// failure leaves an existing transcript untouched. If the output cannot
	// be created, Close rolls the run back.
	opts := []processor.Option{processor.WithLogger(logger)}
	var j *journal.Journal
	if cfg.Journal != "" {
		j, err = journal.Open(cfg.Journal)
		if err != nil {
			return sysError(err)
		}
		defer j.Close()

		runID, err := j.BeginRun(ctx, journal.RunInfo{
			Input:  inputPath,
			Output: outputPath,
			Mode:   cfg.Mode,
			Format: cfg.Format,
		})
		if err != nil {
			return sysError(fmt.Errorf("begin journal run: %w", err))
		}
		logger.Debug("journal run started", "run_id", runID, "journal", j.Path())
		opts = append(opts, processor.WithRecorder(j))
	}

	output, err := source.CreateOutput(outputPath, stdout)
	if err != nil {
		fmt.Fprintln(stdout, msgOutputFailure)
		logger.Debug("open output", "err", err)
		return &exitError{code: exitUserError}
	}
	defer output.Close()

	transcript, err := processor.NewTranscript(output, cfg.Format)
	if err != nil {
		return userError(err)
	}

	proc := processor.New(cfg, transcript, opts...)
	stats, runErr := proc.Run(ctx, input)

	if j != nil {
		if err := j.EndRun(ctx, stats, runErr); err != nil && runErr == nil {
			runErr = fmt.Errorf("end journal run: %w", err)
		}
	}
	if err := output.Close(); err != nil && runErr == nil {
		runErr = fmt.Errorf("close output: %w", err)
	}
	if runErr != nil {
		return sysError(runErr)
	}

	if flags.summary {
		printSummary(stderr, stats, proc.Holdings())
	}
	return nil
}

// printSummary writes the run counters followed by one line per container
// with the values it still holds, front first.
func printSummary(w io.Writer, stats processor.Stats, holdings []processor.Holding) {
	fmt.Fprintf(w, "commands: %d created: %d pushed: %d popped: %d errors: %d\n",
		stats.Commands, stats.Created, stats.Pushed, stats.Popped, stats.Errors)
	for _, h := range holdings {
		fmt.Fprintf(w, "%s %s %s: [%s]\n", h.Name, h.Kind, h.Discipline, strings.Join(h.Values, " "))
	}
}

// newLogger returns a text logger on w: debug level when verbose,
// warnings only otherwise.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
