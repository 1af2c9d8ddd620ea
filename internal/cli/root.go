// Package cli implements the simplelist command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/simplelist/pkg/simplelist"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	mode      string
	format    string
	journal   string
	summary   bool
	verbose   bool
}

var flags rootFlags

// settings holds the merged flag, config file, and default values.
// Set by PersistentPreRunE.
var settings *viper.Viper

// exitError carries a process exit code out of a command. A nil err means
// the command already reported the failure.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	if e.err == nil {
		return fmt.Sprintf("exit status %d", e.code)
	}
	return e.err.Error()
}

func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }

func sysError(err error) error { return &exitError{code: exitSysError, err: err} }

// NewRootCmd creates the top-level "simplelist" command with global flags
// and all subcommands registered. Run without arguments it prompts for the
// input and output files and interprets the input.
func NewRootCmd() *cobra.Command {
	flags = rootFlags{}
	settings = nil

	root := &cobra.Command{
		Use:   "simplelist",
		Short: "Interpret create/push/pop commands over named stacks and queues",
		Long: `simplelist reads whitespace-delimited commands

  create <name> <stack|queue>
  push <name> <value>
  pop <name>

and writes a transcript of every command and its result. The first letter
of a name selects its value type: i (integer), d (floating-point), s (text).`,
		Version:       simplelist.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			v, err := loadConfig(cmd)
			if err != nil {
				return userError(err)
			}
			settings = v
			return nil
		},
		RunE: runInterpreter,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	pf.StringVar(&flags.mode, "mode", "", "interpretation mode: strict or compat (default: strict)")
	pf.StringVar(&flags.format, "format", "", "transcript format: text or json (default: text)")
	pf.StringVar(&flags.journal, "journal", "", "record runs in this SQLite journal")
	pf.BoolVar(&flags.summary, "summary", false, "print run counters to stderr")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "trace every command to stderr")

	root.AddCommand(newRunCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newJournalCmd())
	root.AddCommand(newVersionCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	stop()
	os.Exit(exitCode(err))
}

// exitCode reports err on stderr when it has not been reported yet and
// maps it to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil {
			fmt.Fprintln(os.Stderr, ee.err)
		}
		return ee.code
	}
	fmt.Fprintln(os.Stderr, err)
	return exitUserError
}
