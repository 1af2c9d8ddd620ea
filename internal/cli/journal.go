package cli

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/simplelist/internal/journal"
	"github.com/mesh-intelligence/simplelist/internal/paths"
)

func newJournalCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "journal [run-id]",
		Short: "List journaled runs, or the commands of one run",
		Long: `Without arguments, list the most recent runs recorded in the journal.
With a run ID, list that run's commands and their outcomes.

The journal is the one given by --journal, the config file, or
SIMPLELIST_JOURNAL, falling back to journal.db in the data directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runJournal(cmd, args, limit)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")
	return cmd
}

func runJournal(cmd *cobra.Command, args []string, limit int) error {
	cfg, err := runConfig()
	if err != nil {
		return userError(err)
	}
	path := cfg.Journal
	if path == "" {
		if path, err = paths.DefaultJournalPath(); err != nil {
			return sysError(fmt.Errorf("resolve journal path: %w", err))
		}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return userError(fmt.Errorf("no journal at %s", path))
	}

	j, err := journal.Open(path)
	if err != nil {
		return sysError(err)
	}
	defer j.Close()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	defer w.Flush()

	if len(args) == 1 {
		entries, err := j.Entries(cmd.Context(), args[0])
		if err != nil {
			return sysError(err)
		}
		if len(entries) == 0 {
			return userError(fmt.Errorf("no commands recorded for run %s", args[0]))
		}
		fmt.Fprintln(w, "SEQ\tCOMMAND\tOUTCOME\tVALUE")
		for _, e := range entries {
			command := e.Verb + " " + e.Name
			if e.Arg != "" {
				command += " " + e.Arg
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", e.Seq, command, e.Outcome, e.Value)
		}
		return nil
	}

	runs, err := j.Runs(cmd.Context(), limit)
	if err != nil {
		return sysError(err)
	}
	fmt.Fprintln(w, "RUN\tSTARTED\tSTATUS\tMODE\tCOMMANDS\tERRORS\tINPUT")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%s\n",
			r.RunID, r.StartedAt.Local().Format(time.DateTime), r.Status, r.Mode,
			r.Stats.Commands, r.Stats.Errors, r.Input)
	}
	return nil
}
