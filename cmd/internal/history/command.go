package history

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/hailam/chesstrack/internal/archive"
	"github.com/hailam/chesstrack/internal/storage"
)

type Command struct {
	archive string
	n       int
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List archived games" }
func (*Command) Usage() string {
	return `history [options]

Lists the most recently finished games, newest first.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.archive, "archive", "", "game archive database (default: in the data dir)")
	flags.IntVar(&c.n, "n", 20, "number of games to list")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() != 0 || c.n <= 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	path := c.archive
	if path == "" {
		var err error
		if path, err = storage.GetArchivePath(); err != nil {
			fmt.Fprintf(os.Stderr, "history: %v\n", err)
			return subcommands.ExitFailure
		}
	}
	a, err := archive.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "history: open %s: %v\n", path, err)
		return subcommands.ExitFailure
	}
	defer a.Close()

	if err := list(os.Stdout, a, c.n); err != nil {
		fmt.Fprintf(os.Stderr, "history: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func list(w io.Writer, a *archive.Archive, n int) error {
	games, err := a.Recent(n)
	if err != nil {
		return err
	}
	total, err := a.Count()
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tFINISHED\tWHITE\tBLACK\tPLIES\tRESULT\tFINAL")
	for _, g := range games {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%s\t%s\n",
			g.ID, g.Finished.Local().Format("2006-01-02 15:04"), g.White, g.Black, g.Plies, g.Result, g.FinalFEN)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "%d of %d games\n", len(games), total)
	return nil
}
