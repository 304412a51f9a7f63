package moves

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"golang.org/x/sync/errgroup"

	"github.com/hailam/chesstrack/internal/board"
)

type Command struct {
	all  bool
	from string
}

func (*Command) Name() string     { return "moves" }
func (*Command) Synopsis() string { return "List the generated moves of one or more positions" }
func (*Command) Usage() string {
	return `moves [options] FEN...

Prints the moves generated for each position, for the side to move unless
-all is given. Positions are processed concurrently and printed in order.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.BoolVar(&c.all, "all", false, "list the moves of both sides")
	flags.StringVar(&c.from, "from", "", "only list moves from this square")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if flag.NArg() == 0 {
		flag.Usage()
		return subcommands.ExitUsageError
	}
	from := board.NoSquare
	if c.from != "" {
		sq, err := board.ParseSquare(c.from)
		if err != nil {
			fmt.Fprintf(os.Stderr, "-from: %v\n", err)
			return subcommands.ExitUsageError
		}
		from = sq
	}

	out := make([]bytes.Buffer, flag.NArg())
	grp, ctx := errgroup.WithContext(ctx)
	for i, fen := range flag.Args() {
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return list(&out[i], fen, from, c.all)
		})
	}
	err := grp.Wait()
	for i := range out {
		os.Stdout.Write(out[i].Bytes())
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// list writes the header and moves of one position to w.
func list(w io.Writer, fen string, from board.Square, all bool) error {
	b := board.New()
	if err := b.LoadFEN(fen); err != nil {
		return fmt.Errorf("%q: %w", fen, err)
	}
	b.GenerateMoves()

	ms := b.MovesFor(b.Turn())
	if all {
		ms = b.Moves()
	}
	fmt.Fprintf(w, "%s\n", fen)
	n := 0
	for _, m := range ms {
		if from != board.NoSquare && m.From != from {
			continue
		}
		fmt.Fprintf(w, "  %-6s %s %s\n", m, b.PieceAt(m.From), m.Type)
		n++
	}
	fmt.Fprintf(w, "%d moves\n", n)
	return nil
}
