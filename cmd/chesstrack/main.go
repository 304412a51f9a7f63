// Command chesstrack tracks games from the terminal and inspects positions
// and the game archive.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/hailam/chesstrack/cmd/internal/history"
	"github.com/hailam/chesstrack/cmd/internal/moves"
	"github.com/hailam/chesstrack/cmd/internal/play"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")

	subcommands.Register(&moves.Command{}, "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&history.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
