// Command scrabble runs the game server (default subcommand) or, via the
// dummy_engine subcommand, the trivial do-nothing child process used to
// exercise a child-process channel end to end.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "scrabble: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	sub, rest := "game", args
	if len(args) > 0 && args[0] == "dummy_engine" {
		sub, rest = "dummy_engine", args[1:]
	} else if len(args) > 0 && args[0] == "game" {
		sub, rest = "game", args[1:]
	}

	switch sub {
	case "dummy_engine":
		return runDummyEngine(rest)
	default:
		return runGame(rest)
	}
}
