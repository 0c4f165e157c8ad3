package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	"github.com/rabble/rabble/internal/channelio"
	"github.com/rabble/rabble/internal/hub"
	"github.com/rabble/rabble/internal/model"
	"github.com/rabble/rabble/internal/scrabble"
	"github.com/rabble/rabble/internal/wordlist"
)

func runGame(args []string) error {
	engines, wordsPath, err := parseGameArgs(args)
	if err != nil {
		return err
	}

	dict, err := wordlist.Load(wordsPath)
	if err != nil {
		return fmt.Errorf("loading word list: %w", err)
	}

	dispatcher := hub.NewDispatcher()
	game := scrabble.NewGame(dict, rand.New(rand.NewSource(time.Now().UnixNano())))
	m := model.NewModel(dispatcher, game)

	nextChannelID := 0
	newChannelID := func() int {
		id := nextChannelID
		nextChannelID++
		return id
	}

	stdioID := newChannelID()
	stdio := channelio.NewStdio()
	stdioChannel := hub.NewChannel(stdioID, stdio, true, dispatcher.Events())
	dispatcher.Register(stdioChannel)
	stdioAgent := m.NewAgent(stdioID, "", true)
	game.AddWatcher(stdioAgent)

	var childChannels []*hub.Channel

	for _, spec := range engines {
		if spec == "-" {
			stdioAgent.AddSeat(game.AddPlayer(stdioAgent))
			continue
		}

		child, err := channelio.NewChild(spec)
		if err != nil {
			return fmt.Errorf("spawning engine %q: %w", spec, err)
		}
		id := newChannelID()
		ch := hub.NewChannel(id, child, false, dispatcher.Events())
		dispatcher.Register(ch)
		agent := m.NewAgent(id, "", true)
		agent.AddSeat(game.AddPlayer(agent))
		childChannels = append(childChannels, ch)
	}

	go dispatcher.Run(m)

	game.Start()

	for _, ch := range childChannels {
		ch.Start()
	}

	stdioChannel.Serve()

	<-dispatcher.Done()
	return nil
}

// parseGameArgs parses the game subcommand's flags and enforces the
// minimum two --engine specifications plus a required --words path.
func parseGameArgs(args []string) (engines engineList, wordsPath string, err error) {
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.Var(&engines, "e", "child engine command, or - for the interactive player (repeatable)")
	fs.Var(&engines, "engine", "alias for -e")
	words := fs.String("w", "", "path to the word list file")
	fs.StringVar(words, "words", "", "alias for -w")
	if err := fs.Parse(args); err != nil {
		return nil, "", err
	}

	if len(engines) < 2 {
		fs.Usage()
		return nil, "", fmt.Errorf("at least 2 engines must be specified using --engine")
	}
	if *words == "" {
		fs.Usage()
		return nil, "", fmt.Errorf("a file containing the list of valid words must be specified using --words")
	}

	return engines, *words, nil
}
