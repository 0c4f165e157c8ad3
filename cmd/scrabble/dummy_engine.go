package main

import (
	"os"

	"github.com/rabble/rabble/internal/dummyengine"
)

func runDummyEngine(args []string) error {
	return dummyengine.Run(os.Stdin, os.Stdout)
}
