package main

import "strings"

// engineList collects repeated -e/--engine occurrences in order given.
type engineList []string

func (e *engineList) String() string { return strings.Join(*e, ",") }

func (e *engineList) Set(value string) error {
	*e = append(*e, value)
	return nil
}
