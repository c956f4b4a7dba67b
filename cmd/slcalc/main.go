package main

import (
	"context"
	"os"
)

// shutdown runs once after every command, including failed ones, so
// batched spans are flushed either way.
var shutdown = shutdownSystem

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	root := newRootCmd()
	root.SetArgs(args)

	err := root.Execute()
	shutdown(context.Background())
	if err != nil {
		return 1
	}
	return 0
}
