// Command sonar solves the submarine puzzles from input files.
//
//	sonar list
//	sonar run 9 11 --input-dir ./inputs
//	sonar run 14 --input ./polymer.txt
//	sonar config --config sonar.yaml
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "sonar:", err)
		os.Exit(1)
	}
}
