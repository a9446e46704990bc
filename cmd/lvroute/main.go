// Command lvroute answers route queries over a records file: shortest and
// alternative routes by distance, time or cost, plus connection and demand
// statistics.
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
		fmt.Fprintln(os.Stderr, "lvroute:", err)
		stop()
		os.Exit(1)
	}
}
