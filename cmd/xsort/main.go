package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/peak/xsort/command"
)

func main() {
	parentCtx, cancel := context.WithCancel(context.Background())

	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		fmt.Fprintln(os.Stderr, "# Got signal, cleaning up...")
		cancel()
	}()

	if err := command.Main(parentCtx, os.Args); err != nil {
		os.Exit(1)
	}
}
