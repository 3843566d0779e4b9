package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/thenoetrevino/internlog/cmd"
)

func main() {
	// Cancel in-flight database work on Ctrl-C
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)

	code := cmd.Execute(ctx, os.Args[1:])
	cancel()
	os.Exit(code)
}
