package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/ardnew/ninjagen/cli"
	"github.com/ardnew/ninjagen/log"
)

func main() {
	if err := cli.Run(context.Background(), os.Exit, os.Args[1:]...); err != nil {
		// *Error values log their attributes through LogValue.
		log.Error("ninjagen failed", slog.Any("error", err))
		os.Exit(1)
	}
}
