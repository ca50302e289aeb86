package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MatsudaSaku/Devin-handson/internal/cli"
	"github.com/MatsudaSaku/Devin-handson/internal/locale"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	code := cli.Main(ctx, cli.Options{
		Program: "weather",
		Version: version,
		Locale:  locale.English,
		Args:    os.Args[1:],
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	})

	stop()
	os.Exit(code)
}
