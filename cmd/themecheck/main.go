package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/manutortosa-collab/themecheck"
)

func main() {
	// Capture shutdown signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cli struct {
		Check CheckCmd `kong:"cmd,default='1',help='Runs all theme quality checks, fixing what can be fixed.'"`
		List  ListCmd  `kong:"cmd,help='Lists the checks that would run.'"`
	}

	app := kong.Parse(&cli,
		kong.Description("Validates the asset tree of a theme, auto-fixing formatting and scaling issues in place."),
		kong.BindTo(ctx, (*context.Context)(nil)),
		kong.UsageOnError())

	if err := app.Run(ctx); err != nil {
		if errors.Is(err, themecheck.ErrChecksFailed) {
			os.Exit(1)
		}
		app.FatalIfErrorf(err)
	}
}
