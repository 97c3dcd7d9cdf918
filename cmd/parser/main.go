package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"uwsgi-log-stats/internal/app"
	"uwsgi-log-stats/internal/cli"
	"uwsgi-log-stats/internal/shared/configs"
	"uwsgi-log-stats/internal/shared/svcerrors"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one parser run and returns the process exit status.
func run(argv []string, stdout, stderr io.Writer) int {
	args, err := cli.ParseArgs(argv)
	if err != nil {
		if errors.Is(err, cli.ErrHelp) {
			fmt.Fprint(stdout, cli.Usage())
			return 0
		}
		return fail(stderr, err)
	}

	// Load configuration
	cfg, err := configs.LoadConfig(args.ConfigPath)
	if err != nil {
		return fail(stderr, errInvalidConfig(err))
	}

	// Initialize application
	application, err := app.New(cfg, args, stdout)
	if err != nil {
		return fail(stderr, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		return fail(stderr, err)
	}
	return 0
}

func fail(stderr io.Writer, err error) int {
	fmt.Fprintf(stderr, "Error: %v\n", err)

	if svcErr, ok := svcerrors.AsServiceError(err); ok && svcErr.ExitCode != 0 {
		return svcErr.ExitCode
	}
	return svcerrors.ExitCodeFailure
}
