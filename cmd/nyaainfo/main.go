package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/amaumene/nyaainfo/internal/config"
	"github.com/amaumene/nyaainfo/internal/errors"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdout, os.Stderr, os.LookupEnv)
	stop()
	os.Exit(code)
}

// run executes the app and turns its error into an exit code. Response
// failures are reported on stdout with their exact message, everything
// else on stderr.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, lookup config.LookupFunc) int {
	err := newApp(stdout, stderr, lookup).RunContext(ctx, hoistFlags(args))
	if err == nil {
		return errors.ExitCode(nil)
	}

	if errors.TypeOf(err) == "" {
		// flag parsing errors come back from the cli package untyped
		err = errors.NewQueryError(errors.ErrorTypeUsage, err.Error(), nil)
	}

	var qe *errors.QueryError
	stderrors.As(err, &qe)

	if errors.IsRecovered(err) {
		fmt.Fprintln(stdout, qe.Message)
	} else if qe.Cause != nil {
		fmt.Fprintf(stderr, "Error: %s: %v\n", qe.Message, qe.Cause)
	} else {
		fmt.Fprintf(stderr, "Error: %s\n", qe.Message)
	}

	return errors.ExitCode(err)
}
