// Command pbtool compiles, deploys and packages QGIS plugins as declared in
// a pb_tool.cfg file.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"git.fractalqb.de/fractalqb/pbtool/pbcfg"
	"git.fractalqb.de/fractalqb/pbtool/pbkore"
	"github.com/spf13/pflag"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCommand(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	cancel()
	if err != nil {
		handleError(os.Stderr, err)
		os.Exit(1)
	}
}

func handleError(w io.Writer, err error) {
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	var tf *pbkore.ToolFailure
	switch {
	case errors.Is(err, pbcfg.ErrMissingConfigFile):
		fmt.Fprintf(w, "Error: %s\nWe can't do anything without it\n", err)
	case errors.As(err, &tf):
		slog.Error("external tool failed",
			slog.String("tool", tf.Tool),
			slog.Int("exit", tf.ExitCode()),
			slog.String("error", tf.Err.Error()),
		)
	default:
		fmt.Fprintf(w, "Error: %s\n", err)
	}
}
