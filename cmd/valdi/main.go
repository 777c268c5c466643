// Command valdi validates people records with the person factory.
//
// Usage:
//
//	valdi check FILE   validate a YAML or JSON list and print a JSON report
//	valdi serve        serve the people HTTP API on VALDI_HTTP_ADDR
//
// Configuration is read from VALDI_* environment variables and an optional
// .env file in the working directory.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
