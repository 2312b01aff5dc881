// Package main is the entry point for the memo CLI.
package main

import (
	"context"
	"fmt"
	"os"
	"syscall"

	sigctx "github.com/cicd-ai-toolkit/memo/pkg/context"
	"github.com/cicd-ai-toolkit/memo/pkg/errors"
)

func main() {
	ctx, cancel := sigctx.WithSignal(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(errors.ExitCode(err))
	}
}
