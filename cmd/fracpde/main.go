// Command fracpde runs the time-fractional advection-diffusion solver from
// the command line.
//
//	fracpde run --config run.yaml --sqlite run.db
//	fracpde weights --alpha 0.5 --dt 0.1 --levels 10
//	fracpde version
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tebeka/atexit"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		atexit.Exit(1)
	}
	atexit.Exit(0)
}
