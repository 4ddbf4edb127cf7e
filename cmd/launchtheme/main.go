// Command launchtheme manages launcher themes.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/launchtime/launchtheme/internal/cli"
)

var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.ExecuteContext(ctx, version); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
