package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/beka-birhanu/vinom-maze/config"
	"github.com/beka-birhanu/vinom-maze/logger"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var appLogger *log.Logger

func newRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "vinom-maze",
		Short:        "Generate and solve perfect mazes",
		Long:         `vinom-maze carves perfect square mazes with a randomized Kruskal algorithm, solves them, and renders or serves the result.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetVerbose(appLogger, verbose)
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newGenerateCommand())
	root.AddCommand(newServeCommand())
	root.AddCommand(newTokenCommand())

	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	appLogger, _ = logger.New("APP", config.ColorGreen, os.Stderr)

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
