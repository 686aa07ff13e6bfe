package cmd

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/panagiotisptr/inject/generate"
)

var (
	verbose bool
	workDir string
)

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "proxygen",
		Short:         "Generate interceptable proxies for Go interfaces",
		Long:          `proxygen renders a proxy struct for a Go interface. Every method of the proxy runs through an interceptor.Wrapped, so arguments and results can be transformed and hooks attached per method.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&workDir, "dir", ".", "directory packages are resolved from")

	root.AddCommand(newGenerateCmd(), newBatchCmd(), newInitCmd())

	return root
}

// Execute runs the root command and logs any error.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		newLogger().Error("proxygen failed", "error", err)
	}

	return err
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newGenerator() *generate.Generator {
	return generate.NewGenerator(
		generate.WithDir(workDir),
		generate.WithLogger(newLogger()),
	)
}
