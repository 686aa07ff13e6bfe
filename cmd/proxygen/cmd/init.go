package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/panagiotisptr/inject/generate"
)

func newInitCmd() *cobra.Command {
	var force bool

	c := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a sample batch config",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultConfigFile
			if len(args) == 1 {
				path = args[0]
			}

			flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
			if force {
				flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
			}
			f, err := os.OpenFile(path, flags, 0o644)
			if errors.Is(err, os.ErrExist) {
				return fmt.Errorf("%s already exists, use --force to overwrite", path)
			}
			if err != nil {
				return fmt.Errorf("error creating file: %w", err)
			}
			defer f.Close()

			if err := generate.SampleConfig().WriteYAML(f); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)

			return nil
		},
	}

	c.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return c
}
