package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/panagiotisptr/inject/generate"
)

const defaultConfigFile = "proxygen.yaml"

func newBatchCmd() *cobra.Command {
	var cfgFile string

	c := &cobra.Command{
		Use:   "batch",
		Short: "Generate every proxy listed in a config file",
		Long: fmt.Sprintf(`Reads a YAML config listing the proxies to generate. The package and
output_dir keys can be overridden with %s_PACKAGE and %s_OUTPUT_DIR.`, generate.EnvPrefix, generate.EnvPrefix),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := generate.ReadConfig(cfgFile)
			if err != nil {
				return err
			}

			return newGenerator().GenerateAll(cfg)
		},
	}

	c.Flags().StringVarP(&cfgFile, "config", "c", defaultConfigFile, "config file")

	return c
}
