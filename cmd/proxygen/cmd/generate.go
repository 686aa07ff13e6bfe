package cmd

import (
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var interfacePath, packageName, name, output string

	c := &cobra.Command{
		Use:   "generate",
		Short: "Generate a single proxy",
		Example: `  proxygen generate --interface io.ReadWriter --package proxies \
    --name ReadWriterProxy --output read_writer_proxy.go`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return newGenerator().GenerateProxy(interfacePath, packageName, name, output)
		},
	}

	c.Flags().StringVar(&interfacePath, "interface", "", "interface full path - {package}.{interface}")
	c.Flags().StringVar(&packageName, "package", "", "package name")
	c.Flags().StringVar(&name, "name", "", "name of the generated proxy struct")
	c.Flags().StringVar(&output, "output", "", "output file name")
	for _, f := range []string{"interface", "package", "name", "output"} {
		_ = c.MarkFlagRequired(f)
	}

	return c
}
