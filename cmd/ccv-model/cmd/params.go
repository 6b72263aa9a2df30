package cmd

import (
	"github.com/spf13/cobra"
)

func paramsCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "params",
		Short: "Print the model params as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := cmd.OutOrStdout().Write(cfg.params.MustMarshalYAML())
			return err
		},
	}
}
