package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	core "github.com/cosmos/interchain-security-model/tests/difference/core/driver"
)

func replayCmd(cfg *config) *cobra.Command {
	return &cobra.Command{
		Use:   "replay [traces-file]",
		Short: "Replay traces against the model and check properties",
		Long: `Replay every trace in the file against a fresh model. The command fails at
the first action whose consequence differs from the recorded one, or when a
property does not hold. Params are read from the constants of each trace.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := core.LoadTraces(args[0])
			if err != nil {
				return err
			}
			driver := core.NewDriver(cfg.logger, nil)
			traces, err := driver.RunAll(data)
			if err != nil {
				return fmt.Errorf("%w%s", err, traces.Diagnostic())
			}
			cfg.logger.Info("replayed traces", "path", args[0], "traces", len(data))
			return driver.Stats().Report(cmd.OutOrStdout())
		},
	}
}
