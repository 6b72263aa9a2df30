package cmd

import (
	"github.com/spf13/cobra"

	core "github.com/cosmos/interchain-security-model/tests/difference/core/driver"
)

const (
	FlagTraces  = "traces"
	FlagActions = "actions"
	FlagSeed    = "seed"
	FlagOut     = "out"
)

func genCmd(cfg *config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate random traces and write them to a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			genCfg := core.DefaultGeneratorConfig()
			genCfg.NumActions = cfg.v.GetInt(FlagActions)

			stats := core.NewStats()
			gen, err := core.NewGenerator(cfg.logger, cfg.params, genCfg, stats)
			if err != nil {
				return err
			}

			n := cfg.v.GetInt(FlagTraces)
			seed := cfg.v.GetInt64(FlagSeed)
			traces := make([]core.TraceData, 0, n)
			for i := 0; i < n; i++ {
				trace, err := gen.Generate(seed + int64(i))
				if err != nil {
					return err
				}
				traces = append(traces, trace)
			}

			out := cfg.v.GetString(FlagOut)
			if err := core.WriteTraces(out, traces); err != nil {
				return err
			}
			cfg.logger.Info("wrote traces", "path", out, "traces", n)
			return stats.Report(cmd.OutOrStdout())
		},
	}
	cmd.Flags().Int(FlagTraces, 10, "number of traces")
	cmd.Flags().Int(FlagActions, core.DefaultGeneratorConfig().NumActions, "number of actions per trace")
	cmd.Flags().Int64(FlagSeed, 0, "seed of the first trace, following traces use the next seeds")
	cmd.Flags().String(FlagOut, "traces.json", "output file")
	return cmd
}
