package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tendermint/tendermint/libs/log"

	"github.com/cosmos/interchain-security-model/x/ccv/types"
)

const (
	EnvPrefix = "CCV_MODEL"

	FlagParams   = "params"
	FlagLogLevel = "log-level"
)

// config is shared by the subcommands. It is filled in before any of them
// runs.
type config struct {
	v      *viper.Viper
	params types.Params
	logger log.Logger
}

// NewRootCmd creates the root command of the model CLI. Flags can also be
// set through CCV_MODEL_ prefixed environment variables.
func NewRootCmd() *cobra.Command {
	cfg := &config{v: viper.New()}
	cfg.v.SetEnvPrefix(EnvPrefix)
	cfg.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.v.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:           "ccv-model",
		Short:         "Executable model of Interchain Security",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return cfg.load(cmd)
		},
	}
	rootCmd.PersistentFlags().String(FlagParams, "", "YAML file with model params, defaults are used if empty")
	rootCmd.PersistentFlags().String(FlagLogLevel, "info", "log level: debug, info, error or none")

	rootCmd.AddCommand(
		genCmd(cfg),
		replayCmd(cfg),
		paramsCmd(cfg),
	)
	return rootCmd
}

func (cfg *config) load(cmd *cobra.Command) error {
	if err := cfg.v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}

	logger := log.NewTMLogger(log.NewSyncWriter(cmd.ErrOrStderr()))
	option, err := log.AllowLevel(cfg.v.GetString(FlagLogLevel))
	if err != nil {
		return err
	}
	cfg.logger = log.NewFilter(logger, option)

	cfg.params = types.DefaultParams()
	if path := cfg.v.GetString(FlagParams); path != "" {
		params, err := types.LoadParams(path)
		if err != nil {
			return err
		}
		cfg.params = params
		cfg.logger.Info("loaded params", "path", path)
	}
	return nil
}
