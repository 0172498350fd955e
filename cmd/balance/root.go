package main

import (
	"github.com/spf13/cobra"

	"github.com/lixenwraith/balance/config"
	"github.com/lixenwraith/balance/constants"
)

type rootOptions struct {
	configPath string
	envFile    string
	debug      bool
	seed       int64
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "balance",
		Short:         "Two-lane balance game for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.configPath, "config", "", "TOML config file")
	pf.StringVar(&opts.envFile, "env-file", constants.DefaultEnvFile, "optional .env file")
	pf.BoolVar(&opts.debug, "debug", false, "write logs to "+constants.LogDir+"/"+constants.LogFileName)
	pf.Int64Var(&opts.seed, "seed", 0, "random seed (0 keeps the configured seed)")

	cmd.AddCommand(newPlayCmd(opts), newSimulateCmd(opts), newScoresCmd(opts))
	return cmd
}

// load applies flags last, over file and environment
func (o *rootOptions) load(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(o.configPath, o.envFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = o.debug
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = o.seed
	}
	return cfg, nil
}
