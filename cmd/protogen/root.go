package main

import (
	"fmt"
	"strings"

	"github.com/filiphsps/MiNET-protocol-converter/internal/config"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	source     string
	output     string
	format     string
	strict     bool
	force      bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:           "protogen",
		Short:         "Convert the MiNET protocol description into a protodef schema",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (TOML)")
	root.AddCommand(newGenerateCmd(opts), newCheckCmd(opts), newInitCmd(opts))
	return root
}

// resolveConfig loads the config file and applies flags set on cmd.
func resolveConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, err
	}
	flags := cmd.Flags()
	if flags.Changed("source") {
		cfg.Source = opts.source
	}
	if flags.Changed("output") {
		cfg.Output = opts.output
	}
	if flags.Changed("format") {
		cfg.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if flags.Changed("strict") {
		cfg.Strict = opts.strict
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, nil
}

func addSourceFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.source, "source", "s", "", "protocol description URL or file")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on unresolved type references")
}
