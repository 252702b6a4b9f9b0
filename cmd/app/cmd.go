// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"context"
	"strings"

	"github.com/gardener/richcontent/cmd/configuration"
	"github.com/gardener/richcontent/cmd/gendocs"
	"github.com/gardener/richcontent/pkg/osfakes/osshim"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variables overriding configuration values
const EnvPrefix = "RICHCONTENT"

// NewCommand creates a new root command and propagates
// the context to its subcommands
func NewCommand(ctx context.Context) *cobra.Command {
	return newCommand(ctx, &osshim.OsShim{})
}

func newCommand(ctx context.Context, sh osshim.Os) *cobra.Command {
	vip := viper.New()
	vip.SetEnvPrefix(EnvPrefix)
	vip.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	vip.AutomaticEnv()

	cmd := &cobra.Command{
		Use:   "richcontent",
		Short: "Rewrite rich HTML content between its stored and delivered form",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfiguration(vip, &configuration.DefaultLoader{Path: vip.GetString("config")})
		},
		SilenceUsage: true,
	}
	configureFlags(cmd, vip)
	addKlogFlags(cmd)

	cmd.AddCommand(
		newRewriteCmd(directionIncoming, "Normalize user submitted HTML for storage", vip, sh),
		newRewriteCmd(directionOutgoing, "Expand stored HTML for delivery to clients", vip, sh),
		newRewriteCmd(directionSanitize, "Sanitize HTML with the URL attribute whitelist", vip, sh),
		newBatchCmd(ctx, vip, sh),
		NewVersionCmd(),
		newCompletionCmd(),
		gendocs.NewGenCmdDocs(sh),
	)
	return cmd
}

// loadConfiguration merges the configuration file under flags and environment
func loadConfiguration(vip *viper.Viper, loader configuration.Loader) error {
	config, err := loader.Load()
	if err != nil {
		return err
	}
	return vip.MergeConfigMap(config.Values())
}

func newRewriteCmd(direction, short string, vip *viper.Viper, sh osshim.Os) *cobra.Command {
	return &cobra.Command{
		Use:   direction + " [FILE|-]",
		Short: short,
		Long:  short + ". Reads FILE, or the standard input when FILE is - or missing, and writes the result to the standard output.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var name string
			if len(args) > 0 {
				name = args[0]
			}
			return rewriteOne(cmd, vip, sh, direction, name)
		},
	}
}

func newBatchCmd(ctx context.Context, vip *viper.Viper, sh osshim.Os) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Rewrite all files of a directory tree in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var o batchOptions
			if err := vip.Unmarshal(&o); err != nil {
				return err
			}
			return runBatch(ctx, &o, sh, cmd.OutOrStdout())
		},
	}
	configureBatchFlags(cmd, vip)
	return cmd
}
