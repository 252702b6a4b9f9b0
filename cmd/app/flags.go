// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

import (
	"flag"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"k8s.io/klog/v2"
)

const defaultMaxInputBytes = 10 << 20

func configureFlags(command *cobra.Command, vip *viper.Viper) {
	command.PersistentFlags().String("config", "",
		"Path to the configuration file. Defaults to $RICHCONTENTCONFIG or $HOME/.richcontent/config.")
	_ = vip.BindPFlag("config", command.PersistentFlags().Lookup("config"))

	command.PersistentFlags().String("host", "",
		"LMS host of absolute URLs in outgoing content.")
	_ = vip.BindPFlag("host", command.PersistentFlags().Lookup("host"))

	command.PersistentFlags().String("protocol", "https",
		"Protocol of absolute URLs in outgoing content.")
	_ = vip.BindPFlag("protocol", command.PersistentFlags().Lookup("protocol"))

	command.PersistentFlags().String("secret", "",
		"Secret signing user content snippets. User content is not annotated without a secret.")
	_ = vip.BindPFlag("secret", command.PersistentFlags().Lookup("secret"))

	command.PersistentFlags().String("default-context", "",
		"Context prefixed to root file links, e.g. /courses/1.")
	_ = vip.BindPFlag("default-context", command.PersistentFlags().Lookup("default-context"))

	command.PersistentFlags().StringSlice("local-hosts", []string{},
		"Hosts whose absolute file links are made root-relative in incoming content.")
	_ = vip.BindPFlag("local-hosts", command.PersistentFlags().Lookup("local-hosts"))

	command.PersistentFlags().Int64("max-input-bytes", defaultMaxInputBytes,
		"Maximum size of a single input. Zero or less disables the limit.")
	_ = vip.BindPFlag("max-input-bytes", command.PersistentFlags().Lookup("max-input-bytes"))

	command.PersistentFlags().Int("workers", 10,
		"Number of parallel workers for batch processing.")
	_ = vip.BindPFlag("workers", command.PersistentFlags().Lookup("workers"))
}

func configureBatchFlags(command *cobra.Command, vip *viper.Viper) {
	command.Flags().String("direction", directionIncoming,
		"Rewrite applied to each file. Must be one of: incoming, outgoing or sanitize.")
	_ = vip.BindPFlag("direction", command.Flags().Lookup("direction"))

	command.Flags().StringP("source", "s", "",
		"Source directory.")
	_ = vip.BindPFlag("source", command.Flags().Lookup("source"))

	command.Flags().StringP("destination", "d", "",
		"Destination directory.")
	_ = vip.BindPFlag("destination", command.Flags().Lookup("destination"))

	command.Flags().Bool("dry-run", false,
		"Processes all files but instead of writing them, outputs the projected file/folder hierarchy and statistics for each file to the standard output.")
	_ = vip.BindPFlag("dry-run", command.Flags().Lookup("dry-run"))

	command.Flags().Bool("fail-fast", false,
		"Fail-fast vs fault tolerant operation.")
	_ = vip.BindPFlag("fail-fast", command.Flags().Lookup("fail-fast"))
}

// addKlogFlags adds the klog flags to rootCmd
func addKlogFlags(rootCmd *cobra.Command) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	fs.VisitAll(func(gf *flag.Flag) {
		rootCmd.PersistentFlags().AddFlag(pflag.PFlagFromGoFlag(gf))
	})
}
