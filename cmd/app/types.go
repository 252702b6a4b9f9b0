// SPDX-FileCopyrightText: 2023 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package app

const (
	directionIncoming = "incoming"
	directionOutgoing = "outgoing"
	directionSanitize = "sanitize"
)

// options are the settings shared by all commands
type options struct {
	Host           string   `mapstructure:"host"`
	Protocol       string   `mapstructure:"protocol"`
	Secret         string   `mapstructure:"secret"`
	DefaultContext string   `mapstructure:"default-context"`
	LocalHosts     []string `mapstructure:"local-hosts"`
	MaxInputBytes  int64    `mapstructure:"max-input-bytes"`
	Workers        int      `mapstructure:"workers"`
}

// batchOptions are the settings of the batch command
type batchOptions struct {
	options     `mapstructure:",squash"`
	Direction   string `mapstructure:"direction"`
	Source      string `mapstructure:"source"`
	Destination string `mapstructure:"destination"`
	DryRun      bool   `mapstructure:"dry-run"`
	FailFast    bool   `mapstructure:"fail-fast"`
}
