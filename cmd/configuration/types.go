// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

// Config is the content of the configuration file. Unset fields keep the
// flag defaults.
type Config struct {
	// Host is the LMS host used for absolute URLs of outgoing content
	Host *string `yaml:"host,omitempty"`
	// Protocol of absolute URLs, https when empty
	Protocol *string `yaml:"protocol,omitempty"`
	// Secret signs user content snippets. User content is not annotated
	// without a secret.
	Secret *string `yaml:"secret,omitempty"`
	// DefaultContext prefixes root file links when their context is unknown,
	// e.g. /courses/1
	DefaultContext *string `yaml:"defaultContext,omitempty"`
	// LocalHosts are hosts whose absolute links are made root-relative
	LocalHosts []string `yaml:"localHosts,omitempty"`
	// MaxInputBytes limits the size of a single input
	MaxInputBytes *int64 `yaml:"maxInputBytes,omitempty"`
	// Workers is the number of parallel batch workers
	Workers *int `yaml:"workers,omitempty"`
}
