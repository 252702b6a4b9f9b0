// SPDX-FileCopyrightText: 2020 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package configuration

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFileName = "config"
	// HomeDir is the directory of the default configuration file in the user home
	HomeDir = ".richcontent"
	// EnvConfigPath is the environment variable with the path of the configuration file
	EnvConfigPath = "RICHCONTENTCONFIG"
)

// Loader loads the configuration
type Loader interface {
	Load() (*Config, error)
}

// DefaultLoader loads the configuration from Path, the file named by
// RICHCONTENTCONFIG or $HOME/.richcontent/config, in this order.
// A missing default file is an empty configuration.
type DefaultLoader struct {
	Path string
}

// Load implements Loader
func (d *DefaultLoader) Load() (*Config, error) {
	if d.Path != "" {
		return load(d.Path)
	}
	if configFilePath, found := os.LookupEnv(EnvConfigPath); found {
		if configFilePath == "" {
			return nil, fmt.Errorf("the provided environment variable %s is set to empty string", EnvConfigPath)
		}
		return load(configFilePath)
	}
	userHomeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %v", err)
	}
	configFilePath := filepath.Join(userHomeDir, HomeDir, defaultConfigFileName)
	if _, err := os.Stat(configFilePath); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return load(configFilePath)
}

func load(configFilePath string) (*Config, error) {
	if configFilePath == "" {
		return &Config{}, nil
	}
	stat, err := os.Stat(configFilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to get file info for configuration file path %s: %v", configFilePath, err)
	}
	if stat.IsDir() {
		return nil, fmt.Errorf("the config file path %s is directory, instead of file", configFilePath)
	}
	configFile, err := os.ReadFile(configFilePath)
	if err != nil {
		return nil, err
	}
	config := &Config{}
	if err := yaml.Unmarshal(configFile, config); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file %s: %w", configFilePath, err)
	}
	return config, nil
}

// Values returns the set fields of c keyed by their flag names
func (c *Config) Values() map[string]interface{} {
	values := map[string]interface{}{}
	if c == nil {
		return values
	}
	if c.Host != nil {
		values["host"] = *c.Host
	}
	if c.Protocol != nil {
		values["protocol"] = *c.Protocol
	}
	if c.Secret != nil {
		values["secret"] = *c.Secret
	}
	if c.DefaultContext != nil {
		values["default-context"] = *c.DefaultContext
	}
	if c.LocalHosts != nil {
		values["local-hosts"] = c.LocalHosts
	}
	if c.MaxInputBytes != nil {
		values["max-input-bytes"] = *c.MaxInputBytes
	}
	if c.Workers != nil {
		values["workers"] = *c.Workers
	}
	return values
}
