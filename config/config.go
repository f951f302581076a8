// Copyright (C) 2023 Gobalsky Labs Limited
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"code.vegaprotocol.io/feecheck/client/datanode"
	"code.vegaprotocol.io/feecheck/fee"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/metrics"
	vgfs "code.vegaprotocol.io/vega/libs/fs"

	"github.com/BurntSushi/toml"
)

const configFileName = "feecheck.toml"

// Empty is used when a command or sub-command receives no argument and has
// no execution.
type Empty struct{}

// HomeFlag points at the directory holding the configuration file.
type HomeFlag struct {
	Home string `long:"home" description:"Path to the directory holding feecheck.toml" default:"."`
}

// Config ties together all other application configuration types.
type Config struct {
	Logging  logging.Config  `group:"Logging" namespace:"logging"`
	Fee      fee.Config      `group:"Fee" namespace:"fee"`
	DataNode datanode.Config `group:"DataNode" namespace:"datanode"`
	Metrics  metrics.Config  `group:"Metrics" namespace:"metrics"`
}

// NewDefaultConfig returns a set of default configs for all packages, as
// specified at the per package config level.
func NewDefaultConfig() Config {
	return Config{
		Logging:  logging.NewDefaultConfig(),
		Fee:      fee.NewDefaultConfig(),
		DataNode: datanode.NewDefaultConfig(),
		Metrics:  metrics.NewDefaultConfig(),
	}
}

// Loader reads and writes the configuration file in a home directory.
type Loader struct {
	home           string
	configFilePath string
}

func NewLoader(home string) (*Loader, error) {
	abs, err := filepath.Abs(home)
	if err != nil {
		return nil, fmt.Errorf("could not resolve home %q: %w", home, err)
	}
	return &Loader{
		home:           abs,
		configFilePath: filepath.Join(abs, configFileName),
	}, nil
}

func (l *Loader) ConfigFilePath() string {
	return l.configFilePath
}

func (l *Loader) ConfigExists() (bool, error) {
	exists, err := vgfs.FileExists(l.configFilePath)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// Save writes the configuration, replacing any existing file.
func (l *Loader) Save(cfg *Config) error {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return fmt.Errorf("could not encode configuration: %w", err)
	}

	if err := vgfs.EnsureDir(l.home); err != nil {
		return fmt.Errorf("could not create home %s: %w", l.home, err)
	}

	if err := vgfs.WriteFile(l.configFilePath, buf.Bytes()); err != nil {
		return fmt.Errorf("could not write configuration file %s: %w", l.configFilePath, err)
	}
	return nil
}

// Get reads the configuration file. Values missing from the file keep their
// defaults.
func (l *Loader) Get() (*Config, error) {
	buf, err := vgfs.ReadFile(l.configFilePath)
	if err != nil {
		return nil, fmt.Errorf("could not read configuration file %s: %w", l.configFilePath, err)
	}

	cfg := NewDefaultConfig()
	if _, err := toml.Decode(string(buf), &cfg); err != nil {
		return nil, fmt.Errorf("could not decode configuration file %s: %w", l.configFilePath, err)
	}
	return &cfg, nil
}
