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

package commands

import (
	"context"
	"fmt"

	"code.vegaprotocol.io/feecheck/config"
	"code.vegaprotocol.io/feecheck/logging"

	"github.com/jessevdk/go-flags"
)

type InitCmd struct {
	config.HomeFlag

	Force bool `short:"f" long:"force" description:"Overwrite an existing configuration file"`
}

var initCmd InitCmd

func (opts *InitCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer logger.AtExit()

	loader, err := config.NewLoader(opts.Home)
	if err != nil {
		return fmt.Errorf("couldn't initialise configuration loader: %w", err)
	}

	exists, err := loader.ConfigExists()
	if err != nil {
		return fmt.Errorf("couldn't verify configuration presence: %w", err)
	}

	if exists && !opts.Force {
		return fmt.Errorf("configuration already exists at `%s` please remove it first or re-run using -f", loader.ConfigFilePath())
	}

	cfg := config.NewDefaultConfig()
	if err := loader.Save(&cfg); err != nil {
		return fmt.Errorf("couldn't save configuration file: %w", err)
	}

	logger.Info("configuration generated successfully", logging.String("path", loader.ConfigFilePath()))
	return nil
}

func Init(_ context.Context, parser *flags.Parser) error {
	initCmd = InitCmd{}

	short := "Writes the default configuration"
	long := "Generate feecheck.toml with the default configuration in the home directory"

	_, err := parser.AddCommand("init", short, long, &initCmd)
	return err
}
