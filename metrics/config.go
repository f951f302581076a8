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

package metrics

import "code.vegaprotocol.io/feecheck/config/encoding"

// Config represents the configuration of the metric package.
type Config struct {
	Port    int           `long:"port" description:"Port the metrics are served on"`
	Path    string        `long:"path" description:"HTTP path the metrics are served on"`
	Enabled encoding.Bool `long:"enabled" choice:"true" choice:"false" description:"Serve prometheus metrics"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Port:    2112,
		Path:    "/metrics",
		Enabled: false,
	}
}
