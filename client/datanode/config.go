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

package datanode

import (
	"time"

	"code.vegaprotocol.io/feecheck/config/encoding"
	"code.vegaprotocol.io/feecheck/logging"
)

const namedLogger = "datanode"

// Config represents the configuration of the data node client.
type Config struct {
	Level    encoding.LogLevel `long:"log-level"`
	Address  string            `long:"address" description:"gRPC address of the data node"`
	Timeout  encoding.Duration `long:"timeout" description:"Timeout of a single data node request"`
	PageSize int32             `long:"page-size" description:"Number of items requested per page"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:    encoding.LogLevel{Level: logging.InfoLevel},
		Address:  "localhost:3007",
		Timeout:  encoding.Duration{Duration: 10 * time.Second},
		PageSize: 1000,
	}
}
