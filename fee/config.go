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

package fee

import (
	"code.vegaprotocol.io/feecheck/config/encoding"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/vega/libs/num"
)

const namedLogger = "fee"

// Config represents the configuration of the fee checker.
type Config struct {
	Level           encoding.LogLevel `long:"log-level"`
	AcceptableError encoding.Decimal  `long:"acceptable-error" description:"Largest absolute difference tolerated between a computed and a reported fee, in asset units"`
	FailFast        encoding.Bool     `long:"fail-fast" choice:"true" choice:"false" description:"Stop at the first discrepancy"`
	Workers         int               `long:"workers" description:"Number of trades checked concurrently"`
	MaxPages        int               `long:"max-pages" description:"Maximum number of trade pages read from the data node"`
	MarketCacheSize int               `long:"market-cache-size" description:"Number of markets kept in the scaling cache"`
}

// NewDefaultConfig creates an instance of the package specific configuration.
func NewDefaultConfig() Config {
	return Config{
		Level:           encoding.LogLevel{Level: logging.InfoLevel},
		AcceptableError: encoding.Decimal{Decimal: num.DecimalFromInt64(100)},
		FailFast:        true,
		Workers:         1,
		MaxPages:        5,
		MarketCacheSize: 256,
	}
}
