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

package logging

import (
	"fmt"
	"time"

	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	"go.uber.org/zap"
)

// Field is a structured log field.
type Field = zap.Field

// Bool constructs a field that carries a bool.
func Bool(key string, val bool) zap.Field {
	return zap.Bool(key, val)
}

// Duration constructs a field with the given key and value.
func Duration(key string, val time.Duration) zap.Field {
	return zap.Duration(key, val)
}

// Error constructs a field that carries an error.
func Error(err error) zap.Field {
	return zap.Error(err)
}

// Int constructs a field with the given key and value.
func Int(key string, val int) zap.Field {
	return zap.Int(key, val)
}

// Uint64 constructs a field with the given key and value.
func Uint64(key string, val uint64) zap.Field {
	return zap.Uint64(key, val)
}

// String constructs a field with the given key and value.
func String(key string, val string) zap.Field {
	return zap.String(key, val)
}

// Time constructs a zap.Field with the given key and value.
func Time(key string, val time.Time) zap.Field {
	return zap.Time(key, val)
}

// Decimal constructs a field with the given key and value.
func Decimal(key string, val num.Decimal) zap.Field {
	return zap.String(key, val.String())
}

// MarketID constructs a field with the given key and value.
func MarketID(marketID string) zap.Field {
	return zap.String("market", marketID)
}

// PartyID constructs a field with the given key and value.
func PartyID(partyID string) zap.Field {
	return zap.String("party", partyID)
}

// TradeID constructs a field with the given key and value.
func TradeID(tradeID string) zap.Field {
	return zap.String("trade-id", tradeID)
}

// EpochSeq constructs a field carrying an epoch sequence number.
func EpochSeq(seq uint64) zap.Field {
	return zap.Uint64("epoch", seq)
}

// Epoch constructs a field with a full epoch description.
func Epoch(e types.Epoch) zap.Field {
	return zap.String("epoch", e.String())
}

// Trade constructs a field with the given key and value.
func Trade(trade *types.Trade) zap.Field {
	return zap.String("trade", trade.String())
}

// Fee constructs a field describing a fee breakdown.
func Fee(key string, fee *types.Fee) zap.Field {
	return zap.String(key, fee.String())
}

// Factors constructs a field for an optional set of maker/infrastructure/liquidity factors.
func Factors(key string, f *types.Factors) zap.Field {
	if f == nil {
		return zap.String(key, "none")
	}
	return zap.String(key, f.String())
}

// Reflect constructs a field by running reflection over all the
// field of value passed as a parameter.
func Reflect(key string, val interface{}) zap.Field {
	return zap.String(key, fmt.Sprintf("%#v", val))
}
