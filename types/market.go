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

package types

import (
	"errors"
	"fmt"

	"code.vegaprotocol.io/vega/libs/num"
	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

var ErrUnsupportedProduct = errors.New("market product has no settlement asset")

type Market struct {
	ID                    string
	DecimalPlaces         uint64
	PositionDecimalPlaces int64
	SettlementAsset       string
}

// Scaling is everything needed to turn a trade's raw price and size into a
// notional expressed in settlement asset units.
type Scaling struct {
	// PriceFactor converts a price in market precision to asset precision.
	PriceFactor num.Decimal
	// PositionDecimalPlaces is the precision of trade sizes.
	PositionDecimalPlaces int32
}

// NewScaling derives the scaling of a market from its settlement asset.
func NewScaling(mkt *Market, asset *Asset) Scaling {
	exp := int32(asset.Decimals) - int32(mkt.DecimalPlaces)
	return Scaling{
		PriceFactor:           num.DecimalOne().Shift(exp),
		PositionDecimalPlaces: int32(mkt.PositionDecimalPlaces),
	}
}

// Notional returns floor(price * priceFactor) * size / 10^positionDecimalPlaces.
func (s Scaling) Notional(price num.Decimal, size uint64) num.Decimal {
	assetPrice := price.Mul(s.PriceFactor).Floor()
	return assetPrice.Mul(num.DecimalFromUint(num.NewUint(size))).Shift(-s.PositionDecimalPlaces)
}

func MarketFromProto(m *vegapb.Market) (*Market, error) {
	asset, err := settlementAsset(m)
	if err != nil {
		return nil, fmt.Errorf("market %s: %w", m.Id, err)
	}
	return &Market{
		ID:                    m.Id,
		DecimalPlaces:         m.DecimalPlaces,
		PositionDecimalPlaces: m.PositionDecimalPlaces,
		SettlementAsset:       asset,
	}, nil
}

func settlementAsset(m *vegapb.Market) (string, error) {
	instrument := m.GetTradableInstrument().GetInstrument()
	if instrument == nil {
		return "", ErrUnsupportedProduct
	}
	if f := instrument.GetFuture(); f != nil {
		return f.SettlementAsset, nil
	}
	if p := instrument.GetPerpetual(); p != nil {
		return p.SettlementAsset, nil
	}
	if s := instrument.GetSpot(); s != nil {
		return s.QuoteAsset, nil
	}
	return "", ErrUnsupportedProduct
}
