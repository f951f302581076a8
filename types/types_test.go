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

package types_test

import (
	"testing"

	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"
	vegapb "code.vegaprotocol.io/vega/protos/vega"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradeRoles(t *testing.T) {
	trade := &types.Trade{
		Buyer:     "buyer",
		Seller:    "seller",
		BuyerFee:  &types.Fee{MakerFee: num.DecimalFromInt64(1)},
		SellerFee: &types.Fee{MakerFee: num.DecimalFromInt64(2)},
	}

	t.Run("buy aggressor", func(t *testing.T) {
		trade.Aggressor = types.SideBuy
		taker, maker := trade.Roles()
		assert.Equal(t, "buyer", taker)
		assert.Equal(t, "seller", maker)
		assert.Equal(t, "1", trade.TakerFee().MakerFee.String())
	})

	t.Run("sell aggressor", func(t *testing.T) {
		trade.Aggressor = types.SideSell
		taker, maker := trade.Roles()
		assert.Equal(t, "seller", taker)
		assert.Equal(t, "buyer", maker)
		assert.Equal(t, "2", trade.TakerFee().MakerFee.String())
	})

	t.Run("auction", func(t *testing.T) {
		trade.Aggressor = types.SideUnspecified
		taker, maker := trade.Roles()
		assert.Empty(t, taker)
		assert.Empty(t, maker)
		assert.True(t, trade.TakerFee().MakerFee.IsZero())
	})
}

func TestTradeFromProto(t *testing.T) {
	t.Run("close out type is kept", func(t *testing.T) {
		trade, err := types.TradeFromProto(&vegapb.Trade{
			Id:        "t1",
			Price:     "42",
			Aggressor: vegapb.Side_SIDE_SELL,
			Type:      vegapb.Trade_TYPE_NETWORK_CLOSE_OUT_BAD,
		})
		require.NoError(t, err)
		assert.True(t, trade.Type.IsNetworkCloseOut())
		assert.Equal(t, types.SideSell, trade.Aggressor)
		assert.NotNil(t, trade.BuyerFee)
		assert.NotNil(t, trade.SellerFee)
	})

	t.Run("missing price", func(t *testing.T) {
		_, err := types.TradeFromProto(&vegapb.Trade{Id: "t1"})
		assert.ErrorIs(t, err, types.ErrMissingTradePrice)
	})

	t.Run("invalid fee", func(t *testing.T) {
		_, err := types.TradeFromProto(&vegapb.Trade{
			Id:       "t1",
			Price:    "42",
			BuyerFee: &vegapb.Fee{TreasuryFee: "lots"},
		})
		assert.Error(t, err)
	})
}

func TestScaling(t *testing.T) {
	mkt := &types.Market{ID: "m", DecimalPlaces: 2, PositionDecimalPlaces: 1}
	asset := &types.Asset{ID: "a", Decimals: 5}
	s := types.NewScaling(mkt, asset)

	// 100.00 in market precision is 100.00000 in asset precision, times 10.0 units
	got := s.Notional(num.DecimalFromInt64(10000), 100)
	assert.Equal(t, "100000000", got.String())

	// asset with fewer decimals than the market floors the price
	s = types.NewScaling(&types.Market{DecimalPlaces: 3}, &types.Asset{Decimals: 1})
	got = s.Notional(num.DecimalFromInt64(12345), 2)
	assert.Equal(t, "246", got.String())
}

func TestMarketFromProto(t *testing.T) {
	future := &vegapb.Market{
		Id:            "future",
		DecimalPlaces: 2,
		TradableInstrument: &vegapb.TradableInstrument{
			Instrument: &vegapb.Instrument{
				Product: &vegapb.Instrument_Future{Future: &vegapb.Future{SettlementAsset: "usdt"}},
			},
		},
	}
	mkt, err := types.MarketFromProto(future)
	require.NoError(t, err)
	assert.Equal(t, "usdt", mkt.SettlementAsset)
	assert.EqualValues(t, 2, mkt.DecimalPlaces)

	spot := &vegapb.Market{
		Id: "spot",
		TradableInstrument: &vegapb.TradableInstrument{
			Instrument: &vegapb.Instrument{
				Product: &vegapb.Instrument_Spot{Spot: &vegapb.Spot{BaseAsset: "btc", QuoteAsset: "usdc"}},
			},
		},
	}
	mkt, err = types.MarketFromProto(spot)
	require.NoError(t, err)
	assert.Equal(t, "usdc", mkt.SettlementAsset)

	_, err = types.MarketFromProto(&vegapb.Market{Id: "empty"})
	assert.ErrorIs(t, err, types.ErrUnsupportedProduct)
}

func TestFactorsFromProto(t *testing.T) {
	f, err := types.FactorsFromDiscountFactorsProto(nil)
	require.NoError(t, err)
	assert.True(t, f.Maker.IsZero())

	f, err = types.FactorsFromRewardFactorsProto(&vegapb.RewardFactors{MakerRewardFactor: "0.1", InfrastructureRewardFactor: "0.2"})
	require.NoError(t, err)
	assert.Equal(t, "0.1", f.Maker.String())
	assert.Equal(t, "0.2", f.Infra.String())
	assert.True(t, f.Liquidity.IsZero())

	_, err = types.FactorsFromDiscountFactorsProto(&vegapb.DiscountFactors{MakerDiscountFactor: "half"})
	assert.Error(t, err)
}
