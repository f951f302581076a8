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
	"errors"
	"fmt"

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/protos/vega"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

var ErrInvalidData = errors.New("invalid data node response")

// invalid reports a message that could not be converted, with the message
// itself so the offending field can be found.
func invalid(m proto.Message, err error) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidData, err.Error(), protojson.Format(m))
}

func networkParameterChanges(log *logging.Logger, data []*vega.GovernanceData) []types.NetworkParameterChange {
	out := make([]types.NetworkParameterChange, 0, len(data))
	for _, gd := range data {
		change, ok := types.NetworkParameterChangeFromProto(gd)
		if !ok {
			// batch proposals carry their changes elsewhere
			log.Debug("ignoring proposal without a network parameter change",
				logging.String("proposal-id", gd.GetProposal().GetId()))
			continue
		}
		out = append(out, change)
	}
	return out
}

func marketFromProto(m *vega.Market) (*types.Market, error) {
	mkt, err := types.MarketFromProto(m)
	if err != nil {
		return nil, invalid(m, err)
	}
	return mkt, nil
}

func marketsFromProto(log *logging.Logger, markets []*vega.Market) []types.Market {
	out := make([]types.Market, 0, len(markets))
	for _, m := range markets {
		mkt, err := types.MarketFromProto(m)
		if err != nil {
			log.Warn("skipping market", logging.MarketID(m.Id), logging.Error(err))
			continue
		}
		out = append(out, *mkt)
	}
	return out
}

func assetFromProto(a *vega.Asset) (*types.Asset, error) {
	asset, err := types.AssetFromProto(a)
	if err != nil {
		return nil, invalid(a, err)
	}
	return asset, nil
}

func assetsFromProto(log *logging.Logger, assets []*vega.Asset) []types.Asset {
	out := make([]types.Asset, 0, len(assets))
	for _, a := range assets {
		asset, err := types.AssetFromProto(a)
		if err != nil {
			log.Warn("skipping asset", logging.String("asset-id", a.Id), logging.Error(err))
			continue
		}
		out = append(out, *asset)
	}
	return out
}

func tradesFromProto(trades []*vega.Trade) ([]*types.Trade, error) {
	out := make([]*types.Trade, 0, len(trades))
	for _, t := range trades {
		trade, err := types.TradeFromProto(t)
		if err != nil {
			return nil, invalid(t, err)
		}
		out = append(out, trade)
	}
	return out, nil
}
