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
	"context"
	"time"

	"code.vegaprotocol.io/feecheck/fee"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/metrics"
	"code.vegaprotocol.io/feecheck/types"
)

// Instrumented logs every upstream call and records its count and latency.
type Instrumented struct {
	log  *logging.Logger
	next fee.TradingData
}

func NewInstrumented(log *logging.Logger, next fee.TradingData) *Instrumented {
	return &Instrumented{
		log:  log.Named("upstream"),
		next: next,
	}
}

func (i *Instrumented) done(method string, start time.Time, err error, fields ...logging.Field) {
	if err != nil {
		i.log.Error("upstream call failed",
			append(fields, logging.String("method", method), logging.Duration("took", time.Since(start)), logging.Error(err))...)
		return
	}
	if i.log.IsDebug() {
		i.log.Debug("upstream call",
			append(fields, logging.String("method", method), logging.Duration("took", time.Since(start)))...)
	}
}

func (i *Instrumented) GetVegaTime(ctx context.Context) (time.Time, error) {
	defer metrics.StartUpstreamRequestAndTime("GetVegaTime")()
	start := time.Now()
	t, err := i.next.GetVegaTime(ctx)
	i.done("GetVegaTime", start, err, logging.Time("vega-time", t))
	return t, err
}

func (i *Instrumented) GetEpoch(ctx context.Context, seq *uint64) (*types.Epoch, error) {
	defer metrics.StartUpstreamRequestAndTime("GetEpoch")()
	start := time.Now()
	e, err := i.next.GetEpoch(ctx, seq)
	fields := []logging.Field{logging.Bool("found", e != nil)}
	if seq != nil {
		fields = append(fields, logging.EpochSeq(*seq))
	}
	i.done("GetEpoch", start, err, fields...)
	return e, err
}

func (i *Instrumented) GetNetworkParameter(ctx context.Context, key string) (string, error) {
	defer metrics.StartUpstreamRequestAndTime("GetNetworkParameter")()
	start := time.Now()
	v, err := i.next.GetNetworkParameter(ctx, key)
	i.done("GetNetworkParameter", start, err, logging.String("key", key), logging.String("value", v))
	return v, err
}

func (i *Instrumented) ListEnactedNetworkParameterChanges(ctx context.Context) ([]types.NetworkParameterChange, error) {
	defer metrics.StartUpstreamRequestAndTime("ListGovernanceData")()
	start := time.Now()
	changes, err := i.next.ListEnactedNetworkParameterChanges(ctx)
	i.done("ListGovernanceData", start, err, logging.Int("changes", len(changes)))
	return changes, err
}

func (i *Instrumented) ListMarkets(ctx context.Context) ([]types.Market, error) {
	defer metrics.StartUpstreamRequestAndTime("ListMarkets")()
	start := time.Now()
	markets, err := i.next.ListMarkets(ctx)
	i.done("ListMarkets", start, err, logging.Int("markets", len(markets)))
	return markets, err
}

func (i *Instrumented) ListAssets(ctx context.Context) ([]types.Asset, error) {
	defer metrics.StartUpstreamRequestAndTime("ListAssets")()
	start := time.Now()
	assets, err := i.next.ListAssets(ctx)
	i.done("ListAssets", start, err, logging.Int("assets", len(assets)))
	return assets, err
}

func (i *Instrumented) GetMarket(ctx context.Context, id string) (*types.Market, error) {
	defer metrics.StartUpstreamRequestAndTime("GetMarket")()
	start := time.Now()
	mkt, err := i.next.GetMarket(ctx, id)
	i.done("GetMarket", start, err, logging.MarketID(id), logging.Bool("found", mkt != nil))
	return mkt, err
}

func (i *Instrumented) GetAsset(ctx context.Context, id string) (*types.Asset, error) {
	defer metrics.StartUpstreamRequestAndTime("GetAsset")()
	start := time.Now()
	asset, err := i.next.GetAsset(ctx, id)
	i.done("GetAsset", start, err, logging.String("asset-id", id), logging.Bool("found", asset != nil))
	return asset, err
}

func (i *Instrumented) ListTrades(ctx context.Context, since time.Time, maxPages int) ([]*types.Trade, error) {
	defer metrics.StartUpstreamRequestAndTime("ListTrades")()
	start := time.Now()
	trades, err := i.next.ListTrades(ctx, since, maxPages)
	i.done("ListTrades", start, err,
		logging.Time("since", since),
		logging.Int("max-pages", maxPages),
		logging.Int("trades", len(trades)),
	)
	return trades, err
}

func (i *Instrumented) GetReferralSetStats(ctx context.Context, epoch uint64, referee string) ([]types.ReferralSetStats, error) {
	defer metrics.StartUpstreamRequestAndTime("GetReferralSetStats")()
	start := time.Now()
	stats, err := i.next.GetReferralSetStats(ctx, epoch, referee)
	i.done("GetReferralSetStats", start, err, logging.EpochSeq(epoch), logging.PartyID(referee), logging.Int("stats", len(stats)))
	return stats, err
}

func (i *Instrumented) GetVolumeDiscountStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeDiscountStats, error) {
	defer metrics.StartUpstreamRequestAndTime("GetVolumeDiscountStats")()
	start := time.Now()
	stats, err := i.next.GetVolumeDiscountStats(ctx, epoch, party)
	i.done("GetVolumeDiscountStats", start, err, logging.EpochSeq(epoch), logging.PartyID(party), logging.Int("stats", len(stats)))
	return stats, err
}

func (i *Instrumented) GetVolumeRebateStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeRebateStats, error) {
	defer metrics.StartUpstreamRequestAndTime("GetVolumeRebateStats")()
	start := time.Now()
	stats, err := i.next.GetVolumeRebateStats(ctx, epoch, party)
	i.done("GetVolumeRebateStats", start, err, logging.EpochSeq(epoch), logging.PartyID(party), logging.Int("stats", len(stats)))
	return stats, err
}
