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

package fee_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"code.vegaprotocol.io/feecheck/fee"
	"code.vegaprotocol.io/feecheck/fee/mocks"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/metrics"
	"code.vegaprotocol.io/feecheck/netparams"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	marketID = "market-1"
	assetID  = "usdt"
	taker    = "taker"
	maker    = "maker"
)

var genesis = time.Unix(1700000000, 0)

func epochAt(seq uint64) *types.Epoch {
	start := genesis.Add(time.Duration(seq) * 24 * time.Hour)
	return &types.Epoch{Seq: seq, StartTime: start, ExpiryTime: start.Add(24 * time.Hour)}
}

type testChecker struct {
	*fee.Checker
	upstream *mocks.MockTradingData
	current  uint64
}

type checkerOpts struct {
	cfg     fee.Config
	current uint64
	params  map[string]string
}

func defaultOpts() checkerOpts {
	return checkerOpts{
		cfg:     fee.NewDefaultConfig(),
		current: 5,
		params: map[string]string{
			netparams.MarketFeeFactorsMakerFee:          "0.0002",
			netparams.MarketFeeFactorsInfrastructureFee: "0.0001",
			netparams.MarketFeeFactorsBuyBackFee:        "0",
			netparams.MarketFeeFactorsTreasuryFee:       "0",
		},
	}
}

func getTestChecker(t *testing.T, opts checkerOpts) *testChecker {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockTradingData(ctrl)

	upstream.EXPECT().GetVegaTime(gomock.Any()).Return(epochAt(opts.current).StartTime.Add(12*time.Hour), nil).AnyTimes()
	upstream.EXPECT().GetNetworkParameter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (string, error) {
			return opts.params[key], nil
		},
	).Times(len(netparams.FeeFactorKeys))
	upstream.EXPECT().ListEnactedNetworkParameterChanges(gomock.Any()).Return(nil, nil).Times(1)
	upstream.EXPECT().GetEpoch(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, seq *uint64) (*types.Epoch, error) {
			if seq == nil {
				return epochAt(opts.current), nil
			}
			return epochAt(*seq), nil
		},
	).AnyTimes()
	upstream.EXPECT().ListMarkets(gomock.Any()).Return(
		[]types.Market{{ID: marketID, DecimalPlaces: 2, PositionDecimalPlaces: 0, SettlementAsset: assetID}}, nil,
	).Times(1)
	upstream.EXPECT().ListAssets(gomock.Any()).Return(
		[]types.Asset{{ID: assetID, Symbol: "USDT", Decimals: 2}}, nil,
	).Times(1)

	c, err := fee.New(context.Background(), logging.NewTestLogger(), opts.cfg, upstream)
	require.NoError(t, err)
	return &testChecker{Checker: c, upstream: upstream, current: opts.current}
}

// noFactors expects one lookup per factor family and returns no stats.
func (tc *testChecker) noFactors(epoch uint64) {
	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), epoch, maker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetReferralSetStats(gomock.Any(), epoch, taker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetVolumeDiscountStats(gomock.Any(), epoch, taker).Return(nil, nil).Times(1)
}

// a trade with a notional of 1,000,000 asset units
func newTrade(id string, epoch uint64) *types.Trade {
	return &types.Trade{
		ID:        id,
		MarketID:  marketID,
		Price:     num.MustDecimalFromString("10000"),
		Size:      100,
		Buyer:     taker,
		Seller:    maker,
		Aggressor: types.SideBuy,
		Type:      types.TradeTypeDefault,
		Timestamp: epochAt(epoch).StartTime.Add(time.Hour),
		BuyerFee:  reportedFee("200", "100"),
		SellerFee: types.NewFee(),
	}
}

func reportedFee(makerFee, infraFee string) *types.Fee {
	f := types.NewFee()
	f.MakerFee = num.MustDecimalFromString(makerFee)
	f.InfrastructureFee = num.MustDecimalFromString(infraFee)
	return f
}

func TestCheckTrade(t *testing.T) {
	t.Run("full pipeline with no party factors", testFullPipeline)
	t.Run("reported fees are read from the aggressor", testSellAggressor)
	t.Run("referral discount is applied", testReferralDiscountApplied)
	t.Run("network close out is skipped without lookups", testCloseOutSkipped)
	t.Run("auction trade is skipped without lookups", testAuctionSkipped)
	t.Run("rebate reduces buyback and treasury", testRebateApplied)
	t.Run("trade in the first epoch has no party factors", testFirstEpoch)
	t.Run("unknown market is fetched once", testLazyMarket)
	t.Run("missing market is an error", testMissingMarket)
	t.Run("epoch mismatch aborts", testEpochMismatchAborts)
}

func testFullPipeline(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.noFactors(4)

	trade := newTrade("t1", 5)
	outcome, err := tc.CheckTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomePassed, outcome)

	comp, err := tc.Compute(context.Background(), trade)
	require.NoError(t, err)
	assert.Equal(t, "1000000", comp.Notional.String())
	assert.Equal(t, "200", comp.Final.Maker.String())
	assert.Equal(t, "100", comp.Final.Infra.String())
	assert.EqualValues(t, 5, comp.Epoch)
	assert.EqualValues(t, 4, comp.FactorEpoch)
}

func testSellAggressor(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.noFactors(4)

	trade := newTrade("t1", 5)
	trade.Buyer, trade.Seller = maker, taker
	trade.Aggressor = types.SideSell
	trade.BuyerFee, trade.SellerFee = types.NewFee(), reportedFee("200", "100")

	outcome, err := tc.CheckTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomePassed, outcome)
}

func testReferralDiscountApplied(t *testing.T) {
	opts := defaultOpts()
	opts.cfg.AcceptableError.Decimal = num.DecimalZero()
	tc := getTestChecker(t, opts)

	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(4), maker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetVolumeDiscountStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetReferralSetStats(gomock.Any(), uint64(4), taker).Return(
		[]types.ReferralSetStats{{
			AtEpoch:         4,
			PartyID:         taker,
			DiscountFactors: types.Factors{Maker: num.MustDecimalFromString("0.1"), Infra: num.DecimalZero(), Liquidity: num.DecimalZero()},
			RewardFactors:   types.EmptyFactors,
		}}, nil,
	).Times(1)

	ctx := context.Background()

	trade := newTrade("t1", 5)
	trade.BuyerFee = reportedFee("180", "100")
	trade.BuyerFee.MakerFeeReferrerDiscount = num.MustDecimalFromString("20")
	outcome, err := tc.CheckTrade(ctx, trade)
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomePassed, outcome)

	// factors are cached, no further lookups
	trade = newTrade("t2", 5)
	outcome, err = tc.CheckTrade(ctx, trade)
	assert.Equal(t, fee.OutcomeDiscrepancy, outcome)
	require.Error(t, err)
	assert.ErrorIs(t, err, fee.ErrFeeDiscrepancy)

	var derr *fee.DiscrepancyError
	require.True(t, errors.As(err, &derr))
	assert.Equal(t, "t2", derr.TradeID)
	assert.Equal(t, taker, derr.Taker)
	assert.Equal(t, maker, derr.Maker)
	require.Len(t, derr.Fields, 2)
	assert.Equal(t, fee.FieldMakerFee, derr.Fields[0].Field)
	assert.Equal(t, "180", derr.Fields[0].Computed.String())
	assert.Equal(t, "200", derr.Fields[0].Reported.String())
	assert.Equal(t, fee.FieldMakerFeeReferrerDiscount, derr.Fields[1].Field)
}

func testCloseOutSkipped(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())

	for _, typ := range []types.TradeType{types.TradeTypeNetworkCloseOutBad, types.TradeTypeNetworkCloseOutGood} {
		trade := newTrade("t1", 5)
		trade.Type = typ
		trade.Buyer = types.NetworkParty
		// wildly wrong fees, never looked at
		trade.BuyerFee = reportedFee("999999", "999999")

		outcome, err := tc.CheckTrade(context.Background(), trade)
		require.NoError(t, err)
		assert.Equal(t, fee.OutcomeSkippedCloseOut, outcome)
	}
}

func testAuctionSkipped(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())

	trade := newTrade("t1", 5)
	trade.Aggressor = types.SideUnspecified
	trade.BuyerFee = reportedFee("999999", "999999")

	outcome, err := tc.CheckTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomeSkippedAuction, outcome)
}

func testRebateApplied(t *testing.T) {
	opts := defaultOpts()
	opts.params[netparams.MarketFeeFactorsBuyBackFee] = "0.0005"
	opts.params[netparams.MarketFeeFactorsTreasuryFee] = "0.0003"
	opts.cfg.AcceptableError.Decimal = num.DecimalZero()
	tc := getTestChecker(t, opts)

	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(4), maker).Return(
		[]types.VolumeRebateStats{{AtEpoch: 4, PartyID: maker, AdditionalMakerRebate: num.MustDecimalFromString("0.0002")}}, nil,
	).Times(1)
	tc.upstream.EXPECT().GetReferralSetStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetVolumeDiscountStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)

	trade := newTrade("t1", 5)
	trade.BuyerFee.BuyBackFee = num.MustDecimalFromString("375")
	trade.BuyerFee.TreasuryFee = num.MustDecimalFromString("225")
	trade.BuyerFee.HighVolumeMakerFee = num.MustDecimalFromString("200")

	outcome, err := tc.CheckTrade(context.Background(), trade)
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomePassed, outcome)
}

func testFirstEpoch(t *testing.T) {
	opts := defaultOpts()
	opts.current = 0
	tc := getTestChecker(t, opts)

	outcome, err := tc.CheckTrade(context.Background(), newTrade("t1", 0))
	require.NoError(t, err)
	assert.Equal(t, fee.OutcomePassed, outcome)
}

func testLazyMarket(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.noFactors(4)

	tc.upstream.EXPECT().GetMarket(gomock.Any(), "market-2").Return(
		&types.Market{ID: "market-2", DecimalPlaces: 3, PositionDecimalPlaces: 1, SettlementAsset: "eth"}, nil,
	).Times(1)
	tc.upstream.EXPECT().GetAsset(gomock.Any(), "eth").Return(
		&types.Asset{ID: "eth", Symbol: "ETH", Decimals: 4}, nil,
	).Times(1)

	for i := 0; i < 2; i++ {
		// price 100000 at 3dp in a 4dp asset is 1000000, size 10 at 1dp is 1
		trade := newTrade(fmt.Sprintf("t%d", i), 5)
		trade.MarketID = "market-2"
		trade.Price = num.MustDecimalFromString("100000")
		trade.Size = 10

		comp, err := tc.Compute(context.Background(), trade)
		require.NoError(t, err)
		assert.Equal(t, "1000000", comp.Notional.String())
	}
}

func testMissingMarket(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.upstream.EXPECT().GetMarket(gomock.Any(), "nope").Return(nil, nil).Times(1)

	trade := newTrade("t1", 5)
	trade.MarketID = "nope"
	_, err := tc.CheckTrade(context.Background(), trade)
	assert.ErrorIs(t, err, fee.ErrMarketNotFound)
}

func testEpochMismatchAborts(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(4), maker).Return(
		[]types.VolumeRebateStats{{AtEpoch: 3, PartyID: maker, AdditionalMakerRebate: num.DecimalZero()}}, nil,
	).Times(1)

	outcome, err := tc.CheckTrade(context.Background(), newTrade("t1", 5))
	assert.Equal(t, fee.OutcomeUnspecified, outcome)
	require.Error(t, err)
	assert.NotErrorIs(t, err, fee.ErrFeeDiscrepancy)
}

func TestCheck(t *testing.T) {
	t.Run("fail fast stops at the first discrepancy", testCheckFailFast)
	t.Run("collecting mode checks every trade", testCheckCollect)
	t.Run("concurrent workers check every trade", testCheckWorkers)
	t.Run("upstream failure aborts the run", testCheckUpstreamFailure)
	t.Run("reloaded configuration applies to the next run", testCheckReloadConf)
	t.Run("cancelled run is not a pass", testCheckCancelled)
	t.Run("reload during a run keeps the run configuration", testCheckReloadDuringRun)
}

func checkTrades(tc *testChecker) []*types.Trade {
	bad := newTrade("t2", 5)
	bad.BuyerFee = reportedFee("500", "100")
	closeOut := newTrade("t4", 5)
	closeOut.Type = types.TradeTypeNetworkCloseOutGood
	auction := newTrade("t5", 5)
	auction.Aggressor = types.SideUnspecified
	return []*types.Trade{newTrade("t1", 5), bad, newTrade("t3", 5), closeOut, auction}
}

func testCheckFailFast(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.noFactors(4)
	trades := checkTrades(tc)
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 5).Return(trades, nil).Times(1)

	report, err := tc.Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fee.ErrFeeDiscrepancy)
	require.NotNil(t, report)
	assert.NotEmpty(t, report.RunID)
	assert.EqualValues(t, 5, report.Epoch)
	assert.Equal(t, 2, report.Checked)
	assert.Equal(t, 1, report.Passed)
	require.Len(t, report.Discrepancies, 1)
	assert.Equal(t, "t2", report.Discrepancies[0].TradeID)
}

func testCheckCollect(t *testing.T) {
	opts := defaultOpts()
	opts.cfg.FailFast = false
	tc := getTestChecker(t, opts)
	tc.noFactors(4)
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 5).Return(checkTrades(tc), nil).Times(1)

	report, err := tc.Check(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, fee.ErrFeeDiscrepancy)
	assert.True(t, report.Failed())
	assert.Equal(t, 5, report.Checked)
	assert.Equal(t, 2, report.Passed)
	assert.Equal(t, 1, report.SkippedCloseOut)
	assert.Equal(t, 1, report.SkippedAuction)
	assert.Len(t, report.Discrepancies, 1)
}

func testCheckWorkers(t *testing.T) {
	opts := defaultOpts()
	opts.cfg.Workers = 4
	opts.cfg.MaxPages = 2
	tc := getTestChecker(t, opts)
	tc.noFactors(4)

	trades := make([]*types.Trade, 0, 50)
	for i := 0; i < 50; i++ {
		trades = append(trades, newTrade(fmt.Sprintf("t%d", i), 5))
	}
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 2).Return(trades, nil).Times(1)

	report, err := tc.Check(context.Background())
	require.NoError(t, err)
	assert.False(t, report.Failed())
	assert.Equal(t, 50, report.Checked)
	assert.Equal(t, 50, report.Passed)
}

func testCheckReloadConf(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	tc.noFactors(4)

	cfg := defaultOpts().cfg
	cfg.FailFast = false
	cfg.MaxPages = 3
	tc.ReloadConf(cfg)

	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 3).Return(checkTrades(tc), nil).Times(1)

	report, err := tc.Check(context.Background())
	assert.ErrorIs(t, err, fee.ErrFeeDiscrepancy)
	assert.Equal(t, 5, report.Checked)
}

func testCheckReloadDuringRun(t *testing.T) {
	opts := defaultOpts()
	opts.cfg.Workers = 4
	opts.cfg.FailFast = false
	tc := getTestChecker(t, opts)
	tc.noFactors(4)

	trades := make([]*types.Trade, 0, 20)
	for i := 0; i < 20; i++ {
		trades = append(trades, newTrade(fmt.Sprintf("t%d", i), 5))
	}
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 5).Return(trades, nil).Times(1)

	done := make(chan struct{})
	go func() {
		defer close(done)
		strict := opts.cfg
		strict.AcceptableError.Decimal = num.DecimalZero()
		strict.FailFast = true
		for i := 0; i < 100; i++ {
			tc.ReloadConf(strict)
		}
	}()

	report, err := tc.Check(context.Background())
	<-done
	require.NoError(t, err)
	assert.Equal(t, 20, report.Checked)
	assert.Equal(t, 20, report.Passed)
}

func testCheckCancelled(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(4), maker).DoAndReturn(
		func(context.Context, uint64, string) ([]types.VolumeRebateStats, error) {
			cancel()
			return nil, nil
		},
	).Times(1)
	tc.upstream.EXPECT().GetReferralSetStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetVolumeDiscountStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)

	trades := []*types.Trade{newTrade("t1", 5), newTrade("t2", 5), newTrade("t3", 5)}
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 5).Return(trades, nil).Times(1)

	report, err := tc.Check(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, fee.ErrFeeDiscrepancy)
	require.NotNil(t, report)
	assert.False(t, report.Failed())
	assert.Equal(t, 1, report.Checked)
	assert.Equal(t, 1, report.Passed)
}

func testCheckUpstreamFailure(t *testing.T) {
	tc := getTestChecker(t, defaultOpts())
	boom := errors.New("boom")
	tc.upstream.EXPECT().ListTrades(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, boom).Times(1)

	report, err := tc.Check(context.Background())
	assert.Nil(t, report)
	assert.ErrorIs(t, err, boom)
}

func TestTradesPendingGauge(t *testing.T) {
	cfg := metrics.NewDefaultConfig()
	cfg.Enabled = true
	cfg.Port = 0
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, metrics.Start(ctx, logging.NewTestLogger(), cfg))

	tc := getTestChecker(t, defaultOpts())

	var during float64
	tc.upstream.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(4), maker).DoAndReturn(
		func(context.Context, uint64, string) ([]types.VolumeRebateStats, error) {
			during = tradesPending(t)
			return nil, nil
		},
	).Times(1)
	tc.upstream.EXPECT().GetReferralSetStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)
	tc.upstream.EXPECT().GetVolumeDiscountStats(gomock.Any(), uint64(4), taker).Return(nil, nil).Times(1)

	trades := []*types.Trade{newTrade("t1", 5), newTrade("t2", 5), newTrade("t3", 5)}
	tc.upstream.EXPECT().ListTrades(gomock.Any(), epochAt(5).StartTime, 5).Return(trades, nil).Times(1)

	_, err := tc.Check(context.Background())
	require.NoError(t, err)

	// the trade being checked is still pending
	assert.Equal(t, float64(3), during)
	assert.Equal(t, float64(0), tradesPending(t))
}

func tradesPending(t *testing.T) float64 {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == "feecheck_trades_pending" && len(f.GetMetric()) == 1 {
			return f.GetMetric()[0].GetGauge().GetValue()
		}
	}
	t.Fatal("feecheck_trades_pending is not registered")
	return 0
}
