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
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"code.vegaprotocol.io/feecheck/epochtime"
	"code.vegaprotocol.io/feecheck/factors"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/metrics"
	"code.vegaprotocol.io/feecheck/netparams"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

var (
	ErrMarketNotFound = errors.New("market not found")
	ErrAssetNotFound  = errors.New("asset not found")
)

// TradingData is everything the checker reads from the network.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/trading_data_mock.go -package mocks code.vegaprotocol.io/feecheck/fee TradingData
type TradingData interface {
	netparams.NetworkParameters
	epochtime.EpochProvider
	factors.Stats

	ListMarkets(ctx context.Context) ([]types.Market, error)
	ListAssets(ctx context.Context) ([]types.Asset, error)
	GetMarket(ctx context.Context, id string) (*types.Market, error)
	GetAsset(ctx context.Context, id string) (*types.Asset, error)
	ListTrades(ctx context.Context, since time.Time, maxPages int) ([]*types.Trade, error)
}

// Checker recomputes the fees of recent trades and compares them with the
// fees the network reported.
type Checker struct {
	log      *logging.Logger
	upstream TradingData

	mu  sync.RWMutex
	cfg Config

	params  *netparams.History
	epochs  *epochtime.Resolver
	factors *factors.Cache
	scaling *lru.Cache[string, types.Scaling]
}

func New(ctx context.Context, log *logging.Logger, cfg Config, upstream TradingData) (*Checker, error) {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())

	params, err := netparams.NewHistory(ctx, log, upstream)
	if err != nil {
		return nil, err
	}
	epochs, err := epochtime.NewResolver(ctx, log, upstream)
	if err != nil {
		return nil, err
	}

	size := cfg.MarketCacheSize
	if size <= 0 {
		size = NewDefaultConfig().MarketCacheSize
	}
	scaling, err := lru.New[string, types.Scaling](size)
	if err != nil {
		return nil, err
	}

	c := &Checker{
		log:      log,
		cfg:      cfg,
		upstream: upstream,
		params:   params,
		epochs:   epochs,
		factors:  factors.NewCache(log, upstream),
		scaling:  scaling,
	}
	if err := c.loadMarkets(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

// ReloadConf is used in order to reload the internal configuration of
// the checker.
func (c *Checker) ReloadConf(cfg Config) {
	c.log.Info("reloading configuration")
	if c.log.GetLevel() != cfg.Level.Get() {
		c.log.Info("updating log level",
			logging.String("old", c.log.GetLevel().String()),
			logging.String("new", cfg.Level.String()),
		)
		c.log.SetLevel(cfg.Level.Get())
	}

	c.mu.Lock()
	c.cfg = cfg
	c.mu.Unlock()
}

func (c *Checker) config() Config {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cfg
}

func (c *Checker) loadMarkets(ctx context.Context) error {
	markets, err := c.upstream.ListMarkets(ctx)
	if err != nil {
		return fmt.Errorf("could not list markets: %w", err)
	}
	assets, err := c.upstream.ListAssets(ctx)
	if err != nil {
		return fmt.Errorf("could not list assets: %w", err)
	}

	byID := make(map[string]*types.Asset, len(assets))
	for i := range assets {
		byID[assets[i].ID] = &assets[i]
	}
	for i := range markets {
		mkt := &markets[i]
		asset, ok := byID[mkt.SettlementAsset]
		if !ok {
			// resolved on first use
			continue
		}
		c.scaling.Add(mkt.ID, types.NewScaling(mkt, asset))
	}

	c.log.Debug("markets loaded",
		logging.Int("markets", len(markets)),
		logging.Int("assets", len(assets)),
	)
	return nil
}

func (c *Checker) scalingFor(ctx context.Context, marketID string) (types.Scaling, error) {
	if s, ok := c.scaling.Get(marketID); ok {
		return s, nil
	}

	mkt, err := c.upstream.GetMarket(ctx, marketID)
	if err != nil {
		return types.Scaling{}, fmt.Errorf("could not get market %s: %w", marketID, err)
	}
	if mkt == nil {
		return types.Scaling{}, fmt.Errorf("%w: %s", ErrMarketNotFound, marketID)
	}
	asset, err := c.upstream.GetAsset(ctx, mkt.SettlementAsset)
	if err != nil {
		return types.Scaling{}, fmt.Errorf("could not get asset %s: %w", mkt.SettlementAsset, err)
	}
	if asset == nil {
		return types.Scaling{}, fmt.Errorf("%w: %s", ErrAssetNotFound, mkt.SettlementAsset)
	}

	s := types.NewScaling(mkt, asset)
	c.scaling.Add(marketID, s)
	return s, nil
}

// Check reconciles every trade since the start of the current epoch. A run
// uses the configuration in force when it starts. A run interrupted by ctx
// returns the partial report with the context error.
func (c *Checker) Check(ctx context.Context) (*Report, error) {
	cfg := c.config()

	vegaTime, err := c.upstream.GetVegaTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get vega time: %w", err)
	}
	current := c.epochs.Current()

	trades, err := c.upstream.ListTrades(ctx, current.StartTime, cfg.MaxPages)
	if err != nil {
		return nil, fmt.Errorf("could not list trades: %w", err)
	}

	report := newReport(vegaTime, current.Seq)
	log := c.log.With(logging.String("run-id", report.RunID))
	log.Info("checking trades",
		logging.Int("trades", len(trades)),
		logging.Epoch(current),
		logging.Time("vega-time", vegaTime),
	)

	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	var pending atomic.Int64
	pending.Store(int64(len(trades)))
	metrics.TradesPendingSet(len(trades))
	for _, trade := range trades {
		if gctx.Err() != nil {
			break
		}
		trade := trade
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			outcome, err := c.checkTrade(gctx, cfg, trade)
			metrics.TradesPendingSet(int(pending.Add(-1)))

			var derr *DiscrepancyError
			switch {
			case errors.As(err, &derr):
				report.record(outcome, derr)
				if bool(cfg.FailFast) {
					return derr
				}
				return nil
			case err != nil:
				return fmt.Errorf("could not check trade %s: %w", trade.ID, err)
			}
			report.record(outcome, nil)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("check aborted", logging.Error(err), logging.String("report", report.String()))
		return report, err
	}
	if err := ctx.Err(); err != nil {
		log.Error("check interrupted", logging.Error(err), logging.String("report", report.String()))
		return report, fmt.Errorf("check interrupted after %d of %d trades: %w", report.Checked, len(trades), err)
	}

	log.Info("check complete", logging.String("report", report.String()))
	if report.Failed() {
		return report, fmt.Errorf("%w: %d trades", ErrFeeDiscrepancy, len(report.Discrepancies))
	}
	return report, nil
}

// CheckTrade recomputes the fees of a single trade and compares them with
// the fees reported for its aggressor.
func (c *Checker) CheckTrade(ctx context.Context, trade *types.Trade) (Outcome, error) {
	return c.checkTrade(ctx, c.config(), trade)
}

func (c *Checker) checkTrade(ctx context.Context, cfg Config, trade *types.Trade) (Outcome, error) {
	if trade.Type.IsNetworkCloseOut() {
		metrics.TradeCounterInc(trade.MarketID, OutcomeSkippedCloseOut.String())
		return OutcomeSkippedCloseOut, nil
	}
	if trade.Aggressor == types.SideUnspecified {
		c.log.Debug("skipping auction trade", logging.TradeID(trade.ID))
		metrics.TradeCounterInc(trade.MarketID, OutcomeSkippedAuction.String())
		return OutcomeSkippedAuction, nil
	}

	comp, err := c.Compute(ctx, trade)
	if err != nil {
		return OutcomeUnspecified, err
	}

	reported := trade.TakerFee()
	tolerance := cfg.AcceptableError.Get()
	fields := Reconcile(comp, reported, tolerance)
	if len(fields) == 0 {
		metrics.TradeCounterInc(trade.MarketID, OutcomePassed.String())
		return OutcomePassed, nil
	}

	derr := &DiscrepancyError{
		TradeID:  trade.ID,
		MarketID: trade.MarketID,
		Taker:    comp.Taker,
		Maker:    comp.Maker,
		Epoch:    comp.Epoch,
		Fields:   fields,
	}
	c.logDiscrepancy(trade, comp, reported, tolerance, derr)
	metrics.TradeCounterInc(trade.MarketID, OutcomeDiscrepancy.String())
	for _, f := range fields {
		metrics.DiscrepancyCounterInc(f.Field)
	}
	return OutcomeDiscrepancy, derr
}

// Compute runs the fee pipeline for a trade with an aggressor.
func (c *Checker) Compute(ctx context.Context, trade *types.Trade) (*Computation, error) {
	epoch, err := c.epochs.Resolve(ctx, trade.Timestamp)
	if err != nil {
		return nil, err
	}
	scaling, err := c.scalingFor(ctx, trade.MarketID)
	if err != nil {
		return nil, err
	}

	taker, maker := trade.Roles()
	comp := &Computation{
		Epoch:        epoch.Seq,
		Taker:        taker,
		Maker:        maker,
		Notional:     scaling.Notional(trade.Price, trade.Size),
		RebateFactor: num.DecimalZero(),
	}

	factorsAt := []struct {
		key string
		dst *num.Decimal
	}{
		{netparams.MarketFeeFactorsMakerFee, &comp.MakerFactor},
		{netparams.MarketFeeFactorsInfrastructureFee, &comp.InfraFactor},
		{netparams.MarketFeeFactorsBuyBackFee, &comp.BuyBackFactor},
		{netparams.MarketFeeFactorsTreasuryFee, &comp.TreasuryFactor},
	}
	for _, f := range factorsAt {
		v, err := c.params.FeeFactor(f.key, trade.Timestamp)
		if err != nil {
			return nil, err
		}
		*f.dst = v
	}

	// party stats are finalised at the end of an epoch, so the previous
	// epoch governs the fees of the current one
	rebate := num.DecimalZero()
	if epoch.Seq > 0 {
		comp.FactorEpoch = epoch.Seq - 1
		if rebate, err = c.factors.VolumeRebateFactor(ctx, comp.FactorEpoch, maker); err != nil {
			return nil, err
		}
		if comp.ReferralDiscountFactors, err = c.factors.ReferralDiscountFactors(ctx, comp.FactorEpoch, taker); err != nil {
			return nil, err
		}
		if comp.VolumeDiscountFactors, err = c.factors.VolumeDiscountFactors(ctx, comp.FactorEpoch, taker); err != nil {
			return nil, err
		}
		if comp.ReferralRewardFactors, err = c.factors.ReferralRewardFactors(ctx, comp.FactorEpoch, taker); err != nil {
			return nil, err
		}
	}

	comp.Gross = TradingFees{
		Maker: GrossFee(comp.MakerFactor, comp.Notional),
		// the liquidity fee factor is not tracked
		Liquidity: GrossFee(num.DecimalZero(), comp.Notional),
		Infra:     GrossFee(comp.InfraFactor, comp.Notional),
	}
	buyBack := GrossFee(comp.BuyBackFactor, comp.Notional)
	treasury := GrossFee(comp.TreasuryFactor, comp.Notional)

	comp.RebateFactor = EffectiveRebateFactor(rebate, comp.BuyBackFactor, comp.TreasuryFactor)
	comp.BuyBackFee, comp.TreasuryFee, comp.HighVolumeMakerFee = ApplyRebateFactor(comp.Notional, buyBack, treasury, comp.RebateFactor)

	afterReferral, referralDiscount := ApplyDiscountFactors(comp.Gross, comp.ReferralDiscountFactors)
	afterVolume, volumeDiscount := ApplyDiscountFactors(afterReferral, comp.VolumeDiscountFactors)
	final, reward := ApplyRewardFactors(afterVolume, comp.ReferralRewardFactors)

	comp.ReferralDiscount = referralDiscount
	comp.VolumeDiscount = volumeDiscount
	comp.ReferralReward = reward
	comp.Final = final

	if c.log.IsDebug() {
		c.log.Debug("fees computed",
			logging.TradeID(trade.ID),
			logging.Decimal("notional", comp.Notional),
			logging.String("final", comp.Final.String()),
			logging.Decimal("high-volume-maker-fee", comp.HighVolumeMakerFee),
		)
	}
	return comp, nil
}

func (c *Checker) logDiscrepancy(trade *types.Trade, comp *Computation, reported *types.Fee, tolerance num.Decimal, derr *DiscrepancyError) {
	c.log.Debug("fee computation",
		logging.Trade(trade),
		logging.Reflect("computation", comp),
		logging.Fee("reported", reported),
	)
	for _, f := range derr.Fields {
		c.log.Warn("fee discrepancy",
			logging.String("field", f.Field),
			logging.Decimal("computed", f.Computed),
			logging.Decimal("reported", f.Reported),
			logging.Decimal("diff", f.Diff()),
			logging.Decimal("acceptable-error", tolerance),
			logging.TradeID(trade.ID),
			logging.MarketID(trade.MarketID),
			logging.String("taker", comp.Taker),
			logging.String("maker", comp.Maker),
			logging.EpochSeq(comp.Epoch),
			logging.Uint64("factor-epoch", comp.FactorEpoch),
			logging.Decimal("notional", comp.Notional),
			logging.Decimal("maker-factor", comp.MakerFactor),
			logging.Decimal("infrastructure-factor", comp.InfraFactor),
			logging.Decimal("buyback-factor", comp.BuyBackFactor),
			logging.Decimal("treasury-factor", comp.TreasuryFactor),
			logging.Decimal("rebate-factor", comp.RebateFactor),
			logging.Factors("referral-discount-factors", comp.ReferralDiscountFactors),
			logging.Factors("volume-discount-factors", comp.VolumeDiscountFactors),
			logging.Factors("referral-reward-factors", comp.ReferralRewardFactors),
		)
	}
}
