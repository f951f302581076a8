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

package factors

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	"golang.org/x/sync/singleflight"
)

const namedLogger = "factors"

var ErrEpochMismatch = errors.New("stats returned for a different epoch")

//go:generate go run github.com/golang/mock/mockgen -destination mocks/stats_mock.go -package mocks code.vegaprotocol.io/feecheck/factors Stats
type Stats interface {
	GetReferralSetStats(ctx context.Context, epoch uint64, referee string) ([]types.ReferralSetStats, error)
	GetVolumeDiscountStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeDiscountStats, error)
	GetVolumeRebateStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeRebateStats, error)
}

type key struct {
	epoch uint64
	party string
}

// Cache memoises the per party program factors for each epoch. Stats for a
// finished epoch never change so entries are kept for the life of the cache.
type Cache struct {
	log      *logging.Logger
	upstream Stats
	group    singleflight.Group

	mu             sync.RWMutex
	referral       map[key]*types.ReferralSetStats
	volumeDiscount map[key]*types.Factors
	volumeRebate   map[key]num.Decimal
}

func NewCache(log *logging.Logger, upstream Stats) *Cache {
	return &Cache{
		log:            log.Named(namedLogger),
		upstream:       upstream,
		referral:       map[key]*types.ReferralSetStats{},
		volumeDiscount: map[key]*types.Factors{},
		volumeRebate:   map[key]num.Decimal{},
	}
}

// ReferralRewardFactors returns the reward factors the party generated for
// its referrer at the given epoch, nil when the party is not a referee.
func (c *Cache) ReferralRewardFactors(ctx context.Context, epoch uint64, party string) (*types.Factors, error) {
	stats, err := c.referralStats(ctx, epoch, party)
	if err != nil || stats == nil {
		return nil, err
	}
	f := stats.RewardFactors
	return &f, nil
}

// ReferralDiscountFactors returns the referee discount factors of the party
// at the given epoch, nil when the party is not a referee.
func (c *Cache) ReferralDiscountFactors(ctx context.Context, epoch uint64, party string) (*types.Factors, error) {
	stats, err := c.referralStats(ctx, epoch, party)
	if err != nil || stats == nil {
		return nil, err
	}
	f := stats.DiscountFactors
	return &f, nil
}

func (c *Cache) VolumeDiscountFactors(ctx context.Context, epoch uint64, party string) (*types.Factors, error) {
	k := key{epoch: epoch, party: party}
	return lookup(c, "volume-discount", c.volumeDiscount, k, func() (*types.Factors, error) {
		stats, err := c.upstream.GetVolumeDiscountStats(ctx, epoch, party)
		if err != nil {
			return nil, fmt.Errorf("could not get volume discount stats: %w", err)
		}
		if len(stats) == 0 {
			return nil, nil
		}
		if stats[0].AtEpoch != epoch {
			return nil, mismatch("volume discount", epoch, stats[0].AtEpoch, party)
		}
		f := stats[0].DiscountFactors
		return &f, nil
	})
}

// VolumeRebateFactor returns the additional maker rebate of the party at the
// given epoch. The network never earns a rebate.
func (c *Cache) VolumeRebateFactor(ctx context.Context, epoch uint64, party string) (num.Decimal, error) {
	if party == types.NetworkParty {
		return num.DecimalZero(), nil
	}

	k := key{epoch: epoch, party: party}
	return lookup(c, "volume-rebate", c.volumeRebate, k, func() (num.Decimal, error) {
		stats, err := c.upstream.GetVolumeRebateStats(ctx, epoch, party)
		if err != nil {
			return num.DecimalZero(), fmt.Errorf("could not get volume rebate stats: %w", err)
		}
		if len(stats) == 0 {
			return num.DecimalZero(), nil
		}
		if stats[0].AtEpoch != epoch {
			return num.DecimalZero(), mismatch("volume rebate", epoch, stats[0].AtEpoch, party)
		}
		return stats[0].AdditionalMakerRebate, nil
	})
}

func (c *Cache) referralStats(ctx context.Context, epoch uint64, party string) (*types.ReferralSetStats, error) {
	k := key{epoch: epoch, party: party}
	return lookup(c, "referral", c.referral, k, func() (*types.ReferralSetStats, error) {
		stats, err := c.upstream.GetReferralSetStats(ctx, epoch, party)
		if err != nil {
			return nil, fmt.Errorf("could not get referral set stats: %w", err)
		}
		if len(stats) == 0 {
			return nil, nil
		}
		if stats[0].AtEpoch != epoch {
			return nil, mismatch("referral set", epoch, stats[0].AtEpoch, party)
		}
		s := stats[0]
		return &s, nil
	})
}

func lookup[T any](c *Cache, family string, entries map[key]T, k key, fetch func() (T, error)) (T, error) {
	c.mu.RLock()
	v, ok := entries[k]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.group.Do(fmt.Sprintf("%s/%d/%s", family, k.epoch, k.party), func() (interface{}, error) {
		c.mu.RLock()
		v, ok := entries[k]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fetch()
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		entries[k] = v
		c.mu.Unlock()

		c.log.Debug("cached factors",
			logging.String("family", family),
			logging.EpochSeq(k.epoch),
			logging.PartyID(k.party),
			logging.Reflect("value", v),
		)
		return v, nil
	})
	if err != nil {
		var zero T
		return zero, err
	}
	return res.(T), nil
}

func mismatch(family string, want, got uint64, party string) error {
	return fmt.Errorf("%w: %s stats for party %s requested at epoch %d, got epoch %d",
		ErrEpochMismatch, family, party, want, got)
}
