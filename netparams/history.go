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

package netparams

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	"github.com/google/btree"
)

const namedLogger = "netparams"

var ErrUnknownFeeFactorKey = errors.New("unknown fee factor key")

//go:generate go run github.com/golang/mock/mockgen -destination mocks/network_parameters_mock.go -package mocks code.vegaprotocol.io/feecheck/netparams NetworkParameters
type NetworkParameters interface {
	GetVegaTime(ctx context.Context) (time.Time, error)
	GetNetworkParameter(ctx context.Context, key string) (string, error)
	ListEnactedNetworkParameterChanges(ctx context.Context) ([]types.NetworkParameterChange, error)
}

type record struct {
	effective time.Time
	value     num.Decimal
}

func lessRecord(a, b record) bool {
	return a.effective.Before(b.effective)
}

// History holds every known value of the fee factor parameters, ordered by
// the time they became effective.
type History struct {
	log *logging.Logger

	mu     sync.RWMutex
	params map[string]*btree.BTreeG[record]
}

// NewHistory seeds the history with the live value of each fee factor, then
// folds in all enacted parameter changes found upstream.
func NewHistory(ctx context.Context, log *logging.Logger, upstream NetworkParameters) (*History, error) {
	h := &History{
		log:    log.Named(namedLogger),
		params: make(map[string]*btree.BTreeG[record], len(FeeFactorKeys)),
	}

	now, err := upstream.GetVegaTime(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not get vega time: %w", err)
	}

	for _, key := range FeeFactorKeys {
		raw, err := upstream.GetNetworkParameter(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("could not get network parameter %q: %w", key, err)
		}
		if err := h.add(key, raw, now); err != nil {
			return nil, err
		}
	}

	changes, err := upstream.ListEnactedNetworkParameterChanges(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not list network parameter changes: %w", err)
	}
	for _, c := range changes {
		if !isFeeFactorKey(c.Key) {
			continue
		}
		if err := h.add(c.Key, c.Value, c.Timestamp); err != nil {
			return nil, err
		}
	}

	if h.log.IsDebug() {
		for _, key := range FeeFactorKeys {
			h.params[key].Ascend(func(r record) bool {
				h.log.Debug("fee factor",
					logging.String("key", key),
					logging.Time("effective", r.effective),
					logging.Decimal("value", r.value),
				)
				return true
			})
		}
	}

	return h, nil
}

func (h *History) add(key, raw string, effective time.Time) error {
	value, err := num.DecimalFromString(raw)
	if err != nil {
		return fmt.Errorf("invalid value %q for network parameter %q: %w", raw, key, err)
	}

	tree, ok := h.params[key]
	if !ok {
		tree = btree.NewG(2, lessRecord)
		h.params[key] = tree
	}
	// a later record at the same timestamp replaces the earlier one
	tree.ReplaceOrInsert(record{effective: effective, value: value})
	return nil
}

// FeeFactor returns the value of the parameter in force at time t. When t
// predates every known record the oldest one is returned.
func (h *History) FeeFactor(key string, t time.Time) (num.Decimal, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	tree, ok := h.params[key]
	if !ok || tree.Len() == 0 {
		return num.DecimalZero(), fmt.Errorf("%w: %s", ErrUnknownFeeFactorKey, key)
	}

	var (
		found record
		hit   bool
	)
	tree.DescendLessOrEqual(record{effective: t}, func(r record) bool {
		found, hit = r, true
		return false
	})
	if !hit {
		found, _ = tree.Min()
	}
	return found.value, nil
}

// Records returns the number of values known for the given key.
func (h *History) Records(key string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if tree, ok := h.params[key]; ok {
		return tree.Len()
	}
	return 0
}
