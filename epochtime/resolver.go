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

package epochtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"
)

const namedLogger = "epochtime"

var ErrEpochNotFound = errors.New("epoch not found")

// EpochProvider returns an epoch by sequence number, or the current epoch
// when seq is nil. A nil epoch with no error means upstream does not know it.
//
//go:generate go run github.com/golang/mock/mockgen -destination mocks/epoch_provider_mock.go -package mocks code.vegaprotocol.io/feecheck/epochtime EpochProvider
type EpochProvider interface {
	GetEpoch(ctx context.Context, seq *uint64) (*types.Epoch, error)
}

// Resolver maps a point in time to the epoch it belongs to. Epochs are
// fetched lazily, walking backwards from the current one, and never evicted.
type Resolver struct {
	log      *logging.Logger
	upstream EpochProvider

	mu sync.Mutex
	// newest first, contiguous sequence numbers
	epochs []types.Epoch
}

func NewResolver(ctx context.Context, log *logging.Logger, upstream EpochProvider) (*Resolver, error) {
	current, err := upstream.GetEpoch(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("could not get current epoch: %w", err)
	}
	if current == nil {
		return nil, fmt.Errorf("current epoch: %w", ErrEpochNotFound)
	}

	log = log.Named(namedLogger)
	log.Info("current epoch", logging.Epoch(*current))

	return &Resolver{
		log:      log,
		upstream: upstream,
		epochs:   []types.Epoch{*current},
	}, nil
}

// Current returns the epoch that was current when the resolver was created.
func (r *Resolver) Current() types.Epoch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.epochs[0]
}

// Resolve returns the latest epoch started at or before t.
func (r *Resolver) Resolve(ctx context.Context, t time.Time) (types.Epoch, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, e := range r.epochs {
		if e.StartedBy(t) {
			return e, nil
		}
	}

	for {
		oldest := r.epochs[len(r.epochs)-1]
		if oldest.Seq == 0 {
			return types.Epoch{}, fmt.Errorf("%w: no epoch started by %s", ErrEpochNotFound, t)
		}

		seq := oldest.Seq - 1
		e, err := r.upstream.GetEpoch(ctx, &seq)
		if err != nil {
			return types.Epoch{}, fmt.Errorf("could not get epoch %d: %w", seq, err)
		}
		if e == nil {
			return types.Epoch{}, fmt.Errorf("%w: %d", ErrEpochNotFound, seq)
		}

		r.log.Debug("fetched epoch", logging.Epoch(*e))
		r.epochs = append(r.epochs, *e)
		if e.StartedBy(t) {
			return *e, nil
		}
	}
}

// Known returns how many epochs are cached.
func (r *Resolver) Known() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.epochs)
}
