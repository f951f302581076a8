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

package datanode_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.vegaprotocol.io/feecheck/client/datanode"
	"code.vegaprotocol.io/feecheck/fee"
	"code.vegaprotocol.io/feecheck/fee/mocks"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ fee.TradingData = (*datanode.Client)(nil)
	_ fee.TradingData = (*datanode.Instrumented)(nil)
)

func TestInstrumentedPassesThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockTradingData(ctrl)
	i := datanode.NewInstrumented(logging.NewTestLogger(), next)
	ctx := context.Background()

	now := time.Unix(1700000000, 0)
	next.EXPECT().GetVegaTime(gomock.Any()).Return(now, nil).Times(1)
	got, err := i.GetVegaTime(ctx)
	require.NoError(t, err)
	assert.Equal(t, now, got)

	seq := uint64(3)
	next.EXPECT().GetEpoch(gomock.Any(), &seq).Return(nil, nil).Times(1)
	e, err := i.GetEpoch(ctx, &seq)
	require.NoError(t, err)
	assert.Nil(t, e)

	trades := []*types.Trade{{ID: "t1"}}
	next.EXPECT().ListTrades(gomock.Any(), now, 4).Return(trades, nil).Times(1)
	gotTrades, err := i.ListTrades(ctx, now, 4)
	require.NoError(t, err)
	assert.Equal(t, trades, gotTrades)
}

func TestInstrumentedReturnsErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	next := mocks.NewMockTradingData(ctrl)
	i := datanode.NewInstrumented(logging.NewTestLogger(), next)

	boom := errors.New("boom")
	next.EXPECT().GetVolumeRebateStats(gomock.Any(), uint64(2), "maker").Return(nil, boom).Times(1)
	_, err := i.GetVolumeRebateStats(context.Background(), 2, "maker")
	assert.ErrorIs(t, err, boom)

	next.EXPECT().GetNetworkParameter(gomock.Any(), "market.fee.factors.makerFee").Return("", boom).Times(1)
	_, err = i.GetNetworkParameter(context.Background(), "market.fee.factors.makerFee")
	assert.ErrorIs(t, err, boom)
}
