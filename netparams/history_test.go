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

package netparams_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/netparams"
	"code.vegaprotocol.io/feecheck/netparams/mocks"
	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	t0  = time.Unix(1700000000, 0)
	t1  = t0.Add(time.Hour)
	t2  = t0.Add(2 * time.Hour)
	now = t0.Add(24 * time.Hour)
)

type testHistory struct {
	*netparams.History
	upstream *mocks.MockNetworkParameters
}

func getTestHistory(t *testing.T, live map[string]string, changes []types.NetworkParameterChange) *testHistory {
	t.Helper()
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockNetworkParameters(ctrl)

	upstream.EXPECT().GetVegaTime(gomock.Any()).Return(now, nil).Times(1)
	upstream.EXPECT().GetNetworkParameter(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, key string) (string, error) {
			if v, ok := live[key]; ok {
				return v, nil
			}
			return "0", nil
		},
	).Times(len(netparams.FeeFactorKeys))
	upstream.EXPECT().ListEnactedNetworkParameterChanges(gomock.Any()).Return(changes, nil).Times(1)

	h, err := netparams.NewHistory(context.Background(), logging.NewTestLogger(), upstream)
	require.NoError(t, err)
	return &testHistory{History: h, upstream: upstream}
}

func TestFeeFactorHistory(t *testing.T) {
	t.Run("value in force at a given time", testValueInForce)
	t.Run("storage order does not depend on upstream order", testUnsortedUpstream)
	t.Run("unknown key is an error", testUnknownKey)
	t.Run("untracked parameters are ignored", testUntrackedIgnored)
	t.Run("proposal at the seed time wins", testProposalAtSeedTime)
	t.Run("upstream failure aborts construction", testUpstreamFailure)
}

func testValueInForce(t *testing.T) {
	h := getTestHistory(t,
		map[string]string{netparams.MarketFeeFactorsMakerFee: "0.03"},
		[]types.NetworkParameterChange{
			{Key: netparams.MarketFeeFactorsMakerFee, Value: "0.01", Timestamp: t1},
			{Key: netparams.MarketFeeFactorsMakerFee, Value: "0.02", Timestamp: t2},
		},
	)

	cases := []struct {
		at     time.Time
		expect string
	}{
		{at: t0, expect: "0.01"},
		{at: t1, expect: "0.01"},
		{at: t1.Add(time.Minute), expect: "0.01"},
		{at: t2, expect: "0.02"},
		{at: now.Add(-time.Second), expect: "0.02"},
		{at: now, expect: "0.03"},
		{at: now.Add(time.Hour), expect: "0.03"},
	}
	for _, c := range cases {
		v, err := h.FeeFactor(netparams.MarketFeeFactorsMakerFee, c.at)
		require.NoError(t, err)
		assert.True(t, num.MustDecimalFromString(c.expect).Equal(v), "at %s expected %s got %s", c.at, c.expect, v)
	}
	assert.Equal(t, 3, h.Records(netparams.MarketFeeFactorsMakerFee))
}

func testUnsortedUpstream(t *testing.T) {
	h := getTestHistory(t,
		map[string]string{netparams.MarketFeeFactorsTreasuryFee: "0.003"},
		[]types.NetworkParameterChange{
			{Key: netparams.MarketFeeFactorsTreasuryFee, Value: "0.002", Timestamp: t2},
			{Key: netparams.MarketFeeFactorsTreasuryFee, Value: "0.001", Timestamp: t1},
		},
	)

	v, err := h.FeeFactor(netparams.MarketFeeFactorsTreasuryFee, t1.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "0.001", v.String())

	v, err = h.FeeFactor(netparams.MarketFeeFactorsTreasuryFee, t2.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "0.002", v.String())

	v, err = h.FeeFactor(netparams.MarketFeeFactorsTreasuryFee, t0)
	require.NoError(t, err)
	assert.Equal(t, "0.001", v.String())
}

func testUnknownKey(t *testing.T) {
	h := getTestHistory(t, nil, nil)

	_, err := h.FeeFactor("market.fee.factors.liquidityFee", now)
	require.Error(t, err)
	assert.ErrorIs(t, err, netparams.ErrUnknownFeeFactorKey)
}

func testUntrackedIgnored(t *testing.T) {
	h := getTestHistory(t,
		map[string]string{netparams.MarketFeeFactorsBuyBackFee: "0.0005"},
		[]types.NetworkParameterChange{
			{Key: "spam.protection.max.votes", Value: "3", Timestamp: t1},
			{Key: "market.fee.factors.liquidityFee", Value: "0.1", Timestamp: t1},
		},
	)

	assert.Equal(t, 1, h.Records(netparams.MarketFeeFactorsBuyBackFee))
	assert.Equal(t, 0, h.Records("spam.protection.max.votes"))

	v, err := h.FeeFactor(netparams.MarketFeeFactorsBuyBackFee, t0)
	require.NoError(t, err)
	assert.Equal(t, "0.0005", v.String())
}

func testProposalAtSeedTime(t *testing.T) {
	h := getTestHistory(t,
		map[string]string{netparams.MarketFeeFactorsInfrastructureFee: "0.0005"},
		[]types.NetworkParameterChange{
			{Key: netparams.MarketFeeFactorsInfrastructureFee, Value: "0.0007", Timestamp: now},
		},
	)

	assert.Equal(t, 1, h.Records(netparams.MarketFeeFactorsInfrastructureFee))
	v, err := h.FeeFactor(netparams.MarketFeeFactorsInfrastructureFee, now)
	require.NoError(t, err)
	assert.Equal(t, "0.0007", v.String())
}

func testUpstreamFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	upstream := mocks.NewMockNetworkParameters(ctrl)
	boom := errors.New("boom")

	upstream.EXPECT().GetVegaTime(gomock.Any()).Return(now, nil).Times(1)
	upstream.EXPECT().GetNetworkParameter(gomock.Any(), netparams.MarketFeeFactorsMakerFee).Return("", boom).Times(1)

	h, err := netparams.NewHistory(context.Background(), logging.NewTestLogger(), upstream)
	assert.Nil(t, h)
	assert.ErrorIs(t, err, boom)
}
