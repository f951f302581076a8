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

	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/types"
	v2 "code.vegaprotocol.io/vega/protos/data-node/api/v2"
	"code.vegaprotocol.io/vega/protos/vega"

	"github.com/pkg/errors"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

// Client reads trading data from a data node over gRPC.
type Client struct {
	log  *logging.Logger
	cfg  Config
	conn *grpc.ClientConn
	svc  v2.TradingDataServiceClient
}

// Dial connects to the data node at the configured address.
func Dial(log *logging.Logger, cfg Config) (*Client, error) {
	conn, err := grpc.NewClient(cfg.Address, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, errors.Wrapf(err, "could not connect to data node at %s", cfg.Address)
	}
	c := NewClient(log, cfg, v2.NewTradingDataServiceClient(conn))
	c.conn = conn
	return c, nil
}

// NewClient creates a client on top of an existing service client.
func NewClient(log *logging.Logger, cfg Config, svc v2.TradingDataServiceClient) *Client {
	log = log.Named(namedLogger)
	log.SetLevel(cfg.Level.Get())
	if cfg.PageSize <= 0 {
		cfg.PageSize = NewDefaultConfig().PageSize
	}
	return &Client{
		log: log,
		cfg: cfg,
		svc: svc,
	}
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}
	return c.conn.Close()
}

func (c *Client) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if c.cfg.Timeout.Get() <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.cfg.Timeout.Get())
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}

func (c *Client) GetVegaTime(ctx context.Context) (time.Time, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetVegaTime(ctx, &v2.GetVegaTimeRequest{})
	if err != nil {
		return time.Time{}, errors.WithStack(err)
	}
	return time.Unix(0, resp.Timestamp), nil
}

// GetEpoch returns the epoch with the given sequence number, or the current
// one when seq is nil. Unknown epochs are returned as nil.
func (c *Client) GetEpoch(ctx context.Context, seq *uint64) (*types.Epoch, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetEpoch(ctx, &v2.GetEpochRequest{Id: seq})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	if resp.Epoch == nil || resp.Epoch.Timestamps == nil {
		return nil, nil
	}
	e := types.EpochFromProto(resp.Epoch)
	return &e, nil
}

func (c *Client) GetNetworkParameter(ctx context.Context, key string) (string, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetNetworkParameter(ctx, &v2.GetNetworkParameterRequest{Key: key})
	if err != nil {
		return "", errors.WithStack(err)
	}
	return resp.GetNetworkParameter().GetValue(), nil
}

// ListEnactedNetworkParameterChanges returns the changes carried by every
// enacted network parameter proposal.
func (c *Client) ListEnactedNetworkParameterChanges(ctx context.Context) ([]types.NetworkParameterChange, error) {
	state := vega.Proposal_STATE_ENACTED
	typ := v2.ListGovernanceDataRequest_TYPE_NETWORK_PARAMETERS

	data, err := paginate(ctx, c, 0, func(ctx context.Context, p *v2.Pagination) ([]*vega.GovernanceData, *v2.PageInfo, error) {
		resp, err := c.svc.ListGovernanceData(ctx, &v2.ListGovernanceDataRequest{
			ProposalState: &state,
			ProposalType:  &typ,
			Pagination:    p,
		})
		if err != nil {
			return nil, nil, err
		}
		out := make([]*vega.GovernanceData, 0, len(resp.GetConnection().GetEdges()))
		for _, e := range resp.GetConnection().GetEdges() {
			out = append(out, e.GetNode())
		}
		return out, resp.GetConnection().GetPageInfo(), nil
	})
	if err != nil {
		return nil, err
	}
	return networkParameterChanges(c.log, data), nil
}

func (c *Client) ListMarkets(ctx context.Context) ([]types.Market, error) {
	markets, err := paginate(ctx, c, 0, func(ctx context.Context, p *v2.Pagination) ([]*vega.Market, *v2.PageInfo, error) {
		includeSettled := true
		resp, err := c.svc.ListMarkets(ctx, &v2.ListMarketsRequest{
			Pagination:     p,
			IncludeSettled: &includeSettled,
		})
		if err != nil {
			return nil, nil, err
		}
		out := make([]*vega.Market, 0, len(resp.GetMarkets().GetEdges()))
		for _, e := range resp.GetMarkets().GetEdges() {
			out = append(out, e.GetNode())
		}
		return out, resp.GetMarkets().GetPageInfo(), nil
	})
	if err != nil {
		return nil, err
	}
	return marketsFromProto(c.log, markets), nil
}

func (c *Client) ListAssets(ctx context.Context) ([]types.Asset, error) {
	assets, err := paginate(ctx, c, 0, func(ctx context.Context, p *v2.Pagination) ([]*vega.Asset, *v2.PageInfo, error) {
		resp, err := c.svc.ListAssets(ctx, &v2.ListAssetsRequest{Pagination: p})
		if err != nil {
			return nil, nil, err
		}
		out := make([]*vega.Asset, 0, len(resp.GetAssets().GetEdges()))
		for _, e := range resp.GetAssets().GetEdges() {
			out = append(out, e.GetNode())
		}
		return out, resp.GetAssets().GetPageInfo(), nil
	})
	if err != nil {
		return nil, err
	}
	return assetsFromProto(c.log, assets), nil
}

// GetMarket returns nil when the data node does not know the market.
func (c *Client) GetMarket(ctx context.Context, id string) (*types.Market, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetMarket(ctx, &v2.GetMarketRequest{MarketId: id})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	if resp.Market == nil {
		return nil, nil
	}
	return marketFromProto(resp.Market)
}

// GetAsset returns nil when the data node does not know the asset.
func (c *Client) GetAsset(ctx context.Context, id string) (*types.Asset, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetAsset(ctx, &v2.GetAssetRequest{AssetId: id})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}
	if resp.Asset == nil {
		return nil, nil
	}
	return assetFromProto(resp.Asset)
}

// ListTrades returns the trades since the given time, reading at most
// maxPages pages.
func (c *Client) ListTrades(ctx context.Context, since time.Time, maxPages int) ([]*types.Trade, error) {
	start := since.UnixNano()
	trades, err := paginate(ctx, c, maxPages, func(ctx context.Context, p *v2.Pagination) ([]*vega.Trade, *v2.PageInfo, error) {
		resp, err := c.svc.ListTrades(ctx, &v2.ListTradesRequest{
			Pagination: p,
			DateRange:  &v2.DateRange{StartTimestamp: &start},
		})
		if err != nil {
			return nil, nil, err
		}
		out := make([]*vega.Trade, 0, len(resp.GetTrades().GetEdges()))
		for _, e := range resp.GetTrades().GetEdges() {
			out = append(out, e.GetNode())
		}
		return out, resp.GetTrades().GetPageInfo(), nil
	})
	if err != nil {
		return nil, err
	}
	return tradesFromProto(trades)
}

func (c *Client) GetReferralSetStats(ctx context.Context, epoch uint64, referee string) ([]types.ReferralSetStats, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetReferralSetStats(ctx, &v2.GetReferralSetStatsRequest{
		AtEpoch:    &epoch,
		Referee:    &referee,
		Pagination: c.firstPage(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	out := make([]types.ReferralSetStats, 0, len(resp.GetStats().GetEdges()))
	for _, e := range resp.GetStats().GetEdges() {
		s, err := types.ReferralSetStatsFromProto(e.GetNode())
		if err != nil {
			return nil, invalid(e.GetNode(), err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Client) GetVolumeDiscountStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeDiscountStats, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetVolumeDiscountStats(ctx, &v2.GetVolumeDiscountStatsRequest{
		AtEpoch:    &epoch,
		PartyId:    &party,
		Pagination: c.firstPage(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	out := make([]types.VolumeDiscountStats, 0, len(resp.GetStats().GetEdges()))
	for _, e := range resp.GetStats().GetEdges() {
		s, err := types.VolumeDiscountStatsFromProto(e.GetNode())
		if err != nil {
			return nil, invalid(e.GetNode(), err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Client) GetVolumeRebateStats(ctx context.Context, epoch uint64, party string) ([]types.VolumeRebateStats, error) {
	ctx, cancel := c.withTimeout(ctx)
	defer cancel()

	resp, err := c.svc.GetVolumeRebateStats(ctx, &v2.GetVolumeRebateStatsRequest{
		AtEpoch:    &epoch,
		PartyId:    &party,
		Pagination: c.firstPage(),
	})
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, errors.WithStack(err)
	}

	out := make([]types.VolumeRebateStats, 0, len(resp.GetStats().GetEdges()))
	for _, e := range resp.GetStats().GetEdges() {
		s, err := types.VolumeRebateStatsFromProto(e.GetNode())
		if err != nil {
			return nil, invalid(e.GetNode(), err)
		}
		out = append(out, s)
	}
	return out, nil
}

func (c *Client) firstPage() *v2.Pagination {
	first := c.cfg.PageSize
	return &v2.Pagination{First: &first}
}

// paginate walks a cursor based connection. A maxPages of zero or less reads
// every page.
func paginate[T any](
	ctx context.Context,
	c *Client,
	maxPages int,
	call func(context.Context, *v2.Pagination) ([]T, *v2.PageInfo, error),
) ([]T, error) {
	var (
		out   []T
		after *string
	)
	for page := 0; maxPages <= 0 || page < maxPages; page++ {
		first := c.cfg.PageSize
		p := &v2.Pagination{First: &first, After: after}

		pctx, cancel := c.withTimeout(ctx)
		items, info, err := call(pctx, p)
		cancel()
		if err != nil {
			return nil, errors.WithStack(err)
		}

		out = append(out, items...)
		if info == nil || !info.HasNextPage || len(info.EndCursor) == 0 {
			break
		}
		cursor := info.EndCursor
		after = &cursor
	}
	return out, nil
}
