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

package types

import (
	"errors"
	"fmt"
	"time"

	"code.vegaprotocol.io/vega/libs/num"
	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

// NetworkParty is the party ID the network trades under.
const NetworkParty = "network"

var ErrMissingTradePrice = errors.New("trade has no price")

// Side is the side of the aggressive order of a trade.
type Side int32

const (
	SideUnspecified Side = iota
	SideBuy
	SideSell
)

func (s Side) String() string {
	switch s {
	case SideBuy:
		return "SIDE_BUY"
	case SideSell:
		return "SIDE_SELL"
	default:
		return "SIDE_UNSPECIFIED"
	}
}

func SideFromProto(s vegapb.Side) Side {
	switch s {
	case vegapb.Side_SIDE_BUY:
		return SideBuy
	case vegapb.Side_SIDE_SELL:
		return SideSell
	default:
		return SideUnspecified
	}
}

type TradeType int32

const (
	TradeTypeDefault TradeType = iota
	TradeTypeNetworkCloseOutGood
	TradeTypeNetworkCloseOutBad
)

func (t TradeType) String() string {
	switch t {
	case TradeTypeNetworkCloseOutGood:
		return "TYPE_NETWORK_CLOSE_OUT_GOOD"
	case TradeTypeNetworkCloseOutBad:
		return "TYPE_NETWORK_CLOSE_OUT_BAD"
	default:
		return "TYPE_DEFAULT"
	}
}

// IsNetworkCloseOut tells whether the network itself was a counterparty
// to the trade, in which case no trading fees apply.
func (t TradeType) IsNetworkCloseOut() bool {
	return t == TradeTypeNetworkCloseOutGood || t == TradeTypeNetworkCloseOutBad
}

func TradeTypeFromProto(t vegapb.Trade_Type) TradeType {
	switch t {
	case vegapb.Trade_TYPE_NETWORK_CLOSE_OUT_GOOD:
		return TradeTypeNetworkCloseOutGood
	case vegapb.Trade_TYPE_NETWORK_CLOSE_OUT_BAD:
		return TradeTypeNetworkCloseOutBad
	default:
		return TradeTypeDefault
	}
}

type Trade struct {
	ID        string
	MarketID  string
	Price     num.Decimal
	Size      uint64
	Buyer     string
	Seller    string
	Aggressor Side
	Type      TradeType
	Timestamp time.Time
	BuyerFee  *Fee
	SellerFee *Fee
}

// Roles returns the taker and the maker of the trade. Both are empty for
// auction trades.
func (t *Trade) Roles() (taker, maker string) {
	return t.Taker(), t.Maker()
}

// Taker returns the party whose order crossed the book. Empty for auction
// trades.
func (t *Trade) Taker() string {
	switch t.Aggressor {
	case SideBuy:
		return t.Buyer
	case SideSell:
		return t.Seller
	default:
		return ""
	}
}

// Maker returns the passive party of the trade. Empty for auction trades.
func (t *Trade) Maker() string {
	switch t.Aggressor {
	case SideBuy:
		return t.Seller
	case SideSell:
		return t.Buyer
	default:
		return ""
	}
}

// TakerFee returns the fee breakdown reported for the aggressor, which is
// where the network reports the fees for the whole trade.
func (t *Trade) TakerFee() *Fee {
	var f *Fee
	switch t.Aggressor {
	case SideBuy:
		f = t.BuyerFee
	case SideSell:
		f = t.SellerFee
	}
	if f == nil {
		return NewFee()
	}
	return f
}

func (t *Trade) String() string {
	return fmt.Sprintf(
		"ID(%s) marketID(%s) price(%s) size(%d) buyer(%s) seller(%s) aggressor(%s) type(%s) timestamp(%d) buyerFee(%s) sellerFee(%s)",
		t.ID, t.MarketID, t.Price, t.Size, t.Buyer, t.Seller,
		t.Aggressor, t.Type, t.Timestamp.UnixNano(),
		t.BuyerFee.String(), t.SellerFee.String(),
	)
}

func TradeFromProto(t *vegapb.Trade) (*Trade, error) {
	if len(t.Price) == 0 {
		return nil, ErrMissingTradePrice
	}
	price, err := num.DecimalFromString(t.Price)
	if err != nil {
		return nil, fmt.Errorf("invalid trade price: %w", err)
	}
	buyerFee, err := FeeFromProto(t.BuyerFee)
	if err != nil {
		return nil, fmt.Errorf("invalid buyer fee: %w", err)
	}
	sellerFee, err := FeeFromProto(t.SellerFee)
	if err != nil {
		return nil, fmt.Errorf("invalid seller fee: %w", err)
	}
	return &Trade{
		ID:        t.Id,
		MarketID:  t.MarketId,
		Price:     price,
		Size:      t.Size,
		Buyer:     t.Buyer,
		Seller:    t.Seller,
		Aggressor: SideFromProto(t.Aggressor),
		Type:      TradeTypeFromProto(t.Type),
		Timestamp: time.Unix(0, t.Timestamp),
		BuyerFee:  buyerFee,
		SellerFee: sellerFee,
	}, nil
}
