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
	"fmt"

	"code.vegaprotocol.io/vega/libs/num"
	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

// Factors holds a per fee-component fraction, used for discounts and rewards.
type Factors struct {
	Infra     num.Decimal
	Maker     num.Decimal
	Liquidity num.Decimal
}

var EmptyFactors = Factors{
	Infra:     num.DecimalZero(),
	Maker:     num.DecimalZero(),
	Liquidity: num.DecimalZero(),
}

func (f Factors) String() string {
	return fmt.Sprintf("maker(%s) infra(%s) liquidity(%s)", f.Maker, f.Infra, f.Liquidity)
}

func FactorsFromDiscountFactorsProto(f *vegapb.DiscountFactors) (Factors, error) {
	if f == nil {
		return EmptyFactors, nil
	}
	return parseFactors(f.MakerDiscountFactor, f.InfrastructureDiscountFactor, f.LiquidityDiscountFactor)
}

func FactorsFromRewardFactorsProto(f *vegapb.RewardFactors) (Factors, error) {
	if f == nil {
		return EmptyFactors, nil
	}
	return parseFactors(f.MakerRewardFactor, f.InfrastructureRewardFactor, f.LiquidityRewardFactor)
}

func parseFactors(maker, infra, liquidity string) (Factors, error) {
	m, err := decimalOrZero(maker)
	if err != nil {
		return Factors{}, fmt.Errorf("invalid maker factor: %w", err)
	}
	i, err := decimalOrZero(infra)
	if err != nil {
		return Factors{}, fmt.Errorf("invalid infrastructure factor: %w", err)
	}
	l, err := decimalOrZero(liquidity)
	if err != nil {
		return Factors{}, fmt.Errorf("invalid liquidity factor: %w", err)
	}
	return Factors{Maker: m, Infra: i, Liquidity: l}, nil
}
