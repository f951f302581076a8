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
	"fmt"

	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"
)

// TradingFees are the three fee components discounts and rewards apply to.
type TradingFees struct {
	Maker     num.Decimal
	Liquidity num.Decimal
	Infra     num.Decimal
}

func zeroTradingFees() TradingFees {
	return TradingFees{
		Maker:     num.DecimalZero(),
		Liquidity: num.DecimalZero(),
		Infra:     num.DecimalZero(),
	}
}

func (f TradingFees) String() string {
	return fmt.Sprintf("maker(%s) liquidity(%s) infra(%s)", f.Maker, f.Liquidity, f.Infra)
}

// GrossFee is the fee owed on the notional before any adjustment, rounded up.
func GrossFee(factor, notional num.Decimal) num.Decimal {
	return factor.Mul(notional).Ceil()
}

// EffectiveRebateFactor caps the maker's rebate by what the buyback and
// treasury fees can fund.
func EffectiveRebateFactor(rebate, buyBackFactor, treasuryFactor num.Decimal) num.Decimal {
	return num.MinD(rebate, buyBackFactor.Add(treasuryFactor))
}

// ApplyRebateFactor takes the high volume maker fee out of the buyback and
// treasury fees, scaling both down by the same proportion.
func ApplyRebateFactor(notional, buyBack, treasury, factor num.Decimal) (num.Decimal, num.Decimal, num.Decimal) {
	if factor.IsZero() {
		return buyBack, treasury, num.DecimalZero()
	}
	total := buyBack.Add(treasury)
	if total.IsZero() {
		return buyBack, treasury, num.DecimalZero()
	}

	hvmf := factor.Mul(notional).Floor()
	scale := num.DecimalOne().Sub(hvmf.Div(total))
	return buyBack.Mul(scale).Floor(), treasury.Mul(scale).Floor(), hvmf
}

// ApplyDiscountFactors returns the fees left once the discount is taken off,
// and the amounts discounted. Nil factors discount nothing.
func ApplyDiscountFactors(fees TradingFees, f *types.Factors) (TradingFees, TradingFees) {
	if f == nil {
		return fees, zeroTradingFees()
	}
	return deduct(fees, *f)
}

// ApplyRewardFactors returns the fees left once the referrer reward is paid
// out of them, and the rewarded amounts. Nil factors reward nothing.
func ApplyRewardFactors(fees TradingFees, f *types.Factors) (TradingFees, TradingFees) {
	if f == nil {
		return fees, zeroTradingFees()
	}
	return deduct(fees, *f)
}

func deduct(fees TradingFees, f types.Factors) (TradingFees, TradingFees) {
	taken := TradingFees{
		Maker:     fees.Maker.Mul(f.Maker).Floor(),
		Liquidity: fees.Liquidity.Mul(f.Liquidity).Floor(),
		Infra:     fees.Infra.Mul(f.Infra).Floor(),
	}
	left := TradingFees{
		Maker:     fees.Maker.Sub(taken.Maker),
		Liquidity: fees.Liquidity.Sub(taken.Liquidity),
		Infra:     fees.Infra.Sub(taken.Infra),
	}
	return left, taken
}
