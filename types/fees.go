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

// Fee is the fee breakdown reported by the network for one party of a trade.
// All amounts are integers expressed in the settlement asset's smallest unit.
type Fee struct {
	MakerFee          num.Decimal
	InfrastructureFee num.Decimal
	LiquidityFee      num.Decimal

	MakerFeeVolumeDiscount          num.Decimal
	InfrastructureFeeVolumeDiscount num.Decimal
	LiquidityFeeVolumeDiscount      num.Decimal

	MakerFeeReferrerDiscount          num.Decimal
	InfrastructureFeeReferrerDiscount num.Decimal
	LiquidityFeeReferrerDiscount      num.Decimal

	TreasuryFee        num.Decimal
	BuyBackFee         num.Decimal
	HighVolumeMakerFee num.Decimal
}

// NewFee returns a new fee object, with all fields initialised.
func NewFee() *Fee {
	f := &Fee{}
	f.Init()
	return f
}

func (f *Fee) Init() {
	f.MakerFee = num.DecimalZero()
	f.InfrastructureFee = num.DecimalZero()
	f.LiquidityFee = num.DecimalZero()
	f.MakerFeeVolumeDiscount = num.DecimalZero()
	f.InfrastructureFeeVolumeDiscount = num.DecimalZero()
	f.LiquidityFeeVolumeDiscount = num.DecimalZero()
	f.MakerFeeReferrerDiscount = num.DecimalZero()
	f.InfrastructureFeeReferrerDiscount = num.DecimalZero()
	f.LiquidityFeeReferrerDiscount = num.DecimalZero()
	f.TreasuryFee = num.DecimalZero()
	f.BuyBackFee = num.DecimalZero()
	f.HighVolumeMakerFee = num.DecimalZero()
}

// FeeFromProto converts the network fee. Empty fields are the network's way
// of saying zero, so they decode as zero.
func FeeFromProto(f *vegapb.Fee) (*Fee, error) {
	fee := NewFee()
	if f == nil {
		return fee, nil
	}

	fields := []struct {
		name string
		raw  string
		dst  *num.Decimal
	}{
		{"maker_fee", f.MakerFee, &fee.MakerFee},
		{"infrastructure_fee", f.InfrastructureFee, &fee.InfrastructureFee},
		{"liquidity_fee", f.LiquidityFee, &fee.LiquidityFee},
		{"maker_fee_volume_discount", f.MakerFeeVolumeDiscount, &fee.MakerFeeVolumeDiscount},
		{"infrastructure_fee_volume_discount", f.InfrastructureFeeVolumeDiscount, &fee.InfrastructureFeeVolumeDiscount},
		{"liquidity_fee_volume_discount", f.LiquidityFeeVolumeDiscount, &fee.LiquidityFeeVolumeDiscount},
		{"maker_fee_referrer_discount", f.MakerFeeReferrerDiscount, &fee.MakerFeeReferrerDiscount},
		{"infrastructure_fee_referrer_discount", f.InfrastructureFeeReferrerDiscount, &fee.InfrastructureFeeReferrerDiscount},
		{"liquidity_fee_referrer_discount", f.LiquidityFeeReferrerDiscount, &fee.LiquidityFeeReferrerDiscount},
		{"treasury_fee", f.TreasuryFee, &fee.TreasuryFee},
		{"buy_back_fee", f.BuyBackFee, &fee.BuyBackFee},
		{"high_volume_maker_fee", f.HighVolumeMakerFee, &fee.HighVolumeMakerFee},
	}
	for _, fl := range fields {
		v, err := decimalOrZero(fl.raw)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", fl.name, err)
		}
		*fl.dst = v
	}
	return fee, nil
}

func (f *Fee) String() string {
	if f == nil {
		return "fee(nil)"
	}
	return fmt.Sprintf(
		"makerFee(%s) infrastructureFee(%s) liquidityFee(%s) makerFeeReferrerDiscount(%s) infrastructureFeeReferrerDiscount(%s) makerFeeVolumeDiscount(%s) infrastructureFeeVolumeDiscount(%s) buyBackFee(%s) treasuryFee(%s) highVolumeMakerFee(%s)",
		f.MakerFee, f.InfrastructureFee, f.LiquidityFee,
		f.MakerFeeReferrerDiscount, f.InfrastructureFeeReferrerDiscount,
		f.MakerFeeVolumeDiscount, f.InfrastructureFeeVolumeDiscount,
		f.BuyBackFee, f.TreasuryFee, f.HighVolumeMakerFee,
	)
}

func decimalOrZero(s string) (num.Decimal, error) {
	if len(s) == 0 {
		return num.DecimalZero(), nil
	}
	return num.DecimalFromString(s)
}
