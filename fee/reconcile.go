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
	"errors"
	"fmt"
	"strings"

	"code.vegaprotocol.io/feecheck/types"
	"code.vegaprotocol.io/vega/libs/num"
)

var ErrFeeDiscrepancy = errors.New("fee discrepancy")

// Reconciled fee fields.
const (
	FieldMakerFee                          = "maker_fee"
	FieldInfrastructureFee                 = "infrastructure_fee"
	FieldMakerFeeReferrerDiscount          = "maker_fee_referrer_discount"
	FieldInfrastructureFeeReferrerDiscount = "infrastructure_fee_referrer_discount"
	FieldMakerFeeVolumeDiscount            = "maker_fee_volume_discount"
	FieldInfrastructureFeeVolumeDiscount   = "infrastructure_fee_volume_discount"
	FieldBuyBackFee                        = "buy_back_fee"
	FieldTreasuryFee                       = "treasury_fee"
	FieldHighVolumeMakerFee                = "high_volume_maker_fee"
)

// Computation holds every intermediate value of a fee recomputation.
type Computation struct {
	Epoch       uint64
	FactorEpoch uint64
	Taker       string
	Maker       string
	Notional    num.Decimal

	MakerFactor    num.Decimal
	InfraFactor    num.Decimal
	BuyBackFactor  num.Decimal
	TreasuryFactor num.Decimal
	RebateFactor   num.Decimal

	ReferralDiscountFactors *types.Factors
	VolumeDiscountFactors   *types.Factors
	ReferralRewardFactors   *types.Factors

	Gross              TradingFees
	BuyBackFee         num.Decimal
	TreasuryFee        num.Decimal
	HighVolumeMakerFee num.Decimal

	ReferralDiscount TradingFees
	VolumeDiscount   TradingFees
	ReferralReward   TradingFees
	Final            TradingFees
}

// FieldDiscrepancy is one reported fee field outside of the acceptable error.
type FieldDiscrepancy struct {
	Field    string
	Computed num.Decimal
	Reported num.Decimal
}

func (d FieldDiscrepancy) Diff() num.Decimal {
	return d.Computed.Sub(d.Reported).Abs()
}

func (d FieldDiscrepancy) String() string {
	return fmt.Sprintf("%s computed(%s) reported(%s)", d.Field, d.Computed, d.Reported)
}

// DiscrepancyError is returned when the fees reported for a trade do not
// match the recomputed ones.
type DiscrepancyError struct {
	TradeID  string
	MarketID string
	Taker    string
	Maker    string
	Epoch    uint64
	Fields   []FieldDiscrepancy
}

func (e *DiscrepancyError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		fields = append(fields, f.String())
	}
	return fmt.Sprintf("%s: trade %s in market %s at epoch %d: %s",
		ErrFeeDiscrepancy, e.TradeID, e.MarketID, e.Epoch, strings.Join(fields, ", "))
}

func (e *DiscrepancyError) Unwrap() error {
	return ErrFeeDiscrepancy
}

// WithinTolerance tells whether computed and reported differ by no more than
// the acceptable error.
func WithinTolerance(computed, reported, acceptable num.Decimal) bool {
	return computed.Sub(reported).Abs().LessThanOrEqual(acceptable)
}

// Reconcile compares a computation against the reported fee breakdown and
// returns every field outside of the acceptable error. The liquidity fee is
// not reconciled.
func Reconcile(c *Computation, reported *types.Fee, acceptable num.Decimal) []FieldDiscrepancy {
	checks := []FieldDiscrepancy{
		{Field: FieldMakerFee, Computed: c.Final.Maker, Reported: reported.MakerFee},
		{Field: FieldInfrastructureFee, Computed: c.Final.Infra, Reported: reported.InfrastructureFee},
		{Field: FieldMakerFeeReferrerDiscount, Computed: c.ReferralDiscount.Maker, Reported: reported.MakerFeeReferrerDiscount},
		{Field: FieldInfrastructureFeeReferrerDiscount, Computed: c.ReferralDiscount.Infra, Reported: reported.InfrastructureFeeReferrerDiscount},
		{Field: FieldMakerFeeVolumeDiscount, Computed: c.VolumeDiscount.Maker, Reported: reported.MakerFeeVolumeDiscount},
		{Field: FieldInfrastructureFeeVolumeDiscount, Computed: c.VolumeDiscount.Infra, Reported: reported.InfrastructureFeeVolumeDiscount},
		{Field: FieldBuyBackFee, Computed: c.BuyBackFee, Reported: reported.BuyBackFee},
		{Field: FieldTreasuryFee, Computed: c.TreasuryFee, Reported: reported.TreasuryFee},
		{Field: FieldHighVolumeMakerFee, Computed: c.HighVolumeMakerFee, Reported: reported.HighVolumeMakerFee},
	}

	var out []FieldDiscrepancy
	for _, chk := range checks {
		if !WithinTolerance(chk.Computed, chk.Reported, acceptable) {
			out = append(out, chk)
		}
	}
	return out
}
