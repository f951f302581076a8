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

const (
	MarketFeeFactorsMakerFee          = "market.fee.factors.makerFee"
	MarketFeeFactorsInfrastructureFee = "market.fee.factors.infrastructureFee"
	MarketFeeFactorsBuyBackFee        = "market.fee.factors.buybackFee"
	MarketFeeFactorsTreasuryFee       = "market.fee.factors.treasuryFee"
)

// FeeFactorKeys lists every network parameter the fee history tracks.
var FeeFactorKeys = []string{
	MarketFeeFactorsMakerFee,
	MarketFeeFactorsInfrastructureFee,
	MarketFeeFactorsBuyBackFee,
	MarketFeeFactorsTreasuryFee,
}

func isFeeFactorKey(key string) bool {
	for _, k := range FeeFactorKeys {
		if k == key {
			return true
		}
	}
	return false
}
