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
	v2 "code.vegaprotocol.io/vega/protos/data-node/api/v2"
)

// ReferralSetStats is the referral program outcome for one referee at the
// end of an epoch.
type ReferralSetStats struct {
	AtEpoch         uint64
	PartyID         string
	DiscountFactors Factors
	RewardFactors   Factors
}

func ReferralSetStatsFromProto(s *v2.ReferralSetStats) (ReferralSetStats, error) {
	discount, err := FactorsFromDiscountFactorsProto(s.DiscountFactors)
	if err != nil {
		return ReferralSetStats{}, fmt.Errorf("invalid referral discount factors: %w", err)
	}
	reward, err := FactorsFromRewardFactorsProto(s.RewardFactors)
	if err != nil {
		return ReferralSetStats{}, fmt.Errorf("invalid referral reward factors: %w", err)
	}
	return ReferralSetStats{
		AtEpoch:         s.AtEpoch,
		PartyID:         s.PartyId,
		DiscountFactors: discount,
		RewardFactors:   reward,
	}, nil
}

type VolumeDiscountStats struct {
	AtEpoch         uint64
	PartyID         string
	DiscountFactors Factors
}

func VolumeDiscountStatsFromProto(s *v2.VolumeDiscountStats) (VolumeDiscountStats, error) {
	discount, err := FactorsFromDiscountFactorsProto(s.DiscountFactors)
	if err != nil {
		return VolumeDiscountStats{}, fmt.Errorf("invalid volume discount factors: %w", err)
	}
	return VolumeDiscountStats{
		AtEpoch:         s.AtEpoch,
		PartyID:         s.PartyId,
		DiscountFactors: discount,
	}, nil
}

type VolumeRebateStats struct {
	AtEpoch               uint64
	PartyID               string
	AdditionalMakerRebate num.Decimal
}

func VolumeRebateStatsFromProto(s *v2.VolumeRebateStats) (VolumeRebateStats, error) {
	rebate, err := decimalOrZero(s.AdditionalMakerRebate)
	if err != nil {
		return VolumeRebateStats{}, fmt.Errorf("invalid additional maker rebate: %w", err)
	}
	return VolumeRebateStats{
		AtEpoch:               s.AtEpoch,
		PartyID:               s.PartyId,
		AdditionalMakerRebate: rebate,
	}, nil
}
