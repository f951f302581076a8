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

	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

var ErrAssetMissingDetails = errors.New("asset has no details")

type Asset struct {
	ID       string
	Symbol   string
	Decimals uint64
}

func AssetFromProto(a *vegapb.Asset) (*Asset, error) {
	if a.Details == nil {
		return nil, ErrAssetMissingDetails
	}
	return &Asset{
		ID:       a.Id,
		Symbol:   a.Details.Symbol,
		Decimals: a.Details.Decimals,
	}, nil
}
