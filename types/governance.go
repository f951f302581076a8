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
	"time"

	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

// NetworkParameterChange is the outcome of an enacted network parameter
// update proposal.
type NetworkParameterChange struct {
	ProposalID string
	Key        string
	Value      string
	Timestamp  time.Time
}

// NetworkParameterChangeFromProto extracts the parameter change carried by a
// governance proposal. The boolean is false when the proposal does not
// update a network parameter.
func NetworkParameterChangeFromProto(gd *vegapb.GovernanceData) (NetworkParameterChange, bool) {
	proposal := gd.GetProposal()
	if proposal == nil {
		return NetworkParameterChange{}, false
	}
	update := proposal.GetTerms().GetUpdateNetworkParameter()
	if update == nil || update.Changes == nil {
		return NetworkParameterChange{}, false
	}
	return NetworkParameterChange{
		ProposalID: proposal.Id,
		Key:        update.Changes.Key,
		Value:      update.Changes.Value,
		Timestamp:  time.Unix(0, proposal.Timestamp),
	}, true
}
