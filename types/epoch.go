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
	"time"

	vegapb "code.vegaprotocol.io/vega/protos/vega"
)

// Epoch is a numbered window of network time over which reward, discount
// and rebate statistics are finalised.
type Epoch struct {
	Seq        uint64
	StartTime  time.Time
	ExpiryTime time.Time
	EndTime    time.Time
}

func (e Epoch) String() string {
	return fmt.Sprintf(
		"seq(%d) startTime(%s) expiryTime(%s) endTime(%s)",
		e.Seq, e.StartTime, e.ExpiryTime, e.EndTime,
	)
}

// StartedBy tells whether the epoch had already started at t.
func (e Epoch) StartedBy(t time.Time) bool {
	return !e.StartTime.After(t)
}

func EpochFromProto(e *vegapb.Epoch) Epoch {
	epoch := Epoch{Seq: e.Seq}
	if ts := e.Timestamps; ts != nil {
		epoch.StartTime = time.Unix(0, ts.StartTime)
		epoch.ExpiryTime = time.Unix(0, ts.ExpiryTime)
		if ts.EndTime > 0 {
			epoch.EndTime = time.Unix(0, ts.EndTime)
		}
	}
	return epoch
}
