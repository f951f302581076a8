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
	"sync"
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of checking one trade.
type Outcome int

const (
	OutcomeUnspecified Outcome = iota
	OutcomePassed
	OutcomeDiscrepancy
	// network close outs pay no trading fees
	OutcomeSkippedCloseOut
	// auction trades have no aggressor, their fees are not reconciled
	OutcomeSkippedAuction
)

func (o Outcome) String() string {
	switch o {
	case OutcomePassed:
		return "passed"
	case OutcomeDiscrepancy:
		return "discrepancy"
	case OutcomeSkippedCloseOut:
		return "skipped_close_out"
	case OutcomeSkippedAuction:
		return "skipped_auction"
	default:
		return "unspecified"
	}
}

// Report summarises one reconciliation run.
type Report struct {
	RunID    string
	VegaTime time.Time
	Epoch    uint64

	Checked         int
	Passed          int
	SkippedCloseOut int
	SkippedAuction  int
	Discrepancies   []*DiscrepancyError

	mu sync.Mutex
}

func newReport(vegaTime time.Time, epoch uint64) *Report {
	return &Report{
		RunID:    uuid.NewString(),
		VegaTime: vegaTime,
		Epoch:    epoch,
	}
}

func (r *Report) record(o Outcome, derr *DiscrepancyError) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Checked++
	switch o {
	case OutcomePassed:
		r.Passed++
	case OutcomeSkippedCloseOut:
		r.SkippedCloseOut++
	case OutcomeSkippedAuction:
		r.SkippedAuction++
	case OutcomeDiscrepancy:
		r.Discrepancies = append(r.Discrepancies, derr)
	}
}

// Failed tells whether any discrepancy was found.
func (r *Report) Failed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Discrepancies) > 0
}

func (r *Report) String() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return fmt.Sprintf(
		"run(%s) vegaTime(%s) epoch(%d) checked(%d) passed(%d) skippedCloseOut(%d) skippedAuction(%d) discrepancies(%d)",
		r.RunID, r.VegaTime, r.Epoch, r.Checked, r.Passed, r.SkippedCloseOut, r.SkippedAuction, len(r.Discrepancies),
	)
}
