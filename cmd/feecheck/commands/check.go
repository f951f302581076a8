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

package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"code.vegaprotocol.io/feecheck/client/datanode"
	"code.vegaprotocol.io/feecheck/config"
	"code.vegaprotocol.io/feecheck/fee"
	"code.vegaprotocol.io/feecheck/logging"
	"code.vegaprotocol.io/feecheck/metrics"

	"github.com/jessevdk/go-flags"
)

type CheckCmd struct {
	config.HomeFlag
	config.Config
}

var checkCmd CheckCmd

func (opts *CheckCmd) Execute(_ []string) error {
	logger := logging.NewLoggerFromConfig(logging.NewDefaultConfig())
	defer logger.AtExit()

	cfg, err := loadConfig(logger, opts.Home)
	if err != nil {
		return err
	}

	log := logging.NewLoggerFromConfig(cfg.Logging)
	defer log.AtExit()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer cancel()

	if err := metrics.Start(ctx, log, cfg.Metrics); err != nil {
		return err
	}

	client, err := datanode.Dial(log, cfg.DataNode)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Close(); err != nil {
			log.Warn("could not close data node connection", logging.Error(err))
		}
	}()

	checker, err := fee.New(ctx, log, cfg.Fee, datanode.NewInstrumented(log, client))
	if err != nil {
		return fmt.Errorf("could not start fee checker: %w", err)
	}

	report, err := checker.Check(ctx)
	if report != nil {
		fmt.Fprintln(os.Stdout, report.String())
		for _, d := range report.Discrepancies {
			fmt.Fprintln(os.Stdout, d.Error())
		}
	}
	if err != nil {
		if errors.Is(err, fee.ErrFeeDiscrepancy) {
			log.Error("fee discrepancies found", logging.Error(err))
		}
		return err
	}
	return nil
}

func Check(_ context.Context, parser *flags.Parser) error {
	checkCmd = CheckCmd{
		Config: config.NewDefaultConfig(),
	}

	short := "Recomputes the fees of recent trades"
	long := "Recompute the fees of the trades of the current epoch and compare them with the fees the network reported"

	_, err := parser.AddCommand("check", short, long, &checkCmd)
	return err
}
