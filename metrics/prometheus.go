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

package metrics

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"code.vegaprotocol.io/feecheck/logging"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// Gauge ...
	Gauge instrument = iota
	// Counter ...
	Counter
	// Histogram ...
	Histogram
)

var (
	// ErrInstrumentNotSupported signals the specified instrument is not yet supported
	ErrInstrumentNotSupported = errors.New("instrument type unsupported")
	// ErrInstrumentTypeMismatch signal the type of the instrument is not expected
	ErrInstrumentTypeMismatch = errors.New("instrument is not of the expected type")
)

const namespace = "feecheck"

// data node calls range from a few milliseconds to paged scans of several seconds
var upstreamBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

var (
	setupOnce sync.Once
	setupErr  error

	tradeCounter       *prometheus.CounterVec
	discrepancyCounter *prometheus.CounterVec
	tradesPending      prometheus.Gauge
	// Call counters for each upstream method
	upstreamRequestCounter *prometheus.CounterVec
	// Latency of each upstream method
	upstreamRequestTime *prometheus.HistogramVec
)

// abstract prometheus types
type instrument int

// combine all possible prometheus options + way to differentiate between regular or vector type
type instrumentOpts struct {
	opts    prometheus.Opts
	buckets []float64
	vectors []string
}

type mi struct {
	gaugeV     *prometheus.GaugeVec
	gauge      prometheus.Gauge
	counterV   *prometheus.CounterVec
	counter    prometheus.Counter
	histogramV *prometheus.HistogramVec
	histogram  prometheus.Histogram
}

// MetricInstrument - template interface for mi type return value - only mock if needed, and only mock the funcs you use
type MetricInstrument interface {
	Gauge() (prometheus.Gauge, error)
	GaugeVec() (*prometheus.GaugeVec, error)
	Counter() (prometheus.Counter, error)
	CounterVec() (*prometheus.CounterVec, error)
	Histogram() (prometheus.Histogram, error)
	HistogramVec() (*prometheus.HistogramVec, error)
}

// InstrumentOption - vararg for instrument options setting
type InstrumentOption func(o *instrumentOpts)

// Vectors - configuration used to create a vector of a given interface, slice of label names
func Vectors(labels ...string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.vectors = labels
	}
}

// Help - set the help field on instrument
func Help(help string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Help = help
	}
}

// Namespace - set namespace
func Namespace(ns string) InstrumentOption {
	return func(o *instrumentOpts) {
		o.opts.Namespace = ns
	}
}

// Buckets - specific to histogram type
func Buckets(b []float64) InstrumentOption {
	return func(o *instrumentOpts) {
		o.buckets = b
	}
}

// AddInstrument  configure and register new metrics instrument
// this will, over time, be moved to use custom Registries, etc...
func AddInstrument(t instrument, name string, opts ...InstrumentOption) (*mi, error) {
	var col prometheus.Collector
	ret := mi{}
	opt := instrumentOpts{
		opts: prometheus.Opts{
			Name: name,
		},
	}
	// apply options
	for _, o := range opts {
		o(&opt)
	}
	switch t {
	case Gauge:
		o := opt.gauge()
		if len(opt.vectors) == 0 {
			ret.gauge = prometheus.NewGauge(o)
			col = ret.gauge
		} else {
			ret.gaugeV = prometheus.NewGaugeVec(o, opt.vectors)
			col = ret.gaugeV
		}
	case Counter:
		o := opt.counter()
		if len(opt.vectors) == 0 {
			ret.counter = prometheus.NewCounter(o)
			col = ret.counter
		} else {
			ret.counterV = prometheus.NewCounterVec(o, opt.vectors)
			col = ret.counterV
		}
	case Histogram:
		o := opt.histogram()
		if len(opt.vectors) == 0 {
			ret.histogram = prometheus.NewHistogram(o)
			col = ret.histogram
		} else {
			ret.histogramV = prometheus.NewHistogramVec(o, opt.vectors)
			col = ret.histogramV
		}
	default:
		return nil, ErrInstrumentNotSupported
	}
	if err := prometheus.Register(col); err != nil {
		return nil, err
	}
	return &ret, nil
}

// Start enables metrics (given config) and serves them over HTTP until ctx
// is cancelled.
func Start(ctx context.Context, log *logging.Logger, conf Config) error {
	if !conf.Enabled {
		return nil
	}
	if err := setupMetrics(); err != nil {
		return errors.Wrap(err, "could not set up metrics")
	}

	mux := http.NewServeMux()
	mux.Handle(conf.Path, promhttp.Handler())
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", conf.Port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("serving metrics", logging.String("address", srv.Addr), logging.String("path", conf.Path))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("metrics server stopped", logging.Error(err))
		}
	}()
	go func() {
		<-ctx.Done()
		_ = srv.Close()
	}()
	return nil
}

func (i instrumentOpts) gauge() prometheus.GaugeOpts {
	return prometheus.GaugeOpts(i.opts)
}

func (i instrumentOpts) counter() prometheus.CounterOpts {
	return prometheus.CounterOpts(i.opts)
}

func (i instrumentOpts) histogram() prometheus.HistogramOpts {
	return prometheus.HistogramOpts{
		Name:      i.opts.Name,
		Namespace: i.opts.Namespace,
		Help:      i.opts.Help,
		Buckets:   i.buckets,
	}
}

// Gauge returns a prometheus Gauge instrument
func (m mi) Gauge() (prometheus.Gauge, error) {
	if m.gauge == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gauge, nil
}

// GaugeVec returns a prometheus GaugeVec instrument
func (m mi) GaugeVec() (*prometheus.GaugeVec, error) {
	if m.gaugeV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.gaugeV, nil
}

// Counter returns a prometheus Counter instrument
func (m mi) Counter() (prometheus.Counter, error) {
	if m.counter == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counter, nil
}

// CounterVec returns a prometheus CounterVec instrument
func (m mi) CounterVec() (*prometheus.CounterVec, error) {
	if m.counterV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.counterV, nil
}

func (m mi) Histogram() (prometheus.Histogram, error) {
	if m.histogram == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.histogram, nil
}

func (m mi) HistogramVec() (*prometheus.HistogramVec, error) {
	if m.histogramV == nil {
		return nil, ErrInstrumentTypeMismatch
	}
	return m.histogramV, nil
}

func setupMetrics() error {
	setupOnce.Do(func() {
		setupErr = registerInstruments()
	})
	return setupErr
}

func registerInstruments() error {
	h, err := AddInstrument(
		Counter,
		"trades_total",
		Namespace(namespace),
		Vectors("market", "outcome"),
		Help("Number of trades checked, by outcome"),
	)
	if err != nil {
		return err
	}
	tc, err := h.CounterVec()
	if err != nil {
		return err
	}
	tradeCounter = tc

	h, err = AddInstrument(
		Counter,
		"fee_discrepancies_total",
		Namespace(namespace),
		Vectors("field"),
		Help("Number of fee fields found outside of the acceptable error"),
	)
	if err != nil {
		return err
	}
	dc, err := h.CounterVec()
	if err != nil {
		return err
	}
	discrepancyCounter = dc

	h, err = AddInstrument(
		Gauge,
		"trades_pending",
		Namespace(namespace),
		Help("Number of trades listed but not yet checked"),
	)
	if err != nil {
		return err
	}
	tp, err := h.Gauge()
	if err != nil {
		return err
	}
	tradesPending = tp

	//
	// upstream usage metrics start here
	//

	h, err = AddInstrument(
		Counter,
		"upstream_request_count_total",
		Namespace(namespace),
		Vectors("method"),
		Help("Count of data node requests"),
	)
	if err != nil {
		return err
	}
	rc, err := h.CounterVec()
	if err != nil {
		return err
	}
	upstreamRequestCounter = rc

	h, err = AddInstrument(
		Histogram,
		"upstream_request_seconds",
		Namespace(namespace),
		Vectors("method"),
		Buckets(upstreamBuckets),
		Help("Latency of data node requests"),
	)
	if err != nil {
		return err
	}
	rt, err := h.HistogramVec()
	if err != nil {
		return err
	}
	upstreamRequestTime = rt

	return nil
}

// TradeCounterInc increments the checked trades counter
func TradeCounterInc(market, outcome string) {
	if tradeCounter == nil {
		return
	}
	tradeCounter.WithLabelValues(market, outcome).Inc()
}

// DiscrepancyCounterInc increments the discrepancy counter of a fee field
func DiscrepancyCounterInc(field string) {
	if discrepancyCounter == nil {
		return
	}
	discrepancyCounter.WithLabelValues(field).Inc()
}

// TradesPendingSet updates the number of trades waiting to be checked
func TradesPendingSet(n int) {
	if tradesPending == nil {
		return
	}
	tradesPending.Set(float64(n))
}

// StartUpstreamRequestAndTime returns a func recording one call to the given
// upstream method when invoked.
func StartUpstreamRequestAndTime(method string) func() {
	startTime := time.Now()
	return func() {
		if upstreamRequestCounter == nil || upstreamRequestTime == nil {
			return
		}
		upstreamRequestCounter.WithLabelValues(method).Inc()
		upstreamRequestTime.WithLabelValues(method).Observe(time.Since(startTime).Seconds())
	}
}
