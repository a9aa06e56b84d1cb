// Copyright (c) 2020 The Meter.io developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"github.com/meterio/mev-sim/reward"
	"github.com/meterio/mev-sim/simulator"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "mevsim"

// Exporter holds the gauges of one run on a private registry, suitable for the
// node exporter textfile collector.
type Exporter struct {
	registry *prometheus.Registry

	meanGauge        *prometheus.GaugeVec
	stdDevGauge      *prometheus.GaugeVec
	giniGauge        *prometheus.GaugeVec
	distributedGauge *prometheus.GaugeVec
	residualGauge    *prometheus.GaugeVec
	blocksGauge      prometheus.Gauge
	epochsGauge      prometheus.Gauge
	thresholdGauge   prometheus.Gauge
}

func NewExporter() *Exporter {
	policyGauge := func(name, help string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		}, []string{"policy"})
	}
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		})
	}

	e := &Exporter{
		registry:         prometheus.NewRegistry(),
		meanGauge:        policyGauge("earnings_mean", "Mean validator earnings"),
		stdDevGauge:      policyGauge("earnings_stddev", "Population standard deviation of validator earnings"),
		giniGauge:        policyGauge("earnings_gini", "Gini coefficient of validator earnings"),
		distributedGauge: policyGauge("pool_distributed_total", "Pool mass distributed over all epochs"),
		residualGauge:    policyGauge("pool_residual", "Pool balance left undistributed after the last epoch"),
		blocksGauge:      gauge("blocks_total", "Blocks simulated"),
		epochsGauge:      gauge("epochs_total", "Epoch boundaries reached"),
		thresholdGauge:   gauge("mev_threshold", "Median MEV value used as surplus threshold"),
	}
	e.registry.MustRegister(
		e.meanGauge, e.stdDevGauge, e.giniGauge, e.distributedGauge, e.residualGauge,
		e.blocksGauge, e.epochsGauge, e.thresholdGauge,
	)
	return e
}

func (e *Exporter) Observe(res *simulator.Result) {
	for _, s := range res.Summaries {
		name := s.Policy.String()
		e.meanGauge.WithLabelValues(name).Set(s.Mean)
		e.stdDevGauge.WithLabelValues(name).Set(s.StdDev)
		e.giniGauge.WithLabelValues(name).Set(s.Gini)
	}
	for _, p := range reward.Policies {
		if !p.Pooled() {
			continue
		}
		e.distributedGauge.WithLabelValues(p.String()).Set(res.Outcome.Distributed(p))
		e.residualGauge.WithLabelValues(p.String()).Set(res.Outcome.Residual(p))
	}
	e.blocksGauge.Set(float64(res.Config.NumBlocks))
	e.epochsGauge.Set(float64(len(res.Outcome.Epochs)))
	e.thresholdGauge.Set(res.Threshold)
}

func (e *Exporter) Gatherer() prometheus.Gatherer {
	return e.registry
}

func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return errors.Wrapf(err, "write metrics to %v", path)
	}
	return nil
}

// Export observes res on a fresh exporter and writes it to path.
func Export(res *simulator.Result, path string) error {
	e := NewExporter()
	e.Observe(res)
	return e.WriteTextfile(path)
}
