package id3dissect

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonhull/id3dissect/internal/metrics"
)

// Metrics counts dissections, issues and frames as Prometheus series.
// Share one Metrics across every call that should feed the same registry.
type Metrics struct {
	rec *metrics.Recorder
}

// NewMetrics registers the dissection collectors on reg. It panics if
// registration fails, like prometheus.MustRegister.
//
// Example:
//
//	m := id3dissect.NewMetrics(prometheus.DefaultRegisterer)
//	d, err := id3dissect.DissectFile(path, id3dissect.WithMetrics(m))
func NewMetrics(reg prometheus.Registerer) *Metrics {
	rec, err := metrics.New(reg)
	if err != nil {
		panic(err)
	}
	return &Metrics{rec: rec}
}

func (m *Metrics) observe(d *Dissection, err error) {
	if m == nil {
		return
	}
	m.rec.Observe(d, err)
}
