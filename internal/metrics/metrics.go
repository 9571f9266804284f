// Package metrics records dissection outcomes as Prometheus series.
package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/simonhull/id3dissect/internal/types"
)

// Result labels for the dissections counter.
const (
	ResultOK       = "ok"
	ResultIssues   = "issues"
	ResultRejected = "rejected"
	ResultFailed   = "failed"
)

// Recorder holds the collectors for one registry. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	dissections *prometheus.CounterVec
	issues      *prometheus.CounterVec
	frames      *prometheus.CounterVec
	tagBytes    prometheus.Histogram
}

// New creates a Recorder and registers its collectors on reg. A nil reg
// leaves the collectors unregistered.
func New(reg prometheus.Registerer) (*Recorder, error) {
	r := &Recorder{
		dissections: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "id3dissect",
				Name:      "dissections_total",
				Help:      "Tags dissected, by result.",
			},
			[]string{"result"},
		),
		issues: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "id3dissect",
				Name:      "issues_total",
				Help:      "Issues raised, by code and severity.",
			},
			[]string{"code", "severity"},
		),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "id3dissect",
				Name:      "frames_total",
				Help:      "Frames decoded, by content kind.",
			},
			[]string{"kind"},
		),
		tagBytes: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "id3dissect",
				Name:      "tag_size_bytes",
				Help:      "Declared tag sizes in bytes.",
				Buckets:   prometheus.ExponentialBuckets(1024, 4, 10),
			},
		),
	}

	if reg == nil {
		return r, nil
	}
	for _, c := range []prometheus.Collector{r.dissections, r.issues, r.frames, r.tagBytes} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Observe records one dissection. d may be nil when err is an I/O failure.
func (r *Recorder) Observe(d *types.Dissection, err error) {
	if r == nil {
		return
	}
	r.dissections.WithLabelValues(result(d, err)).Inc()
	if d == nil {
		return
	}

	r.tagBytes.Observe(float64(d.Header.Size))
	for issue := range d.AllIssues() {
		r.issues.WithLabelValues(string(issue.Code), issue.Severity.String()).Inc()
	}
	for _, f := range d.AllFrames() {
		r.frames.WithLabelValues(f.Kind.String()).Inc()
	}
}

func result(d *types.Dissection, err error) string {
	switch {
	case types.IsRejection(err):
		return ResultRejected
	case err != nil && !errors.Is(err, types.ErrStrict):
		return ResultFailed
	case d != nil && d.Stats.Errors+d.Stats.Warnings > 0:
		return ResultIssues
	default:
		return ResultOK
	}
}
