package prometrics

import (
	"sync"

	"github.com/bexiiiii/euroline-sub001/internal/observability"
	"github.com/prometheus/client_golang/prometheus"
)

// Registry lazily registers one vector per metric key and serves it as an observability.Metrics.
type Registry struct {
	reg        prometheus.Registerer
	namespace  string
	labels     map[observability.MetricKey][]string
	buckets    []float64
	counters   sync.Map // key -> *prometheus.CounterVec
	histograms sync.Map // key -> *prometheus.HistogramVec
	mu         sync.Mutex
}

// New builds a registry bound to reg. A nil reg uses prometheus.DefaultRegisterer.
func New(namespace string, reg prometheus.Registerer) *Registry {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	return &Registry{
		reg:       reg,
		namespace: namespace,
		labels:    observability.MetricLabels,
		buckets:   prometheus.DefBuckets,
	}
}

type counter struct{ v *prometheus.CounterVec }

func (c *counter) Add(d float64, labels ...observability.Label) {
	c.v.With(labelMap(labels)).Add(d)
}

func (c *counter) Bind(labels ...observability.Label) observability.BoundCounter {
	return &boundCounter{v: c.v, labels: labelMap(labels)}
}

type boundCounter struct {
	v      *prometheus.CounterVec
	labels prometheus.Labels
}

func (c *boundCounter) Add(d float64) {
	if c == nil || c.v == nil {
		return
	}
	c.v.With(c.labels).Add(d)
}

type histogram struct{ v *prometheus.HistogramVec }

func (h *histogram) Observe(v float64, labels ...observability.Label) {
	h.v.With(labelMap(labels)).Observe(v)
}

func (h *histogram) Bind(labels ...observability.Label) observability.BoundHistogram {
	return &boundHistogram{v: h.v, labels: labelMap(labels)}
}

type boundHistogram struct {
	v      *prometheus.HistogramVec
	labels prometheus.Labels
}

func (h *boundHistogram) Observe(v float64) {
	if h == nil || h.v == nil {
		return
	}
	h.v.With(h.labels).Observe(v)
}

func labelMap(ls []observability.Label) prometheus.Labels {
	m := make(prometheus.Labels, len(ls))
	for _, l := range ls {
		m[l.Key] = l.Value
	}
	return m
}

func (r *Registry) Counter(name observability.MetricKey) observability.Counter {
	if v, ok := r.counters.Load(name); ok {
		return &counter{v: v.(*prometheus.CounterVec)}
	}
	keys, ok := r.labels[name]
	if !ok {
		return observability.NopCounter()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.counters.Load(name); ok {
		return &counter{v: v.(*prometheus.CounterVec)}
	}
	cv := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: r.namespace, Name: string(name), Help: help(name),
	}, keys)
	r.reg.MustRegister(cv)
	r.counters.Store(name, cv)
	return &counter{v: cv}
}

func (r *Registry) Histogram(name observability.MetricKey) observability.Histogram {
	if v, ok := r.histograms.Load(name); ok {
		return &histogram{v: v.(*prometheus.HistogramVec)}
	}
	keys, ok := r.labels[name]
	if !ok {
		return observability.NopHistogram()
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.histograms.Load(name); ok {
		return &histogram{v: v.(*prometheus.HistogramVec)}
	}
	hv := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: r.namespace, Name: string(name), Help: help(name), Buckets: r.buckets,
	}, keys)
	r.reg.MustRegister(hv)
	r.histograms.Store(name, hv)
	return &histogram{v: hv}
}

func help(name observability.MetricKey) string {
	switch name {
	case observability.MUsecaseRequests:
		return "Total number of use case invocations."
	case observability.MUsecaseDuration:
		return "Duration of use case execution in seconds."
	case observability.MHTTPRequests:
		return "Total number of HTTP requests served."
	case observability.MHTTPRequestDuration:
		return "Duration of HTTP requests in seconds."
	case observability.MExternalRequests:
		return "Total number of calls to external collaborators."
	case observability.MExternalRequestDuration:
		return "Duration of calls to external collaborators in seconds."
	case observability.MCartAdmissions:
		return "Add-to-cart attempts by outcome and catalog."
	default:
		return string(name)
	}
}
