package prometrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bexiiiii/euroline-sub001/internal/observability"
)

func TestCounterRegistersOnceAndCounts(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New("euroline", reg)

	r.Counter(observability.MCartAdmissions).Add(1,
		observability.L("outcome", "added"),
		observability.L("catalog", "primary"),
	)
	r.Counter(observability.MCartAdmissions).Bind(
		observability.L("outcome", "added"),
		observability.L("catalog", "primary"),
	).Add(2)

	v, ok := r.counters.Load(observability.MCartAdmissions)
	require.True(t, ok)
	cv := v.(*prometheus.CounterVec)
	assert.InDelta(t, 3, testutil.ToFloat64(cv.WithLabelValues("added", "primary")), 0.0001)

	count, err := testutil.GatherAndCount(reg, "euroline_cart_admissions_total")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestUnknownKeyIsNop(t *testing.T) {
	r := New("euroline", prometheus.NewRegistry())

	assert.NotPanics(t, func() {
		r.Counter("unknown_total").Add(1)
		r.Histogram("unknown_seconds").Observe(1)
	})
}

func TestHistogramObserves(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := New("euroline", reg)

	r.Histogram(observability.MUsecaseDuration).Observe(0.2, observability.L("use_case", "cart.add"))

	count, err := testutil.GatherAndCount(reg, "euroline_usecase_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
