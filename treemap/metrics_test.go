package treemap

import (
	"testing"

	"github.com/amp-labs/amp-ordered/sortable"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Note: Cannot use t.Parallel() because these tests modify global Prometheus metrics.
//
//nolint:paralleltest // Test modifies global Prometheus metric state
func TestMetrics_NamedMap(t *testing.T) {
	insertsTotal.Reset()
	erasesTotal.Reset()
	rotationsTotal.Reset()

	m := New[sortable.Int, int](WithName("accounts"))

	for i := range 10 {
		m.Put(sortable.Int(i), i)
	}

	require.True(t, m.Delete(sortable.Int(5)))

	assert.Equal(t, float64(10), testutil.ToFloat64(insertsTotal.WithLabelValues("accounts")))
	assert.Equal(t, float64(1), testutil.ToFloat64(erasesTotal.WithLabelValues("accounts")))

	// Ten ascending insertions cannot stay balanced without rotating.
	assert.Positive(t, testutil.ToFloat64(rotationsTotal.WithLabelValues("accounts")))

	// Overwrites are not insertions.
	m.Put(sortable.Int(1), 99)
	assert.Equal(t, float64(10), testutil.ToFloat64(insertsTotal.WithLabelValues("accounts")))
}

//nolint:paralleltest // Test modifies global Prometheus metric state
func TestMetrics_UnnamedMapSkipsRecording(t *testing.T) {
	insertsTotal.Reset()
	erasesTotal.Reset()
	rotationsTotal.Reset()

	m := New[sortable.Int, int]()

	for i := range 10 {
		m.Put(sortable.Int(i), i)
	}

	m.Delete(sortable.Int(3))

	assert.Equal(t, 0, testutil.CollectAndCount(insertsTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(erasesTotal))
	assert.Equal(t, 0, testutil.CollectAndCount(rotationsTotal))
}
