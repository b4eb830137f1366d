package prometheus_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	metrics "blog-admin-service/internal/infrastructure/outbound/metrics/prometheus"
)

func TestPrometheusMetricsProvider_Counters(t *testing.T) {
	p := metrics.NewPrometheusMetricsProvider()

	before := testutil.ToFloat64(metrics.MediaOperationsTotal.WithLabelValues("sync", "false"))
	p.IncrementMediaOperations("sync", false)
	p.IncrementMediaOperations("sync", false)
	assert.Equal(t, before+2, testutil.ToFloat64(metrics.MediaOperationsTotal.WithLabelValues("sync", "false")))

	tagBefore := testutil.ToFloat64(metrics.TagOperationsTotal.WithLabelValues("replace", "true"))
	p.IncrementTagOperations("replace", true)
	assert.Equal(t, tagBefore+1, testutil.ToFloat64(metrics.TagOperationsTotal.WithLabelValues("replace", "true")))

	hits := testutil.ToFloat64(metrics.CacheHitsTotal)
	p.IncrementCacheHits()
	assert.Equal(t, hits+1, testutil.ToFloat64(metrics.CacheHitsTotal))

	p.RecordPipelineDuration("update", 15*time.Millisecond)
	assert.Equal(t, 1, testutil.CollectAndCount(metrics.PipelineDuration))
}

func TestPrometheusMetricsProvider_Health(t *testing.T) {
	p := metrics.NewPrometheusMetricsProvider()

	p.SetServiceHealth(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.ServiceHealth))

	p.SetServiceHealth(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.ServiceHealth))
}
