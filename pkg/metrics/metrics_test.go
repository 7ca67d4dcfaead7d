package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveHTTP(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveHTTP("GET", "/api/v1/services", 200, 10*time.Millisecond)
	m.ObserveHTTP("GET", "/api/v1/services", 200, 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues("GET", "/api/v1/services", "200")))
}

func TestObserveQuery_Status(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())

	m.ObserveQuery("select", nil, time.Millisecond)
	m.ObserveQuery("select", errors.New("boom"), time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DBQueriesTotal.WithLabelValues("select", "error")))
}

func TestRecorder_NilSafe(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.BookingsCreated("svc-1", 2)
		r.SlotsOffered("booking", 3)
		NewRecorder(nil).SeriesFailed("svc-1")
	})
}

func TestRecorder_BookingsCreated(t *testing.T) {
	m := NewWithRegistry("test", prometheus.NewRegistry())
	r := NewRecorder(m)

	r.BookingsCreated("svc-1", 3)

	assert.Equal(t, 3.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("svc-1")))
}
