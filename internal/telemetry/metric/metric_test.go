package metric

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecordMutation(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.RecordMutation("VENTA", "CREAR")
	m.RecordMutation("VENTA", "CREAR")
	m.RecordMutation("CLIENTE", "ELIMINAR")

	if got := testutil.ToFloat64(m.Mutations.WithLabelValues("VENTA", "CREAR")); got != 2 {
		t.Errorf("mutations{VENTA,CREAR} = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.Mutations.WithLabelValues("CLIENTE", "ELIMINAR")); got != 1 {
		t.Errorf("mutations{CLIENTE,ELIMINAR} = %v, want 1", got)
	}
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	// Must not panic.
	m.RecordMutation("VENTA", "CREAR")
	m.RecordPersistFailure("iphone-sales-v2")
	m.RecordLoginFailure()
}
