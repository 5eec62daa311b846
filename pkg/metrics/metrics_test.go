package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	m := New(nil)
	if m.objectsChecked == nil || m.violations == nil || m.treeDuration == nil {
		t.Fatal("metrics not initialized")
	}
}

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)
	m.RecordCheck("Forwarding")
	m.RecordViolation("Forwarding", "max")
	m.ObserveTree("Layer3Forwarding", time.Millisecond)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error = %v", err)
	}
	if len(families) != 3 {
		t.Errorf("expected 3 metric families, got %d", len(families))
	}
}

func TestRecordCheck(t *testing.T) {
	m := New(nil)
	m.RecordCheck("Forwarding")
	m.RecordCheck("Forwarding")
	m.RecordCheck("Layer3Forwarding")

	if got := testutil.ToFloat64(m.objectsChecked.WithLabelValues("Forwarding")); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	if got := testutil.ToFloat64(m.objectsChecked.WithLabelValues("Layer3Forwarding")); got != 1 {
		t.Errorf("expected 1, got %v", got)
	}
}

func TestRecordViolation(t *testing.T) {
	m := New(nil)
	m.RecordViolation("Trunk", "oneof")
	m.RecordViolation("Trunk", "max")
	m.RecordViolation("Trunk", "max")

	if got := testutil.ToFloat64(m.violations.WithLabelValues("Trunk", "max")); got != 2 {
		t.Errorf("expected 2, got %v", got)
	}
	if got := testutil.CollectAndCount(m.violations); got != 2 {
		t.Errorf("expected 2 series, got %d", got)
	}
}
