package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()

	m.Intents.WithLabelValues("split_payment").Inc()
	m.Intents.WithLabelValues("split_payment").Inc()
	m.PaymentsRecorded.WithLabelValues(KindSettlement).Inc()

	if got := testutil.ToFloat64(m.Intents.WithLabelValues("split_payment")); got != 2 {
		t.Errorf("intents = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.PaymentsRecorded.WithLabelValues(KindSettlement)); got != 1 {
		t.Errorf("settlements = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(m.StoreErrors); got != 0 {
		t.Errorf("expected no store error series, got %d", got)
	}
}

func TestSnapshot(t *testing.T) {
	m := New()

	samples, err := m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(samples) != 0 {
		t.Errorf("expected empty snapshot, got %+v", samples)
	}

	m.StoreErrors.WithLabelValues("add payment").Inc()
	m.Intents.WithLabelValues("confirm_settle_up").Add(3)

	samples, err = m.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot failed: %v", err)
	}
	if len(samples) != 2 {
		t.Fatalf("expected 2 samples, got %d", len(samples))
	}

	if samples[0].Name != "splitwise_intents_total" || samples[0].Value != 3 {
		t.Errorf("unexpected first sample %+v", samples[0])
	}
	if samples[0].Labels["intent"] != "confirm_settle_up" {
		t.Errorf("unexpected intent label %v", samples[0].Labels)
	}
	if samples[1].Name != "splitwise_store_errors_total" || samples[1].Labels["op"] != "add payment" {
		t.Errorf("unexpected second sample %+v", samples[1])
	}
}
