package handler

import (
	"errors"
	"testing"
)

func TestStats_Record(t *testing.T) {
	s := NewStats()
	s.Record(nil)
	s.Record(nil)
	s.Record(errors.New("write failed"))

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 2 {
		t.Errorf("ProcessedTotal = %d, want 2", snap.ProcessedTotal)
	}
	if snap.FailedTotal != 1 {
		t.Errorf("FailedTotal = %d, want 1", snap.FailedTotal)
	}

	s.Reset()
	if got := s.GetSnapshot(); got != (Snapshot{}) {
		t.Errorf("after Reset got %+v", got)
	}
}
