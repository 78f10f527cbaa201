package audit

import (
	"context"
	"testing"
)

func TestLoginTrail_unconfiguredBackend(t *testing.T) {
	trail := NewLoginTrail(nil)

	if err := trail.Record(context.Background(), LoginEvent{Outcome: OutcomeOK}); err == nil {
		t.Fatal("expected error when no backend is configured")
	}
	if _, err := trail.Recent(context.Background(), 10); err == nil {
		t.Fatal("expected error when no backend is configured")
	}
}
