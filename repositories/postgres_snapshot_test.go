package repositories

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestHandleSnapshotError(t *testing.T) {
	if err := handleSnapshotError(&pq.Error{Code: "42P01"}); !errors.Is(err, ErrTournamentTableMissing) {
		t.Errorf("undefined_table mapped to %v", err)
	}

	cause := &pq.Error{Code: "28P01"}
	err := handleSnapshotError(cause)
	if errors.Is(err, ErrTournamentTableMissing) {
		t.Error("auth failure mapped to ErrTournamentTableMissing")
	}
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		t.Errorf("original pq error lost: %v", err)
	}
}
