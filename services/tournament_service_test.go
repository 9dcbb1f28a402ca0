package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/repositories"
	"github.com/Dosada05/chess-tournaments/storage"
)

type failingRepository struct {
	err error
}

func (r failingRepository) List(ctx context.Context) ([]models.Tournament, error) {
	return nil, r.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestListTournamentsReturnsEverything(t *testing.T) {
	repo := repositories.NewStaticTournamentRepository(sampleTournaments())
	svc := NewTournamentService(repo, testLogger())

	got, err := svc.ListTournaments(context.Background())
	if err != nil {
		t.Fatalf("ListTournaments: %v", err)
	}
	if len(got) != len(sampleTournaments()) {
		t.Errorf("len = %d, want %d", len(got), len(sampleTournaments()))
	}
	for i, tr := range sampleTournaments() {
		if got[i] != tr {
			t.Errorf("record %d = %+v, want %+v", i, got[i], tr)
		}
	}

	n, err := svc.Count(context.Background())
	if err != nil || n != len(got) {
		t.Errorf("Count = %d, %v", n, err)
	}
}

func TestListTournamentsClassifiesErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"malformed", fmt.Errorf("decode: %w", models.ErrMalformedTournaments), ErrMalformedData},
		{"not found", storage.ErrSourceNotFound, ErrSourceUnavailable},
		{"unavailable", storage.ErrSourceUnavailable, ErrSourceUnavailable},
		{"missing table", repositories.ErrTournamentTableMissing, ErrSourceUnavailable},
		{"canceled", context.Canceled, context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewTournamentService(failingRepository{err: tt.err}, testLogger())
			_, err := svc.ListTournaments(context.Background())
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if _, err := svc.Count(context.Background()); err == nil {
				t.Error("Count should fail too")
			}
		})
	}
}
