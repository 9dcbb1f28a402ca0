package repositories

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/storage"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStaticRepositoryListPreservesOrder(t *testing.T) {
	input := []models.Tournament{
		{ID: "b", Name: "Second"},
		{ID: "a", Name: "First"},
	}
	repo := NewStaticTournamentRepository(input)

	got, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ID != "b" || got[1].ID != "a" {
		t.Errorf("List = %+v, want original order", got)
	}
}

func TestStaticRepositoryIsReadOnly(t *testing.T) {
	input := []models.Tournament{{ID: "1", PlayersJoined: 3, MaxPlayers: 8}}
	repo := NewStaticTournamentRepository(input)

	// изменения входного среза и результата не должны попадать в хранилище
	input[0].PlayersJoined = 100
	first, _ := repo.List(context.Background())
	first[0].Name = "mutated"

	second, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if second[0].PlayersJoined != 3 || second[0].Name != "" {
		t.Errorf("store was mutated: %+v", second[0])
	}
}

func TestStaticRepositoryEmpty(t *testing.T) {
	got, err := NewStaticTournamentRepository(nil).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("List = %#v, want empty non-nil slice", got)
	}
}

func TestStaticRepositoryCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := NewStaticTournamentRepository(nil).List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

func TestLoadFromBundledSource(t *testing.T) {
	tournaments, err := LoadFromSource(context.Background(), storage.NewBundledSource(), discardLogger())
	if err != nil {
		t.Fatalf("LoadFromSource: %v", err)
	}
	if len(tournaments) == 0 {
		t.Fatal("bundled data set is empty")
	}

	seen := make(map[string]bool)
	for _, tr := range tournaments {
		if seen[tr.ID] {
			t.Errorf("duplicate id %q", tr.ID)
		}
		seen[tr.ID] = true
		if !tr.Status.IsValid() || !tr.TimeControl.IsValid() {
			t.Errorf("record %q has unknown enum value: %+v", tr.ID, tr)
		}
		if tr.MaxPlayers <= 0 || tr.PlayersJoined < 0 || tr.PlayersJoined > tr.MaxPlayers {
			t.Errorf("record %q has more players than seats: %d/%d", tr.ID, tr.PlayersJoined, tr.MaxPlayers)
		}
	}
}

func TestLoadFromSourceMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte(`[{"id":`), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromSource(context.Background(), storage.NewFileSource(path), discardLogger())
	if !errors.Is(err, models.ErrMalformedTournaments) {
		t.Errorf("err = %v, want ErrMalformedTournaments", err)
	}
}

func TestLoadFromSourceMissing(t *testing.T) {
	src := storage.NewFileSource(filepath.Join(t.TempDir(), "nope.json"))
	_, err := LoadFromSource(context.Background(), src, discardLogger())
	if !errors.Is(err, storage.ErrSourceNotFound) {
		t.Errorf("err = %v, want ErrSourceNotFound", err)
	}
}
