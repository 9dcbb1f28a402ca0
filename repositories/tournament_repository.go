package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/storage"
)

// TournamentRepository - хранилище турниров только для чтения.
type TournamentRepository interface {
	List(ctx context.Context) ([]models.Tournament, error)
}

type staticTournamentRepository struct {
	tournaments []models.Tournament
}

// NewStaticTournamentRepository хранит снимок, загруженный при старте.
// Порядок записей сохраняется; сами записи никогда не изменяются.
func NewStaticTournamentRepository(tournaments []models.Tournament) TournamentRepository {
	snapshot := make([]models.Tournament, len(tournaments))
	copy(snapshot, tournaments)
	return &staticTournamentRepository{tournaments: snapshot}
}

func (r *staticTournamentRepository) List(ctx context.Context) ([]models.Tournament, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	// отдаем копию, чтобы вызывающий не мог испортить общий снимок
	out := make([]models.Tournament, len(r.tournaments))
	copy(out, r.tournaments)
	return out, nil
}

// LoadFromSource reads and decodes the whole source. All or nothing.
func LoadFromSource(ctx context.Context, src storage.Source, logger *slog.Logger) ([]models.Tournament, error) {
	rc, err := src.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rc.Close(); closeErr != nil {
			logger.Warn("failed to close tournament source", slog.String("source", src.Name()), slog.Any("error", closeErr))
		}
	}()

	tournaments, err := models.DecodeTournaments(rc)
	if err != nil {
		return nil, fmt.Errorf("decode tournaments from %s: %w", src.Name(), err)
	}

	logger.Info("tournaments loaded",
		slog.String("source", src.Name()),
		slog.Int("count", len(tournaments)),
	)
	return tournaments, nil
}
