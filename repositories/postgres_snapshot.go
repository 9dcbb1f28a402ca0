package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/lib/pq"
)

var ErrTournamentTableMissing = errors.New("tournaments table does not exist")

const selectTournamentSnapshot = `
	SELECT id, name, time_control, start_time, players_joined, max_players, status
	FROM tournaments
	ORDER BY position, id`

// LoadFromPostgres читает таблицу tournaments один раз при старте.
// Дальше сервис работает только со снимком в памяти.
func LoadFromPostgres(ctx context.Context, db *sql.DB) ([]models.Tournament, error) {
	rows, err := db.QueryContext(ctx, selectTournamentSnapshot)
	if err != nil {
		return nil, handleSnapshotError(err)
	}
	defer rows.Close()

	tournaments := make([]models.Tournament, 0)
	for rows.Next() {
		var (
			t         models.Tournament
			startTime time.Time
		)
		if scanErr := rows.Scan(
			&t.ID, &t.Name, &t.TimeControl, &startTime, &t.PlayersJoined, &t.MaxPlayers, &t.Status,
		); scanErr != nil {
			return nil, fmt.Errorf("failed to scan tournament: %w", scanErr)
		}
		t.StartTime = startTime.UTC().Format(time.RFC3339)
		tournaments = append(tournaments, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error during tournament rows iteration: %w", err)
	}
	return tournaments, nil
}

func handleSnapshotError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "42P01" { // undefined_table
		return ErrTournamentTableMissing
	}
	return fmt.Errorf("failed to query tournaments: %w", err)
}
