package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// TournamentStatus представляет статус турнира в том виде, в каком он приходит из источника данных.
type TournamentStatus string

const (
	StatusUpcoming TournamentStatus = "upcoming"
	StatusLive     TournamentStatus = "live"
)

// TimeControl - контроль времени партии.
type TimeControl string

const (
	TimeControlBlitz     TimeControl = "Blitz"
	TimeControlRapid     TimeControl = "Rapid"
	TimeControlClassical TimeControl = "Classical"
)

// ErrMalformedTournaments возвращается, когда данные турниров не удалось декодировать.
var ErrMalformedTournaments = errors.New("malformed tournament data")

// Tournament is a read-only display record. StartTime is kept as the
// ISO 8601 string from the source so the listing endpoint echoes it verbatim.
type Tournament struct {
	ID            string           `json:"id" db:"id"`
	Name          string           `json:"name" db:"name"`
	TimeControl   TimeControl      `json:"timeControl" db:"time_control"`
	StartTime     string           `json:"startTime" db:"start_time"`
	PlayersJoined int              `json:"playersJoined" db:"players_joined"`
	MaxPlayers    int              `json:"maxPlayers" db:"max_players"`
	Status        TournamentStatus `json:"status" db:"status"`
}

func (s TournamentStatus) IsValid() bool {
	switch s {
	case StatusUpcoming, StatusLive:
		return true
	}
	return false
}

func (tc TimeControl) IsValid() bool {
	switch tc {
	case TimeControlBlitz, TimeControlRapid, TimeControlClassical:
		return true
	}
	return false
}

// DecodeTournaments reads a single JSON array of tournaments from r.
// Enum values are not checked: the source is trusted to be well-formed.
func DecodeTournaments(r io.Reader) ([]Tournament, error) {
	dec := json.NewDecoder(r)

	var tournaments []Tournament
	if err := dec.Decode(&tournaments); err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError

		switch {
		case errors.As(err, &syntaxError):
			return nil, fmt.Errorf("%w: badly-formed JSON at character %d", ErrMalformedTournaments, syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return nil, fmt.Errorf("%w: badly-formed JSON", ErrMalformedTournaments)
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return nil, fmt.Errorf("%w: incorrect JSON type for field %q", ErrMalformedTournaments, unmarshalTypeError.Field)
			}
			return nil, fmt.Errorf("%w: incorrect JSON type at character %d", ErrMalformedTournaments, unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return nil, fmt.Errorf("%w: empty document", ErrMalformedTournaments)
		default:
			return nil, err
		}
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: document must contain a single JSON array", ErrMalformedTournaments)
	}

	// null в источнике трактуем как пустой список
	if tournaments == nil {
		tournaments = make([]Tournament, 0)
	}
	return tournaments, nil
}
