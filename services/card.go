package services

import (
	"fmt"
	"time"

	"github.com/Dosada05/chess-tournaments/models"
)

// Время старта всегда показываем в UTC и с фиксированным форматом (en-US),
// чтобы результат не зависел от машины, на которой идет рендеринг.
const startTimeLayout = "Mon, Jan 2, 03:04 PM"

// Card - производные поля для отображения одного турнира.
type Card struct {
	ID          string
	Name        string
	Status      models.TournamentStatus
	TimeControl models.TimeControl
	StartsAt    string
	Displayed   int
	MaxPlayers  int
	Players     string
	Fraction    float64
	Joined      bool
	Joinable    bool
	Action      string
}

func BuildCard(t models.Tournament, joined bool) Card {
	displayed := DisplayedCount(t, joined)
	return Card{
		ID:          t.ID,
		Name:        t.Name,
		Status:      t.Status,
		TimeControl: t.TimeControl,
		StartsAt:    FormatStartTime(t.StartTime),
		Displayed:   displayed,
		MaxPlayers:  t.MaxPlayers,
		Players:     fmt.Sprintf("%d / %d", displayed, t.MaxPlayers),
		Fraction:    CapacityFraction(t, joined),
		Joined:      joined,
		Joinable:    IsJoinable(t, joined),
		Action:      ActionLabel(t, joined),
	}
}

// BuildCards derives cards for tournaments in order using the viewer's joins.
func BuildCards(tournaments []models.Tournament, joins *JoinState) []Card {
	cards := make([]Card, 0, len(tournaments))
	for _, t := range tournaments {
		cards = append(cards, BuildCard(t, joins.Has(t.ID)))
	}
	return cards
}

// FormatStartTime renders an ISO 8601 timestamp as "Mon, Jan 1, 10:00 AM" in UTC.
// Unparseable values are returned unchanged.
func FormatStartTime(iso string) string {
	ts, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return iso
	}
	return ts.UTC().Format(startTimeLayout)
}
