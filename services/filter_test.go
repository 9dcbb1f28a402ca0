package services

import (
	"slices"
	"testing"

	"github.com/Dosada05/chess-tournaments/models"
)

func sampleTournaments() []models.Tournament {
	return []models.Tournament{
		{ID: "1", Name: "Spring Blitz", TimeControl: models.TimeControlBlitz, StartTime: "2024-01-01T10:00:00Z", PlayersJoined: 5, MaxPlayers: 5, Status: models.StatusUpcoming},
		{ID: "2", Name: "Sunday Rapid Open", TimeControl: models.TimeControlRapid, StartTime: "2024-01-07T09:00:00Z", PlayersJoined: 10, MaxPlayers: 32, Status: models.StatusLive},
		{ID: "3", Name: "BLITZ Night", TimeControl: models.TimeControlBlitz, StartTime: "2024-01-05T21:00:00Z", PlayersJoined: 60, MaxPlayers: 64, Status: models.StatusLive},
		{ID: "4", Name: "Classical Championship", TimeControl: models.TimeControlClassical, StartTime: "2024-02-01T12:00:00Z", PlayersJoined: 0, MaxPlayers: 16, Status: models.StatusUpcoming},
		{ID: "5", Name: "Rapid & Blitz Combo", TimeControl: models.TimeControlRapid, StartTime: "2024-02-10T15:00:00Z", PlayersJoined: 7, MaxPlayers: 8, Status: models.StatusUpcoming},
	}
}

func ids(tournaments []models.Tournament) []string {
	out := make([]string, 0, len(tournaments))
	for _, t := range tournaments {
		out = append(out, t.ID)
	}
	return out
}

func TestFilterTournaments(t *testing.T) {
	tests := []struct {
		name     string
		criteria FilterCriteria
		want     []string
	}{
		{"no criteria", FilterCriteria{}, []string{"1", "2", "3", "4", "5"}},
		{"status live", NewFilterCriteria("live", "", ""), []string{"2", "3"}},
		{"status upcoming", NewFilterCriteria("upcoming", "", ""), []string{"1", "4", "5"}},
		{"time control blitz", NewFilterCriteria("", "Blitz", ""), []string{"1", "3"}},
		{"time control is exact", NewFilterCriteria("", "blitz", ""), []string{}},
		{"search lower", NewFilterCriteria("", "", "blitz"), []string{"1", "3", "5"}},
		{"search upper", NewFilterCriteria("", "", "BLITZ"), []string{"1", "3", "5"}},
		{"search trimmed", NewFilterCriteria("", "", "  rapid  "), []string{"2", "5"}},
		{"search blank is skipped", NewFilterCriteria("", "", "   "), []string{"1", "2", "3", "4", "5"}},
		{"search inner substring", NewFilterCriteria("", "", "ampion"), []string{"4"}},
		{"all combined", NewFilterCriteria("live", "Blitz", "night"), []string{"3"}},
		{"combined no match", NewFilterCriteria("upcoming", "Classical", "blitz"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(FilterTournaments(sampleTournaments(), tt.criteria))
			if !slices.Equal(got, tt.want) {
				t.Errorf("FilterTournaments = %v, want %v", got, tt.want)
			}
		})
	}
}

// Каждая запись результата удовлетворяет критериям, каждая подходящая запись входа
// попадает в результат ровно один раз и в исходном порядке.
func TestFilterTournamentsSoundAndComplete(t *testing.T) {
	input := sampleTournaments()
	statuses := []string{"", "upcoming", "live", "finished"}
	timeControls := []string{"", "Blitz", "Rapid", "Classical"}
	searches := []string{"", "blitz", "OPEN", " b", "zzz", "&"}

	for _, status := range statuses {
		for _, tc := range timeControls {
			for _, search := range searches {
				criteria := NewFilterCriteria(status, tc, search)
				got := FilterTournaments(input, criteria)

				var want []string
				for _, tr := range input {
					if criteria.Matches(tr) {
						want = append(want, tr.ID)
					}
				}
				if !slices.Equal(ids(got), want) && !(len(got) == 0 && len(want) == 0) {
					t.Errorf("criteria (%q,%q,%q): got %v, want %v", status, tc, search, ids(got), want)
				}
			}
		}
	}
}

func TestFilterTournamentsDoesNotModifyInput(t *testing.T) {
	input := sampleTournaments()
	before := slices.Clone(input)

	_ = FilterTournaments(input, NewFilterCriteria("live", "", "blitz"))

	if !slices.Equal(input, before) {
		t.Error("input slice was modified")
	}
}

func TestFilterTournamentsEmptyResultIsNotNil(t *testing.T) {
	got := FilterTournaments(sampleTournaments(), NewFilterCriteria("", "", "no such tournament"))
	if got == nil {
		t.Fatal("empty result should be a non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("len = %d", len(got))
	}
	if got := FilterTournaments(nil, FilterCriteria{}); got == nil || len(got) != 0 {
		t.Errorf("nil input: got %#v", got)
	}
}

func TestFilterCriteriaIsEmpty(t *testing.T) {
	if !NewFilterCriteria("", "", "  ").IsEmpty() {
		t.Error("blank criteria should be empty")
	}
	if NewFilterCriteria("live", "", "").IsEmpty() {
		t.Error("status criteria reported empty")
	}
}

func TestResultCountLabel(t *testing.T) {
	tests := map[int]string{
		0:  "0 tournaments",
		1:  "1 tournament",
		2:  "2 tournaments",
		11: "11 tournaments",
	}
	for n, want := range tests {
		if got := ResultCountLabel(n); got != want {
			t.Errorf("ResultCountLabel(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestNextOption(t *testing.T) {
	if got := NextOption(StatusOptions, 0); got != 1 {
		t.Errorf("NextOption(0) = %d", got)
	}
	if got := NextOption(StatusOptions, len(StatusOptions)-1); got != 0 {
		t.Errorf("NextOption(last) = %d, want wrap to 0", got)
	}
	if StatusOptions[0].Value != "" || TimeControlOptions[0].Value != "" {
		t.Error("first option must mean \"all\"")
	}
}
