package services

import (
	"fmt"
	"strings"

	"github.com/Dosada05/chess-tournaments/models"
	"golang.org/x/text/cases"
)

// FilterCriteria - текущий выбор фильтров. nil или пустая строка означают "не фильтровать".
type FilterCriteria struct {
	Status      *models.TournamentStatus
	TimeControl *models.TimeControl
	Search      string
}

// NewFilterCriteria builds criteria from raw select/input values where ""
// stands for "all".
func NewFilterCriteria(status, timeControl, search string) FilterCriteria {
	var criteria FilterCriteria
	if status != "" {
		s := models.TournamentStatus(status)
		criteria.Status = &s
	}
	if timeControl != "" {
		tc := models.TimeControl(timeControl)
		criteria.TimeControl = &tc
	}
	criteria.Search = search
	return criteria
}

func (c FilterCriteria) IsEmpty() bool {
	return c.Status == nil && c.TimeControl == nil && strings.TrimSpace(c.Search) == ""
}

// Matches reports whether t passes every condition that is set.
func (c FilterCriteria) Matches(t models.Tournament) bool {
	return c.matches(t, foldSearch(c.Search))
}

func (c FilterCriteria) matches(t models.Tournament, foldedSearch string) bool {
	if c.Status != nil && t.Status != *c.Status {
		return false
	}
	if c.TimeControl != nil && t.TimeControl != *c.TimeControl {
		return false
	}
	if foldedSearch != "" && !strings.Contains(cases.Fold().String(t.Name), foldedSearch) {
		return false
	}
	return true
}

// FilterTournaments returns the tournaments matching criteria in their
// original order. The input slice is not modified.
func FilterTournaments(tournaments []models.Tournament, criteria FilterCriteria) []models.Tournament {
	search := foldSearch(criteria.Search)

	filtered := make([]models.Tournament, 0, len(tournaments))
	for _, t := range tournaments {
		if criteria.matches(t, search) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func foldSearch(search string) string {
	trimmed := strings.TrimSpace(search)
	if trimmed == "" {
		return ""
	}
	return cases.Fold().String(trimmed)
}

// ResultCountLabel: "1 tournament", "0 tournaments", "5 tournaments".
func ResultCountLabel(n int) string {
	if n == 1 {
		return "1 tournament"
	}
	return fmt.Sprintf("%d tournaments", n)
}

const EmptyResultMessage = "No tournaments match your filters."
