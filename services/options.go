package services

import "github.com/Dosada05/chess-tournaments/models"

// FilterOption - пункт выпадающего списка. Пустое Value означает "все".
type FilterOption struct {
	Value string
	Label string
}

var StatusOptions = []FilterOption{
	{Value: "", Label: "All statuses"},
	{Value: string(models.StatusUpcoming), Label: "Upcoming"},
	{Value: string(models.StatusLive), Label: "Live"},
}

var TimeControlOptions = []FilterOption{
	{Value: "", Label: "All time controls"},
	{Value: string(models.TimeControlBlitz), Label: "Blitz"},
	{Value: string(models.TimeControlRapid), Label: "Rapid"},
	{Value: string(models.TimeControlClassical), Label: "Classical"},
}

// NextOption returns the index after current, wrapping around.
func NextOption(options []FilterOption, current int) int {
	if len(options) == 0 {
		return 0
	}
	return (current + 1) % len(options)
}
