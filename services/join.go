package services

import (
	"fmt"

	"github.com/Dosada05/chess-tournaments/models"
)

const (
	ActionJoined = "Joined"
	ActionFull   = "Full"
	ActionJoin   = "Join tournament"
)

// JoinState хранит id турниров, к которым присоединился текущий зритель.
// Состояние локально для сессии: ничего не отправляется на сервер и не сохраняется.
type JoinState struct {
	ids map[string]struct{}
}

func NewJoinState() *JoinState {
	return &JoinState{ids: make(map[string]struct{})}
}

// Join adds id and reports whether it was newly added. Joining twice is a no-op.
func (s *JoinState) Join(id string) bool {
	if _, ok := s.ids[id]; ok {
		return false
	}
	s.ids[id] = struct{}{}
	return true
}

func (s *JoinState) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

func (s *JoinState) Len() int {
	return len(s.ids)
}

// IsFull uses the stored count, never the displayed one.
func IsFull(t models.Tournament) bool {
	return t.PlayersJoined >= t.MaxPlayers
}

func IsJoinable(t models.Tournament, joined bool) bool {
	return !joined && !IsFull(t)
}

// DisplayedCount adds the viewer's own join to the stored count, clamped to capacity.
func DisplayedCount(t models.Tournament, joined bool) int {
	count := t.PlayersJoined
	if joined {
		count++
	}
	return min(count, t.MaxPlayers)
}

// CapacityFraction is displayed/max clamped to [0, 1].
func CapacityFraction(t models.Tournament, joined bool) float64 {
	if t.MaxPlayers <= 0 {
		return 0
	}
	fraction := float64(DisplayedCount(t, joined)) / float64(t.MaxPlayers)
	return max(0, min(fraction, 1))
}

func ActionLabel(t models.Tournament, joined bool) string {
	switch {
	case joined:
		return ActionJoined
	case IsFull(t):
		return ActionFull
	default:
		return ActionJoin
	}
}

// JoinMessage - текст уведомления после присоединения.
func JoinMessage(name string) string {
	if name == "" {
		name = "Tournament"
	}
	return fmt.Sprintf("You joined \"%s\"!", name)
}
