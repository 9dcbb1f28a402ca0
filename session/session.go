// Package session holds the state of one viewer: the loaded tournament
// cache, the current filter selection, local joins and the join notice.
// A Session is driven from a single goroutine (the UI event loop).
package session

import (
	"context"
	"log/slog"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/services"
)

type State int

const (
	StateLoading State = iota
	StateError
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateError:
		return "error"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// Loader fetches the full tournament list.
type Loader interface {
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
}

type Session struct {
	loader   Loader
	notifier *services.Notifier
	logger   *slog.Logger

	state       State
	err         error
	tournaments []models.Tournament

	search      string
	status      int // индекс в services.StatusOptions
	timeControl int // индекс в services.TimeControlOptions
	joins       *services.JoinState
}

// New creates a session in the loading state. Call Load (or BeginLoad and
// FinishLoad) to populate it.
func New(loader Loader, notifier *services.Notifier, logger *slog.Logger) *Session {
	return &Session{
		loader:   loader,
		notifier: notifier,
		logger:   logger,
		state:    StateLoading,
		joins:    services.NewJoinState(),
	}
}

func (s *Session) State() State { return s.state }

// Err is the last load error; nil unless State is StateError.
func (s *Session) Err() error { return s.err }

// ErrorMessage is what the viewer sees on load failure.
func (s *Session) ErrorMessage() string {
	if s.err == nil {
		return ""
	}
	if msg := s.err.Error(); msg != "" {
		return msg
	}
	return "Something went wrong"
}

// BeginLoad switches to the loading state. The load itself is run by the
// caller, which must report the outcome through FinishLoad.
func (s *Session) BeginLoad() {
	s.state = StateLoading
	s.err = nil
}

func (s *Session) FinishLoad(tournaments []models.Tournament, err error) {
	if err != nil {
		s.logger.Warn("tournament load failed", slog.Any("error", err))
		s.state = StateError
		s.err = err
		return
	}
	s.tournaments = tournaments
	s.state = StateReady
	s.err = nil
	s.logger.Debug("tournaments loaded", slog.Int("count", len(tournaments)))
}

// Load runs one synchronous load through the session's loader.
func (s *Session) Load(ctx context.Context) error {
	s.BeginLoad()
	tournaments, err := s.loader.ListTournaments(ctx)
	s.FinishLoad(tournaments, err)
	return err
}

// CanRetry reports whether a manual retry is offered.
func (s *Session) CanRetry() bool {
	return s.state == StateError
}

// Retry re-issues the load after a failure. Outside the error state it does nothing.
func (s *Session) Retry(ctx context.Context) error {
	if !s.CanRetry() {
		return nil
	}
	return s.Load(ctx)
}

func (s *Session) Loader() Loader { return s.loader }

func (s *Session) Criteria() services.FilterCriteria {
	return services.NewFilterCriteria(
		services.StatusOptions[s.status].Value,
		services.TimeControlOptions[s.timeControl].Value,
		s.search,
	)
}

func (s *Session) Search() string { return s.search }

func (s *Session) SetSearch(search string) { s.search = search }

// SetStatus selects a status option by value; unknown values select "all".
func (s *Session) SetStatus(value string) {
	s.status = optionIndex(services.StatusOptions, value)
}

func (s *Session) SetTimeControl(value string) {
	s.timeControl = optionIndex(services.TimeControlOptions, value)
}

func (s *Session) CycleStatus() {
	s.status = services.NextOption(services.StatusOptions, s.status)
}

func (s *Session) CycleTimeControl() {
	s.timeControl = services.NextOption(services.TimeControlOptions, s.timeControl)
}

func (s *Session) StatusLabel() string {
	return services.StatusOptions[s.status].Label
}

func (s *Session) TimeControlLabel() string {
	return services.TimeControlOptions[s.timeControl].Label
}

// Visible is the filtered tournament list in source order.
func (s *Session) Visible() []models.Tournament {
	return services.FilterTournaments(s.tournaments, s.Criteria())
}

func (s *Session) Cards() []services.Card {
	return services.BuildCards(s.Visible(), s.joins)
}

func (s *Session) CountLabel() string {
	return services.ResultCountLabel(len(s.Visible()))
}

func (s *Session) Joined(id string) bool {
	return s.joins.Has(id)
}

// Join marks id as joined by this viewer and shows the join notice.
// It returns false, with no notice, when the tournament is not joinable.
// Nothing is sent to the server.
func (s *Session) Join(id string) bool {
	t, ok := s.find(id)
	if ok && !services.IsJoinable(t, s.joins.Has(id)) {
		return false
	}
	if !s.joins.Join(id) {
		return false
	}

	s.notifier.Show(services.JoinMessage(t.Name))
	s.logger.Debug("joined tournament", slog.String("id", id))
	return true
}

// Notice returns the current join notice or "".
func (s *Session) Notice() string {
	return s.notifier.Current()
}

// Close stops the pending notice timer.
func (s *Session) Close() {
	s.notifier.Stop()
}

func (s *Session) find(id string) (models.Tournament, bool) {
	for _, t := range s.tournaments {
		if t.ID == id {
			return t, true
		}
	}
	return models.Tournament{}, false
}

func optionIndex(options []services.FilterOption, value string) int {
	for i, opt := range options {
		if opt.Value == value {
			return i
		}
	}
	return 0
}
