package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/chess-tournaments/models"
	"github.com/Dosada05/chess-tournaments/repositories"
	"github.com/Dosada05/chess-tournaments/storage"
)

type TournamentService interface {
	// ListTournaments возвращает полный список без фильтрации и пагинации.
	ListTournaments(ctx context.Context) ([]models.Tournament, error)
	Count(ctx context.Context) (int, error)
}

type tournamentService struct {
	tournamentRepo repositories.TournamentRepository
	logger         *slog.Logger
}

func NewTournamentService(tournamentRepo repositories.TournamentRepository, logger *slog.Logger) TournamentService {
	return &tournamentService{
		tournamentRepo: tournamentRepo,
		logger:         logger,
	}
}

func (s *tournamentService) ListTournaments(ctx context.Context) ([]models.Tournament, error) {
	tournaments, err := s.tournamentRepo.List(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list tournaments", slog.Any("error", err))
		return nil, classifyLoadError(err)
	}
	return tournaments, nil
}

func (s *tournamentService) Count(ctx context.Context) (int, error) {
	tournaments, err := s.ListTournaments(ctx)
	if err != nil {
		return 0, err
	}
	return len(tournaments), nil
}

// classifyLoadError приводит ошибки хранилища и источников к ошибкам сервиса.
func classifyLoadError(err error) error {
	switch {
	case errors.Is(err, models.ErrMalformedTournaments):
		return fmt.Errorf("%w: %v", ErrMalformedData, err)
	case errors.Is(err, storage.ErrSourceNotFound),
		errors.Is(err, storage.ErrSourceUnavailable),
		errors.Is(err, repositories.ErrTournamentTableMissing):
		return fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	default:
		return err
	}
}
