package handlers

import (
	"log/slog"
	"net/http"

	"github.com/Dosada05/chess-tournaments/services"
)

type TournamentHandler struct {
	tournamentService services.TournamentService
	logger            *slog.Logger
}

func NewTournamentHandler(ts services.TournamentService, logger *slog.Logger) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		logger:            logger,
	}
}

// ListHandler обрабатывает GET /api/tournaments
//
//	@Summary		List tournaments
//	@Description	Returns every tournament record in source order. No filtering, no pagination.
//	@Tags			tournaments
//	@Produce		json
//	@Success		200	{array}		models.Tournament
//	@Failure		500	{object}	map[string]string
//	@Failure		503	{object}	map[string]string
//	@Router			/api/tournaments [get]
func (h *TournamentHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	tournaments, err := h.tournamentService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	// Массив без обертки, даже если он пустой
	if err := writeJSON(w, http.StatusOK, tournaments, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

// HealthHandler обрабатывает GET /healthz
//
//	@Summary	Health check
//	@Tags		system
//	@Produce	json
//	@Success	200	{object}	map[string]interface{}
//	@Failure	503	{object}	map[string]string
//	@Router		/healthz [get]
func (h *TournamentHandler) HealthHandler(w http.ResponseWriter, r *http.Request) {
	count, err := h.tournamentService.Count(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, h.logger, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "ok", "tournaments": count}, nil); err != nil {
		serverErrorResponse(w, r, h.logger, err)
	}
}

func (h *TournamentHandler) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	notFoundResponse(w, r, h.logger)
}

func (h *TournamentHandler) MethodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	methodNotAllowedResponse(w, r, h.logger)
}
