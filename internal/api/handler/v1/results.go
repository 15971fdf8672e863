package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/service"
)

type TallyService interface {
	RoundStandings(ctx context.Context, roundID uint, voteType domain.VoteType) ([]domain.RoundStanding, error)
	OverallLeaderboard(ctx context.Context, voteType domain.VoteType) ([]domain.LeaderboardEntry, error)
	BeerVoteTable(ctx context.Context) ([]domain.BeerVoteCount, error)
	ExportResults(ctx context.Context) (domain.ResultsExport, error)
}

type ResultsHandler struct {
	svc TallyService
}

func NewResultsHandler(svc TallyService) *ResultsHandler {
	return &ResultsHandler{
		svc: svc,
	}
}

// HandleRoundResults godoc
// @Summary      Get a round's standings
// @Description  Tallies one round for the requested category. Checked-in beers without votes appear with zero scores.
// @Tags         results
// @Produce      json
// @Param        roundID    path      int     true   "round id"
// @Param        vote_type  query     string  false  "best_beer (default) or best_presentation"
// @Success      200        {array}   domain.RoundStanding
// @Failure      400        {object}  response.Err
// @Failure      404        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /rounds/{roundID}/results [get]
func (h *ResultsHandler) HandleRoundResults(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}

	voteType, ok := parseVoteType(ctx)
	if !ok {
		return
	}

	standings, err := h.svc.RoundStandings(ctx.Request.Context(), roundID, voteType)
	if err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("round", "id", roundID))
			return
		}

		err = fmt.Errorf("HandleRoundResults -> h.svc.RoundStandings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, standings)
}

// HandleLeaderboard godoc
// @Summary      Get the cross-round leaderboard
// @Description  Ranks every checked-in beer across all rounds by its in-round percentage.
// @Tags         results
// @Produce      json
// @Param        vote_type  query     string  false  "best_beer (default) or best_presentation"
// @Success      200        {array}   domain.LeaderboardEntry
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /leaderboard [get]
func (h *ResultsHandler) HandleLeaderboard(ctx *gin.Context) {
	voteType, ok := parseVoteType(ctx)
	if !ok {
		return
	}

	entries, err := h.svc.OverallLeaderboard(ctx.Request.Context(), voteType)
	if err != nil {
		err = fmt.Errorf("HandleLeaderboard -> h.svc.OverallLeaderboard -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// HandleBeerVoteTable godoc
// @Summary      Get the live vote table
// @Description  Every catalog beer with its raw best-beer vote total across all rounds.
// @Tags         results
// @Produce      json
// @Success      200  {array}   domain.BeerVoteCount
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/beers/votes [get]
func (h *ResultsHandler) HandleBeerVoteTable(ctx *gin.Context) {
	table, err := h.svc.BeerVoteTable(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleBeerVoteTable -> h.svc.BeerVoteTable -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, table)
}

// HandleExportResults godoc
// @Summary      Export the full competition results
// @Description  Complete per-beer results for both categories across all rounds. Guarded by the X-API-Key header.
// @Tags         results
// @Produce      json
// @Success      200  {object}  domain.ResultsExport
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     APIKey
// @Router       /export/results [get]
func (h *ResultsHandler) HandleExportResults(ctx *gin.Context) {
	export, err := h.svc.ExportResults(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleExportResults -> h.svc.ExportResults -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, export)
}

func parseVoteType(ctx *gin.Context) (domain.VoteType, bool) {
	raw := ctx.DefaultQuery("vote_type", string(domain.VoteTypeBestBeer))

	voteType := domain.VoteType(raw)
	if !voteType.IsValid() {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid vote type %q", raw)))
		return "", false
	}

	return voteType, true
}
