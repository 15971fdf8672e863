package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/service"
)

type BeerCatalog interface {
	Beers(ctx context.Context) ([]domain.Beer, error)
}

type BeersHandler struct {
	rounds  RoundService
	checkin CheckinService
	catalog BeerCatalog
}

func NewBeersHandler(rounds RoundService, checkin CheckinService, catalog BeerCatalog) *BeersHandler {
	return &BeersHandler{
		rounds:  rounds,
		checkin: checkin,
		catalog: catalog,
	}
}

// HandleGetActiveRoundBeers godoc
// @Summary      List the beers competing in the active round
// @Description  Joins the active round's check-ins with the external submission catalog, ordered by startbahn. Beers missing from the catalog are skipped.
// @Tags         voting
// @Produce      json
// @Success      200  {object}  response.ActiveRoundBeersResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /beers [get]
func (h *BeersHandler) HandleGetActiveRoundBeers(ctx *gin.Context) {
	round, err := h.rounds.GetActiveRound(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveRound) {
			response.RenderErr(ctx, response.ErrNotFound("active round", "active", true))
			return
		}

		err = fmt.Errorf("HandleGetActiveRoundBeers -> h.rounds.GetActiveRound -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	registrations, err := h.checkin.RegisteredBeers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetActiveRoundBeers -> h.checkin.RegisteredBeers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	catalog, err := h.catalog.Beers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetActiveRoundBeers -> h.catalog.Beers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	byID := make(map[string]domain.Beer, len(catalog))
	for _, beer := range catalog {
		byID[beer.BeerID] = beer
	}

	beers := make([]response.RoundBeer, 0)
	for _, reg := range registrations {
		if reg.RoundID != round.ID {
			continue
		}

		beer, ok := byID[reg.BeerID]
		if !ok {
			continue
		}

		beers = append(beers, response.RoundBeer{
			Beer:           beer,
			Startbahn:      reg.Startbahn,
			Reinheitsgebot: reg.Reinheitsgebot,
		})
	}

	sort.Slice(beers, func(i, j int) bool {
		return beers[i].Startbahn < beers[j].Startbahn
	})

	ctx.JSON(http.StatusOK, response.ActiveRoundBeersResponse{
		Round: round,
		Beers: beers,
	})
}
