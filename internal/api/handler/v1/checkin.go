package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/request"
	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/service"
)

type CheckinService interface {
	RegisterBeer(ctx context.Context, beerID string, startbahn int, roundID uint, reinheitsgebot bool) (domain.BeerRegistration, error)
	UpdateRegistration(ctx context.Context, beerID string, update domain.RegistrationUpdate) (domain.BeerRegistration, error)
	UnregisterBeer(ctx context.Context, beerID string) error
	AvailableStartbahns(ctx context.Context, roundID uint) ([]int, error)
	RegisteredBeers(ctx context.Context) ([]domain.BeerRegistration, error)
	UpsertStartbahnConfig(ctx context.Context, startbahn int, name string) (domain.StartbahnConfig, error)
	StartbahnConfigs(ctx context.Context) ([]domain.StartbahnConfig, error)
	DeleteStartbahnConfig(ctx context.Context, startbahn int) error
}

type CheckinHandler struct {
	svc CheckinService
}

func NewCheckinHandler(svc CheckinService) *CheckinHandler {
	return &CheckinHandler{
		svc: svc,
	}
}

// HandleCheckinBeer godoc
// @Summary      Check a beer in
// @Description  Registers a beer into a round on a startbahn. A lane holds one beer per round and a beer checks in once.
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Param        request  body      request.CheckinBeerRequest  true  "request body"
// @Success      201      {object}  domain.BeerRegistration
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/beers/checkin [post]
func (h *CheckinHandler) HandleCheckinBeer(ctx *gin.Context) {
	var req request.CheckinBeerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.RegisterBeer(ctx.Request.Context(), req.BeerID, req.Startbahn, req.RoundID, req.Reinheitsgebot)
	if err != nil {
		renderCheckinErr(ctx, "HandleCheckinBeer", req.BeerID, req.RoundID, err)
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleUpdateRegistration godoc
// @Summary      Update a beer's check-in
// @Description  Partially updates a registration. Omitted fields keep their value.
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Param        beerID   path      string                             true  "beer id"
// @Param        request  body      request.UpdateRegistrationRequest  true  "request body"
// @Success      200      {object}  domain.BeerRegistration
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/beers/{beerID}/registration [patch]
func (h *CheckinHandler) HandleUpdateRegistration(ctx *gin.Context) {
	beerID := ctx.Param("beerID")

	var req request.UpdateRegistrationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	registration, err := h.svc.UpdateRegistration(ctx.Request.Context(), beerID, domain.RegistrationUpdate{
		Startbahn:      req.Startbahn,
		RoundID:        req.RoundID,
		Reinheitsgebot: req.Reinheitsgebot,
	})
	if err != nil {
		renderCheckinErr(ctx, "HandleUpdateRegistration", beerID, 0, err)
		return
	}

	ctx.JSON(http.StatusOK, registration)
}

// HandleUnregisterBeer godoc
// @Summary      Undo a beer's check-in
// @Description  Removes the registration. Existing votes for the beer stay in the ledger but stop counting in tallies.
// @Tags         checkin
// @Produce      json
// @Param        beerID  path  string  true  "beer id"
// @Success      204
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/beers/{beerID}/registration [delete]
func (h *CheckinHandler) HandleUnregisterBeer(ctx *gin.Context) {
	beerID := ctx.Param("beerID")

	if err := h.svc.UnregisterBeer(ctx.Request.Context(), beerID); err != nil {
		if errors.Is(err, service.ErrRegistrationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("registration", "beer_id", beerID))
			return
		}

		err = fmt.Errorf("HandleUnregisterBeer -> h.svc.UnregisterBeer -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleListRegistrations godoc
// @Summary      List all check-ins
// @Tags         checkin
// @Produce      json
// @Success      200  {array}   domain.BeerRegistration
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/beers/registrations [get]
func (h *CheckinHandler) HandleListRegistrations(ctx *gin.Context) {
	registrations, err := h.svc.RegisteredBeers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListRegistrations -> h.svc.RegisteredBeers -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleAvailableStartbahns godoc
// @Summary      List free startbahns for a round
// @Tags         checkin
// @Produce      json
// @Param        roundID  path      int  true  "round id"
// @Success      200      {array}   int
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/rounds/{roundID}/startbahns [get]
func (h *CheckinHandler) HandleAvailableStartbahns(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}

	lanes, err := h.svc.AvailableStartbahns(ctx.Request.Context(), roundID)
	if err != nil {
		err = fmt.Errorf("HandleAvailableStartbahns -> h.svc.AvailableStartbahns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, lanes)
}

// HandleUpsertStartbahnConfig godoc
// @Summary      Name a startbahn
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Param        request  body      request.StartbahnConfigRequest  true  "request body"
// @Success      200      {object}  domain.StartbahnConfig
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/startbahns [put]
func (h *CheckinHandler) HandleUpsertStartbahnConfig(ctx *gin.Context) {
	var req request.StartbahnConfigRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	conf, err := h.svc.UpsertStartbahnConfig(ctx.Request.Context(), req.Startbahn, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyStartbahnName) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleUpsertStartbahnConfig -> h.svc.UpsertStartbahnConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, conf)
}

// HandleListStartbahnConfigs godoc
// @Summary      List named startbahns
// @Tags         checkin
// @Produce      json
// @Success      200  {array}   domain.StartbahnConfig
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/startbahns [get]
func (h *CheckinHandler) HandleListStartbahnConfigs(ctx *gin.Context) {
	configs, err := h.svc.StartbahnConfigs(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListStartbahnConfigs -> h.svc.StartbahnConfigs -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, configs)
}

// HandleDeleteStartbahnConfig godoc
// @Summary      Remove a startbahn name
// @Tags         checkin
// @Param        startbahn  path  int  true  "startbahn number"
// @Success      204
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/startbahns/{startbahn} [delete]
func (h *CheckinHandler) HandleDeleteStartbahnConfig(ctx *gin.Context) {
	raw := ctx.Param("startbahn")

	startbahn, err := strconv.Atoi(raw)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid startbahn %q", raw)))
		return
	}

	if err := h.svc.DeleteStartbahnConfig(ctx.Request.Context(), startbahn); err != nil {
		err = fmt.Errorf("HandleDeleteStartbahnConfig -> h.svc.DeleteStartbahnConfig -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Status(http.StatusNoContent)
}

func renderCheckinErr(ctx *gin.Context, op, beerID string, roundID uint, err error) {
	switch {
	case errors.Is(err, service.ErrLaneOutOfRange):
		response.RenderErr(ctx, response.ErrBadRequest(err))
	case errors.Is(err, service.ErrRoundNotFound):
		response.RenderErr(ctx, response.ErrNotFound("round", "id", roundID))
	case errors.Is(err, service.ErrRegistrationNotFound):
		response.RenderErr(ctx, response.ErrNotFound("registration", "beer_id", beerID))
	case errors.Is(err, service.ErrBeerAlreadyRegistered), errors.Is(err, service.ErrLaneTaken):
		response.RenderErr(ctx, response.ErrConflict(err))
	default:
		err = fmt.Errorf("%s -> %w", op, err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
	}
}
