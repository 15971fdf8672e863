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

type RoundService interface {
	CreateRound(ctx context.Context, name string) (domain.Round, error)
	SetActiveRound(ctx context.Context, id uint) error
	GetRounds(ctx context.Context) ([]domain.Round, error)
	GetActiveRound(ctx context.Context) (domain.Round, error)
}

type RoundHandler struct {
	svc RoundService
}

func NewRoundHandler(svc RoundService) *RoundHandler {
	return &RoundHandler{
		svc: svc,
	}
}

// HandleCreateRound godoc
// @Summary      Create a competition round
// @Description  New rounds start inactive; activate one explicitly to open it for voting.
// @Tags         rounds
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreateRoundRequest  true  "request body"
// @Success      201      {object}  domain.Round
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/rounds [post]
func (h *RoundHandler) HandleCreateRound(ctx *gin.Context) {
	var req request.CreateRoundRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	round, err := h.svc.CreateRound(ctx.Request.Context(), req.Name)
	if err != nil {
		err = fmt.Errorf("HandleCreateRound -> h.svc.CreateRound -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, round)
}

// HandleListRounds godoc
// @Summary      List all rounds
// @Tags         rounds
// @Produce      json
// @Success      200  {array}   domain.Round
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/rounds [get]
func (h *RoundHandler) HandleListRounds(ctx *gin.Context) {
	rounds, err := h.svc.GetRounds(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListRounds -> h.svc.GetRounds -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, rounds)
}

// HandleActivateRound godoc
// @Summary      Activate a round
// @Description  Makes the given round the single active one. An unknown round id changes nothing.
// @Tags         rounds
// @Produce      json
// @Param        roundID  path      int  true  "round id"
// @Success      200      {object}  domain.Round
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/rounds/{roundID}/activate [post]
func (h *RoundHandler) HandleActivateRound(ctx *gin.Context) {
	roundID, ok := parseRoundID(ctx)
	if !ok {
		return
	}

	if err := h.svc.SetActiveRound(ctx.Request.Context(), roundID); err != nil {
		if errors.Is(err, service.ErrRoundNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("round", "id", roundID))
			return
		}

		err = fmt.Errorf("HandleActivateRound -> h.svc.SetActiveRound -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	round, err := h.svc.GetActiveRound(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleActivateRound -> h.svc.GetActiveRound -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, round)
}

func parseRoundID(ctx *gin.Context) (uint, bool) {
	raw := ctx.Param("roundID")

	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid round id %q", raw)))
		return 0, false
	}

	return uint(id), true
}
