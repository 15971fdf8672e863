package v1

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/request"
	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/service"
)

type VotersHandler struct {
	svc VoterService
}

func NewVotersHandler(svc VoterService) *VotersHandler {
	return &VotersHandler{
		svc: svc,
	}
}

// HandleGenerateVoters godoc
// @Summary      Generate a batch of voter codes
// @Description  Mints up to 1000 anonymous voter ids in one call, for printing as QR codes.
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        request  body      request.GenerateVotersRequest  true  "request body"
// @Success      201      {object}  response.GeneratedVotersResponse
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/voters/generate [post]
func (h *VotersHandler) HandleGenerateVoters(ctx *gin.Context) {
	var req request.GenerateVotersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	voters, err := h.svc.GenerateVoters(ctx.Request.Context(), req.Count)
	if err != nil {
		if errors.Is(err, service.ErrInvalidVoterCount) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("HandleGenerateVoters -> h.svc.GenerateVoters -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, response.GeneratedVotersResponse{
		Count:  len(voters),
		Voters: voters,
	})
}

// HandleAddVoter godoc
// @Summary      Add a single voter code
// @Tags         voters
// @Produce      json
// @Success      201  {object}  domain.Voter
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/voters [post]
func (h *VotersHandler) HandleAddVoter(ctx *gin.Context) {
	voter, err := h.svc.AddVoter(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleAddVoter -> h.svc.AddVoter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, voter)
}

// HandleListVoters godoc
// @Summary      List all voter codes
// @Tags         voters
// @Produce      json
// @Success      200  {object}  response.VoterListResponse
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/voters [get]
func (h *VotersHandler) HandleListVoters(ctx *gin.Context) {
	voters, err := h.svc.ListVoters(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleListVoters -> h.svc.ListVoters -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.VoterListResponse{
		Count:  len(voters),
		Voters: voters,
	})
}
