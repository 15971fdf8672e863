package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/request"
	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
)

type SettingsService interface {
	GetSettings(ctx context.Context) (domain.CompetitionSettings, error)
	UpdateSettings(ctx context.Context, update domain.SettingsUpdate) (domain.CompetitionSettings, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetSettings godoc
// @Summary      Get the competition settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.CompetitionSettings
// @Failure      500  {object}  response.Err
// @Security     BearerToken
// @Router       /admin/settings [get]
func (h *SettingsHandler) HandleGetSettings(ctx *gin.Context) {
	settings, err := h.svc.GetSettings(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetSettings -> h.svc.GetSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, settings)
}

// HandleUpdateSettings godoc
// @Summary      Update the competition settings
// @Description  Partially updates the settings singleton. Omitted fields keep their value; shrinking the startbahn count leaves existing check-ins untouched.
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateSettingsRequest  true  "request body"
// @Success      200      {object}  domain.CompetitionSettings
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Security     BearerToken
// @Router       /admin/settings [patch]
func (h *SettingsHandler) HandleUpdateSettings(ctx *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	settings, err := h.svc.UpdateSettings(ctx.Request.Context(), domain.SettingsUpdate{
		VotingEnabled:  req.VotingEnabled,
		StartbahnCount: req.StartbahnCount,
	})
	if err != nil {
		err = fmt.Errorf("HandleUpdateSettings -> h.svc.UpdateSettings -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, settings)
}
