package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hbcon/festvote/internal/api/handler/v1/request"
	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/service"
)

const (
	sessionCookieName   = "voter_session"
	sessionCookieMaxAge = 7 * 24 * 60 * 60
)

type VotingService interface {
	ToggleVote(ctx context.Context, voterID, beerID string, voteType domain.VoteType) (domain.CurrentVotes, bool, error)
	GetCurrentVotes(ctx context.Context, voterID string) (domain.CurrentVotes, error)
}

type VoterService interface {
	GenerateVoters(ctx context.Context, count int) ([]domain.Voter, error)
	AddVoter(ctx context.Context) (domain.Voter, error)
	ListVoters(ctx context.Context) ([]domain.Voter, error)
	ValidateVoter(ctx context.Context, id string) (domain.Voter, error)
}

type VotingHandler struct {
	svc    VotingService
	voters VoterService
}

func NewVotingHandler(svc VotingService, voters VoterService) *VotingHandler {
	return &VotingHandler{
		svc:    svc,
		voters: voters,
	}
}

// HandleRegisterVoter godoc
// @Summary      Redeem a voter code
// @Description  Validates the voter id from a handed-out QR code and binds it to the browser via cookie.
// @Tags         voting
// @Produce      json
// @Param        voterID  path      string  true  "voter id"
// @Success      200      {object}  domain.Voter
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /register/{voterID} [get]
func (h *VotingHandler) HandleRegisterVoter(ctx *gin.Context) {
	voterID := ctx.Param("voterID")

	voter, err := h.voters.ValidateVoter(ctx.Request.Context(), voterID)
	if err != nil {
		if errors.Is(err, service.ErrVoterInvalid) {
			response.RenderErr(ctx, response.ErrNotFound("voter", "id", voterID))
			return
		}

		err = fmt.Errorf("HandleRegisterVoter -> h.voters.ValidateVoter -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sessionCookieName, voter.ID, sessionCookieMaxAge, "/", "", false, true)
	ctx.JSON(http.StatusOK, voter)
}

// HandleToggleVote godoc
// @Summary      Toggle a vote
// @Description  Adds the vote if absent, removes it if present, and returns the voter's full vote state for the active round. Gate failures come back as success=false rather than an error status.
// @Tags         voting
// @Accept       json
// @Produce      json
// @Param        request  body      request.ToggleVoteRequest  true  "request body"
// @Success      200      {object}  response.ToggleVoteResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /votes/toggle [post]
func (h *VotingHandler) HandleToggleVote(ctx *gin.Context) {
	voterID, err := ctx.Cookie(sessionCookieName)
	if err != nil || voterID == "" {
		response.RenderErr(ctx, response.ErrUnauthorized("no voter session"))
		return
	}

	var req request.ToggleVoteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	votes, inserted, err := h.svc.ToggleVote(ctx.Request.Context(), voterID, req.BeerID, req.EffectiveVoteType())
	if err != nil {
		if isVoteGateErr(err) {
			ctx.JSON(http.StatusOK, response.ToggleVoteResponse{
				Success:           false,
				Message:           err.Error(),
				BestBeerVotes:     votes.BestBeer,
				PresentationVotes: votes.Presentation,
			})
			return
		}

		err = fmt.Errorf("HandleToggleVote -> h.svc.ToggleVote -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	message := "vote removed"
	if inserted {
		message = "vote recorded"
	}

	ctx.JSON(http.StatusOK, response.ToggleVoteResponse{
		Success:           true,
		Message:           message,
		BestBeerVotes:     votes.BestBeer,
		PresentationVotes: votes.Presentation,
	})
}

// HandleGetCurrentVotes godoc
// @Summary      Get the voter's current votes
// @Description  Returns the voter's vote state for the active round. Browsers without a voter session get empty sets, not an error, so the ballot can render read-only.
// @Tags         voting
// @Produce      json
// @Success      200  {object}  response.ToggleVoteResponse
// @Failure      500  {object}  response.Err
// @Router       /votes/current [get]
func (h *VotingHandler) HandleGetCurrentVotes(ctx *gin.Context) {
	voterID, err := ctx.Cookie(sessionCookieName)
	if err != nil || voterID == "" {
		ctx.JSON(http.StatusOK, response.ToggleVoteResponse{
			Success:           true,
			BestBeerVotes:     []string{},
			PresentationVotes: []string{},
		})
		return
	}

	votes, err := h.svc.GetCurrentVotes(ctx.Request.Context(), voterID)
	if err != nil {
		err = fmt.Errorf("HandleGetCurrentVotes -> h.svc.GetCurrentVotes -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.ToggleVoteResponse{
		Success:           true,
		BestBeerVotes:     votes.BestBeer,
		PresentationVotes: votes.Presentation,
	})
}

// isVoteGateErr reports whether the toggle failed one of the gate checks
// that the ballot UI surfaces inline instead of as an HTTP error.
func isVoteGateErr(err error) bool {
	return errors.Is(err, service.ErrVotingClosed) ||
		errors.Is(err, service.ErrVoterInvalid) ||
		errors.Is(err, service.ErrNoActiveRound) ||
		errors.Is(err, service.ErrBeerNotInRound) ||
		errors.Is(err, service.ErrPresentationTaken)
}
