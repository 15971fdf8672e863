package v1

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbcon/festvote/internal/api/handler/v1/response"
	"github.com/hbcon/festvote/internal/domain"
	"github.com/hbcon/festvote/internal/service"
)

type stubVotingService struct {
	votes    domain.CurrentVotes
	inserted bool
	err      error

	gotVoterID  string
	gotBeerID   string
	gotVoteType domain.VoteType
}

func (s *stubVotingService) ToggleVote(_ context.Context, voterID, beerID string, voteType domain.VoteType) (domain.CurrentVotes, bool, error) {
	s.gotVoterID = voterID
	s.gotBeerID = beerID
	s.gotVoteType = voteType

	return s.votes, s.inserted, s.err
}

func (s *stubVotingService) GetCurrentVotes(_ context.Context, voterID string) (domain.CurrentVotes, error) {
	s.gotVoterID = voterID
	return s.votes, s.err
}

type stubVoterService struct {
	voter domain.Voter
	err   error
}

func (s *stubVoterService) GenerateVoters(context.Context, int) ([]domain.Voter, error) {
	return nil, nil
}

func (s *stubVoterService) AddVoter(context.Context) (domain.Voter, error) {
	return s.voter, s.err
}

func (s *stubVoterService) ListVoters(context.Context) ([]domain.Voter, error) {
	return nil, nil
}

func (s *stubVoterService) ValidateVoter(context.Context, string) (domain.Voter, error) {
	return s.voter, s.err
}

func newVotingRouter(votes VotingService, voters VoterService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	handler := NewVotingHandler(votes, voters)
	router.GET("/register/:voterID", handler.HandleRegisterVoter)
	router.POST("/votes/toggle", handler.HandleToggleVote)
	router.GET("/votes/current", handler.HandleGetCurrentVotes)

	return router
}

func voterCookie(id string) *http.Cookie {
	return &http.Cookie{Name: sessionCookieName, Value: id}
}

func TestVotingHandler_HandleRegisterVoter(t *testing.T) {
	t.Run("sets the session cookie for a valid voter", func(t *testing.T) {
		router := newVotingRouter(&stubVotingService{}, &stubVoterService{
			voter: domain.Voter{ID: "voter-1", Active: true},
		})

		req := httptest.NewRequest(http.MethodGet, "/register/voter-1", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		cookies := resp.Result().Cookies()
		require.Len(t, cookies, 1)
		assert.Equal(t, sessionCookieName, cookies[0].Name)
		assert.Equal(t, "voter-1", cookies[0].Value)
		assert.True(t, cookies[0].HttpOnly)
		assert.Equal(t, sessionCookieMaxAge, cookies[0].MaxAge)
	})

	t.Run("404s an invalid voter code", func(t *testing.T) {
		router := newVotingRouter(&stubVotingService{}, &stubVoterService{err: service.ErrVoterInvalid})

		req := httptest.NewRequest(http.MethodGet, "/register/bogus", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Empty(t, resp.Result().Cookies())
	})
}

func TestVotingHandler_HandleToggleVote(t *testing.T) {
	t.Run("requires a voter session", func(t *testing.T) {
		router := newVotingRouter(&stubVotingService{}, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a"}`))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("defaults the vote type to best beer", func(t *testing.T) {
		svc := &stubVotingService{
			votes:    domain.CurrentVotes{BestBeer: []string{"beer-a"}, Presentation: []string{}},
			inserted: true,
		}
		router := newVotingRouter(svc, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a"}`))
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, "voter-1", svc.gotVoterID)
		assert.Equal(t, "beer-a", svc.gotBeerID)
		assert.Equal(t, domain.VoteTypeBestBeer, svc.gotVoteType)

		var body response.ToggleVoteResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Equal(t, []string{"beer-a"}, body.BestBeerVotes)
	})

	t.Run("rejects an unknown vote type", func(t *testing.T) {
		router := newVotingRouter(&stubVotingService{}, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a","vote_type":"best_label"}`))
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})

	t.Run("reports gate failures inline instead of an error status", func(t *testing.T) {
		svc := &stubVotingService{
			votes: domain.CurrentVotes{BestBeer: []string{}, Presentation: []string{}},
			err:   service.ErrVotingClosed,
		}
		router := newVotingRouter(svc, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a"}`))
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body response.ToggleVoteResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.NotEmpty(t, body.Message)
	})

	t.Run("keeps the current sets on a taken presentation vote", func(t *testing.T) {
		svc := &stubVotingService{
			votes: domain.CurrentVotes{BestBeer: []string{}, Presentation: []string{"beer-x"}},
			err:   service.ErrPresentationTaken,
		}
		router := newVotingRouter(svc, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a","vote_type":"best_presentation"}`))
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body response.ToggleVoteResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.False(t, body.Success)
		assert.Equal(t, []string{"beer-x"}, body.PresentationVotes)
	})

	t.Run("500s on an unexpected failure", func(t *testing.T) {
		svc := &stubVotingService{err: assert.AnError}
		router := newVotingRouter(svc, &stubVoterService{})

		req := httptest.NewRequest(http.MethodPost, "/votes/toggle", strings.NewReader(`{"beer_id":"beer-a"}`))
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusInternalServerError, resp.Code)
	})
}

func TestVotingHandler_HandleGetCurrentVotes(t *testing.T) {
	t.Run("returns empty sets without a session", func(t *testing.T) {
		router := newVotingRouter(&stubVotingService{}, &stubVoterService{})

		req := httptest.NewRequest(http.MethodGet, "/votes/current", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body response.ToggleVoteResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.True(t, body.Success)
		assert.Empty(t, body.BestBeerVotes)
		assert.Empty(t, body.PresentationVotes)
	})

	t.Run("returns the voter's sets", func(t *testing.T) {
		svc := &stubVotingService{
			votes: domain.CurrentVotes{BestBeer: []string{"beer-a", "beer-b"}, Presentation: []string{"beer-c"}},
		}
		router := newVotingRouter(svc, &stubVoterService{})

		req := httptest.NewRequest(http.MethodGet, "/votes/current", nil)
		req.AddCookie(voterCookie("voter-1"))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		require.Equal(t, http.StatusOK, resp.Code)

		var body response.ToggleVoteResponse
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
		assert.Equal(t, "voter-1", svc.gotVoterID)
		assert.Equal(t, []string{"beer-a", "beer-b"}, body.BestBeerVotes)
		assert.Equal(t, []string{"beer-c"}, body.PresentationVotes)
	})
}
