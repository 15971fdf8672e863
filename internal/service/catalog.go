package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/hbcon/festvote/internal/config"
	"github.com/hbcon/festvote/internal/domain"
)

// beerSubmission is the wire format of the festival submission API.
type beerSubmission struct {
	SubmissionID    string  `json:"submission_id"`
	UserID          string  `json:"user_id"`
	BeerName        string  `json:"beername"`
	Description     string  `json:"description"`
	Brewer          string  `json:"brewer"`
	Style           string  `json:"style"`
	Alcohol         float64 `json:"alcohol"`
	OriginalGravity float64 `json:"original_gravity"`
	IBU             float64 `json:"ibu"`
	RecipeLink      string  `json:"recipie_link"`
}

// CatalogService is a read-through cache over the external submission API.
// Reads within the TTL are served from memory; an upstream failure falls
// back to the last successful fetch, however stale.
type CatalogService struct {
	client *http.Client
	conf   config.CatalogConfig
	ttl    time.Duration

	mu        sync.Mutex
	cached    []domain.Beer
	lastFetch time.Time
}

func NewCatalogService(conf config.CatalogConfig, client *http.Client) *CatalogService {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	ttl := time.Duration(conf.CacheTTLMinutes) * time.Minute
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}

	return &CatalogService{
		client: client,
		conf:   conf,
		ttl:    ttl,
	}
}

func (s *CatalogService) Beers(ctx context.Context) ([]domain.Beer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil && time.Since(s.lastFetch) < s.ttl {
		return s.cached, nil
	}

	beers, err := s.fetch(ctx)
	if err != nil {
		if s.cached != nil {
			zap.L().Warn("catalog fetch failed, serving stale data", zap.Error(err))
			return s.cached, nil
		}

		return nil, fmt.Errorf("s.fetch -> %w", err)
	}

	s.cached = beers
	s.lastFetch = time.Now()

	return beers, nil
}

func (s *CatalogService) fetch(ctx context.Context) ([]domain.Beer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.conf.URL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-API-TOKEN", s.conf.APIToken)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}

	var submissions []beerSubmission
	if err = json.NewDecoder(resp.Body).Decode(&submissions); err != nil {
		return nil, err
	}

	beers := make([]domain.Beer, len(submissions))
	for i, submission := range submissions {
		beers[i] = domain.Beer{
			BeerID:          submission.SubmissionID,
			UserID:          submission.UserID,
			Name:            submission.BeerName,
			Description:     submission.Description,
			Brewer:          submission.Brewer,
			Style:           submission.Style,
			Alcohol:         submission.Alcohol,
			OriginalGravity: submission.OriginalGravity,
			IBU:             submission.IBU,
			RecipeLink:      submission.RecipeLink,
		}
	}

	return beers, nil
}
