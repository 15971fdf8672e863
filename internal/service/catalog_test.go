package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hbcon/festvote/internal/config"
)

const submissionsJSON = `[
	{
		"submission_id": "sub-1",
		"user_id": "u1",
		"beername": "Altbier",
		"description": "Copper and malty",
		"brewer": "Anna",
		"style": "Altbier",
		"alcohol": 4.8,
		"original_gravity": 12.5,
		"ibu": 30,
		"recipie_link": "https://example.com/alt"
	},
	{
		"submission_id": "sub-2",
		"user_id": "u2",
		"beername": "Bock",
		"brewer": "Ben",
		"style": "Bock",
		"alcohol": 6.5
	}
]`

func TestCatalogService_Beers(t *testing.T) {
	t.Run("fetches and maps submissions", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "secret-token", r.Header.Get("X-API-TOKEN"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(submissionsJSON))
		}))
		defer server.Close()

		svc := NewCatalogService(config.CatalogConfig{URL: server.URL, APIToken: "secret-token"}, server.Client())

		beers, err := svc.Beers(context.Background())
		require.NoError(t, err)
		require.Len(t, beers, 2)

		assert.Equal(t, "sub-1", beers[0].BeerID)
		assert.Equal(t, "u1", beers[0].UserID)
		assert.Equal(t, "Altbier", beers[0].Name)
		assert.Equal(t, "Anna", beers[0].Brewer)
		assert.Equal(t, 4.8, beers[0].Alcohol)
		assert.Equal(t, "https://example.com/alt", beers[0].RecipeLink)

		assert.Equal(t, "sub-2", beers[1].BeerID)
		assert.Equal(t, "", beers[1].Description)
	})

	t.Run("serves from cache within the TTL", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(submissionsJSON))
		}))
		defer server.Close()

		svc := NewCatalogService(config.CatalogConfig{URL: server.URL, CacheTTLMinutes: 15}, server.Client())

		_, err := svc.Beers(context.Background())
		require.NoError(t, err)
		_, err = svc.Beers(context.Background())
		require.NoError(t, err)

		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("refetches after the TTL expires", func(t *testing.T) {
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			_, _ = w.Write([]byte(submissionsJSON))
		}))
		defer server.Close()

		svc := NewCatalogService(config.CatalogConfig{URL: server.URL}, server.Client())

		_, err := svc.Beers(context.Background())
		require.NoError(t, err)

		svc.lastFetch = time.Now().Add(-time.Hour)

		_, err = svc.Beers(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("falls back to stale data when the upstream fails", func(t *testing.T) {
		var fail atomic.Bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if fail.Load() {
				w.WriteHeader(http.StatusBadGateway)
				return
			}
			_, _ = w.Write([]byte(submissionsJSON))
		}))
		defer server.Close()

		svc := NewCatalogService(config.CatalogConfig{URL: server.URL}, server.Client())

		beers, err := svc.Beers(context.Background())
		require.NoError(t, err)
		require.Len(t, beers, 2)

		fail.Store(true)
		svc.lastFetch = time.Now().Add(-time.Hour)

		beers, err = svc.Beers(context.Background())
		require.NoError(t, err)
		assert.Len(t, beers, 2)
	})

	t.Run("fails when the upstream fails with an empty cache", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		svc := NewCatalogService(config.CatalogConfig{URL: server.URL}, server.Client())

		_, err := svc.Beers(context.Background())
		assert.Error(t, err)
	})
}
