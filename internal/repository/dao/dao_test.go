package dao

import (
	"context"
	"fmt"
	"testing"

	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB spins up a throwaway Postgres container. The unique index and
// transaction behavior under test here cannot be exercised against an
// in-memory fake.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)
	require.NoError(t, pool.Client.Ping())

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=test",
			"POSTGRES_PASSWORD=test",
			"POSTGRES_DB=festvote_test",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = pool.Purge(resource)
	})

	dsn := fmt.Sprintf("host=localhost port=%s user=test password=test dbname=festvote_test sslmode=disable",
		resource.GetPort("5432/tcp"))

	var db *gorm.DB
	err = pool.Retry(func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		if openErr != nil {
			return openErr
		}

		sqlDB, openErr := db.DB()
		if openErr != nil {
			return openErr
		}

		return sqlDB.Ping()
	})
	require.NoError(t, err)
	require.NoError(t, InitTables(db))

	return db
}

func TestVoteDAO_Toggle(t *testing.T) {
	db := openTestDB(t)
	dao := NewVoteDAO(db)
	ctx := context.Background()

	t.Run("inserts then removes on repeat", func(t *testing.T) {
		inserted, err := dao.Toggle(ctx, "v1", "beer-a", 1, "best_beer", false)
		require.NoError(t, err)
		assert.True(t, inserted)

		votes, err := dao.FindByVoterAndRound(ctx, "v1", 1)
		require.NoError(t, err)
		require.Len(t, votes, 1)
		assert.NotEmpty(t, votes[0].ID)

		inserted, err = dao.Toggle(ctx, "v1", "beer-a", 1, "best_beer", false)
		require.NoError(t, err)
		assert.False(t, inserted)

		votes, err = dao.FindByVoterAndRound(ctx, "v1", 1)
		require.NoError(t, err)
		assert.Empty(t, votes)
	})

	t.Run("enforces one exclusive vote per voter and round", func(t *testing.T) {
		inserted, err := dao.Toggle(ctx, "v2", "beer-a", 1, "best_presentation", true)
		require.NoError(t, err)
		assert.True(t, inserted)

		_, err = dao.Toggle(ctx, "v2", "beer-b", 1, "best_presentation", true)
		assert.ErrorIs(t, err, ErrPresentationTaken)

		// The same voter can still vote exclusively in another round.
		inserted, err = dao.Toggle(ctx, "v2", "beer-b", 2, "best_presentation", true)
		require.NoError(t, err)
		assert.True(t, inserted)
	})
}

func TestRoundDAO_Activate(t *testing.T) {
	db := openTestDB(t)
	dao := NewRoundDAO(db)
	ctx := context.Background()

	first, err := dao.Insert(ctx, Round{Name: "Round 1"})
	require.NoError(t, err)
	second, err := dao.Insert(ctx, Round{Name: "Round 2"})
	require.NoError(t, err)

	require.NoError(t, dao.Activate(ctx, first.ID))

	active, err := dao.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.ID, active.ID)

	require.NoError(t, dao.Activate(ctx, second.ID))

	rounds, err := dao.FindAll(ctx)
	require.NoError(t, err)
	for _, round := range rounds {
		assert.Equal(t, round.ID == second.ID, round.Active)
	}

	err = dao.Activate(ctx, 9999)
	assert.ErrorIs(t, err, ErrRoundNotFound)

	// The failed activation left the previous one in place.
	active, err = dao.FindActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, second.ID, active.ID)
}

func TestRegistrationDAO_UniqueConstraints(t *testing.T) {
	db := openTestDB(t)
	dao := NewRegistrationDAO(db)
	ctx := context.Background()

	_, err := dao.Insert(ctx, BeerRegistration{BeerID: "beer-a", Startbahn: 1, RoundID: 1})
	require.NoError(t, err)

	_, err = dao.Insert(ctx, BeerRegistration{BeerID: "beer-a", Startbahn: 2, RoundID: 1})
	assert.ErrorIs(t, err, ErrBeerAlreadyRegistered)

	_, err = dao.Insert(ctx, BeerRegistration{BeerID: "beer-b", Startbahn: 1, RoundID: 1})
	assert.ErrorIs(t, err, ErrLaneTaken)

	// The same lane in another round is fine.
	_, err = dao.Insert(ctx, BeerRegistration{BeerID: "beer-b", Startbahn: 1, RoundID: 2})
	assert.NoError(t, err)
}

func TestSettingsDAO_Get(t *testing.T) {
	db := openTestDB(t)
	dao := NewSettingsDAO(db)
	ctx := context.Background()

	settings, err := dao.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint(settingsID), settings.ID)
	assert.Equal(t, defaultStartbahnCount, settings.StartbahnCount)
	assert.False(t, settings.VotingEnabled)

	updated, err := dao.Update(ctx, map[string]interface{}{"voting_enabled": true})
	require.NoError(t, err)
	assert.True(t, updated.VotingEnabled)

	again, err := dao.Get(ctx)
	require.NoError(t, err)
	assert.True(t, again.VotingEnabled)
}
