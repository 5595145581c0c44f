package matchRepo_test

import (
	"context"
	"testing"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	matchRepo "github.com/campusmatch/campusmatch/internal/repository/match"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&entity.Match{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestCreateMatch_NormalizesPair(t *testing.T) {
	ctx := context.Background()
	repo := matchRepo.New(setupTestDB(t))

	match, created, err := repo.CreateMatch(ctx, 7, 3)
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, uint(3), match.User1ID)
	assert.Equal(t, uint(7), match.User2ID)
	assert.Equal(t, entity.MatchMatched, match.Status)
}

func TestCreateMatch_DuplicateIsSuccess(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	repo := matchRepo.New(database)

	first, created, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	require.True(t, created)

	// the same pair in either order lands on the existing row
	second, created, err := repo.CreateMatch(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	database.Model(&entity.Match{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestGetMatchByPair_EitherOrder(t *testing.T) {
	ctx := context.Background()
	repo := matchRepo.New(setupTestDB(t))

	created, _, err := repo.CreateMatch(ctx, 5, 9)
	require.NoError(t, err)

	match, err := repo.GetMatchByPair(ctx, 9, 5)
	require.NoError(t, err)
	assert.Equal(t, created.ID, match.ID)

	_, err = repo.GetMatchByPair(ctx, 5, 6)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestListMatches_ExcludesUnmatched(t *testing.T) {
	ctx := context.Background()
	repo := matchRepo.New(setupTestDB(t))

	kept, _, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	retired, _, err := repo.CreateMatch(ctx, 1, 3)
	require.NoError(t, err)

	require.NoError(t, repo.Unmatch(ctx, retired.ID))

	matches, err := repo.ListMatches(ctx, 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, kept.ID, matches[0].ID)
}

func TestUnmatch_RetiresInPlace(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	repo := matchRepo.New(database)

	match, _, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	require.NoError(t, repo.Unmatch(ctx, match.ID))

	// the row survives, only its state changes
	got, err := repo.GetMatchByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.MatchUnmatched, got.Status)
	assert.False(t, got.Active)

	// and the pair's unique row still blocks a fresh insert
	again, created, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, match.ID, again.ID)
}

func TestUnmatch_NotFound(t *testing.T) {
	repo := matchRepo.New(setupTestDB(t))
	assert.ErrorIs(t, repo.Unmatch(context.Background(), 42), entity.ErrNotFound)
}

func TestTouchLastMessage(t *testing.T) {
	ctx := context.Background()
	repo := matchRepo.New(setupTestDB(t))

	match, _, err := repo.CreateMatch(ctx, 1, 2)
	require.NoError(t, err)

	at := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, repo.TouchLastMessage(ctx, match.ID, at))

	got, err := repo.GetMatchByID(ctx, match.ID)
	require.NoError(t, err)
	require.NotNil(t, got.LastMessageAt)
	assert.WithinDuration(t, at, *got.LastMessageAt, time.Second)
}
