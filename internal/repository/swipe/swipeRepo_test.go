package swipeRepo_test

import (
	"context"
	"testing"

	"github.com/campusmatch/campusmatch/internal/entity"
	swipeRepo "github.com/campusmatch/campusmatch/internal/repository/swipe"
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
	if err := database.AutoMigrate(&entity.Swipe{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return database
}

func TestRecordSwipe_UpsertOverwritesAction(t *testing.T) {
	ctx := context.Background()
	database := setupTestDB(t)
	repo := swipeRepo.New(database)

	require.NoError(t, repo.RecordSwipe(ctx, 1, 2, entity.ActionLike))
	require.NoError(t, repo.RecordSwipe(ctx, 1, 2, entity.ActionDislike))

	var count int64
	database.Model(&entity.Swipe{}).Count(&count)
	assert.Equal(t, int64(1), count)

	swipe, err := repo.GetSwipe(ctx, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, entity.ActionDislike, swipe.Action)
	assert.True(t, swipe.Active)
}

func TestGetSwipe_NotFound(t *testing.T) {
	repo := swipeRepo.New(setupTestDB(t))
	_, err := repo.GetSwipe(context.Background(), 1, 2)
	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestHasLiked_SuperlikeCounts(t *testing.T) {
	ctx := context.Background()
	repo := swipeRepo.New(setupTestDB(t))

	require.NoError(t, repo.RecordSwipe(ctx, 1, 2, entity.ActionSuperLike))
	require.NoError(t, repo.RecordSwipe(ctx, 1, 3, entity.ActionDislike))

	liked, err := repo.HasLiked(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, liked)

	liked, err = repo.HasLiked(ctx, 1, 3)
	require.NoError(t, err)
	assert.False(t, liked)

	// direction matters
	liked, err = repo.HasLiked(ctx, 2, 1)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestCheckMutualLike(t *testing.T) {
	ctx := context.Background()
	repo := swipeRepo.New(setupTestDB(t))

	require.NoError(t, repo.RecordSwipe(ctx, 1, 2, entity.ActionLike))

	mutual, err := repo.CheckMutualLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, mutual)

	require.NoError(t, repo.RecordSwipe(ctx, 2, 1, entity.ActionLike))

	mutual, err = repo.CheckMutualLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.True(t, mutual)

	// a later dislike retracts the like
	require.NoError(t, repo.RecordSwipe(ctx, 2, 1, entity.ActionDislike))
	mutual, err = repo.CheckMutualLike(ctx, 1, 2)
	require.NoError(t, err)
	assert.False(t, mutual)
}

func TestCountLikers(t *testing.T) {
	ctx := context.Background()
	repo := swipeRepo.New(setupTestDB(t))

	require.NoError(t, repo.RecordSwipe(ctx, 1, 9, entity.ActionLike))
	require.NoError(t, repo.RecordSwipe(ctx, 2, 9, entity.ActionSuperLike))
	require.NoError(t, repo.RecordSwipe(ctx, 3, 9, entity.ActionDislike))

	count, err := repo.CountLikers(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestListSwipedIDs(t *testing.T) {
	ctx := context.Background()
	repo := swipeRepo.New(setupTestDB(t))

	require.NoError(t, repo.RecordSwipe(ctx, 1, 2, entity.ActionLike))
	require.NoError(t, repo.RecordSwipe(ctx, 1, 3, entity.ActionDislike))
	require.NoError(t, repo.RecordSwipe(ctx, 2, 1, entity.ActionLike))

	ids, err := repo.ListSwipedIDs(ctx, 1)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{2, 3}, ids)
}
