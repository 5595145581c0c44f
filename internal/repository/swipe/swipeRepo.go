package swipeRepo

import (
	"context"
	"errors"

	"github.com/campusmatch/campusmatch/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ISwipeRepo interface {
	// RecordSwipe upserts the (swiper, swiped) decision. An existing row
	// is overwritten with the new action and reactivated; the composite
	// PK guarantees a single row per ordered pair.
	RecordSwipe(ctx context.Context, swiperID, swipedID uint, action entity.Action) error

	GetSwipe(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error)

	// HasLiked reports whether an active like or superlike swiper -> swiped exists.
	HasLiked(ctx context.Context, swiperID, swipedID uint) (bool, error)

	// CheckMutualLike reports whether both directions hold an active like.
	CheckMutualLike(ctx context.Context, aID, bID uint) (bool, error)

	// CountLikers counts users with an active like toward the given user.
	CountLikers(ctx context.Context, userID uint) (int64, error)

	// ListSwipedIDs returns ids the user has already swiped on, for
	// discovery exclusion.
	ListSwipedIDs(ctx context.Context, userID uint) ([]uint, error)
}

type SwipeRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) ISwipeRepo {
	return &SwipeRepo{db: db}
}

func (r *SwipeRepo) RecordSwipe(ctx context.Context, swiperID, swipedID uint, action entity.Action) error {
	swipe := entity.Swipe{
		SwiperID: swiperID,
		SwipedID: swipedID,
		Action:   action,
		Active:   true,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "swiper_id"}, {Name: "swiped_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"action", "active", "updated_at"}),
		}).
		Create(&swipe).Error
}

func (r *SwipeRepo) GetSwipe(ctx context.Context, swiperID, swipedID uint) (*entity.Swipe, error) {
	var swipe entity.Swipe
	err := r.db.WithContext(ctx).
		Where("swiper_id = ? AND swiped_id = ?", swiperID, swipedID).
		First(&swipe).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &swipe, nil
}

func (r *SwipeRepo) HasLiked(ctx context.Context, swiperID, swipedID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiper_id = ? AND swiped_id = ? AND active = ? AND action IN ?",
			swiperID, swipedID, true, []entity.Action{entity.ActionLike, entity.ActionSuperLike}).
		Count(&count).Error
	return count > 0, err
}

func (r *SwipeRepo) CheckMutualLike(ctx context.Context, aID, bID uint) (bool, error) {
	ab, err := r.HasLiked(ctx, aID, bID)
	if err != nil || !ab {
		return false, err
	}
	return r.HasLiked(ctx, bID, aID)
}

func (r *SwipeRepo) CountLikers(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiped_id = ? AND active = ? AND action IN ?",
			userID, true, []entity.Action{entity.ActionLike, entity.ActionSuperLike}).
		Count(&count).Error
	return count, err
}

func (r *SwipeRepo) ListSwipedIDs(ctx context.Context, userID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&entity.Swipe{}).
		Where("swiper_id = ?", userID).
		Pluck("swiped_id", &ids).Error
	return ids, err
}
