package matchRepo

import (
	"context"
	"errors"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type IMatchRepo interface {
	// CreateMatch inserts the match row for the unordered pair. When the
	// row already exists (including a concurrent insert from the other
	// member of the pair) no new row is written and created is false;
	// callers treat that as success.
	CreateMatch(ctx context.Context, aID, bID uint) (match *entity.Match, created bool, err error)

	GetMatchByPair(ctx context.Context, aID, bID uint) (*entity.Match, error)
	GetMatchByID(ctx context.Context, id uint) (*entity.Match, error)
	ListMatches(ctx context.Context, userID uint) ([]entity.Match, error)

	// Unmatch retires the match in place. The row is never deleted so the
	// pair's unique index keeps exactly one row across its history.
	Unmatch(ctx context.Context, id uint) error

	TouchLastMessage(ctx context.Context, id uint, at time.Time) error
}

type MatchRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMatchRepo {
	return &MatchRepo{db: db}
}

func (r *MatchRepo) CreateMatch(ctx context.Context, aID, bID uint) (*entity.Match, bool, error) {
	u1, u2 := entity.NormalizePair(aID, bID)
	match := entity.Match{
		User1ID:   u1,
		User2ID:   u2,
		Status:    entity.MatchMatched,
		MatchedAt: time.Now(),
		Active:    true,
	}

	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user1_id"}, {Name: "user2_id"}},
			DoNothing: true,
		}).
		Create(&match)
	if res.Error != nil {
		return nil, false, res.Error
	}

	if res.RowsAffected == 0 {
		// lost the race or already matched, fetch the existing row
		existing, err := r.GetMatchByPair(ctx, aID, bID)
		if err != nil {
			return nil, false, err
		}
		return existing, false, nil
	}
	return &match, true, nil
}

func (r *MatchRepo) GetMatchByPair(ctx context.Context, aID, bID uint) (*entity.Match, error) {
	u1, u2 := entity.NormalizePair(aID, bID)
	var match entity.Match
	err := r.db.WithContext(ctx).
		Where("user1_id = ? AND user2_id = ?", u1, u2).
		First(&match).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) GetMatchByID(ctx context.Context, id uint) (*entity.Match, error) {
	var match entity.Match
	err := r.db.WithContext(ctx).First(&match, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &match, nil
}

func (r *MatchRepo) ListMatches(ctx context.Context, userID uint) ([]entity.Match, error) {
	var matches []entity.Match
	err := r.db.WithContext(ctx).
		Where("(user1_id = ? OR user2_id = ?) AND status = ? AND active = ?",
			userID, userID, entity.MatchMatched, true).
		Order("matched_at DESC").
		Find(&matches).Error
	return matches, err
}

func (r *MatchRepo) Unmatch(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": entity.MatchUnmatched,
			"active": false,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MatchRepo) TouchLastMessage(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.Match{}).
		Where("id = ?", id).
		Update("last_message_at", at).Error
}
