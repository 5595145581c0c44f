package messageRepo

import (
	"context"
	"errors"
	"time"

	"github.com/campusmatch/campusmatch/internal/entity"
	"gorm.io/gorm"
)

type IMessageRepo interface {
	Create(ctx context.Context, msg *entity.Message) (*entity.Message, error)
	GetByID(ctx context.Context, id uint) (*entity.Message, error)

	// ListByMatch returns the non-deleted messages of a match, oldest first.
	ListByMatch(ctx context.Context, matchID uint, limit, offset int) ([]entity.Message, error)

	MarkRead(ctx context.Context, id uint, at time.Time) error

	// SoftDelete hides the message without removing it from the log.
	SoftDelete(ctx context.Context, id uint, at time.Time) error
}

type MessageRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IMessageRepo {
	return &MessageRepo{db: db}
}

func (r *MessageRepo) Create(ctx context.Context, msg *entity.Message) (*entity.Message, error) {
	if msg.Type == "" {
		msg.Type = entity.MessageText
	}
	err := r.db.WithContext(ctx).Create(msg).Error
	return msg, err
}

func (r *MessageRepo) GetByID(ctx context.Context, id uint) (*entity.Message, error) {
	var msg entity.Message
	err := r.db.WithContext(ctx).First(&msg, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &msg, nil
}

func (r *MessageRepo) ListByMatch(ctx context.Context, matchID uint, limit, offset int) ([]entity.Message, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	var msgs []entity.Message
	err := r.db.WithContext(ctx).
		Where("match_id = ? AND deleted = ?", matchID, false).
		Order("created_at ASC, id ASC").
		Limit(limit).
		Offset(offset).
		Find(&msgs).Error
	return msgs, err
}

func (r *MessageRepo) MarkRead(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{"read": true, "read_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}

func (r *MessageRepo) SoftDelete(ctx context.Context, id uint, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&entity.Message{}).
		Where("id = ?", id).
		Updates(map[string]any{"deleted": true, "deleted_at": at})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return entity.ErrNotFound
	}
	return nil
}
