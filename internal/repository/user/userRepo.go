package userRepo

import (
	"context"
	"errors"

	"github.com/campusmatch/campusmatch/internal/entity"
	"gorm.io/gorm"
)

type IUserRepo interface {
	CreateUser(ctx context.Context, user *entity.User) (*entity.User, error)
	GetUserByID(ctx context.Context, id uint) (*entity.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
	GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error)

	// UpdateProfile persists the scalar profile fields and prompts.
	UpdateProfile(ctx context.Context, user *entity.User) error

	// UpdatePhotoState writes the whole slot array plus main slot in one
	// statement, guarded by the optimistic photo version. Returns false
	// without error when the version check lost a concurrent writer.
	UpdatePhotoState(ctx context.Context, userID uint, photos entity.PhotoSlots, mainSlot, expectedVersion int) (bool, error)

	// ListDiscoverProfiles returns active candidate profiles excluding
	// the user and the given ids.
	ListDiscoverProfiles(ctx context.Context, userID uint, excludeIDs []uint, limit int) ([]entity.User, error)
}

type UserRepo struct {
	db *gorm.DB
}

func New(db *gorm.DB) IUserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) CreateUser(ctx context.Context, user *entity.User) (*entity.User, error) {
	result := r.db.WithContext(ctx).Create(user)
	return user, result.Error
}

func (r *UserRepo) GetUserByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) GetUserByGoogleID(ctx context.Context, googleID string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("google_id = ?", googleID).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepo) UpdateProfile(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).
		Model(user).
		Select("first_name", "last_name", "bio", "college", "major", "graduation_year",
			"interests", "date_of_birth", "gender", "interested_in", "prompts").
		Updates(user).Error
}

func (r *UserRepo) UpdatePhotoState(ctx context.Context, userID uint, photos entity.PhotoSlots, mainSlot, expectedVersion int) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("id = ? AND photo_version = ?", userID, expectedVersion).
		Updates(map[string]any{
			"photos":        photos,
			"main_slot":     mainSlot,
			"photo_version": expectedVersion + 1,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *UserRepo) ListDiscoverProfiles(ctx context.Context, userID uint, excludeIDs []uint, limit int) ([]entity.User, error) {
	var profiles []entity.User
	exclude := append([]uint{userID}, excludeIDs...)
	err := r.db.WithContext(ctx).
		Where("id NOT IN ? AND active = ?", exclude, true).
		Limit(limit).
		Find(&profiles).Error
	return profiles, err
}
