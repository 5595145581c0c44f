package profileUseCase

import (
	"context"
	"errors"
	"time"

	s3store "github.com/campusmatch/campusmatch/internal/datastore/s3"
	"github.com/campusmatch/campusmatch/internal/entity"
	"github.com/campusmatch/campusmatch/internal/logger"
	userRepo "github.com/campusmatch/campusmatch/internal/repository/user"
)

// photoRetryAttempts bounds the optimistic-version retry loop for slot
// mutations. Two concurrent writers to one profile is already rare; three
// losses in a row means something is systematically wrong.
const photoRetryAttempts = 3

var errVersionConflict = errors.New("photo state version conflict")

type IProfileUseCase interface {
	GetProfile(ctx context.Context, userID uint) (*entity.User, error)
	UpdateBasic(ctx context.Context, userID uint, req entity.UpdateBasicProfileRequest) (*entity.User, error)
	UpdatePrompts(ctx context.Context, userID uint, prompts []entity.Prompt) (*entity.User, error)
	PromptQuestions() []string
	Completion(ctx context.Context, userID uint) (*entity.CompletionResponse, error)

	// UploadPhoto stores the image and assigns it to the slot. The
	// storage put happens first; if the database write then fails the
	// stored object is deleted again so no orphan remains.
	UploadPhoto(ctx context.Context, userID uint, slot int, filename string, data []byte, contentType string) (*entity.PhotoSlotResponse, error)

	// DeletePhoto clears the slot, reassigning the main photo when
	// needed. The storage delete is best effort.
	DeletePhoto(ctx context.Context, userID uint, slot int) (*entity.PhotoSlotResponse, error)

	SetMainPhoto(ctx context.Context, userID uint, slot int) (*entity.PhotoSlotResponse, error)
}

type profileUseCase struct {
	userRepo userRepo.IUserRepo
	storage  s3store.ObjectStore
}

func New(users userRepo.IUserRepo, storage s3store.ObjectStore) IProfileUseCase {
	return &profileUseCase{
		userRepo: users,
		storage:  storage,
	}
}

func (p *profileUseCase) GetProfile(ctx context.Context, userID uint) (*entity.User, error) {
	return p.userRepo.GetUserByID(ctx, userID)
}

func (p *profileUseCase) UpdateBasic(ctx context.Context, userID uint, req entity.UpdateBasicProfileRequest) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil && *req.FirstName != "" {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		user.LastName = *req.LastName
	}
	if req.Bio != nil {
		user.Bio = *req.Bio
	}
	if req.College != nil && *req.College != "" {
		user.College = *req.College
	}
	if req.Major != nil && *req.Major != "" {
		user.Major = *req.Major
	}
	if req.GraduationYear != nil {
		user.GraduationYear = *req.GraduationYear
	}
	if req.Interests != nil {
		user.Interests = req.Interests
	}
	if req.DateOfBirth != nil {
		user.DateOfBirth = req.DateOfBirth
	}
	if req.Gender != nil && *req.Gender != "" {
		user.Gender = *req.Gender
	}
	if req.InterestedIn != nil {
		user.InterestedIn = req.InterestedIn
	}

	if err := p.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (p *profileUseCase) UpdatePrompts(ctx context.Context, userID uint, prompts []entity.Prompt) (*entity.User, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	ordered := make(entity.Prompts, len(prompts))
	for i, prompt := range prompts {
		ordered[i] = entity.Prompt{Question: prompt.Question, Answer: prompt.Answer, Order: i}
	}
	user.Prompts = ordered

	if err := p.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (p *profileUseCase) Completion(ctx context.Context, userID uint) (*entity.CompletionResponse, error) {
	user, err := p.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	score := Score(user)
	return &score, nil
}

func (p *profileUseCase) UploadPhoto(ctx context.Context, userID uint, slot int, filename string, data []byte, contentType string) (*entity.PhotoSlotResponse, error) {
	if slot < 1 || slot > entity.SlotCount {
		return nil, entity.ErrInvalidSlot
	}

	key := s3store.SlotKey(userID, slot, filename)
	url, err := p.storage.PutObject(ctx, key, data, contentType)
	if err != nil {
		return nil, errors.Join(entity.ErrStorageFailure, err)
	}

	uploadedAt := time.Now()
	var prev entity.PhotoSlot
	user, err := p.mutatePhotoState(ctx, userID, func(u *entity.User) error {
		var err error
		prev, err = u.SetSlot(slot, url, key, uploadedAt)
		return err
	})
	if err != nil {
		// db write failed, roll the upload back so no orphan object remains
		if delErr := p.storage.DeleteObject(ctx, key); delErr != nil {
			logger.Warn("failed to roll back photo upload", "key", key, "err", delErr)
		}
		return nil, err
	}

	// release the previous occupant of the slot, best effort
	if !prev.Empty() && prev.Key != "" && prev.Key != key {
		if delErr := p.storage.DeleteObject(ctx, prev.Key); delErr != nil {
			logger.Warn("failed to delete replaced photo", "key", prev.Key, "err", delErr)
		}
	}

	return slotResponse(user, slot), nil
}

func (p *profileUseCase) DeletePhoto(ctx context.Context, userID uint, slot int) (*entity.PhotoSlotResponse, error) {
	if slot < 1 || slot > entity.SlotCount {
		return nil, entity.ErrInvalidSlot
	}

	var removed entity.PhotoSlot
	user, err := p.mutatePhotoState(ctx, userID, func(u *entity.User) error {
		var err error
		removed, err = u.ClearSlot(slot)
		return err
	})
	if err != nil {
		return nil, err
	}

	// storage delete failures never block the database mutation
	if removed.Key != "" {
		if delErr := p.storage.DeleteObject(ctx, removed.Key); delErr != nil {
			logger.Warn("failed to delete photo object", "key", removed.Key, "err", delErr)
		}
	}

	return slotResponse(user, slot), nil
}

func (p *profileUseCase) SetMainPhoto(ctx context.Context, userID uint, slot int) (*entity.PhotoSlotResponse, error) {
	user, err := p.mutatePhotoState(ctx, userID, func(u *entity.User) error {
		return u.SetMain(slot)
	})
	if err != nil {
		return nil, err
	}
	return slotResponse(user, slot), nil
}

// mutatePhotoState applies a slot mutation under the single-writer-per-
// profile discipline: the whole slot array plus main slot is written in
// one statement guarded by the photo version, and a lost race reloads the
// profile and retries.
func (p *profileUseCase) mutatePhotoState(ctx context.Context, userID uint, mutate func(*entity.User) error) (*entity.User, error) {
	for attempt := 0; attempt < photoRetryAttempts; attempt++ {
		user, err := p.userRepo.GetUserByID(ctx, userID)
		if err != nil {
			return nil, err
		}

		if err := mutate(user); err != nil {
			return nil, err
		}

		ok, err := p.userRepo.UpdatePhotoState(ctx, userID, user.Photos, user.MainSlot, user.PhotoVersion)
		if err != nil {
			return nil, err
		}
		if ok {
			user.PhotoVersion++
			return user, nil
		}

		logger.Debug("photo state version conflict, retrying", "user_id", userID, "attempt", attempt+1)
	}
	return nil, errVersionConflict
}

func slotResponse(user *entity.User, slot int) *entity.PhotoSlotResponse {
	return &entity.PhotoSlotResponse{
		Slot:     slot,
		URL:      user.Photos[slot-1].URL,
		IsMain:   user.MainSlot == slot,
		MainSlot: user.MainSlot,
	}
}
