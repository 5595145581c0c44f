package matchUseCase

import (
	"context"
	"errors"
	"time"

	redisclient "github.com/campusmatch/campusmatch/internal/datastore/redis"
	"github.com/campusmatch/campusmatch/internal/entity"
	"github.com/campusmatch/campusmatch/internal/logger"
	matchRepo "github.com/campusmatch/campusmatch/internal/repository/match"
	swipeRepo "github.com/campusmatch/campusmatch/internal/repository/swipe"
	userRepo "github.com/campusmatch/campusmatch/internal/repository/user"
)

// DailyLikeLimit caps likes and superlikes per user per day.
const DailyLikeLimit = 100

type IMatchUseCase interface {
	// Swipe records the decision and, on a mutual like, resolves the
	// match. Returns the outcome and the match when one exists.
	Swipe(ctx context.Context, userID, targetID uint, action entity.Action) (*entity.SwipeResponse, error)

	// Resolve creates the match for a pair iff reciprocal likes exist.
	// Idempotent: an existing match is returned unchanged.
	Resolve(ctx context.Context, aID, bID uint) (*entity.Match, error)

	// MatchWith returns the match state between the user and another user.
	MatchWith(ctx context.Context, userID, otherID uint) (*entity.Match, error)

	ListMatches(ctx context.Context, userID uint) ([]entity.Match, error)

	// Unmatch retires the match in place; only a member of the pair may
	// do it.
	Unmatch(ctx context.Context, userID, matchID uint) error

	// LikeCount returns how many users like this user, cache first.
	LikeCount(ctx context.Context, userID uint) (int64, error)

	// Discover returns candidate profiles the user has not swiped on.
	Discover(ctx context.Context, userID uint, limit int) ([]entity.User, error)
}

type matchUseCase struct {
	userRepo  userRepo.IUserRepo
	swipeRepo swipeRepo.ISwipeRepo
	matchRepo matchRepo.IMatchRepo
	cache     *redisclient.Client
}

func New(users userRepo.IUserRepo, swipes swipeRepo.ISwipeRepo, matches matchRepo.IMatchRepo, cache *redisclient.Client) IMatchUseCase {
	return &matchUseCase{
		userRepo:  users,
		swipeRepo: swipes,
		matchRepo: matches,
		cache:     cache,
	}
}

func (m *matchUseCase) Swipe(ctx context.Context, userID, targetID uint, action entity.Action) (*entity.SwipeResponse, error) {
	if userID == targetID {
		return nil, entity.ErrSelfSwipe
	}

	if _, err := m.userRepo.GetUserByID(ctx, targetID); err != nil {
		return nil, err
	}

	if action.IsLike() {
		if err := m.checkDailyQuota(ctx, userID); err != nil {
			return nil, err
		}
	}

	if err := m.swipeRepo.RecordSwipe(ctx, userID, targetID, action); err != nil {
		if action.IsLike() {
			_ = m.cache.DecrDailyLikes(ctx, userID, time.Now())
		}
		return nil, err
	}

	if !action.IsLike() {
		// keep the cached liker count roughly in sync, db is authoritative
		_ = m.cache.DecrLikeCount(ctx, targetID)
		return &entity.SwipeResponse{
			Outcome:     entity.OutcomePass.String(),
			OutcomeEnum: entity.OutcomePass,
		}, nil
	}

	_ = m.cache.IncrLikeCount(ctx, targetID)

	mutual, err := m.swipeRepo.HasLiked(ctx, targetID, userID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		return &entity.SwipeResponse{
			Outcome:     entity.OutcomeNoMatch.String(),
			OutcomeEnum: entity.OutcomeNoMatch,
		}, nil
	}

	match, err := m.Resolve(ctx, userID, targetID)
	if err != nil {
		return nil, err
	}
	return &entity.SwipeResponse{
		Outcome:     entity.OutcomeMatch.String(),
		OutcomeEnum: entity.OutcomeMatch,
		Match:       match,
	}, nil
}

func (m *matchUseCase) Resolve(ctx context.Context, aID, bID uint) (*entity.Match, error) {
	if aID == bID {
		return nil, entity.ErrSelfSwipe
	}

	mutual, err := m.swipeRepo.CheckMutualLike(ctx, aID, bID)
	if err != nil {
		return nil, err
	}
	if !mutual {
		match, err := m.matchRepo.GetMatchByPair(ctx, aID, bID)
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrNotFound
		}
		return match, err
	}

	match, created, err := m.matchRepo.CreateMatch(ctx, aID, bID)
	if err != nil {
		// a concurrent resolve from the other member may have won the
		// unique-index race; that is success, not an error
		if errors.Is(err, entity.ErrConflict) {
			return m.matchRepo.GetMatchByPair(ctx, aID, bID)
		}
		return nil, err
	}
	if created {
		logger.Info("match created", "user1", match.User1ID, "user2", match.User2ID)
	}
	return match, nil
}

func (m *matchUseCase) MatchWith(ctx context.Context, userID, otherID uint) (*entity.Match, error) {
	return m.matchRepo.GetMatchByPair(ctx, userID, otherID)
}

func (m *matchUseCase) ListMatches(ctx context.Context, userID uint) ([]entity.Match, error) {
	return m.matchRepo.ListMatches(ctx, userID)
}

func (m *matchUseCase) Unmatch(ctx context.Context, userID, matchID uint) error {
	match, err := m.matchRepo.GetMatchByID(ctx, matchID)
	if err != nil {
		return err
	}
	if !match.Involves(userID) {
		return entity.ErrUnauthorized
	}
	return m.matchRepo.Unmatch(ctx, matchID)
}

func (m *matchUseCase) LikeCount(ctx context.Context, userID uint) (int64, error) {
	if count, ok, err := m.cache.GetLikeCount(ctx, userID); err == nil && ok {
		return count, nil
	}

	count, err := m.swipeRepo.CountLikers(ctx, userID)
	if err != nil {
		return 0, err
	}
	_ = m.cache.SetLikeCount(ctx, userID, count)
	return count, nil
}

func (m *matchUseCase) Discover(ctx context.Context, userID uint, limit int) ([]entity.User, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	swiped, err := m.swipeRepo.ListSwipedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	return m.userRepo.ListDiscoverProfiles(ctx, userID, swiped, limit)
}

func (m *matchUseCase) checkDailyQuota(ctx context.Context, userID uint) error {
	n, err := m.cache.IncrDailyLikes(ctx, userID, time.Now())
	if err != nil {
		// a cache outage must not block swiping
		logger.Warn("daily like quota check unavailable", "user_id", userID, "err", err)
		return nil
	}
	if n > DailyLikeLimit {
		_ = m.cache.DecrDailyLikes(ctx, userID, time.Now())
		return entity.ErrLikeLimit
	}
	return nil
}
