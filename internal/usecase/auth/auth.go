package authUseCase

import (
	"context"
	"errors"

	redisclient "github.com/campusmatch/campusmatch/internal/datastore/redis"
	"github.com/campusmatch/campusmatch/internal/entity"
	userRepo "github.com/campusmatch/campusmatch/internal/repository/user"
	"github.com/campusmatch/campusmatch/pkg/jwt"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Credentials carries whatever auth material a request presented. Empty
// fields are simply skipped by the strategies.
type Credentials struct {
	SessionToken string
	BearerToken  string
}

// PrincipalStrategy resolves one kind of credential to a user id. A
// strategy returns (0, nil) when its credential is absent so the next
// strategy gets a turn; a present-but-invalid credential is an error.
type PrincipalStrategy interface {
	Resolve(ctx context.Context, creds Credentials) (uint, error)
}

type IAuthUseCase interface {
	SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.User, error)

	// SignIn verifies the password and returns a JWT plus a fresh
	// redis-backed session token.
	SignIn(ctx context.Context, email, password string) (jwtToken, sessionToken string, err error)

	SignOut(ctx context.Context, sessionToken string) error

	// ResolvePrincipal runs the strategies in fixed order, session first,
	// bearer token second. The first strategy that yields a user wins.
	ResolvePrincipal(ctx context.Context, creds Credentials) (*entity.User, error)
}

type authUseCase struct {
	userRepo   userRepo.IUserRepo
	sessions   *redisclient.Client
	strategies []PrincipalStrategy
}

func New(users userRepo.IUserRepo, sessions *redisclient.Client) IAuthUseCase {
	uc := &authUseCase{
		userRepo: users,
		sessions: sessions,
	}
	uc.strategies = []PrincipalStrategy{
		&sessionStrategy{sessions: sessions},
		&bearerStrategy{},
	}
	return uc
}

func (a *authUseCase) SignUp(ctx context.Context, req entity.SignUpRequest) (*entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	user := entity.User{
		Email:     req.Email,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		MainSlot:  1,
		Active:    true,
	}
	return a.userRepo.CreateUser(ctx, &user)
}

func (a *authUseCase) SignIn(ctx context.Context, email, password string) (string, string, error) {
	user, err := a.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", "", entity.ErrUnauthorized
	}

	// OAuth-only accounts have no password and cannot sign in this way.
	if user.Password == "" {
		return "", "", entity.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", entity.ErrUnauthorized
	}

	token, err := jwt.CreateToken(user.ID, user.Email)
	if err != nil {
		return "", "", err
	}

	sessionToken := uuid.New().String()
	if err := a.sessions.PutSession(ctx, sessionToken, user.ID); err != nil {
		return "", "", err
	}

	return token, sessionToken, nil
}

func (a *authUseCase) SignOut(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return nil
	}
	return a.sessions.DeleteSession(ctx, sessionToken)
}

func (a *authUseCase) ResolvePrincipal(ctx context.Context, creds Credentials) (*entity.User, error) {
	for _, s := range a.strategies {
		id, err := s.Resolve(ctx, creds)
		if err != nil {
			return nil, err
		}
		if id == 0 {
			continue
		}
		user, err := a.userRepo.GetUserByID(ctx, id)
		if errors.Is(err, entity.ErrNotFound) {
			return nil, entity.ErrUnauthorized
		}
		if err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, entity.ErrUnauthorized
}

// sessionStrategy looks the session token up in redis.
type sessionStrategy struct {
	sessions *redisclient.Client
}

func (s *sessionStrategy) Resolve(ctx context.Context, creds Credentials) (uint, error) {
	if creds.SessionToken == "" {
		return 0, nil
	}
	return s.sessions.GetSession(ctx, creds.SessionToken)
}

// bearerStrategy verifies a JWT bearer token.
type bearerStrategy struct{}

func (s *bearerStrategy) Resolve(ctx context.Context, creds Credentials) (uint, error) {
	if creds.BearerToken == "" {
		return 0, nil
	}
	claims, err := jwt.ValidateToken(creds.BearerToken)
	if err != nil {
		return 0, entity.ErrUnauthorized
	}
	return claims.UserID, nil
}
