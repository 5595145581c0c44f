package authUseCase_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redisclient "github.com/campusmatch/campusmatch/internal/datastore/redis"
	"github.com/campusmatch/campusmatch/internal/entity"
	userRepo "github.com/campusmatch/campusmatch/internal/repository/user"
	authUseCase "github.com/campusmatch/campusmatch/internal/usecase/auth"
	"github.com/campusmatch/campusmatch/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setup(t *testing.T) (authUseCase.IAuthUseCase, userRepo.IUserRepo, *redisclient.Client) {
	t.Helper()
	database, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	if err := database.AutoMigrate(&entity.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	sessions := redisclient.New(mr.Addr(), "")
	users := userRepo.New(database)
	return authUseCase.New(users, sessions), users, sessions
}

func signUp(t *testing.T, uc authUseCase.IAuthUseCase, email string) *entity.User {
	t.Helper()
	user, err := uc.SignUp(context.Background(), entity.SignUpRequest{
		Email:     email,
		Password:  "hunter2hunter2",
		FirstName: "Grace",
		LastName:  "Hopper",
	})
	require.NoError(t, err)
	return user
}

func TestSignIn_WrongPassword(t *testing.T) {
	uc, _, _ := setup(t)
	signUp(t, uc, "grace@example.edu")

	_, _, err := uc.SignIn(context.Background(), "grace@example.edu", "wrong")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	_, _, err = uc.SignIn(context.Background(), "nobody@example.edu", "hunter2hunter2")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestSignIn_IssuesTokenAndSession(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	user := signUp(t, uc, "grace@example.edu")

	token, session, err := uc.SignIn(ctx, "grace@example.edu", "hunter2hunter2")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, session)

	claims, err := jwt.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)

	resolved, err := uc.ResolvePrincipal(ctx, authUseCase.Credentials{SessionToken: session})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestSignIn_OAuthOnlyAccount(t *testing.T) {
	ctx := context.Background()
	uc, users, _ := setup(t)

	_, err := users.CreateUser(ctx, &entity.User{
		Email:     "oauth@example.edu",
		GoogleID:  "google-123",
		FirstName: "O",
		MainSlot:  1,
		Active:    true,
	})
	require.NoError(t, err)

	_, _, err = uc.SignIn(ctx, "oauth@example.edu", "anything")
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestResolvePrincipal_BearerToken(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	user := signUp(t, uc, "grace@example.edu")

	token, err := jwt.CreateToken(user.ID, user.Email)
	require.NoError(t, err)

	resolved, err := uc.ResolvePrincipal(ctx, authUseCase.Credentials{BearerToken: token})
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
}

func TestResolvePrincipal_SessionWinsOverBearer(t *testing.T) {
	ctx := context.Background()
	uc, _, sessions := setup(t)
	alice := signUp(t, uc, "alice@example.edu")
	bob := signUp(t, uc, "bob@example.edu")

	require.NoError(t, sessions.PutSession(ctx, "tok-alice", alice.ID))
	bearer, err := jwt.CreateToken(bob.ID, bob.Email)
	require.NoError(t, err)

	resolved, err := uc.ResolvePrincipal(ctx, authUseCase.Credentials{
		SessionToken: "tok-alice",
		BearerToken:  bearer,
	})
	require.NoError(t, err)
	assert.Equal(t, alice.ID, resolved.ID)
}

func TestResolvePrincipal_InvalidCredentials(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	signUp(t, uc, "grace@example.edu")

	// no credentials at all
	_, err := uc.ResolvePrincipal(ctx, authUseCase.Credentials{})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	// unknown session falls through to nothing
	_, err = uc.ResolvePrincipal(ctx, authUseCase.Credentials{SessionToken: "stale"})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)

	// garbage bearer token is rejected, not skipped
	_, err = uc.ResolvePrincipal(ctx, authUseCase.Credentials{BearerToken: "not-a-jwt"})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestSignOut_InvalidatesSession(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := setup(t)
	signUp(t, uc, "grace@example.edu")

	_, session, err := uc.SignIn(ctx, "grace@example.edu", "hunter2hunter2")
	require.NoError(t, err)

	require.NoError(t, uc.SignOut(ctx, session))

	_, err = uc.ResolvePrincipal(ctx, authUseCase.Credentials{SessionToken: session})
	assert.ErrorIs(t, err, entity.ErrUnauthorized)
}
