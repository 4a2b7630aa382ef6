package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ozancz/sozluk/pkg/helpers"
)

func userFixture() (*UserService, *fakeUserRepo) {
	users := newFakeUserRepo()
	jwt := helpers.NewJWTManager("test-secret", 30*24*time.Hour)
	return NewUserService(users, jwt, nil, nil, nil, nil, ""), users
}

func register(t *testing.T, svc *UserService, username, email string) {
	t.Helper()
	_, err := svc.Register(context.Background(), RegisterInput{
		Username:    username,
		Email:       email,
		Password:    "sifre123",
		DisplayName: "Test",
	})
	require.NoError(t, err)
}

func TestRegisterAndLogin(t *testing.T) {
	svc, users := userFixture()
	register(t, svc, "ozan", "ozan@example.com")

	stored, err := users.GetByUsername(context.Background(), "ozan")
	require.NoError(t, err)
	assert.NotEqual(t, "sifre123", stored.Password, "password must be stored hashed")

	u, token, exp, err := svc.Login(context.Background(), "ozan", "sifre123")
	require.NoError(t, err)
	assert.Equal(t, "ozan", u.Username)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(30*24*time.Hour), exp, time.Minute)

	claims, err := svc.JWT.ParseSessionToken(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, "ozan", claims.Username)
}

func TestRegisterDuplicates(t *testing.T) {
	svc, _ := userFixture()
	register(t, svc, "ozan", "ozan@example.com")

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "ozan", Email: "baska@example.com", Password: "sifre123", DisplayName: "X",
	})
	assert.ErrorIs(t, err, ErrDuplicateUsername)

	_, err = svc.Register(context.Background(), RegisterInput{
		Username: "baska", Email: "ozan@example.com", Password: "sifre123", DisplayName: "X",
	})
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginWrongCredentials(t *testing.T) {
	svc, _ := userFixture()
	register(t, svc, "ozan", "ozan@example.com")

	_, _, _, err := svc.Login(context.Background(), "ozan", "yanlis-sifre")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "yok", "sifre123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestUpdateProfile(t *testing.T) {
	svc, users := userFixture()
	register(t, svc, "ozan", "ozan@example.com")
	stored, _ := users.GetByUsername(context.Background(), "ozan")

	u, err := svc.UpdateProfile(context.Background(), stored.ID, UpdateProfileInput{
		DisplayName: "Ozan Ç.",
		Bio:         "kahve sever",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ozan Ç.", u.DisplayName)
	assert.Equal(t, "kahve sever", u.Bio)

	long := make([]rune, 51)
	for i := range long {
		long[i] = 'a'
	}
	_, err = svc.UpdateProfile(context.Background(), stored.ID, UpdateProfileInput{DisplayName: string(long)})
	var verr *ValidationError
	assert.ErrorAs(t, err, &verr)

	_, err = svc.UpdateProfile(context.Background(), "user-missing", UpdateProfileInput{DisplayName: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
