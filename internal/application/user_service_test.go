package application

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/linskybing/forms-go/internal/api/middleware"
	"github.com/linskybing/forms-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *repoMocks) {
	repos, m := setupRepos(t)
	return NewUserService(repos), m
}

func hashed(t *testing.T, password string) string {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

// --------------------- LoginUser ---------------------
func TestLoginUser_Success(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	usr := user.User{ID: 1, Username: "bob", Password: hashed(t, "123456"), IsAdmin: true}
	m.user.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(usr, nil)

	oldGen := middleware.GenerateToken
	middleware.GenerateToken = func(uid uint, username string, isAdmin bool, exp time.Duration) (string, error) {
		assert.True(t, isAdmin)
		assert.Equal(t, TokenLifetime, exp)
		return "token123", nil
	}
	defer func() { middleware.GenerateToken = oldGen }()

	u, token, err := svc.LoginUser(context.Background(), "bob", "123456")
	require.NoError(t, err)
	assert.Equal(t, "bob", u.Username)
	assert.Equal(t, "token123", token)
}

func TestLoginUser_InvalidPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	usr := user.User{ID: 1, Username: "bob", Password: hashed(t, "123456")}
	m.user.EXPECT().GetUserByUsername(gomock.Any(), "bob").Return(usr, nil)

	_, _, err := svc.LoginUser(context.Background(), "bob", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	m.user.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(user.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.LoginUser(context.Background(), "ghost", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// --------------------- ChangePassword ---------------------
func TestChangePassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	ctx := context.Background()
	usr := user.User{ID: 2, Username: "eve", Password: hashed(t, "old-password")}

	m.user.EXPECT().GetUserRawByID(ctx, uint(2)).Return(usr, nil).Times(2)
	err := svc.ChangePassword(ctx, 2, user.ChangePasswordInput{OldPassword: "nope", Password: "new-password"})
	assert.ErrorIs(t, err, ErrIncorrectPassword)

	m.user.EXPECT().SaveUser(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("new-password")))
		return nil
	})
	require.NoError(t, svc.ChangePassword(ctx, 2, user.ChangePasswordInput{OldPassword: "old-password", Password: "new-password"}))
}

// --------------------- SeedAdmin ---------------------
func TestSeedAdmin_SkipsWhenAdminExists(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	m.user.EXPECT().CountAdmins(gomock.Any()).Return(int64(1), nil)

	assert.NoError(t, svc.SeedAdmin(context.Background(), "admin", "secret"))
}

func TestSeedAdmin_SkipsWithoutPassword(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	m.user.EXPECT().CountAdmins(gomock.Any()).Return(int64(0), nil)

	assert.NoError(t, svc.SeedAdmin(context.Background(), "admin", ""))
}

func TestSeedAdmin_Creates(t *testing.T) {
	svc, m := setupUserServiceMocks(t)
	m.user.EXPECT().CountAdmins(gomock.Any()).Return(int64(0), nil)
	m.user.EXPECT().GetUserByUsername(gomock.Any(), "admin").Return(user.User{}, gorm.ErrRecordNotFound)
	m.user.EXPECT().SaveUser(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *user.User) error {
		assert.Equal(t, "admin", u.Username)
		assert.True(t, u.IsAdmin)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("secret")))
		return nil
	})

	assert.NoError(t, svc.SeedAdmin(context.Background(), "admin", "secret"))
}
