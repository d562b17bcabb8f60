package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"safar/config"
	"safar/infras/jwt"
	"safar/infras/otel/mocks"
	"safar/internal/domains/auth/model/dto"
	"safar/internal/domains/auth/service"
	userMocks "safar/internal/domains/user/mocks"
	userModel "safar/internal/domains/user/model"
	"safar/shared/failure"
	"safar/shared/password"
)

func newAuthService(t *testing.T) (service.Auth, *userMocks.MockUser) {
	t.Helper()

	ctrl := gomock.NewController(t)

	mockUserRepo := userMocks.NewMockUser(ctrl)
	mockOtel := mocks.NewOtel()

	cfg := &config.Config{}
	cfg.JWT.AccessSecret = "test-access-secret"
	cfg.JWT.RefreshSecret = "test-refresh-secret"
	cfg.JWT.AccessExpireMin = 15
	cfg.JWT.RefreshExpireMin = 60

	svc := service.New(mockUserRepo, cfg, mockOtel, jwt.New(cfg))

	return svc, mockUserRepo
}

func activeUser(t *testing.T, username, plainPassword string) userModel.User {
	t.Helper()

	hashed, err := password.Hash(plainPassword)
	assert.NoError(t, err)

	return userModel.User{
		ID:       "user-id",
		Username: username,
		Password: hashed,
		Role:     "operator",
		Active:   true,
	}
}

func TestAuthService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		Username: "operator1",
		Password: "secret-password",
		Role:     "operator",
	}

	t.Run("username already taken", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		err := svc.Register(context.Background(), req)

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("successful registration hashes the password", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(false, nil)
		mockUserRepo.EXPECT().
			Insert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user userModel.User) error {
				assert.Equal(t, "operator1", user.Username)
				assert.True(t, user.Active)
				assert.NoError(t, password.Verify("secret-password", user.Password))

				return nil
			})

		err := svc.Register(context.Background(), req)

		assert.NoError(t, err)
	})
}

func TestAuthService_Login(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(userModel.User{}, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "ghost", Password: "whatever"})

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(t, "operator1", "right-password"), nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator1", Password: "wrong-password"})

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("deactivated account", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		user := activeUser(t, "operator1", "right-password")
		user.Active = false

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(user, nil)

		_, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator1", Password: "right-password"})

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("successful login issues tokens and records last login", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(t, "operator1", "right-password"), nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		res, err := svc.Login(context.Background(), dto.LoginRequest{Username: "operator1", Password: "right-password"})

		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	t.Run("wrong current password", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(t, "operator1", "right-password"), nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "wrong-password",
			NewPassword:     "brand-new-password",
		}, "user-id")

		assert.True(t, failure.IsBadRequest(err))
	})

	t.Run("successful change stores the new hash", func(t *testing.T) {
		svc, mockUserRepo := newAuthService(t)

		mockUserRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(activeUser(t, "operator1", "right-password"), nil)
		mockUserRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil)

		err := svc.ChangePassword(context.Background(), dto.ChangePasswordRequest{
			CurrentPassword: "right-password",
			NewPassword:     "brand-new-password",
		}, "user-id")

		assert.NoError(t, err)
	})
}
