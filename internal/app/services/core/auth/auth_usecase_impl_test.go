package auth

import (
	"context"
	"testing"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/services/shared/jwtmanager"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
)

func newTestAuthUsecase(t *testing.T) AuthUsecase {
	t.Helper()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	assert.NoError(t, err)

	cfg := new(config.InternalConfig)
	cfg.Admin.Username = "admin"
	cfg.Admin.PasswordHash = string(passwordHash)
	cfg.Admin.JWTSecret = "test-secret"
	cfg.Admin.JWTExpTimeInHour = 1

	jwtManager, err := jwtmanager.NewJWTManager(cfg)
	assert.NoError(t, err)

	return NewAuthUsecase(jwtManager, cfg)
}

func TestAuthUsecaseLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("Valid Credentials Yield Token", func(t *testing.T) {
		uc := newTestAuthUsecase(t)

		response, err := uc.Login(ctx, &requests.AdminLogin{Username: "admin", Password: "s3cret"})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.Token)
		assert.Equal(t, 3600, response.ExpiresIn)
	})

	t.Run("Wrong Password Is Unauthorized", func(t *testing.T) {
		uc := newTestAuthUsecase(t)

		_, err := uc.Login(ctx, &requests.AdminLogin{Username: "admin", Password: "wrong"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	})

	t.Run("Wrong Username Is Unauthorized", func(t *testing.T) {
		uc := newTestAuthUsecase(t)

		_, err := uc.Login(ctx, &requests.AdminLogin{Username: "root", Password: "s3cret"})

		assert.Error(t, err)
	})

	t.Run("Missing Fields Are Rejected", func(t *testing.T) {
		uc := newTestAuthUsecase(t)

		_, err := uc.Login(ctx, &requests.AdminLogin{})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}
