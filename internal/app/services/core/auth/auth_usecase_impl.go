package auth

import (
	"context"
	"crypto/subtle"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/services/shared/jwtmanager"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

type authUsecase struct {
	JWTManager     *jwtmanager.JWTManager
	InternalConfig *config.InternalConfig
}

func NewAuthUsecase(jwtManager *jwtmanager.JWTManager, internalConfig *config.InternalConfig) AuthUsecase {
	return &authUsecase{
		JWTManager:     jwtManager,
		InternalConfig: internalConfig,
	}
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	usernameMatch := subtle.ConstantTimeCompare([]byte(request.Username), []byte(uc.InternalConfig.Admin.Username)) == 1
	err := bcrypt.CompareHashAndPassword([]byte(uc.InternalConfig.Admin.PasswordHash), []byte(request.Password))
	if !usernameMatch || err != nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(err)
	}

	token, err := uc.JWTManager.CreateToken(request.Username)
	if err != nil {
		return nil, exceptions.ErrTokenGenerate(err)
	}

	return &responses.AdminLogin{
		Token:     token,
		ExpiresIn: int(uc.JWTManager.TTL().Seconds()),
	}, nil
}
