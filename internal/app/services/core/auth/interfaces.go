package auth

import (
	"context"

	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.AdminLogin) (*responses.AdminLogin, error)
}
