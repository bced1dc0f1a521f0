package blogs

import (
	"context"

	"serenemind-service/internal/pkg/dto/responses"
)

type BlogUsecase interface {
	ListPublishedPosts(ctx context.Context) ([]responses.BlogPost, error)
}
