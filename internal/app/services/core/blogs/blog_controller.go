package blogs

import (
	"context"
	"net/http"
	"time"

	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type BlogController struct {
	Log         *zap.Logger
	BlogUsecase BlogUsecase
}

func NewBlogController(logger *zap.Logger, blogUsecase BlogUsecase) *BlogController {
	return &BlogController{
		Log:         logger,
		BlogUsecase: blogUsecase,
	}
}

func (ctrl *BlogController) ListPublishedPosts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 20*time.Second)
	defer cancel()

	response, err := ctrl.BlogUsecase.ListPublishedPosts(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListBlogPostsSuccessMessage, response)
}
