package routers

import (
	"serenemind-service/internal/app/services/core/blogs"

	"github.com/go-chi/chi/v5"
)

func attachBlogRoutes(router chi.Router, blogController *blogs.BlogController) {
	router.Get("/", blogController.ListPublishedPosts)
}
