package blogs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"serenemind-service/internal/app/config"

	"github.com/stretchr/testify/assert"
)

func newBlogUsecaseForFeed(feedURL string) BlogUsecase {
	cfg := new(config.InternalConfig)
	cfg.Blog.FeedURL = feedURL
	return NewBlogUsecase(cfg)
}

func TestBlogUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Filters Out Unpublished Posts", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`[
				{"id": 1, "title": "Launch", "content": "Hello", "is_published": true},
				{"id": 2, "title": "Draft", "content": "WIP", "is_published": false},
				{"id": 3, "title": "Update", "content": "News", "is_published": true}
			]`))
		}))
		defer server.Close()

		posts, err := newBlogUsecaseForFeed(server.URL).ListPublishedPosts(ctx)

		assert.NoError(t, err)
		assert.Len(t, posts, 2)
		for _, post := range posts {
			assert.True(t, post.IsPublished)
		}
	})

	t.Run("Empty Feed Yields Empty List", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`[]`))
		}))
		defer server.Close()

		posts, err := newBlogUsecaseForFeed(server.URL).ListPublishedPosts(ctx)

		assert.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Upstream Failure Is Reported", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer server.Close()

		_, err := newBlogUsecaseForFeed(server.URL).ListPublishedPosts(ctx)

		assert.Error(t, err)
	})
}
