package blogs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// blogUsecase proxies the upstream blog feed so the SPA never talks to the
// feed host directly. Draft posts are filtered out before the response
// leaves the service.
type blogUsecase struct {
	feedURL string
	client  *http.Client
}

func NewBlogUsecase(internalConfig *config.InternalConfig) BlogUsecase {
	return &blogUsecase{
		feedURL: internalConfig.Blog.FeedURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (uc *blogUsecase) ListPublishedPosts(ctx context.Context) ([]responses.BlogPost, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, uc.feedURL, nil)
	if err != nil {
		return nil, exceptions.ErrBlogFeedFetch(err)
	}

	response, err := uc.client.Do(request)
	if err != nil {
		return nil, exceptions.ErrBlogFeedFetch(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrBlogFeedFetch(fmt.Errorf("feed returned status %d", response.StatusCode))
	}

	var posts []responses.BlogPost
	if err := json.NewDecoder(response.Body).Decode(&posts); err != nil {
		return nil, exceptions.ErrBlogFeedFetch(err)
	}

	published := make([]responses.BlogPost, 0, len(posts))
	for _, post := range posts {
		if post.IsPublished {
			published = append(published, post)
		}
	}
	return published, nil
}
