package responses

type BlogPost struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageID     string `json:"image_id,omitempty"`
	IsPublished bool   `json:"is_published"`
	CreatedAt   string `json:"created_at,omitempty"`
}
