package dto

// ===== Requests =====

type CreatePostDTO struct {
	PostedBy string `json:"postedBy" validate:"required"`
	Text     string `json:"text"     validate:"required"`
	// Img is an optional base64 data URI; it is uploaded to image storage
	// and replaced by a durable URL before the post is persisted.
	Img string `json:"img,omitempty"`
}

type ReplyDTO struct {
	Text string `json:"text" validate:"required"`
}

// ===== Responses =====

type LikeResponse struct {
	Message string `json:"message" example:"Post liked successfully"`
	Liked   bool   `json:"liked"`
}

type MessageResponse struct {
	Message string `json:"message" example:"Post deleted successfully"`
}

type ErrorResponse struct {
	Message string `json:"error" example:"invalid body"`
}
