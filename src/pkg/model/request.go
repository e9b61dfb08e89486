package model

// AddReviewRequest is the body of POST /movies/reviews.
type AddReviewRequest struct {
    MovieId int64  `json:"movieId" validate:"required,min=1"`
    Content string `json:"content" validate:"required"`
}

// UpdateReviewRequest is the body of PUT /movies/{movieId}/reviews/{reviewId}.
type UpdateReviewRequest struct {
    Content string `json:"content" validate:"required"`
}

// TranslationResult is the body of a successful translation response.
type TranslationResult struct {
    OriginalReview   string `json:"originalReview"`
    TranslatedReview string `json:"translatedReview"`
    Language         string `json:"language"`
}

// GetReviewsResponse is the body of a successful GET reviews response.
type GetReviewsResponse struct {
    Reviews []Review `json:"reviews"`
}
