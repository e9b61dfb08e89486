package model

import (
    "time"

    "github.com/go-playground/validator/v10"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
)

// Review is the persisted record in the reviews table.
// (movieId, reviewId) is the full key; reviewId is assigned by the store and
// never supplied by callers. Translations caches prior translation results
// keyed by target language code; an entry, once written, is never re-translated.
type Review struct {
    MovieId      int64             `json:"movieId" dynamodbav:"movieId" validate:"required,min=1"`   // partition key
    ReviewId     int64             `json:"reviewId" dynamodbav:"reviewId" validate:"required,min=1"` // sort key
    ReviewerId   string            `json:"reviewerId" dynamodbav:"reviewerId" validate:"required"`
    ReviewDate   string            `json:"reviewDate" dynamodbav:"reviewDate" validate:"required"`
    Content      string            `json:"content" dynamodbav:"content" validate:"required"`
    Translations map[string]string `json:"reviewTranslation" dynamodbav:"reviewTranslation"`
}

var reviewValidate *validator.Validate

func init() {
    reviewValidate = validator.New(validator.WithRequiredStructEnabled())
}

// NewReview builds a Review stamped with today's date and an empty translation
// map. The empty map is written on purpose so that later translation writes
// can target reviewTranslation.<lang> directly.
func NewReview(movieId int64, reviewId int64, reviewerId string, content string) (Review, error) {
    review := Review{
        MovieId:      movieId,
        ReviewId:     reviewId,
        ReviewerId:   reviewerId,
        ReviewDate:   util.GetFormattedDate(time.Now()),
        Content:      content,
        Translations: map[string]string{},
    }

    err := reviewValidate.Struct(review)
    if err != nil {
        return Review{}, err
    }

    return review, nil
}

func ValidateReview(review *Review) error {
    return reviewValidate.Struct(review)
}
