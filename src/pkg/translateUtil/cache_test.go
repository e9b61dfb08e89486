package translateUtil

import (
    "errors"
    "fmt"
    "strings"
    "testing"

    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
    "github.com/veerajagannadham/Review-app/src/pkg/model"
)

type reviewKey struct {
    movieId  int64
    reviewId int64
}

type stubStore struct {
    reviews map[reviewKey]model.Review
}

func (s *stubStore) GetReview(movieId int64, reviewId int64) (model.Review, error) {
    review, ok := s.reviews[reviewKey{movieId, reviewId}]
    if !ok {
        return model.Review{}, exception.NewReviewDoesNotExistException(
            fmt.Sprintf("Review with movieId %d reviewId %d not found", movieId, reviewId))
    }
    return review, nil
}

func (s *stubStore) AddTranslation(movieId int64, reviewId int64, language string, text string) error {
    review, ok := s.reviews[reviewKey{movieId, reviewId}]
    if !ok {
        return exception.NewReviewDoesNotExistException("not found")
    }
    if review.Translations == nil {
        review.Translations = map[string]string{}
    }
    review.Translations[language] = text
    s.reviews[reviewKey{movieId, reviewId}] = review
    return nil
}

type countingTranslator struct {
    calls int
    err   error
}

func (t *countingTranslator) TranslateText(text string, targetLanguage string) (string, error) {
    t.calls++
    if t.err != nil {
        return "", t.err
    }
    return strings.ToUpper(targetLanguage) + ": " + text, nil
}

func newStubStoreWithReview() *stubStore {
    return &stubStore{reviews: map[reviewKey]model.Review{
        {1, 101}: {
            MovieId:      1,
            ReviewId:     101,
            ReviewerId:   "alice",
            ReviewDate:   "01-10-2023",
            Content:      "Great film",
            Translations: map[string]string{},
        },
    }}
}

func TestGetTranslationCachesProviderResult(t *testing.T) {
    store := newStubStoreWithReview()
    translator := &countingTranslator{}
    cache := NewCache(store, translator, logger.NewLogger())

    first, err := cache.GetTranslation(1, 101, "fr")
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    second, err := cache.GetTranslation(1, 101, "fr")
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }

    if first.TranslatedReview != second.TranslatedReview {
        t.Errorf("expected identical text on both calls, got %q then %q", first.TranslatedReview, second.TranslatedReview)
    }
    if translator.calls != 1 {
        t.Errorf("expected exactly one provider call, got %d", translator.calls)
    }
    if first.OriginalReview != "Great film" || first.Language != "fr" {
        t.Errorf("unexpected result %+v", first)
    }
}

func TestGetTranslationReturnsCachedEntryWithoutProvider(t *testing.T) {
    store := newStubStoreWithReview()
    review := store.reviews[reviewKey{1, 101}]
    review.Translations["fr"] = "Superbe"
    translator := &countingTranslator{}
    cache := NewCache(store, translator, logger.NewLogger())

    result, err := cache.GetTranslation(1, 101, "fr")
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    if result.TranslatedReview != "Superbe" {
        t.Errorf("expected cached text Superbe, got %q", result.TranslatedReview)
    }
    if translator.calls != 0 {
        t.Errorf("expected zero provider calls on cache hit, got %d", translator.calls)
    }
}

func TestGetTranslationDoesNotDisturbOtherLanguages(t *testing.T) {
    store := newStubStoreWithReview()
    translator := &countingTranslator{}
    cache := NewCache(store, translator, logger.NewLogger())

    if _, err := cache.GetTranslation(1, 101, "fr"); err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    frText := store.reviews[reviewKey{1, 101}].Translations["fr"]

    if _, err := cache.GetTranslation(1, 101, "de"); err != nil {
        t.Fatalf("expected no error, got %v", err)
    }

    translations := store.reviews[reviewKey{1, 101}].Translations
    if translations["fr"] != frText {
        t.Errorf("expected fr entry unchanged after de translation, got %q", translations["fr"])
    }
    if _, ok := translations["de"]; !ok {
        t.Error("expected de entry to be cached")
    }
}

func TestGetTranslationReviewNotFound(t *testing.T) {
    cache := NewCache(&stubStore{reviews: map[reviewKey]model.Review{}}, &countingTranslator{}, logger.NewLogger())

    _, err := cache.GetTranslation(1, 9999, "fr")
    if _, ok := err.(*exception.ReviewDoesNotExistException); !ok {
        t.Errorf("expected ReviewDoesNotExistException, got %v", err)
    }
}

func TestGetTranslationProviderFailure(t *testing.T) {
    store := newStubStoreWithReview()
    translator := &countingTranslator{err: exception.NewTranslationException("translation provider call failed: ", errors.New("throttled"))}
    cache := NewCache(store, translator, logger.NewLogger())

    _, err := cache.GetTranslation(1, 101, "fr")
    if _, ok := err.(*exception.TranslationException); !ok {
        t.Errorf("expected TranslationException, got %v", err)
    }
    if len(store.reviews[reviewKey{1, 101}].Translations) != 0 {
        t.Error("expected no translation cached after provider failure")
    }
}
