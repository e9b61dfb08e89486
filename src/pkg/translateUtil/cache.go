package translateUtil

import (
    "github.com/veerajagannadham/Review-app/src/pkg/model"
    "go.uber.org/zap"
)

type reviewStore interface {
    GetReview(movieId int64, reviewId int64) (model.Review, error)
    AddTranslation(movieId int64, reviewId int64, language string, text string) error
}

type textTranslator interface {
    TranslateText(text string, targetLanguage string) (string, error)
}

// Cache is a read-through translation cache over the review store. Entries
// are keyed by (movieId, reviewId, language), have no TTL and are never
// evicted: a stored translation is the permanent truth for that language.
type Cache struct {
    store      reviewStore
    translator textTranslator
    log        *zap.SugaredLogger
}

func NewCache(store reviewStore, translator textTranslator, logger *zap.SugaredLogger) *Cache {
    return &Cache{
        store:      store,
        translator: translator,
        log:        logger,
    }
}

// GetTranslation returns the review's text in the requested language, calling
// the external provider only when no translation is cached yet. Concurrent
// first-time requests for the same (review, language) may both miss and both
// call the provider; the duplicate writes are equivalent, so no locking.
func (c *Cache) GetTranslation(movieId int64, reviewId int64, language string) (model.TranslationResult, error) {
    review, err := c.store.GetReview(movieId, reviewId)
    if err != nil {
        return model.TranslationResult{}, err
    }

    if cached, ok := review.Translations[language]; ok {
        c.log.Debugf("Translation cache hit for movieId %d reviewId %d language %s", movieId, reviewId, language)
        return model.TranslationResult{
            OriginalReview:   review.Content,
            TranslatedReview: cached,
            Language:         language,
        }, nil
    }

    translated, err := c.translator.TranslateText(review.Content, language)
    if err != nil {
        return model.TranslationResult{}, err
    }

    err = c.store.AddTranslation(movieId, reviewId, language, translated)
    if err != nil {
        return model.TranslationResult{}, err
    }

    c.log.Infof("Cached new %s translation for movieId %d reviewId %d", language, movieId, reviewId)

    return model.TranslationResult{
        OriginalReview:   review.Content,
        TranslatedReview: translated,
        Language:         language,
    }, nil
}
