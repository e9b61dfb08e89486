package enum

type HandlerName int

const (
    HandlerNameAddReviewHandler HandlerName = iota
    HandlerNameGetReviewsHandler
    HandlerNameUpdateReviewHandler
    HandlerNameTranslationHandler
    HandlerNameAuthorizerHandler
)

func (s HandlerName) String() string {
    return []string{
        "addReviewHandler",
        "getReviewsHandler",
        "updateReviewHandler",
        "translationHandler",
        "authorizerHandler",
    }[s]
}
