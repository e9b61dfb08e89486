package exception

import "fmt"

type TranslationException struct {
    Context string
    Err     error
}

func NewTranslationException(message string, err error) *TranslationException {
    return &TranslationException{
        Context: message,
        Err:     err,
    }
}

func (e TranslationException) Error() string {
    return fmt.Sprintf("TranslationException: %s: %v", e.Context, e.Err)
}
