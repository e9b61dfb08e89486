package exception

import "fmt"

type ForbiddenException struct {
    Context string
    Err     error
}

func NewForbiddenException(message string) *ForbiddenException {
    return &ForbiddenException{
        Context: message,
        Err:     nil,
    }
}

func (e ForbiddenException) Error() string {
    return fmt.Sprintf("ForbiddenException: %s: %v", e.Context, e.Err)
}
