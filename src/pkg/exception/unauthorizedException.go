package exception

import "fmt"

type UnauthorizedException struct {
    Context string
    Err     error
}

func NewUnauthorizedException(message string) *UnauthorizedException {
    return &UnauthorizedException{
        Context: message,
        Err:     nil,
    }
}
func NewUnauthorizedExceptionWithErr(message string, err error) *UnauthorizedException {
    return &UnauthorizedException{
        Context: message,
        Err:     err,
    }
}

func (e UnauthorizedException) Error() string {
    return fmt.Sprintf("UnauthorizedException: %s: %v", e.Context, e.Err)
}
