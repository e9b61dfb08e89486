package auth

import (
    "strings"
)

// tokenCookieName is the cookie carrying the bearer credential.
const tokenCookieName = "token"

// TokenFromHeaders extracts the bearer token from the request's Cookie
// header. Returns an empty string when no token cookie is present.
func TokenFromHeaders(headers map[string]string) string {
    cookieHeader := ""
    for name, value := range headers {
        if strings.EqualFold(name, "cookie") {
            cookieHeader = value
            break
        }
    }

    for _, part := range strings.Split(cookieHeader, ";") {
        name, value, found := strings.Cut(strings.TrimSpace(part), "=")
        if found && name == tokenCookieName {
            return value
        }
    }
    return ""
}
