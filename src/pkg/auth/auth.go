package auth

import (
    "crypto/rsa"
    "errors"
    "fmt"

    "github.com/golang-jwt/jwt/v5"
    "github.com/veerajagannadham/Review-app/src/pkg/config"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
    "go.uber.org/zap"
)

// Claims are the verified identity attributes extracted from a bearer token.
type Claims struct {
    jwt.RegisteredClaims
    CognitoUsername string `json:"cognito:username"`
    ClientId        string `json:"client_id"`
    TokenUse        string `json:"token_use"`
}

// Username returns the stable identity of the token holder.
func (c Claims) Username() string {
    if !util.IsEmptyString(c.CognitoUsername) {
        return c.CognitoUsername
    }
    return c.Subject
}

// Verifier validates Cognito-issued bearer tokens against the pool's signing
// keys. Verification results are deliberately not cached: every call
// re-verifies so that revoked or rotated credentials are rejected promptly.
type Verifier struct {
    issuer   string
    clientId string
    keys     map[string]*rsa.PublicKey
    log      *zap.SugaredLogger
}

func NewVerifier(cfg config.Config, logger *zap.SugaredLogger) (*Verifier, error) {
    if util.IsEmptyString(cfg.UserPoolId) || util.IsEmptyString(cfg.UserPoolClientId) {
        return nil, errors.New("user pool id and client id must be configured for token verification")
    }

    issuer := fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", cfg.Region, cfg.UserPoolId)
    keys, err := fetchJwks(issuer + "/.well-known/jwks.json")
    if err != nil {
        logger.Errorf("Unable to fetch JWKS for user pool %s: %v", cfg.UserPoolId, err)
        return nil, err
    }

    return &Verifier{
        issuer:   issuer,
        clientId: cfg.UserPoolClientId,
        keys:     keys,
        log:      logger,
    }, nil
}

// VerifyToken checks signature, expiry, issuer, audience and subject presence.
// Any failure is an UnauthorizedException.
func (v *Verifier) VerifyToken(tokenString string) (*Claims, error) {
    if util.IsEmptyString(tokenString) {
        return nil, exception.NewUnauthorizedException("no bearer token presented")
    }

    claims := &Claims{}
    token, err := jwt.ParseWithClaims(
        tokenString,
        claims,
        v.keyfunc,
        jwt.WithValidMethods([]string{"RS256"}),
        jwt.WithIssuer(v.issuer),
        jwt.WithExpirationRequired(),
    )
    if err != nil {
        return nil, exception.NewUnauthorizedExceptionWithErr("token verification failed", err)
    }
    if !token.Valid {
        return nil, exception.NewUnauthorizedException("token is not valid")
    }

    if !v.matchesClient(claims) {
        return nil, exception.NewUnauthorizedException("token was not issued for this client")
    }

    if util.IsEmptyString(claims.Subject) {
        return nil, exception.NewUnauthorizedException("token is missing the subject claim")
    }

    return claims, nil
}

// Cognito id tokens carry the app client in aud, access tokens in client_id.
func (v *Verifier) matchesClient(claims *Claims) bool {
    if claims.ClientId == v.clientId {
        return true
    }
    for _, audience := range claims.Audience {
        if audience == v.clientId {
            return true
        }
    }
    return false
}

func (v *Verifier) keyfunc(token *jwt.Token) (interface{}, error) {
    kid, ok := token.Header["kid"].(string)
    if !ok {
        return nil, errors.New("token header is missing kid")
    }
    key, ok := v.keys[kid]
    if !ok {
        return nil, fmt.Errorf("no signing key found for kid %s", kid)
    }
    return key, nil
}
