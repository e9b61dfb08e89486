package auth

import (
    "crypto/rand"
    "crypto/rsa"
    "encoding/base64"
    "encoding/json"
    "math/big"
    "net/http"
    "net/http/httptest"
    "testing"
    "time"

    "github.com/golang-jwt/jwt/v5"
    "github.com/veerajagannadham/Review-app/src/pkg/exception"
    "github.com/veerajagannadham/Review-app/src/pkg/logger"
)

const (
    testKid      = "test-key"
    testIssuer   = "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_testpool"
    testClientId = "client123"
)

func newTestKeyAndVerifier(t *testing.T) (*rsa.PrivateKey, *Verifier) {
    t.Helper()

    privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
    if err != nil {
        t.Fatalf("failed to generate key: %v", err)
    }

    return privateKey, &Verifier{
        issuer:   testIssuer,
        clientId: testClientId,
        keys:     map[string]*rsa.PublicKey{testKid: &privateKey.PublicKey},
        log:      logger.NewLogger(),
    }
}

func signToken(t *testing.T, privateKey *rsa.PrivateKey, claims Claims) string {
    t.Helper()

    token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
    token.Header["kid"] = testKid
    signed, err := token.SignedString(privateKey)
    if err != nil {
        t.Fatalf("failed to sign token: %v", err)
    }
    return signed
}

func validIdTokenClaims() Claims {
    return Claims{
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    testIssuer,
            Subject:   "sub-1234",
            Audience:  jwt.ClaimStrings{testClientId},
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
        },
        CognitoUsername: "alice",
        TokenUse:        "id",
    }
}

func TestVerifyTokenValidIdToken(t *testing.T) {
    privateKey, verifier := newTestKeyAndVerifier(t)

    claims, err := verifier.VerifyToken(signToken(t, privateKey, validIdTokenClaims()))
    if err != nil {
        t.Fatalf("expected valid token, got %v", err)
    }
    if claims.Username() != "alice" {
        t.Errorf("expected username alice, got %s", claims.Username())
    }
}

func TestVerifyTokenValidAccessToken(t *testing.T) {
    privateKey, verifier := newTestKeyAndVerifier(t)

    accessClaims := Claims{
        RegisteredClaims: jwt.RegisteredClaims{
            Issuer:    testIssuer,
            Subject:   "sub-1234",
            ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
        },
        ClientId: testClientId,
        TokenUse: "access",
    }

    claims, err := verifier.VerifyToken(signToken(t, privateKey, accessClaims))
    if err != nil {
        t.Fatalf("expected valid token, got %v", err)
    }
    if claims.Username() != "sub-1234" {
        t.Errorf("expected username to fall back to sub, got %s", claims.Username())
    }
}

func TestVerifyTokenRejections(t *testing.T) {
    privateKey, verifier := newTestKeyAndVerifier(t)

    expired := validIdTokenClaims()
    expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))

    wrongIssuer := validIdTokenClaims()
    wrongIssuer.Issuer = "https://cognito-idp.eu-west-1.amazonaws.com/eu-west-1_otherpool"

    wrongAudience := validIdTokenClaims()
    wrongAudience.Audience = jwt.ClaimStrings{"someone-else"}

    missingSubject := validIdTokenClaims()
    missingSubject.Subject = ""

    noExpiry := validIdTokenClaims()
    noExpiry.ExpiresAt = nil

    testCases := []struct {
        name  string
        token string
    }{
        {"empty token", ""},
        {"malformed token", "not.a.jwt"},
        {"expired token", signToken(t, privateKey, expired)},
        {"wrong issuer", signToken(t, privateKey, wrongIssuer)},
        {"wrong audience", signToken(t, privateKey, wrongAudience)},
        {"missing subject", signToken(t, privateKey, missingSubject)},
        {"missing expiry", signToken(t, privateKey, noExpiry)},
    }

    for _, tc := range testCases {
        _, err := verifier.VerifyToken(tc.token)
        if _, ok := err.(*exception.UnauthorizedException); !ok {
            t.Errorf("%s: expected UnauthorizedException, got %v", tc.name, err)
        }
    }
}

func TestVerifyTokenUnknownKid(t *testing.T) {
    privateKey, verifier := newTestKeyAndVerifier(t)
    verifier.keys = map[string]*rsa.PublicKey{"other-key": &privateKey.PublicKey}

    _, err := verifier.VerifyToken(signToken(t, privateKey, validIdTokenClaims()))
    if _, ok := err.(*exception.UnauthorizedException); !ok {
        t.Errorf("expected UnauthorizedException for unknown kid, got %v", err)
    }
}

func TestFetchJwks(t *testing.T) {
    privateKey, err := rsa.GenerateKey(rand.Reader, 2048)
    if err != nil {
        t.Fatalf("failed to generate key: %v", err)
    }

    document := jwksDocument{Keys: []jwksKey{{
        Kid: testKid,
        Kty: "RSA",
        Alg: "RS256",
        Use: "sig",
        N:   base64.RawURLEncoding.EncodeToString(privateKey.PublicKey.N.Bytes()),
        E:   base64.RawURLEncoding.EncodeToString(big.NewInt(int64(privateKey.PublicKey.E)).Bytes()),
    }}}

    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        json.NewEncoder(w).Encode(document)
    }))
    defer server.Close()

    keys, err := fetchJwks(server.URL)
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    key, ok := keys[testKid]
    if !ok {
        t.Fatalf("expected key %s in result", testKid)
    }
    if key.N.Cmp(privateKey.PublicKey.N) != 0 || key.E != privateKey.PublicKey.E {
        t.Error("expected decoded key to match the original public key")
    }
}

func TestFetchJwksNoRsaKeys(t *testing.T) {
    server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        json.NewEncoder(w).Encode(jwksDocument{Keys: []jwksKey{{Kid: "ec-key", Kty: "EC"}}})
    }))
    defer server.Close()

    _, err := fetchJwks(server.URL)
    if err == nil {
        t.Error("expected error for JWKS without RSA keys, got none")
    }
}

func TestTokenFromHeaders(t *testing.T) {
    testCases := []struct {
        name     string
        headers  map[string]string
        expected string
    }{
        {"token cookie", map[string]string{"Cookie": "token=abc123"}, "abc123"},
        {"lowercase header", map[string]string{"cookie": "token=abc123"}, "abc123"},
        {"among other cookies", map[string]string{"Cookie": "session=xyz; token=abc123; theme=dark"}, "abc123"},
        {"no token cookie", map[string]string{"Cookie": "session=xyz"}, ""},
        {"no cookie header", map[string]string{"Accept": "application/json"}, ""},
        {"empty headers", map[string]string{}, ""},
    }

    for _, tc := range testCases {
        result := TokenFromHeaders(tc.headers)
        if result != tc.expected {
            t.Errorf("%s: expected %q, got %q", tc.name, tc.expected, result)
        }
    }
}
