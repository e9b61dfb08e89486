package auth

import (
    "crypto/rsa"
    "encoding/base64"
    "encoding/json"
    "fmt"
    "math/big"
    "net/http"

    "github.com/cenkalti/backoff/v4"
)

const jwksFetchMaxRetries = 3

type jwksDocument struct {
    Keys []jwksKey `json:"keys"`
}

type jwksKey struct {
    Kid string `json:"kid"`
    Kty string `json:"kty"`
    Alg string `json:"alg"`
    Use string `json:"use"`
    N   string `json:"n"`
    E   string `json:"e"`
}

// fetchJwks downloads the pool's signing keys, retrying transient failures
// with exponential backoff. Called once per verifier, at bootstrap.
func fetchJwks(url string) (map[string]*rsa.PublicKey, error) {
    var document jwksDocument
    operation := func() error {
        resp, err := http.Get(url)
        if err != nil {
            return err
        }
        defer resp.Body.Close()

        if resp.StatusCode != http.StatusOK {
            return fmt.Errorf("JWKS endpoint returned status %d", resp.StatusCode)
        }
        return json.NewDecoder(resp.Body).Decode(&document)
    }

    err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), jwksFetchMaxRetries))
    if err != nil {
        return nil, err
    }

    keys := make(map[string]*rsa.PublicKey, len(document.Keys))
    for _, key := range document.Keys {
        if key.Kty != "RSA" {
            continue
        }
        publicKey, err := key.toPublicKey()
        if err != nil {
            return nil, fmt.Errorf("malformed JWKS key %s: %v", key.Kid, err)
        }
        keys[key.Kid] = publicKey
    }

    if len(keys) == 0 {
        return nil, fmt.Errorf("JWKS document from %s contains no RSA keys", url)
    }

    return keys, nil
}

func (k jwksKey) toPublicKey() (*rsa.PublicKey, error) {
    nBytes, err := base64.RawURLEncoding.DecodeString(k.N)
    if err != nil {
        return nil, err
    }
    eBytes, err := base64.RawURLEncoding.DecodeString(k.E)
    if err != nil {
        return nil, err
    }

    e := 0
    for _, b := range eBytes {
        e = e<<8 | int(b)
    }

    return &rsa.PublicKey{
        N: new(big.Int).SetBytes(nBytes),
        E: e,
    }, nil
}
