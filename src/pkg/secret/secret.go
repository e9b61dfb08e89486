package secret

import (
    "encoding/json"

    "github.com/aws/aws-secretsmanager-caching-go/secretcache"
    "github.com/veerajagannadham/Review-app/src/pkg/secret/secretModel"
)

const secretName = "ReviewApp/secrets"

func GetSecrets() (secretModel.Secrets, error) {
    var secrets secretModel.Secrets

    secretCache, err := secretcache.New()
    if err != nil {
        return secrets, err
    }
    result, err := secretCache.GetSecretString(secretName)
    if err != nil {
        return secrets, err
    }

    err = json.Unmarshal([]byte(result), &secrets)
    if err != nil {
        return secrets, err
    }
    return secrets, nil
}
