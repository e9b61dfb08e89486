package config

import (
    "github.com/go-playground/validator/v10"
    "github.com/veerajagannadham/Review-app/src/pkg/model/enum"
    "github.com/veerajagannadham/Review-app/src/pkg/util"
    "os"
)

// Config carries all externally injected settings. It is resolved once in each
// handler's bootstrap and threaded explicitly into constructors; nothing below
// the handler layer reads the environment.
type Config struct {
    Stage            string `validate:"required"`
    Region           string `validate:"required"`
    ReviewsTableName string `validate:"required"`
    UserPoolId       string
    UserPoolClientId string
    TranslateRegion  string `validate:"required"`
}

func NewConfig() (Config, error) {
    cfg := Config{
        Stage:            getEnvOrDefault(util.StageEnvKey, enum.StageProd.String()),
        Region:           getEnvOrDefault(util.RegionEnvKey, util.DefaultRegion),
        ReviewsTableName: getEnvOrDefault(util.TableNameEnvKey, util.DefaultTableName),
        UserPoolId:       os.Getenv(util.UserPoolIdEnvKey),
        UserPoolClientId: os.Getenv(util.ClientIdEnvKey),
        TranslateRegion:  os.Getenv(util.TranslateRegionEnvKey),
    }
    if util.IsEmptyString(cfg.TranslateRegion) {
        cfg.TranslateRegion = cfg.Region
    }

    err := validator.New().Struct(cfg)
    if err != nil {
        return Config{}, err
    }

    return cfg, nil
}

func getEnvOrDefault(key string, defaultValue string) string {
    value := os.Getenv(key)
    if util.IsEmptyString(value) {
        return defaultValue
    }
    return value
}
