package config

import (
    "testing"

    "github.com/veerajagannadham/Review-app/src/pkg/util"
)

func TestNewConfigDefaults(t *testing.T) {
    t.Setenv(util.StageEnvKey, "")
    t.Setenv(util.RegionEnvKey, "")
    t.Setenv(util.TableNameEnvKey, "")
    t.Setenv(util.TranslateRegionEnvKey, "")

    cfg, err := NewConfig()
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    if cfg.Stage != "prod" {
        t.Errorf("expected default stage prod, got %s", cfg.Stage)
    }
    if cfg.Region != util.DefaultRegion {
        t.Errorf("expected default region %s, got %s", util.DefaultRegion, cfg.Region)
    }
    if cfg.ReviewsTableName != util.DefaultTableName {
        t.Errorf("expected default table %s, got %s", util.DefaultTableName, cfg.ReviewsTableName)
    }
    if cfg.TranslateRegion != cfg.Region {
        t.Errorf("expected translate region to fall back to %s, got %s", cfg.Region, cfg.TranslateRegion)
    }
}

func TestNewConfigFromEnv(t *testing.T) {
    t.Setenv(util.StageEnvKey, "beta")
    t.Setenv(util.RegionEnvKey, "us-east-1")
    t.Setenv(util.TableNameEnvKey, "ReviewsTableBeta")
    t.Setenv(util.UserPoolIdEnvKey, "us-east-1_abc123")
    t.Setenv(util.ClientIdEnvKey, "client123")
    t.Setenv(util.TranslateRegionEnvKey, "us-west-2")

    cfg, err := NewConfig()
    if err != nil {
        t.Fatalf("expected no error, got %v", err)
    }
    if cfg.Stage != "beta" {
        t.Errorf("expected stage beta, got %s", cfg.Stage)
    }
    if cfg.ReviewsTableName != "ReviewsTableBeta" {
        t.Errorf("expected table ReviewsTableBeta, got %s", cfg.ReviewsTableName)
    }
    if cfg.UserPoolId != "us-east-1_abc123" {
        t.Errorf("expected user pool id us-east-1_abc123, got %s", cfg.UserPoolId)
    }
    if cfg.TranslateRegion != "us-west-2" {
        t.Errorf("expected translate region us-west-2, got %s", cfg.TranslateRegion)
    }
}
