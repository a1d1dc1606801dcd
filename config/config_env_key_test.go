package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"publicData": map[string]any{
			"serviceKey": "",
			"baseURL":    "",
		},
		"geocoder": map[string]any{
			"apiKey": "",
		},
		"sync": map[string]any{
			"priceDayOffset": 1,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBLICDATA_SERVICEKEY", want: "publicData.serviceKey"},
		{envKey: "PUBLICDATA_BASEURL", want: "publicData.baseURL"},
		{envKey: "GEOCODER_APIKEY", want: "geocoder.apiKey"},
		{envKey: "SYNC_PRICEDAYOFFSET", want: "sync.priceDayOffset"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsUpstreamAndSyncSettings(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.HTTP.MaxRequestBodySize != defaultMaxRequestBodySize {
		t.Fatalf("MaxRequestBodySize = %q", cfg.HTTP.MaxRequestBodySize)
	}
	if cfg.PublicData.UserAgent != "StoreRader/1.0" {
		t.Fatalf("UserAgent = %q", cfg.PublicData.UserAgent)
	}
	if cfg.Sync.Interval != 24*time.Hour || cfg.Sync.LockTTL != cfg.Sync.Interval {
		t.Fatalf("unexpected sync defaults: %+v", cfg.Sync)
	}
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		PublicData: &PublicDataConfig{UserAgent: "custom", Timeout: time.Second},
		Sync:       &SyncConfig{Interval: time.Hour, LockTTL: time.Minute, LockKey: "k"},
	}
	applyDefaults(cfg)

	if cfg.PublicData.UserAgent != "custom" || cfg.PublicData.Timeout != time.Second {
		t.Fatalf("public data overridden: %+v", cfg.PublicData)
	}
	if cfg.Sync.LockTTL != time.Minute || cfg.Sync.LockKey != "k" {
		t.Fatalf("sync overridden: %+v", cfg.Sync)
	}
}
