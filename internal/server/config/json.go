package config

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dmitrijs2005/authkeeper/internal/flagx"
	"github.com/dmitrijs2005/authkeeper/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON unmarshalling.
// It uses timex.Duration for interval fields, which allows parsing both
// string values such as "1s" and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	MetricsAddr           string         `json:"metrics_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	LogLevel              string         `json:"log_level"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	TokenBytes            int            `json:"token_bytes"`
	BcryptCost            int            `json:"bcrypt_cost"`
	CleanupInterval       timex.Duration `json:"cleanup_interval"`
	NotifyTimeout         timex.Duration `json:"notify_timeout"`
	Notifier              string         `json:"notifier"`
	MailFrom              string         `json:"mail_from"`
	FrontendURL           string         `json:"frontend_url"`
	AllowedOrigins        []string       `json:"allowed_origins"`
	S3RootUser            string         `json:"s3_root_user"`
	S3RootPassword        string         `json:"s3_root_password"`
	S3Bucket              string         `json:"s3_bucket"`
	S3Region              string         `json:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint"`
}

func toJson(c *Config) *JsonConfig {
	return &JsonConfig{
		EndpointAddrGRPC:      c.EndpointAddrGRPC,
		MetricsAddr:           c.MetricsAddr,
		DatabaseDSN:           c.DatabaseDSN,
		LogLevel:              c.LogLevel,
		TokenValidityDuration: timex.Duration{Duration: c.TokenValidityDuration},
		TokenBytes:            c.TokenBytes,
		BcryptCost:            c.BcryptCost,
		CleanupInterval:       timex.Duration{Duration: c.CleanupInterval},
		NotifyTimeout:         timex.Duration{Duration: c.NotifyTimeout},
		Notifier:              c.Notifier,
		MailFrom:              c.MailFrom,
		FrontendURL:           c.FrontendURL,
		AllowedOrigins:        c.AllowedOrigins,
		S3RootUser:            c.S3RootUser,
		S3RootPassword:        c.S3RootPassword,
		S3Bucket:              c.S3Bucket,
		S3Region:              c.S3Region,
		S3BaseEndpoint:        c.S3BaseEndpoint,
	}
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flag. Keys missing from the file keep their current value.
func parseJson(config *Config, args []string) error {
	jsonConfigFile := flagx.ConfigFileFlag(args)

	// nothing to load
	if jsonConfigFile == "" {
		return nil
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	c := toJson(config)
	if err := json.Unmarshal(file, c); err != nil {
		return fmt.Errorf("parse config file %s: %w", jsonConfigFile, err)
	}

	config.EndpointAddrGRPC = c.EndpointAddrGRPC
	config.MetricsAddr = c.MetricsAddr
	config.DatabaseDSN = c.DatabaseDSN
	config.LogLevel = c.LogLevel
	config.TokenValidityDuration = c.TokenValidityDuration.Duration
	config.TokenBytes = c.TokenBytes
	config.BcryptCost = c.BcryptCost
	config.CleanupInterval = c.CleanupInterval.Duration
	config.NotifyTimeout = c.NotifyTimeout.Duration
	config.Notifier = c.Notifier
	config.MailFrom = c.MailFrom
	config.FrontendURL = c.FrontendURL
	config.AllowedOrigins = c.AllowedOrigins
	config.S3RootUser = c.S3RootUser
	config.S3RootPassword = c.S3RootPassword
	config.S3Bucket = c.S3Bucket
	config.S3Region = c.S3Region
	config.S3BaseEndpoint = c.S3BaseEndpoint
	return nil
}
