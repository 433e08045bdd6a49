package config

import (
	"encoding/base64"
	"fmt"
)

type Config struct {
	Database            DatabaseConfig
	Security            SecurityConfig
	TechnicalParameters TechnicalParameters
	BusinessParameters  BusinessParameters
	Monitoring          MonitoringConfig
	S3Storage           S3Config
	Olric               OlricConfig
	Jobs                JobsConfig
	Logging             LoggingConfig
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     int    `validate:"required"`
	Name     string `validate:"required"`
	Username string `validate:"required"`
	Password string `validate:"required" sensitive:"true"`
	PoolSize int    `validate:"gte=0"`
}

type SecurityConfig struct {
	ProductionMode          bool
	JwtSecret               Base64DecodedString `validate:"required,min=16" sensitive:"true"`
	AccessTokenDurationSec  int                 `validate:"gt=600"`
	TokenRevocationCacheSec int                 `validate:"gtfield=AccessTokenDurationSec"`
	AllowRegistration       bool
}

type TechnicalParameters struct {
	InstanceId     string
	BasePath       string
	BackendVersion string
	ListenAddress  string `validate:"required"`
	ExternalUrl    string `validate:"required,url"`
}

type BusinessParameters struct {
	FeedItemsLimit        int   `validate:"gt=0,lte=1000"`
	PackageLogLimit       int   `validate:"gt=0,lte=1000"`
	WorldFileSizeLimitKb  int64 `validate:"gt=0,lte=10240"`
	WorldScanMaxEntries   int   `validate:"gt=0,lte=5000"`
	IndexStatsCacheTTLSec int   `validate:"gte=0"`
	RecentVersionsOnIndex int   `validate:"gte=0,lte=100"`
}

type MonitoringConfig struct {
	Enabled bool
}

type S3Config struct {
	Enabled    bool
	Url        string `validate:"required_if=Enabled true"`
	Username   string `validate:"required_if=Enabled true"`
	Password   string `validate:"required_if=Enabled true" sensitive:"true"`
	Crt        string
	BucketName string `validate:"required_if=Enabled true"`
}

type OlricConfig struct {
	DiscoveryMode string `validate:"omitempty,oneof=local lan"`
	ReplicaCount  int
	Namespace     string
}

type JobsConfig struct {
	CountersSchedule string
}

type LoggingConfig struct {
	Level      string `validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	File       string
	MaxSizeMb  int
	MaxBackups int
	MaxAgeDays int
}

type Base64DecodedString []byte

func (d *Base64DecodedString) UnmarshalText(text []byte) error {
	decoded, err := base64.StdEncoding.DecodeString(string(text))
	if err != nil {
		return fmt.Errorf("can't decode base64 string. Error - %w", err)
	}
	*d = decoded
	return nil
}
