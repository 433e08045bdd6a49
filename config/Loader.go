package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

const (
	configFileName = "euscanwww"
	configFileType = "yaml"
	envPrefix      = "EUSCAN"
)

// LoadConfig reads euscanwww.yaml from the given directories and applies
// EUSCAN_* environment overrides, e.g. EUSCAN_DATABASE_HOST.
// A missing config file is not an error.
func LoadConfig(configPaths ...string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	for _, path := range configPaths {
		v.AddConfigPath(path)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		log.Info("Config file is not found, using defaults and environment")
	} else {
		log.Infof("Config file %s is loaded", v.ConfigFileUsed())
	}

	cfg := new(Config)
	decodeHook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	))
	if err := v.Unmarshal(cfg, decodeHook); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "euscan")
	v.SetDefault("database.username", "euscan")
	v.SetDefault("database.password", "")
	v.SetDefault("database.poolSize", 20)

	v.SetDefault("security.productionMode", false)
	v.SetDefault("security.jwtSecret", "")
	v.SetDefault("security.accessTokenDurationSec", 1209600)
	v.SetDefault("security.tokenRevocationCacheSec", 1209601)
	v.SetDefault("security.allowRegistration", true)

	v.SetDefault("technicalParameters.instanceId", "")
	v.SetDefault("technicalParameters.basePath", ".")
	v.SetDefault("technicalParameters.backendVersion", "unknown")
	v.SetDefault("technicalParameters.listenAddress", ":8080")
	v.SetDefault("technicalParameters.externalUrl", "http://localhost:8080")

	v.SetDefault("businessParameters.feedItemsLimit", 100)
	v.SetDefault("businessParameters.packageLogLimit", 20)
	v.SetDefault("businessParameters.worldFileSizeLimitKb", 512)
	v.SetDefault("businessParameters.worldScanMaxEntries", 2000)
	v.SetDefault("businessParameters.indexStatsCacheTTLSec", 300)
	v.SetDefault("businessParameters.recentVersionsOnIndex", 10)

	v.SetDefault("monitoring.enabled", true)

	v.SetDefault("s3Storage.enabled", false)
	v.SetDefault("s3Storage.url", "")
	v.SetDefault("s3Storage.username", "")
	v.SetDefault("s3Storage.password", "")
	v.SetDefault("s3Storage.crt", "")
	v.SetDefault("s3Storage.bucketName", "")

	v.SetDefault("olric.discoveryMode", "local")
	v.SetDefault("olric.replicaCount", 1)
	v.SetDefault("olric.namespace", "")

	v.SetDefault("jobs.countersSchedule", "0 */6 * * *")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "")
	v.SetDefault("logging.maxSizeMb", 10)
	v.SetDefault("logging.maxBackups", 5)
	v.SetDefault("logging.maxAgeDays", 28)
}
