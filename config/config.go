package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type SchedulerConfig struct {
	Port                  int
	RoundRobinTimeQuantum int
	RoundRobinSeed        string
	LogLevel              string
	LogFormat             string
	MetricsEnabled        bool
}

// LoadSchedulerConfig reads configuration from path, or from config.yaml in
// the working directory when path is empty. A missing default file is not an
// error; every key has a default and can be overridden by an env var named
// SCHEDULER_ plus the upper-cased key with dots replaced by underscores:
//
//	port                               SCHEDULER_PORT
//	scheduler.round_robin.time_quantum SCHEDULER_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM
//	scheduler.round_robin.seed         SCHEDULER_SCHEDULER_ROUND_ROBIN_SEED
//	log.level                          SCHEDULER_LOG_LEVEL
//	log.format                         SCHEDULER_LOG_FORMAT
//	metrics.enabled                    SCHEDULER_METRICS_ENABLED
func LoadSchedulerConfig(path string) (*SchedulerConfig, error) {
	v := viper.New()
	v.SetDefault("port", 9095)
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("scheduler.round_robin.seed", "first")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("metrics.enabled", true)

	v.SetEnvPrefix("scheduler")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SchedulerConfig{
		Port:                  v.GetInt("port"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		RoundRobinSeed:        v.GetString("scheduler.round_robin.seed"),
		LogLevel:              v.GetString("log.level"),
		LogFormat:             v.GetString("log.format"),
		MetricsEnabled:        v.GetBool("metrics.enabled"),
	}
	if config.RoundRobinTimeQuantum <= 0 {
		return nil, fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", config.RoundRobinTimeQuantum)
	}
	return config, nil
}
