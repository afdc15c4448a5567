package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type config struct {
	API        apiConfig        `yaml:"api"`
	Limiter    limiterConfig    `yaml:"limiter"`
	Jaeger     jaegerConfig     `yaml:"jaeger"`
	Prometheus prometheusConfig `yaml:"prometheus"`
	Registry   registryConfig   `yaml:"registry"`
	Kafka      kafkaConfig      `yaml:"kafka"`
}

type apiConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"`
}

type limiterConfig struct {
	RPS     float64 `yaml:"rps"`
	Burst   int     `yaml:"burst"`
	Enabled bool    `yaml:"enabled"`
}

type jaegerConfig struct {
	URL     string `yaml:"url"`
	Enabled bool   `yaml:"enabled"`
}

type prometheusConfig struct {
	MetricsPort int `yaml:"metricsPort"`
}

type registryConfig struct {
	Kind    string `yaml:"kind"`
	Address string `yaml:"address"`
}

type kafkaConfig struct {
	Enabled          bool   `yaml:"enabled"`
	BootstrapServers string `yaml:"bootstrapServers"`
	GroupID          string `yaml:"groupID"`
	Topic            string `yaml:"topic"`
}

func defaultConfig() config {
	return config{
		API:      apiConfig{Port: 3000, Env: "development"},
		Limiter:  limiterConfig{RPS: 100, Burst: 100},
		Registry: registryConfig{Kind: "memory"},
		Kafka:    kafkaConfig{GroupID: "movie", Topic: "ratings"},
	}
}

// loadConfig reads a yaml config file on top of the defaults.
func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	switch cfg.Registry.Kind {
	case "memory", "consul":
	default:
		return cfg, fmt.Errorf("unknown registry kind %q", cfg.Registry.Kind)
	}
	return cfg, nil
}
