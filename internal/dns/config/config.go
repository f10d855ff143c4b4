// Package config loads resolver settings from ROOTWALK_-prefixed
// environment variables, applies defaults, and validates the result.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// AppConfig holds configuration values parsed from environment variables.
type AppConfig struct {
	// RootServer is the name server address the delegation walk starts
	// from, conventionally a root server.
	RootServer string `koanf:"root_server" validate:"required,ip"`

	// Port is the destination port queries are sent to.
	Port int `koanf:"port" validate:"required,gte=1,lte=65535"`

	// QueryType selects the address family asked for: "A" or "AAAA".
	QueryType string `koanf:"query_type" validate:"required,oneof=A AAAA"`

	// TimeoutSeconds bounds the whole delegation walk.
	TimeoutSeconds int `koanf:"timeout_seconds" validate:"required,gte=1"`

	// HopTimeoutSeconds bounds a single query/response exchange.
	HopTimeoutSeconds int `koanf:"hop_timeout_seconds" validate:"required,gte=1"`

	// MaxHops caps how many delegations are followed before giving up.
	MaxHops int `koanf:"max_hops" validate:"required,gte=1,lte=64"`

	// Env is the runtime environment, either "dev" or "prod".
	Env string `koanf:"env" validate:"required,oneof=dev prod"`

	// LogLevel controls log verbosity: "debug", "info", "warn", or "error".
	LogLevel string `koanf:"log_level" validate:"required,oneof=debug info warn error"`
}

// defaults are the settings used when no environment overrides are set.
// 198.41.0.4 is a.root-servers.net.
var defaults = AppConfig{
	RootServer:        "198.41.0.4",
	Port:              53,
	QueryType:         "A",
	TimeoutSeconds:    30,
	HopTimeoutSeconds: 5,
	MaxHops:           16,
	Env:               "prod",
	LogLevel:          "info",
}

// envLoader loads environment variables with the prefix "ROOTWALK_",
// lowercasing keys and stripping the prefix. Swappable in tests.
var envLoader = func(k *koanf.Koanf) error {
	return k.Load(env.Provider(".", env.Opt{
		Prefix: "ROOTWALK_",
		TransformFunc: func(key, value string) (string, any) {
			return strings.ToLower(strings.TrimPrefix(key, "ROOTWALK_")), strings.TrimSpace(value)
		},
	}), nil)
}

// Load parses environment variables and returns an AppConfig instance.
// It applies default values and runs validation automatically.
func Load() (*AppConfig, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaults, "koanf"), nil); err != nil {
		return nil, fmt.Errorf("error loading default config: %w", err)
	}

	if err := envLoader(k); err != nil {
		return nil, fmt.Errorf("error loading env: %w", err)
	}

	var cfg AppConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(&cfg); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	return &cfg, nil
}
