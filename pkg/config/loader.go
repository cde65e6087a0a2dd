package config

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	env "github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// envKeyMap maps environment variables to configuration paths. PORT is kept
// as a shorthand for the listening port so deployments only need to set one
// variable.
var envKeyMap = map[string]string{
	"SERVER_HOST":         "server.host",
	"SERVER_PORT":         "server.port",
	"SERVER_TIMEOUT":      "server.timeout",
	"RUNTIME_ENVIRONMENT": "runtime.environment",
	"RUNTIME_LOG_LEVEL":   "runtime.log_level",
	"PORT":                "server.port",
}

// Load builds the configuration from defaults and environment overrides,
// validating the result.
func Load(_ context.Context) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}
	if err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			if path, ok := envKeyMap[key]; ok {
				return path, value
			}
			// Drop unrelated environment variables.
			return "", nil
		},
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	cfg := &Config{}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			TagName:          "koanf",
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		},
	}); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
