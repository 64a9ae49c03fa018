// Copyright (c) Microsoft. All rights reserved.

// Package config loads the client configuration from the process
// environment, optionally seeded from a .env file.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/jochenvw/azchat/chat"
)

// Config is the immutable runtime configuration. It is built once at
// startup and passed by reference to the components that need it.
type Config struct {
	BaseURL      string
	APIKey       string
	Organization string

	// Model holds the Azure deployment id or the model id; the
	// deployment id wins when both are set.
	Model string
	// Azure is true when the deployment id selected the model.
	Azure bool
	// AzureAD selects DefaultAzureCredential auth instead of an API key.
	AzureAD bool

	SystemPrompt  string
	UserName      string
	AssistantName string

	// Color is false when styling is disabled (NO_COLOR or AZCHAT_COLOR).
	Color bool
	// UserColor and AssistantColor are optional style-name overrides.
	UserColor      string
	AssistantColor string

	LogFile   string
	Telemetry bool
	Debug     bool
}

// Load reads a .env file if present, then the process environment, and
// validates the result. It never returns a partially populated
// configuration: on any problem the error wraps [chat.ErrConfig] and
// the Config is nil.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		BaseURL:        os.Getenv("OPENAI_BASE_URL"),
		APIKey:         os.Getenv("OPENAI_API_KEY"),
		Organization:   os.Getenv("OPENAI_ORG"),
		AzureAD:        boolEnv("AZURE_AD_AUTH"),
		SystemPrompt:   os.Getenv("OPENAI_SYSTEM_PROMPT"),
		UserName:       envDefault("USER_NAME", "You"),
		AssistantName:  envDefault("ASSISTANT_NAME", "Assistant"),
		UserColor:      os.Getenv("AZCHAT_USER_COLOR"),
		AssistantColor: os.Getenv("AZCHAT_ASSISTANT_COLOR"),
		LogFile:        os.Getenv("AZCHAT_LOG_FILE"),
		Telemetry:      boolEnv("AZCHAT_TELEMETRY"),
		Debug:          os.Getenv("DEBUG") != "",
	}

	if cfg.BaseURL == "" {
		return nil, missing("OPENAI_BASE_URL")
	}
	if cfg.APIKey == "" && !cfg.AzureAD {
		return nil, missing("OPENAI_API_KEY")
	}

	if deployment := os.Getenv("OPENAI_DEPLOYMENT"); deployment != "" {
		cfg.Model = deployment
		cfg.Azure = true
	} else if model := os.Getenv("OPENAI_MODEL"); model != "" {
		cfg.Model = model
	} else {
		return nil, fmt.Errorf("%w: missing OPENAI_DEPLOYMENT (Azure) or OPENAI_MODEL environment variable", chat.ErrConfig)
	}

	// NO_COLOR (https://no-color.org) wins over everything; AZCHAT_COLOR
	// can also turn styling off explicitly.
	cfg.Color = true
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = false
	}
	if v := os.Getenv("AZCHAT_COLOR"); isFalse(v) {
		cfg.Color = false
	}

	return cfg, nil
}

func missing(name string) error {
	return fmt.Errorf("%w: missing required environment variable: %s", chat.ErrConfig, name)
}

func envDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func boolEnv(name string) bool {
	v := os.Getenv(name)
	return v != "" && !isFalse(v)
}

func isFalse(v string) bool {
	switch strings.ToLower(v) {
	case "0", "false", "no", "off":
		return true
	}
	return false
}
