// Copyright (c) Microsoft. All rights reserved.

package config_test

import (
	"errors"
	"testing"

	"github.com/jochenvw/azchat/chat"
	"github.com/jochenvw/azchat/config"
)

// clearEnv blanks every variable Load reads so ambient shell settings
// cannot leak into tests.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_DEPLOYMENT",
		"OPENAI_MODEL", "OPENAI_ORG", "OPENAI_SYSTEM_PROMPT",
		"AZURE_AD_AUTH", "ASSISTANT_NAME", "USER_NAME",
		"NO_COLOR", "AZCHAT_COLOR", "AZCHAT_USER_COLOR",
		"AZCHAT_ASSISTANT_COLOR", "AZCHAT_LOG_FILE",
		"AZCHAT_TELEMETRY", "DEBUG",
	} {
		t.Setenv(name, "")
	}
}

func validEnv(t *testing.T) {
	t.Helper()
	clearEnv(t)
	t.Setenv("OPENAI_BASE_URL", "https://api.example.com/v1")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
}

func TestLoad_Defaults(t *testing.T) {
	validEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Model != "gpt-4o" {
		t.Errorf("Model = %q", cfg.Model)
	}
	if cfg.Azure {
		t.Error("Azure should be false without a deployment id")
	}
	if cfg.AssistantName != "Assistant" {
		t.Errorf("AssistantName = %q", cfg.AssistantName)
	}
	if cfg.UserName != "You" {
		t.Errorf("UserName = %q", cfg.UserName)
	}
}

func TestLoad_DeploymentWinsOverModel(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_DEPLOYMENT", "azure-deploy")
	t.Setenv("OPENAI_MODEL", "ignored-model")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "azure-deploy" {
		t.Errorf("Model = %q, want azure-deploy", cfg.Model)
	}
	if !cfg.Azure {
		t.Error("Azure should be true when the deployment id is used")
	}
}

func TestLoad_MissingModelAndDeployment(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_MODEL", "")

	_, err := config.Load()
	if !errors.Is(err, chat.ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}
}

func TestLoad_MissingCredential(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := config.Load()
	if !errors.Is(err, chat.ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}
}

func TestLoad_AzureADAllowsMissingKey(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("AZURE_AD_AUTH", "1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.AzureAD {
		t.Error("AzureAD should be true")
	}
}

func TestLoad_MissingBaseURL(t *testing.T) {
	validEnv(t)
	t.Setenv("OPENAI_BASE_URL", "")

	_, err := config.Load()
	if !errors.Is(err, chat.ErrConfig) {
		t.Errorf("error = %v, want ErrConfig", err)
	}
}

func TestLoad_ColorToggles(t *testing.T) {
	validEnv(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if !cfg.Color {
		t.Error("Color should default to enabled")
	}

	t.Setenv("AZCHAT_COLOR", "0")
	cfg, err = config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color {
		t.Error("AZCHAT_COLOR=0 should disable color")
	}

	t.Setenv("AZCHAT_COLOR", "1")
	t.Setenv("NO_COLOR", "1")
	cfg, err = config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Color {
		t.Error("NO_COLOR should disable color")
	}
}

func TestLoad_Names(t *testing.T) {
	validEnv(t)
	t.Setenv("ASSISTANT_NAME", "HAL")
	t.Setenv("USER_NAME", "Dave")
	t.Setenv("OPENAI_SYSTEM_PROMPT", "be brief")
	t.Setenv("OPENAI_ORG", "org-1")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.AssistantName != "HAL" || cfg.UserName != "Dave" {
		t.Errorf("names = %q/%q", cfg.AssistantName, cfg.UserName)
	}
	if cfg.SystemPrompt != "be brief" {
		t.Errorf("SystemPrompt = %q", cfg.SystemPrompt)
	}
	if cfg.Organization != "org-1" {
		t.Errorf("Organization = %q", cfg.Organization)
	}
}
