// Copyright (c) Microsoft. All rights reserved.

// Command azchat is a terminal chat client for Azure OpenAI and
// OpenAI-compatible endpoints.
//
// One-shot:
//
//	azchat --prompt "Your question"
//
// Interactive (default):
//
//	azchat
//
// Configuration comes from environment variables, optionally loaded
// from a .env file: OPENAI_API_KEY, OPENAI_BASE_URL, OPENAI_DEPLOYMENT
// (Azure) or OPENAI_MODEL, and optional OPENAI_ORG,
// OPENAI_SYSTEM_PROMPT, ASSISTANT_NAME, AZURE_AD_AUTH.
//
// Interactive commands: /exit, /quit, /clear.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"

	"github.com/jochenvw/azchat/chat"
	"github.com/jochenvw/azchat/cli"
	"github.com/jochenvw/azchat/config"
	"github.com/jochenvw/azchat/openai"
	"github.com/jochenvw/azchat/telemetry"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("azchat", flag.ExitOnError)
	prompt := fs.String("prompt", "", "one-shot prompt; if omitted, starts interactive chat")
	noStream := fs.Bool("no-stream", false, "disable streaming output")
	mode := fs.String("mode", "chat", "run mode: chat or agents")
	_ = fs.Parse(args)

	switch *mode {
	case "chat":
	case "agents":
		return cli.RunAgentsMode(os.Stderr)
	default:
		fmt.Fprintf(os.Stderr, "unknown mode %q (expected chat or agents)\n", *mode)
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	logger, err := telemetry.NewLogger(cfg.LogFile, cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tel, cleanup, err := telemetry.Init(ctx, cfg.Telemetry)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	defer cleanup()

	client, err := newChatClient(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	app := &cli.App{
		Config:    cfg,
		Client:    client,
		Telemetry: tel,
		In:        os.Stdin,
		Out:       os.Stdout,
		Err:       os.Stderr,
	}

	streaming := !*noStream

	if *prompt != "" {
		if err := app.OneShot(ctx, *prompt, streaming); err != nil {
			fmt.Fprintf(os.Stderr, "error (%s): %v\n", chat.Category(err), err)
			if errors.Is(err, chat.ErrConfig) {
				return 2
			}
			return 1
		}
		return 0
	}

	if err := app.Interactive(ctx, streaming); err != nil {
		fmt.Fprintf(os.Stderr, "error (%s): %v\n", chat.Category(err), err)
		return 1
	}
	return 0
}

// newChatClient builds the OpenAI-compatible client from configuration:
// Azure deployments use the api-key header (or Azure AD tokens when
// AZURE_AD_AUTH is set); everything else uses Bearer auth.
func newChatClient(cfg *config.Config) (*openai.Client, error) {
	opts := []openai.Option{
		openai.WithBaseURL(cfg.BaseURL),
		openai.WithModel(cfg.Model),
		openai.WithChatMiddleware(chat.LoggingMiddleware(slog.Default())),
	}

	if cfg.Organization != "" {
		opts = append(opts, openai.WithOrganization(cfg.Organization))
	}

	switch {
	case cfg.AzureAD:
		cred, err := azidentity.NewDefaultAzureCredential(nil)
		if err != nil {
			return nil, fmt.Errorf("%w: create azure credential: %v", chat.ErrConfig, err)
		}
		opts = append(opts, openai.WithAzureCredential(cred))
	case cfg.Azure:
		opts = append(opts, openai.WithHeaders(map[string]string{
			"api-key": cfg.APIKey,
		}))
	}

	return openai.New(cfg.APIKey, opts...), nil
}
