// Copyright (c) Microsoft. All rights reserved.

package chat

import (
	"context"
	"log/slog"
	"time"
)

// ChatHandler is the function signature for processing a chat request.
type ChatHandler func(ctx context.Context, messages []Message) (*ChatResponse, error)

// ChatMiddleware wraps a [ChatHandler] to add cross-cutting behavior.
// Middleware should call next to continue the chain, or return early to
// short-circuit.
type ChatMiddleware func(next ChatHandler) ChatHandler

// LoggingMiddleware returns a [ChatMiddleware] that logs chat requests
// using slog.
func LoggingMiddleware(logger *slog.Logger) ChatMiddleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next ChatHandler) ChatHandler {
		return func(ctx context.Context, messages []Message) (*ChatResponse, error) {
			start := time.Now()
			logger.DebugContext(ctx, "chat request started",
				"message_count", len(messages),
			)

			resp, err := next(ctx, messages)

			duration := time.Since(start)
			if err != nil {
				logger.ErrorContext(ctx, "chat request failed",
					"duration", duration,
					"error", err,
				)
				return nil, err
			}

			logger.DebugContext(ctx, "chat request completed",
				"duration", duration,
				"model", resp.ModelID,
				"input_tokens", resp.Usage.InputTokens,
				"output_tokens", resp.Usage.OutputTokens,
			)
			return resp, nil
		}
	}
}
