// Copyright (c) Microsoft. All rights reserved.

// Package chat provides the core types for a terminal chat client
// backed by a chat-completions style HTTP API.
//
// # Quick Start
//
// Create a [ChatClient] (e.g., from the openai package), seed a
// [Session], and exchange turns:
//
//	client := openai.New(os.Getenv("OPENAI_API_KEY"), openai.WithModel("gpt-4o"))
//
//	session := chat.NewSession(chat.WithSystemPrompt("You are helpful."))
//	session.Append(chat.NewUserMessage("Hello!"))
//
//	resp, err := client.Response(ctx, session.Snapshot())
//	if err == nil {
//	    session.Append(resp.Message)
//	}
//
// # Architecture
//
// The package is organized around these key abstractions:
//
//   - [Message]: one immutable role-tagged conversation turn.
//   - [Session]: the ordered, append-only conversation history.
//   - [ChatClient]: interface for chat-completions backends
//     (implemented by provider packages).
//   - [ResponseStream]: generic pull-based iterator for streaming
//     responses.
//   - [ChatMiddleware]: cross-cutting behavior around chat requests.
//
// # Streaming
//
// Streaming responses arrive as [ChatResponseUpdate] fragments. Drain
// the stream with Next and fold the fragments with
// [ChatResponseFromUpdates]; the folded text is identical to what the
// non-streaming path would have returned for the same upstream reply.
package chat
