// Copyright (c) Microsoft. All rights reserved.

package chat

import "context"

// ChatClient is the transport interface to a chat-completions backend.
// Exactly one request is issued per call; no retries are performed and
// any failure is surfaced to the caller immediately.
type ChatClient interface {
	// Response sends the conversation and blocks until the complete
	// assistant reply is available.
	Response(ctx context.Context, messages []Message) (*ChatResponse, error)

	// StreamResponse sends the conversation and returns a lazy stream
	// of incremental fragments. If the connection drops mid-stream,
	// fragments already yielded remain valid and the error is reported
	// by the stream at the point of failure.
	StreamResponse(ctx context.Context, messages []Message) (*ResponseStream[ChatResponseUpdate], error)
}
