// Copyright (c) Microsoft. All rights reserved.

package chat

import "strings"

// Usage reports token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// ChatResponse is the complete (non-streaming) response from a [ChatClient].
type ChatResponse struct {
	Message      Message
	ResponseID   string
	ModelID      string
	FinishReason FinishReason
	Usage        Usage
}

// Text returns the assistant text of this response.
func (r *ChatResponse) Text() string { return r.Message.Content }

// ChatResponseUpdate is a single fragment received during streaming
// from a [ChatClient].
type ChatResponseUpdate struct {
	Text         string
	Role         Role
	ResponseID   string
	ModelID      string
	FinishReason FinishReason
	Usage        Usage
}

// ChatResponseFromUpdates builds a complete [ChatResponse] by folding a
// sequence of streaming fragments. The concatenated text equals what
// the non-streaming path would return for the same upstream reply.
func ChatResponseFromUpdates(updates []ChatResponseUpdate) *ChatResponse {
	resp := &ChatResponse{}
	role := RoleAssistant
	var text strings.Builder
	for _, u := range updates {
		text.WriteString(u.Text)
		if u.Role != "" {
			role = u.Role
		}
		if u.ResponseID != "" {
			resp.ResponseID = u.ResponseID
		}
		if u.ModelID != "" {
			resp.ModelID = u.ModelID
		}
		if u.FinishReason != "" {
			resp.FinishReason = u.FinishReason
		}
		if u.Usage.TotalTokens > 0 {
			resp.Usage = u.Usage
		}
	}
	resp.Message = Message{Role: role, Content: text.String()}
	return resp
}
