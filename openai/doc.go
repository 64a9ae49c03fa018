// Copyright (c) Microsoft. All rights reserved.

// Package openai provides a [chat.ChatClient] implementation backed by
// the OpenAI Chat Completions API, including Azure OpenAI and other
// OpenAI-compatible endpoints.
//
// Create a client with [New]:
//
//	client := openai.New(apiKey,
//	    openai.WithBaseURL(os.Getenv("OPENAI_BASE_URL")),
//	    openai.WithModel("gpt-4o"),
//	)
//
// Azure endpoints authenticate either with the "api-key" header
// ([WithHeaders]) or with an Azure AD token credential
// ([WithAzureCredential]).
//
// The client performs exactly one HTTP request per call. Failures are
// surfaced immediately as errors wrapping the chat package's transport
// sentinels; no retries are attempted.
package openai
