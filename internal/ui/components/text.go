// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

// User-facing strings.
const (
	TitleText         = "Web Q&A Assistant"
	APIKeyLabel       = "OpenAI API Key:"
	APIKeyPlaceholder = "sk-..."
	APIKeyHint        = "(Required for real web search functionality)"
	InputPlaceholder  = "Ask me anything... I'll search the web for answers!"
	SubmitLabel       = "Ask"
	LoadingText       = "Searching..."
	SourcesTitle      = "Sources:"
	SourceBullet      = "📎"
	FooterText        = "This is a demo app. For real web search, you'd need to connect to a backend API."
	TimestampLayout   = "15:04:05"
	minComponentWidth = 20
	defaultWidth      = 80
)
