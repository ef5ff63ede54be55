// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the data structures for conversations and messages.
//
// # Key Types
//
//   - Message: a single chat entry with role, content, timestamp and the
//     optional sources / error / thinking markers
//   - Conversation: an ordered, immutable snapshot of messages
//   - Role: message sender (user, assistant)
//
// Conversation values are never mutated in place. Every operation returns a
// new snapshot whose backing array is not shared with the receiver, so a
// snapshot held by the renderer stays valid while the controller moves on.
//
// # Usage
//
//	conv := model.NewConversation(model.NewAssistantMessage("greeting", "Hi!", time.Now()))
//	conv = conv.Append(model.NewUserMessage("q1", "What's the weather?", time.Now()))
//	for _, msg := range conv.Messages() {
//	    fmt.Println(msg.Role.DisplayName(), msg.Content)
//	}
package model
