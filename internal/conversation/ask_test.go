// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package conversation_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/jeranaias/webqa/internal/conversation"
	"github.com/jeranaias/webqa/internal/search"
	"github.com/jeranaias/webqa/internal/search/mocks"
)

func TestAsk_MockResolver(t *testing.T) {
	tests := []struct {
		query    string
		contains string
	}{
		{"What's the weather today?", "partly cloudy skies"},
		{"tell me tech news", "reputable news sources"},
		{"quantum computing", `"quantum computing"`},
	}

	p := search.NewMockResolver(search.WithDelay(0))
	for _, tc := range tests {
		t.Run(tc.query, func(t *testing.T) {
			s, err := conversation.Ask(context.Background(), p, conversation.NewState(time.Now()), tc.query)
			require.NoError(t, err)

			assert.Equal(t, 3, s.Conversation.Len())
			assert.False(t, s.Loading)
			assert.False(t, s.Conversation.HasThinking())

			answer, ok := s.LastAnswer()
			require.True(t, ok)
			assert.Contains(t, answer.Content, tc.contains)
			assert.Len(t, answer.Sources, 3)
		})
	}
}

func TestAsk_BlankQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().Resolve(gomock.Any(), gomock.Any()).Times(0)

	s, err := conversation.Ask(context.Background(), provider, conversation.NewState(time.Now()), "   ")
	require.NoError(t, err)
	assert.Equal(t, 1, s.Conversation.Len())
}

func TestAsk_Failure(t *testing.T) {
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockProvider(ctrl)
	provider.EXPECT().
		Resolve(gomock.Any(), "weather").
		Return(search.Result{}, search.Fail("weather", errors.New("invalid API key")))

	s, err := conversation.Ask(context.Background(), provider, conversation.NewState(time.Now()), "weather")
	assert.ErrorIs(t, err, search.ErrSearchFailure)

	last, ok := s.Conversation.Last()
	require.True(t, ok)
	assert.True(t, last.IsError)
	assert.Equal(t, conversation.ErrorText, last.Content)
	assert.False(t, s.Loading)
	assert.False(t, s.Conversation.HasThinking())
}

func TestAsk_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s, err := conversation.Ask(ctx, search.NewMockResolver(), conversation.NewState(time.Now()), "weather")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, s.Conversation.Len(), "user message stays, no answer")
	assert.False(t, s.Loading)
}
