// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/habitica-actions/internal/clients/habitica"
	habiticamock "github.com/KirkDiggler/habitica-actions/internal/clients/habitica/mock"
)

// ExpectUser sets up a single user fetch returning user
func ExpectUser(ctx context.Context, mockClient *habiticamock.MockClient, user *habitica.User) *gomock.Call {
	return mockClient.EXPECT().GetUser(ctx).Return(user, nil)
}

// ExpectQuest sets up a single party fetch returning quest
func ExpectQuest(ctx context.Context, mockClient *habiticamock.MockClient, quest habitica.Quest) *gomock.Call {
	return mockClient.EXPECT().GetParty(ctx).Return(&habitica.Party{Quest: quest}, nil)
}

// ExpectFeedings sets up, in order, one feed call per triple
func ExpectFeedings(ctx context.Context, mockClient *habiticamock.MockClient, feedings ...Feeding) {
	calls := make([]any, 0, len(feedings))
	for _, f := range feedings {
		calls = append(calls, mockClient.EXPECT().Feed(ctx, f.Pet, f.Food, f.Amount).Return(nil))
	}
	gomock.InOrder(calls...)
}

// Feeding is an expected feed call
type Feeding struct {
	Pet    string
	Food   string
	Amount int
}
