// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"context"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-session-api/internal/clients/external"
	externalmock "github.com/KirkDiggler/rpg-session-api/internal/clients/external/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/entities"
	"github.com/KirkDiggler/rpg-session-api/internal/errors"
	historymock "github.com/KirkDiggler/rpg-session-api/internal/repositories/history/mock"
	"github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions"
	sessionsmock "github.com/KirkDiggler/rpg-session-api/internal/repositories/sessions/mock"
)

// ExpectTemplateLookup sets up a mock expectation for fetching an SRD monster
// template. A nil template with a nil error reports the key as not found.
func ExpectTemplateLookup(
	ctx context.Context, mockClient *externalmock.MockClient,
	key string, template *external.MonsterTemplate, err error,
) *gomock.Call {
	if template == nil && err == nil {
		err = errors.NotFoundf("monster template %s not found", key)
	}
	return mockClient.EXPECT().
		GetMonsterTemplate(ctx, key).
		Return(template, err)
}

// ExpectSessionGet sets up a mock expectation for loading a session. Every
// call gets its own copy, as a real store would return.
func ExpectSessionGet(ctx context.Context, mockRepo *sessionsmock.MockRepository, session *entities.Session) *gomock.Call {
	return mockRepo.EXPECT().
		Get(ctx, sessions.GetInput{ID: session.ID}).
		DoAndReturn(func(_ context.Context, _ sessions.GetInput) (*sessions.GetOutput, error) {
			return &sessions.GetOutput{Session: session.Clone()}, nil
		})
}

// ExpectSessionSave sets up a mock expectation for a save that succeeds
func ExpectSessionSave(ctx context.Context, mockRepo *sessionsmock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input sessions.SaveInput) (*sessions.SaveOutput, error) {
			// Simulate repository behavior - it would bump the version and timestamp
			saved := input.Session.Clone()
			saved.Version++
			saved.UpdatedAt = clock.Now()
			return &sessions.SaveOutput{Session: saved}, nil
		})
}

// ExpectSessionSaveConflict sets up a mock expectation for a save that loses
// the optimistic concurrency race
func ExpectSessionSaveConflict(
	ctx context.Context, mockRepo *sessionsmock.MockRepository, session *entities.Session,
) *gomock.Call {
	return mockRepo.EXPECT().
		Save(ctx, gomock.Any()).
		Return(nil, errors.WriteConflict(session.ID, session.Version, session.Version+1))
}

// ExpectHistoryUnavailable makes every history append fail
func ExpectHistoryUnavailable(ctx context.Context, mockRepo *historymock.MockRepository) *gomock.Call {
	return mockRepo.EXPECT().
		Append(ctx, gomock.Any()).
		Return(nil, errors.Unavailablef("history store down")).
		AnyTimes()
}

var clock = &testClock{}

type testClock struct{}

func (c *testClock) Now() time.Time {
	return time.Date(2026, 4, 1, 18, 0, 0, 0, time.UTC)
}
