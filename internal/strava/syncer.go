package strava

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

//go:generate mockgen -source=$GOFILE -destination=syncer_mocks_test.go -package=strava_test

type tokenStore interface {
	Get(ctx context.Context, userID int) (*oauth2.Token, error)
	Save(ctx context.Context, userID int, token *oauth2.Token) error
	Delete(ctx context.Context, userID int) error
}

type activitiesFetcher interface {
	FetchActivities(ctx context.Context, token *oauth2.Token, since time.Time) ([]SyncedActivity, *oauth2.Token, error)
}

// Syncer fetches a user's strava activities with the stored credentials and keeps them fresh.
type Syncer struct {
	fetcher activitiesFetcher
	tokens  tokenStore
	nowFunc func() time.Time
}

func NewSyncer(fetcher activitiesFetcher, tokens tokenStore) *Syncer {
	return &Syncer{
		fetcher: fetcher,
		tokens:  tokens,
		nowFunc: time.Now,
	}
}

// FetchActivities returns a flat, deduplicated list of the user's activities since the given time.
// A zero since means the last DefaultSyncWindow.
func (s *Syncer) FetchActivities(ctx context.Context, userID int, since time.Time) (_ []SyncedActivity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "strava.syncer.fetchActivities")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	token, err := s.tokens.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get strava token: %w", err)
	}

	if since.IsZero() {
		since = s.nowFunc().Add(-DefaultSyncWindow)
	}

	activities, usedToken, err := s.fetcher.FetchActivities(ctx, token, since)
	if usedToken != nil && usedToken.AccessToken != token.AccessToken {
		if saveErr := s.tokens.Save(ctx, userID, usedToken); saveErr != nil {
			log.Errorf("strava sync: store refreshed token for user %d: %s", userID, saveErr)
		}
	}
	if errors.Is(err, ErrReauthRequired) {
		// stored credentials are useless now, the user must connect again
		if delErr := s.tokens.Delete(ctx, userID); delErr != nil {
			log.Errorf("strava sync: delete rejected token for user %d: %s", userID, delErr)
		}
	}
	if err != nil {
		return nil, err
	}

	return activities, nil
}
