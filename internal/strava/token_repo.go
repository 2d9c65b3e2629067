package strava

import (
	"context"
	"errors"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/oauth2"
)

type TokenRepo struct {
	db *pgxpool.Pool
}

func NewTokenRepo(db *pgxpool.Pool) *TokenRepo {
	return &TokenRepo{
		db: db,
	}
}

// Get returns ErrNotConnected if the user never connected strava.
func (r *TokenRepo) Get(ctx context.Context, userID int) (_ *oauth2.Token, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.token.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	token := &oauth2.Token{}
	var expiry *time.Time
	err = r.db.QueryRow(ctx, `
		SELECT access_token, refresh_token, token_type, expiry
		FROM strava_token
		WHERE user_id = $1
	`, userID).Scan(&token.AccessToken, &token.RefreshToken, &token.TokenType, &expiry)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotConnected
	}
	if err != nil {
		return nil, err
	}
	if expiry != nil {
		token.Expiry = *expiry
	}

	return token, nil
}

func (r *TokenRepo) Save(ctx context.Context, userID int, token *oauth2.Token) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.token.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	var expiry *time.Time
	if !token.Expiry.IsZero() {
		expiry = &token.Expiry
	}
	tokenType := token.TokenType
	if tokenType == "" {
		tokenType = "Bearer"
	}

	_, err = r.db.Exec(ctx, `
		INSERT INTO strava_token (user_id, access_token, refresh_token, token_type, expiry, updated_at)
		VALUES ($1, $2, $3, $4, $5, now())
		ON CONFLICT (user_id) DO UPDATE SET
			access_token = EXCLUDED.access_token,
			refresh_token = EXCLUDED.refresh_token,
			token_type = EXCLUDED.token_type,
			expiry = EXCLUDED.expiry,
			updated_at = now()
	`, userID, token.AccessToken, token.RefreshToken, tokenType, expiry)
	return err
}

func (r *TokenRepo) Delete(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.token.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	_, err = r.db.Exec(ctx, `DELETE FROM strava_token WHERE user_id = $1`, userID)
	return err
}

// ConnectedUsers lists the ids of all users with stored strava credentials.
func (r *TokenRepo) ConnectedUsers(ctx context.Context) (_ []int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.strava.token.connectedUsers")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `SELECT user_id FROM strava_token ORDER BY user_id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}
