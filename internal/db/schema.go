package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

// Schema creates every table used by the service. Statements are idempotent.
const Schema = `
CREATE TABLE IF NOT EXISTS app_user (
	id            SERIAL PRIMARY KEY,
	email         TEXT NOT NULL UNIQUE,
	name          TEXT NOT NULL,
	timezone      TEXT NOT NULL DEFAULT 'UTC',
	password_hash TEXT NOT NULL,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS activity_type (
	id         SERIAL PRIMARY KEY,
	user_id    INTEGER NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
	name       TEXT NOT NULL,
	winter     INTEGER NOT NULL CHECK (winter > 0),
	spring     INTEGER NOT NULL CHECK (spring > 0),
	summer     INTEGER NOT NULL CHECK (summer > 0),
	fall       INTEGER NOT NULL CHECK (fall > 0),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	UNIQUE (user_id, name)
);

CREATE TABLE IF NOT EXISTS activity (
	id          BIGSERIAL PRIMARY KEY,
	user_id     INTEGER NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
	type_id     INTEGER NOT NULL REFERENCES activity_type (id) ON DELETE CASCADE,
	occurred_at TIMESTAMPTZ NOT NULL,
	UNIQUE (user_id, type_id, occurred_at)
);

CREATE INDEX IF NOT EXISTS activity_user_time_idx ON activity (user_id, occurred_at DESC);

CREATE TABLE IF NOT EXISTS activity_calculation (
	user_id          INTEGER NOT NULL REFERENCES app_user (id) ON DELETE CASCADE,
	type_id          INTEGER NOT NULL REFERENCES activity_type (id) ON DELETE CASCADE,
	lifetime         DOUBLE PRECISION NOT NULL DEFAULT -1,
	thirty           DOUBLE PRECISION NOT NULL DEFAULT -1,
	season           DOUBLE PRECISION NOT NULL DEFAULT -1,
	last_activity_at TIMESTAMPTZ,
	valid            BOOLEAN NOT NULL DEFAULT FALSE,
	version          BIGINT NOT NULL DEFAULT 0,
	computed_at      TIMESTAMPTZ,
	PRIMARY KEY (user_id, type_id)
);

CREATE TABLE IF NOT EXISTS strava_token (
	user_id       INTEGER PRIMARY KEY REFERENCES app_user (id) ON DELETE CASCADE,
	access_token  TEXT NOT NULL,
	refresh_token TEXT NOT NULL,
	token_type    TEXT NOT NULL DEFAULT 'Bearer',
	expiry        TIMESTAMPTZ,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`

func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	log.Debugln("db schema applied")
	return nil
}
