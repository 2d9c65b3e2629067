package account

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/pkg"

	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrUserNotFound     = errors.New("user not found")
	ErrWrongCredentials = errors.New("wrong credentials")
)

type User struct {
	ID           int
	Email        string
	Name         string
	Timezone     string
	PasswordHash string
	CreatedAt    time.Time
}

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) Create(ctx context.Context, user User) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.create")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	var id int
	err = r.db.QueryRow(ctx, `
		INSERT INTO app_user (email, name, timezone, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`, user.Email, user.Name, user.Timezone, user.PasswordHash, user.CreatedAt).Scan(&id)
	if pkg.IsUniqueViolationError(err) {
		return 0, ErrEmailTaken
	}
	if err != nil {
		return 0, fmt.Errorf("create user [query row]: %w", err)
	}
	return id, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.get_by_email")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, email, name, timezone, password_hash, created_at
		FROM app_user
		WHERE email = $1
	`, email).Scan(&user.ID, &user.Email, &user.Name, &user.Timezone, &user.PasswordHash, &user.CreatedAt)
	if pkg.IsNoRowsError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user [query row]: %w", err)
	}
	return user, nil
}

// Delete removes the user, everything else owned by the user goes with the cascade.
func (r *Repo) Delete(ctx context.Context, userID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.account.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM app_user WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrUserNotFound
	}
	return nil
}
