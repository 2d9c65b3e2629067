package tracker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/freqtracker/internal/telemetry/tracing"
	"github.com/2beens/freqtracker/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

// inTx runs fn in a transaction, committed if fn returns no error.
func (r *Repo) inTx(ctx context.Context, fn func(tx pgx.Tx) error) (err error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("failed to rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	return fn(tx)
}

// invalidate marks the calculation of (user, type) as outdated and bumps its version,
// creating the row if it is missing.
func invalidate(ctx context.Context, tx pgx.Tx, userID, typeID int) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO activity_calculation (user_id, type_id, valid, version)
		VALUES ($1, $2, FALSE, 1)
		ON CONFLICT (user_id, type_id) DO UPDATE SET
			valid = FALSE,
			version = activity_calculation.version + 1
	`, userID, typeID)
	if err != nil {
		return fmt.Errorf("invalidate calculation: %w", err)
	}
	return nil
}

func (r *Repo) GetUser(ctx context.Context, userID int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.user.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	user := &User{}
	err = r.db.QueryRow(ctx, `
		SELECT id, email, name, timezone, created_at
		FROM app_user
		WHERE id = $1
	`, userID).Scan(&user.ID, &user.Email, &user.Name, &user.Timezone, &user.CreatedAt)
	if pkg.IsNoRowsError(err) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("user [query row]: %w", err)
	}
	return user, nil
}

func (r *Repo) UpdateTimezone(ctx context.Context, userID int, timezone string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.user.update_timezone")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("timezone", timezone))

	return r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `UPDATE app_user SET timezone = $2 WHERE id = $1`, userID, timezone)
		if err != nil {
			return fmt.Errorf("update timezone: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrUserNotFound
		}

		if _, err := tx.Exec(ctx, `
			UPDATE activity_calculation
			SET valid = FALSE, version = version + 1
			WHERE user_id = $1
		`, userID); err != nil {
			return fmt.Errorf("invalidate calculations: %w", err)
		}
		return nil
	})
}

func (r *Repo) ListActivityTypes(ctx context.Context, userID int) (_ []ActivityType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activity_types.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, name, winter, spring, summer, fall, created_at
		FROM activity_type
		WHERE user_id = $1
		ORDER BY name
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("activity types [query]: %w", err)
	}
	defer rows.Close()

	var activityTypes []ActivityType
	for rows.Next() {
		activityType, err := scanActivityType(rows)
		if err != nil {
			return nil, fmt.Errorf("activity types [rows scan]: %w", err)
		}
		activityTypes = append(activityTypes, activityType)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activity types [rows error]: %w", err)
	}

	return activityTypes, nil
}

func scanActivityType(row pgx.Row) (ActivityType, error) {
	var activityType ActivityType
	err := row.Scan(
		&activityType.ID,
		&activityType.UserID,
		&activityType.Name,
		&activityType.Winter,
		&activityType.Spring,
		&activityType.Summer,
		&activityType.Fall,
		&activityType.CreatedAt,
	)
	return activityType, err
}

func (r *Repo) GetActivityTypeByName(ctx context.Context, userID int, name string) (_ *ActivityType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activity_types.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("name", name))

	activityType, err := scanActivityType(r.db.QueryRow(ctx, `
		SELECT id, user_id, name, winter, spring, summer, fall, created_at
		FROM activity_type
		WHERE user_id = $1 AND name = $2
	`, userID, name))
	if pkg.IsNoRowsError(err) {
		return nil, ErrActivityTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("activity type [query row]: %w", err)
	}
	return &activityType, nil
}

// AddActivityType stores the type together with its not yet computed calculation row.
func (r *Repo) AddActivityType(ctx context.Context, activityType ActivityType) (_ *ActivityType, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activity_types.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("name", activityType.Name))

	if activityType.CreatedAt.IsZero() {
		activityType.CreatedAt = time.Now()
	}

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		if err := insertActivityType(ctx, tx, &activityType); err != nil {
			return err
		}
		return invalidate(ctx, tx, activityType.UserID, activityType.ID)
	})
	if pkg.IsUniqueViolationError(err) {
		return nil, ErrActivityTypeExists
	}
	if err != nil {
		return nil, err
	}
	return &activityType, nil
}

func insertActivityType(ctx context.Context, tx pgx.Tx, activityType *ActivityType) error {
	return tx.QueryRow(ctx, `
		INSERT INTO activity_type (user_id, name, winter, spring, summer, fall, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		activityType.UserID,
		activityType.Name,
		activityType.Winter,
		activityType.Spring,
		activityType.Summer,
		activityType.Fall,
		activityType.CreatedAt,
	).Scan(&activityType.ID)
}

// DeleteActivityType relies on the cascade for the type's activities and calculation.
func (r *Repo) DeleteActivityType(ctx context.Context, userID int, name string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activity_types.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	tag, err := r.db.Exec(ctx, `DELETE FROM activity_type WHERE user_id = $1 AND name = $2`, userID, name)
	if err != nil {
		return fmt.Errorf("delete activity type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityTypeNotFound
	}
	return nil
}

// SeedActivityTypes adds the given types, skipping names the user already has.
func (r *Repo) SeedActivityTypes(ctx context.Context, userID int, types map[string]Cadences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activity_types.seed")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	now := time.Now()
	return r.inTx(ctx, func(tx pgx.Tx) error {
		for name, cadences := range types {
			var typeID int
			err := tx.QueryRow(ctx, `
				INSERT INTO activity_type (user_id, name, winter, spring, summer, fall, created_at)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				ON CONFLICT (user_id, name) DO NOTHING
				RETURNING id
			`, userID, name, cadences.Winter, cadences.Spring, cadences.Summer, cadences.Fall, now).Scan(&typeID)
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			if err != nil {
				return fmt.Errorf("seed activity type %s: %w", name, err)
			}
			if err := invalidate(ctx, tx, userID, typeID); err != nil {
				return err
			}
		}
		return nil
	})
}

// AddActivity inserts the activity and invalidates its calculation in one transaction.
// A duplicate (same type and timestamp) is not an error, added is false then.
func (r *Repo) AddActivity(ctx context.Context, activity Activity) (added bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.add")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			INSERT INTO activity (user_id, type_id, occurred_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (user_id, type_id, occurred_at) DO NOTHING
		`, activity.UserID, activity.TypeID, activity.OccurredAt.Truncate(time.Second))
		// the type was deleted after it was looked up
		if pkg.IsForeignKeyViolationError(err) {
			return ErrActivityTypeNotFound
		}
		if err != nil {
			return fmt.Errorf("insert activity: %w", err)
		}
		added = tag.RowsAffected() == 1
		return invalidate(ctx, tx, activity.UserID, activity.TypeID)
	})
	if err != nil {
		return false, err
	}
	span.SetAttributes(attribute.Bool("added", added))
	return added, nil
}

func (r *Repo) DeleteActivity(ctx context.Context, activity Activity) (deleted int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.delete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	err = r.inTx(ctx, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `
			DELETE FROM activity
			WHERE user_id = $1 AND type_id = $2 AND occurred_at = $3
		`, activity.UserID, activity.TypeID, activity.OccurredAt.Truncate(time.Second))
		if err != nil {
			return fmt.Errorf("delete activity: %w", err)
		}
		deleted = tag.RowsAffected()
		return invalidate(ctx, tx, activity.UserID, activity.TypeID)
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// ActivityHistory returns all timestamps of one (user, type), ascending.
func (r *Repo) ActivityHistory(ctx context.Context, userID, typeID int) (_ []time.Time, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.history")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT occurred_at
		FROM activity
		WHERE user_id = $1 AND type_id = $2
		ORDER BY occurred_at ASC
	`, userID, typeID)
	if err != nil {
		return nil, fmt.Errorf("activity history [query]: %w", err)
	}

	history, err := pgx.CollectRows(rows, pgx.RowTo[time.Time])
	if err != nil {
		return nil, fmt.Errorf("activity history [collect]: %w", err)
	}
	span.SetAttributes(attribute.Int("count", len(history)))
	return history, nil
}

func (r *Repo) ListActivities(ctx context.Context, userID int) (_ []ActivityRow, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.activities.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT t.name, a.occurred_at
		FROM activity a
		JOIN activity_type t ON t.id = a.type_id
		WHERE a.user_id = $1
		ORDER BY a.occurred_at DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("activities [query]: %w", err)
	}
	defer rows.Close()

	activities := []ActivityRow{}
	for rows.Next() {
		var row ActivityRow
		if err := rows.Scan(&row.Type, &row.Time); err != nil {
			return nil, fmt.Errorf("activities [rows scan]: %w", err)
		}
		activities = append(activities, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("activities [rows error]: %w", err)
	}

	return activities, nil
}

func (r *Repo) ListCalculations(ctx context.Context, userID int) (_ []Calculation, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.calculations.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	rows, err := r.db.Query(ctx, `
		SELECT user_id, type_id, lifetime, thirty, season, last_activity_at, valid, version, computed_at
		FROM activity_calculation
		WHERE user_id = $1
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("calculations [query]: %w", err)
	}
	defer rows.Close()

	var calcs []Calculation
	for rows.Next() {
		var calc Calculation
		if err := rows.Scan(
			&calc.UserID,
			&calc.TypeID,
			&calc.Lifetime,
			&calc.ThirtyDay,
			&calc.Seasonal,
			&calc.LastActivityAt,
			&calc.Valid,
			&calc.Version,
			&calc.ComputedAt,
		); err != nil {
			return nil, fmt.Errorf("calculations [rows scan]: %w", err)
		}
		calcs = append(calcs, calc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("calculations [rows error]: %w", err)
	}

	return calcs, nil
}

// StoreCalculation writes a recompute result only if the row still has calc.Version,
// i.e. no invalidation happened since the version was read. stored reports whether it landed.
func (r *Repo) StoreCalculation(ctx context.Context, calc Calculation) (stored bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.tracker.calculations.store")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.Int64("version", calc.Version))

	tag, err := r.db.Exec(ctx, `
		INSERT INTO activity_calculation
			(user_id, type_id, lifetime, thirty, season, last_activity_at, valid, version, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, TRUE, $7, $8)
		ON CONFLICT (user_id, type_id) DO UPDATE SET
			lifetime = EXCLUDED.lifetime,
			thirty = EXCLUDED.thirty,
			season = EXCLUDED.season,
			last_activity_at = EXCLUDED.last_activity_at,
			valid = TRUE,
			computed_at = EXCLUDED.computed_at
		WHERE activity_calculation.version = EXCLUDED.version
	`,
		calc.UserID,
		calc.TypeID,
		calc.Lifetime,
		calc.ThirtyDay,
		calc.Seasonal,
		calc.LastActivityAt,
		calc.Version,
		calc.ComputedAt,
	)
	if err != nil {
		return false, fmt.Errorf("store calculation: %w", err)
	}

	stored = tag.RowsAffected() == 1
	span.SetAttributes(attribute.Bool("stored", stored))
	return stored, nil
}
