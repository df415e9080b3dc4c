package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	pool *pgxpool.Pool
}

func NewDatabase(connString string) (*Database, error) {

	err := Migrate(connString)

	if err != nil {
		return nil, fmt.Errorf("failed to migrate %w", err)
	}

	ctx := context.Background()
	p, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	return &Database{
		pool: p,
	}, nil
}

func (d *Database) Close() {
	d.pool.Close()
}

// LoadClock returns the stored override date as raw text ("" when the clock
// follows wall time) and the reset counter.
func (d *Database) LoadClock(ctx context.Context) (string, uint64, error) {
	query := `
		SELECT override_date, reset_count
		FROM virtual_clock
		WHERE id = 1`

	row := d.pool.QueryRow(ctx, query)

	var override string
	var resetCount int64

	err := row.Scan(&override, &resetCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", 0, nil
		}
		return "", 0, fmt.Errorf("failed loading clock state %w", err)
	}
	return override, uint64(resetCount), nil
}

func (d *Database) SaveClock(ctx context.Context, override string, resetCount uint64) error {
	query := `
		INSERT INTO virtual_clock (id, override_date, reset_count, updated_at)
		VALUES (1, $1, $2, now())
		ON CONFLICT(id)
		DO UPDATE SET override_date = $1, reset_count = $2, updated_at = now()
	`
	_, err := d.pool.Exec(ctx, query, override, int64(resetCount))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code) {
			return fmt.Errorf("%w", &InvalidClockStateError{Override: override, Constraint: pgErr.ConstraintName})
		}
		return fmt.Errorf("unexpected DB error %w", err)
	}
	return nil
}
