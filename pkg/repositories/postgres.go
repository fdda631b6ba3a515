package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/cbodonnell/pocketpet/pkg/log"
	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	"github.com/jackc/pgx/v5"
)

type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and runs the migrations.
// The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (*PostgresRepository, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %w", err)
	}
	log.Info("Connected to %s as %s", database, username)

	migrations, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) Save(ctx context.Context, state *types.State) error {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO pets (slot, pet_id, hunger, happiness, energy, love, age, xp, dead, born_at, last_action_at, last_saved_at, last_aged_at)
	VALUES (1, $1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	ON CONFLICT (slot) DO UPDATE SET
		pet_id = $1, hunger = $2, happiness = $3, energy = $4, love = $5, age = $6, xp = $7, dead = $8,
		born_at = $9, last_action_at = $10, last_saved_at = $11, last_aged_at = $12;
	`
	_, err = tx.Exec(ctx, q,
		state.ID, state.Hunger, state.Happiness, state.Energy, state.Love, state.Age, state.XP, state.Dead,
		state.BornAt, state.LastActionAt, state.LastSavedAt, state.LastAgedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert pet: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *PostgresRepository) Load(ctx context.Context) (*types.State, error) {
	q := `
	SELECT pet_id, hunger, happiness, energy, love, age, xp, dead, born_at, last_action_at, last_saved_at, last_aged_at
	FROM pets WHERE slot = 1;
	`
	state := &types.State{}
	err := r.conn.QueryRow(ctx, q).Scan(
		&state.ID, &state.Hunger, &state.Happiness, &state.Energy, &state.Love, &state.Age, &state.XP, &state.Dead,
		&state.BornAt, &state.LastActionAt, &state.LastSavedAt, &state.LastAgedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan pet: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, &ErrCorrupt{Err: err}
	}
	return state, nil
}
