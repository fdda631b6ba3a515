package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cbodonnell/pocketpet/pkg/pet/types"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(ctx context.Context, path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	migrations, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) Save(ctx context.Context, state *types.State) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q := `
	INSERT OR REPLACE INTO pets (slot, pet_id, hunger, happiness, energy, love, age, xp, dead, born_at, last_action_at, last_saved_at, last_aged_at)
	VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, q,
		state.ID, state.Hunger, state.Happiness, state.Energy, state.Love, state.Age, state.XP, state.Dead,
		state.BornAt, state.LastActionAt, state.LastSavedAt, state.LastAgedAt)
	if err != nil {
		return fmt.Errorf("failed to insert pet: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *SQLiteRepository) Load(ctx context.Context) (*types.State, error) {
	q := `
	SELECT pet_id, hunger, happiness, energy, love, age, xp, dead, born_at, last_action_at, last_saved_at, last_aged_at
	FROM pets WHERE slot = 1;
	`
	state := &types.State{}
	err := r.db.QueryRowContext(ctx, q).Scan(
		&state.ID, &state.Hunger, &state.Happiness, &state.Energy, &state.Love, &state.Age, &state.XP, &state.Dead,
		&state.BornAt, &state.LastActionAt, &state.LastSavedAt, &state.LastAgedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{}
		}
		return nil, fmt.Errorf("failed to scan pet: %w", err)
	}

	if err := state.Validate(); err != nil {
		return nil, &ErrCorrupt{Err: err}
	}
	return state, nil
}
