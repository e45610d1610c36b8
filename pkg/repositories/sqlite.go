package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/replay"
	_ "github.com/mattn/go-sqlite3"
)

type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository opens the database at path and applies the
// embedded migrations.
func NewSQLiteRepository(ctx context.Context, path string) (Repository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %v", err)
	}

	statements, err := readMigrations("sqlite")
	if err != nil {
		db.Close()
		return nil, err
	}
	for i, migration := range statements {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &SQLiteRepository{
		db: db,
	}, nil
}

func (r *SQLiteRepository) Close(ctx context.Context) error {
	return r.db.Close()
}

func (r *SQLiteRepository) SaveSummary(ctx context.Context, summary replay.Summary) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	q := `
	INSERT OR REPLACE INTO summaries (game_id, mode, applied, failed, interrupted, started_at, finished_at)
	VALUES (?, ?, ?, ?, ?, ?, ?);
	`
	_, err = tx.ExecContext(ctx, q, summary.GameID, summary.Mode.String(), summary.Applied, summary.Failed,
		summary.Interrupted, summary.StartedAt.UnixMilli(), summary.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert summary: %v", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM actor_summaries WHERE game_id = ?;`, summary.GameID); err != nil {
		return fmt.Errorf("failed to clear actor summaries: %v", err)
	}
	for _, actor := range summary.Actors {
		q := `
		INSERT INTO actor_summaries (game_id, actor_index, applied, failed)
		VALUES (?, ?, ?, ?);
		`
		_, err = tx.ExecContext(ctx, q, summary.GameID, actor.Index, actor.Applied, actor.Failed)
		if err != nil {
			return fmt.Errorf("failed to insert actor summary: %v", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *SQLiteRepository) LoadSummary(ctx context.Context, gameID string) (*replay.Summary, error) {
	q := `
	SELECT mode, applied, failed, interrupted, started_at, finished_at FROM summaries WHERE game_id = ?;
	`
	var mode string
	var startedAt, finishedAt int64
	summary := &replay.Summary{GameID: gameID}
	err := r.db.QueryRowContext(ctx, q, gameID).Scan(&mode, &summary.Applied, &summary.Failed,
		&summary.Interrupted, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &ErrNotFound{GameID: gameID}
		}
		return nil, fmt.Errorf("failed to scan summary: %v", err)
	}
	if summary.Mode, err = replay.ParseMode(mode); err != nil {
		return nil, fmt.Errorf("failed to parse summary mode: %v", err)
	}
	summary.StartedAt = time.UnixMilli(startedAt)
	summary.FinishedAt = time.UnixMilli(finishedAt)

	rows, err := r.db.QueryContext(ctx, `
	SELECT actor_index, applied, failed FROM actor_summaries WHERE game_id = ? ORDER BY actor_index;
	`, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actor summaries: %v", err)
	}
	defer rows.Close()

	for rows.Next() {
		var actor replay.ActorSummary
		if err := rows.Scan(&actor.Index, &actor.Applied, &actor.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan actor summary: %v", err)
		}
		summary.Actors = append(summary.Actors, actor)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read actor summaries: %v", err)
	}

	return summary, nil
}
