package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cbodonnell/sokoreplay/pkg/log"
	"github.com/cbodonnell/sokoreplay/pkg/replay"
	"github.com/jackc/pgx/v5"
)

// PostgresRepository must only be used by one goroutine at a time.
type PostgresRepository struct {
	conn *pgx.Conn
}

// NewPostgresRepository connects to the database and applies the embedded
// migrations. The caller is responsible for calling Close() on the repository.
func NewPostgresRepository(ctx context.Context, connStr string) (Repository, error) {
	conn, err := connectDb(ctx, connStr)
	if err != nil {
		return nil, err
	}

	statements, err := readMigrations("postgres")
	if err != nil {
		conn.Close(ctx)
		return nil, err
	}
	for i, migration := range statements {
		if _, err := conn.Exec(ctx, migration); err != nil {
			conn.Close(ctx)
			return nil, fmt.Errorf("failed to execute migration %d: %v", i+1, err)
		}
	}

	return &PostgresRepository{
		conn: conn,
	}, nil
}

func connectDb(ctx context.Context, connStr string) (*pgx.Conn, error) {
	conn, err := pgx.Connect(ctx, connStr)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %v", err)
	}

	var username string
	var database string
	err = conn.QueryRow(ctx, "SELECT current_user, current_database()").Scan(&username, &database)
	if err != nil {
		conn.Close(ctx)
		return nil, fmt.Errorf("unable to query database: %v", err)
	}

	log.Info("Connected to %s as %s", database, username)

	return conn, nil
}

func (r *PostgresRepository) Close(ctx context.Context) error {
	return r.conn.Close(ctx)
}

func (r *PostgresRepository) SaveSummary(ctx context.Context, summary replay.Summary) error {
	tx, err := r.conn.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback(ctx)

	q := `
	INSERT INTO summaries (game_id, mode, applied, failed, interrupted, started_at, finished_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)
	ON CONFLICT (game_id) DO UPDATE SET mode = $2, applied = $3, failed = $4, interrupted = $5, started_at = $6, finished_at = $7;
	`
	_, err = tx.Exec(ctx, q, summary.GameID, summary.Mode.String(), summary.Applied, summary.Failed,
		summary.Interrupted, summary.StartedAt.UnixMilli(), summary.FinishedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to insert summary: %v", err)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM actor_summaries WHERE game_id = $1", summary.GameID); err != nil {
		return fmt.Errorf("failed to clear actor summaries: %v", err)
	}

	batch := &pgx.Batch{}
	for _, actor := range summary.Actors {
		batch.Queue(`
		INSERT INTO actor_summaries (game_id, actor_index, applied, failed) VALUES ($1, $2, $3, $4);
		`, summary.GameID, actor.Index, actor.Applied, actor.Failed)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to insert actor summaries: %v", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}

	return nil
}

func (r *PostgresRepository) LoadSummary(ctx context.Context, gameID string) (*replay.Summary, error) {
	q := `
	SELECT mode, applied, failed, interrupted, started_at, finished_at FROM summaries WHERE game_id = $1;
	`
	var mode string
	var startedAt, finishedAt int64
	summary := &replay.Summary{GameID: gameID}
	err := r.conn.QueryRow(ctx, q, gameID).Scan(&mode, &summary.Applied, &summary.Failed,
		&summary.Interrupted, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &ErrNotFound{GameID: gameID}
		}
		return nil, fmt.Errorf("failed to scan summary: %v", err)
	}
	if summary.Mode, err = replay.ParseMode(mode); err != nil {
		return nil, fmt.Errorf("failed to parse summary mode: %v", err)
	}
	summary.StartedAt = time.UnixMilli(startedAt)
	summary.FinishedAt = time.UnixMilli(finishedAt)

	rows, err := r.conn.Query(ctx, `
	SELECT actor_index, applied, failed FROM actor_summaries WHERE game_id = $1 ORDER BY actor_index;
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
