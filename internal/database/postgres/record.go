package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kiroku-dev/sensekibot/internal/domain"
	"github.com/kiroku-dev/sensekibot/internal/repository"
)

// RecordRepository implements the records repository for PostgreSQL
type RecordRepository struct {
	db *pgxpool.Pool
}

// NewRecordRepository creates a new RecordRepository
func NewRecordRepository(db *pgxpool.Pool) repository.Records {
	return &RecordRepository{db: db}
}

// GetRecord retrieves a single record by its (channel, player) key.
// Returns nil when no record exists.
func (r *RecordRepository) GetRecord(ctx context.Context, channelID, playerName string) (*domain.PlayerRecord, error) {
	query := `
		SELECT id, channel_id, player_name, win, lose, games
		FROM records
		WHERE channel_id = $1 AND player_name = $2
	`

	var rec domain.PlayerRecord
	err := r.db.QueryRow(ctx, query, channelID, playerName).Scan(
		&rec.ID,
		&rec.ChannelID,
		&rec.PlayerName,
		&rec.Win,
		&rec.Lose,
		&rec.Games,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	return &rec, nil
}

// UpsertRecord creates or overwrites a record with absolute counter values
func (r *RecordRepository) UpsertRecord(ctx context.Context, rec *domain.PlayerRecord) error {
	query := `
		INSERT INTO records (channel_id, player_name, win, lose, games)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (channel_id, player_name)
		DO UPDATE SET
			win = EXCLUDED.win,
			lose = EXCLUDED.lose,
			games = EXCLUDED.games,
			updated_at = NOW()
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		rec.ChannelID, rec.PlayerName, rec.Win, rec.Lose, rec.Games,
	).Scan(&rec.ID)
	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}

	return nil
}

// IncrementRecord adds the deltas in one statement. The insert-or-add form
// keeps concurrent increments on the same key additive (no lost updates).
func (r *RecordRepository) IncrementRecord(ctx context.Context, channelID, playerName string, winDelta, loseDelta, gamesDelta int) error {
	query := `
		INSERT INTO records (channel_id, player_name, win, lose, games)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (channel_id, player_name)
		DO UPDATE SET
			win = records.win + EXCLUDED.win,
			lose = records.lose + EXCLUDED.lose,
			games = records.games + EXCLUDED.games,
			updated_at = NOW()
	`

	_, err := r.db.Exec(ctx, query, channelID, playerName, winDelta, loseDelta, gamesDelta)
	if err != nil {
		return fmt.Errorf("failed to increment record: %w", err)
	}

	return nil
}

// DeleteRecord removes a record if present; reports whether a row was removed
func (r *RecordRepository) DeleteRecord(ctx context.Context, channelID, playerName string) (bool, error) {
	query := `
		DELETE FROM records
		WHERE channel_id = $1 AND player_name = $2
	`

	result, err := r.db.Exec(ctx, query, channelID, playerName)
	if err != nil {
		return false, fmt.Errorf("failed to delete record: %w", err)
	}

	return result.RowsAffected() > 0, nil
}

// ListRecords returns all records for a channel, ordered by player name so
// repeated stats renders are stable
func (r *RecordRepository) ListRecords(ctx context.Context, channelID string) ([]domain.PlayerRecord, error) {
	query := `
		SELECT id, channel_id, player_name, win, lose, games
		FROM records
		WHERE channel_id = $1
		ORDER BY player_name
	`

	rows, err := r.db.Query(ctx, query, channelID)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var records []domain.PlayerRecord
	for rows.Next() {
		var rec domain.PlayerRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.ChannelID,
			&rec.PlayerName,
			&rec.Win,
			&rec.Lose,
			&rec.Games,
		); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read records: %w", err)
	}

	return records, nil
}
