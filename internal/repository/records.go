package repository

import (
	"context"

	"github.com/kiroku-dev/sensekibot/internal/domain"
)

// Records defines the interface for player record persistence
type Records interface {
	// GetRecord returns the record for (channelID, playerName), or nil when absent
	GetRecord(ctx context.Context, channelID, playerName string) (*domain.PlayerRecord, error)

	// UpsertRecord creates or overwrites the record with the given counters
	UpsertRecord(ctx context.Context, rec *domain.PlayerRecord) error

	// IncrementRecord atomically adds the deltas, creating the record with
	// zeroed counters first when absent
	IncrementRecord(ctx context.Context, channelID, playerName string, winDelta, loseDelta, gamesDelta int) error

	// DeleteRecord removes the record if present and reports whether a row was removed
	DeleteRecord(ctx context.Context, channelID, playerName string) (bool, error)

	// ListRecords returns all records for a channel
	ListRecords(ctx context.Context, channelID string) ([]domain.PlayerRecord, error)
}
