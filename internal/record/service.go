package record

import (
	"context"
	"errors"
	"fmt"

	"github.com/kiroku-dev/sensekibot/internal/domain"
	"github.com/kiroku-dev/sensekibot/internal/logger"
	"github.com/kiroku-dev/sensekibot/internal/repository"
)

// Service defines the interface for player record operations
type Service interface {
	// GetRecord returns a player's record, or nil when none exists
	GetRecord(ctx context.Context, channelID, playerName string) (*domain.PlayerRecord, error)

	// SetRecord overwrites all counters with absolute values (create-or-overwrite)
	SetRecord(ctx context.Context, channelID, playerName string, win, lose, games int) error

	// Increment adds deltas to a player's counters, creating the record on first touch
	Increment(ctx context.Context, channelID, playerName string, winDelta, loseDelta, gamesDelta int) error

	// AddResult records a finished match result (win/lose deltas, games untouched)
	AddResult(ctx context.Context, channelID, playerName string, win, lose int) error

	// AddGamePlayed bumps the game count by one for each named player
	AddGamePlayed(ctx context.Context, channelID string, playerNames []string) error

	// DeleteRecord removes a player's record; reports whether one existed
	DeleteRecord(ctx context.Context, channelID, playerName string) (bool, error)

	// ListRecords returns all records for a channel
	ListRecords(ctx context.Context, channelID string) ([]domain.PlayerRecord, error)
}

// service implements the Service interface
type service struct {
	repo repository.Records
}

// NewService creates a new record service
func NewService(repo repository.Records) Service {
	return &service{
		repo: repo,
	}
}

// GetRecord retrieves a single player's record by channel and name
func (s *service) GetRecord(ctx context.Context, channelID, playerName string) (*domain.PlayerRecord, error) {
	log := logger.FromContext(ctx)

	channelID, playerName, err := validateKey(channelID, playerName)
	if err != nil {
		return nil, err
	}

	rec, err := s.repo.GetRecord(ctx, channelID, playerName)
	if err != nil {
		log.Error(LogMsgFailedToGetRecord, "error", err, "channel_id", channelID, "player", playerName)
		return nil, fmt.Errorf(ErrMsgGetRecordFailed, err)
	}

	return rec, nil
}

// SetRecord replaces all three counters unconditionally. Idempotent.
func (s *service) SetRecord(ctx context.Context, channelID, playerName string, win, lose, games int) error {
	log := logger.FromContext(ctx)

	channelID, playerName, err := validateKey(channelID, playerName)
	if err != nil {
		return err
	}
	if win < 0 || lose < 0 || games < 0 {
		return errors.New(domain.ErrMsgNegativeCounter)
	}

	rec := &domain.PlayerRecord{
		ChannelID:  channelID,
		PlayerName: playerName,
		Win:        win,
		Lose:       lose,
		Games:      games,
	}

	if err := s.repo.UpsertRecord(ctx, rec); err != nil {
		log.Error(LogMsgFailedToUpsertRecord, "error", err, "channel_id", channelID, "player", playerName)
		return fmt.Errorf(ErrMsgUpsertRecordFailed, err)
	}

	log.Debug(LogMsgRecordSet, "channel_id", channelID, "player", playerName, "win", win, "lose", lose, "games", games)
	return nil
}

// Increment applies additive deltas in a single atomic statement, so
// concurrent increments on the same key cannot lose updates.
func (s *service) Increment(ctx context.Context, channelID, playerName string, winDelta, loseDelta, gamesDelta int) error {
	log := logger.FromContext(ctx)

	channelID, playerName, err := validateKey(channelID, playerName)
	if err != nil {
		return err
	}
	if winDelta < 0 || loseDelta < 0 || gamesDelta < 0 {
		return errors.New(domain.ErrMsgNegativeCounter)
	}

	if err := s.repo.IncrementRecord(ctx, channelID, playerName, winDelta, loseDelta, gamesDelta); err != nil {
		log.Error(LogMsgFailedToIncrement, "error", err, "channel_id", channelID, "player", playerName)
		return fmt.Errorf(ErrMsgIncrementRecordFailed, err)
	}

	log.Debug(LogMsgRecordIncremented, "channel_id", channelID, "player", playerName,
		"win_delta", winDelta, "lose_delta", loseDelta, "games_delta", gamesDelta)
	return nil
}

// AddResult records a match outcome for one player
func (s *service) AddResult(ctx context.Context, channelID, playerName string, win, lose int) error {
	return s.Increment(ctx, channelID, playerName, win, lose, 0)
}

// AddGamePlayed increments the game count for every named player.
// Each player is touched independently; a failure aborts the remainder.
func (s *service) AddGamePlayed(ctx context.Context, channelID string, playerNames []string) error {
	if len(playerNames) == 0 {
		return errors.New(ErrMsgNoPlayerNames)
	}

	for _, name := range playerNames {
		if err := s.Increment(ctx, channelID, name, 0, 0, GamesPlayedDelta); err != nil {
			return err
		}
	}
	return nil
}

// DeleteRecord removes a player's record; deleting an absent record is a no-op
func (s *service) DeleteRecord(ctx context.Context, channelID, playerName string) (bool, error) {
	log := logger.FromContext(ctx)

	channelID, playerName, err := validateKey(channelID, playerName)
	if err != nil {
		return false, err
	}

	removed, err := s.repo.DeleteRecord(ctx, channelID, playerName)
	if err != nil {
		log.Error(LogMsgFailedToDeleteRecord, "error", err, "channel_id", channelID, "player", playerName)
		return false, fmt.Errorf(ErrMsgDeleteRecordFailed, err)
	}

	log.Debug(LogMsgRecordDeleted, "channel_id", channelID, "player", playerName, "removed", removed)
	return removed, nil
}

// ListRecords retrieves every record in a channel
func (s *service) ListRecords(ctx context.Context, channelID string) ([]domain.PlayerRecord, error) {
	log := logger.FromContext(ctx)

	if channelID == "" {
		return nil, errors.New(domain.ErrMsgChannelIDRequired)
	}

	records, err := s.repo.ListRecords(ctx, channelID)
	if err != nil {
		log.Error(LogMsgFailedToListRecords, "error", err, "channel_id", channelID)
		return nil, fmt.Errorf(ErrMsgListRecordsFailed, err)
	}

	log.Debug(LogMsgRetrievedRecords, "channel_id", channelID, "count", len(records))
	return records, nil
}

// validateKey checks and normalizes the (channel, player) key shared by all operations
func validateKey(channelID, playerName string) (string, string, error) {
	if channelID == "" {
		return "", "", errors.New(domain.ErrMsgChannelIDRequired)
	}

	playerName = domain.NormalizePlayerName(playerName)
	if playerName == "" {
		return "", "", errors.New(domain.ErrMsgPlayerNameRequired)
	}

	return channelID, playerName, nil
}
